// intent/classifier.go
package intent

import "strings"

// Intent is the classified purpose of an access request.
type Intent string

const (
	IncidentResolution Intent = "incident_resolution"
	ReadOnly           Intent = "read_only"
	Modify             Intent = "modify"
	Unknown            Intent = "unknown"
)

// Keyword sets evaluated in priority order: incident keywords win over read
// keywords, which win over modify keywords.
var (
	incidentKeywords = []string{"incident", "outage", "prod issue", "urgent"}
	readKeywords     = []string{"read", "view", "inspect", "debug"}
	modifyKeywords   = []string{"modify", "write", "change", "deploy"}
)

// Classify maps a free-text justification to exactly one intent. It is total:
// every input, including the empty string, classifies without error.
func Classify(text string) Intent {
	lowered := strings.ToLower(text)
	switch {
	case containsAny(lowered, incidentKeywords):
		return IncidentResolution
	case containsAny(lowered, readKeywords):
		return ReadOnly
	case containsAny(lowered, modifyKeywords):
		return Modify
	default:
		return Unknown
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

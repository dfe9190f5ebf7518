// model/request.go
package model

// Subject is the requester whose identity was established upstream.
type Subject struct {
	Type string `json:"type"` // e.g., "user"
	ID   string `json:"id"`   // e.g., "alice@example.com"
}

// Resource is the target of the access request.
type Resource struct {
	Type ResourceType `json:"type"`
	ID   string       `json:"id"`
}

// Action is the operation requested on the resource.
type Action struct {
	Name       string                 `json:"name"`                 // e.g., "can_read"
	Properties map[string]interface{} `json:"properties,omitempty"` // e.g., {"method": "GET"}
}

// RequestContext carries the trust signals attached to a request. Location,
// device and role are enum-validated on parse; the timestamp stays a string
// until the freshness check so an unparseable value denies instead of 500s.
type RequestContext struct {
	Timestamp        string       `json:"timestamp"`
	Location         Location     `json:"location"`
	Device           Device       `json:"device"`
	MFAAuthenticated bool         `json:"mfa_authenticated"`
	Role             Role         `json:"role"`
	Permissions      []Permission `json:"permissions"`
	Reason           string       `json:"reason"` // free-text justification, input to intent classification
}

// PermissionSet returns the context's claimed permissions as a set.
func (c RequestContext) PermissionSet() PermissionSet {
	return NewPermissionSet(c.Permissions...)
}

// AccessRequest is one access-control evaluation request as delivered by the
// transport layer.
type AccessRequest struct {
	Subject  Subject        `json:"subject"`
	Resource Resource       `json:"resource"`
	Action   Action         `json:"action"`
	Context  RequestContext `json:"context"`
}

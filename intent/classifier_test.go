// intent/classifier_test.go
package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intentlock/ibac/intent"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want intent.Intent
	}{
		{"incident keyword", "prod issue with the payment service", intent.IncidentResolution},
		{"outage keyword", "OUTAGE in eu-west-1", intent.IncidentResolution},
		{"urgent keyword", "urgent: customer impact", intent.IncidentResolution},
		{"read keyword", "need to view the dashboards", intent.ReadOnly},
		{"inspect keyword", "inspect recent deploy logs", intent.ReadOnly},
		{"modify keyword", "change the retry config", intent.Modify},
		{"deploy keyword", "deploy hotfix to staging", intent.Modify},
		{"no keyword", "just because", intent.Unknown},
		{"empty input", "", intent.Unknown},
		{"case insensitive", "URGENT Incident", intent.IncidentResolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intent.Classify(tt.text))
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Incident keywords win over read keywords, which win over modify keywords.
	assert.Equal(t, intent.IncidentResolution, intent.Classify("read access for incident triage"))
	assert.Equal(t, intent.ReadOnly, intent.Classify("read the change log"))
	assert.Equal(t, intent.IncidentResolution, intent.Classify("deploy fix for the outage"))
}

func TestClassifyIsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, intent.Modify, intent.Classify("write new config"))
	}
}

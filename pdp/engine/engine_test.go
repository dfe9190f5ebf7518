// pdp/engine/engine_test.go
package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentlock/ibac/intent"
	"github.com/intentlock/ibac/pdp/engine"
	pdp_model "github.com/intentlock/ibac/pdp/model"
	"github.com/intentlock/ibac/policy"
)

func TestRuleEngineDecide(t *testing.T) {
	e := engine.NewRuleEngine(policy.NewStore())
	ctx := context.Background()

	tests := []struct {
		name       string
		intent     intent.Intent
		subjectID  string
		riskScore  float64
		wantEffect string
		wantReason string
		wantTTL    int
	}{
		{"incident within threshold", intent.IncidentResolution, "dana", 0.5, pdp_model.EffectGrant, "Emergency access", 30},
		{"incident at threshold", intent.IncidentResolution, "dana", 0.6, pdp_model.EffectGrant, "Emergency access", 30},
		{"incident above threshold", intent.IncidentResolution, "dana", 0.7, pdp_model.EffectDeny, "Risk too high", 0},
		{"read only within threshold", intent.ReadOnly, "dana", 0.7, pdp_model.EffectGrant, "Read-only", 60},
		{"read only above threshold", intent.ReadOnly, "dana", 0.8, pdp_model.EffectDeny, "High risk", 0},
		{"modify privileged low risk", intent.Modify, "alice", 0.3, pdp_model.EffectGrant, "Privileged modify", 15},
		{"modify privileged case insensitive", intent.Modify, "ALICE", 0.1, pdp_model.EffectGrant, "Privileged modify", 15},
		{"modify unprivileged", intent.Modify, "carol", 0.1, pdp_model.EffectDeny, "Modify requires privileged user & low risk", 0},
		{"modify privileged high risk", intent.Modify, "bob", 0.4, pdp_model.EffectDeny, "Modify requires privileged user & low risk", 0},
		{"unknown intent never grants", intent.Unknown, "alice", 0.0, pdp_model.EffectDeny, "Unknown intent", 0},
		{"unrecognized intent never grants", intent.Intent("world_domination"), "alice", 0.0, pdp_model.EffectDeny, "Unknown intent", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := e.Decide(ctx, tt.intent, tt.subjectID, tt.riskScore)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEffect, decision.Effect)
			assert.Equal(t, tt.wantReason, decision.Reason)
			assert.Equal(t, tt.wantTTL, decision.TTLMinutes)
			assert.Equal(t, "policy-"+string(tt.intent), decision.PolicyID)
			assert.Equal(t, tt.riskScore, decision.RiskScore)
		})
	}
}

func TestRuleEngineDecisionIsImmutablePerRequest(t *testing.T) {
	e := engine.NewRuleEngine(policy.NewStore())

	first, err := e.Decide(context.Background(), intent.IncidentResolution, "dana", 0.5)
	require.NoError(t, err)
	second, err := e.Decide(context.Background(), intent.IncidentResolution, "dana", 0.5)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, *first, *second)
}

// pdp/engine/engine.go
package engine

import (
	"context"

	"github.com/intentlock/ibac/intent"
	pdp_model "github.com/intentlock/ibac/pdp/model"
	"github.com/intentlock/ibac/policy"
)

// DecisionSource renders an access decision from the classified intent, the
// requester identity and the computed risk score. Implementations must treat
// every failure path as a deny; no error may silently become a grant.
type DecisionSource interface {
	Decide(ctx context.Context, it intent.Intent, subjectID string, riskScore float64) (*pdp_model.AccessDecision, error)
}

// RuleEngine is the local decision source backed by the compiled-in per-intent
// rule table. It is always available and never fails.
type RuleEngine struct {
	policies *policy.Store
}

func NewRuleEngine(policies *policy.Store) *RuleEngine {
	return &RuleEngine{policies: policies}
}

func (e *RuleEngine) Decide(ctx context.Context, it intent.Intent, subjectID string, riskScore float64) (*pdp_model.AccessDecision, error) {
	decision := &pdp_model.AccessDecision{
		Effect:    pdp_model.EffectDeny,
		Reason:    "Unknown intent",
		PolicyID:  "policy-" + string(it),
		RiskScore: riskScore,
	}

	rule, ok := e.policies.RuleFor(it)
	if !ok {
		// Unrecognized intents never grant.
		return decision, nil
	}

	if rule.RequirePrivileged && !e.policies.IsPrivilegedModifier(subjectID) {
		decision.Reason = rule.DenyReason
		return decision, nil
	}
	if riskScore > rule.MaxRisk {
		decision.Reason = rule.DenyReason
		return decision, nil
	}

	decision.Effect = pdp_model.EffectGrant
	decision.Reason = rule.GrantReason
	decision.TTLMinutes = rule.TTLMinutes
	return decision, nil
}

// pdp/model/decision.go
package model

const (
	EffectGrant = "grant"
	EffectDeny  = "deny"
)

// AccessDecision is the single authoritative output of the decision engine.
// It is created once per request and never mutated afterwards.
type AccessDecision struct {
	Effect     string  `json:"decision"` // grant | deny
	Reason     string  `json:"reason"`
	PolicyID   string  `json:"policy_id"`
	RiskScore  float64 `json:"risk_score"`
	TTLMinutes int     `json:"ttl_minutes"` // meaningful only when Effect is grant
}

func (d *AccessDecision) Granted() bool {
	return d.Effect == EffectGrant
}

// pep/enforcer.go
package pep

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/intentlock/ibac/audit"
	logger "github.com/intentlock/ibac/logging"
	"github.com/intentlock/ibac/model"
	pdp_model "github.com/intentlock/ibac/pdp/model"
)

const (
	AccessGranted = "granted"
	AccessDenied  = "denied"
)

// EnforcementResult is the enforcement outcome returned to the transport
// layer. Token and expiry are present only on a grant.
type EnforcementResult struct {
	Access    string             `json:"access"` // granted | denied
	Message   string             `json:"message,omitempty"`
	Token     string             `json:"token,omitempty"`
	ExpiresAt *time.Time         `json:"expires_at,omitempty"`
	Audit     *audit.AuditRecord `json:"audit,omitempty"`
}

// TokenStore records granted tokens for the duration of their lifetime.
// Optional: a nil store disables it. Store failures are logged only; the
// grant already rendered stands.
type TokenStore interface {
	StoreToken(ctx context.Context, token, subjectID string, ttl time.Duration) error
}

// Enforcer turns a decision into its enforced result: on a grant it mints the
// access token and appends the audit record, on a deny it relays the reason.
// Issuance is a local computation with no external call on the decision path.
type Enforcer struct {
	issuer   TokenIssuer
	auditSvc audit.Service
	tokens   TokenStore
	now      func() time.Time
}

func NewEnforcer(issuer TokenIssuer, auditSvc audit.Service, tokens TokenStore) *Enforcer {
	return &Enforcer{
		issuer:   issuer,
		auditSvc: auditSvc,
		tokens:   tokens,
		now:      time.Now,
	}
}

func (e *Enforcer) Enforce(ctx context.Context, req model.AccessRequest, decision *pdp_model.AccessDecision) (*EnforcementResult, error) {
	if !decision.Granted() {
		// Denials carry no token and no audit record.
		return &EnforcementResult{
			Access:  AccessDenied,
			Message: decision.Reason,
		}, nil
	}

	issuedAt := e.now().UTC()
	expiresAt := issuedAt.Add(time.Duration(decision.TTLMinutes) * time.Minute)

	token, err := e.issuer.Issue(req.Subject.ID, decision.PolicyID, issuedAt, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	record := audit.AuditRecord{
		EventID:    uuid.NewString(),
		SubjectID:  req.Subject.ID,
		ResourceID: req.Resource.ID,
		Decision:   decision.Effect,
		PolicyID:   decision.PolicyID,
		IssuedAt:   issuedAt,
		ExpiresAt:  expiresAt,
		RiskScore:  decision.RiskScore,
	}
	if err := e.auditSvc.Record(ctx, record); err != nil {
		// Never return a grant without its audit record.
		return nil, fmt.Errorf("failed to append audit record: %w", err)
	}

	if e.tokens != nil {
		ttl := time.Duration(decision.TTLMinutes) * time.Minute
		if err := e.tokens.StoreToken(ctx, token, req.Subject.ID, ttl); err != nil {
			logger.Warn("Failed to store granted token",
				zap.Error(err),
				zap.String("subjectID", req.Subject.ID))
		}
	}

	return &EnforcementResult{
		Access:    AccessGranted,
		Token:     token,
		ExpiresAt: &expiresAt,
		Audit:     &record,
	}, nil
}

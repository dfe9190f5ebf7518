// service/access_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/intentlock/ibac/alert"
	"github.com/intentlock/ibac/audit"
	ibac_errors "github.com/intentlock/ibac/errors"
	"github.com/intentlock/ibac/intent"
	logger "github.com/intentlock/ibac/logging"
	"github.com/intentlock/ibac/model"
	"github.com/intentlock/ibac/pdp/engine"
	pdp_model "github.com/intentlock/ibac/pdp/model"
	"github.com/intentlock/ibac/pep"
	"github.com/intentlock/ibac/risk"
	"github.com/intentlock/ibac/signals"
	"github.com/intentlock/ibac/util"
)

// EvaluationResult is the full pipeline trace for one access request:
// the request itself, the classified intent, the decision, and the
// enforcement outcome.
type EvaluationResult struct {
	Request     model.AccessRequest       `json:"request"`
	Intent      intent.Intent             `json:"intent"`
	Decision    *pdp_model.AccessDecision `json:"pdp"`
	Enforcement *pep.EnforcementResult    `json:"enforcement"`
}

// Denied reports whether the evaluation ended in a denial.
func (r *EvaluationResult) Denied() bool {
	return r.Enforcement == nil || r.Enforcement.Access != pep.AccessGranted
}

type IAccessService interface {
	EvaluateAccess(ctx context.Context, req model.AccessRequest) (*EvaluationResult, error)
	QueryAuditRecords(ctx context.Context, from, to time.Time, subjectID, resourceID string) ([]audit.AuditRecord, error)
}

// AccessService runs the decision pipeline: signal validation, intent
// classification, risk scoring, decision, then enforcement or alerting.
// It is stateless per request; the only shared state is the read-only policy
// store and the append-only audit log.
type AccessService struct {
	validationUtil *util.ValidationUtil
	validator      *signals.Validator
	decisionSource engine.DecisionSource
	enforcer       *pep.Enforcer
	auditSvc       audit.Service
	eventBus       *util.EventBus
}

func NewAccessService(
	validationUtil *util.ValidationUtil,
	validator *signals.Validator,
	decisionSource engine.DecisionSource,
	enforcer *pep.Enforcer,
	auditSvc audit.Service,
	eventBus *util.EventBus,
) *AccessService {
	return &AccessService{
		validationUtil: validationUtil,
		validator:      validator,
		decisionSource: decisionSource,
		enforcer:       enforcer,
		auditSvc:       auditSvc,
		eventBus:       eventBus,
	}
}

// EvaluateAccess evaluates one access request end to end. Every failure path
// results in a deny; nothing defaults to grant.
func (s *AccessService) EvaluateAccess(ctx context.Context, req model.AccessRequest) (*EvaluationResult, error) {
	if err := s.validationUtil.ValidateAccessRequest(req); err != nil {
		logger.Warn("Structural validation failed",
			zap.Error(err),
			zap.String("subjectID", req.Subject.ID))
		return nil, fmt.Errorf("%w: %v", ibac_errors.ErrInvalidRequestData, err)
	}

	if err := s.validator.Validate(req); err != nil {
		return s.denyForSignalFailure(ctx, req, err), nil
	}

	it := intent.Classify(req.Context.Reason)
	riskScore := risk.Score(string(req.Context.Device), string(req.Context.Location))

	decision, err := s.decisionSource.Decide(ctx, it, req.Subject.ID, riskScore)
	if err != nil {
		logger.Error("Decision source failed",
			zap.Error(err),
			zap.String("subjectID", req.Subject.ID),
			zap.String("intent", string(it)))
		return nil, ibac_errors.ErrInternalServer
	}

	enforcement, err := s.enforcer.Enforce(ctx, req, decision)
	if err != nil {
		logger.Error("Enforcement failed",
			zap.Error(err),
			zap.String("subjectID", req.Subject.ID))
		return nil, ibac_errors.ErrInternalServer
	}

	logger.Info("Access request evaluated",
		zap.String("subjectID", req.Subject.ID),
		zap.String("resourceID", req.Resource.ID),
		zap.String("intent", string(it)),
		zap.Float64("riskScore", riskScore),
		zap.String("decision", decision.Effect),
		zap.String("policyID", decision.PolicyID))

	return &EvaluationResult{
		Request:     req,
		Intent:      it,
		Decision:    decision,
		Enforcement: enforcement,
	}, nil
}

// denyForSignalFailure renders a validator failure as a deny. Mandatory,
// discretionary and staleness failures additionally raise a shared-signal
// alert; an unparseable timestamp denies without alerting.
func (s *AccessService) denyForSignalFailure(ctx context.Context, req model.AccessRequest, cause error) *EvaluationResult {
	reason := signalDenyReason(cause)

	if errors.Is(cause, ibac_errors.ErrMandatorySignals) ||
		errors.Is(cause, ibac_errors.ErrDiscretionarySignals) ||
		errors.Is(cause, ibac_errors.ErrStaleRequestTime) {
		// Alerts outlive the request: the handler keeps running after the
		// caller's context is done.
		s.eventBus.Publish(context.WithoutCancel(ctx), alert.EventAccessDenied, req.Subject.ID)
	}

	decision := &pdp_model.AccessDecision{
		Effect: pdp_model.EffectDeny,
		Reason: reason,
	}
	return &EvaluationResult{
		Request:  req,
		Intent:   intent.Unknown,
		Decision: decision,
		Enforcement: &pep.EnforcementResult{
			Access:  pep.AccessDenied,
			Message: reason,
		},
	}
}

func signalDenyReason(err error) string {
	switch {
	case errors.Is(err, ibac_errors.ErrMandatorySignals):
		return "Mandatory signals check failed"
	case errors.Is(err, ibac_errors.ErrDiscretionarySignals):
		return "Discretionary signals check failed"
	case errors.Is(err, ibac_errors.ErrStaleRequestTime):
		return "stale request time"
	case errors.Is(err, ibac_errors.ErrInvalidContextTime):
		return "invalid context time"
	default:
		return "access denied"
	}
}

func (s *AccessService) QueryAuditRecords(ctx context.Context, from, to time.Time, subjectID, resourceID string) ([]audit.AuditRecord, error) {
	return s.auditSvc.QueryRecords(ctx, from, to, subjectID, resourceID)
}

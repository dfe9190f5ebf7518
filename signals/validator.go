// signals/validator.go
package signals

import (
	"time"

	"go.uber.org/zap"

	ibac_errors "github.com/intentlock/ibac/errors"
	logger "github.com/intentlock/ibac/logging"
	"github.com/intentlock/ibac/model"
	"github.com/intentlock/ibac/policy"
	helper_util "github.com/intentlock/ibac/util/helper"
)

// Validator checks a request's trust signals against the static policy
// tables. All checks are read-only and safe for concurrent use.
type Validator struct {
	policies        *policy.Store
	stalenessWindow time.Duration
	now             func() time.Time
}

func NewValidator(policies *policy.Store, stalenessWindow time.Duration) *Validator {
	return &Validator{
		policies:        policies,
		stalenessWindow: stalenessWindow,
		now:             time.Now,
	}
}

// Validate runs the mandatory, discretionary and freshness checks in order
// and returns the sentinel error of the first failure. The caller is expected
// to raise a shared-signal alert for any of these failures before propagating
// the deny.
func (v *Validator) Validate(req model.AccessRequest) error {
	if !v.CheckMandatorySignals(req.Context) {
		logger.Warn("Mandatory signals check failed",
			zap.String("subjectID", req.Subject.ID),
			zap.String("location", string(req.Context.Location)),
			zap.String("device", string(req.Context.Device)),
			zap.Bool("mfa", req.Context.MFAAuthenticated))
		return ibac_errors.ErrMandatorySignals
	}

	if !v.CheckDiscretionarySignals(req.Resource, req.Context) {
		logger.Warn("Discretionary signals check failed",
			zap.String("subjectID", req.Subject.ID),
			zap.String("role", string(req.Context.Role)),
			zap.String("resourceType", string(req.Resource.Type)))
		return ibac_errors.ErrDiscretionarySignals
	}

	if err := v.CheckFreshness(req.Context); err != nil {
		logger.Warn("Freshness check failed",
			zap.Error(err),
			zap.String("subjectID", req.Subject.ID),
			zap.String("timestamp", req.Context.Timestamp))
		return err
	}

	return nil
}

// CheckMandatorySignals reports whether the absolute trust signals hold:
// MFA completed and location/device within their closed sets. A value outside
// its enumeration is a rejection, not a crash.
func (v *Validator) CheckMandatorySignals(reqCtx model.RequestContext) bool {
	if !reqCtx.MFAAuthenticated {
		return false
	}
	if !reqCtx.Location.Valid() || !reqCtx.Device.Valid() {
		return false
	}
	return true
}

// CheckDiscretionarySignals reports whether the role's permission set is
// exactly equal to the resource's required set. Neither a superset nor a
// subset passes: the strict equality prevents privilege creep in either
// direction. Unknown roles and resource types resolve to the empty set.
func (v *Validator) CheckDiscretionarySignals(resource model.Resource, reqCtx model.RequestContext) bool {
	perms := v.policies.PermissionsForRole(reqCtx.Role)
	required := v.policies.RequiredPermissions(resource.Type)
	return perms.Equal(required)
}

// CheckFreshness rejects requests whose context timestamp is older than the
// staleness window. An unparseable timestamp is a deny, never a fault.
func (v *Validator) CheckFreshness(reqCtx model.RequestContext) error {
	ts, err := helper_util.ParseTime(reqCtx.Timestamp)
	if err != nil {
		return ibac_errors.ErrInvalidContextTime
	}
	if v.now().UTC().Sub(ts.UTC()) > v.stalenessWindow {
		return ibac_errors.ErrStaleRequestTime
	}
	return nil
}

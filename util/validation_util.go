// util/validation_util.go

package util

import (
	"fmt"

	"github.com/intentlock/ibac/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

// ValidateAccessRequest checks the structural shape of a request before it
// reaches the decision core. Enum values arriving through JSON are already
// rejected on parse; the checks here also cover requests built in code.
func (v *ValidationUtil) ValidateAccessRequest(req model.AccessRequest) error {
	if req.Subject.Type != "user" {
		return fmt.Errorf("subject type must be user")
	}
	if req.Subject.ID == "" {
		return fmt.Errorf("subject ID cannot be empty")
	}
	if !req.Resource.Type.Valid() {
		return fmt.Errorf("unrecognized resource type: %q", req.Resource.Type)
	}
	if req.Resource.ID == "" {
		return fmt.Errorf("resource ID cannot be empty")
	}
	if req.Action.Name == "" {
		return fmt.Errorf("action name cannot be empty")
	}
	if req.Context.Timestamp == "" {
		return fmt.Errorf("context timestamp cannot be empty")
	}
	if !req.Context.Role.Valid() {
		return fmt.Errorf("unrecognized role: %q", req.Context.Role)
	}
	for _, p := range req.Context.Permissions {
		if !p.Valid() {
			return fmt.Errorf("unrecognized permission: %q", p)
		}
	}
	return nil
}

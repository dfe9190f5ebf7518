// policy/store.go
package policy

import (
	"strings"

	"github.com/intentlock/ibac/intent"
	"github.com/intentlock/ibac/model"
)

// Rule is one row of the per-intent decision table.
type Rule struct {
	MaxRisk           float64
	TTLMinutes        int
	GrantReason       string
	DenyReason        string
	RequirePrivileged bool
}

// Store holds the static policy tables. It is built once at process start and
// only read afterwards, so it is safe for unlimited concurrent readers.
type Store struct {
	rolePermissions     map[model.Role]model.PermissionSet
	resourcePermissions map[model.ResourceType]model.PermissionSet
	rules               map[intent.Intent]Rule
	privilegedModifiers map[string]struct{}
}

// NewStore builds the compiled-in policy tables.
func NewStore() *Store {
	return &Store{
		rolePermissions: map[model.Role]model.PermissionSet{
			model.RoleDevOps:       model.NewPermissionSet(model.PermReadLogs, model.PermWriteConfigs, model.PermRestartServices),
			model.RoleSRE:          model.NewPermissionSet(model.PermReadLogs, model.PermRestartServices),
			model.RoleDataEngineer: model.NewPermissionSet(model.PermReadData, model.PermWriteData),
		},
		resourcePermissions: map[model.ResourceType]model.PermissionSet{
			model.ResourceFinancialReport: model.NewPermissionSet(model.PermReadData, model.PermWriteData),
			model.ResourceSystemLogs:      model.NewPermissionSet(model.PermReadLogs),
			model.ResourceAudit:           model.NewPermissionSet(model.PermReadLogs, model.PermWriteConfigs),
		},
		rules: map[intent.Intent]Rule{
			intent.IncidentResolution: {MaxRisk: 0.6, TTLMinutes: 30, GrantReason: "Emergency access", DenyReason: "Risk too high"},
			intent.ReadOnly:           {MaxRisk: 0.7, TTLMinutes: 60, GrantReason: "Read-only", DenyReason: "High risk"},
			intent.Modify:             {MaxRisk: 0.3, TTLMinutes: 15, GrantReason: "Privileged modify", DenyReason: "Modify requires privileged user & low risk", RequirePrivileged: true},
		},
		privilegedModifiers: map[string]struct{}{
			"alice":  {},
			"bob":    {},
			"devops": {},
		},
	}
}

// PermissionsForRole returns the permission set granted to a role. An unknown
// role yields the empty set, never an error.
func (s *Store) PermissionsForRole(role model.Role) model.PermissionSet {
	if perms, ok := s.rolePermissions[role]; ok {
		return perms
	}
	return model.PermissionSet{}
}

// RequiredPermissions returns the permission set a resource type demands. An
// unknown resource type yields the empty set.
func (s *Store) RequiredPermissions(resourceType model.ResourceType) model.PermissionSet {
	if perms, ok := s.resourcePermissions[resourceType]; ok {
		return perms
	}
	return model.PermissionSet{}
}

// RuleFor returns the decision rule for an intent. Unrecognized intents have
// no rule and never grant.
func (s *Store) RuleFor(it intent.Intent) (Rule, bool) {
	rule, ok := s.rules[it]
	return rule, ok
}

// IsPrivilegedModifier reports whether a subject may perform modify
// operations. Matching is case-insensitive.
func (s *Store) IsPrivilegedModifier(subjectID string) bool {
	_, ok := s.privilegedModifiers[strings.ToLower(subjectID)]
	return ok
}

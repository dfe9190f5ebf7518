// policy/store_test.go
package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentlock/ibac/intent"
	"github.com/intentlock/ibac/model"
	"github.com/intentlock/ibac/policy"
)

func TestPermissionTables(t *testing.T) {
	store := policy.NewStore()

	assert.True(t, store.PermissionsForRole(model.RoleDevOps).
		Equal(model.NewPermissionSet(model.PermReadLogs, model.PermWriteConfigs, model.PermRestartServices)))
	assert.True(t, store.PermissionsForRole(model.RoleDataEngineer).
		Equal(model.NewPermissionSet(model.PermReadData, model.PermWriteData)))
	// Unknown role resolves to the empty set, not an error.
	assert.Empty(t, store.PermissionsForRole(model.Role("Intern")))

	assert.True(t, store.RequiredPermissions(model.ResourceSystemLogs).
		Equal(model.NewPermissionSet(model.PermReadLogs)))
	assert.Empty(t, store.RequiredPermissions(model.ResourceType("WIKI")))
}

func TestRuleTable(t *testing.T) {
	store := policy.NewStore()

	incident, ok := store.RuleFor(intent.IncidentResolution)
	require.True(t, ok)
	assert.Equal(t, 0.6, incident.MaxRisk)
	assert.Equal(t, 30, incident.TTLMinutes)
	assert.Equal(t, "Risk too high", incident.DenyReason)

	modify, ok := store.RuleFor(intent.Modify)
	require.True(t, ok)
	assert.True(t, modify.RequirePrivileged)
	assert.Equal(t, 15, modify.TTLMinutes)

	_, ok = store.RuleFor(intent.Unknown)
	assert.False(t, ok)
}

func TestIsPrivilegedModifier(t *testing.T) {
	store := policy.NewStore()

	assert.True(t, store.IsPrivilegedModifier("alice"))
	assert.True(t, store.IsPrivilegedModifier("ALICE"))
	assert.True(t, store.IsPrivilegedModifier("DevOps"))
	assert.False(t, store.IsPrivilegedModifier("carol"))
}

// model/enums_test.go
package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentlock/ibac/model"
)

func TestEnumUnmarshalRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"unknown role", `{"role": "Intern"}`},
		{"unknown location", `{"location": "moon"}`},
		{"unknown device", `{"device": "toaster"}`},
		{"unknown permission", `{"permissions": ["root_everything"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctx model.RequestContext
			assert.Error(t, json.Unmarshal([]byte(tt.json), &ctx))
		})
	}

	t.Run("unknown resource type", func(t *testing.T) {
		var res model.Resource
		assert.Error(t, json.Unmarshal([]byte(`{"type": "WIKI", "id": "1"}`), &res))
	})
}

func TestEnumUnmarshalAcceptsKnownValues(t *testing.T) {
	var ctx model.RequestContext
	data := `{
		"timestamp": "2024-05-01T10:00:00Z",
		"location": "office",
		"device": "laptop",
		"mfa_authenticated": true,
		"role": "DevOps",
		"permissions": ["read_logs", "write_configs"]
	}`
	require.NoError(t, json.Unmarshal([]byte(data), &ctx))
	assert.Equal(t, model.LocationOffice, ctx.Location)
	assert.Equal(t, model.DeviceLaptop, ctx.Device)
	assert.Equal(t, model.RoleDevOps, ctx.Role)
	assert.True(t, ctx.MFAAuthenticated)
}

func TestPermissionSetEqual(t *testing.T) {
	base := model.NewPermissionSet(model.PermReadLogs, model.PermWriteConfigs)

	assert.True(t, base.Equal(model.NewPermissionSet(model.PermWriteConfigs, model.PermReadLogs)))
	// Neither subsets nor supersets are equal.
	assert.False(t, base.Equal(model.NewPermissionSet(model.PermReadLogs)))
	assert.False(t, base.Equal(model.NewPermissionSet(model.PermReadLogs, model.PermWriteConfigs, model.PermRestartServices)))
	assert.True(t, model.PermissionSet{}.Equal(model.NewPermissionSet()))
}

// pdp/engine/authzen_test.go
package engine_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentlock/ibac/config"
	"github.com/intentlock/ibac/intent"
	logger "github.com/intentlock/ibac/logging"
	"github.com/intentlock/ibac/pdp/engine"
	pdp_model "github.com/intentlock/ibac/pdp/model"
	"github.com/intentlock/ibac/policy"
)

func TestAuthZENClientDecide(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/decide", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(pdp_model.AccessDecision{
			Effect:     pdp_model.EffectGrant,
			Reason:     "Emergency access",
			PolicyID:   "policy-incident_resolution",
			RiskScore:  0.5,
			TTLMinutes: 30,
		})
	}))
	defer server.Close()

	client := engine.NewAuthZENClient(server.URL, time.Second)
	decision, err := client.Decide(context.Background(), intent.IncidentResolution, "dana", 0.5)
	require.NoError(t, err)

	assert.Equal(t, pdp_model.EffectGrant, decision.Effect)
	assert.Equal(t, 30, decision.TTLMinutes)
	assert.Equal(t, "dana", received["subject_id"])
	assert.Equal(t, "incident_resolution", received["intent"])
}

func TestAuthZENClientErrorSurfacesNotGrants(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := engine.NewAuthZENClient(server.URL, time.Second)
	decision, err := client.Decide(context.Background(), intent.ReadOnly, "dana", 0.1)
	assert.Error(t, err)
	assert.Nil(t, decision)
}

func TestSelectSource(t *testing.T) {
	logger.InitLogger(t.TempDir())
	policies := policy.NewStore()

	t.Run("disabled uses local rules", func(t *testing.T) {
		source := engine.SelectSource(config.AuthZENConfiguration{Enabled: false}, policies)
		assert.IsType(t, &engine.RuleEngine{}, source)
	})

	t.Run("unreachable remote falls back to local rules", func(t *testing.T) {
		source := engine.SelectSource(config.AuthZENConfiguration{
			Enabled:  true,
			Endpoint: "http://127.0.0.1:1",
			Timeout:  200 * time.Millisecond,
		}, policies)
		assert.IsType(t, &engine.RuleEngine{}, source)
	})

	t.Run("healthy remote selected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				w.WriteHeader(http.StatusOK)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		source := engine.SelectSource(config.AuthZENConfiguration{
			Enabled:  true,
			Endpoint: server.URL,
			Timeout:  time.Second,
		}, policies)
		assert.IsType(t, &engine.AuthZENClient{}, source)
	})
}

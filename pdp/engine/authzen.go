// pdp/engine/authzen.go
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/intentlock/ibac/config"
	"github.com/intentlock/ibac/intent"
	logger "github.com/intentlock/ibac/logging"
	pdp_model "github.com/intentlock/ibac/pdp/model"
	"github.com/intentlock/ibac/policy"
)

// AuthZENClient delegates decisions to a remote AuthZEN-style policy engine.
// A remote failure surfaces as an error, which the caller renders as a deny.
type AuthZENClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewAuthZENClient(endpoint string, timeout time.Duration) *AuthZENClient {
	return &AuthZENClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type authZENRequest struct {
	SubjectID string  `json:"subject_id"`
	Intent    string  `json:"intent"`
	RiskScore float64 `json:"risk_score"`
}

func (c *AuthZENClient) Decide(ctx context.Context, it intent.Intent, subjectID string, riskScore float64) (*pdp_model.AccessDecision, error) {
	payload, err := json.Marshal(authZENRequest{
		SubjectID: subjectID,
		Intent:    string(it),
		RiskScore: riskScore,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal decision request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/decide", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build decision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("policy engine call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("policy engine returned status %d", resp.StatusCode)
	}

	var decision pdp_model.AccessDecision
	if err := json.NewDecoder(resp.Body).Decode(&decision); err != nil {
		return nil, fmt.Errorf("failed to decode policy engine response: %w", err)
	}
	return &decision, nil
}

// Ping verifies the remote engine is reachable. Used as a startup capability
// check, not a per-request fallback.
func (c *AuthZENClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("policy engine unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("policy engine health check returned status %d", resp.StatusCode)
	}
	return nil
}

// SelectSource picks the decision source at startup. The remote engine is
// used only when configured and reachable; the local rule engine is the
// non-failing default.
func SelectSource(cfg config.AuthZENConfiguration, policies *policy.Store) DecisionSource {
	local := NewRuleEngine(policies)
	if !cfg.Enabled || cfg.Endpoint == "" {
		return local
	}

	remote := NewAuthZENClient(cfg.Endpoint, cfg.Timeout)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if err := remote.Ping(ctx); err != nil {
		logger.Warn("Remote policy engine unavailable, using local rule engine",
			zap.Error(err),
			zap.String("endpoint", cfg.Endpoint))
		return local
	}

	logger.Info("Using remote policy engine", zap.String("endpoint", cfg.Endpoint))
	return remote
}

// pep/token.go
package pep

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer mints a bounded-lifetime access token. The token's only
// semantics are "valid until expiry"; nothing in the core revokes it.
type TokenIssuer interface {
	Issue(subjectID, policyID string, issuedAt, expiresAt time.Time) (string, error)
}

// OpaqueTokenIssuer issues random opaque tokens.
type OpaqueTokenIssuer struct{}

func (OpaqueTokenIssuer) Issue(subjectID, policyID string, issuedAt, expiresAt time.Time) (string, error) {
	return uuid.NewString(), nil
}

// JWTTokenIssuer issues signed tokens that carry the grant's subject, policy
// and expiry as claims, so downstream services can verify them offline.
type JWTTokenIssuer struct {
	secret []byte
}

func NewJWTTokenIssuer(secret string) (*JWTTokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt token issuer requires a signing secret")
	}
	return &JWTTokenIssuer{secret: []byte(secret)}, nil
}

func (i *JWTTokenIssuer) Issue(subjectID, policyID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":       subjectID,
		"policy_id": policyID,
		"iat":       issuedAt.Unix(),
		"exp":       expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Package auth issues and verifies the signed identity tokens carried in
// the auth cookie. Verification is stateless: no store lookup, no
// revocation list, so a token stays valid for its whole lifetime.
package auth

import (
	"context"
	"time"
)

// Identity is the payload a client asks to have signed.
type Identity struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name,omitempty"`
}

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken signs a token for identity and returns it with its expiry.
	// Returns ErrMissingEmail when identity has no email.
	GenerateToken(ctx context.Context, identity Identity) (string, time.Time, error)

	// ValidateToken validates the token signature and expiry and extracts the claims.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the identity decoded from a valid token.
type Claims struct {
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

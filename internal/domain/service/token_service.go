package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mutant-admin/internal/domain/entity"
)

// Claims defines the custom claims carried by a gateway session token.
// Subject holds the admin id.
type Claims struct {
	SessionID string `json:"sid"`
	Role      string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the tokens handed to dashboard clients.
// A token only points at a session; the backend credentials stay server-side.
type TokenService interface {
	// Issue creates a signed token for the session.
	Issue(session *entity.Session) (string, error)

	// Validate checks the signature and expiry of a token string.
	Validate(tokenString string) (*Claims, error)

	// TTL returns how long issued tokens stay valid.
	TTL() time.Duration
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"mutant-admin/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the credentials an admin logs in with.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput is returned after a successful login. Token is the gateway
// session token; the backend token never leaves the gateway.
type LoginOutput struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         *entity.User `json:"user"`
	ExpiresAt    time.Time    `json:"expiresAt"`
}

// AuthUsecase defines the authentication operations of the gateway.
type AuthUsecase interface {
	// Login checks configured operator accounts first and the backend otherwise.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout is best-effort: backend failures are logged, never returned.
	Logout(ctx context.Context, token string) error

	// Authenticate resolves a gateway token to its live session.
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
}

package repository

import (
	"context"

	"mutant-admin/internal/domain/entity"
)

// BackendLogin is what the backend returns for valid credentials.
type BackendLogin struct {
	Token        string
	RefreshToken string
	User         *entity.User
}

// AuthGateway reaches the backend's authentication endpoints.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*BackendLogin, error)

	// Logout invalidates the backend token carried by ctx.
	Logout(ctx context.Context) error
}

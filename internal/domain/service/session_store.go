package service

import (
	"context"

	"mutant-admin/internal/domain/entity"
)

// SessionStore keeps gateway sessions between requests.
type SessionStore interface {
	// Save stores the session until its ExpiresAt.
	Save(ctx context.Context, session *entity.Session) error

	// Get returns errors.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*entity.Session, error)

	// Delete is idempotent.
	Delete(ctx context.Context, id string) error

	Close() error
}

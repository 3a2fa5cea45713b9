package usecase

import (
	"context"

	"mutant-admin/internal/domain/entity"
)

// PublishInput is the body of PUT /api/admin/missions/:id/publish.
type PublishInput struct {
	IsPublished *bool `json:"isPublished" validate:"required"`
}

// MissionUsecase defines mission administration.
type MissionUsecase interface {
	ListMissions(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Mission], error)
	GetMission(ctx context.Context, id string) (*entity.Mission, error)
	DeleteMission(ctx context.Context, id string) error

	// SetPublished returns the mission with its publication patched, even when
	// the backend answered without a body.
	SetPublished(ctx context.Context, id string, published bool) (*entity.Mission, error)
}

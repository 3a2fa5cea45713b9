package usecase

import (
	"context"

	"mutant-admin/internal/domain/entity"
)

// UserUsecase defines the per-role user administration.
type UserUsecase interface {
	ListUsers(ctx context.Context, collection entity.UserCollection, query entity.ListQuery) (*entity.Page[entity.User], error)
	GetUser(ctx context.Context, collection entity.UserCollection, id string) (*entity.User, error)
	DeleteUser(ctx context.Context, collection entity.UserCollection, id string) error
}

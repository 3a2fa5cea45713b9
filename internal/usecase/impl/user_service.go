package impl

import (
	"context"

	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/usecase"

	"github.com/pkg/errors"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService is the constructor for userService.
func NewUserService(userRepo repository.UserRepository) usecase.UserUsecase {
	return &userService{userRepo: userRepo}
}

func checkCollection(collection entity.UserCollection) error {
	if _, ok := entity.ParseUserCollection(string(collection)); !ok {
		return domainerrors.ErrNotFound.WithDetails("unknown user collection " + string(collection))
	}

	return nil
}

func (srv *userService) ListUsers(ctx context.Context, collection entity.UserCollection, query entity.ListQuery) (*entity.Page[entity.User], error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	page, err := srv.userRepo.List(ctx, collection, query)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", collection)
	}

	return page, nil
}

func (srv *userService) GetUser(ctx context.Context, collection entity.UserCollection, id string) (*entity.User, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, collection, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s/%s", collection, id)
	}

	return user, nil
}

func (srv *userService) DeleteUser(ctx context.Context, collection entity.UserCollection, id string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}

	if err := srv.userRepo.Delete(ctx, collection, id); err != nil {
		return errors.Wrapf(err, "failed to delete %s/%s", collection, id)
	}

	return nil
}

package backend

import (
	"context"
	"net/http"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
)

const usersPath = "/api/admin/users"

type userRepository struct {
	client *Client
}

// NewUserRepository is the constructor for the backend user repository.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) List(ctx context.Context, collection entity.UserCollection, query entity.ListQuery) (*entity.Page[entity.User], error) {
	path := usersPath + "/" + collection.String()
	raw, err := r.client.do(ctx, call{
		method: http.MethodGet,
		path:   path,
		route:  path,
		query:  query.Values(),
	})
	if err != nil {
		return nil, err
	}

	return decodePage[entity.User](raw, path)
}

func (r *userRepository) FindByID(ctx context.Context, collection entity.UserCollection, id string) (*entity.User, error) {
	path := usersPath + "/" + collection.String() + "/" + segment(id)
	raw, err := r.client.do(ctx, call{
		method: http.MethodGet,
		path:   path,
		route:  usersPath + "/" + collection.String() + "/:id",
	})
	if err != nil {
		return nil, err
	}

	return decodeItem[entity.User](raw, path, true)
}

func (r *userRepository) Delete(ctx context.Context, collection entity.UserCollection, id string) error {
	_, err := r.client.do(ctx, call{
		method: http.MethodDelete,
		path:   usersPath + "/" + collection.String() + "/" + segment(id),
		route:  usersPath + "/" + collection.String() + "/:id",
	})

	return err
}

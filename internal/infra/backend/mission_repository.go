package backend

import (
	"context"
	"net/http"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
)

const missionPath = "/api/admin/missions"

type missionRepository struct {
	client *Client
}

// NewMissionRepository is the constructor for the backend mission repository.
func NewMissionRepository(client *Client) repository.MissionRepository {
	return &missionRepository{client: client}
}

func (r *missionRepository) List(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Mission], error) {
	raw, err := r.client.do(ctx, call{
		method: http.MethodGet,
		path:   missionPath,
		route:  missionPath,
		query:  query.Values(),
	})
	if err != nil {
		return nil, err
	}

	return decodePage[entity.Mission](raw, missionPath)
}

func (r *missionRepository) FindByID(ctx context.Context, id string) (*entity.Mission, error) {
	path := missionPath + "/" + segment(id)
	raw, err := r.client.do(ctx, call{
		method: http.MethodGet,
		path:   path,
		route:  missionPath + "/:id",
	})
	if err != nil {
		return nil, err
	}

	return decodeItem[entity.Mission](raw, path, true)
}

func (r *missionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, call{
		method: http.MethodDelete,
		path:   missionPath + "/" + segment(id),
		route:  missionPath + "/:id",
	})

	return err
}

func (r *missionRepository) SetPublished(ctx context.Context, id string, published bool) (*entity.Mission, error) {
	path := missionPath + "/" + segment(id) + "/publish"
	raw, err := r.client.do(ctx, call{
		method: http.MethodPut,
		path:   path,
		route:  missionPath + "/:id/publish",
		body:   map[string]bool{"isPublished": published},
	})
	if err != nil {
		return nil, err
	}

	return decodeItem[entity.Mission](raw, path, false)
}

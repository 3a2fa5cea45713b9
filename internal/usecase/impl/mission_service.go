package impl

import (
	"context"
	"log/slog"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/domain/service"
	"mutant-admin/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type missionService struct {
	missionRepo repository.MissionRepository
	decisions   *decisionLog
}

// MissionServiceParams holds dependencies for MissionService, injected by Fx.
type MissionServiceParams struct {
	fx.In

	MissionRepo  repository.MissionRepository
	DecisionRepo repository.DecisionRepository
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

func NewMissionService(params MissionServiceParams) usecase.MissionUsecase {
	return &missionService{
		missionRepo: params.MissionRepo,
		decisions:   newDecisionLog(params.DecisionRepo, params.Publisher, params.Metrics, params.Logger),
	}
}

func (srv *missionService) ListMissions(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Mission], error) {
	page, err := srv.missionRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list missions")
	}

	return page, nil
}

func (srv *missionService) GetMission(ctx context.Context, id string) (*entity.Mission, error) {
	mission, err := srv.missionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get mission %s", id)
	}

	return mission, nil
}

func (srv *missionService) DeleteMission(ctx context.Context, id string) error {
	if err := srv.missionRepo.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "failed to delete mission %s", id)
	}

	srv.decisions.record(ctx, entity.ResourceMission, id, entity.DecisionDeleted, actingAdmin(ctx, ""), "")

	return nil
}

func (srv *missionService) SetPublished(ctx context.Context, id string, published bool) (*entity.Mission, error) {
	mission, err := srv.missionRepo.SetPublished(ctx, id, published)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to set publication of mission %s", id)
	}
	if mission == nil {
		mission = &entity.Mission{ID: id}
	}
	mission.SetPublished(published)

	decision := entity.DecisionUnpublished
	if published {
		decision = entity.DecisionPublished
	}
	srv.decisions.record(ctx, entity.ResourceMission, id, decision, actingAdmin(ctx, ""), "")

	return mission, nil
}

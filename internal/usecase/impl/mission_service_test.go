package impl

import (
	"context"
	"log/slog"
	"testing"

	"mutant-admin/internal/domain/entity"
	mockRepo "mutant-admin/internal/mocks/repository"
	mockSvc "mutant-admin/internal/mocks/service"
	"mutant-admin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type missionServiceFixtures struct {
	service      usecase.MissionUsecase
	missionRepo  *mockRepo.MockMissionRepository
	decisionRepo *mockRepo.MockDecisionRepository
	publisher    *mockSvc.MockEventPublisher
	metrics      *mockSvc.MockMetricsRecorder
}

func createTestMissionService(t *testing.T) missionServiceFixtures {
	fx := missionServiceFixtures{
		missionRepo:  mockRepo.NewMockMissionRepository(t),
		decisionRepo: mockRepo.NewMockDecisionRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
	}
	fx.service = NewMissionService(MissionServiceParams{
		MissionRepo:  fx.missionRepo,
		DecisionRepo: fx.decisionRepo,
		Publisher:    fx.publisher,
		Metrics:      fx.metrics,
		Logger:       slog.New(slog.DiscardHandler),
	})

	return fx
}

func TestMissionService_SetPublished_PatchesEmptyResponse(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := adminContext("admin-1")

	fx.missionRepo.EXPECT().SetPublished(ctx, "m1", true).Return(nil, nil)
	fx.decisionRepo.EXPECT().Record(mock.Anything, mock.MatchedBy(func(d *entity.ModerationDecision) bool {
		return d.Decision == entity.DecisionPublished && d.AdminID == "admin-1"
	})).Return(nil)
	fx.publisher.EXPECT().PublishModerationEvent(mock.Anything, mock.Anything).Return(nil)
	fx.metrics.EXPECT().CountDecision("mission", "published").Return()

	mission, err := fx.service.SetPublished(ctx, "m1", true)
	require.NoError(t, err)
	assert.Equal(t, "m1", mission.ID)
	assert.Equal(t, entity.PublicationPublished, mission.Publication)
}

func TestMissionService_SetPublished_OverridesStaleBody(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()

	stale := &entity.Mission{ID: "m2", Publication: entity.PublicationPublished}
	fx.missionRepo.EXPECT().SetPublished(ctx, "m2", false).Return(stale, nil)
	fx.decisionRepo.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishModerationEvent(mock.Anything, mock.Anything).Return(nil)
	fx.metrics.EXPECT().CountDecision("mission", "unpublished").Return()

	mission, err := fx.service.SetPublished(ctx, "m2", false)
	require.NoError(t, err)
	assert.Equal(t, entity.PublicationDraft, mission.Publication)
}

func TestMissionService_SetPublished_FailureRecordsNothing(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()

	fx.missionRepo.EXPECT().SetPublished(ctx, "m3", true).Return(nil, errors.New("boom"))

	_, err := fx.service.SetPublished(ctx, "m3", true)
	require.Error(t, err)
	fx.decisionRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestMissionService_GetAndList(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()

	fx.missionRepo.EXPECT().FindByID(ctx, "m1").Return(&entity.Mission{ID: "m1", Title: "Go"}, nil)
	fx.missionRepo.EXPECT().List(ctx, entity.ListQuery{Page: 2}).Return(&entity.Page[entity.Mission]{Page: 2}, nil)

	mission, err := fx.service.GetMission(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Go", mission.Title)

	page, err := fx.service.ListMissions(ctx, entity.ListQuery{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
}

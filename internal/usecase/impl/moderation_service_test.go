package impl

import (
	"context"
	"log/slog"
	"testing"

	deliverycontext "mutant-admin/internal/delivery/context"
	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/domain/service"
	mockRepo "mutant-admin/internal/mocks/repository"
	mockSvc "mutant-admin/internal/mocks/service"
	"mutant-admin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// moderationServiceFixtures holds all test dependencies for moderation service tests.
type moderationServiceFixtures struct {
	service      usecase.ModerationUsecase
	kycRepo      *mockRepo.MockKYCRepository
	refundRepo   *mockRepo.MockRefundRepository
	decisionRepo *mockRepo.MockDecisionRepository
	publisher    *mockSvc.MockEventPublisher
	metrics      *mockSvc.MockMetricsRecorder
}

func createTestModerationService(t *testing.T) moderationServiceFixtures {
	fx := moderationServiceFixtures{
		kycRepo:      mockRepo.NewMockKYCRepository(t),
		refundRepo:   mockRepo.NewMockRefundRepository(t),
		decisionRepo: mockRepo.NewMockDecisionRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
	}
	fx.service = NewModerationService(ModerationServiceParams{
		KYCRepo:      fx.kycRepo,
		RefundRepo:   fx.refundRepo,
		DecisionRepo: fx.decisionRepo,
		Publisher:    fx.publisher,
		Metrics:      fx.metrics,
		Logger:       slog.New(slog.DiscardHandler),
	})

	return fx
}

func adminContext(adminID string) context.Context {
	return deliverycontext.WithSession(context.Background(), &entity.Session{ID: "s1", AdminID: adminID})
}

func (fx moderationServiceFixtures) expectDecision(resource entity.ResourceKind, id string, decision entity.Decision) {
	fx.decisionRepo.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(d *entity.ModerationDecision) bool {
			return d.Resource == resource && d.ResourceID == id && d.Decision == decision
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishModerationEvent(mock.Anything, mock.MatchedBy(func(e *service.ModerationEvent) bool {
			return e.Resource == resource && e.ResourceID == id && e.Decision == decision
		})).
		Return(nil)
	fx.metrics.EXPECT().CountDecision(string(resource), string(decision)).Return()
}

func TestModerationService_ListKYC_PassesQueryThrough(t *testing.T) {
	fx := createTestModerationService(t)
	ctx := context.Background()
	query := entity.ListQuery{Status: entity.FilterPending, Page: 1, Limit: 10}
	want := &entity.Page[entity.KYCRecord]{Items: []entity.KYCRecord{{ID: "k1"}}, TotalPages: 3}

	fx.kycRepo.EXPECT().List(ctx, query).Return(want, nil)

	page, err := fx.service.ListKYC(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 1)
}

func TestModerationService_VerifyKYC_ApproveFillsAdminFromSession(t *testing.T) {
	fx := createTestModerationService(t)
	ctx := adminContext("admin-1")

	fx.kycRepo.EXPECT().
		Verify(ctx, "u1", repository.KYCVerification{Status: entity.StatusApproved, AdminID: "admin-1"}).
		Return(&entity.KYCRecord{ID: "k1", Status: entity.StatusApproved}, nil)
	fx.expectDecision(entity.ResourceKYC, "u1", entity.DecisionApproved)

	record, err := fx.service.VerifyKYC(ctx, "u1", &usecase.VerifyKYCInput{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, record.Status)
}

func TestModerationService_VerifyKYC_RejectWithoutReasonSkipsBackend(t *testing.T) {
	fx := createTestModerationService(t)

	_, err := fx.service.VerifyKYC(adminContext("admin-1"), "u1", &usecase.VerifyKYCInput{Status: "rejected", Reason: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReasonRequired)
	fx.kycRepo.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}

func TestModerationService_VerifyKYC_RejectsNonTerminalStatus(t *testing.T) {
	fx := createTestModerationService(t)

	for _, status := range []string{"pending", "archived", ""} {
		_, err := fx.service.VerifyKYC(context.Background(), "u1", &usecase.VerifyKYCInput{Status: status})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition, status)
	}
}

func TestModerationService_VerifyKYC_BackendErrorIsSurfaced(t *testing.T) {
	fx := createTestModerationService(t)
	ctx := context.Background()
	backendErr := domainerrors.NewBackendError(409, "Already verified", "/api/admin/kyc/verify/u1")

	fx.kycRepo.EXPECT().
		Verify(ctx, "u1", mock.AnythingOfType("repository.KYCVerification")).
		Return(nil, backendErr)

	_, err := fx.service.VerifyKYC(ctx, "u1", &usecase.VerifyKYCInput{Status: "approved", AdminID: "a"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Equal(t, "Already verified", appErr.Message())
}

func TestModerationService_AuditFailuresDoNotFailTheDecision(t *testing.T) {
	fx := createTestModerationService(t)
	ctx := context.Background()

	fx.refundRepo.EXPECT().
		Reject(ctx, "r1", repository.RefundDecision{Reason: "duplicate", AdminID: "a"}).
		Return(&entity.Refund{ID: "r1", Status: entity.StatusRejected}, nil)
	var recordedID string
	fx.decisionRepo.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(d *entity.ModerationDecision) bool {
			recordedID = d.ID.String()

			return true
		})).
		Return(errors.New("db down"))
	var event *service.ModerationEvent
	fx.publisher.EXPECT().
		PublishModerationEvent(mock.Anything, mock.MatchedBy(func(e *service.ModerationEvent) bool {
			event = e

			return true
		})).
		Return(errors.New("topic gone"))
	fx.metrics.EXPECT().CountDecision("refund", "rejected").Return()

	refund, err := fx.service.RejectRefund(ctx, "r1", &usecase.RefundDecisionInput{Reason: " duplicate ", AdminID: "a"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, refund.Status)

	require.NotNil(t, event)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", event.DecisionID, "the event keeps its id when the audit write fails")
	assert.Equal(t, recordedID, event.DecisionID)
}

func TestModerationService_RejectRefund_BlankReason(t *testing.T) {
	fx := createTestModerationService(t)

	_, err := fx.service.RejectRefund(context.Background(), "r1", &usecase.RefundDecisionInput{})
	assert.ErrorIs(t, err, domainerrors.ErrReasonRequired)
	fx.refundRepo.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything, mock.Anything)
}

func TestModerationService_ApproveRefund(t *testing.T) {
	fx := createTestModerationService(t)
	ctx := adminContext("admin-2")

	fx.refundRepo.EXPECT().
		Approve(ctx, "r2", repository.RefundDecision{AdminID: "admin-2"}).
		Return(&entity.Refund{ID: "r2", Status: entity.StatusApproved}, nil)
	fx.expectDecision(entity.ResourceRefund, "r2", entity.DecisionApproved)

	refund, err := fx.service.ApproveRefund(ctx, "r2", &usecase.RefundDecisionInput{})
	require.NoError(t, err)
	assert.Equal(t, "r2", refund.ID)
}

func TestModerationService_DeleteKYC_RecordsDeletion(t *testing.T) {
	fx := createTestModerationService(t)
	ctx := adminContext("admin-1")

	fx.kycRepo.EXPECT().Delete(ctx, "u9").Return(nil)
	fx.expectDecision(entity.ResourceKYC, "u9", entity.DecisionDeleted)

	require.NoError(t, fx.service.DeleteKYC(ctx, "u9"))
}

func TestModerationService_History(t *testing.T) {
	fx := createTestModerationService(t)
	ctx := context.Background()
	query := repository.DecisionQuery{Resource: entity.ResourceKYC, ResourceID: "u1"}

	fx.decisionRepo.EXPECT().List(ctx, query).Return([]*entity.ModerationDecision{{ResourceID: "u1"}}, nil)

	decisions, err := fx.service.History(ctx, query)
	require.NoError(t, err)
	assert.Len(t, decisions, 1)

	_, err = fx.service.History(ctx, repository.DecisionQuery{Resource: "coupon"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

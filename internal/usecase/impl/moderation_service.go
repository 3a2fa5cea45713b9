package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "mutant-admin/internal/delivery/context"
	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/domain/service"
	"mutant-admin/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type moderationService struct {
	kycRepo      repository.KYCRepository
	refundRepo   repository.RefundRepository
	decisionRepo repository.DecisionRepository
	decisions    *decisionLog
	logger       *slog.Logger
}

// ModerationServiceParams holds dependencies for ModerationService, injected by Fx.
type ModerationServiceParams struct {
	fx.In

	KYCRepo      repository.KYCRepository
	RefundRepo   repository.RefundRepository
	DecisionRepo repository.DecisionRepository
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

// NewModerationService is the constructor for moderationService.
func NewModerationService(params ModerationServiceParams) usecase.ModerationUsecase {
	return &moderationService{
		kycRepo:      params.KYCRepo,
		refundRepo:   params.RefundRepo,
		decisionRepo: params.DecisionRepo,
		decisions:    newDecisionLog(params.DecisionRepo, params.Publisher, params.Metrics, params.Logger),
		logger:       params.Logger,
	}
}

func (srv *moderationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *moderationService) ListKYC(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.KYCRecord], error) {
	page, err := srv.kycRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list kyc records")
	}

	return page, nil
}

// VerifyKYC settles the KYC record owned by userID.
func (srv *moderationService) VerifyKYC(ctx context.Context, userID string, input *usecase.VerifyKYCInput) (*entity.KYCRecord, error) {
	status, ok := entity.ParseModerationStatus(input.Status)
	if !ok || !status.IsTerminal() {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("got " + input.Status)
	}

	reason := strings.TrimSpace(input.Reason)
	if status == entity.StatusRejected && reason == "" {
		return nil, domainerrors.ErrReasonRequired
	}

	adminID := actingAdmin(ctx, input.AdminID)
	record, err := srv.kycRepo.Verify(ctx, userID, repository.KYCVerification{
		Status:  status,
		Reason:  reason,
		AdminID: adminID,
	})
	if err != nil {
		srv.log(ctx).Warn("KYC verification rejected by backend", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify kyc")
	}

	srv.decisions.record(ctx, entity.ResourceKYC, userID, entity.DecisionFor(status), adminID, reason)

	return record, nil
}

func (srv *moderationService) DeleteKYC(ctx context.Context, userID string) error {
	if err := srv.kycRepo.Delete(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete kyc record")
	}

	srv.decisions.record(ctx, entity.ResourceKYC, userID, entity.DecisionDeleted, actingAdmin(ctx, ""), "")

	return nil
}

func (srv *moderationService) ListRefunds(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Refund], error) {
	page, err := srv.refundRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list refunds")
	}

	return page, nil
}

func (srv *moderationService) ApproveRefund(ctx context.Context, refundID string, input *usecase.RefundDecisionInput) (*entity.Refund, error) {
	reason := strings.TrimSpace(input.Reason)
	adminID := actingAdmin(ctx, input.AdminID)

	refund, err := srv.refundRepo.Approve(ctx, refundID, repository.RefundDecision{Reason: reason, AdminID: adminID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to approve refund")
	}

	srv.decisions.record(ctx, entity.ResourceRefund, refundID, entity.DecisionApproved, adminID, reason)

	return refund, nil
}

func (srv *moderationService) RejectRefund(ctx context.Context, refundID string, input *usecase.RefundDecisionInput) (*entity.Refund, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, domainerrors.ErrReasonRequired
	}
	adminID := actingAdmin(ctx, input.AdminID)

	refund, err := srv.refundRepo.Reject(ctx, refundID, repository.RefundDecision{Reason: reason, AdminID: adminID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reject refund")
	}

	srv.decisions.record(ctx, entity.ResourceRefund, refundID, entity.DecisionRejected, adminID, reason)

	return refund, nil
}

func (srv *moderationService) History(ctx context.Context, query repository.DecisionQuery) ([]*entity.ModerationDecision, error) {
	if query.Resource != "" && !query.Resource.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown resource " + string(query.Resource))
	}

	decisions, err := srv.decisionRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list moderation decisions")
	}

	return decisions, nil
}

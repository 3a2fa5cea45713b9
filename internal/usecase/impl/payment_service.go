package impl

import (
	"context"

	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/usecase"

	"github.com/pkg/errors"
)

type paymentService struct {
	transactionRepo repository.TransactionRepository
	earningsRepo    repository.EarningsRepository
}

func NewPaymentService(transactionRepo repository.TransactionRepository, earningsRepo repository.EarningsRepository) usecase.PaymentUsecase {
	return &paymentService{
		transactionRepo: transactionRepo,
		earningsRepo:    earningsRepo,
	}
}

func (srv *paymentService) ListTransactions(ctx context.Context, query repository.TransactionQuery) (*entity.Page[entity.Transaction], error) {
	if query.Status != "" && !query.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown transaction status " + string(query.Status))
	}

	page, err := srv.transactionRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return page, nil
}

func (srv *paymentService) PlatformEarnings(ctx context.Context) (*entity.EarningsSummary, error) {
	summary, err := srv.earningsRepo.Platform(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load platform earnings")
	}

	return summary, nil
}

func (srv *paymentService) InstructorEarnings(ctx context.Context, instructorID string) (*entity.EarningsSummary, error) {
	summary, err := srv.earningsRepo.Instructor(ctx, instructorID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load earnings of instructor %s", instructorID)
	}

	return summary, nil
}

func (srv *paymentService) AffiliateEarnings(ctx context.Context, affiliateID string) (*entity.EarningsSummary, error) {
	summary, err := srv.earningsRepo.Affiliate(ctx, affiliateID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load earnings of affiliate %s", affiliateID)
	}

	return summary, nil
}

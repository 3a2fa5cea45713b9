package usecase

import (
	"context"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
)

// PaymentUsecase defines the read-only payment views: the transaction ledger
// and the earnings summaries.
type PaymentUsecase interface {
	ListTransactions(ctx context.Context, query repository.TransactionQuery) (*entity.Page[entity.Transaction], error)
	PlatformEarnings(ctx context.Context) (*entity.EarningsSummary, error)
	InstructorEarnings(ctx context.Context, instructorID string) (*entity.EarningsSummary, error)
	AffiliateEarnings(ctx context.Context, affiliateID string) (*entity.EarningsSummary, error)
}

// Package fixtures serves placeholder data for routes the backend does not implement.
// Every value produced here is marked with entity.SourceFixture.
package fixtures

import (
	"context"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
)

const fixtureCurrency = "NGN"

type earningsRepository struct {
	next repository.EarningsRepository
}

// NewEarningsRepository answers per-earner summaries with fixed figures and
// delegates the platform summary to next.
func NewEarningsRepository(next repository.EarningsRepository) repository.EarningsRepository {
	return &earningsRepository{next: next}
}

func (r *earningsRepository) Platform(ctx context.Context) (*entity.EarningsSummary, error) {
	return r.next.Platform(ctx)
}

// Instructor returns the same figures for every id.
func (r *earningsRepository) Instructor(_ context.Context, instructorID string) (*entity.EarningsSummary, error) {
	return &entity.EarningsSummary{
		OwnerType:     entity.OwnerInstructor,
		OwnerID:       instructorID,
		Currency:      fixtureCurrency,
		TotalEarnings: 125000,
		PendingPayout: 25000,
		PaidOut:       100000,
		Breakdown:     monthlyBreakdown(40000, 35000, 50000),
		Source:        entity.SourceFixture,
	}, nil
}

// Affiliate returns the same figures for every id.
func (r *earningsRepository) Affiliate(_ context.Context, affiliateID string) (*entity.EarningsSummary, error) {
	return &entity.EarningsSummary{
		OwnerType:     entity.OwnerAffiliate,
		OwnerID:       affiliateID,
		Currency:      fixtureCurrency,
		TotalEarnings: 42000,
		PendingPayout: 12000,
		PaidOut:       30000,
		Breakdown:     monthlyBreakdown(10000, 14000, 18000),
		Source:        entity.SourceFixture,
	}, nil
}

func monthlyBreakdown(amounts ...float64) []entity.EarningsEntry {
	periods := []string{"2024-01", "2024-02", "2024-03"}
	entries := make([]entity.EarningsEntry, 0, len(amounts))
	for i, amount := range amounts {
		entries = append(entries, entity.EarningsEntry{Period: periods[i%len(periods)], Amount: amount})
	}

	return entries
}

package backend

import (
	"context"
	"net/http"

	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/repository"
)

const earningsPlatformPath = "/api/admin/earnings/platform"

type earningsRepository struct {
	client *Client
}

// NewEarningsRepository is the constructor for the backend earnings repository.
// Only the platform summary exists upstream; per-earner summaries are not implemented.
func NewEarningsRepository(client *Client) repository.EarningsRepository {
	return &earningsRepository{client: client}
}

func (r *earningsRepository) Platform(ctx context.Context) (*entity.EarningsSummary, error) {
	raw, err := r.client.do(ctx, call{
		method: http.MethodGet,
		path:   earningsPlatformPath,
		route:  earningsPlatformPath,
	})
	if err != nil {
		return nil, err
	}

	summary, err := decodeItem[entity.EarningsSummary](raw, earningsPlatformPath, true)
	if err != nil {
		return nil, err
	}
	summary.OwnerType = entity.OwnerPlatform
	summary.Source = entity.SourceBackend

	return summary, nil
}

func (r *earningsRepository) Instructor(context.Context, string) (*entity.EarningsSummary, error) {
	return nil, domainerrors.ErrNotImplemented.WithDetails("instructor earnings")
}

func (r *earningsRepository) Affiliate(context.Context, string) (*entity.EarningsSummary, error) {
	return nil, domainerrors.ErrNotImplemented.WithDetails("affiliate earnings")
}

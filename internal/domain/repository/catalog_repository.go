package repository

import (
	"context"
	"net/url"
	"strconv"

	"mutant-admin/internal/domain/entity"
)

// MissionRepository reaches the backend's mission administration endpoints.
type MissionRepository interface {
	List(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Mission], error)
	FindByID(ctx context.Context, id string) (*entity.Mission, error)
	Delete(ctx context.Context, id string) error

	// SetPublished sends {isPublished} and returns the mission as the backend saw it.
	SetPublished(ctx context.Context, id string, published bool) (*entity.Mission, error)
}

// UserRepository reaches the per-role user collections.
type UserRepository interface {
	List(ctx context.Context, collection entity.UserCollection, query entity.ListQuery) (*entity.Page[entity.User], error)
	FindByID(ctx context.Context, collection entity.UserCollection, id string) (*entity.User, error)
	Delete(ctx context.Context, collection entity.UserCollection, id string) error
}

// CouponValidationRequest asks the backend whether a code applies.
type CouponValidationRequest struct {
	Code      string  `json:"code" validate:"required"`
	Amount    float64 `json:"amount,omitempty" validate:"gte=0"`
	MissionID string  `json:"missionId,omitempty"`
}

// CouponRepository reaches the coupon CRUD endpoints.
type CouponRepository interface {
	List(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Coupon], error)
	FindByID(ctx context.Context, id string) (*entity.Coupon, error)
	Create(ctx context.Context, coupon *entity.Coupon) (*entity.Coupon, error)
	Update(ctx context.Context, id string, coupon *entity.Coupon) (*entity.Coupon, error)
	Delete(ctx context.Context, id string) error
	Validate(ctx context.Context, req CouponValidationRequest) (*entity.CouponValidation, error)
}

// TransactionQuery filters the read-only transaction ledger.
type TransactionQuery struct {
	Status entity.TransactionStatus
	Page   int
	Limit  int
}

// Values encodes the query for the backend.
func (q TransactionQuery) Values() url.Values {
	values := url.Values{}
	if q.Status != "" {
		values.Set("status", string(q.Status))
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	return values
}

type TransactionRepository interface {
	List(ctx context.Context, query TransactionQuery) (*entity.Page[entity.Transaction], error)
}

// EarningsRepository produces earnings summaries. Implementations without real
// data for an owner return errors.ErrNotImplemented.
type EarningsRepository interface {
	Platform(ctx context.Context) (*entity.EarningsSummary, error)
	Instructor(ctx context.Context, instructorID string) (*entity.EarningsSummary, error)
	Affiliate(ctx context.Context, affiliateID string) (*entity.EarningsSummary, error)
}

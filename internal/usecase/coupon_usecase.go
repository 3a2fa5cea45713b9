package usecase

import (
	"context"
	"time"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
)

// CouponInput is the body of coupon create and update.
type CouponInput struct {
	Code               string     `json:"code" validate:"required,max=32"`
	Description        string     `json:"description"`
	DiscountPercentage float64    `json:"discountPercentage" validate:"gt=0,lte=100"`
	ValidFrom          *time.Time `json:"validFrom"`
	ValidUntil         *time.Time `json:"validUntil"`
	MaxUses            int        `json:"maxUses" validate:"gte=0"`
	MaxUsesPerUser     int        `json:"maxUsesPerUser" validate:"gte=0"`
	IsActive           *bool      `json:"isActive"`
}

// CouponUsecase defines coupon CRUD and validation.
type CouponUsecase interface {
	ListCoupons(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Coupon], error)
	GetCoupon(ctx context.Context, id string) (*entity.Coupon, error)
	CreateCoupon(ctx context.Context, input *CouponInput) (*entity.Coupon, error)
	UpdateCoupon(ctx context.Context, id string, input *CouponInput) (*entity.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
	ValidateCoupon(ctx context.Context, req *repository.CouponValidationRequest) (*entity.CouponValidation, error)
}

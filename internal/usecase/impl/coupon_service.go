package impl

import (
	"context"
	"strings"

	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/usecase"

	"github.com/pkg/errors"
)

type couponService struct {
	couponRepo repository.CouponRepository
}

func NewCouponService(couponRepo repository.CouponRepository) usecase.CouponUsecase {
	return &couponService{couponRepo: couponRepo}
}

// toCoupon normalizes the code and defaults new coupons to active.
func toCoupon(input *usecase.CouponInput) (*entity.Coupon, error) {
	if input.ValidFrom != nil && input.ValidUntil != nil && input.ValidUntil.Before(*input.ValidFrom) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("validUntil must not be before validFrom")
	}
	if input.MaxUses > 0 && input.MaxUsesPerUser > input.MaxUses {
		return nil, domainerrors.ErrValidationFailed.WithDetails("maxUsesPerUser must not exceed maxUses")
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return &entity.Coupon{
		Code:               strings.ToUpper(strings.TrimSpace(input.Code)),
		Description:        input.Description,
		DiscountPercentage: input.DiscountPercentage,
		ValidFrom:          input.ValidFrom,
		ValidUntil:         input.ValidUntil,
		MaxUses:            input.MaxUses,
		MaxUsesPerUser:     input.MaxUsesPerUser,
		IsActive:           isActive,
	}, nil
}

func (srv *couponService) ListCoupons(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Coupon], error) {
	page, err := srv.couponRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return page, nil
}

func (srv *couponService) GetCoupon(ctx context.Context, id string) (*entity.Coupon, error) {
	coupon, err := srv.couponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get coupon %s", id)
	}

	return coupon, nil
}

func (srv *couponService) CreateCoupon(ctx context.Context, input *usecase.CouponInput) (*entity.Coupon, error) {
	coupon, err := toCoupon(input)
	if err != nil {
		return nil, err
	}

	created, err := srv.couponRepo.Create(ctx, coupon)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create coupon")
	}

	return created, nil
}

func (srv *couponService) UpdateCoupon(ctx context.Context, id string, input *usecase.CouponInput) (*entity.Coupon, error) {
	coupon, err := toCoupon(input)
	if err != nil {
		return nil, err
	}
	coupon.ID = id

	updated, err := srv.couponRepo.Update(ctx, id, coupon)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update coupon %s", id)
	}

	return updated, nil
}

func (srv *couponService) DeleteCoupon(ctx context.Context, id string) error {
	if err := srv.couponRepo.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "failed to delete coupon %s", id)
	}

	return nil
}

func (srv *couponService) ValidateCoupon(ctx context.Context, req *repository.CouponValidationRequest) (*entity.CouponValidation, error) {
	normalized := *req
	normalized.Code = strings.ToUpper(strings.TrimSpace(req.Code))

	validation, err := srv.couponRepo.Validate(ctx, normalized)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate coupon")
	}

	return validation, nil
}

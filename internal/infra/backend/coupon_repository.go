package backend

import (
	"context"
	"net/http"

	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
)

const couponPath = "/api/coupon"

type couponRepository struct {
	client *Client
}

// NewCouponRepository is the constructor for the backend coupon repository.
func NewCouponRepository(client *Client) repository.CouponRepository {
	return &couponRepository{client: client}
}

func (r *couponRepository) List(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Coupon], error) {
	raw, err := r.client.do(ctx, call{
		method: http.MethodGet,
		path:   couponPath,
		route:  couponPath,
		query:  query.Values(),
	})
	if err != nil {
		return nil, err
	}

	return decodePage[entity.Coupon](raw, couponPath)
}

func (r *couponRepository) FindByID(ctx context.Context, id string) (*entity.Coupon, error) {
	path := couponPath + "/" + segment(id)
	raw, err := r.client.do(ctx, call{
		method: http.MethodGet,
		path:   path,
		route:  couponPath + "/:id",
	})
	if err != nil {
		return nil, err
	}

	return decodeItem[entity.Coupon](raw, path, true)
}

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) (*entity.Coupon, error) {
	raw, err := r.client.do(ctx, call{
		method: http.MethodPost,
		path:   couponPath,
		route:  couponPath,
		body:   coupon,
	})
	if err != nil {
		return nil, err
	}

	return decodeItem[entity.Coupon](raw, couponPath, false)
}

func (r *couponRepository) Update(ctx context.Context, id string, coupon *entity.Coupon) (*entity.Coupon, error) {
	path := couponPath + "/" + segment(id)
	raw, err := r.client.do(ctx, call{
		method: http.MethodPut,
		path:   path,
		route:  couponPath + "/:id",
		body:   coupon,
	})
	if err != nil {
		return nil, err
	}

	return decodeItem[entity.Coupon](raw, path, false)
}

func (r *couponRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, call{
		method: http.MethodDelete,
		path:   couponPath + "/" + segment(id),
		route:  couponPath + "/:id",
	})

	return err
}

func (r *couponRepository) Validate(ctx context.Context, req repository.CouponValidationRequest) (*entity.CouponValidation, error) {
	path := couponPath + "/validate"
	raw, err := r.client.do(ctx, call{
		method: http.MethodPost,
		path:   path,
		route:  path,
		body:   req,
	})
	if err != nil {
		return nil, err
	}

	validation, err := decodeItem[entity.CouponValidation](raw, path, false)
	if err != nil {
		return nil, err
	}
	if validation == nil {
		// An answer without data is a bare 2xx verdict.
		validation = &entity.CouponValidation{Valid: true, Code: req.Code}
	}

	return validation, nil
}

package handler

import (
	"net/http"

	"mutant-admin/internal/delivery/api/response"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CouponHandler struct {
	couponUC usecase.CouponUsecase
}

func NewCouponHandler(couponUC usecase.CouponUsecase) *CouponHandler {
	return &CouponHandler{couponUC: couponUC}
}

// List handles GET /api/coupon
func (h *CouponHandler) List(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return err
	}

	page, err := h.couponUC.ListCoupons(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.List(c, page)
}

// Get handles GET /api/coupon/:id
func (h *CouponHandler) Get(c echo.Context) error {
	coupon, err := h.couponUC.GetCoupon(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, coupon)
}

// Create handles POST /api/coupon
func (h *CouponHandler) Create(c echo.Context) error {
	var req usecase.CouponInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	coupon, err := h.couponUC.CreateCoupon(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Message(c, http.StatusCreated, "Coupon created", coupon)
}

// Update handles PUT /api/coupon/:id
func (h *CouponHandler) Update(c echo.Context) error {
	var req usecase.CouponInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	coupon, err := h.couponUC.UpdateCoupon(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Coupon updated", coupon)
}

// Delete handles DELETE /api/coupon/:id
func (h *CouponHandler) Delete(c echo.Context) error {
	if err := h.couponUC.DeleteCoupon(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Coupon deleted", nil)
}

// Validate handles POST /api/coupon/validate
func (h *CouponHandler) Validate(c echo.Context) error {
	var req repository.CouponValidationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	validation, err := h.couponUC.ValidateCoupon(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, validation)
}

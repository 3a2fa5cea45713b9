package handler

import (
	"net/http"
	"strconv"

	"mutant-admin/internal/delivery/api/response"
	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ModerationHandler serves the KYC and refund review routes.
type ModerationHandler struct {
	moderationUC usecase.ModerationUsecase
}

func NewModerationHandler(moderationUC usecase.ModerationUsecase) *ModerationHandler {
	return &ModerationHandler{moderationUC: moderationUC}
}

// ListKYC handles GET /api/admin/kyc
func (h *ModerationHandler) ListKYC(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return err
	}

	page, err := h.moderationUC.ListKYC(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.List(c, page)
}

// VerifyKYC handles PATCH /api/admin/kyc/verify/:userId
func (h *ModerationHandler) VerifyKYC(c echo.Context) error {
	var req usecase.VerifyKYCInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	record, err := h.moderationUC.VerifyKYC(c.Request().Context(), c.Param("userId"), &req)
	if err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "KYC "+req.Status, record)
}

// DeleteKYC handles DELETE /api/admin/kyc/:userId
func (h *ModerationHandler) DeleteKYC(c echo.Context) error {
	if err := h.moderationUC.DeleteKYC(c.Request().Context(), c.Param("userId")); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "KYC record deleted", nil)
}

// ListRefunds handles GET /api/admin/payment/refund
func (h *ModerationHandler) ListRefunds(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return err
	}

	page, err := h.moderationUC.ListRefunds(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.List(c, page)
}

// ApproveRefund handles PUT /api/admin/payment/refund/:refundId/approve
func (h *ModerationHandler) ApproveRefund(c echo.Context) error {
	var req usecase.RefundDecisionInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	refund, err := h.moderationUC.ApproveRefund(c.Request().Context(), c.Param("refundId"), &req)
	if err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Refund approved", refund)
}

// RejectRefund handles PUT /api/admin/payment/refund/:refundId/reject
func (h *ModerationHandler) RejectRefund(c echo.Context) error {
	var req usecase.RefundDecisionInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	refund, err := h.moderationUC.RejectRefund(c.Request().Context(), c.Param("refundId"), &req)
	if err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Refund rejected", refund)
}

// History handles GET /api/admin/moderation/history?resource=&id=&limit=
func (h *ModerationHandler) History(c echo.Context) error {
	query := repository.DecisionQuery{
		Resource:   entity.ResourceKind(c.QueryParam("resource")),
		ResourceID: c.QueryParam("id"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("limit must be a non-negative integer")
		}
		query.Limit = limit
	}

	decisions, err := h.moderationUC.History(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.Collection(c, decisions)
}

package handler

import (
	"net/http"

	"mutant-admin/internal/delivery/api/response"
	"mutant-admin/internal/domain/entity"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PaymentHandler serves transactions and earnings.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
}

func NewPaymentHandler(paymentUC usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// Transactions handles GET /api/admin/payment/transactions
func (h *PaymentHandler) Transactions(c echo.Context) error {
	page, err := positiveParam(c, "page")
	if err != nil {
		return err
	}
	limit, err := positiveParam(c, "limit")
	if err != nil {
		return err
	}

	result, err := h.paymentUC.ListTransactions(c.Request().Context(), repository.TransactionQuery{
		Status: entity.TransactionStatus(c.QueryParam("status")),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return response.List(c, result)
}

// PlatformEarnings handles GET /api/admin/earnings/platform
func (h *PaymentHandler) PlatformEarnings(c echo.Context) error {
	summary, err := h.paymentUC.PlatformEarnings(c.Request().Context())
	if err != nil {
		return err
	}

	return earnings(c, summary)
}

// InstructorEarnings handles GET /api/admin/earnings/instructors/:id
func (h *PaymentHandler) InstructorEarnings(c echo.Context) error {
	summary, err := h.paymentUC.InstructorEarnings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return earnings(c, summary)
}

// AffiliateEarnings handles GET /api/admin/earnings/affiliates/:id
func (h *PaymentHandler) AffiliateEarnings(c echo.Context) error {
	summary, err := h.paymentUC.AffiliateEarnings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return earnings(c, summary)
}

// earnings flags placeholder figures in a header as well as in the body.
func earnings(c echo.Context, summary *entity.EarningsSummary) error {
	if summary != nil && summary.Source == entity.SourceFixture {
		c.Response().Header().Set(response.HeaderDataSource, string(entity.SourceFixture))
	}

	return response.Success(c, http.StatusOK, summary)
}

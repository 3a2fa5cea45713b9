// Package handler turns gateway HTTP requests into use case calls.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"mutant-admin/internal/delivery/api/response"
	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// listQuery reads ?status=&page=&limit=. An empty status means all.
func listQuery(c echo.Context) (entity.ListQuery, error) {
	filter, ok := entity.ParseStatusFilter(c.QueryParam("status"))
	if !ok {
		return entity.ListQuery{}, domainerrors.ErrInvalidFilter.WithDetails("got " + c.QueryParam("status"))
	}

	page, err := positiveParam(c, "page")
	if err != nil {
		return entity.ListQuery{}, err
	}
	limit, err := positiveParam(c, "limit")
	if err != nil {
		return entity.ListQuery{}, err
	}

	return entity.ListQuery{Status: filter, Page: page, Limit: limit}, nil
}

// positiveParam parses an optional non-negative integer query parameter.
func positiveParam(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a non-negative integer")
	}

	return value, nil
}

// bindAndValidate decodes the body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	return c.Validate(req)
}

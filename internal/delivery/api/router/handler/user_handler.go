package handler

import (
	"net/http"

	"mutant-admin/internal/delivery/api/response"
	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the per-role user collections.
type UserHandler struct {
	userUC usecase.UserUsecase
}

func NewUserHandler(userUC usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

func collectionParam(c echo.Context) (entity.UserCollection, error) {
	collection, ok := entity.ParseUserCollection(c.Param("role"))
	if !ok {
		return "", domainerrors.ErrNotFound.WithDetails("unknown user collection " + c.Param("role"))
	}

	return collection, nil
}

// List handles GET /api/admin/users/:role
func (h *UserHandler) List(c echo.Context) error {
	collection, err := collectionParam(c)
	if err != nil {
		return err
	}
	query, err := listQuery(c)
	if err != nil {
		return err
	}

	page, err := h.userUC.ListUsers(c.Request().Context(), collection, query)
	if err != nil {
		return err
	}

	return response.List(c, page)
}

// Get handles GET /api/admin/users/:role/:id
func (h *UserHandler) Get(c echo.Context) error {
	collection, err := collectionParam(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), collection, c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user)
}

// Delete handles DELETE /api/admin/users/:role/:id
func (h *UserHandler) Delete(c echo.Context) error {
	collection, err := collectionParam(c)
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), collection, c.Param("id")); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "User deleted", nil)
}

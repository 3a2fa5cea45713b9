package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mutant-admin/config"
	"mutant-admin/internal/delivery/api/middleware"
	"mutant-admin/internal/delivery/api/response"
	deliverycontext "mutant-admin/internal/delivery/context"
	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC         usecase.AuthUsecase
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
	Logger         *slog.Logger
}

// AuthHandler serves login, logout and the session lookup.
type AuthHandler struct {
	authUC         usecase.AuthUsecase
	authMiddleware *middleware.AuthMiddleware
	cookieName     string
	secureCookie   bool
	logger         *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:         params.AuthUC,
		authMiddleware: params.AuthMiddleware,
		cookieName:     params.Config.Auth.CookieName,
		secureCookie:   params.Config.Env.Env == "production",
		logger:         params.Logger,
	}
}

// LoginResponse keeps the wire shape dashboard clients already parse.
type LoginResponse struct {
	Success      bool         `json:"success"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         *entity.User `json:"user"`
	ExpiresAt    time.Time    `json:"expiresAt"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    out.Token,
		Path:     "/",
		Expires:  out.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, LoginResponse{
		Success:      true,
		Token:        out.Token,
		RefreshToken: out.RefreshToken,
		User:         out.User,
		ExpiresAt:    out.ExpiresAt,
	})
}

// Logout handles POST /api/auth/logout. It always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := h.authMiddleware.TokenFromRequest(c)
	if err := h.authUC.Logout(c.Request().Context(), token); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Logout failed", slog.Any("error", err))
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Message(c, http.StatusOK, "Logged out", nil)
}

// Session handles GET /api/auth/session
func (h *AuthHandler) Session(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return domainerrors.ErrSessionNotFound
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":      session.User,
		"expiresAt": session.ExpiresAt,
	})
}

package middleware

import (
	"log/slog"
	"strings"

	"mutant-admin/config"
	deliverycontext "mutant-admin/internal/delivery/context"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller's gateway session before admin routes run.
type AuthMiddleware struct {
	authUC      usecase.AuthUsecase
	cookieName  string
	passthrough bool
	logger      *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:      authUC,
		cookieName:  cfg.Auth.CookieName,
		passthrough: cfg.Auth.Passthrough,
		logger:      logger,
	}
}

// TokenFromRequest returns the bearer token, falling back to the session cookie.
func (m *AuthMiddleware) TokenFromRequest(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	if m.cookieName == "" {
		return ""
	}
	if cookie, err := c.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// Authenticate validates the session token. With passthrough enabled, a bearer
// that is not a gateway token is forwarded to the backend untouched.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.TokenFromRequest(c)
		if token == "" {
			return errors.Wrap(domainerrors.ErrUnauthorized, "missing bearer token")
		}

		ctx := c.Request().Context()
		session, err := m.authUC.Authenticate(ctx, token)
		if err == nil {
			deliverycontext.SetSession(c, session)

			return next(c)
		}

		if m.passthrough && !looksLikeJWT(token) {
			c.SetRequest(c.Request().WithContext(deliverycontext.WithBackendToken(ctx, token)))

			return next(c)
		}

		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Rejected admin request", slog.Any("error", err))

		return err
	}
}

// looksLikeJWT reports whether token has the three dot-separated segments of a JWS.
func looksLikeJWT(token string) bool {
	return strings.Count(token, ".") == 2
}

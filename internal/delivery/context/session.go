package context

import (
	"context"

	"mutant-admin/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetSession stores the authenticated session in both echo.Context and the request context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
	ctx := WithSession(c.Request().Context(), session)
	if session != nil && session.BackendToken != "" {
		ctx = WithBackendToken(ctx, session.BackendToken)
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetSession returns the session set by the auth middleware, if any.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(*entity.Session)

	return session, ok && session != nil
}

// WithSession returns a new context with the session.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}

// SessionFromContext extracts the session from standard context.Context.
func SessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(KeySession).(*entity.Session)

	return session, ok && session != nil
}

// WithBackendToken returns a new context carrying the bearer for backend calls.
func WithBackendToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, KeyBackendToken, token)
}

// GetBackendToken extracts the backend bearer. Empty when the caller is anonymous.
func GetBackendToken(ctx context.Context) string {
	if token, ok := ctx.Value(KeyBackendToken).(string); ok {
		return token
	}

	return ""
}

// AdminIDFromContext returns the id of the admin acting in ctx.
func AdminIDFromContext(ctx context.Context) string {
	if session, ok := SessionFromContext(ctx); ok {
		return session.AdminID
	}

	return ""
}

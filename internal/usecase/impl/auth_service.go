package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mutant-admin/config"
	deliverycontext "mutant-admin/internal/delivery/context"
	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/domain/service"
	"mutant-admin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Session events counted by the metrics recorder.
const (
	sessionEventLogin    = "login"
	sessionEventLogout   = "logout"
	sessionEventRejected = "rejected"
)

type authService struct {
	gateway      repository.AuthGateway
	sessions     service.SessionStore
	tokens       service.TokenService
	hasher       service.PasswordHasher
	metrics      service.MetricsRecorder
	localAdmins  []config.LocalAdmin
	serviceToken string
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Gateway  repository.AuthGateway
	Sessions service.SessionStore
	Tokens   service.TokenService
	Hasher   service.PasswordHasher
	Metrics  service.MetricsRecorder
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		gateway:  params.Gateway,
		sessions: params.Sessions,
		tokens:   params.Tokens,
		hasher:   params.Hasher,
		metrics:  params.Metrics,
		logger:   params.Logger,
		now:      time.Now,
	}
	if params.Config != nil {
		srv.localAdmins = params.Config.Auth.LocalAdmins
		srv.serviceToken = params.Config.Auth.ServiceToken
	}

	return srv
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) count(event string) {
	if srv.metrics != nil {
		srv.metrics.CountSessionEvent(event)
	}
}

// Login orchestrates the admin login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Debug("Starting admin login", slog.String("email", email))

	// 1. Configured operator accounts take precedence over the backend.
	session, err := srv.localLogin(email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// 2. Everyone else is checked by the backend.
	if session == nil {
		session, err = srv.backendLogin(ctx, email, input.Password)
		if err != nil {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

			return nil, errors.Wrap(err, "backend login failed")
		}
	}

	// 3. Persist the session and hand out a token pointing at it.
	now := srv.now().UTC()
	session.ID = uuid.NewString()
	session.CreatedAt = now
	session.ExpiresAt = now.Add(srv.tokens.TTL())

	if err := srv.sessions.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	token, err := srv.tokens.Issue(session)
	if err != nil {
		_ = srv.sessions.Delete(ctx, session.ID)

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.count(sessionEventLogin)
	srv.log(ctx).Info("Admin logged in", slog.String("adminID", session.AdminID), slog.Bool("local", session.Local))

	return &usecase.LoginOutput{
		Token:        token,
		RefreshToken: session.RefreshToken,
		User:         session.User,
		ExpiresAt:    session.ExpiresAt,
	}, nil
}

// localLogin returns nil without error when no operator account has the email.
func (srv *authService) localLogin(email, password string) (*entity.Session, error) {
	for _, admin := range srv.localAdmins {
		if !strings.EqualFold(strings.TrimSpace(admin.Email), email) {
			continue
		}
		if !srv.hasher.Check(password, admin.PasswordHash) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		adminID := admin.ID
		if adminID == "" {
			adminID = "local:" + email
		}

		return &entity.Session{
			AdminID: adminID,
			User: &entity.User{
				ID:        adminID,
				FirstName: admin.Name,
				Email:     email,
				Role:      entity.RoleAdmin,
			},
			BackendToken: srv.serviceToken,
			Local:        true,
		}, nil
	}

	return nil, nil
}

func (srv *authService) backendLogin(ctx context.Context, email, password string) (*entity.Session, error) {
	login, err := srv.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user := login.User
	if user == nil {
		user = &entity.User{Email: email, Role: entity.RoleAdmin}
	}
	adminID := user.ID
	if adminID == "" {
		adminID = email
	}

	return &entity.Session{
		AdminID:      adminID,
		User:         user,
		BackendToken: login.Token,
		RefreshToken: login.RefreshToken,
	}, nil
}

// Logout never fails: the session is dropped even when the backend is unreachable.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := srv.tokens.Validate(token)
	if err != nil {
		srv.log(ctx).Debug("Logout with invalid token", slog.Any("error", err))

		return nil
	}

	session, err := srv.sessions.Get(ctx, claims.SessionID)
	switch {
	case err != nil:
		srv.log(ctx).Debug("Logout for unknown session", slog.String("sessionID", claims.SessionID), slog.Any("error", err))
	case !session.Local && session.BackendToken != "":
		if err := srv.gateway.Logout(deliverycontext.WithBackendToken(ctx, session.BackendToken)); err != nil {
			srv.log(ctx).Warn("Backend logout failed", slog.String("adminID", session.AdminID), slog.Any("error", err))
		}
	}

	if err := srv.sessions.Delete(ctx, claims.SessionID); err != nil {
		srv.log(ctx).Error("Failed to delete session", slog.String("sessionID", claims.SessionID), slog.Any("error", err))
	}

	srv.count(sessionEventLogout)

	return nil
}

// Authenticate resolves a gateway token to its session.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := srv.tokens.Validate(token)
	if err != nil {
		srv.count(sessionEventRejected)

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}

	session, err := srv.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		srv.count(sessionEventRejected)

		return nil, errors.Wrap(err, "failed to load session")
	}
	if session.AdminID != claims.Subject || session.Expired(srv.now()) {
		srv.count(sessionEventRejected)

		return nil, domainerrors.ErrSessionNotFound
	}

	return session, nil
}

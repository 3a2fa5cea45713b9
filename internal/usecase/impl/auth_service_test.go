package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"mutant-admin/config"
	deliverycontext "mutant-admin/internal/delivery/context"
	"mutant-admin/internal/domain/entity"
	domainerrors "mutant-admin/internal/domain/errors"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/domain/service"
	mockRepo "mutant-admin/internal/mocks/repository"
	mockSvc "mutant-admin/internal/mocks/service"
	"mutant-admin/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	gateway  *mockRepo.MockAuthGateway
	sessions *mockSvc.MockSessionStore
	tokens   *mockSvc.MockTokenService
	hasher   *mockSvc.MockPasswordHasher
	metrics  *mockSvc.MockMetricsRecorder
}

func createTestAuthService(t *testing.T, admins ...config.LocalAdmin) authServiceFixtures {
	cfg := &config.Config{}
	cfg.Auth.LocalAdmins = admins
	cfg.Auth.ServiceToken = "service-token"

	fx := authServiceFixtures{
		gateway:  mockRepo.NewMockAuthGateway(t),
		sessions: mockSvc.NewMockSessionStore(t),
		tokens:   mockSvc.NewMockTokenService(t),
		hasher:   mockSvc.NewMockPasswordHasher(t),
		metrics:  mockSvc.NewMockMetricsRecorder(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		Gateway:  fx.gateway,
		Sessions: fx.sessions,
		Tokens:   fx.tokens,
		Hasher:   fx.hasher,
		Metrics:  fx.metrics,
		Config:   cfg,
		Logger:   slog.New(slog.DiscardHandler),
	})

	return fx
}

func TestAuthService_Login_Backend(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1", Email: "ada@mutant.io", Role: entity.RoleAdmin}

	fx.gateway.EXPECT().Login(ctx, "ada@mutant.io", "secret").
		Return(&repository.BackendLogin{Token: "backend-token", RefreshToken: "refresh", User: user}, nil)
	fx.tokens.EXPECT().TTL().Return(time.Hour)

	var saved *entity.Session
	fx.sessions.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) { saved = session }).
		Return(nil)
	fx.tokens.EXPECT().Issue(mock.AnythingOfType("*entity.Session")).Return("gateway-token", nil)
	fx.metrics.EXPECT().CountSessionEvent("login").Return()

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: " Ada@Mutant.io ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "gateway-token", out.Token)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, "u1", out.User.ID)

	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "backend-token", saved.BackendToken)
	assert.Equal(t, "u1", saved.AdminID)
	assert.False(t, saved.Local)
	assert.WithinDuration(t, saved.CreatedAt.Add(time.Hour), saved.ExpiresAt, time.Second)
}

func TestAuthService_Login_LocalAdminUsesServiceToken(t *testing.T) {
	fx := createTestAuthService(t, config.LocalAdmin{ID: "ops", Email: "ops@mutant.io", Name: "Ops", PasswordHash: "hash"})
	ctx := context.Background()

	fx.hasher.EXPECT().Check("pw", "hash").Return(true)
	fx.tokens.EXPECT().TTL().Return(time.Hour)
	fx.sessions.EXPECT().Save(ctx, mock.MatchedBy(func(s *entity.Session) bool {
		return s.Local && s.BackendToken == "service-token" && s.AdminID == "ops"
	})).Return(nil)
	fx.tokens.EXPECT().Issue(mock.Anything).Return("t", nil)
	fx.metrics.EXPECT().CountSessionEvent("login").Return()

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ops@mutant.io", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	fx.gateway.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_LocalAdminWrongPassword(t *testing.T) {
	fx := createTestAuthService(t, config.LocalAdmin{Email: "ops@mutant.io", PasswordHash: "hash"})

	fx.hasher.EXPECT().Check("bad", "hash").Return(false)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ops@mutant.io", Password: "bad"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_BackendRejects(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().Login(ctx, "x@y.z", "pw").
		Return(nil, domainerrors.NewBackendError(401, "Invalid credentials", "/api/auth/login"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "x@y.z", Password: "pw"})
	require.Error(t, err)
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestAuthService_Authenticate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	session := &entity.Session{ID: "s1", AdminID: "u1", ExpiresAt: time.Now().Add(time.Hour)}

	fx.tokens.EXPECT().Validate("good").Return(&service.Claims{
		SessionID:        "s1",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
	}, nil)
	fx.sessions.EXPECT().Get(ctx, "s1").Return(session, nil)

	got, err := fx.service.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Same(t, session, got)
}

func TestAuthService_Authenticate_Rejections(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().Validate("forged").Return(nil, errors.New("signature is invalid"))
	fx.tokens.EXPECT().Validate("gone").Return(&service.Claims{SessionID: "s2"}, nil)
	fx.sessions.EXPECT().Get(ctx, "s2").Return(nil, domainerrors.ErrSessionNotFound)
	fx.metrics.EXPECT().CountSessionEvent("rejected").Return().Times(2)

	_, err := fx.service.Authenticate(ctx, "forged")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = fx.service.Authenticate(ctx, "gone")
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestAuthService_Logout_BackendFailureIsSwallowed(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().Validate("tok").Return(&service.Claims{SessionID: "s1"}, nil)
	fx.sessions.EXPECT().Get(ctx, "s1").Return(&entity.Session{ID: "s1", BackendToken: "bt"}, nil)
	fx.gateway.EXPECT().Logout(mock.MatchedBy(func(c context.Context) bool {
		return deliverycontext.GetBackendToken(c) == "bt"
	})).Return(errors.New("backend down"))
	fx.sessions.EXPECT().Delete(ctx, "s1").Return(nil)
	fx.metrics.EXPECT().CountSessionEvent("logout").Return()

	assert.NoError(t, fx.service.Logout(ctx, "tok"))
}

func TestAuthService_Logout_InvalidTokenIsNoop(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokens.EXPECT().Validate("junk").Return(nil, errors.New("malformed"))

	assert.NoError(t, fx.service.Logout(context.Background(), "junk"))
	assert.NoError(t, fx.service.Logout(context.Background(), ""))
}

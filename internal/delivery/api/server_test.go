package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"mutant-admin/config"
	apimiddleware "mutant-admin/internal/delivery/api/middleware"
	"mutant-admin/internal/delivery/api/router"
	"mutant-admin/internal/delivery/api/router/handler"
	"mutant-admin/internal/infra/auth"
	"mutant-admin/internal/infra/backend"
	"mutant-admin/internal/infra/backend/fixtures"
	"mutant-admin/internal/infra/metrics"
	"mutant-admin/internal/infra/persistence/memory"
	"mutant-admin/internal/infra/pubsub"
	"mutant-admin/internal/infra/session"
	"mutant-admin/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type gatewayFixture struct {
	echo     *echo.Echo
	mu       sync.Mutex
	requests []*http.Request
}

func (f *gatewayFixture) backendPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	paths := make([]string, 0, len(f.requests))
	for _, r := range f.requests {
		paths = append(paths, r.Method+" "+r.URL.Path)
	}

	return paths
}

func newGateway(t *testing.T, configure ...func(cfg *config.Config)) *gatewayFixture {
	t.Helper()
	fixture := &gatewayFixture{}

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fixture.mu.Lock()
		fixture.requests = append(fixture.requests, r.Clone(r.Context()))
		fixture.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer service-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"Token expired"}`))

			return
		}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/admin/kyc":
			_, _ = w.Write([]byte(`{"success":true,"data":[` +
				`{"_id":"k1","userId":"u1","status":"pending"},` +
				`{"_id":"k2","userId":{"_id":"u2","firstName":"Ada"},"status":"pending"}` +
				`],"page":1,"limit":10,"total":100,"totalPages":3}`))
		case r.Method == http.MethodPatch && r.URL.Path == "/api/admin/kyc/verify/u1":
			_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"k1","userId":"u1","status":"approved"}}`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/admin/missions/m1/publish":
			_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"message":"Route not found"}`))
		}
	}))
	t.Cleanup(upstream.Close)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Backend.BaseURL = upstream.URL
	cfg.Auth.ServiceToken = "service-token"
	cfg.Auth.LocalAdmins = []config.LocalAdmin{{ID: "ops", Email: "ops@mutant.io", Name: "Ops", PasswordHash: string(hash)}}
	cfg.Earnings.Fixtures = true
	for _, fn := range configure {
		fn(cfg)
	}
	cfg.ApplyDefaults()

	logger := slog.New(slog.DiscardHandler)
	recorder := metrics.NewRecorder()
	client := backend.NewClient(backend.ClientParams{Config: cfg, Logger: logger, Metrics: recorder})
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	decisions := memory.NewDecisionRepository()
	publisher := pubsub.NewNoopPublisher(logger)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		Gateway:  backend.NewAuthGateway(client),
		Sessions: session.NewMemoryStore(),
		Tokens:   tokens,
		Hasher:   auth.NewBcryptHasher(),
		Metrics:  recorder,
		Config:   cfg,
		Logger:   logger,
	})
	authMiddleware := apimiddleware.NewAuthMiddleware(authUC, cfg, logger)

	moderationUC := impl.NewModerationService(impl.ModerationServiceParams{
		KYCRepo:      backend.NewKYCRepository(client),
		RefundRepo:   backend.NewRefundRepository(client),
		DecisionRepo: decisions,
		Publisher:    publisher,
		Metrics:      recorder,
		Logger:       logger,
	})
	missionUC := impl.NewMissionService(impl.MissionServiceParams{
		MissionRepo:  backend.NewMissionRepository(client),
		DecisionRepo: decisions,
		Publisher:    publisher,
		Metrics:      recorder,
		Logger:       logger,
	})
	paymentUC := impl.NewPaymentService(
		backend.NewTransactionRepository(client),
		fixtures.NewEarningsRepository(backend.NewEarningsRepository(client)),
	)

	fixture.echo = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC:         authUC,
			AuthMiddleware: authMiddleware,
			Config:         cfg,
			Logger:         logger,
		}),
		ModerationHandler: handler.NewModerationHandler(moderationUC),
		MissionHandler:    handler.NewMissionHandler(missionUC),
		UserHandler:       handler.NewUserHandler(impl.NewUserService(backend.NewUserRepository(client))),
		CouponHandler:     handler.NewCouponHandler(impl.NewCouponService(backend.NewCouponRepository(client))),
		PaymentHandler:    handler.NewPaymentHandler(paymentUC),
		AuthMiddleware:    authMiddleware,
		Metrics:           recorder,
	})

	return fixture
}

func (f *gatewayFixture) do(t *testing.T, method, target, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}

	return rec, decoded
}

func (f *gatewayFixture) login(t *testing.T) string {
	t.Helper()

	rec, body := f.do(t, http.MethodPost, "/api/auth/login", "", `{"email":"ops@mutant.io","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["success"])

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "admin_token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	return token
}

func TestGateway_KYCPendingPageTrustsBackendTotalPages(t *testing.T) {
	gw := newGateway(t)
	token := gw.login(t)

	rec, body := gw.do(t, http.MethodGet, "/api/admin/kyc?status=pending&page=1&limit=10", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, float64(3), body["totalPages"])
	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 2)
	assert.Equal(t, "k1", data[0].(map[string]any)["_id"])
	assert.Equal(t, "k2", data[1].(map[string]any)["_id"])

	upstream := gw.requests[len(gw.requests)-1]
	assert.Equal(t, "pending", upstream.URL.Query().Get("status"))
	assert.Equal(t, "1", upstream.URL.Query().Get("page"))
	assert.Equal(t, "10", upstream.URL.Query().Get("limit"))
	assert.NotEmpty(t, upstream.Header.Get("X-Request-Id"))
}

func TestGateway_AllFilterOmitsStatusUpstream(t *testing.T) {
	gw := newGateway(t)
	token := gw.login(t)

	rec, _ := gw.do(t, http.MethodGet, "/api/admin/kyc?status=all", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, present := gw.requests[len(gw.requests)-1].URL.Query()["status"]
	assert.False(t, present)

	rec, body := gw.do(t, http.MethodGet, "/api/admin/kyc?status=archived", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_FILTER", body["error"].(map[string]any)["code"])
}

func TestGateway_UnauthenticatedRequestIsRejected(t *testing.T) {
	gw := newGateway(t)

	rec, body := gw.do(t, http.MethodGet, "/api/admin/kyc", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "UNAUTHORIZED", body["error"].(map[string]any)["code"])
	assert.NotEmpty(t, body["meta"].(map[string]any)["request_id"])
	assert.Empty(t, gw.backendPaths())
}

func TestGateway_ApproveRecordsHistory(t *testing.T) {
	gw := newGateway(t)
	token := gw.login(t)

	rec, body := gw.do(t, http.MethodPatch, "/api/admin/kyc/verify/u1", token, `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "approved", body["data"].(map[string]any)["status"])

	rec, body = gw.do(t, http.MethodGet, "/api/admin/moderation/history?resource=kyc&id=u1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	entries := body["data"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, "approved", entry["decision"])
	assert.Equal(t, "ops", entry["adminId"])
}

func TestGateway_RejectWithoutReasonNeverReachesBackend(t *testing.T) {
	gw := newGateway(t)
	token := gw.login(t)

	rec, body := gw.do(t, http.MethodPatch, "/api/admin/kyc/verify/u1", token, `{"status":"rejected","reason":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "REASON_REQUIRED", body["error"].(map[string]any)["code"])
	assert.NotContains(t, gw.backendPaths(), "PATCH /api/admin/kyc/verify/u1")
}

func TestGateway_BackendErrorPassesThrough(t *testing.T) {
	gw := newGateway(t)
	token := gw.login(t)

	rec, body := gw.do(t, http.MethodDelete, "/api/admin/missions/m404", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", body["message"])
}

func TestGateway_PublishPatchesMission(t *testing.T) {
	gw := newGateway(t)
	token := gw.login(t)

	rec, body := gw.do(t, http.MethodPut, "/api/admin/missions/m1/publish", token, `{"isPublished":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	mission := body["data"].(map[string]any)
	assert.Equal(t, "published", mission["status"])
	assert.Equal(t, true, mission["isPublished"])

	rec, _ = gw.do(t, http.MethodPut, "/api/admin/missions/m1/publish", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGateway_FixtureEarningsAreFlagged(t *testing.T) {
	gw := newGateway(t)
	token := gw.login(t)

	rec, body := gw.do(t, http.MethodGet, "/api/admin/earnings/instructors/i1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fixture", rec.Header().Get("X-Data-Source"))
	assert.Equal(t, "fixture", body["data"].(map[string]any)["source"])
}

func TestGateway_SessionLogoutAndMetrics(t *testing.T) {
	gw := newGateway(t)
	token := gw.login(t)

	rec, body := gw.do(t, http.MethodGet, "/api/auth/session", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	user := body["data"].(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "ops@mutant.io", user["email"])

	rec, _ = gw.do(t, http.MethodPost, "/api/auth/logout", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = gw.do(t, http.MethodGet, "/api/auth/session", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = gw.do(t, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mutant_admin_session_events_total")
}

func TestGateway_LoginValidation(t *testing.T) {
	gw := newGateway(t)

	rec, body := gw.do(t, http.MethodPost, "/api/auth/login", "", `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body["error"].(map[string]any)["code"])

	rec, body = gw.do(t, http.MethodPost, "/api/auth/login", "", `{"email":"ops@mutant.io","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", body["error"].(map[string]any)["code"])
}

func TestGateway_CORSOnlyCredentialsForAllowedOrigins(t *testing.T) {
	gw := newGateway(t, func(cfg *config.Config) {
		cfg.HTTP.AllowedOrigins = []string{"https://admin.mutant.io"}
	})
	token := gw.login(t)

	tests := []struct {
		name        string
		origin      string
		allowOrigin string
		credentials string
	}{
		{name: "dashboard origin", origin: "https://admin.mutant.io", allowOrigin: "https://admin.mutant.io", credentials: "true"},
		{name: "foreign origin", origin: "https://evil.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/kyc", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
			req.Header.Set(echo.HeaderOrigin, tt.origin)
			rec := httptest.NewRecorder()
			gw.echo.ServeHTTP(rec, req)

			assert.Equal(t, tt.allowOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			assert.Equal(t, tt.credentials, rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
		})
	}
}

func TestGateway_CORSWithoutOriginsSendsNoCredentials(t *testing.T) {
	gw := newGateway(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example")
	rec := httptest.NewRecorder()
	gw.echo.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mutant-admin/internal/client"
	"mutant-admin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeRecorder struct {
	routes []string
}

func (r *routeRecorder) Navigate(route string) {
	r.routes = append(r.routes, route)
}

type authFixtures struct {
	auth      *AuthContext
	client    *client.Client
	storage   *client.MemoryStorage
	navigator *routeRecorder
}

func newTestAuthContext(t *testing.T, handler http.HandlerFunc) *authFixtures {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	storage := client.NewMemoryStorage()
	navigator := &routeRecorder{}
	c := client.New(server.URL, storage, client.WithNavigator(navigator), client.WithLogger(logger))

	return &authFixtures{
		auth:      NewAuthContext(c, logger),
		client:    c,
		storage:   storage,
		navigator: navigator,
	}
}

func TestAuthContext_Mount(t *testing.T) {
	f := newTestAuthContext(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	f.auth.Mount("/admin")
	assert.False(t, f.auth.IsAuthenticated())

	require.NoError(t, f.storage.Set(client.KeyAccessToken, "tok"))
	require.NoError(t, f.storage.Set(client.KeyUser, `{"_id":"a1","email":"ops@mutant.io"}`))

	f.auth.Mount(client.LoginRoute)
	assert.False(t, f.auth.IsAuthenticated(), "mount is skipped on the login route")

	f.auth.Mount("/admin/kyc")
	assert.True(t, f.auth.IsAuthenticated())
	assert.Equal(t, "a1", f.auth.AdminID())
}

func TestAuthContext_MountIgnoresCorruptUser(t *testing.T) {
	f := newTestAuthContext(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, f.storage.Set(client.KeyAccessToken, "tok"))
	require.NoError(t, f.storage.Set(client.KeyUser, `{not json`))

	f.auth.Mount("/admin")

	assert.False(t, f.auth.IsAuthenticated())
	assert.Nil(t, f.auth.User())
}

func TestAuthContext_LoginPersistsIdentity(t *testing.T) {
	var body map[string]string
	f := newTestAuthContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"token":"session-jwt","refreshToken":"refresh-1","user":{"_id":"a1","email":"ops@mutant.io","role":"admin"}}`)
	})

	require.NoError(t, f.auth.Login(context.Background(), "ops@mutant.io", "pw"))

	assert.Equal(t, map[string]string{"email": "ops@mutant.io", "password": "pw"}, body)
	token, _ := f.storage.Get(client.KeyAccessToken)
	assert.Equal(t, "session-jwt", token)
	refresh, _ := f.storage.Get(client.KeyRefreshToken)
	assert.Equal(t, "refresh-1", refresh)

	rawUser, ok := f.storage.Get(client.KeyUser)
	require.True(t, ok)
	var user entity.User
	require.NoError(t, json.Unmarshal([]byte(rawUser), &user))
	assert.Equal(t, "a1", user.ID)
	_, ok = f.storage.Get(client.KeyAdminProfile)
	assert.True(t, ok)

	assert.True(t, f.auth.IsAuthenticated())
	assert.Equal(t, []string{HomeRoute}, f.navigator.routes)
}

func TestAuthContext_LogoutClearsEvenWhenServerFails(t *testing.T) {
	f := newTestAuthContext(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	for _, key := range client.AllKeys {
		require.NoError(t, f.storage.Set(key, `{"_id":"a1"}`))
	}
	f.auth.Mount("/admin")
	require.True(t, f.auth.IsAuthenticated())

	f.auth.Logout(context.Background())

	for _, key := range client.AllKeys {
		_, ok := f.storage.Get(key)
		assert.False(t, ok, key)
	}
	assert.False(t, f.auth.IsAuthenticated())
	assert.Equal(t, []string{client.LoginRoute}, f.navigator.routes)
}

func TestBoardOverClient_UnauthorizedRedirects(t *testing.T) {
	f := newTestAuthContext(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"success":false,"message":"Unauthorized"}`)
	})
	require.NoError(t, f.storage.Set(client.KeyAccessToken, "expired"))
	require.NoError(t, f.storage.Set(client.KeyUser, `{"_id":"a1"}`))

	board := NewModerationBoard[entity.KYCRecord](NewKYCSource(f.client), BoardOptions{
		Scheduler: &manualScheduler{},
		AdminID:   f.auth.AdminID,
	})
	err := board.SetFilter(context.Background(), entity.FilterPending)

	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, "Unauthorized", board.View().Error)
	assert.Equal(t, []string{client.LoginRoute}, f.navigator.routes)
	_, ok := f.storage.Get(client.KeyAccessToken)
	assert.False(t, ok)
}

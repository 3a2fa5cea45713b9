package dashboard

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"mutant-admin/internal/client"
	"mutant-admin/internal/domain/entity"

	"github.com/pkg/errors"
)

// HomeRoute is where a successful login lands.
const HomeRoute = "/admin"

// AuthContext is the process-wide authentication state of the dashboard.
// It does not gate routes; only API calls are authorized.
type AuthContext struct {
	client *client.Client
	logger *slog.Logger

	mu            sync.RWMutex
	authenticated bool
	user          *entity.User
}

func NewAuthContext(c *client.Client, logger *slog.Logger) *AuthContext {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthContext{client: c, logger: logger}
}

// Mount restores the session from storage. It does nothing on the login route.
func (a *AuthContext) Mount(route string) {
	if route == client.LoginRoute {
		return
	}

	storage := a.client.Storage()
	token, ok := storage.Get(client.KeyAccessToken)
	if !ok || token == "" {
		return
	}
	rawUser, ok := storage.Get(client.KeyUser)
	if !ok {
		return
	}

	var user entity.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		a.logger.Warn("Stored user is not valid JSON", slog.Any("error", err))

		return
	}

	a.mu.Lock()
	a.authenticated = true
	a.user = &user
	a.mu.Unlock()
}

// Login signs in, persists the identity and navigates home.
func (a *AuthContext) Login(ctx context.Context, email, password string) error {
	result, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	user := result.User
	if user == nil {
		user = &entity.User{Email: email}
	}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return errors.WithStack(err)
	}

	storage := a.client.Storage()
	if err := storage.Set(client.KeyAccessToken, result.Token); err != nil {
		return err
	}
	if err := storage.Set(client.KeyUser, string(rawUser)); err != nil {
		return err
	}
	if err := storage.Set(client.KeyAdminProfile, string(rawUser)); err != nil {
		return err
	}
	if result.RefreshToken != "" {
		if err := storage.Set(client.KeyRefreshToken, result.RefreshToken); err != nil {
			return err
		}
	}

	a.mu.Lock()
	a.authenticated = true
	a.user = user
	a.mu.Unlock()

	a.client.Navigator().Navigate(HomeRoute)

	return nil
}

// Logout tells the gateway, then clears every known key and navigates to the
// login route whether or not the gateway answered.
func (a *AuthContext) Logout(ctx context.Context) {
	if err := a.client.Logout(ctx); err != nil {
		a.logger.Warn("Server logout failed", slog.Any("error", err))
	}

	if err := a.client.Storage().Delete(client.AllKeys...); err != nil {
		a.logger.Warn("Failed to clear storage", slog.Any("error", err))
	}

	a.mu.Lock()
	a.authenticated = false
	a.user = nil
	a.mu.Unlock()

	a.client.Navigator().Navigate(client.LoginRoute)
}

func (a *AuthContext) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.authenticated
}

// User returns the signed-in user, or nil.
func (a *AuthContext) User() *entity.User {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.user
}

// AdminID is the AdminIdentity of the signed-in user.
func (a *AuthContext) AdminID() string {
	if user := a.User(); user != nil {
		return user.ID
	}

	return ""
}

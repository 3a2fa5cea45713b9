package session

import (
	"context"
	"log/slog"

	"mutant-admin/config"
	"mutant-admin/internal/domain/lifecycle"
	"mutant-admin/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the SessionStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionStore returns a redis store when redis is configured and an
// in-memory store otherwise.
func NewSessionStore(params StoreParams) (service.SessionStore, error) {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.Address == "" {
		logger.Info("Redis not configured, keeping sessions in memory")

		return NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	store := NewRedisStore(client, cfg.KeyPrefix)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			logger.Info("Redis session store connected", slog.String("address", cfg.Address))

			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Closing session store")

			return store.Close()
		},
	})

	return store, nil
}

package main

import (
	"context"
	"log/slog"
	"os"

	"mutant-admin/config"
	"mutant-admin/internal/delivery"
	"mutant-admin/internal/delivery/api"
	"mutant-admin/internal/delivery/api/middleware"
	"mutant-admin/internal/delivery/api/router/handler"
	"mutant-admin/internal/domain/repository"
	"mutant-admin/internal/infra/auth"
	"mutant-admin/internal/infra/backend"
	"mutant-admin/internal/infra/backend/fixtures"
	logs "mutant-admin/internal/infra/log"
	"mutant-admin/internal/infra/metrics"
	"mutant-admin/internal/infra/persistence/memory"
	"mutant-admin/internal/infra/persistence/postgres"
	"mutant-admin/internal/infra/pubsub"
	"mutant-admin/internal/infra/session"
	"mutant-admin/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		backend.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewAuthGateway,
			backend.NewKYCRepository,
			backend.NewRefundRepository,
			backend.NewMissionRepository,
			backend.NewUserRepository,
			backend.NewCouponRepository,
			backend.NewTransactionRepository,
			newEarningsRepository,
			newDecisionRepository,
		),
	)
}

// newEarningsRepository layers the fixture figures over the backend when enabled.
func newEarningsRepository(cfg *config.Config, client *backend.Client) repository.EarningsRepository {
	upstream := backend.NewEarningsRepository(client)
	if !cfg.Earnings.Fixtures {
		return upstream
	}

	return fixtures.NewEarningsRepository(upstream)
}

type decisionRepositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newDecisionRepository records decisions in postgres when configured and in memory otherwise.
func newDecisionRepository(params decisionRepositoryParams) (repository.DecisionRepository, error) {
	if params.Config.Postgres == nil {
		params.Logger.Info("Postgres not configured, keeping moderation decisions in memory")

		return memory.NewDecisionRepository(), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	return postgres.NewDecisionRepository(db), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			session.NewSessionStore,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewModerationService,
			impl.NewMissionService,
			impl.NewUserService,
			impl.NewCouponService,
			impl.NewPaymentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewModerationHandler,
			handler.NewMissionHandler,
			handler.NewUserHandler,
			handler.NewCouponHandler,
			handler.NewPaymentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dashkeep/config"
	"dashkeep/internal/delivery"
	"dashkeep/internal/delivery/api"
	apimiddleware "dashkeep/internal/delivery/api/middleware"
	"dashkeep/internal/delivery/api/router/handler"
	"dashkeep/internal/infra/auth"
	logs "dashkeep/internal/infra/log"
	"dashkeep/internal/infra/metrics"
	"dashkeep/internal/infra/persistence/memory"
	mongostore "dashkeep/internal/infra/persistence/mongo"
	"dashkeep/internal/infra/persistence/postgres"
	"dashkeep/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// The storage driver decides which providers exist, so config is read before the graph is built.
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fx.New(
		injectInfra(cfg),
		injectRepo(cfg),
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

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			metrics.New,
			context.Background,
		),
	)
}

func injectRepo(cfg *config.Config) fx.Option {
	switch cfg.Storage.Driver {
	case config.StorageMongo:
		return fx.Provide(
			mongostore.New,
			mongostore.NewAccountRepository,
			mongostore.NewProfileRepository,
			mongostore.NewDashboardRepository,
			mongostore.NewTransactionManager,
		)
	case config.StorageMemory:
		return fx.Provide(
			memory.NewStore,
			memory.NewAccountRepository,
			memory.NewProfileRepository,
			memory.NewDashboardRepository,
			memory.NewTransactionManager,
		)
	default:
		return fx.Provide(
			postgres.New,
			postgres.NewAccountRepository,
			postgres.NewProfileRepository,
			postgres.NewDashboardRepository,
			postgres.NewTransactionManager,
		)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewSessionService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewDashboardHandler,
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

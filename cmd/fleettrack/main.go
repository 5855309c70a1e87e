package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"fleettrack/config"
	"fleettrack/internal/delivery"
	"fleettrack/internal/delivery/http"
	"fleettrack/internal/delivery/http/router/handler"
	"fleettrack/internal/delivery/ws"
	"fleettrack/internal/domain/repository"
	"fleettrack/internal/domain/service"
	"fleettrack/internal/infra/async"
	logs "fleettrack/internal/infra/log"
	"fleettrack/internal/infra/notification"
	"fleettrack/internal/infra/persistence/postgres"
	"fleettrack/internal/infra/pubsub"
	"fleettrack/internal/infra/retention"
	"fleettrack/internal/infra/stream"
	"fleettrack/internal/presence"
	"fleettrack/internal/usecase/impl"

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
		injectHandler(),
		fx.Invoke(
			startSweeper,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newActivityClock,
			newWatchRegistry,
			newPresenceEngine,
			newFirebaseService,
			newTaskRunner,
			stream.NewHub,
			fx.Annotate(
				func(hub *stream.Hub) *stream.Hub { return hub },
				fx.As(new(service.Broadcaster)),
			),
			pubsub.NewEventPublisher,
		),
	)
}

func newActivityClock() *presence.ActivityClock {
	return presence.NewActivityClock()
}

func newWatchRegistry(cfg *config.Config) *presence.WatchRegistry {
	return presence.NewWatchRegistry(cfg.Presence.WatchTTL)
}

func newPresenceEngine(clock *presence.ActivityClock, watches *presence.WatchRegistry, cfg *config.Config) *presence.Engine {
	return presence.NewEngine(clock, watches, cfg.Presence.ActivityWindow, cfg.Presence.StalenessWindow)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func newTaskRunner(logger *slog.Logger, cfg *config.Config) service.TaskRunner {
	return async.NewPool(logger, cfg.Push.MaxInFlight)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTrackerService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTrackerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				ws.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type sweeperParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Repo   repository.DeviceRepository
}

func startSweeper(params sweeperParams) {
	sweeper := retention.NewSweeper(
		params.Logger,
		params.Repo,
		params.Config.Retention.Interval,
		params.Config.Retention.MaxAge,
	)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sweeper.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			sweeper.Stop()

			return nil
		},
	})
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

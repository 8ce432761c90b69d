package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/riverside-pgc/parklive/app/eventbus"
	"github.com/riverside-pgc/parklive/app/handlers"
	tournamentservice "github.com/riverside-pgc/parklive/app/modules/tournament/application"
	tournamentevents "github.com/riverside-pgc/parklive/app/modules/tournament/events"
	tournamentrouter "github.com/riverside-pgc/parklive/app/modules/tournament/infrastructure/router"
	"github.com/riverside-pgc/parklive/app/shared/metrics"
	"github.com/riverside-pgc/parklive/config"
	"github.com/riverside-pgc/parklive/db/bundb"
)

// App wires together the tournament service, its event router, and the
// HTTP listeners.
type App struct {
	Cfg    *config.Config
	logger *slog.Logger

	db       *bundb.DBService
	EventBus eventbus.EventBus
	Service  *tournamentservice.TournamentService

	WatermillRouter *message.Router
	moduleRouter    *tournamentrouter.TournamentRouter

	httpServer    *http.Server
	metricsServer *http.Server

	Registry *prometheus.Registry
	Tracer   trace.Tracer
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	if err := bus.CreateStream(ctx, tournamentevents.StreamName,
		tournamentevents.ScoreUpdatedTopic,
		tournamentevents.LeaderboardUpdatedTopic,
		tournamentevents.SuddenDeathChangedTopic,
		tournamentevents.CoursesAssignedTopic,
	); err != nil {
		return nil, fmt.Errorf("failed to provision event stream: %w", err)
	}

	registry := prometheus.NewRegistry()
	serviceMetrics := metrics.NewPrometheusMetrics(registry)
	tracer := otel.GetTracerProvider().Tracer("parklive")

	service := tournamentservice.NewTournamentService(
		dbService.TournamentDB,
		bus,
		logger,
		serviceMetrics,
		tracer,
		dbService.GetDB(),
	)

	watermillRouter, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}
	moduleRouter := tournamentrouter.NewTournamentRouter(logger, watermillRouter, bus, tracer, registry)
	if err := moduleRouter.Configure(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to configure tournament router: %w", err)
	}

	apiHandler := handlers.NewTournamentHandler(service, logger)

	return &App{
		Cfg:             cfg,
		logger:          logger,
		db:              dbService,
		EventBus:        bus,
		Service:         service,
		WatermillRouter: watermillRouter,
		moduleRouter:    moduleRouter,
		httpServer: &http.Server{
			Addr:    cfg.HTTP.Address,
			Handler: handlers.NewRouter(apiHandler),
		},
		metricsServer: &http.Server{
			Addr:    cfg.Observability.MetricsAddress,
			Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		},
		Registry: registry,
		Tracer:   tracer,
	}, nil
}

// Run starts the event router and both HTTP listeners, and blocks until
// the context is cancelled or a component fails.
func (app *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	go func() {
		app.logger.Info("Starting watermill router")
		if err := app.WatermillRouter.Run(ctx); err != nil {
			errCh <- fmt.Errorf("watermill router: %w", err)
		}
	}()
	go func() {
		app.logger.Info("Starting HTTP API", slog.String("address", app.httpServer.Addr))
		if err := app.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		app.logger.Info("Starting metrics listener", slog.String("address", app.metricsServer.Addr))
		if err := app.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("metrics server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Close shuts everything down in reverse start order.
func (app *App) Close(ctx context.Context) {
	if err := app.httpServer.Shutdown(ctx); err != nil {
		app.logger.Error("Error shutting down HTTP server", slog.Any("error", err))
	}
	if err := app.metricsServer.Shutdown(ctx); err != nil {
		app.logger.Error("Error shutting down metrics server", slog.Any("error", err))
	}
	if err := app.moduleRouter.Close(); err != nil {
		app.logger.Error("Error closing module router", slog.Any("error", err))
	}
	if err := app.EventBus.Close(); err != nil {
		app.logger.Error("Error closing event bus", slog.Any("error", err))
	}
	if err := app.db.GetDB().Close(); err != nil {
		app.logger.Error("Error closing database connection", slog.Any("error", err))
	}
}

// DB returns the database service.
func (app *App) DB() *bundb.DBService {
	return app.db
}

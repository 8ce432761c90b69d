// Package tournamentrouter wires the module's event handlers onto a
// watermill router.
package tournamentrouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/riverside-pgc/parklive/app/eventbus"
	"github.com/riverside-pgc/parklive/app/shared/attr"
	tournamentservice "github.com/riverside-pgc/parklive/app/modules/tournament/application"
	tournamentevents "github.com/riverside-pgc/parklive/app/modules/tournament/events"
	tournamenthandlers "github.com/riverside-pgc/parklive/app/modules/tournament/infrastructure/handlers"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// TournamentRouter registers the module's subscriptions.
type TournamentRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	bus            eventbus.EventBus
	tracer         trace.Tracer
	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

// NewTournamentRouter creates a new TournamentRouter.
func NewTournamentRouter(
	logger *slog.Logger,
	router *message.Router,
	bus eventbus.EventBus,
	tracer trace.Tracer,
	prometheusRegistry *prometheus.Registry,
) *TournamentRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &TournamentRouter{
		logger:         logger,
		Router:         router,
		bus:            bus,
		tracer:         tracer,
		metricsBuilder: metricsBuilder,
		metricsEnabled: prometheusRegistry != nil && !inTestEnv,
	}
}

// Configure adds middleware and registers the module's handlers on the
// router held by the TournamentRouter.
func (r *TournamentRouter) Configure(routerCtx context.Context, service tournamentservice.Service) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.logger.Info("Adding Prometheus router metrics middleware")
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	handlers := tournamenthandlers.NewTournamentHandlers(service, r.logger, r.tracer)

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	if err := r.RegisterHandlers(routerCtx, handlers); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

// RegisterHandlers maps topics to handlers. Every handler's output goes
// to the leaderboard.updated topic.
func (r *TournamentRouter) RegisterHandlers(ctx context.Context, handlers tournamenthandlers.Handlers) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		tournamentevents.ScoreUpdatedTopic:       handlers.HandleScoreUpdated,
		tournamentevents.SuddenDeathChangedTopic: handlers.HandleSuddenDeathChanged,
		tournamentevents.CoursesAssignedTopic:    handlers.HandleCoursesAssigned,
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("tournament.%s", topic)
		r.Router.AddHandler(
			handlerName,
			topic,
			r.bus,
			"",
			nil,
			func(msg *message.Message) ([]*message.Message, error) {
				messages, err := handlerFunc(msg)
				if err != nil {
					r.logger.ErrorContext(ctx, "Error processing message",
						attr.String("message_id", msg.UUID),
						attr.Any("error", err),
					)
					return nil, err
				}
				for _, m := range messages {
					publishTopic := m.Metadata.Get("topic")
					if publishTopic == "" {
						publishTopic = tournamentevents.LeaderboardUpdatedTopic
					}
					r.logger.InfoContext(ctx, "publishing message",
						attr.String("topic", publishTopic),
						attr.String("handler", handlerName),
						attr.String("correlation_id", m.Metadata.Get("correlation_id")),
					)
					if err := r.bus.Publish(ctx, publishTopic, m); err != nil {
						return nil, fmt.Errorf("failed to publish to %s: %w", publishTopic, err)
					}
				}
				return nil, nil
			},
		)
	}
	return nil
}

func (r *TournamentRouter) Close() error {
	return r.Router.Close()
}

package tournamentservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riverside-pgc/parklive/app/eventbus"
	"github.com/riverside-pgc/parklive/app/shared/attr"
	"github.com/riverside-pgc/parklive/app/shared/metrics"
	"github.com/riverside-pgc/parklive/app/shared/results"
	tournamentdb "github.com/riverside-pgc/parklive/app/modules/tournament/infrastructure/repositories"
)

// TournamentService implements the Service interface.
type TournamentService struct {
	repo     tournamentdb.TournamentDB
	EventBus eventbus.EventBus
	logger   *slog.Logger
	metrics  metrics.TournamentMetrics
	tracer   trace.Tracer
	db       *bun.DB
}

// NewTournamentService creates a new TournamentService.
func NewTournamentService(
	repo tournamentdb.TournamentDB,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	serviceMetrics metrics.TournamentMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *TournamentService {
	return &TournamentService{
		repo:     repo,
		EventBus: eventBus,
		logger:   logger,
		metrics:  serviceMetrics,
		tracer:   tracer,
		db:       db,
	}
}

// OperationFailure is the generic failure payload for operations whose
// failures carry only a reason.
type OperationFailure struct {
	Reason string `json:"reason"`
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *TournamentService,
	ctx context.Context,
	operationName string,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {

	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	s.logger.InfoContext(ctx, operationName+" triggered",
		attr.String("operation", operationName),
		attr.ExtractCorrelationID(ctx),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Any("failure_payload", *result.Failure),
		)
	}

	if result.IsSuccess() {
		s.logger.InfoContext(ctx, operationName+" completed successfully",
			attr.String("operation", operationName),
			attr.ExtractCorrelationID(ctx),
		)
		s.metrics.RecordOperationSuccess(ctx, operationName)
	}

	return result, nil
}

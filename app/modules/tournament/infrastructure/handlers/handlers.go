// Package tournamenthandlers consumes the module's events and turns
// them into leaderboard recomputations.
package tournamenthandlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/riverside-pgc/parklive/app/shared/attr"
	tournamentservice "github.com/riverside-pgc/parklive/app/modules/tournament/application"
	tournamentevents "github.com/riverside-pgc/parklive/app/modules/tournament/events"
)

// TournamentHandlers handles tournament events.
type TournamentHandlers struct {
	service tournamentservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewTournamentHandlers creates a new TournamentHandlers.
func NewTournamentHandlers(service tournamentservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &TournamentHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleScoreUpdated recomputes the board after a score write. The
// incoming payload is only a change notification; the board is always
// rebuilt from the stored snapshot.
func (h *TournamentHandlers) HandleScoreUpdated(msg *message.Message) ([]*message.Message, error) {
	var payload tournamentevents.ScoreUpdatedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.logger.Error("Failed to unmarshal score.updated payload",
			attr.String("message_id", msg.UUID),
			attr.Error(err),
		)
		// Malformed payloads are dropped, not retried.
		return nil, nil
	}
	return h.recompute(msg, "HandleScoreUpdated")
}

// HandleSuddenDeathChanged recomputes the board after a playoff change,
// since playoff ranks override group ranks.
func (h *TournamentHandlers) HandleSuddenDeathChanged(msg *message.Message) ([]*message.Message, error) {
	return h.recompute(msg, "HandleSuddenDeathChanged")
}

// HandleCoursesAssigned recomputes the board after a rotation change.
func (h *TournamentHandlers) HandleCoursesAssigned(msg *message.Message) ([]*message.Message, error) {
	return h.recompute(msg, "HandleCoursesAssigned")
}

func (h *TournamentHandlers) recompute(msg *message.Message, handlerName string) ([]*message.Message, error) {
	ctx, span := h.tracer.Start(msg.Context(), handlerName)
	defer span.End()

	correlationID := msg.Metadata.Get("correlation_id")
	if correlationID != "" {
		ctx = attr.WithCorrelationID(ctx, correlationID)
	}
	h.logger.InfoContext(ctx, handlerName+" triggered",
		attr.String("message_id", msg.UUID),
		attr.ExtractCorrelationID(ctx),
	)

	result, err := h.service.GetLeaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", handlerName, err)
	}
	if result.Success == nil {
		return nil, fmt.Errorf("%s: leaderboard computation returned no result", handlerName)
	}

	board := *result.Success
	out := tournamentevents.LeaderboardUpdatedPayload{
		ComputedAt:            time.Now().UTC(),
		Groups:                board.Groups,
		IndividualSuddenDeath: board.IndividualSuddenDeath,
		TeamSuddenDeath:       board.TeamSuddenDeath,
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal leaderboard payload: %w", handlerName, err)
	}

	outMsg := message.NewMessage(watermill.NewUUID(), data)
	if correlationID != "" {
		outMsg.Metadata.Set("correlation_id", correlationID)
	}
	outMsg.Metadata.Set("topic", tournamentevents.LeaderboardUpdatedTopic)
	return []*message.Message{outMsg}, nil
}

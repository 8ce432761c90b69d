package tournamentservice

import (
	"context"
	"time"

	"github.com/riverside-pgc/parklive/app/shared/attr"
	"github.com/riverside-pgc/parklive/app/shared/results"
	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
	tournamentevents "github.com/riverside-pgc/parklive/app/modules/tournament/events"
)

// RecordScoreInput is one score-cell write request.
type RecordScoreInput struct {
	MatchID        string
	PlayerID       string
	CourseID       int
	HoleNumber     int
	Strokes        int // 0 marks a forfeit
	ModifiedBy     string
	ModifiedByType tournamentdomain.ModifierType
	Comment        string
}

// RecordScoreSuccess reports the accepted write.
type RecordScoreSuccess struct {
	PlayerID   string `json:"player_id"`
	CourseID   int    `json:"course_id"`
	HoleNumber int    `json:"hole_number"`
	OldValue   int    `json:"old_value"`
	NewValue   int    `json:"new_value"`
	Correction bool   `json:"correction"`
}

// RecordScoreOperationResult is the envelope for score writes.
type RecordScoreOperationResult = results.OperationResult[RecordScoreSuccess, OperationFailure]

// RecordScore validates and persists one score cell, appends the audit
// entry, and announces the change. The leaderboard itself is not
// touched here; subscribers recompute it from the next snapshot.
func (s *TournamentService) RecordScore(ctx context.Context, input RecordScoreInput) (RecordScoreOperationResult, error) {
	return withTelemetry(s, ctx, "RecordScore", func(ctx context.Context) (RecordScoreOperationResult, error) {
		if input.PlayerID == "" {
			return results.FailureResult[RecordScoreSuccess](OperationFailure{Reason: ErrEmptyPlayerID.Error()}), nil
		}
		if input.HoleNumber < 1 || input.HoleNumber > tournamentdomain.HolesPerCourse {
			return results.FailureResult[RecordScoreSuccess](OperationFailure{Reason: ErrInvalidHole.Error()}), nil
		}
		if input.Strokes < 0 {
			return results.FailureResult[RecordScoreSuccess](OperationFailure{Reason: ErrInvalidStrokes.Error()}), nil
		}

		oldValue, err := s.repo.UpsertScore(ctx, input.PlayerID, input.CourseID, input.HoleNumber, input.Strokes)
		if err != nil {
			return RecordScoreOperationResult{}, err
		}

		now := time.Now().UTC()
		log := tournamentdomain.ScoreLog{
			MatchID:        input.MatchID,
			PlayerID:       input.PlayerID,
			CourseID:       input.CourseID,
			HoleNumber:     input.HoleNumber,
			OldValue:       oldValue,
			NewValue:       input.Strokes,
			ModifiedBy:     input.ModifiedBy,
			ModifiedByType: input.ModifiedByType,
			ModifiedAt:     now,
			Comment:        input.Comment,
		}
		if err := s.repo.InsertScoreLog(ctx, &log); err != nil {
			return RecordScoreOperationResult{}, err
		}
		s.metrics.RecordScoreWrite(ctx, string(input.ModifiedByType))

		payload := tournamentevents.ScoreUpdatedPayload{
			PlayerID:       input.PlayerID,
			CourseID:       input.CourseID,
			HoleNumber:     input.HoleNumber,
			OldValue:       oldValue,
			NewValue:       input.Strokes,
			ModifiedBy:     input.ModifiedBy,
			ModifiedByType: string(input.ModifiedByType),
			ModifiedAt:     now,
		}
		if err := s.publishJSON(ctx, tournamentevents.ScoreUpdatedTopic, payload); err != nil {
			return RecordScoreOperationResult{}, err
		}

		s.logger.InfoContext(ctx, "Score recorded",
			attr.String("player_id", input.PlayerID),
			attr.Int("course_id", input.CourseID),
			attr.Int("hole", input.HoleNumber),
			attr.Int("strokes", input.Strokes),
			attr.ExtractCorrelationID(ctx),
		)

		return results.SuccessResult[RecordScoreSuccess, OperationFailure](RecordScoreSuccess{
			PlayerID:   input.PlayerID,
			CourseID:   input.CourseID,
			HoleNumber: input.HoleNumber,
			OldValue:   oldValue,
			NewValue:   input.Strokes,
			Correction: tournamentdomain.IsCorrection(log),
		}), nil
	})
}

package tournamentservice

import (
	"context"

	"github.com/riverside-pgc/parklive/app/shared/results"
	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
)

// PlayerAudit is one player's score history plus derived views: the
// latest correction per cell and, for forfeited players, the recorded
// reason.
type PlayerAudit struct {
	PlayerID    string                                                     `json:"player_id"`
	Logs        []tournamentdomain.ScoreLog                                `json:"logs"`
	Corrections map[tournamentdomain.CellKey]tournamentdomain.ScoreLog     `json:"-"`
	Forfeit     tournamentdomain.ForfeitKind                               `json:"forfeit,omitempty"`
}

// AuditOperationResult is the envelope for audit reads.
type AuditOperationResult = results.OperationResult[PlayerAudit, OperationFailure]

// GetPlayerAudit returns the full audit trail for one player.
func (s *TournamentService) GetPlayerAudit(ctx context.Context, playerID string) (AuditOperationResult, error) {
	return withTelemetry(s, ctx, "GetPlayerAudit", func(ctx context.Context) (AuditOperationResult, error) {
		if playerID == "" {
			return results.FailureResult[PlayerAudit](OperationFailure{Reason: ErrEmptyPlayerID.Error()}), nil
		}

		logs, err := s.repo.GetScoreLogs(ctx, playerID)
		if err != nil {
			return AuditOperationResult{}, err
		}

		return results.SuccessResult[PlayerAudit, OperationFailure](PlayerAudit{
			PlayerID:    playerID,
			Logs:        logs,
			Corrections: tournamentdomain.CorrectedCells(logs),
			Forfeit:     tournamentdomain.ForfeitReason(logs),
		}), nil
	})
}

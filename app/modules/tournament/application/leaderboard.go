package tournamentservice

import (
	"context"

	"github.com/riverside-pgc/parklive/app/shared/attr"
	"github.com/riverside-pgc/parklive/app/shared/results"
	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
)

// LeaderboardOperationResult is the envelope for leaderboard reads.
type LeaderboardOperationResult = results.OperationResult[tournamentdomain.Leaderboard, OperationFailure]

// GetLeaderboard loads the current snapshot and recomputes the full
// board from scratch. There is no incremental path: every read ranks
// the whole tournament again.
func (s *TournamentService) GetLeaderboard(ctx context.Context) (LeaderboardOperationResult, error) {
	return withTelemetry(s, ctx, "GetLeaderboard", func(ctx context.Context) (LeaderboardOperationResult, error) {
		snap, err := s.repo.LoadSnapshot(ctx)
		if err != nil {
			return LeaderboardOperationResult{}, err
		}

		board, err := tournamentdomain.Rank(snap)
		if err != nil {
			return LeaderboardOperationResult{}, err
		}

		players := 0
		for _, g := range board.Groups {
			players += len(g.Players)
		}
		s.metrics.RecordLeaderboardRecompute(ctx, len(board.Groups), players)
		s.logger.DebugContext(ctx, "Leaderboard computed",
			attr.Int("groups", len(board.Groups)),
			attr.Int("players", players),
			attr.ExtractCorrelationID(ctx),
		)

		return results.SuccessResult[tournamentdomain.Leaderboard, OperationFailure](*board), nil
	})
}

package tournamentservice

import (
	"context"

	"github.com/riverside-pgc/parklive/app/shared/results"
	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
)

// ProgressReport carries per-group completion estimates.
type ProgressReport struct {
	Groups []tournamentdomain.GroupProgress `json:"groups"`
}

// ProgressOperationResult is the envelope for progress reads.
type ProgressOperationResult = results.OperationResult[ProgressReport, OperationFailure]

// GetProgress estimates how far each group is through its active
// courses. Progress is display-only and never feeds ranking.
func (s *TournamentService) GetProgress(ctx context.Context) (ProgressOperationResult, error) {
	return withTelemetry(s, ctx, "GetProgress", func(ctx context.Context) (ProgressOperationResult, error) {
		snap, err := s.repo.LoadSnapshot(ctx)
		if err != nil {
			return ProgressOperationResult{}, err
		}
		return results.SuccessResult[ProgressReport, OperationFailure](ProgressReport{
			Groups: tournamentdomain.EstimateProgress(snap),
		}), nil
	})
}

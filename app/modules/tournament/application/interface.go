package tournamentservice

import (
	"context"

	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
)

// Service defines the interface for the TournamentService.
type Service interface {
	GetLeaderboard(ctx context.Context) (LeaderboardOperationResult, error)
	GetProgress(ctx context.Context) (ProgressOperationResult, error)
	RecordScore(ctx context.Context, input RecordScoreInput) (RecordScoreOperationResult, error)
	GetPlayerAudit(ctx context.Context, playerID string) (AuditOperationResult, error)

	StartSuddenDeath(ctx context.Context, input StartSuddenDeathInput) (SuddenDeathOperationResult, error)
	RecordSuddenDeathScore(ctx context.Context, groupType tournamentdomain.GroupType, playerID string, hole, strokes int) (SuddenDeathOperationResult, error)
	ResetSuddenDeath(ctx context.Context, groupType tournamentdomain.GroupType) (SuddenDeathOperationResult, error)

	AssignCourses(ctx context.Context, coursesPerGroup int) (AssignCoursesOperationResult, error)
	ExportStandings(ctx context.Context) (ExportOperationResult, error)
}

var _ Service = (*TournamentService)(nil)

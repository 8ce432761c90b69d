package tournamentdb

import (
	"context"

	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
)

// TournamentDB is the persistence surface the tournament service
// depends on.
type TournamentDB interface {
	// LoadSnapshot reads the full tournament state in one shot. The
	// ranking pipeline always works from a complete snapshot.
	LoadSnapshot(ctx context.Context) (*tournamentdomain.Snapshot, error)

	// UpsertScore writes one score cell and returns the previous value
	// (zero when the cell was empty).
	UpsertScore(ctx context.Context, playerID string, courseID, holeNumber, strokes int) (oldValue int, err error)

	// InsertScoreLog appends one audit entry.
	InsertScoreLog(ctx context.Context, log *tournamentdomain.ScoreLog) error

	// GetScoreLogs returns the audit trail for one player, oldest first.
	GetScoreLogs(ctx context.Context, playerID string) ([]tournamentdomain.ScoreLog, error)

	// GetSuddenDeath returns the stored session for the group type, or
	// nil when none has been started.
	GetSuddenDeath(ctx context.Context, groupType tournamentdomain.GroupType) (*tournamentdomain.SuddenDeathSession, error)

	// SetSuddenDeath stores (or replaces) the session for the group
	// type. A nil session clears it.
	SetSuddenDeath(ctx context.Context, groupType tournamentdomain.GroupType, session *tournamentdomain.SuddenDeathSession) error

	// UpdateGroupCourses replaces a group's course assignments.
	UpdateGroupCourses(ctx context.Context, groupName string, courses map[int]bool) error

	// GetCourses returns all courses ordered by ID.
	GetCourses(ctx context.Context) ([]tournamentdomain.Course, error)

	// GetGroups returns all groups ordered by name.
	GetGroups(ctx context.Context) (map[string]tournamentdomain.Group, error)
}

// Package tournamentevents holds the module's event topics and payloads.
package tournamentevents

import (
	"time"

	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
)

// Stream and topic names. All tournament subjects live on one JetStream
// stream so the board's subscribers replay in order.
const (
	StreamName = "tournament"

	ScoreUpdatedTopic        = "tournament.score.updated"
	LeaderboardUpdatedTopic  = "tournament.leaderboard.updated"
	SuddenDeathChangedTopic  = "tournament.suddendeath.changed"
	CoursesAssignedTopic     = "tournament.courses.assigned"
)

// ScoreUpdatedPayload announces a single score-cell write. Consumers must
// treat it purely as a change notification: the leaderboard is always
// recomputed from the full snapshot, never patched from the payload.
type ScoreUpdatedPayload struct {
	PlayerID       string    `json:"player_id"`
	CourseID       int       `json:"course_id"`
	HoleNumber     int       `json:"hole_number"`
	OldValue       int       `json:"old_value"`
	NewValue       int       `json:"new_value"`
	ModifiedBy     string    `json:"modified_by"`
	ModifiedByType string    `json:"modified_by_type"`
	ModifiedAt     time.Time `json:"modified_at"`
}

// LeaderboardUpdatedPayload carries the freshly computed board to push
// subscribers (scoreboard renderers).
type LeaderboardUpdatedPayload struct {
	ComputedAt time.Time                        `json:"computed_at"`
	Groups     []tournamentdomain.GroupStanding `json:"groups"`

	IndividualSuddenDeath []tournamentdomain.SuddenDeathResult `json:"individual_sudden_death,omitempty"`
	TeamSuddenDeath       []tournamentdomain.SuddenDeathResult `json:"team_sudden_death,omitempty"`
}

// CoursesAssignedPayload announces a course-rotation change for every
// group at once.
type CoursesAssignedPayload struct {
	Assignments map[string][]int `json:"assignments"` // group name -> course IDs
}

// SuddenDeathChangedPayload announces a playoff lifecycle change.
type SuddenDeathChangedPayload struct {
	Type   tournamentdomain.GroupType `json:"type"`
	Active bool                       `json:"active"`
}

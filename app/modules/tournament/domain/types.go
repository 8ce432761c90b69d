package tournamentdomain

import "time"

// HolesPerCourse is fixed for park golf: every course is nine holes.
const HolesPerCourse = 9

// GroupType distinguishes the two competition formats.
type GroupType string

const (
	GroupIndividual GroupType = "individual"
	GroupTeam       GroupType = "team"
)

// Course is one nine-hole course. A nil par means the hole's par has not
// been configured yet; those holes are excluded from plus/minus but their
// entered strokes still count toward totals. IsActive only controls
// whether the course shows on the public board.
type Course struct {
	ID       int
	Name     string
	Pars     [HolesPerCourse]*int
	IsActive bool
}

// Group names a flight of players and maps course IDs to an assignment
// flag. A true entry means the group's players play that course,
// regardless of the course's IsActive setting.
type Group struct {
	Name    string
	Type    GroupType
	Courses map[int]bool
}

// PlayerType tags the Player variant.
type PlayerType string

const (
	PlayerIndividual PlayerType = "individual"
	PlayerTeam       PlayerType = "team"
)

// Player is a tagged union: individual entries carry Name/Affiliation,
// team entries carry the two member fields. Group is a foreign key into
// the group map; assigned courses are always derived from the group,
// never stored on the player.
type Player struct {
	ID    string
	Type  PlayerType
	Group string
	Jo    int // heat number

	// individual
	Name        string
	Affiliation string

	// team
	P1Name        string
	P1Affiliation string
	P2Name        string
	P2Affiliation string
}

// DisplayName returns the scoreboard name for either variant.
func (p Player) DisplayName() string {
	if p.Type == PlayerTeam {
		return p.P1Name + " / " + p.P2Name
	}
	return p.Name
}

// Club returns the affiliation shown next to the name. Teams show the
// first member's affiliation.
func (p Player) Club() string {
	if p.Type == PlayerTeam {
		return p.P1Affiliation
	}
	return p.Affiliation
}

// ScoreSet holds every entered hole score, keyed
// playerID -> courseID -> hole (1..9) -> strokes. A value of 0 is the
// forfeit sentinel; a missing entry means the hole has not been played.
type ScoreSet map[string]map[int]map[int]int

// Strokes returns the entered value for one cell and whether it exists.
func (s ScoreSet) Strokes(playerID string, courseID, hole int) (int, bool) {
	v, ok := s[playerID][courseID][hole]
	return v, ok
}

// SuddenDeathSession is one active playoff for a competition type.
// Holes is an explicit list and need not be contiguous.
type SuddenDeathSession struct {
	IsActive bool
	Players  map[string]bool
	CourseID int
	Holes    []int
	Scores   map[string]map[int]int
}

// SuddenDeathState carries the two independent sessions. A player can
// appear in at most one of them.
type SuddenDeathState struct {
	Individual *SuddenDeathSession
	Team       *SuddenDeathSession
}

// Snapshot is a point-in-time copy of every collection the engine reads.
// Any collection may be nil; the engine treats nil as empty.
type Snapshot struct {
	Players     map[string]Player
	Scores      ScoreSet
	Courses     map[int]Course
	Groups      map[string]Group
	SuddenDeath SuddenDeathState
}

// AggregatedPlayer is the derived, per-pass view of one player. It is
// recomputed from scratch on every snapshot and never mutated
// incrementally.
type AggregatedPlayer struct {
	ID          string
	DisplayName string
	Club        string
	Jo          int
	Group       string
	Type        PlayerType

	TotalScore   int
	PlusMinus    *int
	HasAnyScore  bool
	HasForfeited bool

	// CourseScores and DetailedScores cover every assigned course,
	// visible or not; they feed the tie-break cascade.
	CourseScores   map[int]int
	DetailedScores map[int]map[int]int

	AssignedCourses []Course // all assigned courses, IsActive-agnostic
	VisibleCourses  []Course // display subset (IsActive != false)

	Rank *int
}

// GroupStanding is one group's ordered leaderboard rows.
type GroupStanding struct {
	Group   string
	Players []AggregatedPlayer
}

// SuddenDeathResult is one participant's line in a playoff table.
type SuddenDeathResult struct {
	PlayerID    string
	DisplayName string
	Club        string
	ScoresPerHole map[int]*int
	TotalScore  int
	HolesPlayed int
	Rank        int
}

// Leaderboard is the engine's complete output for one snapshot.
type Leaderboard struct {
	Groups                []GroupStanding
	IndividualSuddenDeath []SuddenDeathResult
	TeamSuddenDeath       []SuddenDeathResult
}

// ModifierType identifies who wrote a score cell.
type ModifierType string

const (
	ModifiedByAdmin   ModifierType = "admin"
	ModifiedByJudge   ModifierType = "judge"
	ModifiedByCaptain ModifierType = "captain"
)

// ScoreLog is one audit entry for a score-cell write. OldValue is the
// cell's previous value, 0 when the cell was empty.
type ScoreLog struct {
	ID             string
	MatchID        string
	PlayerID       string
	CourseID       int
	HoleNumber     int
	OldValue       int
	NewValue       int
	ModifiedBy     string
	ModifiedByType ModifierType
	ModifiedAt     time.Time
	Comment        string
}

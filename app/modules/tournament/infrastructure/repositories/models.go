package tournamentdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
)

// CourseModel is a nine-hole course with its pars. Pars are stored as
// jsonb so a missing par stays nil instead of degrading to zero.
type CourseModel struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID       int      `bun:"id,pk"`
	Name     string   `bun:"name,notnull"`
	Pars     [9]*int  `bun:"pars,type:jsonb"`
	IsActive bool     `bun:"is_active,notnull,default:false"`
}

// GroupModel is a competition group and its course assignments, keyed
// by course ID.
type GroupModel struct {
	bun.BaseModel `bun:"table:groups,alias:g"`

	Name    string                     `bun:"name,pk"`
	Type    tournamentdomain.GroupType `bun:"type,notnull"`
	Courses map[int]bool               `bun:"courses,type:jsonb"`
}

// PlayerModel covers both individual players and two-person teams; the
// Player1/Player2 columns are empty for individuals.
type PlayerModel struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID            string                      `bun:"id,pk"`
	Type          tournamentdomain.PlayerType `bun:"type,notnull"`
	GroupName     string                      `bun:"group_name,notnull"`
	Jo            int                         `bun:"jo"`
	Name          string                      `bun:"name"`
	Affiliation   string                      `bun:"affiliation"`
	P1Name        string                      `bun:"p1_name"`
	P1Affiliation string                      `bun:"p1_affiliation"`
	P2Name        string                      `bun:"p2_name"`
	P2Affiliation string                      `bun:"p2_affiliation"`
}

// ScoreModel is one score cell: strokes for one player on one hole of
// one course. Zero strokes is the forfeit sentinel, so it is stored
// as-is rather than treated as empty.
type ScoreModel struct {
	bun.BaseModel `bun:"table:scores,alias:s"`

	PlayerID   string    `bun:"player_id,pk"`
	CourseID   int       `bun:"course_id,pk"`
	HoleNumber int       `bun:"hole_number,pk"`
	Strokes    int       `bun:"strokes,notnull"`
	UpdatedAt  time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ScoreLogModel is the append-only audit trail of score writes.
type ScoreLogModel struct {
	bun.BaseModel `bun:"table:score_logs,alias:sl"`

	ID             uuid.UUID                       `bun:"id,pk,type:uuid"`
	MatchID        string                          `bun:"match_id,notnull"`
	PlayerID       string                          `bun:"player_id,notnull"`
	CourseID       int                             `bun:"course_id,notnull"`
	HoleNumber     int                             `bun:"hole_number,notnull"`
	OldValue       int                             `bun:"old_value,notnull"`
	NewValue       int                             `bun:"new_value,notnull"`
	ModifiedBy     string                          `bun:"modified_by,notnull"`
	ModifiedByType tournamentdomain.ModifierType   `bun:"modified_by_type,notnull"`
	ModifiedAt     time.Time                       `bun:"modified_at,nullzero,notnull,default:current_timestamp"`
	Comment        string                          `bun:"comment"`
}

var _ bun.BeforeInsertHook = (*ScoreLogModel)(nil)

func (sl *ScoreLogModel) BeforeInsert(ctx context.Context, _ *bun.InsertQuery) error {
	if sl.ID == uuid.Nil {
		sl.ID = uuid.New()
	}
	return nil
}

// SuddenDeathModel holds one playoff session per group type. The
// session body lives in jsonb since its shape follows the domain type.
type SuddenDeathModel struct {
	bun.BaseModel `bun:"table:sudden_death_sessions,alias:sd"`

	GroupType tournamentdomain.GroupType           `bun:"group_type,pk"`
	Session   *tournamentdomain.SuddenDeathSession `bun:"session,type:jsonb"`
	UpdatedAt time.Time                            `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

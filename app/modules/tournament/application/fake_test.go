package tournamentservice

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/riverside-pgc/parklive/app/eventbus"
	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
	tournamentdb "github.com/riverside-pgc/parklive/app/modules/tournament/infrastructure/repositories"
)

// ------------------------
// Fake Tournament Repo
// ------------------------

// FakeTournamentRepository provides a programmable stub for the
// tournamentdb.TournamentDB interface.
type FakeTournamentRepository struct {
	trace []string

	LoadSnapshotFunc       func(ctx context.Context) (*tournamentdomain.Snapshot, error)
	UpsertScoreFunc        func(ctx context.Context, playerID string, courseID, holeNumber, strokes int) (int, error)
	InsertScoreLogFunc     func(ctx context.Context, log *tournamentdomain.ScoreLog) error
	GetScoreLogsFunc       func(ctx context.Context, playerID string) ([]tournamentdomain.ScoreLog, error)
	GetSuddenDeathFunc     func(ctx context.Context, groupType tournamentdomain.GroupType) (*tournamentdomain.SuddenDeathSession, error)
	SetSuddenDeathFunc     func(ctx context.Context, groupType tournamentdomain.GroupType, session *tournamentdomain.SuddenDeathSession) error
	UpdateGroupCoursesFunc func(ctx context.Context, groupName string, courses map[int]bool) error
	GetCoursesFunc         func(ctx context.Context) ([]tournamentdomain.Course, error)
	GetGroupsFunc          func(ctx context.Context) (map[string]tournamentdomain.Group, error)

	LastScoreLog    *tournamentdomain.ScoreLog
	LastSession     *tournamentdomain.SuddenDeathSession
	LastAssignments map[string]map[int]bool
}

// NewFakeTournamentRepository initializes a fake with an empty trace.
func NewFakeTournamentRepository() *FakeTournamentRepository {
	return &FakeTournamentRepository{
		trace:           []string{},
		LastAssignments: map[string]map[int]bool{},
	}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeTournamentRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeTournamentRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTournamentRepository) LoadSnapshot(ctx context.Context) (*tournamentdomain.Snapshot, error) {
	f.record("LoadSnapshot")
	if f.LoadSnapshotFunc != nil {
		return f.LoadSnapshotFunc(ctx)
	}
	return &tournamentdomain.Snapshot{}, nil
}

func (f *FakeTournamentRepository) UpsertScore(ctx context.Context, playerID string, courseID, holeNumber, strokes int) (int, error) {
	f.record("UpsertScore")
	if f.UpsertScoreFunc != nil {
		return f.UpsertScoreFunc(ctx, playerID, courseID, holeNumber, strokes)
	}
	return 0, nil
}

func (f *FakeTournamentRepository) InsertScoreLog(ctx context.Context, log *tournamentdomain.ScoreLog) error {
	f.record("InsertScoreLog")
	f.LastScoreLog = log
	if f.InsertScoreLogFunc != nil {
		return f.InsertScoreLogFunc(ctx, log)
	}
	return nil
}

func (f *FakeTournamentRepository) GetScoreLogs(ctx context.Context, playerID string) ([]tournamentdomain.ScoreLog, error) {
	f.record("GetScoreLogs")
	if f.GetScoreLogsFunc != nil {
		return f.GetScoreLogsFunc(ctx, playerID)
	}
	return nil, nil
}

func (f *FakeTournamentRepository) GetSuddenDeath(ctx context.Context, groupType tournamentdomain.GroupType) (*tournamentdomain.SuddenDeathSession, error) {
	f.record("GetSuddenDeath")
	if f.GetSuddenDeathFunc != nil {
		return f.GetSuddenDeathFunc(ctx, groupType)
	}
	return nil, nil
}

func (f *FakeTournamentRepository) SetSuddenDeath(ctx context.Context, groupType tournamentdomain.GroupType, session *tournamentdomain.SuddenDeathSession) error {
	f.record("SetSuddenDeath")
	f.LastSession = session
	if f.SetSuddenDeathFunc != nil {
		return f.SetSuddenDeathFunc(ctx, groupType, session)
	}
	return nil
}

func (f *FakeTournamentRepository) UpdateGroupCourses(ctx context.Context, groupName string, courses map[int]bool) error {
	f.record("UpdateGroupCourses")
	f.LastAssignments[groupName] = courses
	if f.UpdateGroupCoursesFunc != nil {
		return f.UpdateGroupCoursesFunc(ctx, groupName, courses)
	}
	return nil
}

func (f *FakeTournamentRepository) GetCourses(ctx context.Context) ([]tournamentdomain.Course, error) {
	f.record("GetCourses")
	if f.GetCoursesFunc != nil {
		return f.GetCoursesFunc(ctx)
	}
	return nil, nil
}

func (f *FakeTournamentRepository) GetGroups(ctx context.Context) (map[string]tournamentdomain.Group, error) {
	f.record("GetGroups")
	if f.GetGroupsFunc != nil {
		return f.GetGroupsFunc(ctx)
	}
	return nil, nil
}

var _ tournamentdb.TournamentDB = (*FakeTournamentRepository)(nil)

// ------------------------
// Fake Event Bus
// ------------------------

type publishedMessage struct {
	Topic string
	Msg   *message.Message
}

// FakeEventBus records published messages.
type FakeEventBus struct {
	Published   []publishedMessage
	PublishFunc func(ctx context.Context, topic string, msg *message.Message) error
}

func (f *FakeEventBus) Publish(ctx context.Context, topic string, msg *message.Message) error {
	f.Published = append(f.Published, publishedMessage{Topic: topic, Msg: msg})
	if f.PublishFunc != nil {
		return f.PublishFunc(ctx, topic, msg)
	}
	return nil
}

func (f *FakeEventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	ch := make(chan *message.Message)
	close(ch)
	return ch, nil
}

func (f *FakeEventBus) CreateStream(ctx context.Context, streamName string, subjects ...string) error {
	return nil
}

func (f *FakeEventBus) Close() error { return nil }

var _ eventbus.EventBus = (*FakeEventBus)(nil)

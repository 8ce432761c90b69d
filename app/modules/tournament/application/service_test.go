package tournamentservice

import (
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/riverside-pgc/parklive/app/shared/logging"
	"github.com/riverside-pgc/parklive/app/shared/metrics"
	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
)

func newTestService(repo *FakeTournamentRepository, bus *FakeEventBus) *TournamentService {
	return NewTournamentService(
		repo,
		bus,
		logging.NoOpLogger,
		metrics.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
		nil,
	)
}

func intp(v int) *int { return &v }

// serviceSnapshot is a small two-group tournament used across the
// service tests.
func serviceSnapshot() *tournamentdomain.Snapshot {
	return &tournamentdomain.Snapshot{
		Courses: map[int]tournamentdomain.Course{
			1: {ID: 1, Name: "East", IsActive: true, Pars: [9]*int{intp(3), intp(3), intp(3), intp(3), intp(3), intp(3), intp(3), intp(3), intp(3)}},
		},
		Groups: map[string]tournamentdomain.Group{
			"A": {Name: "A", Type: tournamentdomain.GroupIndividual, Courses: map[int]bool{1: true}},
		},
		Players: map[string]tournamentdomain.Player{
			"p1": {ID: "p1", Type: tournamentdomain.PlayerIndividual, Group: "A", Name: "Ahn"},
			"p2": {ID: "p2", Type: tournamentdomain.PlayerIndividual, Group: "A", Name: "Bae"},
		},
		Scores: tournamentdomain.ScoreSet{
			"p1": {1: {1: 3, 2: 4}},
			"p2": {1: {1: 4, 2: 4}},
		},
	}
}

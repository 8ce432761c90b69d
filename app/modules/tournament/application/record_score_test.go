package tournamentservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
	tournamentevents "github.com/riverside-pgc/parklive/app/modules/tournament/events"
)

func TestTournamentService_RecordScore(t *testing.T) {
	ctx := context.Background()

	validInput := RecordScoreInput{
		MatchID:        "m1",
		PlayerID:       "p1",
		CourseID:       1,
		HoleNumber:     3,
		Strokes:        4,
		ModifiedBy:     "judge-7",
		ModifiedByType: tournamentdomain.ModifiedByJudge,
	}

	tests := []struct {
		name           string
		input          RecordScoreInput
		setupFake      func(*FakeTournamentRepository)
		expectInfraErr bool
		verify         func(t *testing.T, res RecordScoreOperationResult, fake *FakeTournamentRepository, bus *FakeEventBus)
	}{
		{
			name:  "success - first write publishes score.updated",
			input: validInput,
			verify: func(t *testing.T, res RecordScoreOperationResult, fake *FakeTournamentRepository, bus *FakeEventBus) {
				if res.Success == nil {
					t.Fatal("expected success result")
				}
				if res.Success.Correction {
					t.Error("first write must not be flagged as a correction")
				}
				if fake.LastScoreLog == nil || fake.LastScoreLog.NewValue != 4 {
					t.Errorf("audit log not written: %+v", fake.LastScoreLog)
				}
				if len(bus.Published) != 1 || bus.Published[0].Topic != tournamentevents.ScoreUpdatedTopic {
					t.Errorf("expected one publish on %s, got %+v", tournamentevents.ScoreUpdatedTopic, bus.Published)
				}
			},
		},
		{
			name:  "success - overwrite is flagged as correction",
			input: validInput,
			setupFake: func(f *FakeTournamentRepository) {
				f.UpsertScoreFunc = func(ctx context.Context, playerID string, courseID, holeNumber, strokes int) (int, error) {
					return 5, nil
				}
			},
			verify: func(t *testing.T, res RecordScoreOperationResult, fake *FakeTournamentRepository, bus *FakeEventBus) {
				if res.Success == nil {
					t.Fatal("expected success result")
				}
				if !res.Success.Correction {
					t.Error("overwrite of a different value must be a correction")
				}
				if res.Success.OldValue != 5 {
					t.Errorf("OldValue = %d, want 5", res.Success.OldValue)
				}
			},
		},
		{
			name: "failure - hole out of range",
			input: RecordScoreInput{
				PlayerID:   "p1",
				CourseID:   1,
				HoleNumber: 10,
				Strokes:    4,
			},
			verify: func(t *testing.T, res RecordScoreOperationResult, fake *FakeTournamentRepository, bus *FakeEventBus) {
				if res.Failure == nil {
					t.Fatal("expected failure result")
				}
				if !strings.Contains(res.Failure.Reason, "hole number") {
					t.Errorf("unexpected failure reason %q", res.Failure.Reason)
				}
				if len(fake.Trace()) != 0 {
					t.Errorf("repo must not be touched on validation failure, got %v", fake.Trace())
				}
			},
		},
		{
			name: "failure - negative strokes rejected, forfeit zero accepted",
			input: RecordScoreInput{
				PlayerID:   "p1",
				CourseID:   1,
				HoleNumber: 1,
				Strokes:    -1,
			},
			verify: func(t *testing.T, res RecordScoreOperationResult, fake *FakeTournamentRepository, bus *FakeEventBus) {
				if res.Failure == nil {
					t.Fatal("expected failure result")
				}
			},
		},
		{
			name:  "infra error - upsert fails",
			input: validInput,
			setupFake: func(f *FakeTournamentRepository) {
				f.UpsertScoreFunc = func(ctx context.Context, playerID string, courseID, holeNumber, strokes int) (int, error) {
					return 0, errors.New("db down")
				}
			},
			expectInfraErr: true,
			verify: func(t *testing.T, res RecordScoreOperationResult, fake *FakeTournamentRepository, bus *FakeEventBus) {
				if len(bus.Published) != 0 {
					t.Error("nothing may be published when the write fails")
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := NewFakeTournamentRepository()
			bus := &FakeEventBus{}
			if tt.setupFake != nil {
				tt.setupFake(fake)
			}
			svc := newTestService(fake, bus)

			res, err := svc.RecordScore(ctx, tt.input)
			if tt.expectInfraErr {
				if err == nil {
					t.Fatal("expected infra error")
				}
			} else if err != nil {
				t.Fatalf("unexpected infra error: %v", err)
			}
			if tt.verify != nil {
				tt.verify(t, res, fake, bus)
			}
		})
	}
}

func TestTournamentService_RecordScoreForfeitSentinel(t *testing.T) {
	fake := NewFakeTournamentRepository()
	bus := &FakeEventBus{}
	svc := newTestService(fake, bus)

	res, err := svc.RecordScore(context.Background(), RecordScoreInput{
		PlayerID:       "p1",
		CourseID:       1,
		HoleNumber:     2,
		Strokes:        0,
		ModifiedBy:     "judge-7",
		ModifiedByType: tournamentdomain.ModifiedByJudge,
		Comment:        "player forfeit",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Success == nil {
		t.Fatal("zero strokes is the forfeit sentinel and must be accepted")
	}
	if fake.LastScoreLog.Comment != "player forfeit" {
		t.Errorf("forfeit comment not preserved: %q", fake.LastScoreLog.Comment)
	}
}

package tournamentservice

import (
	"context"
	"errors"
	"testing"

	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
)

func TestTournamentService_GetLeaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("ranks the snapshot", func(t *testing.T) {
		fake := NewFakeTournamentRepository()
		fake.LoadSnapshotFunc = func(ctx context.Context) (*tournamentdomain.Snapshot, error) {
			return serviceSnapshot(), nil
		}
		svc := newTestService(fake, &FakeEventBus{})

		res, err := svc.GetLeaderboard(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success == nil {
			t.Fatal("expected success result")
		}
		board := *res.Success
		if len(board.Groups) != 1 || board.Groups[0].Group != "A" {
			t.Fatalf("unexpected groups: %+v", board.Groups)
		}
		players := board.Groups[0].Players
		if len(players) != 2 {
			t.Fatalf("got %d players, want 2", len(players))
		}
		// p1 has 7 strokes over two holes, p2 has 8.
		if players[0].ID != "p1" || players[0].Rank == nil || *players[0].Rank != 1 {
			t.Errorf("leader = %+v, want p1 at rank 1", players[0])
		}
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		fake := NewFakeTournamentRepository()
		fake.LoadSnapshotFunc = func(ctx context.Context) (*tournamentdomain.Snapshot, error) {
			return nil, errors.New("db down")
		}
		svc := newTestService(fake, &FakeEventBus{})

		if _, err := svc.GetLeaderboard(ctx); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestTournamentService_GetProgress(t *testing.T) {
	fake := NewFakeTournamentRepository()
	fake.LoadSnapshotFunc = func(ctx context.Context) (*tournamentdomain.Snapshot, error) {
		return serviceSnapshot(), nil
	}
	svc := newTestService(fake, &FakeEventBus{})

	res, err := svc.GetProgress(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Success == nil {
		t.Fatal("expected success result")
	}
	groups := res.Success.Groups
	if len(groups) != 1 || groups[0].Group != "A" {
		t.Fatalf("unexpected progress groups: %+v", groups)
	}
	// 4 of 18 cells entered -> 22%.
	if groups[0].Percent != 22 {
		t.Errorf("Percent = %d, want 22", groups[0].Percent)
	}
}

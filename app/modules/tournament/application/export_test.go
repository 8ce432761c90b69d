package tournamentservice

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
)

func TestTournamentService_ExportStandings(t *testing.T) {
	fake := NewFakeTournamentRepository()
	fake.LoadSnapshotFunc = func(ctx context.Context) (*tournamentdomain.Snapshot, error) {
		return serviceSnapshot(), nil
	}
	svc := newTestService(fake, &FakeEventBus{})

	res, err := svc.ExportStandings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Success == nil {
		t.Fatal("expected success result")
	}
	if res.Success.Filename != "standings.xlsx" {
		t.Errorf("Filename = %q", res.Success.Filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(res.Success.Data))
	if err != nil {
		t.Fatalf("exported bytes are not a valid workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "A" {
		t.Fatalf("sheets = %v, want [A]", sheets)
	}

	rows, err := f.GetRows("A")
	if err != nil {
		t.Fatalf("failed to read sheet A: %v", err)
	}
	// Header plus two players.
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "Rank" || rows[0][2] != "Name" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	// p1 leads with 7 strokes over two holes.
	if rows[1][2] != "Ahn" || rows[1][0] != "1" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
}

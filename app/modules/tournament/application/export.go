package tournamentservice

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/riverside-pgc/parklive/app/shared/attr"
	"github.com/riverside-pgc/parklive/app/shared/results"
	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
)

// ExportedWorkbook is a rendered standings spreadsheet.
type ExportedWorkbook struct {
	Filename string `json:"filename"`
	Data     []byte `json:"-"`
}

// ExportOperationResult is the envelope for standings exports.
type ExportOperationResult = results.OperationResult[ExportedWorkbook, OperationFailure]

// ExportStandings renders the current leaderboard as an xlsx workbook,
// one sheet per group in rank order, plus a playoff sheet when a
// sudden-death session has results.
func (s *TournamentService) ExportStandings(ctx context.Context) (ExportOperationResult, error) {
	return withTelemetry(s, ctx, "ExportStandings", func(ctx context.Context) (ExportOperationResult, error) {
		snap, err := s.repo.LoadSnapshot(ctx)
		if err != nil {
			return ExportOperationResult{}, err
		}
		board, err := tournamentdomain.Rank(snap)
		if err != nil {
			return ExportOperationResult{}, err
		}

		f := excelize.NewFile()
		defer f.Close()

		for _, standing := range board.Groups {
			if err := writeGroupSheet(f, standing); err != nil {
				return ExportOperationResult{}, err
			}
		}
		if len(board.IndividualSuddenDeath) > 0 {
			if err := writePlayoffSheet(f, "Playoff (Individual)", board.IndividualSuddenDeath); err != nil {
				return ExportOperationResult{}, err
			}
		}
		if len(board.TeamSuddenDeath) > 0 {
			if err := writePlayoffSheet(f, "Playoff (Team)", board.TeamSuddenDeath); err != nil {
				return ExportOperationResult{}, err
			}
		}

		// Drop the default sheet once real sheets exist.
		if len(board.Groups) > 0 {
			if err := f.DeleteSheet("Sheet1"); err != nil {
				return ExportOperationResult{}, fmt.Errorf("failed to delete default sheet: %w", err)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return ExportOperationResult{}, fmt.Errorf("failed to render workbook: %w", err)
		}
		s.metrics.RecordExport(ctx)
		s.logger.InfoContext(ctx, "Standings exported",
			attr.Int("groups", len(board.Groups)),
			attr.ExtractCorrelationID(ctx),
		)

		return results.SuccessResult[ExportedWorkbook, OperationFailure](ExportedWorkbook{
			Filename: "standings.xlsx",
			Data:     buf.Bytes(),
		}), nil
	})
}

func writeGroupSheet(f *excelize.File, standing tournamentdomain.GroupStanding) error {
	sheet := standing.Group
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	headers := []any{"Rank", "Jo", "Name", "Club", "Total", "+/-"}
	var courseIDs []int
	if len(standing.Players) > 0 {
		for _, c := range standing.Players[0].AssignedCourses {
			headers = append(headers, c.Name)
			courseIDs = append(courseIDs, c.ID)
		}
	}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, p := range standing.Players {
		rank := ""
		if p.Rank != nil {
			rank = fmt.Sprintf("%d", *p.Rank)
		} else if p.HasForfeited {
			rank = "DQ"
		}
		plusMinus := ""
		if p.PlusMinus != nil {
			plusMinus = fmt.Sprintf("%+d", *p.PlusMinus)
		}
		row := []any{rank, p.Jo, p.DisplayName, p.Club, p.TotalScore, plusMinus}
		for _, id := range courseIDs {
			row = append(row, p.CourseScores[id])
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writePlayoffSheet(f *excelize.File, sheet string, rows []tournamentdomain.SuddenDeathResult) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, []any{"Rank", "Name", "Club", "Holes Played", "Total"}); err != nil {
		return err
	}
	for i, r := range rows {
		if err := setRow(f, sheet, i+2, []any{r.Rank, r.DisplayName, r.Club, r.HolesPlayed, r.TotalScore}); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write cell %s on %s: %w", cell, sheet, err)
		}
	}
	return nil
}

package tournamentdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	tournamentdomain "github.com/riverside-pgc/parklive/app/modules/tournament/domain"
)

// TournamentDBImpl implements TournamentDB on Postgres via bun.
type TournamentDBImpl struct {
	DB *bun.DB
}

// LoadSnapshot reads every collection the engine needs. The reads run
// inside one transaction so the snapshot is internally consistent.
func (db *TournamentDBImpl) LoadSnapshot(ctx context.Context) (*tournamentdomain.Snapshot, error) {
	snap := &tournamentdomain.Snapshot{
		Players: make(map[string]tournamentdomain.Player),
		Scores:  make(tournamentdomain.ScoreSet),
		Courses: make(map[int]tournamentdomain.Course),
		Groups:  make(map[string]tournamentdomain.Group),
	}

	err := db.DB.RunInTx(ctx, &sql.TxOptions{ReadOnly: true}, func(ctx context.Context, tx bun.Tx) error {
		var courses []CourseModel
		if err := tx.NewSelect().Model(&courses).Order("id ASC").Scan(ctx); err != nil {
			return fmt.Errorf("failed to fetch courses: %w", err)
		}
		for _, c := range courses {
			snap.Courses[c.ID] = tournamentdomain.Course{
				ID:       c.ID,
				Name:     c.Name,
				Pars:     c.Pars,
				IsActive: c.IsActive,
			}
		}

		var groups []GroupModel
		if err := tx.NewSelect().Model(&groups).Order("name ASC").Scan(ctx); err != nil {
			return fmt.Errorf("failed to fetch groups: %w", err)
		}
		for _, g := range groups {
			snap.Groups[g.Name] = tournamentdomain.Group{
				Name:    g.Name,
				Type:    g.Type,
				Courses: g.Courses,
			}
		}

		var players []PlayerModel
		if err := tx.NewSelect().Model(&players).Order("id ASC").Scan(ctx); err != nil {
			return fmt.Errorf("failed to fetch players: %w", err)
		}
		for _, p := range players {
			snap.Players[p.ID] = tournamentdomain.Player{
				ID:            p.ID,
				Type:          p.Type,
				Group:         p.GroupName,
				Jo:            p.Jo,
				Name:          p.Name,
				Affiliation:   p.Affiliation,
				P1Name:        p.P1Name,
				P1Affiliation: p.P1Affiliation,
				P2Name:        p.P2Name,
				P2Affiliation: p.P2Affiliation,
			}
		}

		var scores []ScoreModel
		if err := tx.NewSelect().Model(&scores).Scan(ctx); err != nil {
			return fmt.Errorf("failed to fetch scores: %w", err)
		}
		for _, s := range scores {
			byCourse, ok := snap.Scores[s.PlayerID]
			if !ok {
				byCourse = make(map[int]map[int]int)
				snap.Scores[s.PlayerID] = byCourse
			}
			byHole, ok := byCourse[s.CourseID]
			if !ok {
				byHole = make(map[int]int)
				byCourse[s.CourseID] = byHole
			}
			byHole[s.HoleNumber] = s.Strokes
		}

		var sessions []SuddenDeathModel
		if err := tx.NewSelect().Model(&sessions).Scan(ctx); err != nil {
			return fmt.Errorf("failed to fetch sudden death sessions: %w", err)
		}
		for _, s := range sessions {
			switch s.GroupType {
			case tournamentdomain.GroupIndividual:
				snap.SuddenDeath.Individual = s.Session
			case tournamentdomain.GroupTeam:
				snap.SuddenDeath.Team = s.Session
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// UpsertScore writes one cell and returns the value it replaced. The
// read and write share a transaction so the audit log's OldValue can
// never race a concurrent write to the same cell.
func (db *TournamentDBImpl) UpsertScore(ctx context.Context, playerID string, courseID, holeNumber, strokes int) (int, error) {
	var oldValue int
	err := db.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var existing ScoreModel
		err := tx.NewSelect().
			Model(&existing).
			Where("player_id = ?", playerID).
			Where("course_id = ?", courseID).
			Where("hole_number = ?", holeNumber).
			For("UPDATE").
			Scan(ctx)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to fetch existing score cell: %w", err)
		}
		oldValue = existing.Strokes

		cell := ScoreModel{
			PlayerID:   playerID,
			CourseID:   courseID,
			HoleNumber: holeNumber,
			Strokes:    strokes,
		}
		_, err = tx.NewInsert().
			Model(&cell).
			On("CONFLICT (player_id, course_id, hole_number) DO UPDATE").
			Set("strokes = EXCLUDED.strokes, updated_at = now()").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert score cell: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return oldValue, nil
}

func (db *TournamentDBImpl) InsertScoreLog(ctx context.Context, log *tournamentdomain.ScoreLog) error {
	model := ScoreLogModel{
		MatchID:        log.MatchID,
		PlayerID:       log.PlayerID,
		CourseID:       log.CourseID,
		HoleNumber:     log.HoleNumber,
		OldValue:       log.OldValue,
		NewValue:       log.NewValue,
		ModifiedBy:     log.ModifiedBy,
		ModifiedByType: log.ModifiedByType,
		ModifiedAt:     log.ModifiedAt,
		Comment:        log.Comment,
	}
	if log.ID != "" {
		id, err := uuid.Parse(log.ID)
		if err != nil {
			return fmt.Errorf("invalid score log id %q: %w", log.ID, err)
		}
		model.ID = id
	}

	if _, err := db.DB.NewInsert().Model(&model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert score log: %w", err)
	}
	log.ID = model.ID.String()
	return nil
}

func (db *TournamentDBImpl) GetScoreLogs(ctx context.Context, playerID string) ([]tournamentdomain.ScoreLog, error) {
	var models []ScoreLogModel
	err := db.DB.NewSelect().
		Model(&models).
		Where("player_id = ?", playerID).
		Order("modified_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch score logs for player %s: %w", playerID, err)
	}

	logs := make([]tournamentdomain.ScoreLog, 0, len(models))
	for _, m := range models {
		logs = append(logs, tournamentdomain.ScoreLog{
			ID:             m.ID.String(),
			MatchID:        m.MatchID,
			PlayerID:       m.PlayerID,
			CourseID:       m.CourseID,
			HoleNumber:     m.HoleNumber,
			OldValue:       m.OldValue,
			NewValue:       m.NewValue,
			ModifiedBy:     m.ModifiedBy,
			ModifiedByType: m.ModifiedByType,
			ModifiedAt:     m.ModifiedAt,
			Comment:        m.Comment,
		})
	}
	return logs, nil
}

func (db *TournamentDBImpl) GetSuddenDeath(ctx context.Context, groupType tournamentdomain.GroupType) (*tournamentdomain.SuddenDeathSession, error) {
	var model SuddenDeathModel
	err := db.DB.NewSelect().
		Model(&model).
		Where("group_type = ?", groupType).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch sudden death session for %s: %w", groupType, err)
	}
	return model.Session, nil
}

func (db *TournamentDBImpl) SetSuddenDeath(ctx context.Context, groupType tournamentdomain.GroupType, session *tournamentdomain.SuddenDeathSession) error {
	model := SuddenDeathModel{
		GroupType: groupType,
		Session:   session,
	}
	_, err := db.DB.NewInsert().
		Model(&model).
		On("CONFLICT (group_type) DO UPDATE").
		Set("session = EXCLUDED.session, updated_at = now()").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to store sudden death session for %s: %w", groupType, err)
	}
	return nil
}

func (db *TournamentDBImpl) UpdateGroupCourses(ctx context.Context, groupName string, courses map[int]bool) error {
	res, err := db.DB.NewUpdate().
		Model((*GroupModel)(nil)).
		Set("courses = ?", courses).
		Where("name = ?", groupName).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update courses for group %s: %w", groupName, err)
	}
	rows, err := res.RowsAffected()
	if err == nil && rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *TournamentDBImpl) GetCourses(ctx context.Context) ([]tournamentdomain.Course, error) {
	var models []CourseModel
	if err := db.DB.NewSelect().Model(&models).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	courses := make([]tournamentdomain.Course, 0, len(models))
	for _, c := range models {
		courses = append(courses, tournamentdomain.Course{
			ID:       c.ID,
			Name:     c.Name,
			Pars:     c.Pars,
			IsActive: c.IsActive,
		})
	}
	return courses, nil
}

func (db *TournamentDBImpl) GetGroups(ctx context.Context) (map[string]tournamentdomain.Group, error) {
	var models []GroupModel
	if err := db.DB.NewSelect().Model(&models).Order("name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch groups: %w", err)
	}
	groups := make(map[string]tournamentdomain.Group, len(models))
	for _, g := range models {
		groups[g.Name] = tournamentdomain.Group{
			Name:    g.Name,
			Type:    g.Type,
			Courses: g.Courses,
		}
	}
	return groups, nil
}

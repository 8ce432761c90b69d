package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	tournamentdb "github.com/riverside-pgc/parklive/app/modules/tournament/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating tournament tables...")

		models := []any{
			(*tournamentdb.CourseModel)(nil),
			(*tournamentdb.GroupModel)(nil),
			(*tournamentdb.PlayerModel)(nil),
			(*tournamentdb.ScoreModel)(nil),
			(*tournamentdb.ScoreLogModel)(nil),
			(*tournamentdb.SuddenDeathModel)(nil),
		}
		for _, model := range models {
			if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
				return err
			}
		}

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS idx_score_logs_player_id ON score_logs(player_id);
			`); err != nil {
				return fmt.Errorf("failed to add index to score_logs: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS idx_players_group_name ON players(group_name);
			`); err != nil {
				return fmt.Errorf("failed to add index to players: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping tournament tables...")

		models := []any{
			(*tournamentdb.SuddenDeathModel)(nil),
			(*tournamentdb.ScoreLogModel)(nil),
			(*tournamentdb.ScoreModel)(nil),
			(*tournamentdb.PlayerModel)(nil),
			(*tournamentdb.GroupModel)(nil),
			(*tournamentdb.CourseModel)(nil),
		}
		for _, model := range models {
			if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

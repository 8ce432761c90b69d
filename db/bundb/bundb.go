// db/bundb/bundb.go
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	tournamentdb "github.com/riverside-pgc/parklive/app/modules/tournament/infrastructure/repositories"
	"github.com/riverside-pgc/parklive/config"
)

// DBService bundles the bun connection with the module repositories.
type DBService struct {
	TournamentDB *tournamentdb.TournamentDBImpl
	db           *bun.DB
}

// GetDB returns the underlying database connection pool.
func (dbService *DBService) GetDB() *bun.DB {
	return dbService.db
}

// NewBunDBService initializes a new DBService with the provided Postgres configuration.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(
		(*tournamentdb.CourseModel)(nil),
		(*tournamentdb.GroupModel)(nil),
		(*tournamentdb.PlayerModel)(nil),
		(*tournamentdb.ScoreModel)(nil),
		(*tournamentdb.ScoreLogModel)(nil),
		(*tournamentdb.SuddenDeathModel)(nil),
	)

	return &DBService{
		TournamentDB: &tournamentdb.TournamentDBImpl{DB: db},
		db:           db,
	}, nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return sqldb, nil
}

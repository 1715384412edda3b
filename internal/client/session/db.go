package session

import (
	"context"
	"database/sql"

	"github.com/Faizan-Cheema/popstream/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// OpenDB opens (creating if necessary) the SQLite database backing the
// durable tier and applies pending migrations. The caller owns closing the
// returned handle.
func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

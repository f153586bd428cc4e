// Package migrations embeds the goose schema migrations for every supported
// database dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Database drivers as registered with database/sql. They double as goose
// dialect names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

var dialectDirs = map[string]string{
	DriverPostgres: "postgres",
	DriverSQLite:   "sqlite",
}

// Migrate applies all pending migrations for driver to db.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, ok := dialectDirs[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: the first statement goose issues fails
	err = Migrate(context.Background(), db, DriverPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, DriverSQLite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

// TestEmbeddedMigrations_SameVersions verifies both dialects ship the same
// migration versions.
func TestEmbeddedMigrations_SameVersions(t *testing.T) {
	list := func(dir string) []string {
		entries, err := fs.ReadDir(embedMigrations, dir)
		require.NoError(t, err)
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		return names
	}

	pg := list("postgres")
	lite := list("sqlite")
	require.NotEmpty(t, pg)
	assert.Equal(t, pg, lite)
	for _, name := range pg {
		assert.True(t, strings.HasSuffix(name, ".sql"), name)
	}
}

func TestMigrate_SQLiteInMemory(t *testing.T) {
	db, err := sql.Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, DriverSQLite))
	// idempotent
	require.NoError(t, Migrate(ctx, db, DriverSQLite))

	for _, table := range []string{"users", "houses", "bids"} {
		var name string
		err = db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

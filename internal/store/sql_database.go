package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-house-bids/internal/config"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a database/sql pool together with the dialect specific pieces the
// repositories need: a squirrel statement builder with the right
// placeholder format and a classifier for constraint violations.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens and pings the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("unknown database driver")
		return nil, fmt.Errorf("%w: %q", ErrUnknownDBDriver, cfg.Driver)
	}
}

// Migrate applies all pending schema migrations for the connected dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// classify maps a driver error to a constraint violation kind.
func (db *DB) classify(err error) ConstraintViolation {
	if db.errorClassificator == nil {
		return NoViolation
	}
	return db.errorClassificator.Classify(err)
}

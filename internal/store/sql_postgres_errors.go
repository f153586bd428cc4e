package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ConstraintViolation is the result of [ErrorClassificator.Classify]: which
// integrity constraint, if any, rejected a statement.
type ConstraintViolation int

const (
	// NoViolation covers nil errors and every error that is not an
	// integrity constraint violation.
	NoViolation ConstraintViolation = iota

	// UniqueViolation means a UNIQUE constraint rejected the statement.
	UniqueViolation

	// ForeignKeyViolation means a FOREIGN KEY constraint rejected the
	// statement.
	ForeignKeyViolation
)

// ErrorClassificator maps driver specific errors to [ConstraintViolation].
type ErrorClassificator interface {
	Classify(err error) ConstraintViolation
}

// PostgresErrorClassifier implements [ErrorClassificator] for errors
// returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ConstraintViolation {
	if err == nil {
		return NoViolation
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NoViolation
}

// ClassifyPgError maps the SQLSTATE of pgErr to a [ConstraintViolation].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ConstraintViolation {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation: // 23505
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation: // 23503
		return ForeignKeyViolation
	}

	return NoViolation
}

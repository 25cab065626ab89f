package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps
// it to an [ErrorClass] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier]. It attempts to unwrap err as a
// *pgconn.PgError and maps the PostgreSQL error code onto an engine-
// neutral class. Nil and non-driver errors classify as ErrorClassOther.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for
// the full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClass {
	if err == nil {
		return ErrorClassOther
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ErrorClassOther
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrorClassUniqueViolation

	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return ErrorClassRetryable

	// Class 40 — transaction rollback
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return ErrorClassRetryable

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow:
		return ErrorClassRetryable
	}

	return ErrorClassOther
}

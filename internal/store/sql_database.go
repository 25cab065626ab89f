package store

import (
	"database/sql"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
)

// DB wraps a sql.DB connection together with the error classifier of the
// backing engine and a logger. Repositories embed *DB and use the
// classifier to map driver errors onto store sentinels.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// ErrorClassifier maps driver-specific errors to engine-neutral classes.
type ErrorClassifier interface {
	Classify(err error) ErrorClass
}

// ErrorClass is the engine-neutral classification of a database error.
type ErrorClass int

const (
	// ErrorClassOther marks errors with no special handling.
	ErrorClassOther ErrorClass = iota

	// ErrorClassRetryable marks transient failures (connection loss,
	// deadlock rollback) that may succeed if attempted again.
	ErrorClassRetryable

	// ErrorClassUniqueViolation marks unique-constraint violations
	// (duplicate login, double conversion of a trial session).
	ErrorClassUniqueViolation
)

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrLoginAlreadyExists is returned when registering a new account
	// fails because a user with the same login already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at
	// least one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProjectNotFound is returned when a query or update targets a
	// project (identified by id and owner) that does not exist.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrTrialSessionNotFound is returned when the authority has no
	// record for the requested trial identity.
	ErrTrialSessionNotFound = errors.New("trial session was not found")

	// ErrTrialSessionConverted is returned when an operation requires an
	// unconverted trial session but the record has already been claimed
	// by an account.
	ErrTrialSessionConverted = errors.New("trial session already converted")

	// ErrCacheEntryNotFound is returned when no cache row exists for the
	// requested fingerprint. Expiry is judged by the cache layer, not by
	// the repository.
	ErrCacheEntryNotFound = errors.New("cache entry was not found")

	// ErrLocalTrialNotFound is returned when the client's local storage
	// has no (or an unreadable) trial session record. Malformed local
	// data is deliberately reported as absence, never as corruption.
	ErrLocalTrialNotFound = errors.New("local trial session not found")

	// ErrSnapshotNotFound is returned when no document snapshot is
	// cached in local storage.
	ErrSnapshotNotFound = errors.New("document snapshot not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read-only query
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

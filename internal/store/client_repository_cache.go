package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// localCacheRepository is the SQLite-backed implementation of
// [LocalCacheRepository]. Rows are content-addressed by fingerprint;
// expiry semantics live in the cache layer, the repository only stores
// and deletes.
type localCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalCacheRepository constructs a [LocalCacheRepository] backed by
// the client database connection.
func NewLocalCacheRepository(db *DB, logger *logger.Logger) LocalCacheRepository {
	return &localCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localCacheRepository) FindEntry(ctx context.Context, fingerprint string) (models.CacheEntry, error) {
	var entry models.CacheEntry

	err := r.DB.QueryRowContext(ctx, findCacheEntry, fingerprint).Scan(
		&entry.Fingerprint,
		&entry.Kind,
		&entry.Payload,
		&entry.CreatedAt,
		&entry.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CacheEntry{}, ErrCacheEntryNotFound
		}
		r.logger.Err(err).
			Str("func", "localCacheRepository.FindEntry").
			Str("fingerprint", fingerprint).
			Msg("failed to read cache entry")
		return models.CacheEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

func (r *localCacheRepository) UpsertEntry(ctx context.Context, entry models.CacheEntry) error {
	_, err := r.DB.ExecContext(ctx, upsertCacheEntry,
		entry.Fingerprint,
		entry.Kind,
		entry.Payload,
		entry.CreatedAt,
		entry.ExpiresAt,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "localCacheRepository.UpsertEntry").
			Str("fingerprint", entry.Fingerprint).
			Msg("failed to upsert cache entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localCacheRepository) DeleteExpiredEntries(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, deleteExpiredCacheEntries, now)
	if err != nil {
		r.logger.Err(err).
			Str("func", "localCacheRepository.DeleteExpiredEntries").
			Msg("failed to delete expired cache entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected after cache sweep: %w", err)
	}

	return removed, nil
}

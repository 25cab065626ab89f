package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/internal/store"
	"github.com/MKhiriev/go-canvas-studio/models"
)

//go:generate mockgen -source=cache.go -destination=../mock/cache_repository_mock.go -package=mock

// Repository is the persistence contract the cache runs on. Backed by the
// client SQLite database in production.
type Repository interface {
	FindEntry(ctx context.Context, fingerprint string) (models.CacheEntry, error)
	UpsertEntry(ctx context.Context, entry models.CacheEntry) error
	DeleteExpiredEntries(ctx context.Context, now time.Time) (int64, error)
}

// Cache is the content-addressed generation cache. All reads apply the
// lazy-expiry rule: a physically present but expired row is a miss.
type Cache struct {
	repo   Repository
	now    func() time.Time
	logger *logger.Logger
}

// New constructs a Cache on top of the given repository.
func New(repo Repository, log *logger.Logger) *Cache {
	return &Cache{
		repo:   repo,
		now:    time.Now,
		logger: log,
	}
}

// Get returns the stored entry for the fingerprint if it exists and its
// expiry has not passed. A missing or expired entry is reported as a
// logical miss (ok == false), never as an error.
func (c *Cache) Get(ctx context.Context, fingerprint string) (models.CacheEntry, bool, error) {
	entry, err := c.repo.FindEntry(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrCacheEntryNotFound) {
			return models.CacheEntry{}, false, nil
		}
		return models.CacheEntry{}, false, fmt.Errorf("find cache entry: %w", err)
	}

	if entry.Expired(c.now()) {
		// physically present, logically absent until the sweep removes it
		c.logger.Debug().
			Str("fingerprint", fingerprint).
			Time("expired_at", entry.ExpiresAt).
			Msg("cache entry expired, treating as miss")
		return models.CacheEntry{}, false, nil
	}

	return entry, true, nil
}

// Put upserts a generation result under the fingerprint. A second Put for
// the same fingerprint replaces the payload and resets the expiry rather
// than erroring: re-generation after expiry is a legitimate flow.
//
// The TTL is caller-supplied because the two request types warrant
// different lifetimes (short for text suggestions, long for expensive
// image renders); the cache itself hardcodes nothing.
func (c *Cache) Put(ctx context.Context, fingerprint string, kind models.CacheEntryKind, payload []byte, ttlHours int) error {
	now := c.now()
	entry := models.CacheEntry{
		Fingerprint: fingerprint,
		Kind:        kind,
		Payload:     payload,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Duration(ttlHours) * time.Hour),
	}

	if err := c.repo.UpsertEntry(ctx, entry); err != nil {
		return fmt.Errorf("upsert cache entry: %w", err)
	}

	return nil
}

// Sweep physically deletes expired rows. Correctness never depends on the
// sweep running; it only reclaims space. Returns the number of rows
// removed.
func (c *Cache) Sweep(ctx context.Context) (int64, error) {
	removed, err := c.repo.DeleteExpiredEntries(ctx, c.now())
	if err != nil {
		return 0, fmt.Errorf("delete expired cache entries: %w", err)
	}

	if removed > 0 {
		c.logger.Debug().Int64("removed", removed).Msg("cache sweep completed")
	}

	return removed, nil
}

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-canvas-studio/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalTrialRepository is the client-side store for the single trial
// session record and the cached document snapshot, each held under a
// fixed key. All reads treat malformed or missing data as absence.
type LocalTrialRepository interface {
	GetTrialSession(ctx context.Context) (models.TrialSession, error)
	SaveTrialSession(ctx context.Context, session models.TrialSession) error
	DeleteTrialSession(ctx context.Context) error

	GetDocumentSnapshot(ctx context.Context) (models.Document, error)
	SaveDocumentSnapshot(ctx context.Context, doc models.Document) error
	DeleteDocumentSnapshot(ctx context.Context) error
}

// LocalCacheRepository is the client-side store for generation cache
// rows. It implements the cache package's Repository contract.
type LocalCacheRepository interface {
	FindEntry(ctx context.Context, fingerprint string) (models.CacheEntry, error)
	UpsertEntry(ctx context.Context, entry models.CacheEntry) error
	DeleteExpiredEntries(ctx context.Context, now time.Time) (int64, error)
}

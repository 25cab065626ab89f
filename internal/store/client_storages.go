package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-canvas-studio/internal/config"
	"github.com/MKhiriev/go-canvas-studio/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a
// single value that can be passed around the service layer.
type ClientStorages struct {
	// TrialRepository holds the local trial session record and the
	// document snapshot.
	TrialRepository LocalTrialRepository

	// CacheRepository holds the content-addressed generation cache rows.
	CacheRepository LocalCacheRepository
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to the file path in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending local schema migrations.
//  3. Constructs the repositories over the shared connection.
//
// Returns an error if the database connection cannot be established or
// migration fails.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		TrialRepository: NewLocalTrialRepository(db, log),
		CacheRepository: NewLocalCacheRepository(db, log),
	}, nil
}

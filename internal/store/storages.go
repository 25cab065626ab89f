package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-canvas-studio/internal/config"
	"github.com/MKhiriev/go-canvas-studio/internal/logger"
)

// Storages groups the authority-side repositories into a single value
// passed to the service layer.
type Storages struct {
	UserRepository         UserRepository
	TrialSessionRepository TrialSessionRepository
	ProjectRepository      ProjectRepository
}

// NewStorages initialises the authority storage layer. It opens a
// PostgreSQL connection using cfg.DB.DSN, runs pending schema migrations
// and wires the repositories to the shared connection.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		TrialSessionRepository: NewTrialSessionRepository(db, logger),
		ProjectRepository:      NewProjectRepository(db, logger),
	}, nil
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// localTrialRepository is the SQLite-backed implementation of
// [LocalTrialRepository]. The trial session record and the document
// snapshot are stored as JSON values in the local_state key-value table,
// each under a fixed key.
//
// Local data is attacker-controllable by definition (it lives on the
// user's machine), so every read treats malformed JSON as absence and
// logs the fact instead of failing.
type localTrialRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalTrialRepository constructs a [LocalTrialRepository] backed by
// the client database connection.
func NewLocalTrialRepository(db *DB, logger *logger.Logger) LocalTrialRepository {
	return &localTrialRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localTrialRepository) GetTrialSession(ctx context.Context) (models.TrialSession, error) {
	var session models.TrialSession
	if err := r.getJSON(ctx, localKeyTrialSession, &session); err != nil {
		return models.TrialSession{}, errors.Join(ErrLocalTrialNotFound, err)
	}
	if session.SessionID == "" {
		return models.TrialSession{}, ErrLocalTrialNotFound
	}
	return session, nil
}

func (r *localTrialRepository) SaveTrialSession(ctx context.Context, session models.TrialSession) error {
	return r.putJSON(ctx, localKeyTrialSession, session)
}

func (r *localTrialRepository) DeleteTrialSession(ctx context.Context) error {
	return r.deleteKey(ctx, localKeyTrialSession)
}

func (r *localTrialRepository) GetDocumentSnapshot(ctx context.Context) (models.Document, error) {
	var doc models.Document
	if err := r.getJSON(ctx, localKeyDocumentSnapshot, &doc); err != nil {
		return models.Document{}, errors.Join(ErrSnapshotNotFound, err)
	}
	return doc, nil
}

func (r *localTrialRepository) SaveDocumentSnapshot(ctx context.Context, doc models.Document) error {
	return r.putJSON(ctx, localKeyDocumentSnapshot, doc)
}

func (r *localTrialRepository) DeleteDocumentSnapshot(ctx context.Context) error {
	return r.deleteKey(ctx, localKeyDocumentSnapshot)
}

// getJSON loads and decodes the value stored under key into dst.
// Missing rows and undecodable values both surface as errors for the
// caller to join with the appropriate not-found sentinel.
func (r *localTrialRepository) getJSON(ctx context.Context, key string, dst any) error {
	var raw []byte
	err := r.DB.QueryRowContext(ctx, getLocalValue, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("no local value for key %q", key)
		}
		r.logger.Err(err).
			Str("func", "localTrialRepository.getJSON").
			Str("key", key).
			Msg("failed to read local value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		r.logger.Warn().
			Str("key", key).
			Msg("malformed local value, treating as absent")
		return fmt.Errorf("decode local value for key %q: %w", key, err)
	}

	return nil
}

func (r *localTrialRepository) putJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode local value for key %q: %w", key, err)
	}

	if _, err = r.DB.ExecContext(ctx, upsertLocalValue, key, raw); err != nil {
		r.logger.Err(err).
			Str("func", "localTrialRepository.putJSON").
			Str("key", key).
			Msg("failed to write local value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localTrialRepository) deleteKey(ctx context.Context, key string) error {
	if _, err := r.DB.ExecContext(ctx, deleteLocalValue, key); err != nil {
		r.logger.Err(err).
			Str("func", "localTrialRepository.deleteKey").
			Str("key", key).
			Msg("failed to delete local value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

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

// trialSessionRepository is the PostgreSQL-backed implementation of
// [TrialSessionRepository]. The trial_sessions table is the single
// authoritative record of every anonymous identity's quota; the client's
// local copy is advisory only.
type trialSessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewTrialSessionRepository constructs a [TrialSessionRepository] backed
// by the provided database connection and logger.
func NewTrialSessionRepository(db *DB, logger *logger.Logger) TrialSessionRepository {
	return &trialSessionRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertSession inserts or refreshes the record for a trial identity.
// The usage count is merged with GREATEST so a tampered client cannot
// lower consumed quota. A converted session rejects the upsert.
func (r *trialSessionRepository) UpsertSession(ctx context.Context, req models.TrialUpsertRequest, expiresAt time.Time) (models.TrialSessionRecord, error) {
	log := logger.FromContext(ctx)

	record, err := r.scanRecord(r.DB.QueryRowContext(ctx, upsertTrialSession,
		req.SessionID,
		req.GenerationsUsed,
		req.AssetRef,
		expiresAt,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// the DO UPDATE clause skipped the row: it is converted
			return models.TrialSessionRecord{}, ErrTrialSessionConverted
		}
		log.Err(err).
			Str("func", "trialSessionRepository.UpsertSession").
			Str("session_id", req.SessionID).
			Msg("failed to upsert trial session")
		return models.TrialSessionRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

// FindSession returns the authoritative record for the trial identity.
func (r *trialSessionRepository) FindSession(ctx context.Context, sessionID string) (models.TrialSessionRecord, error) {
	log := logger.FromContext(ctx)

	record, err := r.scanRecord(r.DB.QueryRowContext(ctx, findTrialSession, sessionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TrialSessionRecord{}, ErrTrialSessionNotFound
		}
		log.Err(err).
			Str("func", "trialSessionRepository.FindSession").
			Str("session_id", sessionID).
			Msg("failed to query trial session")
		return models.TrialSessionRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// MarkConverted writes the conversion marker if and only if none exists.
// The WHERE converted_to IS NULL guard makes the claim atomic: exactly
// one of any number of concurrent transfer attempts observes claimed.
func (r *trialSessionRepository) MarkConverted(ctx context.Context, sessionID string, accountID int64, projectID string) (bool, error) {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, markTrialSessionConverted, sessionID, accountID, projectID)
	if err != nil {
		log.Err(err).
			Str("func", "trialSessionRepository.MarkConverted").
			Str("session_id", sessionID).
			Int64("account_id", accountID).
			Msg("failed to mark trial session converted")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected after conversion: %w", err)
	}

	return affected == 1, nil
}

func (r *trialSessionRepository) scanRecord(row *sql.Row) (models.TrialSessionRecord, error) {
	var record models.TrialSessionRecord
	err := row.Scan(
		&record.SessionID,
		&record.GenerationsUsed,
		&record.AssetRef,
		&record.ConvertedTo,
		&record.ConvertedProjectID,
		&record.CreatedAt,
		&record.ExpiresAt,
	)
	return record, err
}

// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/internal/store"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// IDGenerator produces identifiers for projects seeded by conversions.
type IDGenerator interface {
	Generate() string
}

// trialService is the authority-side trial lifecycle. It is the
// tie-breaker for every gating decision: local client records are
// advisory, the verdicts computed here are final.
type trialService struct {
	sessionRepository store.TrialSessionRepository
	projectRepository store.ProjectRepository

	ids IDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewTrialService(sessions store.TrialSessionRepository, projects store.ProjectRepository, ids IDGenerator, logger *logger.Logger) TrialService {
	return &trialService{
		sessionRepository: sessions,
		projectRepository: projects,
		ids:               ids,
		now:               time.Now,
		logger:            logger,
	}
}

// UpsertSession mirrors a client's local trial record and returns the
// authority's verdict. The stored usage count can only be raised by the
// mirror; a converted session yields a converted verdict instead of an
// error so clients get a clean terminal answer.
func (t *trialService) UpsertSession(ctx context.Context, req models.TrialUpsertRequest) (models.TrialValidation, error) {
	log := logger.FromContext(ctx)

	if req.SessionID == "" {
		log.Error().Msg("trial upsert without session ID")
		return models.TrialValidation{}, ErrValidationNoSessionID
	}

	expiresAt := t.now().Add(models.TrialSessionTTL)

	record, err := t.sessionRepository.UpsertSession(ctx, req, expiresAt)
	if err != nil {
		if errors.Is(err, store.ErrTrialSessionConverted) {
			return t.convertedVerdict(ctx, req.SessionID)
		}
		log.Err(err).Str("session_id", req.SessionID).Msg("trial session upsert failed")
		return models.TrialValidation{}, fmt.Errorf("trial session upsert failed: %w", err)
	}

	return record.Validate(t.now()), nil
}

// ValidateSession returns the authority's verdict for the trial identity.
// Returns a wrapped store.ErrTrialSessionNotFound when the authority has
// no record for it.
func (t *trialService) ValidateSession(ctx context.Context, sessionID string) (models.TrialValidation, error) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		log.Error().Msg("trial validation without session ID")
		return models.TrialValidation{}, ErrValidationNoSessionID
	}

	record, err := t.sessionRepository.FindSession(ctx, sessionID)
	if err != nil {
		log.Err(err).Str("session_id", sessionID).Msg("trial session lookup failed")
		return models.TrialValidation{}, fmt.Errorf("trial session lookup failed: %w", err)
	}

	return record.Validate(t.now()), nil
}

// ConvertSession transfers the trial session into the requesting account
// exactly once. The seeded project is created first; the conversion
// marker is then claimed atomically, and if another transfer won the race
// the fresh project is rolled back and the stored outcome is returned
// with AlreadyConverted set.
func (t *trialService) ConvertSession(ctx context.Context, sessionID string, req models.TrialConvertRequest) (models.TrialConvertResponse, error) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		log.Error().Msg("trial conversion without session ID")
		return models.TrialConvertResponse{}, ErrValidationNoSessionID
	}
	if req.AccountID == 0 {
		log.Error().Str("session_id", sessionID).Msg("trial conversion without account ID")
		return models.TrialConvertResponse{}, ErrValidationNoAccountID
	}

	record, err := t.sessionRepository.FindSession(ctx, sessionID)
	if err != nil {
		log.Err(err).Str("session_id", sessionID).Msg("trial session lookup failed")
		return models.TrialConvertResponse{}, fmt.Errorf("trial session lookup failed: %w", err)
	}

	if record.Converted() {
		return t.resolveConverted(record, req.AccountID)
	}

	project := models.Project{
		ID:            t.ids.Generate(),
		OwnerID:       req.AccountID,
		Name:          projectName(req.ProjectName),
		Document:      req.Document,
		SourceTrialID: &sessionID,
	}

	created, err := t.projectRepository.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Str("session_id", sessionID).Msg("seeded project creation failed")
		return models.TrialConvertResponse{}, fmt.Errorf("seeded project creation failed: %w", err)
	}

	claimed, err := t.sessionRepository.MarkConverted(ctx, sessionID, req.AccountID, created.ID)
	if err != nil {
		log.Err(err).Str("session_id", sessionID).Msg("trial conversion claim failed")
		return models.TrialConvertResponse{}, fmt.Errorf("trial conversion claim failed: %w", err)
	}

	if !claimed {
		// lost the race: roll the fresh project back and hand out the
		// winner's outcome instead
		if err = t.projectRepository.DeleteProject(ctx, req.AccountID, created.ID); err != nil {
			log.Warn().Err(err).Str("project_id", created.ID).Msg("rollback of unclaimed seeded project failed")
		}

		record, err = t.sessionRepository.FindSession(ctx, sessionID)
		if err != nil {
			log.Err(err).Str("session_id", sessionID).Msg("converted trial session lookup failed")
			return models.TrialConvertResponse{}, fmt.Errorf("converted trial session lookup failed: %w", err)
		}
		return t.resolveConverted(record, req.AccountID)
	}

	log.Info().
		Str("session_id", sessionID).
		Int64("account_id", req.AccountID).
		Str("project_id", created.ID).
		Msg("trial session converted")

	return models.TrialConvertResponse{ProjectID: created.ID}, nil
}

// convertedVerdict builds the terminal verdict for an already claimed
// session by re-reading the stored record.
func (t *trialService) convertedVerdict(ctx context.Context, sessionID string) (models.TrialValidation, error) {
	record, err := t.sessionRepository.FindSession(ctx, sessionID)
	if err != nil {
		return models.TrialValidation{}, fmt.Errorf("converted trial session lookup failed: %w", err)
	}
	return record.Validate(t.now()), nil
}

// resolveConverted answers a convert call against an already claimed
// session. The claiming account gets its original outcome back; any
// other account is refused, so a stolen session id cannot expose the
// winner's project.
func (t *trialService) resolveConverted(record models.TrialSessionRecord, accountID int64) (models.TrialConvertResponse, error) {
	if record.ConvertedTo == nil || *record.ConvertedTo != accountID {
		return models.TrialConvertResponse{}, fmt.Errorf("%w: claimed by another account", store.ErrTrialSessionConverted)
	}

	outcome := models.TrialConvertResponse{AlreadyConverted: true}
	if record.ConvertedProjectID != nil {
		outcome.ProjectID = *record.ConvertedProjectID
	}
	return outcome, nil
}

func projectName(name string) string {
	if name == "" {
		return "Untitled project"
	}
	return name
}

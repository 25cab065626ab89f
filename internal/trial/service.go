// SPDX-License-Identifier: Apache-2.0

package trial

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-canvas-studio/internal/adapter"
	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/internal/store"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// IDGenerator produces opaque session identities.
type IDGenerator interface {
	Generate() string
}

// Service drives the trial session lifecycle for one client installation.
// It is not safe for concurrent use; the studio runtime calls it from its
// single command loop.
type Service struct {
	repo      store.LocalTrialRepository
	authority adapter.AuthorityAdapter
	ids       IDGenerator
	now       func() time.Time
	logger    *logger.Logger
}

// NewService wires a trial service over local storage and the authority
// transport.
func NewService(repo store.LocalTrialRepository, authority adapter.AuthorityAdapter, ids IDGenerator, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		authority: authority,
		ids:       ids,
		now:       time.Now,
		logger:    log,
	}
}

// EnsureSession returns the local trial record, creating one on first
// visit. A freshly created session is mirrored to the authority on a
// best-effort basis; a mirror failure is logged and does not block the
// visitor.
func (s *Service) EnsureSession(ctx context.Context) (models.TrialSession, error) {
	session, err := s.repo.GetTrialSession(ctx)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, store.ErrLocalTrialNotFound) {
		return models.TrialSession{}, fmt.Errorf("load trial session: %w", err)
	}

	session = models.TrialSession{
		SessionID: s.ids.Generate(),
		CreatedAt: s.now(),
	}
	if err = s.repo.SaveTrialSession(ctx, session); err != nil {
		return models.TrialSession{}, fmt.Errorf("save trial session: %w", err)
	}

	s.logger.Info().Str("session_id", session.SessionID).Msg("created trial session")
	s.mirror(ctx, session)

	return session, nil
}

// Gate decides whether the identity may run one more generation. The
// local record gives the hint; the authority, when reachable, gives the
// verdict.
//
// Failure handling is asymmetric on purpose:
//   - local expiry is final (the client knows its own clock);
//   - an authority "no" (quota spent, session converted) is final;
//   - an unreachable authority falls back to the local hint.
func (s *Service) Gate(ctx context.Context) (models.TrialSession, error) {
	session, err := s.EnsureSession(ctx)
	if err != nil {
		return models.TrialSession{}, err
	}

	if session.Expired(s.now()) {
		return session, ErrSessionExpired
	}

	validation, err := s.authority.UpsertTrial(ctx, upsertRequest(session))
	if err != nil {
		if isAuthorityVerdict(err) {
			return session, fmt.Errorf("authority rejected trial: %w", err)
		}

		// authority unreachable: the local hint decides
		s.logger.Warn().Err(err).
			Str("session_id", session.SessionID).
			Msg("authority unreachable, gating on local state")
		if session.Remaining() == 0 {
			return session, ErrQuotaExhausted
		}
		return session, nil
	}

	if validation.ConvertedTo != nil {
		return session, ErrSessionConverted
	}
	if !validation.Valid {
		return session, ErrQuotaExhausted
	}

	return session, nil
}

// ConfirmUsage records one consumed generation after the asset was
// actually produced and delivered. Abandoned or failed generations must
// never reach this point. The updated record is mirrored to the authority
// best-effort.
func (s *Service) ConfirmUsage(ctx context.Context, assetRef *string, suggestions *models.TextSuggestions) error {
	session, err := s.repo.GetTrialSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalTrialNotFound) {
			return ErrNoSession
		}
		return fmt.Errorf("load trial session: %w", err)
	}

	session.GenerationsUsed++
	if assetRef != nil {
		session.LastAssetRef = assetRef
	}
	if suggestions != nil {
		session.Suggestions = suggestions
	}

	if err = s.repo.SaveTrialSession(ctx, session); err != nil {
		return fmt.Errorf("save trial session: %w", err)
	}

	s.mirror(ctx, session)
	return nil
}

// SaveSnapshot stores the working document so a later transfer can seed
// the permanent project with it.
func (s *Service) SaveSnapshot(ctx context.Context, doc models.Document) error {
	if err := s.repo.SaveDocumentSnapshot(ctx, doc); err != nil {
		return fmt.Errorf("save document snapshot: %w", err)
	}
	return nil
}

// Snapshot returns the stored working document, or
// [store.ErrSnapshotNotFound] when none exists.
func (s *Service) Snapshot(ctx context.Context) (models.Document, error) {
	return s.repo.GetDocumentSnapshot(ctx)
}

// Transfer converts the trial session into a permanent project owned by
// accountID. The authority guarantees exactly-once semantics: a repeated
// call returns the original outcome with AlreadyConverted set, and a
// session claimed by a different account is rejected.
//
// On success the local trial state is cleared; the session is finished
// either way once the authority confirms the conversion.
func (s *Service) Transfer(ctx context.Context, accountID int64, projectName string) (models.TrialConvertResponse, error) {
	session, err := s.repo.GetTrialSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalTrialNotFound) {
			return models.TrialConvertResponse{}, ErrNoSession
		}
		return models.TrialConvertResponse{}, fmt.Errorf("load trial session: %w", err)
	}

	req := models.TrialConvertRequest{
		AccountID:   accountID,
		ProjectName: projectName,
	}
	// the snapshot lives only on this device, so it travels with the call
	if doc, snapErr := s.repo.GetDocumentSnapshot(ctx); snapErr == nil {
		req.Document = &doc
	} else if !errors.Is(snapErr, store.ErrSnapshotNotFound) {
		return models.TrialConvertResponse{}, fmt.Errorf("load document snapshot: %w", snapErr)
	}

	result, err := s.authority.ConvertTrial(ctx, session.SessionID, req)
	if err != nil {
		switch {
		case errors.Is(err, adapter.ErrNotFound):
			// the authority never saw this identity, so there is
			// nothing to transfer
			s.logger.Info().
				Str("session_id", session.SessionID).
				Msg("no remote trial record, nothing to transfer")
			if clearErr := s.clearLocalState(ctx); clearErr != nil {
				s.logger.Warn().Err(clearErr).
					Str("session_id", session.SessionID).
					Msg("failed to clear local trial state")
			}
			return models.TrialConvertResponse{}, nil
		case errors.Is(err, adapter.ErrConflict):
			return models.TrialConvertResponse{}, fmt.Errorf("%w: %w", ErrSessionConverted, err)
		default:
			return models.TrialConvertResponse{}, fmt.Errorf("convert trial: %w", err)
		}
	}

	if err = s.clearLocalState(ctx); err != nil {
		// conversion already happened remotely; stale local state is
		// harmless because a converted session never validates again
		s.logger.Warn().Err(err).
			Str("session_id", session.SessionID).
			Msg("failed to clear local trial state after transfer")
	}

	s.logger.Info().
		Str("session_id", session.SessionID).
		Str("project_id", result.ProjectID).
		Bool("already_converted", result.AlreadyConverted).
		Msg("trial session transferred")

	return result, nil
}

func (s *Service) clearLocalState(ctx context.Context) error {
	if err := s.repo.DeleteTrialSession(ctx); err != nil {
		return err
	}
	return s.repo.DeleteDocumentSnapshot(ctx)
}

// mirror pushes the local record to the authority without letting a
// failure surface; the next Gate call repeats the upsert anyway.
func (s *Service) mirror(ctx context.Context, session models.TrialSession) {
	if _, err := s.authority.UpsertTrial(ctx, upsertRequest(session)); err != nil {
		s.logger.Warn().Err(err).
			Str("session_id", session.SessionID).
			Msg("failed to mirror trial session to authority")
	}
}

func upsertRequest(session models.TrialSession) models.TrialUpsertRequest {
	return models.TrialUpsertRequest{
		SessionID:       session.SessionID,
		GenerationsUsed: session.GenerationsUsed,
		AssetRef:        session.LastAssetRef,
	}
}

// isAuthorityVerdict separates an explicit authority rejection from a
// transport failure. Only the latter is allowed to fail open.
func isAuthorityVerdict(err error) bool {
	return errors.Is(err, adapter.ErrForbidden) ||
		errors.Is(err, adapter.ErrConflict) ||
		errors.Is(err, adapter.ErrBadRequest)
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/models"
)

func newTestLocalDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	// the client connection carries no error classifier, mirroring the
	// SQLite constructor
	return &DB{DB: db, logger: l}, mock, db
}

func newTestLocalTrialRepo(t *testing.T) (*localTrialRepository, sqlmock.Sqlmock, *sql.DB) {
	wrapped, mock, db := newTestLocalDB(t)
	repo := &localTrialRepository{DB: wrapped, logger: wrapped.logger}
	return repo, mock, db
}

func newTestLocalCacheRepo(t *testing.T) (*localCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	wrapped, mock, db := newTestLocalDB(t)
	repo := &localCacheRepository{DB: wrapped, logger: wrapped.logger}
	return repo, mock, db
}

func TestGetTrialSession_Success(t *testing.T) {
	repo, mock, db := newTestLocalTrialRepo(t)
	defer db.Close()

	ctx := context.Background()
	raw := []byte(`{"session_id":"session-1","generations_used":1,"created_at":"2026-03-14T12:00:00Z"}`)

	rows := sqlmock.NewRows([]string{"value"}).AddRow(raw)

	mock.ExpectQuery("SELECT value(.|\n)*FROM local_state").
		WithArgs(localKeyTrialSession).
		WillReturnRows(rows)

	session, err := repo.GetTrialSession(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.SessionID != "session-1" {
		t.Errorf("expected session-1, got %s", session.SessionID)
	}
	if session.GenerationsUsed != 1 {
		t.Errorf("expected GenerationsUsed=1, got %d", session.GenerationsUsed)
	}
}

func TestGetTrialSession_NoRecord(t *testing.T) {
	repo, mock, db := newTestLocalTrialRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT value(.|\n)*FROM local_state").
		WithArgs(localKeyTrialSession).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTrialSession(ctx)
	if !errors.Is(err, ErrLocalTrialNotFound) {
		t.Fatalf("expected ErrLocalTrialNotFound, got %v", err)
	}
}

func TestGetTrialSession_MalformedValueTreatedAsAbsent(t *testing.T) {
	repo, mock, db := newTestLocalTrialRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{broken`))

	mock.ExpectQuery("SELECT value(.|\n)*FROM local_state").
		WithArgs(localKeyTrialSession).
		WillReturnRows(rows)

	_, err := repo.GetTrialSession(ctx)
	if !errors.Is(err, ErrLocalTrialNotFound) {
		t.Fatalf("expected ErrLocalTrialNotFound for malformed value, got %v", err)
	}
}

func TestSaveTrialSession_Success(t *testing.T) {
	repo, mock, db := newTestLocalTrialRepo(t)
	defer db.Close()

	ctx := context.Background()
	session := models.TrialSession{
		SessionID:       "session-1",
		GenerationsUsed: 1,
		CreatedAt:       time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO local_state").
		WithArgs(localKeyTrialSession, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveTrialSession(ctx, session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTrialSession_Success(t *testing.T) {
	repo, mock, db := newTestLocalTrialRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM local_state").
		WithArgs(localKeyTrialSession).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTrialSession(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDocumentSnapshot_RoundTrip(t *testing.T) {
	repo, mock, db := newTestLocalTrialRepo(t)
	defer db.Close()

	ctx := context.Background()
	doc := models.Document{CanvasWidth: 800, CanvasHeight: 600}

	mock.ExpectExec("INSERT INTO local_state").
		WithArgs(localKeyDocumentSnapshot, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveDocumentSnapshot(ctx, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"canvas_width":800,"canvas_height":600}`))

	mock.ExpectQuery("SELECT value(.|\n)*FROM local_state").
		WithArgs(localKeyDocumentSnapshot).
		WillReturnRows(rows)

	restored, err := repo.GetDocumentSnapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored.CanvasWidth != 800 || restored.CanvasHeight != 600 {
		t.Errorf("expected 800x600 canvas, got %dx%d", restored.CanvasWidth, restored.CanvasHeight)
	}
}

func TestGetDocumentSnapshot_NoSnapshot(t *testing.T) {
	repo, mock, db := newTestLocalTrialRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT value(.|\n)*FROM local_state").
		WithArgs(localKeyDocumentSnapshot).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetDocumentSnapshot(ctx)
	if !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}

// ── generation cache ──────────────────────────────────────────────────

func TestFindEntry_Success(t *testing.T) {
	repo, mock, db := newTestLocalCacheRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"fingerprint", "kind", "payload", "created_at", "expires_at"}).
		AddRow("fp-1", string(models.CacheKindTextResponse), []byte(`{"text":"hello"}`), now, now.Add(24*time.Hour))

	mock.ExpectQuery("SELECT(.|\n)*FROM generation_cache").
		WithArgs("fp-1").
		WillReturnRows(rows)

	entry, err := repo.FindEntry(ctx, "fp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Fingerprint != "fp-1" {
		t.Errorf("expected fingerprint fp-1, got %s", entry.Fingerprint)
	}
	if entry.Kind != models.CacheKindTextResponse {
		t.Errorf("expected text kind, got %s", entry.Kind)
	}
}

func TestFindEntry_NotFound(t *testing.T) {
	repo, mock, db := newTestLocalCacheRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT(.|\n)*FROM generation_cache").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindEntry(ctx, "missing")
	if !errors.Is(err, ErrCacheEntryNotFound) {
		t.Fatalf("expected ErrCacheEntryNotFound, got %v", err)
	}
}

func TestUpsertEntry_Success(t *testing.T) {
	repo, mock, db := newTestLocalCacheRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	entry := models.CacheEntry{
		Fingerprint: "fp-1",
		Kind:        models.CacheKindGeneratedImage,
		Payload:     []byte("png-bytes"),
		CreatedAt:   now,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
	}

	mock.ExpectExec("INSERT INTO generation_cache").
		WithArgs(entry.Fingerprint, string(entry.Kind), entry.Payload, entry.CreatedAt, entry.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpsertEntry(ctx, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteExpiredEntries_ReportsRemovedCount(t *testing.T) {
	repo, mock, db := newTestLocalCacheRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec("DELETE FROM generation_cache").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteExpiredEntries(ctx, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 3 {
		t.Errorf("expected 3 removed entries, got %d", removed)
	}
}

func TestDeleteExpiredEntries_DBError(t *testing.T) {
	repo, mock, db := newTestLocalCacheRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM generation_cache").
		WithArgs(sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.DeleteExpiredEntries(ctx, time.Now())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected wrapped ErrExecutingStatement, got %v", err)
	}
}

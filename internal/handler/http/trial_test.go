package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-canvas-studio/internal/store"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// ─────────────────────────────────────────────
// upsertTrial
// ─────────────────────────────────────────────

func TestUpsertTrial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestHandler(t, ctrl)

	upsert := models.TrialUpsertRequest{SessionID: "session-1", GenerationsUsed: 0}
	m.trial.EXPECT().
		UpsertSession(gomock.Any(), upsert).
		Return(models.TrialValidation{Valid: true, GenerationsRemaining: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/trial/", strings.NewReader(jsonBody(t, upsert)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var verdict models.TrialValidation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.True(t, verdict.Valid)
	assert.Equal(t, 1, verdict.GenerationsRemaining)
}

func TestUpsertTrial_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/trial/", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// validateTrial
// ─────────────────────────────────────────────

func TestValidateTrial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestHandler(t, ctrl)

	m.trial.EXPECT().
		ValidateSession(gomock.Any(), "session-1").
		Return(models.TrialValidation{Valid: false, GenerationsRemaining: 0}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/trial/session-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var verdict models.TrialValidation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.False(t, verdict.Valid)
}

func TestValidateTrial_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestHandler(t, ctrl)

	m.trial.EXPECT().
		ValidateSession(gomock.Any(), "ghost").
		Return(models.TrialValidation{}, store.ErrTrialSessionNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/trial/ghost", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// convertTrial
// ─────────────────────────────────────────────

func TestConvertTrial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestHandler(t, ctrl)
	authedToken(m, 42)

	m.trial.EXPECT().
		ConvertSession(gomock.Any(), "session-1", gomock.Any()).
		DoAndReturn(func(_ any, _ string, req models.TrialConvertRequest) (models.TrialConvertResponse, error) {
			// account comes from the token, never the body
			assert.Equal(t, int64(42), req.AccountID)
			return models.TrialConvertResponse{ProjectID: "project-1"}, nil
		})

	body := jsonBody(t, models.TrialConvertRequest{AccountID: 999, ProjectName: "My campaign"})
	req := httptest.NewRequest(http.MethodPost, "/api/trial/session-1/convert", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var outcome models.TrialConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.Equal(t, "project-1", outcome.ProjectID)
	assert.False(t, outcome.AlreadyConverted)
}

func TestConvertTrial_RequiresAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/trial/session-1/convert",
		strings.NewReader(jsonBody(t, models.TrialConvertRequest{})))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestConvertTrial_AlreadyConverted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestHandler(t, ctrl)
	authedToken(m, 42)

	m.trial.EXPECT().
		ConvertSession(gomock.Any(), "session-1", gomock.Any()).
		Return(models.TrialConvertResponse{ProjectID: "project-9", AlreadyConverted: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/trial/session-1/convert",
		strings.NewReader(jsonBody(t, models.TrialConvertRequest{})))
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var outcome models.TrialConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.True(t, outcome.AlreadyConverted)
	assert.Equal(t, "project-9", outcome.ProjectID)
}

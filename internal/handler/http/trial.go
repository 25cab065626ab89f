// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/internal/utils"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// upsertTrial mirrors a client's local trial record and answers with the
// authority's verdict. Anonymous by design: the session id is the only
// identity a trial visitor has.
func (h *Handler) upsertTrial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TrialUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	verdict, err := h.services.TrialService.UpsertSession(ctx, req)
	if err != nil {
		log.Err(err).Str("session_id", req.SessionID).Msg("trial upsert failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, verdict, http.StatusOK)
}

func (h *Handler) validateTrial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID := chi.URLParam(r, "sessionID")

	verdict, err := h.services.TrialService.ValidateSession(ctx, sessionID)
	if err != nil {
		log.Err(err).Str("session_id", sessionID).Msg("trial validation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, verdict, http.StatusOK)
}

// convertTrial transfers the trial session into the authenticated account.
// The account id always comes from the bearer token, never from the
// request body: a client must not be able to convert a session into
// somebody else's account.
func (h *Handler) convertTrial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	sessionID := chi.URLParam(r, "sessionID")

	var req models.TrialConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	req.AccountID = userID

	outcome, err := h.services.TrialService.ConvertSession(ctx, sessionID, req)
	if err != nil {
		log.Err(err).Str("session_id", sessionID).Msg("trial conversion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, outcome, http.StatusOK)
}

package http

import (
	"net/http"
)

// getServerVersion reports the authority version as plain text. Studio
// clients probe it on startup to detect protocol drift.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-canvas-studio/internal/service"
	"github.com/MKhiriev/go-canvas-studio/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrValidationNoSessionID:   http.StatusBadRequest,
	service.ErrValidationNoAccountID:   http.StatusBadRequest,
	service.ErrValidationNoProjectID:   http.StatusBadRequest,

	store.ErrLoginAlreadyExists:    http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrTrialSessionNotFound:  http.StatusNotFound,
	store.ErrTrialSessionConverted: http.StatusConflict,
	store.ErrProjectNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

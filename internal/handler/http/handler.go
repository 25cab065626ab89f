package http

import (
	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/internal/service"
)

// Handler carries the authority's HTTP surface: account auth, trial
// session mirroring and conversion, project CRUD and the version probe.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs a [Handler] over the service layer. Routes are
// attached separately via [Handler.Init].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("authority http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

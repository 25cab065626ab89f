package service

import (
	"context"

	"github.com/MKhiriev/go-canvas-studio/internal/config"
	"github.com/MKhiriev/go-canvas-studio/internal/logger"
)

// appInfoService reports static authority metadata. The version string
// is pinned in configuration so the /api/version probe advertises what
// was actually deployed.
type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService constructs an [AppInfoService]. A missing version is
// a deployment mistake and refuses to start.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

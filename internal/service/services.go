package service

import (
	"github.com/MKhiriev/go-canvas-studio/internal/config"
	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/internal/store"
	"github.com/MKhiriev/go-canvas-studio/internal/utils"
)

type Services struct {
	AuthService    AuthService
	TrialService   TrialService
	ProjectService ProjectService
	AppInfoService AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		TrialService:   NewTrialService(storages.TrialSessionRepository, storages.ProjectRepository, ids, logger),
		ProjectService: NewProjectService(storages.ProjectRepository, ids, logger),
		AppInfoService: appInfoService,
	}, nil
}

package service

import (
	"context"

	"github.com/MKhiriev/go-canvas-studio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TrialService is the authority-side trial lifecycle: mirror upserts from
// anonymous clients, validation verdicts, and the exactly-once conversion
// of a trial into an account-owned project.
type TrialService interface {
	UpsertSession(ctx context.Context, req models.TrialUpsertRequest) (models.TrialValidation, error)
	ValidateSession(ctx context.Context, sessionID string) (models.TrialValidation, error)
	ConvertSession(ctx context.Context, sessionID string, req models.TrialConvertRequest) (models.TrialConvertResponse, error)
}

type ProjectService interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProject(ctx context.Context, ownerID int64, projectID string) (models.Project, error)
	ListProjects(ctx context.Context, ownerID int64) ([]models.Project, error)
	UpdateProject(ctx context.Context, ownerID int64, projectID string, update models.ProjectUpdate) error
	DeleteProject(ctx context.Context, ownerID int64, projectID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/internal/store"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// projectService is the concrete implementation of ProjectService.
// Every operation is owner-scoped: a project id belonging to a different
// owner behaves exactly like a missing project.
type projectService struct {
	projectRepository store.ProjectRepository

	ids IDGenerator

	logger *logger.Logger
}

func NewProjectService(projects store.ProjectRepository, ids IDGenerator, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projects,
		ids:               ids,
		logger:            logger,
	}
}

// CreateProject persists a new project for the owner. The server assigns
// the project id; any id supplied by the client is ignored.
func (p *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	if project.OwnerID == 0 {
		log.Error().Msg("project creation without owner")
		return models.Project{}, ErrInvalidDataProvided
	}

	project.ID = p.ids.Generate()
	project.Name = projectName(project.Name)

	created, err := p.projectRepository.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Int64("owner_id", project.OwnerID).Msg("project creation failed")
		return models.Project{}, fmt.Errorf("project creation failed: %w", err)
	}

	return created, nil
}

func (p *projectService) GetProject(ctx context.Context, ownerID int64, projectID string) (models.Project, error) {
	log := logger.FromContext(ctx)

	if projectID == "" {
		return models.Project{}, ErrValidationNoProjectID
	}

	project, err := p.projectRepository.GetProject(ctx, ownerID, projectID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Str("project_id", projectID).Msg("project lookup failed")
		return models.Project{}, fmt.Errorf("project lookup failed: %w", err)
	}

	return project, nil
}

// ListProjects returns the owner's projects without their documents.
func (p *projectService) ListProjects(ctx context.Context, ownerID int64) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	projects, err := p.projectRepository.ListProjects(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("project listing failed")
		return nil, fmt.Errorf("project listing failed: %w", err)
	}

	return projects, nil
}

// UpdateProject applies a partial update. An update naming neither a new
// name nor a new document is rejected as invalid.
func (p *projectService) UpdateProject(ctx context.Context, ownerID int64, projectID string, update models.ProjectUpdate) error {
	log := logger.FromContext(ctx)

	if projectID == "" {
		return ErrValidationNoProjectID
	}
	if update.Name == nil && update.Document == nil {
		log.Error().Str("project_id", projectID).Msg("empty project update")
		return ErrInvalidDataProvided
	}

	if err := p.projectRepository.UpdateProject(ctx, ownerID, projectID, update); err != nil {
		log.Err(err).Int64("owner_id", ownerID).Str("project_id", projectID).Msg("project update failed")
		return fmt.Errorf("project update failed: %w", err)
	}

	return nil
}

func (p *projectService) DeleteProject(ctx context.Context, ownerID int64, projectID string) error {
	log := logger.FromContext(ctx)

	if projectID == "" {
		return ErrValidationNoProjectID
	}

	if err := p.projectRepository.DeleteProject(ctx, ownerID, projectID); err != nil {
		log.Err(err).Int64("owner_id", ownerID).Str("project_id", projectID).Msg("project deletion failed")
		return fmt.Errorf("project deletion failed: %w", err)
	}

	return nil
}

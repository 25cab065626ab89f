package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository]. The document is stored as an opaque JSONB blob;
// the repository never interprets layer contents.
type projectRepository struct {
	*DB
	logger *logger.Logger
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	return &projectRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	blob, err := marshalDocument(project.Document)
	if err != nil {
		return models.Project{}, err
	}

	created, err := r.scanProject(r.DB.QueryRowContext(ctx, createProject,
		project.ID,
		project.OwnerID,
		project.Name,
		blob,
		project.SourceTrialID,
	))
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.CreateProject").
			Int64("owner_id", project.OwnerID).
			Msg("failed to insert project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *projectRepository) GetProject(ctx context.Context, ownerID int64, projectID string) (models.Project, error) {
	log := logger.FromContext(ctx)

	project, err := r.scanProject(r.DB.QueryRowContext(ctx, getProject, ownerID, projectID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}
		log.Err(err).
			Str("func", "projectRepository.GetProject").
			Int64("owner_id", ownerID).
			Str("project_id", projectID).
			Msg("failed to query project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return project, nil
}

// ListProjects returns project metadata for the owner, most recently
// updated first. Documents are omitted to keep list responses light.
func (r *projectRepository) ListProjects(ctx context.Context, ownerID int64) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listProjects, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.ListProjects").
			Int64("owner_id", ownerID).
			Msg("failed to query projects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 16)
	for rows.Next() {
		var p models.Project
		if scanErr := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.CreatedAt, &p.UpdatedAt); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		projects = append(projects, p)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return projects, nil
}

// UpdateProject applies a partial update. The SET list is built
// dynamically from the non-nil fields of the update.
func (r *projectRepository) UpdateProject(ctx context.Context, ownerID int64, projectID string, update models.ProjectUpdate) error {
	log := logger.FromContext(ctx)

	builder := sq.Update("projects").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"owner_id": ownerID, "id": projectID}).
		PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Document != nil {
		blob, err := marshalDocument(update.Document)
		if err != nil {
			return err
		}
		builder = builder.Set("document", blob)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.UpdateProject").
			Int64("owner_id", ownerID).
			Str("project_id", projectID).
			Msg("failed to update project")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected after project update: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, ownerID int64, projectID string) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, deleteProject, ownerID, projectID)
	if err != nil {
		log.Err(err).
			Str("func", "projectRepository.DeleteProject").
			Int64("owner_id", ownerID).
			Str("project_id", projectID).
			Msg("failed to delete project")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected after project delete: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (r *projectRepository) scanProject(row *sql.Row) (models.Project, error) {
	var (
		project models.Project
		blob    []byte
	)
	err := row.Scan(
		&project.ID,
		&project.OwnerID,
		&project.Name,
		&blob,
		&project.SourceTrialID,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return models.Project{}, err
	}

	if len(blob) > 0 {
		var doc models.Document
		if err = json.Unmarshal(blob, &doc); err != nil {
			return models.Project{}, fmt.Errorf("decode project document: %w", err)
		}
		project.Document = &doc
	}

	return project, nil
}

func marshalDocument(doc *models.Document) ([]byte, error) {
	if doc == nil {
		return nil, nil
	}
	blob, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode project document: %w", err)
	}
	return blob, nil
}

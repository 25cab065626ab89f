package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-canvas-studio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists account records on the authority side.
type UserRepository interface {
	// CreateUser inserts a new account.
	// Returns [ErrLoginAlreadyExists] when the login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin looks up an account by its unique login.
	// Returns [ErrNoUserWasFound] when no such account exists.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// TrialSessionRepository persists the authority-side trial records.
type TrialSessionRepository interface {
	// UpsertSession mirrors a client's local record. The stored usage
	// count can only be raised by an upsert, never lowered; the local
	// record is attacker-controllable and must not be able to reset
	// consumed quota. A converted session rejects upserts with
	// [ErrTrialSessionConverted].
	UpsertSession(ctx context.Context, req models.TrialUpsertRequest, expiresAt time.Time) (models.TrialSessionRecord, error)

	// FindSession returns the record for the trial identity.
	// Returns [ErrTrialSessionNotFound] when the authority has none.
	FindSession(ctx context.Context, sessionID string) (models.TrialSessionRecord, error)

	// MarkConverted atomically claims the session for an account:
	// the conversion marker is written only when none exists yet.
	// Reports claimed=false (and no error) when a concurrent or earlier
	// transfer already claimed the session.
	MarkConverted(ctx context.Context, sessionID string, accountID int64, projectID string) (claimed bool, err error)
}

// ProjectRepository persists account-owned projects. All reads and
// writes are owner-scoped; a project id belonging to a different owner
// behaves exactly like a missing project.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	GetProject(ctx context.Context, ownerID int64, projectID string) (models.Project, error)
	ListProjects(ctx context.Context, ownerID int64) ([]models.Project, error)
	UpdateProject(ctx context.Context, ownerID int64, projectID string, update models.ProjectUpdate) error
	DeleteProject(ctx context.Context, ownerID int64, projectID string) error
}

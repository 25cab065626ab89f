// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the canvas-studio authority server.
//
// The primary abstraction is [AuthorityAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAuthorityAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for an exhausted trial quota,
// [ErrConflict] for a session that was already converted).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-canvas-studio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/authority_adapter_mock.go -package=mock

// AuthorityAdapter defines transport-agnostic communication with the
// authority server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type AuthorityAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials.
	// On success it stores the returned bearer token via SetToken and
	// returns the created user record.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user. On success it stores the returned
	// bearer token via SetToken.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// UpsertTrial mirrors the local trial record to the authority and
	// returns the authority's verdict. The authority merges the usage
	// count so the mirrored value can only raise it.
	UpsertTrial(ctx context.Context, req models.TrialUpsertRequest) (models.TrialValidation, error)

	// ValidateTrial fetches the authority's verdict for a trial identity
	// without modifying it. Returns [ErrNotFound] (wrapped) for an
	// unknown session.
	ValidateTrial(ctx context.Context, sessionID string) (models.TrialValidation, error)

	// ConvertTrial asks the authority to transfer the trial session into
	// the account identified by the stored bearer token. Repeated calls
	// for the same session return the original outcome with
	// AlreadyConverted set.
	ConvertTrial(ctx context.Context, sessionID string, req models.TrialConvertRequest) (models.TrialConvertResponse, error)

	// CreateProject stores a new project under the authenticated account.
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)

	// GetProject fetches one project, document included.
	GetProject(ctx context.Context, projectID string) (models.Project, error)

	// ListProjects fetches the authenticated account's project metadata,
	// documents omitted.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// UpdateProject pushes a partial update of name and/or document.
	UpdateProject(ctx context.Context, projectID string, update models.ProjectUpdate) error

	// DeleteProject removes a project owned by the authenticated account.
	DeleteProject(ctx context.Context, projectID string) error

	// Version fetches the authority's version string.
	Version(ctx context.Context) (string, error)
}

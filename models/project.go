package models

import "time"

// Project is a persisted, account-owned document. The remote store treats
// the document as an opaque blob keyed by project id; all reads are
// owner-scoped.
type Project struct {
	// ID is the unique project identifier.
	ID string `json:"id"`

	// OwnerID is the account that owns the project. Not exposed in JSON
	// responses; ownership is derived from the authenticated request.
	OwnerID int64 `json:"-"`

	// Name is the display name of the project.
	Name string `json:"name"`

	// Document is the full layer document. Omitted in list views to keep
	// responses light.
	Document *Document `json:"document,omitempty"`

	// SourceTrialID records which trial identity seeded the project, when
	// the project was created by a transfer. Used for audit only.
	SourceTrialID *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

// ProjectUpdate represents a partial update of a single project.
// Only non-nil fields are written (partial update support).
type ProjectUpdate struct {
	// Name updates the display name when non-nil.
	Name *string `json:"name,omitempty"`

	// Document replaces the stored document when non-nil.
	Document *Document `json:"document,omitempty"`
}

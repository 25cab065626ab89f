package models

import "time"

// TrialSessionRecord is the authority-side row for one trial identity.
// Unlike the client's advisory [TrialSession], this record is the
// tie-breaker for every gating decision.
type TrialSessionRecord struct {
	// SessionID is the trial identity.
	SessionID string `json:"session_id"`

	// GenerationsUsed is the authority's count of consumed generations.
	// Upserts from clients can only raise it, never lower it.
	GenerationsUsed int `json:"generations_used"`

	// AssetRef is the last generated asset reference reported by the
	// client, if any.
	AssetRef *string `json:"asset_ref,omitempty"`

	// ConvertedTo is the account id that claimed this session via the
	// transfer protocol. Non-nil is terminal: a converted session never
	// grants generations again.
	ConvertedTo *int64 `json:"converted_to,omitempty"`

	// ConvertedProjectID is the permanent project created by the
	// transfer. Stored so repeated convert calls can return the original
	// outcome.
	ConvertedProjectID *string `json:"converted_project_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is the authority's own expiry, independent of the
	// client's local 24 h check.
	ExpiresAt time.Time `json:"expires_at"`
}

// TableName returns the name of the database table
// associated with the TrialSessionRecord model.
func (r TrialSessionRecord) TableName() string {
	return "trial_sessions"
}

// Converted reports whether the session has been claimed by an account.
func (r TrialSessionRecord) Converted() bool {
	return r.ConvertedTo != nil
}

// Validate computes the authority's verdict for the record at time now.
func (r TrialSessionRecord) Validate(now time.Time) TrialValidation {
	v := TrialValidation{}
	if r.Converted() {
		converted := ""
		if r.ConvertedProjectID != nil {
			converted = *r.ConvertedProjectID
		}
		v.ConvertedTo = &converted
		return v
	}
	if !now.Before(r.ExpiresAt) {
		return v
	}

	remaining := MaxFreeGenerations - r.GenerationsUsed
	if remaining < 0 {
		remaining = 0
	}
	v.GenerationsRemaining = remaining
	v.Valid = remaining > 0
	return v
}

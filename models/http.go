package models

// TrialUpsertRequest mirrors a local trial record to the remote authority.
// The authority never lowers its own usage count from this value; upserts
// can only raise it (the local record is attacker-controllable).
type TrialUpsertRequest struct {
	// SessionID is the trial identity being mirrored.
	SessionID string `json:"session_id"`

	// GenerationsUsed is the client's view of consumed generations.
	GenerationsUsed int `json:"generations_used"`

	// AssetRef optionally records the last generated asset reference.
	AssetRef *string `json:"asset_ref,omitempty"`
}

// TrialConvertRequest asks the authority to mark a trial session as
// converted into the given account, creating the seeded project.
type TrialConvertRequest struct {
	// AccountID is the newly authenticated account taking ownership.
	AccountID int64 `json:"account_id"`

	// ProjectName names the permanent project created by the transfer.
	ProjectName string `json:"project_name,omitempty"`

	// Document is the trial's local document snapshot, if one exists.
	// It travels with the convert call because the snapshot lives only
	// in client storage, never on the authority.
	Document *Document `json:"document,omitempty"`
}

// TrialConvertResponse reports the outcome of a conversion. Repeated
// convert calls for the same session return the original outcome.
type TrialConvertResponse struct {
	// ProjectID is the permanent project seeded from the trial.
	ProjectID string `json:"project_id"`

	// AlreadyConverted is true when a prior transfer had completed and
	// this call was an idempotent no-op.
	AlreadyConverted bool `json:"already_converted"`
}

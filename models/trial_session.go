package models

import "time"

// MaxFreeGenerations is the number of generations an anonymous trial
// identity may consume before it must convert to a full account.
const MaxFreeGenerations = 1

// TrialSessionTTL is how long a trial session stays usable after creation
// when judged locally. The remote authority applies its own expiry
// independently.
const TrialSessionTTL = 24 * time.Hour

// TrialSession is the local-first record of an anonymous visitor's
// generation quota. It lives in client storage and is mirrored to the
// remote authority; the authority is the tie-breaker, this record is
// advisory only.
type TrialSession struct {
	// SessionID is the opaque identity generated on first visit.
	SessionID string `json:"session_id"`

	// GenerationsUsed counts confirmed generations. The steady state is
	// GenerationsUsed <= MaxFreeGenerations, but transient violations are
	// tolerated rather than treated as corruption.
	GenerationsUsed int `json:"generations_used"`

	// CreatedAt is when the session was created; local expiry is judged
	// against CreatedAt + TrialSessionTTL.
	CreatedAt time.Time `json:"created_at"`

	// LastAssetRef is the reference of the most recent generated asset,
	// if any. Seeded into the permanent project on transfer.
	LastAssetRef *string `json:"last_asset_ref,omitempty"`

	// Suggestions holds the most recent structured text suggestions.
	Suggestions *TextSuggestions `json:"suggestions,omitempty"`
}

// Expired reports whether the session has passed its local TTL at time now.
func (s TrialSession) Expired(now time.Time) bool {
	return now.Sub(s.CreatedAt) >= TrialSessionTTL
}

// Remaining returns the number of generations the session may still
// consume according to local state only, clamped at zero.
func (s TrialSession) Remaining() int {
	if s.GenerationsUsed >= MaxFreeGenerations {
		return 0
	}
	return MaxFreeGenerations - s.GenerationsUsed
}

// TrialValidation is the remote authority's verdict on a trial identity.
type TrialValidation struct {
	// Valid reports whether the authority will allow another generation.
	Valid bool `json:"valid"`

	// GenerationsRemaining is the authority's count of remaining
	// generations for this identity.
	GenerationsRemaining int `json:"generations_remaining"`

	// ConvertedTo is set to the owning account id once the session has
	// been transferred. A converted session is never valid again.
	ConvertedTo *string `json:"converted_to,omitempty"`
}

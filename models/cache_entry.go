package models

import "time"

// CacheEntryKind discriminates the two payload shapes held by the
// generation cache.
type CacheEntryKind string

const (
	// CacheKindTextResponse marks a structured model text response
	// (headline/subheadline suggestions).
	CacheKindTextResponse CacheEntryKind = "model-text-response"

	// CacheKindGeneratedImage marks a generated image asset reference.
	CacheKindGeneratedImage CacheEntryKind = "generated-image"
)

// CacheEntry is one stored generation result, addressed by the
// deterministic fingerprint of the request that produced it.
type CacheEntry struct {
	// Fingerprint is the content-address of the canonicalized request.
	Fingerprint string `json:"fingerprint"`

	// Kind discriminates how Payload is to be interpreted.
	Kind CacheEntryKind `json:"kind"`

	// Payload is the opaque stored result (JSON for text responses,
	// an asset reference for images).
	Payload []byte `json:"payload"`

	// CreatedAt is when the entry was written or last refreshed.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt bounds reuse of the entry. A read at or past ExpiresAt
	// behaves as a miss even while the row is still physically present.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the entry is logically absent at time now.
func (e CacheEntry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

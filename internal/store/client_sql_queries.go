// SPDX-License-Identifier: Apache-2.0

package store

const (
	getLocalValue = `
		SELECT value
		FROM local_state
		WHERE key = $1;`

	upsertLocalValue = `
		INSERT INTO local_state (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value      = excluded.value,
			updated_at = CURRENT_TIMESTAMP;`

	deleteLocalValue = `
		DELETE FROM local_state
		WHERE key = $1;`

	findCacheEntry = `
		SELECT
			fingerprint,
			kind,
			payload,
			created_at,
			expires_at
		FROM generation_cache
		WHERE fingerprint = $1;`

	upsertCacheEntry = `
		INSERT INTO generation_cache (
			fingerprint,
			kind,
			payload,
			created_at,
			expires_at
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (fingerprint) DO UPDATE SET
			kind       = excluded.kind,
			payload    = excluded.payload,
			created_at = excluded.created_at,
			expires_at = excluded.expires_at;`

	deleteExpiredCacheEntries = `
		DELETE FROM generation_cache
		WHERE expires_at <= $1;`
)

// Fixed keys under which the single trial session record and the cached
// document snapshot live in local_state.
const (
	localKeyTrialSession     = "trial_session"
	localKeyDocumentSnapshot = "document_snapshot"
)

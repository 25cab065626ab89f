// SPDX-License-Identifier: Apache-2.0

// Package cache deduplicates expensive external generation calls.
//
// Requests are content-addressed: a canonicalized form of the request
// parameters is hashed into a fingerprint, and results are stored under
// that fingerprint with a caller-supplied TTL. Expiry is lazy — an
// expired row reads as a miss until a background sweep physically
// removes it.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/MKhiriev/go-canvas-studio/models"
)

// canonicalSeparator joins key:value pairs in the canonical string.
// Changing it invalidates every stored fingerprint.
const canonicalSeparator = "|"

// ComputeFingerprint derives the stable content-address of a generation
// request. Parameters are canonicalized by sorting keys lexicographically
// and concatenating "key:value" pairs with a fixed separator, then
// SHA-256 hashed together with the entry kind.
//
// Identical (kind, params) always yield the identical fingerprint
// regardless of map iteration order; that determinism is what makes the
// cache a true dedup layer rather than a weak heuristic.
func ComputeFingerprint(kind models.CacheEntryKind, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(string(kind))
	for _, k := range keys {
		b.WriteString(canonicalSeparator)
		b.WriteString(k)
		b.WriteString(":")
		b.WriteString(params[k])
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

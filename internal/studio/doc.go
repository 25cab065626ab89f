// SPDX-License-Identifier: Apache-2.0

// Package studio implements the client application runtime.
//
// It wires the layer engine, the trial lifecycle, the generation
// pipeline, local storage, and the authority adapter into a single
// process lifecycle. The studio is local-first: every operation works
// against local state, and the remote authority is consulted only as
// the tie-breaker for trial quota decisions and as the home of
// account-owned projects.
package studio

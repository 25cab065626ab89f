// Package trial implements the anonymous trial session lifecycle on the
// client: creation on first visit, the two-step generation gate, usage
// accounting, and the exactly-once transfer into a permanent account.
//
// The local record is advisory; the remote authority is the tie-breaker.
// Decisions degrade differently by failure mode: an unreachable authority
// fails open (the local hint decides), while an explicit authority "no"
// (quota, conversion) always fails closed.
package trial

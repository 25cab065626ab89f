// SPDX-License-Identifier: Apache-2.0

// Package engine owns the editable document state: the layer collection,
// the selection, and a linear undo/redo history of immutable snapshots.
//
// The engine is single-writer. Exactly one editing session owns a
// document at a time; all mutating operations are synchronous and push
// their history checkpoint only after the next state has been fully
// computed, so the document and the history can never drift apart.
//
// Discrete operations (add, delete, move, duplicate, load) checkpoint
// themselves. Freeform property edits via UpdateLayer intentionally do
// not: continuous interactions such as dragging are coalesced by the
// caller, which checkpoints once at a meaningful boundary (pointer
// release) via Checkpoint. Snapshotting every intermediate value would
// make undo revert one pixel of motion at a time.
package engine

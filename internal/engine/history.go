package engine

import "github.com/MKhiriev/go-canvas-studio/models"

// history is a flat slice of immutable document snapshots plus a cursor.
// The cursor always indexes a valid entry, except for the value -1 in the
// just-constructed, snapshot-free state.
//
// A deliberate simplification of a branching edit graph: pushing while the
// cursor is not at the tail discards every entry after the cursor before
// appending (standard branch-discard model).
type history struct {
	entries []models.Document
	cursor  int
}

func newHistory() *history {
	return &history{cursor: -1}
}

// push appends a snapshot after discarding any redo-able entries.
func (h *history) push(snapshot models.Document) {
	h.entries = h.entries[:h.cursor+1]
	h.entries = append(h.entries, snapshot)
	h.cursor++
}

// undo moves the cursor one step back and returns the entry it lands on.
// At the left boundary it reports false and moves nothing.
func (h *history) undo() (models.Document, bool) {
	if h.cursor <= 0 {
		return models.Document{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// redo moves the cursor one step forward and returns the entry it lands
// on. At the tail it reports false and moves nothing.
func (h *history) redo() (models.Document, bool) {
	if h.cursor >= len(h.entries)-1 {
		return models.Document{}, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// reset drops every entry and starts over with the given snapshot as the
// single history entry, cursor at 0.
func (h *history) reset(snapshot models.Document) {
	h.entries = []models.Document{snapshot}
	h.cursor = 0
}

// canUndo reports whether a backward step is possible.
func (h *history) canUndo() bool {
	return h.cursor > 0
}

// canRedo reports whether a forward step is possible.
func (h *history) canRedo() bool {
	return h.cursor >= 0 && h.cursor < len(h.entries)-1
}

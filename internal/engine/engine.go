package engine

import (
	"sort"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// IDGenerator allocates opaque unique layer identifiers.
type IDGenerator interface {
	Generate() string
}

// Direction is the reorder direction accepted by [Engine.MoveLayer].
type Direction string

const (
	// DirectionUp moves a layer one step toward the top of the stack.
	DirectionUp Direction = "up"

	// DirectionDown moves a layer one step toward the bottom.
	DirectionDown Direction = "down"
)

// Engine is the single source of truth for "what is on the canvas".
// It owns one document, the current selection, and the undo history.
// Not safe for concurrent use; ownership is one editing session at a time.
type Engine struct {
	doc      models.Document
	hist     *history
	selected string

	ids    IDGenerator
	logger *logger.Logger
}

// New constructs an Engine owning an empty document with the default
// canvas size. The empty state is recorded as the first history entry so
// the very first mutation can be undone back to it.
func New(ids IDGenerator, log *logger.Logger) *Engine {
	e := &Engine{
		doc: models.Document{
			CanvasWidth:  DefaultCanvasWidth,
			CanvasHeight: DefaultCanvasHeight,
		},
		hist:   newHistory(),
		ids:    ids,
		logger: log,
	}
	e.hist.push(e.doc.Clone())
	return e
}

// Document returns a deep copy of the live document. Callers never hold a
// reference into engine-owned state.
func (e *Engine) Document() models.Document {
	return e.doc.Clone()
}

// Selected returns the id of the currently selected layer, or "" when
// nothing is selected.
func (e *Engine) Selected() string {
	return e.selected
}

// Select sets the selection to the given layer id. Selecting an absent id
// clears the selection.
func (e *Engine) Select(id string) {
	if e.doc.LayerByID(id) == nil {
		e.selected = ""
		return
	}
	e.selected = id
}

// AddLayer appends a new layer of the given kind at the top of the stack
// (ZIndex = current layer count), merges the caller's overrides into the
// kind defaults, checkpoints, and selects the new layer.
//
// AddLayer never fails. An unknown kind is a contract violation and
// panics with [ErrUnknownLayerKind].
func (e *Engine) AddLayer(kind models.LayerKind, overrides *models.LayerPatch) models.Layer {
	l := defaultLayer(kind, e.doc.CanvasWidth, e.doc.CanvasHeight)
	l.ID = e.ids.Generate()
	l.ZIndex = len(e.doc.Layers)
	if overrides != nil {
		overrides.Apply(&l)
	}

	e.doc.Layers = append(e.doc.Layers, l)
	e.checkpoint()
	e.selected = l.ID

	e.logger.Debug().
		Str("layer_id", l.ID).
		Str("kind", string(kind)).
		Int("z_index", l.ZIndex).
		Msg("layer added")

	return l.Clone()
}

// UpdateLayer shallow-merges the patch into the layer matching id.
// An absent id is a legal no-op. UpdateLayer does not checkpoint:
// continuous interactive edits are coalesced by the caller, which calls
// [Engine.Checkpoint] at a meaningful granularity (pointer release).
func (e *Engine) UpdateLayer(id string, patch models.LayerPatch) {
	l := e.doc.LayerByID(id)
	if l == nil {
		return
	}
	patch.Apply(l)
}

// DeleteLayer removes the layer matching id, re-normalizes the remaining
// stacking order to keep ZIndex values dense, checkpoints, and clears the
// selection if the deleted layer was selected. Absent id is a no-op.
func (e *Engine) DeleteLayer(id string) {
	idx := -1
	for i := range e.doc.Layers {
		if e.doc.Layers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	removedZ := e.doc.Layers[idx].ZIndex
	e.doc.Layers = append(e.doc.Layers[:idx], e.doc.Layers[idx+1:]...)
	for i := range e.doc.Layers {
		if e.doc.Layers[i].ZIndex > removedZ {
			e.doc.Layers[i].ZIndex--
		}
	}

	e.checkpoint()
	if e.selected == id {
		e.selected = ""
	}
}

// DuplicateLayer clones the layer matching id under a fresh identity,
// places the copy at the top of the stack with a small offset,
// checkpoints, and selects it. Absent id is a no-op reporting false.
func (e *Engine) DuplicateLayer(id string) (models.Layer, bool) {
	src := e.doc.LayerByID(id)
	if src == nil {
		return models.Layer{}, false
	}

	cp := src.Clone()
	cp.ID = e.ids.Generate()
	cp.Name = cp.Name + " copy"
	cp.X += 16
	cp.Y += 16
	cp.ZIndex = len(e.doc.Layers)

	e.doc.Layers = append(e.doc.Layers, cp)
	e.checkpoint()
	e.selected = cp.ID

	return cp.Clone(), true
}

// MoveLayer shifts the layer one stacking step in the given direction.
// The target ZIndex is clamped into [0, layerCount-1]; when the clamped
// target equals the current value the call is a no-op without a
// checkpoint. Otherwise the layer adopts the target and exactly the one
// layer previously occupying it shifts the opposite way, preserving the
// dense-uniqueness of ZIndex values. Checkpoints on success.
func (e *Engine) MoveLayer(id string, dir Direction) {
	l := e.doc.LayerByID(id)
	if l == nil {
		return
	}

	target := l.ZIndex
	switch dir {
	case DirectionUp:
		target++
	case DirectionDown:
		target--
	default:
		return
	}

	if target < 0 {
		target = 0
	}
	if top := len(e.doc.Layers) - 1; target > top {
		target = top
	}
	if target == l.ZIndex {
		return
	}

	for i := range e.doc.Layers {
		if e.doc.Layers[i].ZIndex == target {
			e.doc.Layers[i].ZIndex = l.ZIndex
			break
		}
	}
	l.ZIndex = target

	e.checkpoint()
}

// ToggleVisibility flips the layer's visibility flag. Routed through
// UpdateLayer, so the caller checkpoints if the toggle should be undoable
// as a discrete step.
func (e *Engine) ToggleVisibility(id string) {
	l := e.doc.LayerByID(id)
	if l == nil {
		return
	}
	next := !l.Visible
	e.UpdateLayer(id, models.LayerPatch{Visible: &next})
}

// ToggleLock flips the layer's lock flag. Same checkpoint contract as
// ToggleVisibility.
func (e *Engine) ToggleLock(id string) {
	l := e.doc.LayerByID(id)
	if l == nil {
		return
	}
	next := !l.Locked
	e.UpdateLayer(id, models.LayerPatch{Locked: &next})
}

// Checkpoint appends an immutable snapshot of the live document to the
// history. Callers use it to commit coalesced freeform edits and toggles
// as one undoable step.
func (e *Engine) Checkpoint() {
	e.checkpoint()
}

// Undo moves the history cursor one step back and replaces the live
// document with the entry at the new cursor. A no-op at the boundary,
// reporting false.
func (e *Engine) Undo() bool {
	snapshot, ok := e.hist.undo()
	if !ok {
		return false
	}
	e.restore(snapshot)
	return true
}

// Redo moves the history cursor one step forward and replaces the live
// document with the entry at the new cursor. A no-op at the boundary,
// reporting false.
func (e *Engine) Redo() bool {
	snapshot, ok := e.hist.redo()
	if !ok {
		return false
	}
	e.restore(snapshot)
	return true
}

// CanUndo reports whether Undo would change state.
func (e *Engine) CanUndo() bool { return e.hist.canUndo() }

// CanRedo reports whether Redo would change state.
func (e *Engine) CanRedo() bool { return e.hist.canRedo() }

// LoadState replaces the live document with the (sanitized) input and
// resets the history to that single entry, cursor at 0. Used both for
// opening a persisted project and for restoring a trial snapshot.
func (e *Engine) LoadState(doc models.Document) {
	clean := e.sanitize(doc.Clone())
	e.doc = clean
	e.hist.reset(clean.Clone())
	e.selected = ""
}

// PaintOrder returns the layers sorted ascending by ZIndex — the order in
// which a rendering surface paints them.
func (e *Engine) PaintOrder() []models.Layer {
	return e.sortedLayers(true)
}

// StackOrder returns the layers sorted descending by ZIndex — the order a
// layers-list UI displays them, top-most visual layer first.
func (e *Engine) StackOrder() []models.Layer {
	return e.sortedLayers(false)
}

func (e *Engine) sortedLayers(ascending bool) []models.Layer {
	out := make([]models.Layer, 0, len(e.doc.Layers))
	for _, l := range e.doc.Layers {
		out = append(out, l.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].ZIndex < out[j].ZIndex
		}
		return out[i].ZIndex > out[j].ZIndex
	})
	return out
}

// checkpoint snapshots the live document. Called only after a mutation
// has fully computed its next state.
func (e *Engine) checkpoint() {
	e.hist.push(e.doc.Clone())
}

// restore replaces the live document with a clone of the snapshot and
// drops a selection that no longer resolves.
func (e *Engine) restore(snapshot models.Document) {
	e.doc = snapshot.Clone()
	if e.selected != "" && e.doc.LayerByID(e.selected) == nil {
		e.selected = ""
	}
}

// sanitize enforces document invariants on untrusted input: positive
// canvas dimensions, unique layer ids (duplicates are dropped and logged,
// never silently overwritten), and a dense ZIndex sequence.
func (e *Engine) sanitize(doc models.Document) models.Document {
	if doc.CanvasWidth <= 0 {
		doc.CanvasWidth = DefaultCanvasWidth
	}
	if doc.CanvasHeight <= 0 {
		doc.CanvasHeight = DefaultCanvasHeight
	}

	seen := make(map[string]struct{}, len(doc.Layers))
	unique := doc.Layers[:0]
	for _, l := range doc.Layers {
		if _, dup := seen[l.ID]; dup {
			e.logger.Warn().
				Str("layer_id", l.ID).
				Msg("dropping layer with duplicate id on load")
			continue
		}
		seen[l.ID] = struct{}{}
		unique = append(unique, l)
	}
	doc.Layers = unique

	normalizeZIndexes(doc.Layers)
	return doc
}

// normalizeZIndexes reassigns ZIndex values to the dense set {0, …, n-1}
// preserving the existing relative stacking order; ties break by
// insertion order.
func normalizeZIndexes(layers []models.Layer) {
	order := make([]int, len(layers))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return layers[order[a]].ZIndex < layers[order[b]].ZIndex
	})
	for rank, i := range order {
		layers[i].ZIndex = rank
	}
}

package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// seqIDs is a deterministic IDGenerator used only in tests.
type seqIDs struct {
	n int
}

func (g *seqIDs) Generate() string {
	g.n++
	return fmt.Sprintf("layer-%d", g.n)
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(&seqIDs{}, logger.Nop())
}

// requireDenseZ asserts the zIndex values of doc form exactly {0, …, n-1}.
func requireDenseZ(t *testing.T, doc models.Document) {
	t.Helper()
	seen := make(map[int]bool, len(doc.Layers))
	for _, l := range doc.Layers {
		require.False(t, seen[l.ZIndex], "duplicate z_index %d", l.ZIndex)
		require.GreaterOrEqual(t, l.ZIndex, 0)
		require.Less(t, l.ZIndex, len(doc.Layers))
		seen[l.ZIndex] = true
	}
}

// ── AddLayer ─────────────────────────────────────────────────────────────────

func TestEngine_AddLayer_TextDefaults(t *testing.T) {
	e := newTestEngine(t)

	l := e.AddLayer(models.LayerKindText, nil)

	doc := e.Document()
	require.Len(t, doc.Layers, 1)
	assert.Equal(t, 0, l.ZIndex)
	require.NotNil(t, l.Text)
	assert.Equal(t, "Your Text Here", l.Text.Content)
	assert.Equal(t, float64(72), l.Text.FontSize)
	assert.Equal(t, float64(DefaultCanvasWidth)/4, l.X)
	assert.Equal(t, float64(DefaultCanvasHeight)/4, l.Y)
	assert.Equal(t, float64(1), l.Opacity)
	assert.True(t, l.Visible)
	assert.Equal(t, l.ID, e.Selected())
}

func TestEngine_AddLayer_OverridesMerge(t *testing.T) {
	e := newTestEngine(t)

	src := "https://assets.example/u.png"
	x := 10.0
	l := e.AddLayer(models.LayerKindImage, &models.LayerPatch{
		X:     &x,
		Image: &models.ImageAttributes{Src: src},
	})

	require.NotNil(t, l.Image)
	assert.Equal(t, src, l.Image.Src)
	assert.Equal(t, 10.0, l.X)
	// untouched defaults survive the merge
	assert.Equal(t, float64(480), l.Width)
}

func TestEngine_AddLayer_AppendsAtTop(t *testing.T) {
	e := newTestEngine(t)

	first := e.AddLayer(models.LayerKindText, nil)
	second := e.AddLayer(models.LayerKindShape, nil)

	assert.Equal(t, 0, first.ZIndex)
	assert.Equal(t, 1, second.ZIndex)
	requireDenseZ(t, e.Document())
}

func TestEngine_AddLayer_UnknownKindPanics(t *testing.T) {
	e := newTestEngine(t)

	assert.PanicsWithValue(t, ErrUnknownLayerKind, func() {
		e.AddLayer(models.LayerKind("hologram"), nil)
	})
}

// ── UpdateLayer ──────────────────────────────────────────────────────────────

func TestEngine_UpdateLayer_ShallowMergeWithoutCheckpoint(t *testing.T) {
	e := newTestEngine(t)
	l := e.AddLayer(models.LayerKindText, nil)

	x := 555.0
	e.UpdateLayer(l.ID, models.LayerPatch{X: &x})

	doc := e.Document()
	got := doc.LayerByID(l.ID)
	require.NotNil(t, got)
	assert.Equal(t, 555.0, got.X)

	// no checkpoint was pushed: a single undo reverts past the update,
	// all the way to the empty document before AddLayer.
	require.True(t, e.Undo())
	assert.Empty(t, e.Document().Layers)
}

func TestEngine_UpdateLayer_AbsentIDIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	e.AddLayer(models.LayerKindText, nil)
	before := e.Document()

	x := 1.0
	e.UpdateLayer("no-such-layer", models.LayerPatch{X: &x})

	assert.Equal(t, before, e.Document())
}

func TestEngine_UpdateLayer_VariantBlockOfOtherKindIgnored(t *testing.T) {
	e := newTestEngine(t)
	l := e.AddLayer(models.LayerKindText, nil)

	e.UpdateLayer(l.ID, models.LayerPatch{Image: &models.ImageAttributes{Src: "u"}})

	doc := e.Document()
	got := doc.LayerByID(l.ID)
	require.NotNil(t, got)
	assert.Nil(t, got.Image)
	assert.NotNil(t, got.Text)
}

// ── DeleteLayer ──────────────────────────────────────────────────────────────

func TestEngine_DeleteLayer_RenormalizesAndClearsSelection(t *testing.T) {
	e := newTestEngine(t)
	a := e.AddLayer(models.LayerKindText, nil)
	b := e.AddLayer(models.LayerKindShape, nil)
	c := e.AddLayer(models.LayerKindImage, nil)

	e.Select(b.ID)
	e.DeleteLayer(b.ID)

	doc := e.Document()
	require.Len(t, doc.Layers, 2)
	requireDenseZ(t, doc)
	assert.Equal(t, 0, doc.LayerByID(a.ID).ZIndex)
	assert.Equal(t, 1, doc.LayerByID(c.ID).ZIndex)
	assert.Empty(t, e.Selected())
}

func TestEngine_DeleteLayer_AbsentIDIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	e.AddLayer(models.LayerKindText, nil)
	before := e.Document()

	e.DeleteLayer("no-such-layer")

	assert.Equal(t, before, e.Document())
	assert.False(t, e.CanRedo())
}

// ── DuplicateLayer ───────────────────────────────────────────────────────────

func TestEngine_DuplicateLayer(t *testing.T) {
	e := newTestEngine(t)
	orig := e.AddLayer(models.LayerKindShape, nil)

	cp, ok := e.DuplicateLayer(orig.ID)

	require.True(t, ok)
	assert.NotEqual(t, orig.ID, cp.ID)
	assert.Equal(t, orig.Name+" copy", cp.Name)
	assert.Equal(t, orig.X+16, cp.X)
	assert.Equal(t, 1, cp.ZIndex)
	assert.Equal(t, cp.ID, e.Selected())
	requireDenseZ(t, e.Document())
}

func TestEngine_DuplicateLayer_AbsentID(t *testing.T) {
	e := newTestEngine(t)

	_, ok := e.DuplicateLayer("no-such-layer")

	assert.False(t, ok)
}

// ── MoveLayer ────────────────────────────────────────────────────────────────

func TestEngine_MoveLayer_SwapsWithDisplacedNeighbour(t *testing.T) {
	e := newTestEngine(t)
	bottom := e.AddLayer(models.LayerKindText, nil)
	top := e.AddLayer(models.LayerKindImage, nil)

	e.MoveLayer(bottom.ID, DirectionUp)

	doc := e.Document()
	assert.Equal(t, 1, doc.LayerByID(bottom.ID).ZIndex)
	assert.Equal(t, 0, doc.LayerByID(top.ID).ZIndex)
	requireDenseZ(t, doc)
}

func TestEngine_MoveLayer_ClampAtBoundaryIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	bottom := e.AddLayer(models.LayerKindText, nil)
	e.AddLayer(models.LayerKindImage, nil)

	// bottom layer cannot move further down; no checkpoint must be pushed.
	e.MoveLayer(bottom.ID, DirectionDown)

	doc := e.Document()
	assert.Equal(t, 0, doc.LayerByID(bottom.ID).ZIndex)

	// one undo reverts the second AddLayer, not a phantom move entry.
	require.True(t, e.Undo())
	assert.Len(t, e.Document().Layers, 1)
}

func TestEngine_MoveLayer_OnlyNeighbourAffected(t *testing.T) {
	e := newTestEngine(t)
	a := e.AddLayer(models.LayerKindText, nil)
	b := e.AddLayer(models.LayerKindShape, nil)
	c := e.AddLayer(models.LayerKindImage, nil)

	e.MoveLayer(b.ID, DirectionUp)

	doc := e.Document()
	assert.Equal(t, 0, doc.LayerByID(a.ID).ZIndex, "unrelated layer untouched")
	assert.Equal(t, 2, doc.LayerByID(b.ID).ZIndex)
	assert.Equal(t, 1, doc.LayerByID(c.ID).ZIndex)
	requireDenseZ(t, doc)
}

// ── Dense z-index property over operation sequences ──────────────────────────

func TestEngine_ZIndexStaysDenseAcrossSequences(t *testing.T) {
	e := newTestEngine(t)

	ids := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		kind := []models.LayerKind{
			models.LayerKindText,
			models.LayerKindImage,
			models.LayerKindShape,
		}[i%3]
		ids = append(ids, e.AddLayer(kind, nil).ID)
		requireDenseZ(t, e.Document())
	}

	e.MoveLayer(ids[0], DirectionUp)
	requireDenseZ(t, e.Document())
	e.DeleteLayer(ids[3])
	requireDenseZ(t, e.Document())
	e.MoveLayer(ids[5], DirectionDown)
	requireDenseZ(t, e.Document())
	e.DeleteLayer(ids[1])
	requireDenseZ(t, e.Document())
	e.MoveLayer(ids[2], DirectionUp)
	requireDenseZ(t, e.Document())
}

// ── Undo / Redo ──────────────────────────────────────────────────────────────

func TestEngine_UndoRedo_RoundTripsEveryMutation(t *testing.T) {
	e := newTestEngine(t)

	before := e.Document()
	l := e.AddLayer(models.LayerKindText, nil)
	after := e.Document()

	require.True(t, e.Undo())
	assert.Equal(t, before, e.Document())

	require.True(t, e.Redo())
	assert.Equal(t, after, e.Document())

	e.DeleteLayer(l.ID)
	afterDelete := e.Document()

	require.True(t, e.Undo())
	assert.Equal(t, after, e.Document())
	require.True(t, e.Redo())
	assert.Equal(t, afterDelete, e.Document())
}

func TestEngine_Undo_BoundaryIsNoOp(t *testing.T) {
	e := newTestEngine(t)

	assert.False(t, e.Undo())
	assert.False(t, e.Redo())
}

func TestEngine_NewMutationDiscardsRedoBranch(t *testing.T) {
	e := newTestEngine(t)

	e.AddLayer(models.LayerKindText, nil)
	e.AddLayer(models.LayerKindImage, nil)

	require.True(t, e.Undo())
	require.True(t, e.CanRedo())

	// a fresh mutation while the cursor is not at the tail truncates the
	// redo-able entries.
	e.AddLayer(models.LayerKindShape, nil)

	assert.False(t, e.CanRedo())
	assert.False(t, e.Redo())

	// undo still works backwards through the new branch.
	require.True(t, e.Undo())
	require.Len(t, e.Document().Layers, 1)
}

func TestEngine_CheckpointMakesCoalescedEditUndoable(t *testing.T) {
	e := newTestEngine(t)
	l := e.AddLayer(models.LayerKindShape, nil)
	afterAdd := e.Document()

	// simulate a drag: many fine-grained updates, one checkpoint at
	// pointer release.
	for i := 1; i <= 25; i++ {
		x := float64(i * 4)
		e.UpdateLayer(l.ID, models.LayerPatch{X: &x})
	}
	e.Checkpoint()
	afterDrag := e.Document()

	require.True(t, e.Undo())
	assert.Equal(t, afterAdd, e.Document())
	require.True(t, e.Redo())
	assert.Equal(t, afterDrag, e.Document())
}

// ── Toggles ──────────────────────────────────────────────────────────────────

func TestEngine_ToggleVisibilityAndLock(t *testing.T) {
	e := newTestEngine(t)
	l := e.AddLayer(models.LayerKindText, nil)

	e.ToggleVisibility(l.ID)
	doc := e.Document()
	assert.False(t, doc.LayerByID(l.ID).Visible)
	e.ToggleVisibility(l.ID)
	doc = e.Document()
	assert.True(t, doc.LayerByID(l.ID).Visible)

	e.ToggleLock(l.ID)
	doc = e.Document()
	assert.True(t, doc.LayerByID(l.ID).Locked)

	// toggles are routed through UpdateLayer and are not self-checkpointing.
	require.True(t, e.Undo())
	assert.Empty(t, e.Document().Layers)
}

// ── LoadState ────────────────────────────────────────────────────────────────

func TestEngine_LoadState_DropsDuplicateIDs(t *testing.T) {
	e := newTestEngine(t)

	doc := models.Document{
		CanvasWidth:  800,
		CanvasHeight: 600,
		Layers: []models.Layer{
			{ID: "dup", Kind: models.LayerKindText, ZIndex: 4},
			{ID: "keep", Kind: models.LayerKindShape, ZIndex: 9},
			{ID: "dup", Kind: models.LayerKindImage, ZIndex: 2},
		},
	}

	e.LoadState(doc)

	got := e.Document()
	require.Len(t, got.Layers, 2)
	require.NotNil(t, got.LayerByID("dup"))
	// the first occurrence wins, never silently overwritten by the later one
	assert.Equal(t, models.LayerKindText, got.LayerByID("dup").Kind)
	requireDenseZ(t, got)
	assert.Equal(t, 0, got.LayerByID("dup").ZIndex)
	assert.Equal(t, 1, got.LayerByID("keep").ZIndex)
}

func TestEngine_LoadState_ResetsHistory(t *testing.T) {
	e := newTestEngine(t)
	e.AddLayer(models.LayerKindText, nil)

	e.LoadState(models.Document{CanvasWidth: 640, CanvasHeight: 480})

	assert.False(t, e.CanUndo())
	assert.False(t, e.CanRedo())
	assert.False(t, e.Undo())
	assert.Equal(t, 640, e.Document().CanvasWidth)
}

func TestEngine_LoadState_NonPositiveCanvasFallsBackToDefaults(t *testing.T) {
	e := newTestEngine(t)

	e.LoadState(models.Document{CanvasWidth: 0, CanvasHeight: -5})

	doc := e.Document()
	assert.Equal(t, DefaultCanvasWidth, doc.CanvasWidth)
	assert.Equal(t, DefaultCanvasHeight, doc.CanvasHeight)
}

// ── Ordering views ───────────────────────────────────────────────────────────

func TestEngine_PaintAndStackOrder(t *testing.T) {
	e := newTestEngine(t)
	a := e.AddLayer(models.LayerKindText, nil)
	b := e.AddLayer(models.LayerKindImage, nil)
	c := e.AddLayer(models.LayerKindShape, nil)

	paint := e.PaintOrder()
	require.Len(t, paint, 3)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{paint[0].ID, paint[1].ID, paint[2].ID})

	stack := e.StackOrder()
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, []string{stack[0].ID, stack[1].ID, stack[2].ID})
}

// ── End-to-end editing scenario ──────────────────────────────────────────────

func TestEngine_EditingScenario(t *testing.T) {
	e := newTestEngine(t)

	doc := e.Document()
	require.Equal(t, 1280, doc.CanvasWidth)
	require.Equal(t, 720, doc.CanvasHeight)
	require.Empty(t, doc.Layers)

	text := e.AddLayer(models.LayerKindText, nil)
	doc = e.Document()
	require.Len(t, doc.Layers, 1)
	assert.Equal(t, 0, doc.LayerByID(text.ID).ZIndex)
	assert.Equal(t, "Your Text Here", doc.LayerByID(text.ID).Text.Content)
	assert.Equal(t, float64(72), doc.LayerByID(text.ID).Text.FontSize)

	image := e.AddLayer(models.LayerKindImage, &models.LayerPatch{
		Image: &models.ImageAttributes{Src: "u"},
	})
	doc = e.Document()
	require.Len(t, doc.Layers, 2)
	assert.Equal(t, 1, doc.LayerByID(image.ID).ZIndex)

	e.MoveLayer(text.ID, DirectionUp)
	doc = e.Document()
	assert.Equal(t, 1, doc.LayerByID(text.ID).ZIndex)
	assert.Equal(t, 0, doc.LayerByID(image.ID).ZIndex)

	require.True(t, e.Undo())
	doc = e.Document()
	assert.Equal(t, 0, doc.LayerByID(text.ID).ZIndex)
	assert.Equal(t, 1, doc.LayerByID(image.ID).ZIndex)

	require.True(t, e.Undo())
	doc = e.Document()
	require.Len(t, doc.Layers, 1)
	assert.NotNil(t, doc.LayerByID(text.ID))
	assert.Nil(t, doc.LayerByID(image.ID))
}

package models

// Document is the unit of persistence: canvas dimensions plus the full
// set of layers. Layers are kept in insertion order; painting order is
// derived from Layer.ZIndex, not slice position.
type Document struct {
	// CanvasWidth and CanvasHeight are the canvas dimensions in pixels.
	// Both are positive.
	CanvasWidth  int `json:"canvas_width"`
	CanvasHeight int `json:"canvas_height"`

	// Layers is the insertion-ordered set of layers. Layer IDs are unique
	// within one document.
	Layers []Layer `json:"layers"`
}

// Clone returns a deep copy of the document. History snapshots rely on
// clones being fully independent of the live document.
func (d Document) Clone() Document {
	c := Document{
		CanvasWidth:  d.CanvasWidth,
		CanvasHeight: d.CanvasHeight,
	}
	if d.Layers != nil {
		c.Layers = make([]Layer, 0, len(d.Layers))
		for _, l := range d.Layers {
			c.Layers = append(c.Layers, l.Clone())
		}
	}
	return c
}

// LayerByID returns a pointer into the document's layer slice for the
// given id, or nil if no such layer exists.
func (d *Document) LayerByID(id string) *Layer {
	for i := range d.Layers {
		if d.Layers[i].ID == id {
			return &d.Layers[i]
		}
	}
	return nil
}

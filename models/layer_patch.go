package models

// LayerPatch represents a partial update of a single layer.
// Only non-nil fields are applied (shallow merge); the variant blocks
// replace the layer's corresponding block as a whole when set.
type LayerPatch struct {
	// Name updates the display name when non-nil.
	Name *string `json:"name,omitempty"`

	// Geometry updates. Each field is applied independently.
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Rotation *float64 `json:"rotation,omitempty"`
	ScaleX   *float64 `json:"scale_x,omitempty"`
	ScaleY   *float64 `json:"scale_y,omitempty"`

	// Paint updates.
	Opacity *float64 `json:"opacity,omitempty"`
	Fill    *string  `json:"fill,omitempty"`
	Stroke  *string  `json:"stroke,omitempty"`

	// Visible and Locked flip the respective flags when non-nil.
	Visible *bool `json:"visible,omitempty"`
	Locked  *bool `json:"locked,omitempty"`

	// Variant blocks. A non-nil block replaces the layer's block of the
	// same kind; blocks of a different kind than the layer are ignored.
	Text  *TextAttributes  `json:"text,omitempty"`
	Image *ImageAttributes `json:"image,omitempty"`
	Shape *ShapeAttributes `json:"shape,omitempty"`
}

// Apply merges the non-nil fields of the patch into l.
// ZIndex, ID and Kind are deliberately not patchable: stacking order is
// owned by the engine's move operation, identity and kind are immutable.
func (p LayerPatch) Apply(l *Layer) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.X != nil {
		l.X = *p.X
	}
	if p.Y != nil {
		l.Y = *p.Y
	}
	if p.Width != nil {
		l.Width = *p.Width
	}
	if p.Height != nil {
		l.Height = *p.Height
	}
	if p.Rotation != nil {
		l.Rotation = *p.Rotation
	}
	if p.ScaleX != nil {
		l.ScaleX = *p.ScaleX
	}
	if p.ScaleY != nil {
		l.ScaleY = *p.ScaleY
	}
	if p.Opacity != nil {
		l.Opacity = *p.Opacity
	}
	if p.Fill != nil {
		l.Fill = *p.Fill
	}
	if p.Stroke != nil {
		l.Stroke = *p.Stroke
	}
	if p.Visible != nil {
		l.Visible = *p.Visible
	}
	if p.Locked != nil {
		l.Locked = *p.Locked
	}
	if p.Text != nil && l.Kind == LayerKindText {
		t := *p.Text
		l.Text = &t
	}
	if p.Image != nil && l.Kind == LayerKindImage {
		img := *p.Image
		if p.Image.Crop != nil {
			crop := *p.Image.Crop
			img.Crop = &crop
		}
		l.Image = &img
	}
	if p.Shape != nil && l.Kind == LayerKindShape {
		s := *p.Shape
		l.Shape = &s
	}
}

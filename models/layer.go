package models

// LayerKind defines the semantic kind of a canvas layer.
// The value determines which variant-specific attribute block
// (Text, Image or Shape) is populated.
type LayerKind string

const (
	// LayerKindText represents a positioned block of styled text.
	LayerKindText LayerKind = "text"

	// LayerKindImage represents a raster or generated image referenced
	// by URL; the pixel data itself is never stored in the document.
	LayerKindImage LayerKind = "image"

	// LayerKindShape represents a vector primitive such as a rectangle
	// or star.
	LayerKindShape LayerKind = "shape"
)

// Valid reports whether k is one of the known layer kinds.
func (k LayerKind) Valid() bool {
	switch k {
	case LayerKindText, LayerKindImage, LayerKindShape:
		return true
	}
	return false
}

// ShapeKind enumerates the vector primitives a shape layer can render.
type ShapeKind string

const (
	ShapeRectangle ShapeKind = "rectangle"
	ShapeCircle    ShapeKind = "circle"
	ShapeTriangle  ShapeKind = "triangle"
	ShapeStar      ShapeKind = "star"
	ShapeArrow     ShapeKind = "arrow"
	ShapeLine      ShapeKind = "line"
)

// Layer is one positioned, styled element on the canvas.
//
// Exactly one of the variant blocks (Text, Image, Shape) is non-nil,
// matching Kind. Geometry and paint attributes are shared by all kinds.
type Layer struct {
	// ID is the opaque unique identifier of the layer within its document.
	ID string `json:"id"`

	// Kind selects the layer variant and which attribute block is set.
	Kind LayerKind `json:"kind"`

	// Name is the human-readable display name shown in the layers list.
	Name string `json:"name"`

	// X and Y position the layer's top-left corner on the canvas.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Width and Height define the unscaled bounding box of the layer.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Rotation is the clockwise rotation in degrees around the layer center.
	Rotation float64 `json:"rotation"`

	// ScaleX and ScaleY are independent horizontal and vertical scale
	// factors applied on top of Width and Height.
	ScaleX float64 `json:"scale_x"`
	ScaleY float64 `json:"scale_y"`

	// Opacity is the paint opacity in [0, 1].
	Opacity float64 `json:"opacity"`

	// Fill and Stroke are CSS-style paint values where applicable.
	Fill   string `json:"fill,omitempty"`
	Stroke string `json:"stroke,omitempty"`

	// ZIndex is the stacking position. Within one document the values
	// form the dense set {0, …, layerCount-1}; painting order is
	// ascending ZIndex.
	ZIndex int `json:"z_index"`

	// Visible toggles painting of the layer without removing it.
	Visible bool `json:"visible"`

	// Locked layers reject geometry edits from direct manipulation but
	// remain editable through explicit property updates.
	Locked bool `json:"locked"`

	// Text holds text-specific attributes; non-nil only when Kind is
	// LayerKindText.
	Text *TextAttributes `json:"text,omitempty"`

	// Image holds image-specific attributes; non-nil only when Kind is
	// LayerKindImage.
	Image *ImageAttributes `json:"image,omitempty"`

	// Shape holds shape-specific attributes; non-nil only when Kind is
	// LayerKindShape.
	Shape *ShapeAttributes `json:"shape,omitempty"`
}

// TextAttributes holds the variant fields of a text layer.
type TextAttributes struct {
	// Content is the rendered string.
	Content string `json:"content"`

	// FontFamily is the font family name (e.g. "Inter").
	FontFamily string `json:"font_family"`

	// FontSize is the font size in canvas units.
	FontSize float64 `json:"font_size"`

	// FontStyle is a free-form style descriptor ("normal", "bold",
	// "italic", "bold italic").
	FontStyle string `json:"font_style"`

	// AlignH is the horizontal alignment: "left", "center" or "right".
	AlignH string `json:"align_h"`

	// AlignV is the vertical alignment: "top", "middle" or "bottom".
	AlignV string `json:"align_v"`
}

// ImageAttributes holds the variant fields of an image layer.
type ImageAttributes struct {
	// Src is the source reference (URL) of the image asset.
	Src string `json:"src"`

	// Crop is the optional crop rectangle in source-image coordinates.
	Crop *CropRect `json:"crop,omitempty"`
}

// CropRect describes a crop window inside a source image.
type CropRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ShapeAttributes holds the variant fields of a shape layer.
type ShapeAttributes struct {
	// Kind selects the vector primitive.
	Kind ShapeKind `json:"kind"`

	// CornerRadius rounds the corners of rectangle-like shapes.
	CornerRadius float64 `json:"corner_radius"`
}

// Clone returns a deep copy of the layer, including its variant block.
func (l Layer) Clone() Layer {
	c := l
	if l.Text != nil {
		t := *l.Text
		c.Text = &t
	}
	if l.Image != nil {
		img := *l.Image
		if l.Image.Crop != nil {
			crop := *l.Image.Crop
			img.Crop = &crop
		}
		c.Image = &img
	}
	if l.Shape != nil {
		s := *l.Shape
		c.Shape = &s
	}
	return c
}

package engine

import "github.com/MKhiriev/go-canvas-studio/models"

// Default canvas dimensions used when the engine is constructed without a
// document or with non-positive canvas sizes.
const (
	DefaultCanvasWidth  = 1280
	DefaultCanvasHeight = 720
)

const (
	defaultTextContent = "Your Text Here"
	defaultFontFamily  = "Inter"
	defaultFontSize    = 72
)

// defaultLayer builds the kind-specific default layer for the given
// canvas. New layers land at a quarter-canvas offset with a fixed default
// size per kind. Panics with [ErrUnknownLayerKind] for an unknown kind;
// that is a contract violation, not a runtime condition.
func defaultLayer(kind models.LayerKind, canvasWidth, canvasHeight int) models.Layer {
	l := models.Layer{
		Kind:    kind,
		X:       float64(canvasWidth) / 4,
		Y:       float64(canvasHeight) / 4,
		ScaleX:  1,
		ScaleY:  1,
		Opacity: 1,
		Visible: true,
	}

	switch kind {
	case models.LayerKindText:
		l.Name = "Text"
		l.Width = 480
		l.Height = 120
		l.Fill = "#1a1a1a"
		l.Text = &models.TextAttributes{
			Content:    defaultTextContent,
			FontFamily: defaultFontFamily,
			FontSize:   defaultFontSize,
			FontStyle:  "normal",
			AlignH:     "center",
			AlignV:     "middle",
		}
	case models.LayerKindImage:
		l.Name = "Image"
		l.Width = 480
		l.Height = 320
		l.Image = &models.ImageAttributes{}
	case models.LayerKindShape:
		l.Name = "Shape"
		l.Width = 240
		l.Height = 240
		l.Fill = "#4f8ef7"
		l.Shape = &models.ShapeAttributes{Kind: models.ShapeRectangle}
	default:
		panic(ErrUnknownLayerKind)
	}

	return l
}

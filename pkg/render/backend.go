package render

import "github.com/archplot/archplot/pkg/diagram"

// =============================================================================
// Backend Interface
// =============================================================================

// Backend paints resolved pixel-space primitives onto one surface.
//
// Call order per render: Begin once, then any number of Rect/Line/Text in
// painting order, then End to flush the encoded artifact. A backend renders
// one surface at a time but may be reused for several renders between
// construction and Close. Backends are not safe for concurrent use.
type Backend interface {
	// PPI returns the backend's pixel density in pixels per inch.
	// The render transform is built from this value.
	PPI() float64

	// Begin allocates the surface. Width and height are in the backend's
	// pixels; raster backends round to whole device pixels.
	Begin(s Surface) error

	// Rect paints a rounded rectangle, fill first, then stroke.
	Rect(op RectOp) error

	// Line paints a straight segment with optional arrowheads.
	Line(op LineOp) error

	// Text paints a single line of text at a baseline anchor.
	Text(op TextOp) error

	// End flushes the surface and returns the encoded artifact.
	End() ([]byte, error)

	// Close releases backend resources (font faces, pixel buffers).
	Close() error
}

// Surface describes the drawing area handed to Begin.
type Surface struct {
	Width      float64 // px
	Height     float64 // px
	Background diagram.Color
}

// =============================================================================
// Drawing Operations
// =============================================================================

// All operation coordinates are in backend pixels with the origin at the
// top-left corner and y growing downward. Font sizes are in points; the
// backend converts with its own density.

// RectOp paints a rounded rectangle.
type RectOp struct {
	X, Y   float64 // top-left corner
	W, H   float64
	Radius float64 // corner radius, px

	Fill        diagram.Color // alpha carries element opacity
	Stroke      diagram.Color
	StrokeWidth float64 // px; zero skips the stroke
}

// LineOp paints a straight segment.
type LineOp struct {
	X1, Y1 float64
	X2, Y2 float64

	Color diagram.Color
	Width float64   // px
	Dash  []float64 // px on/off pairs; nil is solid

	ArrowStart bool
	ArrowEnd   bool
	ArrowSize  float64 // px; arrowheads are always solid
}

// TextOp paints one line of text.
type TextOp struct {
	X float64 // anchor x
	Y float64 // baseline y

	Text  string
	Align diagram.Align // horizontal anchoring around X

	Size   float64 // points
	Bold   bool
	Italic bool
	Color  diagram.Color
}

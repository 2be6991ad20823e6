package diagram

import (
	"github.com/archplot/archplot/pkg/errors"
	"github.com/archplot/archplot/pkg/geo"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Shape kinds.
const (
	KindContainer = "container"
	KindChip      = "chip"
)

// Style defaults. Zero-valued style fields resolve to these.
const (
	DefaultStrokeWidth     = 1.0  // points
	DefaultOpacity         = 1.0  //
	DefaultContainerRadius = 0.1  // data units
	DefaultChipRadius      = 0.05 // data units
	DefaultFontSize        = 10.0 // points
	DefaultLabelSize       = 8.0  // points, chip labels
	DefaultLineSpacing     = 1.2  // multiple of font size
	DefaultArrowSize       = 8.0  // points
)

var (
	defaultBackground = Color{R: 1, G: 1, B: 1, A: 1} // white
	defaultTextColor  = Color{A: 1}                   // black
	defaultFill       = Color{R: 1, G: 1, B: 1, A: 1} // white
	defaultStroke     = Color{A: 1}                   // black
)

// =============================================================================
// Shape
// =============================================================================

// Shape is a rounded rectangle placed at an absolute center position.
// Containers group chips visually; there is no parent/child linkage in the
// model, nesting is purely a matter of coordinates.
type Shape struct {
	Kind   string    // KindContainer or KindChip
	Center geo.Point // data units
	Width  float64   // data units
	Height float64   // data units

	Fill         Color
	Stroke       Color
	StrokeWidth  float64 // points
	Opacity      float64 // multiplies fill and stroke alpha
	CornerRadius float64 // data units

	// Label is the centered caption of a chip. Containers are unlabeled;
	// their captions are separate annotations. May contain newlines.
	Label string
	Font  Font

	Layer int
	seq   int
}

// ShapeStyle carries the optional styling of AddContainer and AddChip.
// Zero fields resolve to the package defaults.
type ShapeStyle struct {
	Fill         Color   `json:"fill,omitempty"`
	Stroke       Color   `json:"stroke,omitempty"`
	StrokeWidth  float64 `json:"stroke_width,omitempty"`  // points
	Opacity      float64 `json:"opacity,omitempty"`       // 0 means opaque
	CornerRadius float64 `json:"corner_radius,omitempty"` // data units
	Font         Font    `json:"font,omitempty"`          // chip label font
	Layer        int     `json:"layer,omitempty"`
}

// Rect returns the shape's extent in data units.
func (s *Shape) Rect() geo.Rect {
	return geo.RectFromCenter(s.Center, s.Width, s.Height)
}

// Seq returns the global insertion index, the z-order tiebreaker
// within a layer.
func (s *Shape) Seq() int { return s.seq }

// newShape resolves style defaults and validates geometry.
func newShape(kind string, c *Canvas, x, y, w, h float64, label string, style ShapeStyle) (Shape, error) {
	if w <= 0 || h <= 0 {
		return Shape{}, errors.New(errors.ErrCodeInvalidShape,
			"%s extent must be positive, got %gx%g", kind, w, h)
	}
	if kind == KindChip && label == "" {
		return Shape{}, errors.New(errors.ErrCodeInvalidShape, "chip label cannot be empty")
	}
	center := geo.Pt(x, y)
	if !c.Contains(center) {
		return Shape{}, errors.New(errors.ErrCodeOutOfBounds,
			"%s center (%g, %g) outside canvas range [%g, %g] x [%g, %g]",
			kind, x, y, c.XMin, c.XMax, c.YMin, c.YMax)
	}

	s := Shape{
		Kind:         kind,
		Center:       center,
		Width:        w,
		Height:       h,
		Fill:         style.Fill,
		Stroke:       style.Stroke,
		StrokeWidth:  style.StrokeWidth,
		Opacity:      style.Opacity,
		CornerRadius: style.CornerRadius,
		Label:        label,
		Layer:        style.Layer,
	}
	if s.Fill.IsZero() {
		s.Fill = defaultFill
	}
	if s.Stroke.IsZero() {
		s.Stroke = defaultStroke
	}
	if s.StrokeWidth == 0 {
		s.StrokeWidth = DefaultStrokeWidth
	}
	if s.Opacity == 0 {
		s.Opacity = DefaultOpacity
	}
	if s.CornerRadius == 0 {
		if kind == KindContainer {
			s.CornerRadius = DefaultContainerRadius
		} else {
			s.CornerRadius = DefaultChipRadius
		}
	}
	if kind == KindChip {
		s.Font = style.Font.withDefaults(DefaultLabelSize)
	}
	return s, nil
}

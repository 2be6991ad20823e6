package diagram

import (
	"github.com/archplot/archplot/pkg/errors"
	"github.com/archplot/archplot/pkg/geo"
)

// TextBox is the optional rounded background box behind an annotation.
type TextBox struct {
	Fill    Color   `json:"fill,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
	// Pad is the space between the text block and the box edge, in points.
	Pad float64 `json:"pad,omitempty"`
	// CornerRadius is in points. Zero defaults to the pad.
	CornerRadius float64 `json:"corner_radius,omitempty"`
}

// DefaultBoxPad is the default text box padding in points.
const DefaultBoxPad = 3.0

// Annotation is a free text block anchored at an absolute point.
// Multi-line text uses embedded newlines; lines stack downward with
// DefaultLineSpacing times the font size between baselines.
type Annotation struct {
	Anchor geo.Point
	Text   string
	HAlign Align
	VAlign VAlign
	Font   Font
	Box    *TextBox // nil means bare text

	Layer int
	seq   int
}

// AnnotationStyle carries the optional styling of AddAnnotation.
type AnnotationStyle struct {
	HAlign Align    `json:"h_align,omitempty"` // default center
	VAlign VAlign   `json:"v_align,omitempty"` // default center
	Font   Font     `json:"font,omitempty"`
	Box    *TextBox `json:"box,omitempty"`
	Layer  int      `json:"layer,omitempty"`
}

// Seq returns the global insertion index.
func (a *Annotation) Seq() int { return a.seq }

// newAnnotation resolves style defaults and validates the anchor and text.
func newAnnotation(c *Canvas, x, y float64, text string, style AnnotationStyle) (Annotation, error) {
	if text == "" {
		return Annotation{}, errors.New(errors.ErrCodeInvalidAnnotation, "annotation text cannot be empty")
	}
	anchor := geo.Pt(x, y)
	if !c.Contains(anchor) {
		return Annotation{}, errors.New(errors.ErrCodeOutOfBounds,
			"annotation anchor (%g, %g) outside canvas range [%g, %g] x [%g, %g]",
			x, y, c.XMin, c.XMax, c.YMin, c.YMax)
	}

	a := Annotation{
		Anchor: anchor,
		Text:   text,
		HAlign: style.HAlign,
		VAlign: style.VAlign,
		Font:   style.Font.withDefaults(DefaultFontSize),
		Layer:  style.Layer,
	}
	if a.HAlign == "" {
		a.HAlign = AlignCenter
	}
	if a.VAlign == "" {
		a.VAlign = VAlignCenter
	}
	if !validAlign(a.HAlign) {
		return Annotation{}, errors.New(errors.ErrCodeInvalidAnnotation, "unknown horizontal alignment %q", a.HAlign)
	}
	if !validVAlign(a.VAlign) {
		return Annotation{}, errors.New(errors.ErrCodeInvalidAnnotation, "unknown vertical alignment %q", a.VAlign)
	}
	if style.Box != nil {
		box := *style.Box
		if box.Fill.IsZero() {
			box.Fill = defaultFill
		}
		if box.Opacity == 0 {
			box.Opacity = DefaultOpacity
		}
		if box.Pad == 0 {
			box.Pad = DefaultBoxPad
		}
		if box.CornerRadius == 0 {
			box.CornerRadius = box.Pad
		}
		a.Box = &box
	}
	return a, nil
}

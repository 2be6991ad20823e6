package render

import (
	"github.com/archplot/archplot/pkg/diagram"
	"github.com/archplot/archplot/pkg/geo"
)

// Transform maps diagram data coordinates onto backend pixels.
//
// The scale is always derived from the full canvas (physical size over data
// range), never from the view rectangle: a tight view crops the surface but
// keeps the data-to-pixel scale identical to a full-canvas render.
type Transform struct {
	view   geo.Rect
	scaleX float64 // px per data unit
	scaleY float64
	ppp    float64 // px per point
}

// NewTransform builds the transform for a canvas rendered at ppi pixels
// per inch, showing the view rectangle (data units).
func NewTransform(c diagram.Canvas, view geo.Rect, ppi float64) Transform {
	return Transform{
		view:   view,
		scaleX: c.Width * ppi / (c.XMax - c.XMin),
		scaleY: c.Height * ppi / (c.YMax - c.YMin),
		ppp:    ppi / 72,
	}
}

// X maps a data x coordinate to pixels.
func (t Transform) X(x float64) float64 { return (x - t.view.X) * t.scaleX }

// Y maps a data y coordinate to pixels. The data y axis grows upward,
// pixels grow downward.
func (t Transform) Y(y float64) float64 { return (t.view.MaxY() - y) * t.scaleY }

// Point maps a data point to pixel coordinates.
func (t Transform) Point(p geo.Point) (x, y float64) { return t.X(p.X), t.Y(p.Y) }

// W scales a data-unit width to pixels.
func (t Transform) W(w float64) float64 { return w * t.scaleX }

// H scales a data-unit height to pixels.
func (t Transform) H(h float64) float64 { return h * t.scaleY }

// Rect maps a data rectangle to a pixel-space RectOp origin and size.
// The returned y is the top edge in pixel space.
func (t Transform) Rect(r geo.Rect) (x, y, w, h float64) {
	return t.X(r.X), t.Y(r.MaxY()), t.W(r.W), t.H(r.H)
}

// PtPx converts a point-unit length (stroke width, font offset) to pixels.
func (t Transform) PtPx(pt float64) float64 { return pt * t.ppp }

// RadiusPx converts a data-unit corner radius to pixels using the smaller
// axis scale, keeping corners circular on anisotropic canvases.
func (t Transform) RadiusPx(r float64) float64 {
	s := t.scaleX
	if t.scaleY < s {
		s = t.scaleY
	}
	return r * s
}

// Size returns the view size in pixels.
func (t Transform) Size() (w, h float64) {
	return t.W(t.view.W), t.H(t.view.H)
}

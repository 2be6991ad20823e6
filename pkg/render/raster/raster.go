// Package raster renders diagrams to PNG in process via fogleman/gg.
//
// The backend draws at the export DPI on an ARGB pixel buffer and encodes
// PNG on End. Font faces are minted per point size from the embedded Go
// fonts and released on Close.
package raster

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/archplot/archplot/pkg/diagram"
	"github.com/archplot/archplot/pkg/errors"
	"github.com/archplot/archplot/pkg/fonts"
	"github.com/archplot/archplot/pkg/render"
)

// DefaultDPI is the raster density used when none is given.
const DefaultDPI = 300.0

// Backend implements render.Backend on a gg pixel context.
// Not safe for concurrent use.
type Backend struct {
	dpi   float64
	dc    *gg.Context
	faces map[faceKey]font.Face
}

type faceKey struct {
	size   float64
	bold   bool
	italic bool
}

var _ render.Backend = (*Backend)(nil)

// New returns a raster backend drawing at the given DPI.
// Non-positive values fall back to DefaultDPI.
func New(dpi float64) *Backend {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Backend{dpi: dpi, faces: map[faceKey]font.Face{}}
}

// PPI returns the raster density in pixels per inch.
func (b *Backend) PPI() float64 { return b.dpi }

// Begin allocates the pixel buffer and paints the background.
func (b *Backend) Begin(s render.Surface) error {
	w := int(math.Round(s.Width))
	h := int(math.Round(s.Height))
	if w < 1 || h < 1 {
		return errors.New(errors.ErrCodeInternal, "surface %gx%g collapses to zero pixels", s.Width, s.Height)
	}
	b.dc = gg.NewContext(w, h)
	b.setColor(s.Background)
	b.dc.Clear()
	return nil
}

func (b *Backend) setColor(c diagram.Color) {
	b.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func (b *Backend) ready() error {
	if b.dc == nil {
		return errors.New(errors.ErrCodeInternal, "raster backend used before Begin")
	}
	return nil
}

// Rect paints a rounded rectangle, fill then stroke.
func (b *Backend) Rect(op render.RectOp) error {
	if err := b.ready(); err != nil {
		return err
	}

	r := op.Radius
	if limit := math.Min(op.W, op.H) / 2; r > limit {
		r = limit
	}
	b.dc.DrawRoundedRectangle(op.X, op.Y, op.W, op.H, r)
	b.setColor(op.Fill)
	if op.StrokeWidth > 0 {
		b.dc.FillPreserve()
		b.setColor(op.Stroke)
		b.dc.SetLineWidth(op.StrokeWidth)
		b.dc.Stroke()
	} else {
		b.dc.Fill()
	}
	return nil
}

// Line paints a straight segment plus any arrowheads.
func (b *Backend) Line(op render.LineOp) error {
	if err := b.ready(); err != nil {
		return err
	}

	b.setColor(op.Color)
	b.dc.SetLineWidth(op.Width)
	if len(op.Dash) > 0 {
		b.dc.SetDash(op.Dash...)
	}
	b.dc.DrawLine(op.X1, op.Y1, op.X2, op.Y2)
	b.dc.Stroke()
	if len(op.Dash) > 0 {
		b.dc.SetDash()
	}

	if op.ArrowEnd {
		b.fillArrow(render.ArrowPoints(op.X1, op.Y1, op.X2, op.Y2, op.ArrowSize))
	}
	if op.ArrowStart {
		b.fillArrow(render.ArrowPoints(op.X2, op.Y2, op.X1, op.Y1, op.ArrowSize))
	}
	return nil
}

func (b *Backend) fillArrow(pts [3][2]float64) {
	b.dc.MoveTo(pts[0][0], pts[0][1])
	b.dc.LineTo(pts[1][0], pts[1][1])
	b.dc.LineTo(pts[2][0], pts[2][1])
	b.dc.ClosePath()
	b.dc.Fill()
}

// Text paints one line anchored at a baseline point.
func (b *Backend) Text(op render.TextOp) error {
	if err := b.ready(); err != nil {
		return err
	}

	face, err := b.face(op.Size, op.Bold, op.Italic)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "load font face")
	}
	b.dc.SetFontFace(face)
	b.setColor(op.Color)

	ax := 0.5
	switch op.Align {
	case diagram.AlignLeft:
		ax = 0
	case diagram.AlignRight:
		ax = 1
	}
	// ay 0 anchors the baseline at Y.
	b.dc.DrawStringAnchored(op.Text, op.X, op.Y, ax, 0)
	return nil
}

func (b *Backend) face(size float64, bold, italic bool) (font.Face, error) {
	key := faceKey{size: size, bold: bold, italic: italic}
	if f, ok := b.faces[key]; ok {
		return f, nil
	}
	f, err := fonts.NewFace(size, b.dpi, bold, italic)
	if err != nil {
		return nil, err
	}
	b.faces[key] = f
	return f, nil
}

// End encodes the buffer as PNG and releases it.
func (b *Backend) End() ([]byte, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := b.dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	b.dc = nil
	return buf.Bytes(), nil
}

// Close releases the cached font faces. The backend is unusable afterwards.
func (b *Backend) Close() error {
	var first error
	for _, f := range b.faces {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	b.faces = nil
	b.dc = nil
	return first
}

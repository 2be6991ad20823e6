// Package svg renders diagrams to standalone SVG documents.
//
// Geometry arrives pre-scaled to CSS pixels (96 per inch), so the markup
// needs no transform attributes and viewers agree with the raster backend
// on proportions. Text is emitted as live <text> elements; viewers without
// the Go fonts fall back through a generic sans-serif stack, which may
// shift line widths slightly but never positions.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/archplot/archplot/pkg/diagram"
	"github.com/archplot/archplot/pkg/errors"
	"github.com/archplot/archplot/pkg/fonts"
	"github.com/archplot/archplot/pkg/render"
)

// PPI is the fixed density of SVG user units.
const PPI = 96.0

// Backend implements render.Backend by writing SVG markup into a buffer.
// Not safe for concurrent use.
type Backend struct {
	buf   bytes.Buffer
	begun bool
}

var _ render.Backend = (*Backend)(nil)

// New returns an SVG backend.
func New() *Backend { return &Backend{} }

// PPI returns the CSS pixel density.
func (b *Backend) PPI() float64 { return PPI }

// Begin writes the document header and background.
func (b *Backend) Begin(s render.Surface) error {
	b.buf.Reset()
	b.begun = true
	fmt.Fprintf(&b.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" font-family="%s">`+"\n",
		num(s.Width), num(s.Height), num(s.Width), num(s.Height), fonts.FallbackFontFamily)
	fmt.Fprintf(&b.buf, `  <rect width="100%%" height="100%%" fill="%s"%s/>`+"\n",
		s.Background.Hex(), opacityAttr("fill", s.Background.A))
	return nil
}

func (b *Backend) ready() error {
	if !b.begun {
		return errors.New(errors.ErrCodeInternal, "svg backend used before Begin")
	}
	return nil
}

// Rect writes a rounded rectangle element.
func (b *Backend) Rect(op render.RectOp) error {
	if err := b.ready(); err != nil {
		return err
	}

	var attrs strings.Builder
	if op.Radius > 0 {
		fmt.Fprintf(&attrs, ` rx="%s"`, num(op.Radius))
	}
	fmt.Fprintf(&attrs, ` fill="%s"%s`, op.Fill.Hex(), opacityAttr("fill", op.Fill.A))
	if op.StrokeWidth > 0 {
		fmt.Fprintf(&attrs, ` stroke="%s" stroke-width="%s"%s`,
			op.Stroke.Hex(), num(op.StrokeWidth), opacityAttr("stroke", op.Stroke.A))
	}
	fmt.Fprintf(&b.buf, `  <rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		num(op.X), num(op.Y), num(op.W), num(op.H), attrs.String())
	return nil
}

// Line writes a segment element plus polygon arrowheads.
func (b *Backend) Line(op render.LineOp) error {
	if err := b.ready(); err != nil {
		return err
	}

	var attrs strings.Builder
	fmt.Fprintf(&attrs, ` stroke="%s" stroke-width="%s"%s`,
		op.Color.Hex(), num(op.Width), opacityAttr("stroke", op.Color.A))
	if len(op.Dash) > 0 {
		parts := make([]string, len(op.Dash))
		for i, d := range op.Dash {
			parts[i] = num(d)
		}
		fmt.Fprintf(&attrs, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	fmt.Fprintf(&b.buf, `  <line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
		num(op.X1), num(op.Y1), num(op.X2), num(op.Y2), attrs.String())

	if op.ArrowEnd {
		b.polygon(render.ArrowPoints(op.X1, op.Y1, op.X2, op.Y2, op.ArrowSize), op.Color)
	}
	if op.ArrowStart {
		b.polygon(render.ArrowPoints(op.X2, op.Y2, op.X1, op.Y1, op.ArrowSize), op.Color)
	}
	return nil
}

func (b *Backend) polygon(pts [3][2]float64, c diagram.Color) {
	fmt.Fprintf(&b.buf, `  <polygon points="%s,%s %s,%s %s,%s" fill="%s"%s/>`+"\n",
		num(pts[0][0]), num(pts[0][1]), num(pts[1][0]), num(pts[1][1]), num(pts[2][0]), num(pts[2][1]),
		c.Hex(), opacityAttr("fill", c.A))
}

// Text writes a single line anchored at a baseline point.
func (b *Backend) Text(op render.TextOp) error {
	if err := b.ready(); err != nil {
		return err
	}

	anchor := "middle"
	switch op.Align {
	case diagram.AlignLeft:
		anchor = "start"
	case diagram.AlignRight:
		anchor = "end"
	}

	var attrs strings.Builder
	if op.Bold {
		attrs.WriteString(` font-weight="bold"`)
	}
	if op.Italic {
		attrs.WriteString(` font-style="italic"`)
	}
	// SVG anchors text at the baseline, matching the raster backend.
	fmt.Fprintf(&b.buf, `  <text x="%s" y="%s" font-size="%s" text-anchor="%s"%s fill="%s"%s>%s</text>`+"\n",
		num(op.X), num(op.Y), num(op.Size*PPI/72), anchor, attrs.String(),
		op.Color.Hex(), opacityAttr("fill", op.Color.A), escapeXML(op.Text))
	return nil
}

// End closes the document and returns the markup.
func (b *Backend) End() ([]byte, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}
	b.buf.WriteString("</svg>\n")
	b.begun = false
	out := make([]byte, b.buf.Len())
	copy(out, b.buf.Bytes())
	b.buf.Reset()
	return out, nil
}

// Close releases nothing; the backend holds no external resources.
func (b *Backend) Close() error {
	b.buf.Reset()
	b.begun = false
	return nil
}

// num formats a coordinate with two decimals, trimming trailing zeros so
// the markup stays compact and byte-stable.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

// opacityAttr renders a fill-opacity or stroke-opacity attribute, omitted
// when fully opaque.
func opacityAttr(kind string, alpha float64) string {
	if alpha >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s-opacity="%s"`, kind, num(alpha))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

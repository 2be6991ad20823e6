package render

import (
	"math"
	"strconv"

	"github.com/archplot/archplot/pkg/diagram"
	"github.com/archplot/archplot/pkg/errors"
	"github.com/archplot/archplot/pkg/geo"
)

// =============================================================================
// Options
// =============================================================================

// DefaultPad is the margin in inches around the tight content box.
const DefaultPad = 0.1

// Options control how a diagram maps onto the backend surface.
type Options struct {
	// NoTight renders the full canvas instead of cropping to the content
	// bounding box.
	NoTight bool `json:"no_tight,omitempty"`

	// Pad is the margin in inches around the tight content box.
	// Zero means DefaultPad. Ignored with NoTight.
	Pad float64 `json:"pad,omitempty"`
}

// SetDefaults fills unset fields. Safe to call multiple times.
func (o *Options) SetDefaults() {
	if o.Pad == 0 {
		o.Pad = DefaultPad
	}
}

// Validate checks option values.
func (o *Options) Validate() error {
	if o.Pad < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "pad must be non-negative, got %g", o.Pad)
	}
	return nil
}

// =============================================================================
// Render
// =============================================================================

// Render walks the diagram in painting order against the backend and
// returns the encoded artifact. The backend is not closed; the caller owns
// its lifecycle.
func Render(d *diagram.Diagram, b Backend, opts Options) ([]byte, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := d.Canvas()
	view := c.Rect()
	if !opts.NoTight {
		cb, err := ContentBounds(d)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "content bounds")
		}
		// Pad is in inches; convert per axis through the canvas scale.
		padX := opts.Pad * (c.XMax - c.XMin) / c.Width
		padY := opts.Pad * (c.YMax - c.YMin) / c.Height
		view = geo.Rect{
			X: cb.X - padX,
			Y: cb.Y - padY,
			W: cb.W + 2*padX,
			H: cb.H + 2*padY,
		}
	}

	t := NewTransform(c, view, b.PPI())
	w, h := t.Size()
	if err := b.Begin(Surface{Width: w, Height: h, Background: c.Background}); err != nil {
		return nil, err
	}

	if c.ShowAxes {
		if err := drawGrid(b, t, c); err != nil {
			return nil, err
		}
	}

	for _, el := range d.Elements() {
		var err error
		switch {
		case el.Shape != nil:
			err = drawShape(b, t, el.Shape)
		case el.Connector != nil:
			err = drawConnector(b, t, el.Connector)
		default:
			err = drawAnnotation(b, t, el.Annotation)
		}
		if err != nil {
			return nil, err
		}
	}

	return b.End()
}

// =============================================================================
// Element Painters
// =============================================================================

func drawShape(b Backend, t Transform, s *diagram.Shape) error {
	x, y, w, h := t.Rect(s.Rect())
	op := RectOp{
		X: x, Y: y, W: w, H: h,
		Radius:      t.RadiusPx(s.CornerRadius),
		Fill:        s.Fill.Mul(s.Opacity),
		Stroke:      s.Stroke.Mul(s.Opacity),
		StrokeWidth: t.PtPx(s.StrokeWidth),
	}
	if err := b.Rect(op); err != nil {
		return err
	}
	if s.Label == "" {
		return nil
	}

	block, err := measureBlock(s.Label, s.Font)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "measure label")
	}
	cx, cy := t.Point(s.Center)
	wPx, hPx := t.PtPx(block.width()), t.PtPx(block.height())
	return drawLines(b, t, block, cx-wPx/2, cy-hPx/2, wPx, diagram.AlignCenter, s.Font)
}

func drawConnector(b Backend, t Transform, c *diagram.Connector) error {
	x1, y1 := t.Point(c.From)
	x2, y2 := t.Point(c.To)

	var dash []float64
	if len(c.Dash) > 0 {
		dash = make([]float64, len(c.Dash))
		for i, v := range c.Dash {
			dash[i] = t.PtPx(v)
		}
	}

	return b.Line(LineOp{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Color:      c.Color.Mul(c.Opacity),
		Width:      t.PtPx(c.Width),
		Dash:       dash,
		ArrowStart: c.ArrowAtStart(),
		ArrowEnd:   c.ArrowAtEnd(),
		ArrowSize:  t.PtPx(c.ArrowSize),
	})
}

// textBoxEdge is the stroke color of annotation boxes, matching the thin
// dark edge plotting toolkits put on text bboxes.
var textBoxEdge = diagram.Color{A: 1}

func drawAnnotation(b Backend, t Transform, a *diagram.Annotation) error {
	block, err := measureBlock(a.Text, a.Font)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "measure annotation")
	}

	ax, ay := t.Point(a.Anchor)
	wPx, hPx := t.PtPx(block.width()), t.PtPx(block.height())
	left := blockLeft(ax, wPx, a.HAlign)
	top := blockTop(ay, hPx, a.VAlign)

	if a.Box != nil {
		pad := t.PtPx(a.Box.Pad)
		op := RectOp{
			X: left - pad, Y: top - pad,
			W: wPx + 2*pad, H: hPx + 2*pad,
			Radius:      t.PtPx(a.Box.CornerRadius),
			Fill:        a.Box.Fill.Mul(a.Box.Opacity),
			Stroke:      textBoxEdge.Mul(a.Box.Opacity),
			StrokeWidth: t.PtPx(1),
		}
		if err := b.Rect(op); err != nil {
			return err
		}
	}

	return drawLines(b, t, block, left, top, wPx, a.HAlign, a.Font)
}

// blockLeft returns the pixel x of the block's left edge for an anchor x.
func blockLeft(ax, w float64, ha diagram.Align) float64 {
	switch ha {
	case diagram.AlignLeft:
		return ax
	case diagram.AlignRight:
		return ax - w
	default:
		return ax - w/2
	}
}

// blockTop returns the pixel y of the block's top edge for an anchor y.
// Pixel y grows downward.
func blockTop(ay, h float64, va diagram.VAlign) float64 {
	switch va {
	case diagram.VAlignTop:
		return ay
	case diagram.VAlignBottom:
		return ay - h
	default:
		return ay - h/2
	}
}

// drawLines paints the lines of a measured block. Lines align within the
// block per ha; each line anchors at the block's left/center/right edge.
func drawLines(b Backend, t Transform, block textBlock, left, top, w float64, ha diagram.Align, f diagram.Font) error {
	x := left
	switch ha {
	case diagram.AlignCenter:
		x = left + w/2
	case diagram.AlignRight:
		x = left + w
	}

	y := top + t.PtPx(block.ascent)
	for _, line := range block.lines {
		if line != "" {
			op := TextOp{
				X: x, Y: y,
				Text:   line,
				Align:  ha,
				Size:   f.Size,
				Bold:   f.Bold,
				Italic: f.Italic,
				Color:  f.Color,
			}
			if err := b.Text(op); err != nil {
				return err
			}
		}
		y += t.PtPx(block.gap)
	}
	return nil
}

// =============================================================================
// Authoring Grid
// =============================================================================

var (
	gridLine  = diagram.Color{R: 0.85, G: 0.85, B: 0.85, A: 1}
	gridLabel = diagram.Color{R: 0.45, G: 0.45, B: 0.45, A: 1}
)

// drawGrid paints unit gridlines and coordinate labels over the canvas
// range. Authoring aid only; labels near the crop edge may be cut off
// under a tight view.
func drawGrid(b Backend, t Transform, c diagram.Canvas) error {
	width := t.PtPx(0.5)

	for x := math.Ceil(c.XMin); x <= c.XMax; x++ {
		px := t.X(x)
		err := b.Line(LineOp{X1: px, Y1: t.Y(c.YMax), X2: px, Y2: t.Y(c.YMin), Color: gridLine, Width: width})
		if err != nil {
			return err
		}
		err = b.Text(TextOp{
			X: px, Y: t.Y(c.YMin) + t.PtPx(9),
			Text:  strconv.FormatFloat(x, 'g', -1, 64),
			Align: diagram.AlignCenter,
			Size:  7, Color: gridLabel,
		})
		if err != nil {
			return err
		}
	}

	for y := math.Ceil(c.YMin); y <= c.YMax; y++ {
		py := t.Y(y)
		err := b.Line(LineOp{X1: t.X(c.XMin), Y1: py, X2: t.X(c.XMax), Y2: py, Color: gridLine, Width: width})
		if err != nil {
			return err
		}
		err = b.Text(TextOp{
			X: t.X(c.XMin) - t.PtPx(3), Y: py + t.PtPx(2.5),
			Text:  strconv.FormatFloat(y, 'g', -1, 64),
			Align: diagram.AlignRight,
			Size:  7, Color: gridLabel,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

package render

import (
	"math"

	"github.com/archplot/archplot/pkg/diagram"
	"github.com/archplot/archplot/pkg/geo"
)

// ContentBounds returns the data-unit bounding box of everything the
// diagram draws: shape extents with stroke overhang, chip labels, connector
// lines with arrowheads, and annotation text blocks with their boxes.
//
// Point-unit extents (strokes, text, pads) are converted to data units
// through the canvas physical size, so the box is exact for the raster
// backend. An empty diagram falls back to the full canvas rectangle.
func ContentBounds(d *diagram.Diagram) (geo.Rect, error) {
	c := d.Canvas()
	if d.Empty() {
		return c.Rect(), nil
	}

	// Data units per point, per axis.
	upX := (c.XMax - c.XMin) / (c.Width * 72)
	upY := (c.YMax - c.YMin) / (c.Height * 72)

	var b geo.Bounds
	for _, s := range d.Shapes() {
		half := s.StrokeWidth / 2
		r := s.Rect()
		b.AddRect(geo.Rect{
			X: r.X - half*upX,
			Y: r.Y - half*upY,
			W: r.W + 2*half*upX,
			H: r.H + 2*half*upY,
		})
		if s.Label != "" {
			block, err := measureBlock(s.Label, s.Font)
			if err != nil {
				return geo.Rect{}, err
			}
			b.AddRect(blockRect(block, s.Center, diagram.AlignCenter, diagram.VAlignCenter, 0, upX, upY))
		}
	}

	for _, cn := range d.Connectors() {
		// Arrowheads flare past the line by less than their edge length;
		// the full size is a safe margin for both ends.
		margin := cn.Width / 2
		if cn.ArrowAtStart() || cn.ArrowAtEnd() {
			margin = math.Max(margin, cn.ArrowSize)
		}
		for _, p := range []geo.Point{cn.From, cn.To} {
			b.AddRect(geo.Rect{
				X: p.X - margin*upX,
				Y: p.Y - margin*upY,
				W: 2 * margin * upX,
				H: 2 * margin * upY,
			})
		}
	}

	for _, a := range d.Annotations() {
		block, err := measureBlock(a.Text, a.Font)
		if err != nil {
			return geo.Rect{}, err
		}
		pad := 0.0
		if a.Box != nil {
			pad = a.Box.Pad
		}
		b.AddRect(blockRect(block, a.Anchor, a.HAlign, a.VAlign, pad, upX, upY))
	}

	return b.Rect(), nil
}

// blockRect returns the data-unit rectangle covered by a text block
// anchored at p, including pad points on every side.
func blockRect(block textBlock, p geo.Point, ha diagram.Align, va diagram.VAlign, pad, upX, upY float64) geo.Rect {
	w := (block.width() + 2*pad) * upX
	h := (block.height() + 2*pad) * upY

	var x float64
	switch ha {
	case diagram.AlignLeft:
		x = p.X - pad*upX
	case diagram.AlignRight:
		x = p.X - w + pad*upX
	default:
		x = p.X - w/2
	}

	var y float64
	switch va {
	case diagram.VAlignTop:
		y = p.Y - h + pad*upY
	case diagram.VAlignBottom:
		y = p.Y - pad*upY
	default:
		y = p.Y - h/2
	}

	return geo.Rect{X: x, Y: y, W: w, H: h}
}

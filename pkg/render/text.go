package render

import (
	"github.com/archplot/archplot/pkg/diagram"
	"github.com/archplot/archplot/pkg/fonts"
)

// textBlock is a measured multi-line text layout. All values are in points.
type textBlock struct {
	lines   []string
	widths  []float64
	ascent  float64
	descent float64
	gap     float64 // baseline-to-baseline distance
}

// measureBlock splits text on newlines and measures every line with the
// font the raster backend draws with.
func measureBlock(text string, f diagram.Font) (textBlock, error) {
	lines := diagram.Lines(text)
	tb := textBlock{
		lines:  lines,
		widths: make([]float64, len(lines)),
		gap:    diagram.DefaultLineSpacing * f.Size,
	}
	for i, line := range lines {
		m, err := fonts.Measure(line, f.Size, f.Bold, f.Italic)
		if err != nil {
			return textBlock{}, err
		}
		tb.widths[i] = m.Width
		tb.ascent = m.Ascent
		tb.descent = m.Descent
	}
	return tb, nil
}

// width returns the widest line in points.
func (b textBlock) width() float64 {
	var w float64
	for _, lw := range b.widths {
		if lw > w {
			w = lw
		}
	}
	return w
}

// height returns the block height in points: one line of ascent and
// descent plus the baseline gaps between lines.
func (b textBlock) height() float64 {
	return b.ascent + b.descent + float64(len(b.lines)-1)*b.gap
}

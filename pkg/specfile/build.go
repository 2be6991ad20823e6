package specfile

import (
	"fmt"

	"github.com/archplot/archplot/pkg/diagram"
	"github.com/archplot/archplot/pkg/geo"
)

// Build turns a decoded spec into a validated diagram. Validation is the
// diagram package's: canvas ranges, element bounds, connector kinds,
// colors. Errors are wrapped with the index of the offending element, so
// "chip 3" points at the fourth entry of the chips list.
func Build(s Spec) (*diagram.Diagram, error) {
	bg, err := parseColor(s.Canvas.Background)
	if err != nil {
		return nil, fmt.Errorf("canvas background: %w", err)
	}

	d, err := diagram.New(diagram.Canvas{
		Width:      s.Canvas.Width,
		Height:     s.Canvas.Height,
		XMin:       s.Canvas.XMin,
		XMax:       s.Canvas.XMax,
		YMin:       s.Canvas.YMin,
		YMax:       s.Canvas.YMax,
		Background: bg,
		ShowAxes:   s.Canvas.ShowAxes,
	})
	if err != nil {
		return nil, err
	}

	for i, c := range s.Containers {
		style, err := shapeStyle(c.Fill, c.Stroke, c.StrokeWidth, c.Opacity, c.CornerRadius, diagram.Font{}, c.Layer)
		if err != nil {
			return nil, fmt.Errorf("container %d: %w", i, err)
		}
		if err := d.AddContainer(c.X, c.Y, c.Width, c.Height, style); err != nil {
			return nil, fmt.Errorf("container %d: %w", i, err)
		}
	}

	for i, c := range s.Chips {
		fontColor, err := parseColor(c.FontColor)
		if err != nil {
			return nil, fmt.Errorf("chip %d: %w", i, err)
		}
		font := diagram.Font{Size: c.FontSize, Bold: c.Bold, Italic: c.Italic, Color: fontColor}
		style, err := shapeStyle(c.Fill, c.Stroke, c.StrokeWidth, c.Opacity, c.CornerRadius, font, c.Layer)
		if err != nil {
			return nil, fmt.Errorf("chip %d: %w", i, err)
		}
		if err := d.AddChip(c.X, c.Y, c.Width, c.Height, c.Label, style); err != nil {
			return nil, fmt.Errorf("chip %d: %w", i, err)
		}
	}

	for i, c := range s.Connectors {
		color, err := parseColor(c.Color)
		if err != nil {
			return nil, fmt.Errorf("connector %d: %w", i, err)
		}
		style := diagram.ConnectorStyle{
			Color:     color,
			Width:     c.Width,
			Dash:      c.Dash,
			Arrows:    diagram.ArrowMode(c.Arrows),
			ArrowSize: c.ArrowSize,
			Opacity:   c.Opacity,
			Layer:     c.Layer,
		}
		from := geo.Pt(c.From.X, c.From.Y)
		to := geo.Pt(c.To.X, c.To.Y)
		if err := d.AddConnector(from, to, diagram.ConnectorKind(c.Kind), style); err != nil {
			return nil, fmt.Errorf("connector %d: %w", i, err)
		}
	}

	for i, a := range s.Annotations {
		color, err := parseColor(a.Color)
		if err != nil {
			return nil, fmt.Errorf("annotation %d: %w", i, err)
		}
		style := diagram.AnnotationStyle{
			HAlign: diagram.Align(a.Align),
			VAlign: diagram.VAlign(a.VAlign),
			Font:   diagram.Font{Size: a.Size, Bold: a.Bold, Italic: a.Italic, Color: color},
			Layer:  a.Layer,
		}
		if a.Box != nil {
			fill, err := parseColor(a.Box.Fill)
			if err != nil {
				return nil, fmt.Errorf("annotation %d box: %w", i, err)
			}
			style.Box = &diagram.TextBox{
				Fill:         fill,
				Opacity:      a.Box.Opacity,
				Pad:          a.Box.Pad,
				CornerRadius: a.Box.CornerRadius,
			}
		}
		if err := d.AddAnnotation(a.X, a.Y, a.Text, style); err != nil {
			return nil, fmt.Errorf("annotation %d: %w", i, err)
		}
	}

	return d, nil
}

func shapeStyle(fill, stroke string, strokeWidth, opacity, radius float64, font diagram.Font, layer int) (diagram.ShapeStyle, error) {
	f, err := parseColor(fill)
	if err != nil {
		return diagram.ShapeStyle{}, err
	}
	s, err := parseColor(stroke)
	if err != nil {
		return diagram.ShapeStyle{}, err
	}
	return diagram.ShapeStyle{
		Fill:         f,
		Stroke:       s,
		StrokeWidth:  strokeWidth,
		Opacity:      opacity,
		CornerRadius: radius,
		Font:         font,
		Layer:        layer,
	}, nil
}

// parseColor treats the empty string as unset, mapping it to the zero
// Color so the diagram package's defaults apply.
func parseColor(s string) (diagram.Color, error) {
	if s == "" {
		return diagram.Color{}, nil
	}
	return diagram.ParseColor(s)
}

package diagram

import (
	"github.com/archplot/archplot/pkg/errors"
	"github.com/archplot/archplot/pkg/geo"
)

// =============================================================================
// Connector Kinds - Single Source of Truth
// =============================================================================

// ConnectorKind tags a connector with its semantic meaning. The kind is
// machine readable and drives the default styling; explicit style fields
// override it but never change the kind itself.
type ConnectorKind string

// Connector kinds.
const (
	// KindFlow is an ordinary data or control flow edge.
	KindFlow ConnectorKind = "flow"
	// KindCoupling marks an undesirable tight coupling between components.
	KindCoupling ConnectorKind = "coupling"
	// KindIPC is a hop across an inter-process communication interface.
	KindIPC ConnectorKind = "ipc"
	// KindExternal connects a component to an external system or store.
	KindExternal ConnectorKind = "external"
	// KindBoundary is a process or deployment divider, drawn as a dashed
	// line without arrowheads.
	KindBoundary ConnectorKind = "boundary"
)

// ArrowMode selects which connector ends carry arrowheads.
// The zero value defers to the connector kind's default.
type ArrowMode string

// Arrow modes.
const (
	ArrowDefault ArrowMode = ""
	ArrowNone    ArrowMode = "none"
	ArrowEnd     ArrowMode = "end"
	ArrowStart   ArrowMode = "start"
	ArrowBoth    ArrowMode = "both"
)

// connectorDefaults is the per-kind default styling.
type connectorDefaults struct {
	color  Color
	width  float64 // points
	dash   []float64
	arrows ArrowMode
}

var kindDefaults = map[ConnectorKind]connectorDefaults{
	KindFlow:     {color: MustColor("blue"), width: 1, arrows: ArrowEnd},
	KindCoupling: {color: MustColor("red"), width: 2, arrows: ArrowEnd},
	KindIPC:      {color: MustColor("green"), width: 3, arrows: ArrowEnd},
	KindExternal: {color: MustColor("gray"), width: 1, arrows: ArrowEnd},
	KindBoundary: {color: MustColor("red"), width: 3, dash: []float64{6, 3}, arrows: ArrowNone},
}

// ValidConnectorKind reports whether k is a known kind.
func ValidConnectorKind(k ConnectorKind) bool {
	_, ok := kindDefaults[k]
	return ok
}

// =============================================================================
// Connector
// =============================================================================

// Connector is a straight line between two absolute points. Endpoints are
// rendered verbatim: no shrinking toward shapes, no rerouting.
type Connector struct {
	From geo.Point
	To   geo.Point
	Kind ConnectorKind

	Color     Color
	Width     float64   // points
	Dash      []float64 // points, on/off pairs; nil means solid
	Arrows    ArrowMode
	ArrowSize float64 // points
	Opacity   float64

	Layer int
	seq   int
}

// ConnectorStyle carries optional overrides of the kind defaults.
type ConnectorStyle struct {
	Color     Color     `json:"color,omitempty"`
	Width     float64   `json:"width,omitempty"`      // points
	Dash      []float64 `json:"dash,omitempty"`       // points
	Arrows    ArrowMode `json:"arrows,omitempty"`     //
	ArrowSize float64   `json:"arrow_size,omitempty"` // points
	Opacity   float64   `json:"opacity,omitempty"`
	Layer     int       `json:"layer,omitempty"`
}

// ArrowAtStart reports whether an arrowhead is drawn at From.
func (c *Connector) ArrowAtStart() bool {
	return c.Arrows == ArrowStart || c.Arrows == ArrowBoth
}

// ArrowAtEnd reports whether an arrowhead is drawn at To.
func (c *Connector) ArrowAtEnd() bool {
	return c.Arrows == ArrowEnd || c.Arrows == ArrowBoth
}

// Seq returns the global insertion index.
func (c *Connector) Seq() int { return c.seq }

// newConnector resolves kind defaults and validates endpoints.
func newConnector(cv *Canvas, from, to geo.Point, kind ConnectorKind, style ConnectorStyle) (Connector, error) {
	def, ok := kindDefaults[kind]
	if !ok {
		return Connector{}, errors.New(errors.ErrCodeInvalidConnector, "unknown connector kind %q", kind)
	}
	if from == to {
		return Connector{}, errors.New(errors.ErrCodeInvalidConnector,
			"connector endpoints coincide at (%g, %g)", from.X, from.Y)
	}
	for _, p := range []geo.Point{from, to} {
		if !cv.Contains(p) {
			return Connector{}, errors.New(errors.ErrCodeOutOfBounds,
				"connector endpoint (%g, %g) outside canvas range [%g, %g] x [%g, %g]",
				p.X, p.Y, cv.XMin, cv.XMax, cv.YMin, cv.YMax)
		}
	}

	c := Connector{
		From:      from,
		To:        to,
		Kind:      kind,
		Color:     style.Color,
		Width:     style.Width,
		Dash:      style.Dash,
		Arrows:    style.Arrows,
		ArrowSize: style.ArrowSize,
		Opacity:   style.Opacity,
		Layer:     style.Layer,
	}
	if c.Color.IsZero() {
		c.Color = def.color
	}
	if c.Width == 0 {
		c.Width = def.width
	}
	if c.Dash == nil {
		c.Dash = def.dash
	}
	if c.Arrows == ArrowDefault {
		c.Arrows = def.arrows
	}
	if c.ArrowSize == 0 {
		c.ArrowSize = DefaultArrowSize
	}
	if c.Opacity == 0 {
		c.Opacity = DefaultOpacity
	}
	return c, nil
}

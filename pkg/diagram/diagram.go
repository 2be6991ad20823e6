package diagram

import (
	"slices"

	"github.com/archplot/archplot/pkg/errors"
	"github.com/archplot/archplot/pkg/geo"
)

// =============================================================================
// Phases
// =============================================================================

// Phase is a diagram lifecycle state.
type Phase string

// Diagram phases. Exported is terminal.
const (
	PhaseConfiguring Phase = "configuring"
	PhasePopulating  Phase = "populating"
	PhaseExported    Phase = "exported"
)

// =============================================================================
// Diagram
// =============================================================================

// Diagram is one canvas plus the ordered elements drawn on it.
// Construct with New, populate with the Add methods, then hand it to the
// export package. Diagrams are single use: a successful or failed export
// attempt seals the diagram permanently.
//
// Diagram is not safe for concurrent use.
type Diagram struct {
	canvas      Canvas
	shapes      []Shape
	connectors  []Connector
	annotations []Annotation

	phase Phase
	seq   int
}

// New validates the canvas and returns an empty diagram in the
// Configuring phase.
func New(c Canvas) (*Diagram, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.SetDefaults()
	return &Diagram{canvas: c, phase: PhaseConfiguring}, nil
}

// Canvas returns the diagram's canvas.
func (d *Diagram) Canvas() Canvas { return d.canvas }

// Phase returns the current lifecycle phase.
func (d *Diagram) Phase() Phase { return d.phase }

// Exported reports whether the diagram has been sealed by an export attempt.
func (d *Diagram) Exported() bool { return d.phase == PhaseExported }

// checkPopulatable rejects mutation after export and advances
// Configuring to Populating on the first element.
func (d *Diagram) checkPopulatable() error {
	if d.phase == PhaseExported {
		return errors.New(errors.ErrCodeDiagramExported, "diagram already exported")
	}
	d.phase = PhasePopulating
	return nil
}

// nextSeq returns the global insertion index for the next element.
func (d *Diagram) nextSeq() int {
	s := d.seq
	d.seq++
	return s
}

// =============================================================================
// Populate Operations
// =============================================================================

// AddContainer places an unlabeled grouping rectangle centered at (x, y)
// with the given extent in data units.
func (d *Diagram) AddContainer(x, y, w, h float64, style ShapeStyle) error {
	if err := d.checkPopulatable(); err != nil {
		return err
	}
	s, err := newShape(KindContainer, &d.canvas, x, y, w, h, "", style)
	if err != nil {
		return err
	}
	s.seq = d.nextSeq()
	d.shapes = append(d.shapes, s)
	return nil
}

// AddChip places a labeled component rectangle centered at (x, y).
// The label is drawn centered in the chip and is not auto-fitted: text wider
// than the chip overflows its edges.
func (d *Diagram) AddChip(x, y, w, h float64, label string, style ShapeStyle) error {
	if err := d.checkPopulatable(); err != nil {
		return err
	}
	s, err := newShape(KindChip, &d.canvas, x, y, w, h, label, style)
	if err != nil {
		return err
	}
	s.seq = d.nextSeq()
	d.shapes = append(d.shapes, s)
	return nil
}

// AddConnector draws a straight line from from to to with the styling
// implied by kind. Style fields override the kind defaults.
func (d *Diagram) AddConnector(from, to geo.Point, kind ConnectorKind, style ConnectorStyle) error {
	if err := d.checkPopulatable(); err != nil {
		return err
	}
	c, err := newConnector(&d.canvas, from, to, kind, style)
	if err != nil {
		return err
	}
	c.seq = d.nextSeq()
	d.connectors = append(d.connectors, c)
	return nil
}

// AddAnnotation places a free text block anchored at (x, y).
func (d *Diagram) AddAnnotation(x, y float64, text string, style AnnotationStyle) error {
	if err := d.checkPopulatable(); err != nil {
		return err
	}
	a, err := newAnnotation(&d.canvas, x, y, text, style)
	if err != nil {
		return err
	}
	a.seq = d.nextSeq()
	d.annotations = append(d.annotations, a)
	return nil
}

// MarkExported seals the diagram. The export package calls this before any
// filesystem work so that export stays single-shot even when the write
// fails. Returns DIAGRAM_EXPORTED if the diagram is already sealed.
func (d *Diagram) MarkExported() error {
	if d.phase == PhaseExported {
		return errors.New(errors.ErrCodeDiagramExported, "diagram already exported")
	}
	d.phase = PhaseExported
	return nil
}

// =============================================================================
// Element Access
// =============================================================================

// Shapes returns the shapes in insertion order. Callers must not modify
// the returned slice.
func (d *Diagram) Shapes() []Shape { return d.shapes }

// Connectors returns the connectors in insertion order.
func (d *Diagram) Connectors() []Connector { return d.connectors }

// Annotations returns the annotations in insertion order.
func (d *Diagram) Annotations() []Annotation { return d.annotations }

// Empty reports whether the diagram has no elements.
func (d *Diagram) Empty() bool {
	return len(d.shapes) == 0 && len(d.connectors) == 0 && len(d.annotations) == 0
}

// Element points at exactly one diagram element. Renderers switch on the
// single non-nil field.
type Element struct {
	Shape      *Shape
	Connector  *Connector
	Annotation *Annotation
}

// layerKey returns the (layer, insertion index) sort key.
func (e Element) layerKey() (int, int) {
	switch {
	case e.Shape != nil:
		return e.Shape.Layer, e.Shape.seq
	case e.Connector != nil:
		return e.Connector.Layer, e.Connector.seq
	default:
		return e.Annotation.Layer, e.Annotation.seq
	}
}

// Elements returns all elements in painting order: ascending Layer, ties
// broken by insertion order. With all layers at zero this is exactly the
// order the Add calls were made in.
func (d *Diagram) Elements() []Element {
	els := make([]Element, 0, len(d.shapes)+len(d.connectors)+len(d.annotations))
	for i := range d.shapes {
		els = append(els, Element{Shape: &d.shapes[i]})
	}
	for i := range d.connectors {
		els = append(els, Element{Connector: &d.connectors[i]})
	}
	for i := range d.annotations {
		els = append(els, Element{Annotation: &d.annotations[i]})
	}
	slices.SortStableFunc(els, func(a, b Element) int {
		al, as := a.layerKey()
		bl, bs := b.layerKey()
		if al != bl {
			return al - bl
		}
		return as - bs
	})
	return els
}

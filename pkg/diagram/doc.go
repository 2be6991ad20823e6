// Package diagram defines the declarative model for architecture block
// diagrams: a fixed canvas populated with shapes, connectors, and text
// annotations, rendered elsewhere to PNG or SVG.
//
// # Overview
//
// A diagram is data, not drawing calls. Programs (or spec files, see the
// specfile package) describe every element with absolute coordinates and
// explicit styling; nothing is laid out automatically. This keeps diagrams
// reproducible: the same model always renders to the same image.
//
// The model consists of:
//
//   - Canvas: physical size in inches plus the data coordinate ranges that
//     element positions are expressed in
//   - Shape: a rounded rectangle, either a large grouping Container or a
//     small labeled Chip
//   - Connector: a straight line between two absolute points with optional
//     arrowheads and a semantic kind (flow, coupling, ipc, external, boundary)
//   - Annotation: a free text block, optionally boxed, anchored with
//     horizontal and vertical alignment
//
// # Coordinates and Units
//
// Element positions and extents are in data units within the canvas ranges.
// The y axis grows upward. Stroke widths, font sizes, dash patterns, and
// arrowhead sizes are in typographic points (1/72 inch) so they keep their
// visual weight regardless of the data scale, matching how plotting toolkits
// treat line widths.
//
// # Z-Order
//
// Every element carries an integer Layer. Painting order is (Layer,
// insertion index), so elements on the same layer occlude in exactly the
// order they were added. Leaving Layer at zero everywhere reduces to plain
// insertion-order painting.
//
// # Lifecycle
//
// A Diagram moves through three phases:
//
//	Configuring → Populating → Exported
//
// New validates the canvas and returns a diagram in Configuring. The first
// successful Add call moves it to Populating. MarkExported (called by the
// export package before it touches the filesystem) moves it to Exported,
// which is terminal: any further Add or export attempt fails with the
// DIAGRAM_EXPORTED error code. Export is therefore single-shot per diagram
// even when the filesystem write fails.
//
// # Validation
//
// All validation happens eagerly at Add time and fails fast with structured
// errors (see the errors package): non-positive extents, empty labels or
// annotation text, degenerate connectors, and element positions outside the
// canvas ranges are all rejected with descriptive messages. Shape extents
// may legally overhang the canvas edge; only the anchor position is range
// checked. Labels are never auto-fitted to their shapes — sizing text to fit
// is the author's responsibility.
package diagram

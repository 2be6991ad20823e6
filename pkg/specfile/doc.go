// Package specfile reads and writes declarative diagram descriptions.
//
// # Overview
//
// A spec file is the data form of a diagram: one canvas plus flat lists of
// containers, chips, connectors, and annotations. The format exists so
// that:
//
//   - Diagrams live in version control as reviewable text, not code
//   - The render pipeline can cache artifacts keyed on the normalized spec
//   - External tools can generate diagrams without linking this module
//   - Round-trip preservation: decode, build, re-encode identically
//
// Both JSON and TOML encodings are supported; [Load] picks the decoder
// from the file extension. JSON is the normalized form that `render -f
// json` re-emits.
//
// # Format
//
//	{
//	  "canvas": {"width": 14, "height": 10, "x_max": 10, "y_max": 10},
//	  "containers": [
//	    {"x": 5, "y": 4.75, "width": 9, "height": 7.5, "fill": "#4ecdc4", "opacity": 0.3}
//	  ],
//	  "chips": [
//	    {"x": 3.5, "y": 5, "width": 0.8, "height": 0.3, "label": "AuditFile"}
//	  ],
//	  "connectors": [
//	    {"from": {"x": 5, "y": 6}, "to": {"x": 5, "y": 5.3}, "kind": "coupling"}
//	  ],
//	  "annotations": [
//	    {"x": 5, "y": 9.5, "text": "Current Architecture", "size": 18, "bold": true}
//	  ]
//	}
//
// The same diagram in TOML:
//
//	[canvas]
//	width = 14.0
//	height = 10.0
//	x_max = 10.0
//	y_max = 10.0
//
//	[[containers]]
//	x = 5.0
//	y = 4.75
//	width = 9.0
//	height = 7.5
//	fill = "#4ecdc4"
//	opacity = 0.3
//
//	[[connectors]]
//	from = { x = 5.0, y = 6.0 }
//	to = { x = 5.0, y = 5.3 }
//	kind = "coupling"
//
// # Element Order
//
// Elements append to the diagram in listed order: containers first, then
// chips, connectors, and annotations. That matches the painting discipline
// of hand-written diagram programs; use the layer field to interleave
// explicitly when the grouping order is not the stacking order you want.
//
// # Colors
//
// All color fields take CSS color strings: hex ("#ff6b35") or named
// ("lightblue"). Empty means the package default for that element.
//
// # Validation
//
// Decoding is structural only. [Build] runs the full diagram validation:
// canvas ranges, element bounds, connector kinds, color parsing. Errors
// carry the index of the offending element.
package specfile

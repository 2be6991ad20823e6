// Package pkg provides the core libraries for Archplot diagram rendering.
//
// # Overview
//
// Archplot renders static architecture diagrams from declarative specs:
// labeled boxes, nested components, semantic connectors, and free-text
// annotations placed on a fixed canvas. The pkg directory is organized
// into four main areas:
//
//  1. [diagram] - Domain model (canvas, shapes, connectors, annotations)
//  2. [render] - Painting-order traversal and drawing backends (PNG, SVG)
//  3. [specfile] - Declarative spec files (TOML/JSON) and diagram building
//  4. [pipeline] - Orchestration (load → build → render → export)
//
// # Architecture
//
// The typical data flow through Archplot:
//
//	Spec file (TOML/JSON) or Go code
//	         ↓
//	    [specfile] package (decode + validate + build)
//	         ↓
//	    [diagram] package (populated model, insertion-ordered)
//	         ↓
//	    [render] package (paint to a backend)
//	         ↓
//	    [export] package (seal, encode, atomic write)
//	         ↓
//	    PNG/SVG/JSON output
//
// # Quick Start
//
// Load a spec and export a PNG:
//
//	import (
//	    "github.com/archplot/archplot/pkg/export"
//	    "github.com/archplot/archplot/pkg/specfile"
//	)
//
//	// 1. Load and validate the spec
//	spec, _ := specfile.Load("architecture.toml")
//
//	// 2. Build the diagram model
//	d, _ := specfile.Build(spec)
//
//	// 3. Render and write atomically (300 DPI, tight crop)
//	_ = export.Write(d, "architecture.png", export.Options{})
//
// Or construct the model directly:
//
//	d, _ := diagram.New(diagram.Canvas{Width: 14, Height: 10, XMax: 10, YMax: 10})
//	_ = d.AddContainer(5, 5, 9, 7.5, diagram.ShapeStyle{})
//	_ = d.AddChip(3, 5, 1.2, 0.5, "api", diagram.ShapeStyle{})
//	data, _ := export.Render(d, export.Options{Format: export.FormatSVG})
//
// # Main Packages
//
// ## Domain Model
//
// [diagram] - The diagram model: a canvas with physical size and data
// coordinate ranges, containers, chips, connectors with semantic kinds,
// and annotations. Diagrams move through a Configuring → Populating →
// Exported lifecycle; exporting seals the diagram permanently.
//
// [geo] - Geometry primitives shared by the model and the renderers:
// points, rectangles, and bounding-box accumulation.
//
// [fonts] - Embedded sans-serif faces (regular, bold, italic, bold
// italic) so raster output is identical on every machine.
//
// ## Rendering
//
// [render] - Walks a diagram in painting order (layer, then insertion
// order) and drives a drawing backend with pixel-space primitives.
// Computes the tight content box for cropped export.
//
//   - [render/raster]: PNG backend on top of fogleman/gg
//   - [render/svg]: SVG backend emitting a standalone document
//
// [export] - Seals the diagram, encodes the artifact (including the PNG
// DPI header), and writes files via temp + rename. Failed exports leave
// no partial artifacts behind.
//
// ## Specs and Orchestration
//
// [specfile] - Declarative spec schema with strict TOML and JSON
// decoders, normalized JSON encoding, and Build to turn a spec into a
// populated diagram.
//
// [pipeline] - Complete pipeline (load → build → render → export) used
// by the CLI and library consumers, with per-artifact caching keyed on
// the normalized spec.
//
// [gallery] - Built-in example diagrams, usable as living documentation
// of the spec format.
//
// ## Infrastructure
//
// [cache] - Content-addressed artifact cache with file-backed and no-op
// implementations plus pluggable key derivation.
//
// [errors] - Coded errors distinguishing configuration mistakes (fail
// fast, descriptive) from export I/O failures (fatal, no retry).
//
// [observability] - Hook interfaces for pipeline and cache events with
// no-op defaults.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Common Workflows
//
// Render one spec to several formats with caching:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    SpecPath: "architecture.toml",
//	    Formats:  []string{"png", "svg"},
//	})
//	_, _ = runner.WriteArtifacts(ctx, "out", "architecture", result.Artifacts)
//
// Render a built-in gallery diagram:
//
//	entry := gallery.Find("current-architecture")
//	d, _ := specfile.Build(entry.Spec())
//	_ = export.Write(d, "current-architecture.png", export.Options{})
//
// Re-render deterministically:
//
//	a, _ := export.Render(mustBuild(spec), export.Options{})
//	b, _ := export.Render(mustBuild(spec), export.Options{})
//	// bytes.Equal(a, b) == true
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/diagram/...      # Specific package
//	go test -run Example           # Examples only
//
// [diagram]: https://pkg.go.dev/github.com/archplot/archplot/pkg/diagram
// [geo]: https://pkg.go.dev/github.com/archplot/archplot/pkg/geo
// [fonts]: https://pkg.go.dev/github.com/archplot/archplot/pkg/fonts
// [render]: https://pkg.go.dev/github.com/archplot/archplot/pkg/render
// [render/raster]: https://pkg.go.dev/github.com/archplot/archplot/pkg/render/raster
// [render/svg]: https://pkg.go.dev/github.com/archplot/archplot/pkg/render/svg
// [export]: https://pkg.go.dev/github.com/archplot/archplot/pkg/export
// [specfile]: https://pkg.go.dev/github.com/archplot/archplot/pkg/specfile
// [pipeline]: https://pkg.go.dev/github.com/archplot/archplot/pkg/pipeline
// [gallery]: https://pkg.go.dev/github.com/archplot/archplot/pkg/gallery
// [cache]: https://pkg.go.dev/github.com/archplot/archplot/pkg/cache
// [errors]: https://pkg.go.dev/github.com/archplot/archplot/pkg/errors
// [observability]: https://pkg.go.dev/github.com/archplot/archplot/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/archplot/archplot/pkg/buildinfo
package pkg

// Package render walks a diagram in painting order and drives a drawing
// backend with resolved pixel-space primitives.
//
// # Overview
//
// The model stays backend agnostic: render converts data coordinates,
// point-unit widths, and text layout into concrete pixel operations, and a
// Backend only has to know how to paint rectangles, lines, and single text
// lines onto a surface. Two backends exist:
//
//   - [raster]: in-process PNG rendering via fogleman/gg
//   - [svg]: hand-emitted SVG markup
//
// Backends report their pixel density with PPI: the raster backend renders
// at the export DPI, the SVG backend at the CSS standard 96 px/inch. All
// geometry flows through a single [Transform], so both backends agree on
// every element position.
//
// # Tight Bounding Box
//
// By default the rendered surface is cropped to the content bounding box
// plus padding instead of the full canvas. The box is computed from the model
// (shape extents, stroke overhang, measured text, arrowheads) and handed to
// the backend as the view rectangle, so cropping never needs a pixel
// post-pass and never clips content. Set NoTight to render the full canvas
// instead; elements overhanging the canvas ranges are then clipped at the
// canvas edge, which is the documented non-tight behavior.
//
// # Determinism
//
// Rendering the same diagram with the same options always produces the same
// bytes: there is no randomness, no timestamps, and text metrics come from
// fonts embedded in the binary.
//
// [raster]: github.com/archplot/archplot/pkg/render/raster
// [svg]: github.com/archplot/archplot/pkg/render/svg
package render

// Package export flattens diagrams to image files.
//
// Write seals the diagram before any rendering or filesystem work, so a
// diagram exports at most once even when the write fails. Artifacts land
// via a temp file in the destination directory followed by a rename; a
// failed export never leaves a partial file behind. The destination
// directory must already exist.
package export

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/archplot/archplot/pkg/diagram"
	"github.com/archplot/archplot/pkg/errors"
	"github.com/archplot/archplot/pkg/render"
	"github.com/archplot/archplot/pkg/render/raster"
	"github.com/archplot/archplot/pkg/render/svg"
)

// =============================================================================
// Formats
// =============================================================================

// Format selects the artifact encoding.
type Format string

const (
	// FormatPNG rasterizes at Options.DPI and stamps the density into a
	// pHYs chunk.
	FormatPNG Format = "png"
	// FormatSVG emits vector markup at 96 pixels per inch.
	FormatSVG Format = "svg"
)

// DefaultDPI is the raster export density.
const DefaultDPI = 300.0

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown export format %q (supported: png, svg)", s)
}

// DetectFormat infers the format from the output path extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer export format from %q (use a .png or .svg path)", path)
}

// Extension returns the file extension for the format, dot included.
func (f Format) Extension() string { return "." + string(f) }

// =============================================================================
// Options
// =============================================================================

// Options configures one export.
type Options struct {
	// Format selects the backend. Write infers it from the path
	// extension when empty.
	Format Format `json:"format,omitempty"`
	// DPI is the raster density. Zero means DefaultDPI. Ignored for SVG.
	DPI float64 `json:"dpi,omitempty"`
	// NoTight disables cropping to the content bounding box.
	NoTight bool `json:"no_tight,omitempty"`
	// Pad is the margin in inches kept around tight-cropped content.
	Pad float64 `json:"pad,omitempty"`
}

// SetDefaults fills zero values.
func (o *Options) SetDefaults() {
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
}

// Validate checks the format is renderable.
func (o *Options) Validate() error {
	switch o.Format {
	case FormatPNG, FormatSVG:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown export format %q (supported: png, svg)", string(o.Format))
}

func backendFor(opts Options) render.Backend {
	if opts.Format == FormatSVG {
		return svg.New()
	}
	return raster.New(opts.DPI)
}

// =============================================================================
// Export
// =============================================================================

// Render seals the diagram and returns the encoded artifact bytes.
// The diagram transitions to Exported before anything is drawn, so a
// second call fails with DIAGRAM_EXPORTED.
func Render(d *diagram.Diagram, opts Options) ([]byte, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := d.MarkExported(); err != nil {
		return nil, err
	}

	b := backendFor(opts)
	defer b.Close()

	data, err := render.Render(d, b, render.Options{NoTight: opts.NoTight, Pad: opts.Pad})
	if err != nil {
		return nil, err
	}
	if opts.Format == FormatPNG {
		return withDPI(data, opts.DPI)
	}
	return data, nil
}

// Write renders the diagram and writes the artifact to path atomically.
// The destination directory must exist; a missing directory surfaces as
// EXPORT_IO with no retry.
func Write(d *diagram.Diagram, path string, opts Options) error {
	if opts.Format == "" {
		f, err := DetectFormat(path)
		if err != nil {
			return err
		}
		opts.Format = f
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	data, err := Render(d, opts)
	if err != nil {
		return err
	}
	return WriteArtifact(path, data)
}

// WriteArtifact writes pre-rendered bytes to path via temp file + rename.
// The pipeline uses it directly on cache hits.
func WriteArtifact(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeExportIO, err, "create temp file in %s", dir)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrap(errors.ErrCodeExportIO, err, "write artifact %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(errors.ErrCodeExportIO, err, "write artifact %s", path)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(errors.ErrCodeExportIO, err, "write artifact %s", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(errors.ErrCodeExportIO, err, "move artifact into place at %s", path)
	}
	return nil
}

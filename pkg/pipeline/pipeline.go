// Package pipeline provides the core diagram pipeline for Archplot.
//
// This package implements the complete load → build → render → export
// pipeline that can be used by CLI and library consumers. By centralizing
// this logic, we ensure consistent behavior across all entry points and
// avoid code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Read a diagram spec from a JSON or TOML file
//  2. Build: Validate the spec and construct the diagram model
//  3. Render: Generate output in various formats (PNG, SVG, JSON)
//  4. Export: Write artifacts to disk with atomic replace semantics
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SpecPath: "architecture.toml",
//	    Formats:  []string{"png", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// Run individual stages:
//
//	// Load only
//	spec, err := runner.Load(ctx, opts)
//
//	// Render with an already-loaded spec
//	artifacts, err := runner.Render(ctx, spec, opts)
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/archplot/archplot/pkg/cache"
	"github.com/archplot/archplot/pkg/export"
	"github.com/archplot/archplot/pkg/specfile"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Consumers
// =============================================================================

const (
	// DefaultDPI is the default raster resolution in pixels per inch.
	// This matches export.DefaultDPI (300) to maintain consistency.
	DefaultDPI = export.DefaultDPI

	// DefaultStem is the artifact filename stem used when neither the spec
	// nor the options provide a name.
	DefaultStem = "diagram"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the diagram pipeline.
// This struct supports JSON serialization for batch runs.
type Options struct {
	// Load options. Exactly one of SpecPath or Spec must be set:
	// SpecPath reads a .json or .toml file, Spec uses an in-memory spec.
	SpecPath string         `json:"spec_path,omitempty"`
	Spec     *specfile.Spec `json:"spec,omitempty"`

	// Name overrides the diagram name used for artifact filenames and
	// pipeline events. Defaults to the spec's name, then the spec file's
	// basename, then DefaultStem.
	Name string `json:"name,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	DPI     float64  `json:"dpi,omitempty"`
	NoTight bool     `json:"no_tight,omitempty"`
	Pad     float64  `json:"pad,omitempty"`
	Axes    bool     `json:"axes,omitempty"` // Force coordinate axes on regardless of the spec

	// NoCache bypasses the artifact cache for both reads and writes.
	NoCache bool `json:"no_cache,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Spec is the loaded diagram spec, after option overrides.
	Spec specfile.Spec

	// SpecHash is the content hash of the normalized spec.
	SpecHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount int
	LoadTime     time.Duration
	BuildTime    time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for rendered artifacts.
type CacheInfo struct {
	// Hits records, per format, whether the artifact came from the cache.
	Hits map[string]bool
}

// AllHit reports whether every rendered artifact came from the cache.
func (c CacheInfo) AllHit() bool {
	if len(c.Hits) == 0 {
		return false
	}
	for _, hit := range c.Hits {
		if !hit {
			return false
		}
	}
	return true
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: png, svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading a spec.
func (o *Options) ValidateForLoad() error {
	if o.SpecPath == "" && o.Spec == nil {
		return fmt.Errorf("spec_path or spec is required")
	}
	if o.SpecPath != "" && o.Spec != nil {
		return fmt.Errorf("spec_path and spec are mutually exclusive")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// Stem returns the filename stem for artifacts: the explicit Name, the
// spec's name, the spec file's basename, or DefaultStem, in that order.
func (o *Options) Stem(spec specfile.Spec) string {
	if o.Name != "" {
		return o.Name
	}
	if spec.Name != "" {
		return spec.Name
	}
	if o.SpecPath != "" {
		base := filepath.Base(o.SpecPath)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return DefaultStem
}

// ArtifactKeyOpts returns cache key options for the given format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:  format,
		NoTight: o.NoTight,
		Pad:     o.Pad,
	}
	// DPI only affects raster output; keying it for SVG would fragment
	// the cache with identical entries.
	if format == FormatPNG {
		opts.DPI = o.DPI
	}
	return opts
}

// ExportOptions returns the export options for the given format.
func (o *Options) ExportOptions(format string) export.Options {
	return export.Options{
		Format:  export.Format(format),
		DPI:     o.DPI,
		NoTight: o.NoTight,
		Pad:     o.Pad,
	}
}

package pipeline

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/archplot/archplot/pkg/cache"
	"github.com/archplot/archplot/pkg/export"
	"github.com/archplot/archplot/pkg/observability"
	"github.com/archplot/archplot/pkg/specfile"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → build → render pipeline with caching.
// Artifacts are returned in memory; use WriteArtifacts to persist them.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	spec, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Spec = spec
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ElementCount = spec.ElementCount()

	// Compute spec hash for cache keys and re-export checks
	if specJSON, err := specfile.EncodeJSON(spec); err == nil {
		result.SpecHash = cache.Hash(specJSON)
	}

	r.Logger.Info("loaded spec",
		"name", opts.Stem(spec),
		"elements", result.Stats.ElementCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	// A throwaway build validates the spec before any cache lookups, so an
	// invalid spec fails here even when every artifact is already cached.
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, opts.Stem(spec), result.Stats.ElementCount)
	_, err = specfile.Build(spec)
	result.Stats.BuildTime = time.Since(buildStart)
	observability.Pipeline().OnBuildComplete(ctx, opts.Stem(spec), result.Stats.BuildTime, err)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	r.Logger.Info("built diagram",
		"elements", result.Stats.ElementCount,
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, hits, err := r.RenderWithCacheInfo(ctx, spec, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.Hits = hits

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"cached", result.CacheInfo.AllHit(),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the spec named by the options and emits load events.
func (r *Runner) Load(ctx context.Context, opts Options) (specfile.Spec, error) {
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.SpecPath)
	spec, err := Load(opts)
	observability.Pipeline().OnLoadComplete(ctx, opts.SpecPath, spec.ElementCount(), time.Since(start), err)
	return spec, err
}

// RenderWithCacheInfo renders artifacts with caching and returns per-format
// cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, spec specfile.Spec, opts Options) (map[string][]byte, map[string]bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, nil, err
	}
	r.applyLogger(&opts)

	specJSON, err := specfile.EncodeJSON(spec)
	if err != nil {
		return nil, nil, fmt.Errorf("serialize spec for cache key: %w", err)
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	artifacts := make(map[string][]byte)
	hits := make(map[string]bool)

	for _, format := range opts.Formats {
		// The JSON artifact is the normalized spec itself; caching it
		// would store the key material under its own hash.
		if format == FormatJSON {
			artifacts[format] = specJSON
			hits[format] = false
			continue
		}

		cacheKey := r.Keyer.ArtifactKey(specJSON, opts.ArtifactKeyOpts(format))

		if !opts.NoCache {
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				hits[format] = true
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}

		data, err := RenderFormat(spec, format, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, nil, err
		}
		artifacts[format] = data
		hits[format] = false

		if !opts.NoCache {
			if err := r.Cache.Set(ctx, cacheKey, data, 0); err == nil {
				observability.Cache().OnCacheSet(ctx, "artifact", len(data))
			}
		}
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, hits, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, spec specfile.Spec, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, spec, opts)
	return artifacts, err
}

// WriteArtifacts writes rendered artifacts under dir as stem.<format>,
// using atomic replace semantics. It returns the written paths keyed by
// format. The destination directory must already exist.
func (r *Runner) WriteArtifacts(ctx context.Context, dir, stem string, artifacts map[string][]byte) (map[string]string, error) {
	paths := make(map[string]string, len(artifacts))

	for _, format := range slices.Sorted(maps.Keys(artifacts)) {
		data := artifacts[format]
		path := filepath.Join(dir, stem+"."+format)

		start := time.Now()
		observability.Pipeline().OnExportStart(ctx, path, format)
		err := export.WriteArtifact(path, data)
		observability.Pipeline().OnExportComplete(ctx, path, format, len(data), time.Since(start), err)
		if err != nil {
			return paths, fmt.Errorf("write %s: %w", format, err)
		}
		paths[format] = path

		r.Logger.Info("wrote artifact", "path", path, "bytes", len(data))
	}

	return paths, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

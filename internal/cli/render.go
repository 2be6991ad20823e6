package cli

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archplot/archplot/pkg/pipeline"
	"github.com/archplot/archplot/pkg/specfile"
)

// renderCommand creates the render command for generating diagram artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
	)
	opts := pipeline.Options{DPI: pipeline.DefaultDPI}

	cmd := &cobra.Command{
		Use:   "render [spec-file]",
		Short: "Render a diagram spec to PNG, SVG, or JSON",
		Long: `Render a diagram spec to PNG, SVG, or JSON.

The render command reads a spec file (TOML or JSON), validates it, builds
the diagram, and writes one artifact per requested format next to the spec
file (or to --output).

PNG output is rasterized at 300 DPI by default and cropped to the drawn
content plus a small margin; --no-tight exports the full canvas instead.
Artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SpecPath = args[0]
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.DPI, "dpi", opts.DPI, "raster resolution in dots per inch (png only)")
	cmd.Flags().BoolVar(&opts.NoTight, "no-tight", false, "export the full canvas instead of cropping to content")
	cmd.Flags().Float64Var(&opts.Pad, "pad", 0, "margin around cropped content in inches (default 0.1)")
	cmd.Flags().BoolVar(&opts.Axes, "axes", false, "draw coordinate axes and gridlines")
	cmd.Flags().StringVar(&opts.Name, "name", "", "override the artifact filename stem")
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender executes the pipeline and writes the resulting artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string) error {
	runner, err := c.newRunner(opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	label := opts.SpecPath
	if label == "" {
		label = opts.Name
	}
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", label))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	dir, stem := resolveOutput(output, opts, result.Spec)
	paths, err := runner.WriteArtifacts(ctx, dir, stem, result.Artifacts)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", stem)
	for _, format := range slices.Sorted(maps.Keys(paths)) {
		printFile(paths[format])
	}
	printStats(result.Stats.ElementCount, len(paths), result.CacheInfo.AllHit())
	return nil
}

// resolveOutput derives the artifact directory and filename stem.
// An empty output writes next to the spec file using the diagram's stem.
// An output ending in a known format extension has that extension stripped,
// so "-o out/arch.png -f png,svg" writes out/arch.png and out/arch.svg.
func resolveOutput(output string, opts pipeline.Options, spec specfile.Spec) (dir, stem string) {
	if output == "" {
		return filepath.Dir(opts.SpecPath), opts.Stem(spec)
	}
	if ext := filepath.Ext(output); pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		output = strings.TrimSuffix(output, ext)
	}
	dir, stem = filepath.Split(output)
	if dir == "" {
		dir = "."
	}
	return filepath.Clean(dir), stem
}

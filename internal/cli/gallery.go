package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/archplot/archplot/pkg/gallery"
	"github.com/archplot/archplot/pkg/pipeline"
)

// galleryCommand creates the gallery command group.
func (c *CLI) galleryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse and render the built-in example diagrams",
		Long: `Browse and render the built-in example diagrams.

Without arguments, gallery opens an interactive picker: select a diagram,
select a format, and the artifact is written to the current directory.
Use "gallery list" to print the available diagrams and "gallery render"
to render one directly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGalleryPicker(cmd.Context())
		},
	}

	cmd.AddCommand(c.galleryListCommand())
	cmd.AddCommand(c.galleryRenderCommand())

	return cmd
}

// galleryListCommand creates the "gallery list" subcommand.
func (c *CLI) galleryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in example diagrams",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Gallery"))
			printNewline()
			for _, e := range gallery.All {
				fmt.Printf("  %s  %s\n", StyleHighlight.Render(e.Name), StyleDim.Render(e.Title))
				printDetail("  %s", e.Description)
			}
			printNewline()
			printNextStep("Render one", "archplot gallery render <name>")
			return nil
		},
	}
}

// galleryRenderCommand creates the "gallery render" subcommand.
func (c *CLI) galleryRenderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
	)
	opts := pipeline.Options{DPI: pipeline.DefaultDPI}

	cmd := &cobra.Command{
		Use:       "render [name]",
		Short:     "Render a built-in example diagram",
		Args:      cobra.ExactArgs(1),
		ValidArgs: gallery.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := gallery.Find(args[0])
			if entry == nil {
				return fmt.Errorf("unknown gallery diagram: %q (available: %s)",
					args[0], strings.Join(gallery.Names(), ", "))
			}

			spec := entry.Spec()
			opts.Spec = &spec
			opts.Name = entry.Name
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
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "disable caching")

	return cmd
}

// runGalleryPicker runs the interactive gallery flow.
func (c *CLI) runGalleryPicker(ctx context.Context) error {
	p := tea.NewProgram(NewGalleryListModel(gallery.All))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	gm, ok := finalModel.(GalleryListModel)
	if !ok || gm.Selected == nil {
		printDetail("No selection made")
		return nil
	}
	entry := gm.Selected

	fp := tea.NewProgram(NewFormatListModel())
	formatModel, err := fp.Run()
	if err != nil {
		return err
	}

	fm, ok := formatModel.(FormatListModel)
	if !ok || fm.Selected == "" {
		printDetail("No format selected")
		return nil
	}

	spec := entry.Spec()
	opts := pipeline.Options{
		Spec:    &spec,
		Name:    entry.Name,
		Formats: []string{fm.Selected},
		DPI:     pipeline.DefaultDPI,
	}
	return c.runRender(ctx, opts, "")
}

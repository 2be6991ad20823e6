package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archplot/archplot/pkg/specfile"
)

// validateCommand creates the validate command for checking spec files.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [spec-file]",
		Short: "Validate a diagram spec without rendering",
		Long: `Validate a diagram spec without rendering.

The validate command reads a spec file, checks every element against the
canvas bounds and styling rules, and reports the first problem found.
Nothing is written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
}

// runValidate loads and builds the spec, reporting element counts on success.
func (c *CLI) runValidate(path string) error {
	prog := newProgress(c.Logger)

	spec, err := specfile.Load(path)
	if err != nil {
		printError("Invalid spec")
		return err
	}

	if _, err := specfile.Build(spec); err != nil {
		printError("Invalid spec")
		return err
	}

	prog.done(fmt.Sprintf("Validated %d elements", spec.ElementCount()))

	printSuccess("%s is valid", path)
	if spec.Name != "" {
		printKeyValue("Name", spec.Name)
	}
	printKeyValue("Canvas", fmt.Sprintf("%g x %g in, x %g..%g, y %g..%g",
		spec.Canvas.Width, spec.Canvas.Height,
		spec.Canvas.XMin, spec.Canvas.XMax, spec.Canvas.YMin, spec.Canvas.YMax))
	printDetail("%d containers, %d chips, %d connectors, %d annotations",
		len(spec.Containers), len(spec.Chips), len(spec.Connectors), len(spec.Annotations))
	printNextStep("Render it", "archplot render "+path)
	return nil
}

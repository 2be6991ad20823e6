// Command current-architecture renders the current-architecture gallery
// diagram to docs/analysis/current-architecture.png at 300 DPI.
package main

import (
	"fmt"
	"os"

	"github.com/archplot/archplot/pkg/export"
	"github.com/archplot/archplot/pkg/gallery"
	"github.com/archplot/archplot/pkg/specfile"
)

const outputPath = "docs/analysis/current-architecture.png"

func main() {
	entry := gallery.Find("current-architecture")
	if entry == nil {
		fmt.Fprintln(os.Stderr, "gallery entry current-architecture not found")
		os.Exit(1)
	}

	d, err := specfile.Build(entry.Spec())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := export.Write(d, outputPath, export.Options{Format: export.FormatPNG}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Current architecture diagram saved as: " + outputPath)
}

package pipeline

import (
	"fmt"

	"github.com/archplot/archplot/pkg/export"
	"github.com/archplot/archplot/pkg/specfile"
)

// Render generates output artifacts in the requested formats.
func Render(spec specfile.Spec, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		data, err := RenderFormat(spec, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFormat generates a single output artifact.
//
// PNG and SVG build a fresh diagram from the spec so each render walks the
// full populate-then-export lifecycle; JSON re-emits the normalized spec.
func RenderFormat(spec specfile.Spec, format string, opts Options) ([]byte, error) {
	var data []byte
	var err error

	switch format {
	case FormatPNG, FormatSVG:
		data, err = renderDiagram(spec, format, opts)
	case FormatJSON:
		data, err = specfile.EncodeJSON(spec)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}

// renderDiagram builds the diagram model and renders it with the
// format's backend.
func renderDiagram(spec specfile.Spec, format string, opts Options) ([]byte, error) {
	d, err := specfile.Build(spec)
	if err != nil {
		return nil, err
	}
	return export.Render(d, opts.ExportOptions(format))
}

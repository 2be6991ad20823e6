package pipeline

import (
	"github.com/archplot/archplot/pkg/specfile"
)

// Load reads the diagram spec named by the options and applies option
// overrides. The returned spec is the normalized input for all later
// stages: rendering, caching, and JSON re-emission all start from it.
func Load(opts Options) (specfile.Spec, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return specfile.Spec{}, err
	}

	var spec specfile.Spec
	if opts.Spec != nil {
		spec = *opts.Spec
	} else {
		loaded, err := specfile.Load(opts.SpecPath)
		if err != nil {
			return specfile.Spec{}, err
		}
		spec = loaded
	}

	applyOverrides(&spec, opts)
	return spec, nil
}

// applyOverrides folds option-level display toggles into the spec itself.
// Overrides change the normalized spec, so they feed into cache keys and
// the JSON artifact automatically.
func applyOverrides(spec *specfile.Spec, opts Options) {
	if opts.Axes {
		spec.Canvas.ShowAxes = true
	}
}

package specfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/archplot/archplot/pkg/errors"
)

// ReadJSON decodes a spec from JSON. Unknown fields are rejected so typos
// in hand-written specs surface instead of silently dropping styling.
func ReadJSON(r io.Reader) (Spec, error) {
	var s Spec
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Spec{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "decode JSON spec")
	}
	return s, nil
}

// ReadTOML decodes a spec from TOML.
func ReadTOML(r io.Reader) (Spec, error) {
	var s Spec
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Spec{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "decode TOML spec")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Spec{}, errors.New(errors.ErrCodeInvalidSpec, "unknown key %q in TOML spec", undecoded[0].String())
	}
	return s, nil
}

// Load reads a spec file, picking the decoder from the extension
// (.json or .toml).
func Load(path string) (Spec, error) {
	if err := errors.ValidateSpecPath(path); err != nil {
		return Spec{}, err
	}

	var decode func(io.Reader) (Spec, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = ReadJSON
	case ".toml":
		decode = ReadTOML
	default:
		return Spec{}, errors.New(errors.ErrCodeInvalidSpec,
			"unsupported spec file extension %q (use .json or .toml)", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Spec{}, errors.New(errors.ErrCodeFileNotFound, "spec file not found: %s", path)
		}
		return Spec{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "open spec file %s", path)
	}
	defer f.Close()

	s, err := decode(f)
	if err != nil {
		return Spec{}, fmt.Errorf("spec file %s: %w", path, err)
	}
	return s, nil
}

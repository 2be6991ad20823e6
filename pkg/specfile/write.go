package specfile

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/archplot/archplot/pkg/errors"
)

// WriteJSON encodes the spec as indented JSON, the normalized form that
// `render -f json` emits. Encoding a spec decoded by ReadJSON or ReadTOML
// and re-reading it yields an equal spec.
func WriteJSON(s Spec, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode spec")
	}
	return nil
}

// EncodeJSON returns the normalized JSON bytes of the spec.
func EncodeJSON(s Spec) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package specfile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/archplot/archplot/pkg/diagram"
	"github.com/archplot/archplot/pkg/errors"
)

const jsonSpec = `{
  "name": "demo",
  "canvas": {"width": 4, "height": 3, "x_max": 8, "y_max": 6},
  "containers": [
    {"x": 4, "y": 3, "width": 5, "height": 3, "fill": "#4ecdc4", "opacity": 0.3}
  ],
  "chips": [
    {"x": 3, "y": 3, "width": 1.5, "height": 0.8, "label": "worker", "font_size": 9}
  ],
  "connectors": [
    {"from": {"x": 3.8, "y": 3}, "to": {"x": 5.2, "y": 3}, "kind": "ipc"}
  ],
  "annotations": [
    {"x": 4, "y": 5, "text": "Demo", "size": 14, "bold": true, "box": {"fill": "lightyellow", "opacity": 0.7}}
  ]
}`

const tomlSpec = `name = "demo"

[canvas]
width = 4.0
height = 3.0
x_max = 8.0
y_max = 6.0

[[containers]]
x = 4.0
y = 3.0
width = 5.0
height = 3.0
fill = "#4ecdc4"
opacity = 0.3

[[chips]]
x = 3.0
y = 3.0
width = 1.5
height = 0.8
label = "worker"
font_size = 9.0

[[connectors]]
from = { x = 3.8, y = 3.0 }
to = { x = 5.2, y = 3.0 }
kind = "ipc"

[[annotations]]
x = 4.0
y = 5.0
text = "Demo"
size = 14.0
bold = true

[annotations.box]
fill = "lightyellow"
opacity = 0.7
`

func TestReadJSON(t *testing.T) {
	s, err := ReadJSON(strings.NewReader(jsonSpec))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if s.Name != "demo" {
		t.Errorf("Name = %q, want %q", s.Name, "demo")
	}
	if s.Canvas.Width != 4 || s.Canvas.XMax != 8 {
		t.Errorf("Canvas = %+v, want width 4 x_max 8", s.Canvas)
	}
	if s.ElementCount() != 4 {
		t.Errorf("ElementCount() = %d, want 4", s.ElementCount())
	}
	if s.Chips[0].Label != "worker" || s.Chips[0].FontSize != 9 {
		t.Errorf("Chips[0] = %+v, want label worker size 9", s.Chips[0])
	}
	if s.Annotations[0].Box == nil || s.Annotations[0].Box.Opacity != 0.7 {
		t.Errorf("Annotations[0].Box = %+v, want opacity 0.7", s.Annotations[0].Box)
	}
}

func TestReadJSONRejectsUnknownFields(t *testing.T) {
	in := `{"canvas": {"width": 4, "height": 3, "x_max": 8, "y_max": 6}, "colour": "red"}`
	_, err := ReadJSON(strings.NewReader(in))
	if errors.GetCode(err) != errors.ErrCodeInvalidSpec {
		t.Errorf("ReadJSON() error = %v, want %s", err, errors.ErrCodeInvalidSpec)
	}
}

func TestReadTOML(t *testing.T) {
	s, err := ReadTOML(strings.NewReader(tomlSpec))
	if err != nil {
		t.Fatalf("ReadTOML() error = %v", err)
	}
	if s.Connectors[0].Kind != "ipc" {
		t.Errorf("Connectors[0].Kind = %q, want ipc", s.Connectors[0].Kind)
	}
	if s.Connectors[0].From.X != 3.8 {
		t.Errorf("Connectors[0].From.X = %v, want 3.8", s.Connectors[0].From.X)
	}
}

func TestReadTOMLRejectsUnknownKeys(t *testing.T) {
	in := "[canvas]\nwidth = 4.0\nheight = 3.0\nx_max = 8.0\ny_max = 6.0\ncolour = \"red\"\n"
	_, err := ReadTOML(strings.NewReader(in))
	if errors.GetCode(err) != errors.ErrCodeInvalidSpec {
		t.Errorf("ReadTOML() error = %v, want %s", err, errors.ErrCodeInvalidSpec)
	}
}

func TestTOMLAndJSONSpecsAgree(t *testing.T) {
	fromJSON, err := ReadJSON(strings.NewReader(jsonSpec))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	fromTOML, err := ReadTOML(strings.NewReader(tomlSpec))
	if err != nil {
		t.Fatalf("ReadTOML() error = %v", err)
	}
	if !reflect.DeepEqual(fromJSON, fromTOML) {
		t.Errorf("specs differ:\nJSON: %+v\nTOML: %+v", fromJSON, fromTOML)
	}
}

func TestRoundTripStable(t *testing.T) {
	s, err := ReadJSON(strings.NewReader(jsonSpec))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	first, err := EncodeJSON(s)
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}
	reread, err := ReadJSON(strings.NewReader(string(first)))
	if err != nil {
		t.Fatalf("ReadJSON(encoded) error = %v", err)
	}
	if !reflect.DeepEqual(s, reread) {
		t.Errorf("round trip changed the spec:\nbefore: %+v\nafter: %+v", s, reread)
	}

	second, err := EncodeJSON(reread)
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}
	if string(first) != string(second) {
		t.Error("normalized encoding is not byte-stable")
	}
}

func TestBuild(t *testing.T) {
	s, err := ReadJSON(strings.NewReader(jsonSpec))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	d, err := Build(s)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := len(d.Shapes()); got != 2 {
		t.Errorf("shapes = %d, want 2", got)
	}
	if got := len(d.Connectors()); got != 1 {
		t.Errorf("connectors = %d, want 1", got)
	}
	if got := len(d.Annotations()); got != 1 {
		t.Errorf("annotations = %d, want 1", got)
	}

	shapes := d.Shapes()
	if shapes[0].Kind != diagram.KindContainer {
		t.Errorf("shapes[0].Kind = %q, want container", shapes[0].Kind)
	}
	if shapes[1].Font.Size != 9 {
		t.Errorf("chip font size = %v, want 9", shapes[1].Font.Size)
	}
	// IPC connectors default to green width 3.
	conn := d.Connectors()[0]
	if conn.Color.Hex() != "#008000" || conn.Width != 3 {
		t.Errorf("ipc connector = color %s width %v, want #008000 width 3", conn.Color.Hex(), conn.Width)
	}
	ann := d.Annotations()[0]
	if ann.Box == nil || ann.Box.Opacity != 0.7 {
		t.Errorf("annotation box = %+v, want opacity 0.7", ann.Box)
	}
}

func TestBuildErrors(t *testing.T) {
	base := func() Spec {
		s, err := ReadJSON(strings.NewReader(jsonSpec))
		if err != nil {
			t.Fatalf("ReadJSON() error = %v", err)
		}
		return s
	}

	tests := []struct {
		name     string
		mutate   func(*Spec)
		wantCode errors.Code
		wantIn   string
	}{
		{
			name:     "bad chip color",
			mutate:   func(s *Spec) { s.Chips[0].Fill = "notacolor" },
			wantCode: errors.ErrCodeInvalidColor,
			wantIn:   "chip 0",
		},
		{
			name:     "unknown connector kind",
			mutate:   func(s *Spec) { s.Connectors[0].Kind = "wormhole" },
			wantCode: errors.ErrCodeInvalidConnector,
			wantIn:   "connector 0",
		},
		{
			name:     "chip outside canvas",
			mutate:   func(s *Spec) { s.Chips[0].X = 99 },
			wantCode: errors.ErrCodeOutOfBounds,
			wantIn:   "chip 0",
		},
		{
			name:     "empty annotation text",
			mutate:   func(s *Spec) { s.Annotations[0].Text = "" },
			wantCode: errors.ErrCodeInvalidAnnotation,
			wantIn:   "annotation 0",
		},
		{
			name:     "inverted canvas range",
			mutate:   func(s *Spec) { s.Canvas.XMax = -1 },
			wantCode: errors.ErrCodeInvalidCanvas,
			wantIn:   "x range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(&s)
			_, err := Build(s)
			if errors.GetCode(err) != tt.wantCode {
				t.Fatalf("Build() error = %v, want code %s", err, tt.wantCode)
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("Build() error = %q, want substring %q", err, tt.wantIn)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "demo.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlSpec), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	jsonPath := filepath.Join(dir, "demo.json")
	if err := os.WriteFile(jsonPath, []byte(jsonSpec), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	fromTOML, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load(toml) error = %v", err)
	}
	fromJSON, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("Load(json) error = %v", err)
	}
	if !reflect.DeepEqual(fromTOML, fromJSON) {
		t.Error("Load() produced different specs for equivalent files")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	if err := os.WriteFile(path, []byte("canvas:\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	_, err := Load(path)
	if errors.GetCode(err) != errors.ErrCodeInvalidSpec {
		t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeInvalidSpec)
	}
}

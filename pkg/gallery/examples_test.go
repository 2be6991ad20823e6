package gallery

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/archplot/archplot/pkg/specfile"
)

// The files under examples/ document the same diagrams the gallery ships,
// once in each supported encoding. Keep them in sync with the Go definitions.
func TestExampleSpecsMatchGallery(t *testing.T) {
	tests := []struct {
		file  string
		entry string
	}{
		{"current-architecture.toml", "current-architecture"},
		{"proposed-architecture.json", "proposed-architecture"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join("..", "..", "examples", tt.file)
			loaded, err := specfile.Load(path)
			if err != nil {
				t.Fatalf("load %s: %v", tt.file, err)
			}

			entry := Find(tt.entry)
			if entry == nil {
				t.Fatalf("gallery entry %q not found", tt.entry)
			}

			if want := entry.Spec(); !reflect.DeepEqual(loaded, want) {
				t.Errorf("%s drifted from the gallery definition", tt.file)
			}
		})
	}
}

package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/archplot/archplot/pkg/cache"
	"github.com/archplot/archplot/pkg/specfile"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testSpec() *specfile.Spec {
	return &specfile.Spec{
		Name:   "test-diagram",
		Canvas: specfile.Canvas{Width: 2, Height: 1.5, XMax: 4, YMax: 3},
		Containers: []specfile.Container{
			{X: 2, Y: 1.5, Width: 3, Height: 2, Fill: "#4ecdc4", Opacity: 0.3},
		},
		Chips: []specfile.Chip{
			{X: 2, Y: 1.5, Width: 1, Height: 0.5, Label: "core"},
		},
	}
}

func testOptions(spec *specfile.Spec, formats ...string) Options {
	return Options{
		Spec:    spec,
		Formats: formats,
		DPI:     72,
		Logger:  quietLogger(),
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"png", false},
		{"svg", false},
		{"json", false},
		{"pdf", true},
		{"PNG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"png", "svg"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"png", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsValidateForLoad(t *testing.T) {
	// Neither spec_path nor spec
	opts := Options{}
	if err := opts.ValidateForLoad(); err == nil {
		t.Error("Missing spec source should fail")
	}

	// Both spec_path and spec
	opts = Options{SpecPath: "x.toml", Spec: testSpec()}
	if err := opts.ValidateForLoad(); err == nil {
		t.Error("Both spec sources should fail")
	}

	// Spec only
	opts = Options{Spec: testSpec()}
	if err := opts.ValidateForLoad(); err != nil {
		t.Errorf("Spec-only options should pass: %v", err)
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatPNG {
		t.Errorf("Formats should be [png], got %v", opts.Formats)
	}
	if opts.DPI != DefaultDPI {
		t.Errorf("DPI should be %v, got %v", DefaultDPI, opts.DPI)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Spec: testSpec()}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalFormats := append([]string(nil), opts.Formats...)
	originalDPI := opts.DPI

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if len(opts.Formats) != len(originalFormats) || opts.Formats[0] != originalFormats[0] {
		t.Error("Formats changed on second call")
	}
	if opts.DPI != originalDPI {
		t.Error("DPI changed on second call")
	}
}

func TestOptionsStem(t *testing.T) {
	spec := specfile.Spec{Name: "from-spec"}

	opts := Options{Name: "explicit"}
	if got := opts.Stem(spec); got != "explicit" {
		t.Errorf("Stem = %q, want explicit", got)
	}

	opts = Options{}
	if got := opts.Stem(spec); got != "from-spec" {
		t.Errorf("Stem = %q, want from-spec", got)
	}

	opts = Options{SpecPath: "specs/system.toml"}
	if got := opts.Stem(specfile.Spec{}); got != "system" {
		t.Errorf("Stem = %q, want system", got)
	}

	opts = Options{}
	if got := opts.Stem(specfile.Spec{}); got != DefaultStem {
		t.Errorf("Stem = %q, want %q", got, DefaultStem)
	}
}

func TestOptionsArtifactKeyOpts(t *testing.T) {
	opts := Options{DPI: 300, NoTight: true, Pad: 0.5}

	png := opts.ArtifactKeyOpts(FormatPNG)
	if png.DPI != 300 {
		t.Errorf("PNG key opts should carry DPI, got %v", png.DPI)
	}

	svg := opts.ArtifactKeyOpts(FormatSVG)
	if svg.DPI != 0 {
		t.Errorf("SVG key opts should not carry DPI, got %v", svg.DPI)
	}
	if !svg.NoTight || svg.Pad != 0.5 {
		t.Error("SVG key opts should carry view options")
	}
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), testOptions(testSpec(), "png", "svg", "json"))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if result.Stats.ElementCount != 2 {
		t.Errorf("ElementCount = %d, want 2", result.Stats.ElementCount)
	}
	if result.SpecHash == "" {
		t.Error("SpecHash should be set")
	}

	png := result.Artifacts["png"]
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("png artifact should be a PNG")
	}
	svg := result.Artifacts["svg"]
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Error("svg artifact should be an SVG document")
	}
	jsonData := result.Artifacts["json"]
	want, err := specfile.EncodeJSON(result.Spec)
	if err != nil {
		t.Fatalf("EncodeJSON error: %v", err)
	}
	if !bytes.Equal(jsonData, want) {
		t.Error("json artifact should be the normalized spec")
	}

	// NullCache never hits
	if result.CacheInfo.AllHit() {
		t.Error("NullCache run should not report cache hits")
	}
}

func TestRunnerExecuteCaches(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	runner := NewRunner(c, nil, quietLogger())
	defer runner.Close()

	ctx := context.Background()
	first, err := runner.Execute(ctx, testOptions(testSpec(), "png", "svg"))
	if err != nil {
		t.Fatalf("first Execute error: %v", err)
	}
	if first.CacheInfo.Hits["png"] || first.CacheInfo.Hits["svg"] {
		t.Error("first run should miss the cache")
	}

	second, err := runner.Execute(ctx, testOptions(testSpec(), "png", "svg"))
	if err != nil {
		t.Fatalf("second Execute error: %v", err)
	}
	if !second.CacheInfo.Hits["png"] || !second.CacheInfo.Hits["svg"] {
		t.Errorf("second run should hit the cache, got %v", second.CacheInfo.Hits)
	}
	if !bytes.Equal(first.Artifacts["png"], second.Artifacts["png"]) {
		t.Error("cached PNG should match the rendered PNG")
	}
	if !bytes.Equal(first.Artifacts["svg"], second.Artifacts["svg"]) {
		t.Error("cached SVG should match the rendered SVG")
	}
}

func TestRunnerNoCacheBypassesCache(t *testing.T) {
	dir := t.TempDir()
	c, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	runner := NewRunner(c, nil, quietLogger())
	defer runner.Close()

	opts := testOptions(testSpec(), "png")
	opts.NoCache = true

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}
		if result.CacheInfo.Hits["png"] {
			t.Error("NoCache run should never hit the cache")
		}
	}

	// Nothing should have been written to the cache directory.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("NoCache run should not populate the cache, found %v", entries)
	}
}

func TestRunnerExecuteInvalidSpec(t *testing.T) {
	spec := testSpec()
	spec.Containers[0].X = 99 // outside the canvas range

	runner := NewRunner(nil, nil, quietLogger())
	defer runner.Close()

	_, err := runner.Execute(context.Background(), testOptions(spec, "png"))
	if err == nil {
		t.Fatal("Execute with invalid spec should fail")
	}
	if !strings.Contains(err.Error(), "container 0") {
		t.Errorf("error should identify the bad element: %v", err)
	}
}

func TestRunnerWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(nil, nil, quietLogger())
	defer runner.Close()

	artifacts := map[string][]byte{
		"png": []byte("png-bytes"),
		"svg": []byte("svg-bytes"),
	}

	paths, err := runner.WriteArtifacts(context.Background(), dir, "arch", artifacts)
	if err != nil {
		t.Fatalf("WriteArtifacts error: %v", err)
	}

	for format, want := range artifacts {
		path, ok := paths[format]
		if !ok {
			t.Fatalf("missing path for %s", format)
		}
		if filepath.Base(path) != "arch."+format {
			t.Errorf("path for %s = %q", format, path)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile error: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%s content = %q, want %q", format, got, want)
		}
	}
}

func TestRunnerWriteArtifactsMissingDir(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	defer runner.Close()

	missing := filepath.Join(t.TempDir(), "nope")
	_, err := runner.WriteArtifacts(context.Background(), missing, "arch", map[string][]byte{
		"png": []byte("data"),
	})
	if err == nil {
		t.Fatal("WriteArtifacts into a missing directory should fail")
	}
}

// Package fonts provides the embedded typefaces used by the render backends.
//
// The Go font family ships as Go source (golang.org/x/image/font/gofont), so
// the binary carries its fonts without external font files or system font
// lookups. Four variants are available: regular, bold, italic, and bold
// italic.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// FontFamily is the font-family name written into SVG output.
const FontFamily = "Go"

// FallbackFontFamily provides fallback fonts for viewers without the Go fonts.
const FallbackFontFamily = `'Go', 'Helvetica Neue', 'Helvetica', 'Arial', sans-serif`

type variant struct {
	bold   bool
	italic bool
}

func ttf(v variant) []byte {
	switch v {
	case variant{bold: true, italic: true}:
		return gobolditalic.TTF
	case variant{bold: true}:
		return gobold.TTF
	case variant{italic: true}:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

// Parsed fonts are cached for the process lifetime; parsing is the
// expensive part, faces are cheap to mint per backend.
var (
	parseMu sync.Mutex
	parsed  = map[variant]*truetype.Font{}
)

func parsedFont(v variant) (*truetype.Font, error) {
	parseMu.Lock()
	defer parseMu.Unlock()
	if f, ok := parsed[v]; ok {
		return f, nil
	}
	f, err := truetype.Parse(ttf(v))
	if err != nil {
		return nil, err
	}
	parsed[v] = f
	return f, nil
}

// NewFace returns a font face at the given point size and DPI.
// Each call returns an independent face; the caller owns it and should
// close it when done. Faces are not safe for concurrent use.
//
// Hinting is disabled so glyph advances scale linearly with DPI: layout
// measured at 72 DPI matches drawn output at any render density.
func NewFace(size, dpi float64, bold, italic bool) (font.Face, error) {
	f, err := parsedFont(variant{bold: bold, italic: italic})
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	}), nil
}

// The measuring faces run at 72 DPI so one pixel equals one point.
// They live for the process lifetime, serialized by the mutex.
var (
	measureMu    sync.Mutex
	measureFaces = map[measureKey]font.Face{}
)

type measureKey struct {
	variant
	size float64
}

// Metrics holds single-line text extents in points.
type Metrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns ascent plus descent.
func (m Metrics) Height() float64 { return m.Ascent + m.Descent }

// Measure returns the extents of a single line of text at the given point
// size. The measurement uses the same typeface the raster backend draws
// with, so raster output never exceeds the measured box. SVG viewers may
// substitute fonts; callers that need slack should pad.
func Measure(text string, size float64, bold, italic bool) (Metrics, error) {
	measureMu.Lock()
	defer measureMu.Unlock()

	key := measureKey{variant: variant{bold: bold, italic: italic}, size: size}
	face, ok := measureFaces[key]
	if !ok {
		f, err := parsedFont(key.variant)
		if err != nil {
			return Metrics{}, err
		}
		face = truetype.NewFace(f, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		measureFaces[key] = face
	}

	adv := font.MeasureString(face, text)
	fm := face.Metrics()
	return Metrics{
		Width:   fixedToFloat(adv),
		Ascent:  fixedToFloat(fm.Ascent),
		Descent: fixedToFloat(fm.Descent),
	}, nil
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

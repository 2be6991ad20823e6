package diagram

import (
	"fmt"

	"github.com/mazznoer/csscolorparser"

	"github.com/archplot/archplot/pkg/errors"
)

// Color is an RGBA color with float components in [0, 1].
//
// The zero value is treated as "unset" by the style structs, which substitute
// their documented defaults. Fully transparent black is not representable as
// an explicit value; use opacity fields instead.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// ParseColor parses a CSS color string: hex ("#FF6B35"), named ("lightblue"),
// or functional ("rgba(206, 66, 43, 0.7)").
func ParseColor(s string) (Color, error) {
	if s == "" {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "color cannot be empty")
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// MustColor parses a CSS color string and panics on failure.
// Intended for package-level defaults and built-in diagram data.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsZero reports whether the color is the unset zero value.
func (c Color) IsZero() bool { return c == Color{} }

// WithAlpha returns the color with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Mul returns the color with its alpha multiplied by opacity.
// Used to apply element-level opacity to fill and stroke colors.
func (c Color) Mul(opacity float64) Color {
	c.A *= opacity
	return c
}

// RGBA255 returns the color as 8-bit channels.
func (c Color) RGBA255() (r, g, b, a uint8) {
	return uint8(clamp01(c.R)*255 + 0.5),
		uint8(clamp01(c.G)*255 + 0.5),
		uint8(clamp01(c.B)*255 + 0.5),
		uint8(clamp01(c.A)*255 + 0.5)
}

// Hex returns the color as a #rrggbb string, dropping alpha.
// SVG output carries alpha separately via opacity attributes.
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

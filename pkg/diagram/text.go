package diagram

import "strings"

// =============================================================================
// Text Alignment
// =============================================================================

// Align is a horizontal text alignment relative to the anchor point.
type Align string

// Horizontal alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// VAlign is a vertical text alignment relative to the anchor point.
type VAlign string

// Vertical alignments.
const (
	VAlignTop    VAlign = "top"
	VAlignCenter VAlign = "center"
	VAlignBottom VAlign = "bottom"
)

func validAlign(a Align) bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

func validVAlign(a VAlign) bool {
	switch a {
	case VAlignTop, VAlignCenter, VAlignBottom:
		return true
	}
	return false
}

// =============================================================================
// Font
// =============================================================================

// Font describes text styling for labels and annotations.
// Size is in points. The zero value means "use the context default".
type Font struct {
	Size   float64 `json:"size,omitempty"`
	Bold   bool    `json:"bold,omitempty"`
	Italic bool    `json:"italic,omitempty"`
	Color  Color   `json:"color,omitempty"`
}

// withDefaults returns the font with zero fields replaced by defaults.
func (f Font) withDefaults(size float64) Font {
	if f.Size == 0 {
		f.Size = size
	}
	if f.Color.IsZero() {
		f.Color = defaultTextColor
	}
	return f
}

// Lines splits annotation or label text on embedded newlines.
// Trailing carriage returns are stripped so CRLF input renders cleanly.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

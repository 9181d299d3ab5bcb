package render

import (
	"fmt"
	"image/color"
)

// HexColor formats c as "#rrggbb". Alpha is ignored.
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ApproxTextWidth estimates the advance of s at the given font size for
// backends without font metrics: a proportional face averages about 0.6em
// per glyph.
func ApproxTextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.6
}

package color

import (
	"fmt"
	"image/color"

	"diskmap/internal/hash"
)

// ForPath returns the fill color for a path: red from the path hash mod
// 255, no green, full blue, opaque. It is a pure function of path.
func ForPath(path string) color.RGBA {
	return color.RGBA{
		R: uint8(hash.Path(path) % 255),
		G: 0x00,
		B: 0xff,
		A: 0xff,
	}
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

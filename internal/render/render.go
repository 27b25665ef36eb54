// Package render paints treemap layouts. Every sink draws each box filled
// with color.ForPath and leaves the layout itself untouched; sinks do no
// layout of their own.
package render

import (
	"fmt"
	"io"

	"diskmap/internal/geom"
	"diskmap/internal/treemap"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatTerm = "term"
)

// Formats lists every supported format.
var Formats = []string{FormatSVG, FormatPNG, FormatJSON, FormatTerm}

// Scene is one laid-out treemap ready to be painted.
type Scene struct {
	Root   string
	Size   uint64
	Mode   treemap.Mode
	Bounds geom.Rect
	Boxes  []treemap.FileBox
}

// ValidFormat reports whether f names a supported format.
func ValidFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// Write paints s to w in the given format.
func Write(w io.Writer, format string, s Scene) error {
	switch format {
	case FormatSVG:
		return SVG(w, s)
	case FormatPNG:
		return PNG(w, s)
	case FormatJSON:
		return JSON(w, s)
	case FormatTerm:
		return Terminal(w, s, defaultCols, defaultRows)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

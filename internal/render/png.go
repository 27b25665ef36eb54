package render

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"

	"diskmap/internal/color"
)

// PNG rasterizes the scene at one pixel per layout unit.
func PNG(w io.Writer, s Scene) error {
	width := int(math.Ceil(s.Bounds.Width()))
	height := int(math.Ceil(s.Bounds.Height()))
	if width < 1 || height < 1 {
		return fmt.Errorf("cannot rasterize %dx%d image", width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetHexColor(backgroundHex)
	dc.Clear()
	dc.Translate(-s.Bounds.X0, -s.Bounds.Y0)

	for _, box := range s.Boxes {
		r := box.Rect
		if r.Empty() {
			continue
		}
		dc.DrawRectangle(r.X0, r.Y0, r.Width(), r.Height())
		dc.SetColor(color.ForPath(box.Path))
		dc.Fill()
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

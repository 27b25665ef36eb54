package render

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"diskmap/internal/color"
	"diskmap/internal/tree"
)

// backgroundHex shows through wherever no box was painted, which makes
// gaps in a layout easy to spot.
const backgroundHex = "#ff00ff"

// SVG writes the scene as an SVG document. Each box carries a <title> with
// its path and size, so browsers show it on hover.
func SVG(w io.Writer, s Scene) error {
	bw := bufio.NewWriter(w)
	b := s.Bounds

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g" width="%.0f" height="%.0f">`+"\n",
		b.X0, b.Y0, b.Width(), b.Height(), b.Width(), b.Height())
	fmt.Fprintf(bw, `  <rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>`+"\n",
		b.X0, b.Y0, b.Width(), b.Height(), backgroundHex)

	for _, box := range s.Boxes {
		r := box.Rect
		if r.Empty() {
			continue
		}
		fmt.Fprintf(bw, `  <rect x="%g" y="%g" width="%g" height="%g" fill="%s"><title>%s (%s)</title></rect>`+"\n",
			r.X0, r.Y0, r.Width(), r.Height(), color.Hex(color.ForPath(box.Path)),
			html.EscapeString(box.Path), tree.FormatSize(box.Size))
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

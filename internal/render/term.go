package render

import (
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"diskmap/internal/color"
)

const (
	defaultCols = 80
	defaultRows = 24
)

// Terminal draws the scene as a cols x rows grid of colored cells. A cell
// takes the color of the box covering its center; cells no box covers stay
// blank.
func Terminal(w io.Writer, s Scene, cols, rows int) error {
	if cols < 1 || rows < 1 {
		return nil
	}

	grid := make([][]string, rows)
	for y := range grid {
		grid[y] = make([]string, cols)
	}

	b := s.Bounds
	cellW := b.Width() / float64(cols)
	cellH := b.Height() / float64(rows)
	if cellW > 0 && cellH > 0 {
		for _, box := range s.Boxes {
			r := box.Rect
			x0, x1 := cellSpan(r.X0-b.X0, r.X1-b.X0, cellW, cols)
			y0, y1 := cellSpan(r.Y0-b.Y0, r.Y1-b.Y0, cellH, rows)
			hex := color.Hex(color.ForPath(box.Path))
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					grid[y][x] = hex
				}
			}
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		// Runs of one color share a single styled segment.
		for start := 0; start < cols; {
			end := start + 1
			for end < cols && row[end] == row[start] {
				end++
			}
			cells := strings.Repeat(" ", end-start)
			if row[start] != "" {
				cells = lipgloss.NewStyle().Background(lipgloss.Color(row[start])).Render(cells)
			}
			sb.WriteString(cells)
			start = end
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// cellSpan returns the half-open range of cells whose centers lie within
// [lo, hi).
func cellSpan(lo, hi, cell float64, n int) (int, int) {
	first := int(math.Ceil(lo/cell - 0.5))
	last := int(math.Ceil(hi/cell - 0.5))
	return max(first, 0), min(last, n)
}

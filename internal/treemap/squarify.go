package treemap

import (
	"math"

	"diskmap/internal/geom"
	"diskmap/internal/tree"
)

// Squarify lays out every leaf beneath root inside bounds using the
// squarified treemap algorithm. Each leaf gets a rectangle with area
// proportional to its size; siblings never overlap and jointly cover their
// parent's rectangle. Empty directories produce no boxes.
//
// The result depends only on root and bounds, and root is never modified,
// so concurrent calls over the same tree are safe.
func Squarify(root *tree.Node, bounds geom.Rect) []FileBox {
	if root == nil {
		return nil
	}
	if root.IsLeaf() {
		return []FileBox{newBox(root, bounds, nil)}
	}

	var boxes []FileBox
	squarifyChildren(root.Children, bounds, &boxes)
	return boxes
}

func squarifyNode(n *tree.Node, r geom.Rect, parent *geom.Rect, out *[]FileBox) {
	if n.IsLeaf() {
		*out = append(*out, newBox(n, r, parent))
		return
	}
	squarifyChildren(n.Children, r, out)
}

// squarifyChildren packs size-sorted children into bounds row by row. Each
// row is a strip across the short side of the remaining rectangle; the
// strip is consumed along the long side before the next row starts.
func squarifyChildren(children []*tree.Node, bounds geom.Rect, out *[]FileBox) {
	parent := bounds
	remaining := bounds

	var total uint64
	for _, c := range children {
		total += c.Size
	}

	for i := 0; i < len(children); {
		if total == 0 || remaining.Empty() {
			for _, c := range children[i:] {
				squarifyNode(c, remaining.Origin(), &parent, out)
			}
			return
		}

		n, rowSize := growRow(children[i:], remaining, total)
		remaining = layoutRow(children[i:i+n], rowSize, total, remaining, &parent, out)
		total -= rowSize
		i += n
	}
}

// growRow returns how many of nodes form the next row and their total
// size. Nodes are appended while doing so does not make the row's worst
// aspect ratio larger.
func growRow(nodes []*tree.Node, remaining geom.Rect, total uint64) (int, uint64) {
	scale := remaining.Area() / float64(total)
	length := remaining.ShortSide()

	first := float64(nodes[0].Size) * scale
	sum, lo, hi := first, first, first
	best := worst(sum, lo, hi, length)
	size := nodes[0].Size

	n := 1
	for ; n < len(nodes); n++ {
		a := float64(nodes[n].Size) * scale
		w := worst(sum+a, math.Min(lo, a), math.Max(hi, a), length)
		if w > best {
			break
		}
		sum, lo, hi, best = sum+a, math.Min(lo, a), math.Max(hi, a), w
		size += nodes[n].Size
	}
	return n, size
}

// layoutRow places row as a strip along the long side of r and returns
// what is left of r.
func layoutRow(row []*tree.Node, rowSize, total uint64, r geom.Rect, parent *geom.Rect, out *[]FileBox) geom.Rect {
	if rowSize == 0 {
		for _, c := range row {
			squarifyNode(c, r.Origin(), parent, out)
		}
		return r
	}

	frac := float64(rowSize) / float64(total)
	last := rowSize == total

	if r.Wide() {
		x1 := math.Min(r.X0+frac*r.Width(), r.X1)
		if last {
			x1 = r.X1
		}
		y0 := r.Y0
		var acc uint64
		for k, c := range row {
			acc += c.Size
			y1 := math.Min(r.Y0+r.Height()*float64(acc)/float64(rowSize), r.Y1)
			if k == len(row)-1 {
				y1 = r.Y1
			}
			squarifyNode(c, geom.Rect{X0: r.X0, Y0: y0, X1: x1, Y1: y1}, parent, out)
			y0 = y1
		}
		return geom.Rect{X0: x1, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
	}

	y1 := math.Min(r.Y0+frac*r.Height(), r.Y1)
	if last {
		y1 = r.Y1
	}
	x0 := r.X0
	var acc uint64
	for k, c := range row {
		acc += c.Size
		x1 := math.Min(r.X0+r.Width()*float64(acc)/float64(rowSize), r.X1)
		if k == len(row)-1 {
			x1 = r.X1
		}
		squarifyNode(c, geom.Rect{X0: x0, Y0: r.Y0, X1: x1, Y1: y1}, parent, out)
		x0 = x1
	}
	return geom.Rect{X0: r.X0, Y0: y1, X1: r.X1, Y1: r.Y1}
}

// Worst returns the squarify badness of a row of areas laid against a side
// of the given length: max(L²·max/S², S²/(L²·min)). Lower is squarer.
func Worst(areas []float64, length float64) float64 {
	if len(areas) == 0 {
		return math.MaxFloat64
	}
	sum, lo, hi := 0.0, areas[0], areas[0]
	for _, a := range areas {
		sum += a
		lo = math.Min(lo, a)
		hi = math.Max(hi, a)
	}
	return worst(sum, lo, hi, length)
}

// worst never returns NaN or Inf: a non-finite term falls back to the
// other one, and MaxFloat64 stands in when both are non-finite.
func worst(sum, lo, hi, length float64) float64 {
	l2 := length * length
	s2 := sum * sum
	wide := l2 * hi / s2
	narrow := s2 / (l2 * lo)

	switch okWide, okNarrow := finite(wide), finite(narrow); {
	case okWide && okNarrow:
		return math.Max(wide, narrow)
	case okWide:
		return wide
	case okNarrow:
		return narrow
	default:
		return math.MaxFloat64
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

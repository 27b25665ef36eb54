package treemap

import (
	"diskmap/internal/geom"
	"diskmap/internal/tree"
)

// Slice is the simple layout: each child in turn takes its share of the
// remaining rectangle via geom.Rect.Divide. It is cheaper than Squarify
// but produces long thin rectangles for deep or uneven trees.
func Slice(root *tree.Node, bounds geom.Rect) []FileBox {
	if root == nil {
		return nil
	}
	if root.IsLeaf() {
		return []FileBox{newBox(root, bounds, nil)}
	}

	var boxes []FileBox
	sliceChildren(root.Children, bounds, &boxes)
	return boxes
}

func sliceChildren(children []*tree.Node, bounds geom.Rect, out *[]FileBox) {
	parent := bounds
	area := bounds

	var remaining uint64
	for _, c := range children {
		remaining += c.Size
	}

	for _, c := range children {
		ratio := 0.0
		if remaining > 0 {
			ratio = float64(c.Size) / float64(remaining)
		}
		first, rest := area.Divide(ratio)

		if c.IsLeaf() {
			*out = append(*out, newBox(c, first, &parent))
		} else {
			sliceChildren(c.Children, first, out)
		}

		area = rest
		remaining -= c.Size
	}
}

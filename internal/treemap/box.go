package treemap

import (
	"fmt"

	"diskmap/internal/geom"
	"diskmap/internal/tree"
)

// FileBox is the rectangle assigned to one leaf by a layout pass.
type FileBox struct {
	Path string
	Size uint64
	Rect geom.Rect
	// Parent is the rectangle of the directory directly enclosing the
	// leaf, or nil when the leaf was laid out as the root itself.
	Parent *geom.Rect
}

func newBox(leaf *tree.Node, r geom.Rect, parent *geom.Rect) FileBox {
	b := FileBox{Path: leaf.Path, Size: leaf.Size, Rect: r}
	if parent != nil {
		p := *parent
		b.Parent = &p
	}
	return b
}

// Mode selects a layout algorithm.
type Mode string

const (
	ModeSquarify Mode = "squarify"
	ModeSlice    Mode = "slice"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeSquarify, ModeSlice:
		return m, nil
	default:
		return "", fmt.Errorf("unknown layout mode %q", s)
	}
}

// Layout lays out root into bounds using the given mode.
func Layout(mode Mode, root *tree.Node, bounds geom.Rect) []FileBox {
	if mode == ModeSlice {
		return Slice(root, bounds)
	}
	return Squarify(root, bounds)
}

// Hit returns the first box containing the point (x, y).
func Hit(boxes []FileBox, x, y float64) (FileBox, bool) {
	for _, b := range boxes {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return FileBox{}, false
}

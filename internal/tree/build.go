package tree

import (
	"fmt"
	"sort"
)

// NewFile creates a leaf. Zero-byte files are promoted to size 1 so they
// still get a positive-area rectangle.
func NewFile(path string, size uint64) *Node {
	if size == 0 {
		size = 1
	}
	return &Node{Path: path, Size: size}
}

// NewDir creates an internal node from children, sorting them by size
// non-increasing and summing their sizes. Equal sizes keep their original
// order. A nil or empty children slice yields an empty directory.
func NewDir(path string, children []*Node) *Node {
	if children == nil {
		children = []*Node{}
	}

	sort.SliceStable(children, func(i, j int) bool {
		return children[i].Size > children[j].Size
	})

	var size uint64
	for _, c := range children {
		size += c.Size
	}

	return &Node{Path: path, Size: size, Children: children}
}

// Check verifies the aggregation, ordering and leaf-minimum invariants for
// every node under root and returns the first violation found.
func Check(root *Node) error {
	var err error
	root.Walk(func(n *Node) bool {
		if err != nil {
			return false
		}
		if n.IsLeaf() {
			if n.Size < 1 {
				err = fmt.Errorf("leaf %s has size 0", n.Path)
			}
			return false
		}

		var sum uint64
		for i, c := range n.Children {
			sum += c.Size
			if i > 0 && c.Size > n.Children[i-1].Size {
				err = fmt.Errorf("children of %s out of order at %s", n.Path, c.Path)
				return false
			}
		}
		if sum != n.Size {
			err = fmt.Errorf("size of %s is %d, children sum to %d", n.Path, n.Size, sum)
			return false
		}
		return true
	})
	return err
}

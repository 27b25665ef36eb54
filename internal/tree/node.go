package tree

// Node is a file (leaf) or directory (internal node) in a scanned tree.
//
// A leaf has nil Children and Size >= 1. An internal node has non-nil
// Children, sorted by Size non-increasing, and Size equal to their sum.
// An empty directory is an internal node with an empty Children slice.
//
// Nodes are built once per scan and must not be mutated afterwards.
type Node struct {
	Path     string  `json:"path"`
	Size     uint64  `json:"size"`
	Children []*Node `json:"children,omitempty"`
}

// IsLeaf reports whether n represents a file.
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// Walk calls fn for n and every descendant in depth-first pre-order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Leaves returns every leaf beneath n in depth-first order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(c *Node) bool {
		if c.IsLeaf() {
			leaves = append(leaves, c)
		}
		return true
	})
	return leaves
}

// Count returns the number of files and directories in the tree rooted at n.
func (n *Node) Count() (files, dirs int) {
	n.Walk(func(c *Node) bool {
		if c.IsLeaf() {
			files++
		} else {
			dirs++
		}
		return true
	})
	return files, dirs
}

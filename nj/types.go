// Package nj types: the abstract clustering output, independent of any
// alignment-profile concept. Topology, branch lengths, and leaf names only.
package nj

import "errors"

// Sentinel errors for clustering.
var (
	// ErrMatrixNil is returned when a nil distance matrix is passed to Join.
	ErrMatrixNil = errors.New("nj: distance matrix is nil")

	// ErrTooFewTaxa is returned when the matrix holds fewer than two taxa.
	ErrTooFewTaxa = errors.New("nj: need at least two taxa")
)

// Node is one node of the clustering result. Leaves carry the identifier
// of their matrix index in Name; internal nodes have both children set.
// Length is the branch length to the parent, 0 for the root.
type Node struct {
	// Name is the leaf identifier; empty for internal nodes.
	Name string

	// Length is the branch length to the parent edge.
	Length float64

	// Child1 and Child2 are both nil (leaf) or both set (internal).
	Child1 *Node
	Child2 *Node
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool {
	return n.Child1 == nil
}

// Tree is a rooted binary clustering result.
type Tree struct {
	root *Node
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

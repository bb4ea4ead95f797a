package guidetree

// Node is one node of the guide tree. Leaves correspond to single input
// sequences, internal nodes to intermediate alignment groups. Topology is
// immutable after construction; only the profile slot mutates.
type Node struct {
	parent   *Node
	child1   *Node
	child2   *Node
	distance float64
	name     string
	idx      int // stable arena index, used by traversals
	profile  any
}

// Child1 returns the first child, or nil for a leaf.
func (n *Node) Child1() *Node {
	return n.child1
}

// Child2 returns the second child, or nil for a leaf.
func (n *Node) Child2() *Node {
	return n.child2
}

// Child returns child 1 or 2. Any other index is a contract violation
// reported as ErrChildIndexOutOfRange.
func (n *Node) Child(i int) (*Node, error) {
	switch i {
	case 1:
		return n.child1, nil
	case 2:
		return n.child2, nil
	default:
		return nil, ErrChildIndexOutOfRange
	}
}

// Parent returns the parent node, or nil for the root. The reference is
// non-owning; ownership of the whole graph rests with the GuideTree.
func (n *Node) Parent() *Node {
	return n.parent
}

// DistanceToParent returns the branch length to the parent, 0 for the root.
func (n *Node) DistanceToParent() float64 {
	return n.distance
}

// Name returns the node label. For leaves it matches the distance-matrix
// identifier of the sequence; internal nodes are unnamed.
func (n *Node) Name() string {
	return n.name
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool {
	return n.child1 == nil
}

// Profile returns the node's alignment profile. Leaves start with a
// Singleton wrapping their sequence; internal nodes start with nil until
// the traversal consumer populates them.
func (n *Node) Profile() any {
	return n.profile
}

// SetProfile stores p in the node's profile slot. The slot is a plain
// cell with no synchronization.
func (n *Node) SetProfile(p any) {
	n.profile = p
}

package guidetree

// PostOrder walks a guide tree leaves-to-root: every node is produced
// exactly once, both children strictly before their parent, root last.
//
// The iterator owns all visitation state (a visited array keyed by the
// nodes' arena indices), so the tree itself is never mutated and
// independent traversals do not interfere. A traversal is single-use:
// construct, walk, discard. Two traversals must not walk concurrently.
type PostOrder struct {
	stack   []*Node
	visited []bool
}

// NewPostOrder returns a fresh traversal over t, positioned before the
// first (deepest leftmost) node.
func NewPostOrder(t *GuideTree) *PostOrder {
	it := &PostOrder{}
	if t == nil || t.root == nil {
		return it
	}
	it.visited = make([]bool, len(t.nodes))
	it.stack = append(it.stack, t.root)

	return it
}

// HasNext reports whether unvisited nodes remain.
func (it *PostOrder) HasNext() bool {
	return len(it.stack) > 0
}

// Next returns the next node in post-order, or nil when the traversal is
// exhausted. It descends into the first not-yet-visited child (child1
// before child2) until reaching a node whose children are both visited,
// marks it, and returns it.
func (it *PostOrder) Next() *Node {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		switch {
		case top.child1 != nil && !it.visited[top.child1.idx]:
			it.stack = append(it.stack, top.child1)
		case top.child2 != nil && !it.visited[top.child2.idx]:
			it.stack = append(it.stack, top.child2)
		default:
			it.visited[top.idx] = true
			it.stack = it.stack[:len(it.stack)-1]
			return top
		}
	}

	return nil
}

// Remove always fails with ErrRemovalUnsupported: the traversal is
// read-only and the tree's topology is immutable.
func (it *PostOrder) Remove() error {
	return ErrRemovalUnsupported
}

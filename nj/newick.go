package nj

import (
	"strconv"
	"strings"
)

// Newick renders the tree in parenthesized tree notation with branch
// lengths, terminated by a semicolon. The root carries no length.
// Example: ((A:0,B:0.25):0.275,C:0.275);
func (t *Tree) Newick() string {
	var b strings.Builder
	writeNewick(&b, t.root, true)
	b.WriteByte(';')

	return b.String()
}

// writeNewick appends n's subtree. Branch lengths use the shortest
// round-trippable decimal form so rendering is deterministic.
func writeNewick(b *strings.Builder, n *Node, root bool) {
	if !n.Leaf() {
		b.WriteByte('(')
		writeNewick(b, n.Child1, false)
		b.WriteByte(',')
		writeNewick(b, n.Child2, false)
		b.WriteByte(')')
	}
	b.WriteString(n.Name)
	if !root {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(n.Length, 'g', -1, 64))
	}
}

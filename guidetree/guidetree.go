package guidetree

import (
	"fmt"

	"github.com/katalvlaran/phylo/distmat"
	"github.com/katalvlaran/phylo/nj"
)

// GuideTree owns the input sequences, the normalized distance matrix, the
// clustering result wrapped into Nodes, and the rendered Newick string.
// The tree's shape never changes after construction; only node profile
// slots mutate.
type GuideTree struct {
	seqs    []Sequence
	scorers []Scorer
	dm      *distmat.Matrix
	newick  string
	root    *Node
	nodes   []*Node // arena; Node.idx indexes into it
}

// New builds a guide tree from sequences and their pairwise scorers.
// Scorers are expected in the fixed pair enumeration order
// (0,1),(0,2),…,(N-2,N-1), one per unordered pair.
func New(seqs []Sequence, scorers []Scorer) (*GuideTree, error) {
	// 1. Validate inputs before any clustering work
	n := len(seqs)
	if n < 2 {
		return nil, ErrTooFewSequences
	}
	if want := n * (n - 1) / 2; len(scorers) != want {
		return nil, fmt.Errorf("guidetree: %d sequences need %d scorers, got %d: %w",
			n, want, len(scorers), ErrScorerCountMismatch)
	}

	// 2. Distance matrix over accession ids (1-based position fallback)
	ids := make([]string, n)
	for i, s := range seqs {
		ids[i] = identifier(s, i)
	}
	dm, err := distmat.New(ids)
	if err != nil {
		return nil, err
	}
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sc := scorers[k]
			k++
			span := sc.MaxScore() - sc.MinScore()
			if span == 0 {
				return nil, fmt.Errorf("guidetree: pair (%s,%s): %w", ids[i], ids[j], ErrDegenerateScorer)
			}
			if err = dm.Set(i, j, float64(sc.MaxScore()-sc.Score())/float64(span)); err != nil {
				return nil, err
			}
		}
	}

	// 3. Cluster and wrap the abstract topology into typed Nodes
	topo, err := nj.Join(dm)
	if err != nil {
		return nil, err
	}

	t := &GuideTree{
		seqs:    append([]Sequence(nil), seqs...),
		scorers: append([]Scorer(nil), scorers...),
		dm:      dm,
		newick:  topo.Newick(),
	}
	t.root = t.wrap(topo.Root(), nil)

	return t, nil
}

// wrap converts one abstract clustering node into a typed Node, assigning
// a stable arena index used by traversals for visitation bookkeeping.
// Leaves resolve their identifier back to the input sequence and are
// seeded with a Singleton profile.
func (t *GuideTree) wrap(src *nj.Node, parent *Node) *Node {
	node := &Node{
		parent:   parent,
		distance: src.Length,
		name:     src.Name,
		idx:      len(t.nodes),
	}
	t.nodes = append(t.nodes, node)

	if src.Leaf() {
		i, _ := t.dm.Index(src.Name) // leaf names originate from the matrix
		node.profile = Singleton{Sequence: t.seqs[i]}
		return node
	}

	node.child1 = t.wrap(src.Child1, node)
	node.child2 = t.wrap(src.Child2, node)

	return node
}

// Root returns the root node, which corresponds to the full alignment.
func (t *GuideTree) Root() *Node {
	return t.root
}

// Sequences returns a copy of the input sequence list in input order.
func (t *GuideTree) Sequences() []Sequence {
	return append([]Sequence(nil), t.seqs...)
}

// DistanceMatrix returns the normalized N×N distance matrix used to
// construct the tree. Entries lie in [0,1]; the diagonal is 0.
func (t *GuideTree) DistanceMatrix() [][]float64 {
	return t.dm.Dense()
}

// ScoreMatrix returns the raw N×N similarity matrix: off-diagonal entries
// are the pairwise scores, the diagonal holds each sequence's maximum
// achievable score (taken from the first scorer involving it).
func (t *GuideTree) ScoreMatrix() [][]int {
	n := len(t.seqs)
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
	}
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sc := t.scorers[k]
			k++
			out[i][j], out[j][i] = sc.Score(), sc.Score()
			// Pair (0,j) is the first pair involving both 0 and j.
			if i == 0 {
				out[j][j] = sc.MaxScore()
			}
		}
	}
	out[0][0] = t.scorers[0].MaxScore()

	return out
}

// AllPairsScores returns the raw pairwise scores in the fixed pair
// enumeration order used for construction.
func (t *GuideTree) AllPairsScores() []int {
	out := make([]int, len(t.scorers))
	for i, sc := range t.scorers {
		out[i] = sc.Score()
	}

	return out
}

// Newick returns the rendered tree-description string, a byproduct of
// construction kept for diagnostics and external rendering.
func (t *GuideTree) Newick() string {
	return t.newick
}

// String implements fmt.Stringer as the Newick form of the tree.
func (t *GuideTree) String() string {
	return t.newick
}

// PostOrder returns a fresh single-use traversal over the tree.
func (t *GuideTree) PostOrder() *PostOrder {
	return NewPostOrder(t)
}

package guidetree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylo/guidetree"
)

// abcTree builds the three-sequence reference scenario:
// score(A,B)=8, score(A,C)=5, score(B,C)=2, all with max=10, min=0,
// giving distances d(A,B)=0.2, d(A,C)=0.5, d(B,C)=0.8.
func abcTree(t *testing.T) *guidetree.GuideTree {
	t.Helper()
	tree, err := guidetree.New(
		[]guidetree.Sequence{
			guidetree.Seq{ID: "A", Residues: "ACGT"},
			guidetree.Seq{ID: "B", Residues: "ACGA"},
			guidetree.Seq{ID: "C", Residues: "TTTT"},
		},
		[]guidetree.Scorer{
			guidetree.PairScore{S: 8, Max: 10, Min: 0},
			guidetree.PairScore{S: 5, Max: 10, Min: 0},
			guidetree.PairScore{S: 2, Max: 10, Min: 0},
		},
	)
	require.NoError(t, err)

	return tree
}

func TestNew_TooFewSequences(t *testing.T) {
	for _, seqs := range [][]guidetree.Sequence{nil, {guidetree.Seq{ID: "A"}}} {
		tree, err := guidetree.New(seqs, nil)
		assert.Nil(t, tree)
		assert.ErrorIs(t, err, guidetree.ErrTooFewSequences)
	}
}

func TestNew_ScorerCountMismatch(t *testing.T) {
	seqs := []guidetree.Sequence{guidetree.Seq{ID: "A"}, guidetree.Seq{ID: "B"}, guidetree.Seq{ID: "C"}}

	// 3 sequences need 3 scorers; supply 2.
	tree, err := guidetree.New(seqs, []guidetree.Scorer{
		guidetree.PairScore{S: 1, Max: 2, Min: 0},
		guidetree.PairScore{S: 1, Max: 2, Min: 0},
	})
	assert.Nil(t, tree)
	assert.ErrorIs(t, err, guidetree.ErrScorerCountMismatch)
}

func TestNew_DegenerateScorer(t *testing.T) {
	seqs := []guidetree.Sequence{guidetree.Seq{ID: "A"}, guidetree.Seq{ID: "B"}}

	tree, err := guidetree.New(seqs, []guidetree.Scorer{
		guidetree.PairScore{S: 5, Max: 5, Min: 5},
	})
	assert.Nil(t, tree, "no tree may be produced from a degenerate scorer")
	assert.ErrorIs(t, err, guidetree.ErrDegenerateScorer)
}

func TestNew_TwoSequences(t *testing.T) {
	tree, err := guidetree.New(
		[]guidetree.Sequence{guidetree.Seq{ID: "A"}, guidetree.Seq{ID: "B"}},
		[]guidetree.Scorer{guidetree.PairScore{S: 6, Max: 10, Min: 0}},
	)
	require.NoError(t, err)

	// A single join forms the root with two leaf children.
	root := tree.Root()
	require.NotNil(t, root)
	assert.False(t, root.Leaf())
	assert.Nil(t, root.Parent())
	assert.Zero(t, root.DistanceToParent())
	assert.Equal(t, "A", root.Child1().Name())
	assert.Equal(t, "B", root.Child2().Name())
	assert.True(t, root.Child1().Leaf())
	assert.True(t, root.Child2().Leaf())
	assert.Same(t, root, root.Child1().Parent())
}

func TestNew_DistanceMatrix(t *testing.T) {
	tree := abcTree(t)

	d := tree.DistanceMatrix()
	require.Len(t, d, 3)
	assert.Equal(t, 0.2, d[0][1])
	assert.Equal(t, 0.5, d[0][2])
	assert.Equal(t, 0.8, d[1][2])

	for i := 0; i < 3; i++ {
		assert.Zero(t, d[i][i])
		for j := 0; j < 3; j++ {
			assert.Equal(t, d[i][j], d[j][i], "matrix must be symmetric")
			assert.GreaterOrEqual(t, d[i][j], 0.0)
			assert.LessOrEqual(t, d[i][j], 1.0)
		}
	}
}

func TestNew_Topology(t *testing.T) {
	tree := abcTree(t)

	// Lowest distance pair (A,B) joins first; the root joins that group
	// with C.
	root := tree.Root()
	ab := root.Child1()
	require.False(t, ab.Leaf())
	assert.Equal(t, "A", ab.Child1().Name())
	assert.Equal(t, "B", ab.Child2().Name())
	assert.Equal(t, "C", root.Child2().Name())

	assert.InDelta(t, 0.0, ab.Child1().DistanceToParent(), 1e-12)
	assert.InDelta(t, 0.25, ab.Child2().DistanceToParent(), 1e-12)
	assert.InDelta(t, 0.275, ab.DistanceToParent(), 1e-12)
	assert.InDelta(t, 0.275, root.Child2().DistanceToParent(), 1e-12)
}

func TestNew_AccessionFallback(t *testing.T) {
	// Sequences without accession ids are identified by 1-based position.
	tree, err := guidetree.New(
		[]guidetree.Sequence{guidetree.Seq{}, guidetree.Seq{}},
		[]guidetree.Scorer{guidetree.PairScore{S: 3, Max: 4, Min: 0}},
	)
	require.NoError(t, err)

	root := tree.Root()
	assert.Equal(t, "1", root.Child1().Name())
	assert.Equal(t, "2", root.Child2().Name())
}

func TestNew_Deterministic(t *testing.T) {
	first := abcTree(t)
	second := abcTree(t)

	assert.Equal(t, first.Newick(), second.Newick())
	assert.Equal(t, first.DistanceMatrix(), second.DistanceMatrix())
}

func TestScoreMatrix_ConsistentWithAllPairsScores(t *testing.T) {
	tree := abcTree(t)

	scores := tree.AllPairsScores()
	assert.Equal(t, []int{8, 5, 2}, scores)

	sm := tree.ScoreMatrix()
	require.Len(t, sm, 3)
	k := 0
	for i := 0; i < 3; i++ {
		assert.Equal(t, 10, sm[i][i], "diagonal holds the max achievable score")
		for j := i + 1; j < 3; j++ {
			assert.Equal(t, scores[k], sm[i][j])
			assert.Equal(t, scores[k], sm[j][i])
			k++
		}
	}
}

func TestNewick(t *testing.T) {
	tree := abcTree(t)
	assert.Equal(t, "((A:0,B:0.25):0.275,C:0.275);", tree.Newick())
	assert.Equal(t, tree.Newick(), tree.String())
}

func TestSequences_CopyInInputOrder(t *testing.T) {
	tree := abcTree(t)

	seqs := tree.Sequences()
	require.Len(t, seqs, 3)
	assert.Equal(t, "A", seqs[0].Accession())
	assert.Equal(t, "B", seqs[1].Accession())
	assert.Equal(t, "C", seqs[2].Accession())

	// Mutating the returned slice must not affect the tree.
	seqs[0] = guidetree.Seq{ID: "Z"}
	assert.Equal(t, "A", tree.Sequences()[0].Accession())
}

func TestNode_ChildIndex(t *testing.T) {
	tree := abcTree(t)
	root := tree.Root()

	c1, err := root.Child(1)
	require.NoError(t, err)
	assert.Same(t, root.Child1(), c1)

	c2, err := root.Child(2)
	require.NoError(t, err)
	assert.Same(t, root.Child2(), c2)

	for _, i := range []int{-1, 0, 3} {
		_, err = root.Child(i)
		assert.ErrorIs(t, err, guidetree.ErrChildIndexOutOfRange)
	}
}

func TestNode_Profiles(t *testing.T) {
	tree := abcTree(t)
	root := tree.Root()

	// Internal profiles start empty; leaves are seeded with a Singleton
	// wrapping their own sequence.
	assert.Nil(t, root.Profile())

	leaf := root.Child1().Child1()
	require.True(t, leaf.Leaf())
	single, ok := leaf.Profile().(guidetree.Singleton)
	require.True(t, ok)
	assert.Equal(t, "A", single.Sequence.Accession())

	root.SetProfile("full alignment")
	assert.Equal(t, "full alignment", root.Profile())
}

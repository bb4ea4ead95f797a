// Package guidetree collaborator surfaces and sentinel errors.
// Sequences, scorers, and profiles are external concerns: the tree only
// consumes identifiers and three numbers per pair, and stores profiles
// as opaque values.
package guidetree

import (
	"errors"
	"strconv"
)

// Sentinel errors for guide-tree construction and node access.
var (
	// ErrTooFewSequences is returned when fewer than two sequences are supplied.
	ErrTooFewSequences = errors.New("guidetree: need at least two sequences")

	// ErrScorerCountMismatch is returned when the scorer count differs from
	// the expected N(N-1)/2 pairs.
	ErrScorerCountMismatch = errors.New("guidetree: scorer count mismatch")

	// ErrDegenerateScorer is returned when a scorer reports MaxScore == MinScore,
	// leaving the distance normalization undefined.
	ErrDegenerateScorer = errors.New("guidetree: degenerate scorer, max score equals min score")

	// ErrChildIndexOutOfRange is returned by Node.Child for indices other than 1 or 2.
	ErrChildIndexOutOfRange = errors.New("guidetree: child index out of range")

	// ErrRemovalUnsupported is returned by PostOrder.Remove: the traversal is read-only.
	ErrRemovalUnsupported = errors.New("guidetree: removal during traversal unsupported")
)

// Sequence is the handle the tree keeps per input sequence. Accession
// returns the sequence's accession id, or "" when it has none; the tree
// then identifies the sequence by its 1-based input position.
type Sequence interface {
	Accession() string
}

// Scorer reports the raw similarity score for one sequence pair together
// with the best and worst scores the pair could achieve.
type Scorer interface {
	Score() int
	MaxScore() int
	MinScore() int
}

// Singleton is the profile a leaf node is seeded with: the trivial
// alignment of its single sequence.
type Singleton struct {
	Sequence Sequence
}

// Seq is a minimal concrete Sequence: an accession id plus residues.
type Seq struct {
	ID       string
	Residues string
}

// Accession returns the sequence's accession id.
func (s Seq) Accession() string { return s.ID }

// Len returns the residue count.
func (s Seq) Len() int { return len(s.Residues) }

// PairScore is a minimal concrete Scorer holding precomputed values.
type PairScore struct {
	S, Max, Min int
}

// Score returns the raw pairwise similarity score.
func (p PairScore) Score() int { return p.S }

// MaxScore returns the best score the pair could achieve.
func (p PairScore) MaxScore() int { return p.Max }

// MinScore returns the worst score the pair could achieve.
func (p PairScore) MinScore() int { return p.Min }

// identifier resolves the matrix identifier for the sequence at position
// i: its accession id if present, else its 1-based position.
func identifier(s Sequence, i int) string {
	if id := s.Accession(); id != "" {
		return id
	}

	return strconv.Itoa(i + 1)
}

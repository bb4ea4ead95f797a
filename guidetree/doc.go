// Package guidetree builds the guide tree that orders progressive
// multiple sequence alignment. Leaf nodes correspond to single input
// sequences, internal nodes to intermediate alignment groups, and the
// root to the full multiple alignment.
//
// What:
//
//   - New(seqs, scorers): normalizes the pairwise similarity scores into
//     a distance matrix ((max−score)/(max−min) per pair), clusters it
//     with neighbor-joining, and wraps the topology into typed Nodes.
//   - Node: carries a mutable alignment-profile slot. Leaves are seeded
//     with a Singleton wrapping their sequence; internal profiles stay
//     empty until the traversal consumer populates them.
//   - PostOrder: a single-use iterator producing every node exactly once,
//     children strictly before their parent, root last. The typical
//     consumer reads both children's profiles at each internal node,
//     aligns them, and stores the result with SetProfile.
//
// Scorers are supplied one per unordered sequence pair, enumerated in the
// fixed order (0,1),(0,2),…,(0,N−1),(1,2),…,(N−2,N−1). Each sequence is
// identified by its accession id, falling back to its 1-based position
// when the accession is empty.
//
// Errors:
//
//   - ErrTooFewSequences       fewer than two sequences supplied
//   - ErrScorerCountMismatch   scorer count differs from N(N−1)/2
//   - ErrDegenerateScorer      a scorer reports MaxScore == MinScore
//   - ErrChildIndexOutOfRange  Child(i) with i outside {1,2}
//   - ErrRemovalUnsupported    the traversal is read-only
//
// Concurrency: construction and traversal are single-threaded by design.
// Profile slots are plain cells with no synchronization, and a tree must
// not be walked by two traversals at the same time.
//
// Complexity: construction is O(N³) time and O(N²) memory (dominated by
// clustering); one full traversal is O(N).
package guidetree

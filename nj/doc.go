// Package nj implements neighbor-joining: distance-based hierarchical
// clustering of a symmetric distance matrix into a rooted binary tree
// with branch lengths.
//
// What:
//
//   - Join(m): runs the standard neighbor-joining loop over the matrix
//     and returns a *Tree whose leaves carry the matrix identifiers and
//     whose edges carry branch lengths.
//   - (*Tree).Newick(): renders the tree in parenthesized tree notation
//     with branch lengths, e.g. ((A:0,B:0.25):0.275,C:0.275);
//
// Algorithm (per iteration, M = active node count):
//
//   - r_i = Σ_j d(i,j) over active j
//   - Q(i,j) = (M−2)·d(i,j) − r_i − r_j; the minimal pair is joined,
//     ties broken by the lowest (i,j) in active-list order
//   - branch lengths len(i,u) = d(i,j)/2 + (r_i−r_j)/(2(M−2)) and
//     len(j,u) = d(i,j) − len(i,u), each clamped to ≥ 0
//   - d(u,k) = (d(i,k) + d(j,k) − d(i,j)) / 2 for every other active k
//   - u replaces i in the active list and j is removed
//
// When two active nodes remain they are joined by the root, splitting the
// remaining distance evenly. For N leaves the result always has exactly
// N−1 internal nodes (root included) and every internal node has exactly
// two children.
//
// Determinism: the enumeration order of pairs, the tie-break, and the
// floating-point operation order are fixed, so identical matrices yield
// bit-identical topologies and branch lengths.
//
// Errors:
//
//   - ErrMatrixNil   a nil *distmat.Matrix was supplied
//   - ErrTooFewTaxa  the matrix holds fewer than two taxa
//
// Complexity: Time O(N³), Memory O(N²).
package nj

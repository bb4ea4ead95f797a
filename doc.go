// Package phylo builds guide trees for progressive multiple sequence
// alignment: normalized pairwise distances, neighbor-joining clustering,
// and a leaves-to-root traversal that drives the alignment order.
//
// 🚀 What is phylo?
//
//	A small, deterministic library that brings together:
//		• distmat:    symmetric distance matrices with stable string identifiers
//		• nj:         neighbor-joining clustering into a rooted binary tree
//		• guidetree:  typed tree nodes with per-node alignment-profile slots,
//		              plus a post-order (children before parent) traversal
//
// ✨ Why choose phylo?
//
//   - Deterministic – fixed tie-breaks and enumeration orders, bit-reproducible trees
//   - Dependency-free core – the clustering algorithm is implemented in-module
//   - Minimal API – sequences and scorers in, a walkable guide tree out
//
// Control flow: the caller supplies an ordered list of sequences and one
// pairwise scorer per unordered pair. guidetree.New normalizes the scores
// into a distance matrix, clusters it with neighbor-joining, and wraps the
// topology into nodes. The caller then walks the tree in post-order,
// reading the children's profiles and setting each node's own, until the
// root holds the full alignment.
//
// A rendered Newick string (parenthesized tree notation with branch
// lengths) is kept as a byproduct for diagnostics and external tools.
//
// The cmd/phylo binary builds a tree from a tab-separated table of
// pairwise scores and prints the Newick string.
package phylo

// Package distmat implements a symmetric distance matrix with a stable
// string identifier per index, the input shape consumed by the nj
// clusterer.
//
// What:
//
//   - Matrix: N×N symmetric float64 storage in a flat row-major slice.
//     Set writes both triangles; the diagonal is unused and reads as 0.
//   - Identifiers are fixed at construction, unique, and resolvable in
//     both directions (Identifier(i) and Index(id)).
//
// Errors:
//
//   - ErrTooFewIdentifiers    fewer than two identifiers supplied
//   - ErrDuplicateIdentifier  an identifier appears more than once
//   - ErrIndexOutOfRange      row or column index outside [0,N)
//   - ErrUnknownIdentifier    identifier not present in the matrix
//
// Complexity: construction O(N²) memory; all accessors O(1).
package distmat

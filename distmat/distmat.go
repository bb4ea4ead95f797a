package distmat

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix construction and access.
var (
	// ErrTooFewIdentifiers is returned when fewer than two identifiers are supplied.
	ErrTooFewIdentifiers = errors.New("distmat: need at least two identifiers")

	// ErrDuplicateIdentifier is returned when an identifier appears more than once.
	ErrDuplicateIdentifier = errors.New("distmat: duplicate identifier")

	// ErrIndexOutOfRange indicates that a row or column index is outside [0,N).
	ErrIndexOutOfRange = errors.New("distmat: index out of range")

	// ErrUnknownIdentifier indicates that an identifier is not present in the matrix.
	ErrUnknownIdentifier = errors.New("distmat: unknown identifier")
)

// Matrix is a symmetric N×N distance matrix of float64 values with one
// stable string identifier per index. Values live in a flat row-major
// slice; Set mirrors every write so At(i,j) == At(j,i) always holds.
type Matrix struct {
	n    int            // matrix dimension
	data []float64      // flat backing storage, length == n*n
	ids  []string       // identifier per index, length == n
	idx  map[string]int // identifier → index lookup
}

// New creates an N×N zero matrix over the given identifiers.
// Stage 1 (Validate): require N ≥ 2 and unique identifiers.
// Stage 2 (Prepare): allocate flat storage and the reverse lookup.
// Complexity: O(N²) time and memory.
func New(ids []string) (*Matrix, error) {
	// Validate dimension
	if len(ids) < 2 {
		return nil, ErrTooFewIdentifiers
	}

	// Build the reverse lookup, rejecting duplicates
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, seen := idx[id]; seen {
			return nil, fmt.Errorf("distmat: identifier %q at index %d: %w", id, i, ErrDuplicateIdentifier)
		}
		idx[id] = i
	}

	n := len(ids)

	return &Matrix{
		n:    n,
		data: make([]float64, n*n),
		ids:  append([]string(nil), ids...),
		idx:  idx,
	}, nil
}

// Size returns the matrix dimension N.
func (m *Matrix) Size() int {
	return m.n
}

// check validates a (row, col) pair against the matrix bounds.
func (m *Matrix) check(i, j int) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("distmat: (%d,%d) of %d×%d: %w", i, j, m.n, m.n, ErrIndexOutOfRange)
	}

	return nil
}

// At retrieves the distance between indices i and j.
// The diagonal is unused and reads as 0.
func (m *Matrix) At(i, j int) (float64, error) {
	if err := m.check(i, j); err != nil {
		return 0, err
	}

	return m.data[i*m.n+j], nil
}

// Set assigns the distance between indices i and j, mirroring the write
// into (j,i) so the matrix stays symmetric.
func (m *Matrix) Set(i, j int, v float64) error {
	if err := m.check(i, j); err != nil {
		return err
	}

	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v

	return nil
}

// Identifier returns the identifier at index i.
func (m *Matrix) Identifier(i int) (string, error) {
	if i < 0 || i >= m.n {
		return "", fmt.Errorf("distmat: index %d of %d: %w", i, m.n, ErrIndexOutOfRange)
	}

	return m.ids[i], nil
}

// Index resolves an identifier to its matrix index.
func (m *Matrix) Index(id string) (int, error) {
	i, ok := m.idx[id]
	if !ok {
		return 0, fmt.Errorf("distmat: %q: %w", id, ErrUnknownIdentifier)
	}

	return i, nil
}

// Dense returns an independent [][]float64 snapshot of the matrix.
// Mutating the snapshot does not affect the matrix.
func (m *Matrix) Dense() [][]float64 {
	out := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = append([]float64(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}

package nj

import (
	"math"

	"github.com/katalvlaran/phylo/distmat"
)

// joiner encapsulates the working state of one clustering run: the full
// inter-node distance table (leaves plus every node created so far), the
// node arena, and the list of currently active node ids.
type joiner struct {
	dist   [][]float64 // distances between node ids, symmetric
	nodes  []*Node     // arena indexed by node id
	active []int       // active node ids, join order preserved
	next   int         // next free node id
}

// Join clusters the distance matrix with neighbor-joining and returns the
// rooted binary tree. The input matrix is not modified.
//
// Determinism: pairs are enumerated in active-list order and the first
// minimal-Q pair wins, so identical matrices always produce identical
// trees.
func Join(m *distmat.Matrix) (*Tree, error) {
	// 1. Validate input matrix
	if m == nil {
		return nil, ErrMatrixNil
	}
	n := m.Size()
	if n < 2 {
		return nil, ErrTooFewTaxa
	}

	// 2. Seed the working state: one leaf per matrix index, distances
	//    copied into a table wide enough for every node ever created
	//    (N leaves + N-2 joins + root = 2N-1 ids).
	w := newJoiner(m)

	// 3. Join the minimal-Q pair until only two active nodes remain
	for len(w.active) > 2 {
		w.joinStep()
	}

	// 4. Root: join the final pair, splitting the remaining distance evenly
	return &Tree{root: w.root()}, nil
}

// newJoiner copies matrix distances and identifiers into working state.
func newJoiner(m *distmat.Matrix) *joiner {
	n := m.Size()
	total := 2*n - 1

	w := &joiner{
		dist:   make([][]float64, total),
		nodes:  make([]*Node, total),
		active: make([]int, n),
		next:   n,
	}
	for i := range w.dist {
		w.dist[i] = make([]float64, total)
	}
	for i := 0; i < n; i++ {
		id, _ := m.Identifier(i) // i < Size() by construction
		w.nodes[i] = &Node{Name: id}
		w.active[i] = i
		for j := i + 1; j < n; j++ {
			v, _ := m.At(i, j)
			w.dist[i][j], w.dist[j][i] = v, v
		}
	}

	return w
}

// joinStep performs one neighbor-joining iteration: selects the active
// pair minimizing the Q criterion, joins it under a new internal node,
// and updates distances from the new node to every remaining active node.
func (w *joiner) joinStep() {
	m := len(w.active)

	// 1. Row sums r_i over active nodes
	r := make([]float64, m)
	for a := 0; a < m; a++ {
		for b := 0; b < m; b++ {
			if a != b {
				r[a] += w.dist[w.active[a]][w.active[b]]
			}
		}
	}

	// 2. Minimal Q(i,j) = (M-2)*d(i,j) - r_i - r_j; first encountered
	//    in active-list order wins, which fixes the tie-break.
	bi, bj := 0, 1
	best := math.Inf(1)
	for a := 0; a < m; a++ {
		for b := a + 1; b < m; b++ {
			q := float64(m-2)*w.dist[w.active[a]][w.active[b]] - r[a] - r[b]
			if q < best {
				best, bi, bj = q, a, b
			}
		}
	}
	i, j := w.active[bi], w.active[bj]

	// 3. Branch lengths, computed before clamping so len(j,u) always
	//    complements the unclamped len(i,u), then clamped to ≥ 0.
	li := w.dist[i][j]/2 + (r[bi]-r[bj])/(2*float64(m-2))
	lj := w.dist[i][j] - li
	w.nodes[i].Length = clamp(li)
	w.nodes[j].Length = clamp(lj)

	// 4. New internal node u and its distances to the remaining actives
	u := w.next
	w.next++
	w.nodes[u] = &Node{Child1: w.nodes[i], Child2: w.nodes[j]}
	for a := 0; a < m; a++ {
		k := w.active[a]
		if k == i || k == j {
			continue
		}
		v := (w.dist[i][k] + w.dist[j][k] - w.dist[i][j]) / 2
		w.dist[u][k], w.dist[k][u] = v, v
	}

	// 5. u takes i's slot in the active list; j's slot is removed
	w.active[bi] = u
	w.active = append(w.active[:bj], w.active[bj+1:]...)
}

// root joins the last two active nodes under the root node, splitting
// the remaining distance evenly between the two final branches.
func (w *joiner) root() *Node {
	i, j := w.active[0], w.active[1]
	half := clamp(w.dist[i][j] / 2)
	w.nodes[i].Length = half
	w.nodes[j].Length = half

	return &Node{Child1: w.nodes[i], Child2: w.nodes[j]}
}

// clamp floors tiny negative branch lengths from floating error at 0.
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}

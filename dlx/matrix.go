package dlx

import "fmt"

// Matrix is the linked representation of one exact-cover instance: a
// flat arena of NumCols + 1 + NumNodes nodes addressed by integer index
// and threaded into toroidal rings.
//
// Arena layout:
//   - indices 0..numCols−1: column headers (index equals column id)
//   - index numCols:        the root sentinel of the active-column ring
//   - indices numCols+1..:  data cells, one per input position, in
//     input order
//
// Each node carries left/right/up/down links and a column reference;
// headers additionally carry the live cell count of their column, and
// cells carry the row number they belong to. "Removal" during search is
// always a link splice; no node is ever allocated or freed.
//
// A Matrix is not safe for concurrent use: the search mutates the links
// in place and restores them on return. Solve independent instances in
// parallel by building one Matrix each.
type Matrix struct {
	numCols int
	numRows int

	// Parallel link arrays over the arena, indexed by node.
	left  []int
	right []int
	up    []int
	down  []int
	col   []int

	// size[c] counts the still-linked cells of column c's vertical ring.
	size []int

	// rowTag[x] is the row number of cell x; headers and the root carry
	// numRows as an out-of-band tag.
	rowTag []int
}

// root returns the arena index of the active-column ring sentinel.
func (m *Matrix) root() int { return m.numCols }

// NumCols returns the number of universe elements (primary columns).
func (m *Matrix) NumCols() int { return m.numCols }

// NumRows returns the number of candidate rows.
func (m *Matrix) NumRows() int { return m.numRows }

// NewMatrix validates the position list and links the arena.
//
// Contracts:
//   - numCols ≥ 0, numRows ≥ 0.
//   - positions strictly sorted by (Row, Col); this both fixes the
//     deterministic search order and rejects duplicate cells.
//   - every position within [0, numRows) × [0, numCols).
//
// On any violation the matrix is not built and a sentinel error is
// returned wrapped with the offending index.
//
// Complexity: O(numCols + len(positions)) time and space.
func NewMatrix(numCols, numRows int, positions []Position) (*Matrix, error) {
	if numCols < 0 || numRows < 0 {
		return nil, fmt.Errorf("dlx: NumCols=%d NumRows=%d: %w", numCols, numRows, ErrNegativeDimension)
	}
	for i, p := range positions {
		if p.Col < 0 || p.Col >= numCols {
			return nil, fmt.Errorf("dlx: positions[%d]=(%d,%d): %w", i, p.Row, p.Col, ErrColumnRange)
		}
		if p.Row < 0 || p.Row >= numRows {
			return nil, fmt.Errorf("dlx: positions[%d]=(%d,%d): %w", i, p.Row, p.Col, ErrRowRange)
		}
		if i > 0 {
			prev := positions[i-1]
			if p.Row < prev.Row || (p.Row == prev.Row && p.Col <= prev.Col) {
				return nil, fmt.Errorf("dlx: positions[%d]=(%d,%d) after (%d,%d): %w",
					i, p.Row, p.Col, prev.Row, prev.Col, ErrUnsorted)
			}
		}
	}

	// --- 1. Allocate the arena ---
	dim := numCols + 1 + len(positions)
	m := &Matrix{
		numCols: numCols,
		numRows: numRows,
		left:    make([]int, dim),
		right:   make([]int, dim),
		up:      make([]int, dim),
		down:    make([]int, dim),
		col:     make([]int, dim),
		size:    make([]int, numCols+1),
		rowTag:  make([]int, dim),
	}

	// --- 2. Headers: vertical self-loops, then the root ring ---
	headerSize := numCols + 1
	for c := 0; c < headerSize; c++ {
		m.up[c] = c
		m.down[c] = c
		m.col[c] = c
		m.rowTag[c] = numRows
	}
	for c := 0; c < headerSize; c++ {
		m.right[c] = (c + 1) % headerSize
		m.left[c] = (c - 1 + headerSize) % headerSize
	}

	// --- 3. Cells: one run of positions per candidate row ---
	idx := 0
	for idx < len(positions) {
		row := positions[idx].Row

		runStart := idx
		runEnd := idx
		for runEnd < len(positions) && positions[runEnd].Row == row {
			runEnd++
		}

		first := headerSize + runStart
		for i := runStart; i < runEnd; i++ {
			c := positions[i].Col
			x := headerSize + i

			m.col[x] = c
			m.rowTag[x] = row

			// Splice into the column ring just above the header.
			m.up[x] = m.up[c]
			m.down[x] = c
			m.down[m.up[c]] = x
			m.up[c] = x
			m.size[c]++

			// Horizontal ring: left to the previous cell of the run (or
			// self for the first), right to the run's first cell; then
			// stitch the neighbors back onto x.
			if i > runStart {
				m.left[x] = x - 1
			} else {
				m.left[x] = x
			}
			m.right[x] = first
			m.left[m.right[x]] = x
			m.right[m.left[x]] = x
		}

		idx = runEnd
	}

	return m, nil
}

// columnActive reports whether header c is still linked into the root
// ring. Neighbors of a covered column bypass it, so the round-trip
// through the left link no longer returns home.
func (m *Matrix) columnActive(c int) bool { return m.right[m.left[c]] == c }

// firstCellOfRow returns the lowest arena index of a cell tagged with
// row, or -1 when the row has no positions. Cells keep input order, so
// a linear scan finds the leftmost cell of the row.
func (m *Matrix) firstCellOfRow(row int) int {
	for x := m.numCols + 1; x < len(m.rowTag); x++ {
		if m.rowTag[x] == row {
			return x
		}
	}

	return -1
}

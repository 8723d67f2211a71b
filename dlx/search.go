package dlx

// search is the recursive Dancing Links driver. It extends sol one row
// at a time and reports whether a complete cover was reached.
//
// Outline:
//  1. Root self-loop ⇒ every column is covered; the partial solution is
//     complete.
//  2. Pick the active column with the fewest candidates (S-heuristic).
//     Ties break on first encounter walking right from the root, which
//     is ascending column order.
//  3. A candidate count of zero is a dead end.
//  4. Cover the column, then try each of its rows top to bottom: set the
//     row's bit, cover the row's remaining columns left to right,
//     recurse, and on failure undo in mirror order.
//
// First-solution semantics: a success propagates up immediately, but
// every frame still unwinds its own covers on the way out, so the matrix
// is back to its pre-call state whether or not a cover was found. Only
// the solution bits survive.
func (m *Matrix) search(sol []bool) bool {
	root := m.root()
	if m.right[root] == root {
		return true
	}

	// --- 1. S-heuristic column selection ---
	c := m.right[root]
	for i := m.right[c]; i != root; i = m.right[i] {
		if m.size[i] < m.size[c] {
			c = i
		}
	}

	// --- 2. Dead end: no row can cover c ---
	if m.size[c] == 0 {
		return false
	}

	// --- 3. Descend ---
	m.coverColumn(c)
	for i := m.down[c]; i != c; i = m.down[i] {
		sol[m.rowTag[i]] = true
		for j := m.right[i]; j != i; j = m.right[j] {
			m.coverColumn(m.col[j])
		}

		if m.search(sol) {
			// Unwind this frame's covers; keep the solution bits.
			for j := m.left[i]; j != i; j = m.left[j] {
				m.uncoverColumn(m.col[j])
			}
			m.uncoverColumn(c)

			return true
		}

		for j := m.left[i]; j != i; j = m.left[j] {
			m.uncoverColumn(m.col[j])
		}
		sol[m.rowTag[i]] = false
	}
	m.uncoverColumn(c)

	return false
}

package dlx

// coverColumn removes column c from the problem: it is spliced out of
// the active-column ring, and every row with a cell in c is spliced out
// of all the other columns it touches. The cells of column c itself stay
// on c's vertical ring: they are the anchors by which uncoverColumn
// finds the affected rows again.
//
// Pre-condition: 0 ≤ c < numCols and c is active.
//
// coverColumn(c) followed by uncoverColumn(c) restores every link and
// every size counter exactly; the down/right walk here is mirrored by
// the up/left walk there so splices are undone in strict LIFO order.
func (m *Matrix) coverColumn(c int) {
	m.left[m.right[c]] = m.left[c]
	m.right[m.left[c]] = m.right[c]

	for i := m.down[c]; i != c; i = m.down[i] {
		for j := m.right[i]; j != i; j = m.right[j] {
			m.up[m.down[j]] = m.up[j]
			m.down[m.up[j]] = m.down[j]
			m.size[m.col[j]]--
		}
	}
}

// uncoverColumn is the exact inverse of coverColumn: rows come back in
// reverse removal order (up/left against cover's down/right), then the
// column rejoins the active ring.
func (m *Matrix) uncoverColumn(c int) {
	for i := m.up[c]; i != c; i = m.up[i] {
		for j := m.left[i]; j != i; j = m.left[j] {
			m.size[m.col[j]]++
			m.down[m.up[j]] = j
			m.up[m.down[j]] = j
		}
	}

	m.right[m.left[c]] = c
	m.left[m.right[c]] = c
}

// useRow commits the row owning cell x to the partial solution: the
// solution bit is set and every column the row touches is covered,
// left to right starting at x.
func (m *Matrix) useRow(x int, sol []bool) {
	sol[m.rowTag[x]] = true

	i := x
	for {
		m.coverColumn(m.col[i])
		i = m.right[i]
		if i == x {
			break
		}
	}
}

// unuseRow reverses useRow: columns are uncovered right to left and the
// solution bit is cleared.
func (m *Matrix) unuseRow(x int, sol []bool) {
	sol[m.rowTag[x]] = false

	i := x
	for {
		i = m.left[i]
		m.uncoverColumn(m.col[i])
		if i == x {
			break
		}
	}
}

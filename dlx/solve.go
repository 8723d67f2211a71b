package dlx

import (
	"errors"
	"fmt"
)

// Run builds the linked matrix for the given instance and searches for
// the first exact cover.
//
// Contracts:
//   - positions strictly sorted by (Row, Col), all cells in range (see
//     NewMatrix).
//   - WithForcedRows pins rows into the cover before the search begins.
//
// Returns:
//   - Result with Found == true and the cover's row vector, or
//   - Result with Found == false when no cover (extending the forced
//     rows, if any) exists; this is not an error, or
//   - a sentinel error for invalid input; the matrix is discarded.
//
// Determinism: two calls with identical inputs return identical results;
// column choice, candidate order and tie-breaks are all fully ordered.
//
// Complexity: build O(NumCols+NumNodes); search exponential worst case.
func Run(numCols, numRows int, positions []Position, opts ...Option) (Result, error) {
	m, err := NewMatrix(numCols, numRows, positions)
	if err != nil {
		return Result{}, err
	}

	o := gatherOptions(opts...)

	return m.Solve(o.forcedRows...)
}

// Solve searches the matrix for the first exact cover, optionally
// forcing the given rows (by row number) into it first.
//
// Forced rows are a permanent restriction: their columns are covered up
// front and never uncovered, so after a forced Solve the matrix remains
// narrowed to covers extending that set. An unforced Solve leaves the
// matrix byte-identical to its post-build state and may be repeated.
//
// A forced row whose columns collide with an earlier forced row cannot
// be part of any cover; Solve reports Found == false without searching.
func (m *Matrix) Solve(forced ...int) (Result, error) {
	sol := make([]bool, m.numRows)

	for _, row := range forced {
		switch err := m.forceRow(row, sol); {
		case err == errForcedConflict:
			return Result{Found: false}, nil
		case err != nil:
			return Result{}, err
		}
	}

	if !m.search(sol) {
		return Result{Found: false}, nil
	}

	return Result{Rows: sol, Found: true}, nil
}

// errForcedConflict is an internal signal: the forced row's columns are
// no longer all active, so no cover containing it can exist. Run/Solve
// translate it into a Found == false result.
var errForcedConflict = errors.New("dlx: forced rows conflict")

// forceRow commits candidate row `row` to the solution before the
// search: it locates the row's first cell and covers every column the
// row touches. Forcing an already-forced row is a no-op.
func (m *Matrix) forceRow(row int, sol []bool) error {
	if row < 0 || row >= m.numRows {
		return fmt.Errorf("dlx: forced row %d: %w", row, ErrForcedRowRange)
	}
	if sol[row] {
		return nil
	}

	x := m.firstCellOfRow(row)
	if x < 0 {
		return fmt.Errorf("dlx: forced row %d: %w", row, ErrForcedRowEmpty)
	}

	// A column already covered by an earlier forced row means the two
	// rows intersect; committing both can never yield a cover.
	i := x
	for {
		if !m.columnActive(m.col[i]) {
			return errForcedConflict
		}
		i = m.right[i]
		if i == x {
			break
		}
	}

	m.useRow(x, sol)

	return nil
}

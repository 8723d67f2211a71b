package sudoku

import (
	"fmt"

	"github.com/katalvlaran/exactcover/dlx"
)

// NumCols returns the constraint count of an order-n board: four
// families of side² columns each, 4·n⁴ in total.
func NumCols(n int) int { side := n * n; return 4 * side * side }

// NumRows returns the candidate count of an order-n board: one row per
// (cell row, cell column, digit) triple, n⁶ in total.
func NumRows(n int) int { side := n * n; return side * side * side }

// RowIndex maps the triple "cell (i, j) holds digit d" onto its
// candidate row number: i·n⁴ + j·n² + (d−1). It is the inverse of the
// decoding performed by ExtractBoard.
func RowIndex(n, i, j, d int) int {
	side := n * n

	return i*side*side + j*side + (d - 1)
}

// Positions generates the full sparse matrix of an order-n board: for
// every candidate triple, one position in each of the four constraint
// families. The result is strictly sorted by (Row, Col) as the dlx
// builder requires, and has exactly 4·n⁶ entries.
//
// Column layout, families in ascending order:
//
//	[0,      n⁴) row–digit:    row i contains digit d
//	[n⁴,   2·n⁴) column–digit: column j contains digit d
//	[2·n⁴, 3·n⁴) box–digit:    box b contains digit d
//	[3·n⁴, 4·n⁴) cell:         cell (i, j) is filled
func Positions(n int) ([]dlx.Position, error) {
	if n < 1 || n > MaxOrder {
		return nil, fmt.Errorf("sudoku: order %d: %w", n, ErrOrder)
	}

	side := n * n
	area := side * side

	positions := make([]dlx.Position, 0, 4*area*side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			box := (i/n)*n + j/n
			for d := 1; d <= side; d++ {
				row := RowIndex(n, i, j, d)

				positions = append(positions,
					dlx.Position{Row: row, Col: i*side + (d - 1)},
					dlx.Position{Row: row, Col: area + j*side + (d - 1)},
					dlx.Position{Row: row, Col: 2*area + box*side + (d - 1)},
					dlx.Position{Row: row, Col: 3*area + i*side + j},
				)
			}
		}
	}

	return positions, nil
}

// FixedRows translates givens into the forced-row list consumed by
// dlx.WithForcedRows. Each clue must lie on the board and carry a digit
// in [1, side]; the first violation aborts with ErrClueRange.
func FixedRows(n int, clues []Clue) ([]int, error) {
	if n < 1 || n > MaxOrder {
		return nil, fmt.Errorf("sudoku: order %d: %w", n, ErrOrder)
	}

	side := n * n

	rows := make([]int, 0, len(clues))
	for _, cl := range clues {
		if cl.Row < 0 || cl.Row >= side || cl.Col < 0 || cl.Col >= side || cl.Digit < 1 || cl.Digit > side {
			return nil, fmt.Errorf("sudoku: clue (%d,%d)=%d: %w", cl.Row, cl.Col, cl.Digit, ErrClueRange)
		}

		rows = append(rows, RowIndex(n, cl.Row, cl.Col, cl.Digit))
	}

	return rows, nil
}

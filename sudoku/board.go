package sudoku

import (
	"fmt"

	"github.com/katalvlaran/exactcover/dlx"
)

// ParseBoard reads an order-n board string into its clue list. The
// string has one character per cell, row by row, n⁴ in total: '0' marks
// an empty cell, '1'–'9' digits one through nine and 'A' onward the
// digits past nine (side at most 35, satisfied for every legal order).
func ParseBoard(n int, s string) ([]Clue, error) {
	if n < 1 || n > MaxOrder {
		return nil, fmt.Errorf("sudoku: order %d: %w", n, ErrOrder)
	}

	side := n * n
	if len(s) != side*side {
		return nil, fmt.Errorf("sudoku: board of %d characters, want %d: %w", len(s), side*side, ErrBoardLength)
	}

	var clues []Clue
	for k := 0; k < len(s); k++ {
		d, err := digitOf(s[k], side)
		if err != nil {
			return nil, fmt.Errorf("sudoku: board[%d]=%q: %w", k, s[k], err)
		}
		if d == 0 {
			continue
		}

		clues = append(clues, Clue{Row: k / side, Col: k % side, Digit: d})
	}

	return clues, nil
}

// digitOf decodes one board character: 0 for empty, otherwise the digit
// value in [1, side].
func digitOf(ch byte, side int) (int, error) {
	var d int
	switch {
	case ch == '0':
		return 0, nil
	case ch >= '1' && ch <= '9':
		d = int(ch-'1') + 1
	case ch >= 'A' && ch <= 'Z':
		d = int(ch-'A') + 10
	default:
		return 0, ErrBoardChar
	}

	if d > side {
		return 0, ErrBoardChar
	}

	return d, nil
}

// ExtractBoard decodes a cover back into the filled grid: every chosen
// candidate row names one (cell, digit) assignment. The grid is side by
// side with digits in [1, side].
//
// The result must come from a search over Positions(n): Found must be
// true and the row vector must have length n⁶.
func ExtractBoard(n int, res dlx.Result) ([][]int, error) {
	if n < 1 || n > MaxOrder {
		return nil, fmt.Errorf("sudoku: order %d: %w", n, ErrOrder)
	}
	if !res.Found {
		return nil, ErrNotSolved
	}

	side := n * n
	area := side * side
	if len(res.Rows) != area*side {
		return nil, fmt.Errorf("sudoku: %d result rows, want %d: %w", len(res.Rows), area*side, ErrResultShape)
	}

	grid := make([][]int, side)
	for i := range grid {
		grid[i] = make([]int, side)
	}

	for r, in := range res.Rows {
		if !in {
			continue
		}

		grid[r/area][(r/side)%side] = r%side + 1
	}

	return grid, nil
}

// Solve reduces the board string to an exact-cover instance, forces the
// givens, searches, and decodes the grid. A board with no completion
// yields ErrUnsolvable; malformed input yields the corresponding
// sentinel.
func Solve(n int, board string) ([][]int, error) {
	clues, err := ParseBoard(n, board)
	if err != nil {
		return nil, err
	}

	forced, err := FixedRows(n, clues)
	if err != nil {
		return nil, err
	}

	positions, err := Positions(n)
	if err != nil {
		return nil, err
	}

	res, err := dlx.Run(NumCols(n), NumRows(n), positions, dlx.WithForcedRows(forced...))
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, ErrUnsolvable
	}

	return ExtractBoard(n, res)
}

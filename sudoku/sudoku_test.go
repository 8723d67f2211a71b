package sudoku_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exactcover/dlx"
	"github.com/katalvlaran/exactcover/sudoku"
)

// canonicalBoard is a 27-given 9×9 puzzle with a unique completion.
const canonicalBoard = "100089457738000000040010000004050906000000000" +
	"000000728080001000007008095060090300"

// TestPositions_Shape checks the reduction's extents for small orders.
func TestPositions_Shape(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		positions, err := sudoku.Positions(n)
		require.NoError(t, err, "order %d must reduce", n)

		side := n * n
		assert.Len(t, positions, 4*side*side*side, "order %d position count", n)
		assert.Equal(t, 4*side*side, sudoku.NumCols(n), "order %d columns", n)
		assert.Equal(t, side*side*side, sudoku.NumRows(n), "order %d rows", n)

		// The dlx builder re-validates sortedness and ranges; building
		// must succeed.
		_, err = dlx.NewMatrix(sudoku.NumCols(n), sudoku.NumRows(n), positions)
		assert.NoError(t, err, "order %d positions must satisfy the builder", n)
	}
}

// TestPositions_BadOrder rejects orders outside [1, MaxOrder].
func TestPositions_BadOrder(t *testing.T) {
	_, err := sudoku.Positions(0)
	assert.ErrorIs(t, err, sudoku.ErrOrder, "order 0")

	_, err = sudoku.Positions(sudoku.MaxOrder + 1)
	assert.ErrorIs(t, err, sudoku.ErrOrder, "order above the alphabet limit")
}

// TestRowIndex_RoundTrip checks the triple encoding against the board
// decoding for order 2.
func TestRowIndex_RoundTrip(t *testing.T) {
	n := 2
	side := n * n
	area := side * side

	seen := make(map[int]bool)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			for d := 1; d <= side; d++ {
				r := sudoku.RowIndex(n, i, j, d)
				assert.False(t, seen[r], "row index %d reused", r)
				seen[r] = true

				assert.Equal(t, i, r/area, "cell row decodes")
				assert.Equal(t, j, (r/side)%side, "cell column decodes")
				assert.Equal(t, d, r%side+1, "digit decodes")
			}
		}
	}
	assert.Len(t, seen, sudoku.NumRows(n), "encoding is a bijection")
}

// TestParseBoard covers clue extraction and every parsing sentinel.
func TestParseBoard(t *testing.T) {
	clues, err := sudoku.ParseBoard(3, canonicalBoard)
	require.NoError(t, err)
	assert.Len(t, clues, 27, "the canonical board carries 27 givens")
	assert.Equal(t, sudoku.Clue{Row: 0, Col: 0, Digit: 1}, clues[0], "first given")
	assert.Equal(t, sudoku.Clue{Row: 8, Col: 6, Digit: 3}, clues[len(clues)-1], "last given")

	_, err = sudoku.ParseBoard(3, canonicalBoard[:80])
	assert.ErrorIs(t, err, sudoku.ErrBoardLength, "short board")

	_, err = sudoku.ParseBoard(3, strings.Replace(canonicalBoard, "5", "x", 1))
	assert.ErrorIs(t, err, sudoku.ErrBoardChar, "alien character")

	// 'A' names digit 10, out of range on a 9×9 board.
	_, err = sudoku.ParseBoard(3, strings.Replace(canonicalBoard, "5", "A", 1))
	assert.ErrorIs(t, err, sudoku.ErrBoardChar, "digit past the side length")

	_, err = sudoku.ParseBoard(0, canonicalBoard)
	assert.ErrorIs(t, err, sudoku.ErrOrder, "bad order")
}

// TestFixedRows translates clues and rejects out-of-range ones.
func TestFixedRows(t *testing.T) {
	rows, err := sudoku.FixedRows(3, []sudoku.Clue{
		{Row: 0, Col: 0, Digit: 5},
		{Row: 8, Col: 8, Digit: 9},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8*81 + 8*9 + 8}, rows, "row tags per i·n⁴+j·n²+(d−1)")

	_, err = sudoku.FixedRows(3, []sudoku.Clue{{Row: 9, Col: 0, Digit: 1}})
	assert.ErrorIs(t, err, sudoku.ErrClueRange, "row off the board")

	_, err = sudoku.FixedRows(3, []sudoku.Clue{{Row: 0, Col: 0, Digit: 10}})
	assert.ErrorIs(t, err, sudoku.ErrClueRange, "digit past the side length")

	_, err = sudoku.FixedRows(3, []sudoku.Clue{{Row: 0, Col: 0, Digit: 0}})
	assert.ErrorIs(t, err, sudoku.ErrClueRange, "empty cell is not a clue")
}

// assertValidGrid checks a filled grid for Sudoku legality: every row,
// column and box holds each digit exactly once.
func assertValidGrid(t *testing.T, n int, grid [][]int) {
	t.Helper()

	side := n * n
	require.Len(t, grid, side, "grid height")

	for i := 0; i < side; i++ {
		require.Len(t, grid[i], side, "grid width at row %d", i)

		rowSeen := make(map[int]bool)
		colSeen := make(map[int]bool)
		boxSeen := make(map[int]bool)
		for j := 0; j < side; j++ {
			assert.False(t, rowSeen[grid[i][j]], "row %d repeats %d", i, grid[i][j])
			rowSeen[grid[i][j]] = true

			assert.False(t, colSeen[grid[j][i]], "column %d repeats %d", i, grid[j][i])
			colSeen[grid[j][i]] = true

			bi, bj := (i/n)*n+j/n, (i%n)*n+j%n
			assert.False(t, boxSeen[grid[bi][bj]], "box %d repeats %d", i, grid[bi][bj])
			boxSeen[grid[bi][bj]] = true

			assert.GreaterOrEqual(t, grid[i][j], 1, "digit range")
			assert.LessOrEqual(t, grid[i][j], side, "digit range")
		}
	}
}

// TestSolve_Canonical solves the 27-given 9×9 puzzle and checks the
// givens survive into a legal grid matching the unique completion.
func TestSolve_Canonical(t *testing.T) {
	grid, err := sudoku.Solve(3, canonicalBoard)
	require.NoError(t, err, "the canonical board is solvable")

	assertValidGrid(t, 3, grid)

	clues, err := sudoku.ParseBoard(3, canonicalBoard)
	require.NoError(t, err)
	for _, cl := range clues {
		assert.Equal(t, cl.Digit, grid[cl.Row][cl.Col], "given at (%d,%d) must survive", cl.Row, cl.Col)
	}

	// The board has exactly one completion.
	want := "126389457738425169549617832374852916892176543" +
		"651943728983561274417238695265794381"
	var got strings.Builder
	for _, row := range grid {
		for _, d := range row {
			fmt.Fprintf(&got, "%d", d)
		}
	}
	assert.Equal(t, want, got.String(), "unique completion")
}

// TestSolve_EmptyOrder2 fills a blank 4×4 board from scratch.
func TestSolve_EmptyOrder2(t *testing.T) {
	grid, err := sudoku.Solve(2, strings.Repeat("0", 16))
	require.NoError(t, err, "a blank board always completes")

	assertValidGrid(t, 2, grid)
}

// TestSolve_Contradiction reports ErrUnsolvable when two givens collide.
func TestSolve_Contradiction(t *testing.T) {
	// Two 1s in the first row share the row-digit constraint.
	board := "11" + strings.Repeat("0", 79)

	_, err := sudoku.Solve(3, board)
	assert.ErrorIs(t, err, sudoku.ErrUnsolvable, "colliding givens admit no completion")
}

// TestExtractBoard covers decoding guards.
func TestExtractBoard(t *testing.T) {
	_, err := sudoku.ExtractBoard(3, dlx.Result{Found: false})
	assert.ErrorIs(t, err, sudoku.ErrNotSolved, "no cover to decode")

	_, err = sudoku.ExtractBoard(3, dlx.Result{Found: true, Rows: make([]bool, 10)})
	assert.ErrorIs(t, err, sudoku.ErrResultShape, "vector of the wrong order")

	_, err = sudoku.ExtractBoard(9, dlx.Result{Found: true})
	assert.ErrorIs(t, err, sudoku.ErrOrder, "order out of range")
}

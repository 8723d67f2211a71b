// Package sudoku reduces N²×N² Sudoku boards to exact-cover instances
// solvable by package dlx, and maps the cover back to a filled grid.
//
// 🚀 What is the reduction?
//
//	A Sudoku of order N (side N², e.g. N=3 for the classic 9×9) is an
//	exact-cover problem over four constraint families:
//	  • each row contains every digit once       (row–digit)
//	  • each column contains every digit once    (column–digit)
//	  • each box contains every digit once       (box–digit)
//	  • each cell holds exactly one digit        (cell occupancy)
//	Candidate rows are (row, column, digit) triples; a filled board is
//	exactly a set of triples covering every constraint once.
//
// ✨ Key features:
//   - Positions(n): the full 4·N⁶-entry sparse matrix for order n
//   - FixedRows / ParseBoard: translate givens into forced rows
//   - Solve: one-call string-board → solved grid convenience
//   - ExtractBoard: decode a dlx.Result back into an N²×N² grid
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/exactcover/sudoku"
//
//	grid, err := sudoku.Solve(3,
//	  "100089457738000000040010000004050906000000000"+
//	  "000000728080001000007008095060090300")
//	if err != nil { ... }
//	// grid[i][j] ∈ [1, 9]
//
// Board strings have length N⁴; '0' marks an empty cell, '1'–'9' the
// first nine digits and 'A' onward the rest (orders up to side 35).
//
// Performance:
//
//   - Reduction: O(N⁶) time and space
//   - Search:    exponential worst case, fast in practice for puzzles
//
// See example_test.go for runnable scenarios.
package sudoku

// Package dlx implements Knuth's Dancing Links (DLX) algorithm for the
// exact-cover problem: given a universe {0,…,NumCols−1} and a family of
// candidate subsets (rows), find a subfamily of pairwise-disjoint rows
// whose union is the whole universe.
//
// 🚀 What is DLX?
//
//	A backtracking search over a sparse 0/1 matrix stored as toroidal,
//	four-way doubly-linked rings. Removing a column and its incident
//	rows is a handful of link splices; restoring them is the exact
//	mirror image. This makes undo after a failed branch O(touched
//	links) with no bookkeeping stacks. It's widely used for:
//	  • Sudoku and polyomino / pentomino tiling
//	  • N-queens and other constraint placement puzzles
//	  • Combinatorial block designs (Steiner systems)
//	  • Set-partitioning models in scheduling
//
// ✨ Key features:
//   - flat index arena: parallel L/R/U/D/C arrays, no pointers, no
//     allocation during search
//   - S-heuristic column selection (fewest remaining candidates first,
//     first-seen wins on ties) ⇒ fully deterministic covers
//   - reversible cover/uncover: search is a pure probe, the matrix is
//     byte-identical after every top-level call
//   - row forcing: require chosen rows up front via WithForcedRows
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/exactcover/dlx"
//
//	positions := []dlx.Position{
//	  {Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: 4},
//	  {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 3}, {Row: 1, Col: 5},
//	  {Row: 2, Col: 1}, {Row: 2, Col: 3},
//	  {Row: 3, Col: 5},
//	}
//
//	res, err := dlx.Run(6, 4, positions)
//	// res.Found == true, res.Rows == [true false true true]
//
// Positions must be sorted by (Row, Col) and list only the 1-cells of
// the matrix. No-cover is not an error: it is Result.Found == false.
//
// Performance:
//
//   - Build:  O(NumCols + NumNodes)
//   - Search: exponential in the worst case (exact cover is NP-complete),
//     but the S-heuristic keeps branching factors small in practice
//   - Memory: NumCols + 1 + NumNodes arena slots, fixed at build time
//
// See example_test.go for runnable examples and the sudoku and design
// packages for complete problem reductions.
package dlx

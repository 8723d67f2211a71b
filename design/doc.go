// Package design reduces t-(v,k,1) block designs (Steiner systems) to
// exact-cover instances solvable by package dlx.
//
// 🚀 What is a t-(v,k,1) design?
//
//	A family of k-element blocks over a v-element point set such that
//	every t-element subset of points lies in exactly one block. The
//	classic S(2,3,7) is the Fano plane: 7 blocks of 3 points covering
//	each of the 21 pairs exactly once.
//
//	As exact cover: columns are the C(v,t) t-subsets, candidate rows
//	are the C(v,k) k-subsets, and a row covers a column iff the
//	k-subset contains the t-subset. A cover is precisely a design.
//
// ✨ Key features:
//   - Positions(v, k, t): the sparse matrix, C(k,t) entries per row
//   - Blocks: decode a dlx.Result into the chosen k-subsets
//   - Solve: one-call parameters → block list convenience
//   - combinatorial rank/unrank via gonum's stat/combin
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/exactcover/design"
//
//	blocks, err := design.Solve(7, 3, 2) // Fano plane
//	if err != nil { ... }
//	// len(blocks) == 7, each a sorted []int of 3 points
//
// Performance:
//
//   - Reduction: O(C(v,k)·C(k,t)) time and space
//   - Search:    exponential worst case; existence of designs is a
//     hard combinatorial question, so absence is a common outcome
//
// See example_test.go for runnable scenarios.
package design

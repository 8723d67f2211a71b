// Package exactcover is an in-memory toolkit for solving exact-cover
// problems with Knuth's Dancing Links (DLX) technique: from the raw
// sparse-matrix engine to ready-made reductions for classic puzzles.
//
// 🚀 What is exactcover?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Core engine: a toroidal linked sparse matrix over flat index
//		  arrays, with reversible cover/uncover and the S-heuristic search
//		• Row forcing: pin candidate rows before the search begins
//		• Sudoku: generic N²×N² boards reduced to exact cover
//		• Designs: t-(v,k,1) Steiner systems via subset rank/unrank
//
// ✨ Why choose exactcover?
//
//   - Deterministic – identical inputs always yield the identical cover
//   - Allocation-free search – all storage is acquired once at build time
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure Go – no cgo, no hidden machinery
//
// Under the hood, everything is organized under three subpackages:
//
//	dlx/    – link arena, matrix builder, cover/uncover, search, forcing
//	sudoku/ – board-string parsing and the 4·N⁴-constraint reduction
//	design/ – t-(v,k,1) block-design formulation on ranked k-subsets
//
// Quick ASCII example (a 6-element universe, 4 candidate subsets):
//
//	     0 1 2 3 4 5
//	r0   1 . 1 . 1 .
//	r1   1 1 . 1 . 1
//	r2   . 1 . 1 . .
//	r3   . . . . . 1
//
//	the unique exact cover is {r0, r2, r3}.
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/exactcover/dlx
package exactcover

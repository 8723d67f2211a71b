package design

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/exactcover/dlx"
)

// NumCols returns the constraint count: one column per t-subset of the
// v points, C(v,t) in total.
func NumCols(v, t int) int { return combin.Binomial(v, t) }

// NumRows returns the candidate count: one row per k-subset of the v
// points, C(v,k) in total.
func NumRows(v, k int) int { return combin.Binomial(v, k) }

// checkParams rejects parameter triples outside 1 ≤ t < k ≤ v.
func checkParams(v, k, t int) error {
	if t < 1 || k <= t || v < k {
		return fmt.Errorf("design: v=%d k=%d t=%d: %w", v, k, t, ErrParams)
	}

	return nil
}

// Positions generates the sparse matrix of the t-(v,k,1) reduction.
// Row r is the k-subset of lexicographic rank r; it carries one
// position per t-subset it contains, at that subset's lexicographic
// rank among all t-subsets of the points.
//
// Ranks are lexicographic on both sides, and choosing t indices out of
// an ascending k-subset in lexicographic order yields point t-subsets
// in lexicographic order too, so the result is strictly sorted by
// (Row, Col) as the dlx builder requires. Total length is
// C(v,k)·C(k,t).
func Positions(v, k, t int) ([]dlx.Position, error) {
	if err := checkParams(v, k, t); err != nil {
		return nil, err
	}

	blocks := combin.Combinations(v, k)
	picks := combin.Combinations(k, t)

	positions := make([]dlx.Position, 0, len(blocks)*len(picks))
	sub := make([]int, t)
	for row, block := range blocks {
		for _, pick := range picks {
			for i, p := range pick {
				sub[i] = block[p]
			}

			positions = append(positions, dlx.Position{
				Row: row,
				Col: combin.CombinationIndex(sub, v, t),
			})
		}
	}

	return positions, nil
}

// Blocks decodes a cover into the chosen blocks: each selected row is
// unranked back into its k-subset of points. Blocks come out in
// lexicographic order, each sorted ascending.
//
// The result must come from a search over Positions(v, k, t): Found
// must be true and the row vector must have length C(v,k).
func Blocks(v, k, t int, res dlx.Result) ([][]int, error) {
	if err := checkParams(v, k, t); err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, ErrNotSolved
	}
	if len(res.Rows) != NumRows(v, k) {
		return nil, fmt.Errorf("design: %d result rows, want %d: %w", len(res.Rows), NumRows(v, k), ErrResultShape)
	}

	var blocks [][]int
	for r, in := range res.Rows {
		if !in {
			continue
		}

		blocks = append(blocks, combin.IndexToCombination(nil, r, v, k))
	}

	return blocks, nil
}

// Solve builds the reduction, searches for a cover, and decodes the
// block list. Parameters admitting no design yield ErrNoDesign.
func Solve(v, k, t int) ([][]int, error) {
	positions, err := Positions(v, k, t)
	if err != nil {
		return nil, err
	}

	res, err := dlx.Run(NumCols(v, t), NumRows(v, k), positions)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, ErrNoDesign
	}

	return Blocks(v, k, t, res)
}

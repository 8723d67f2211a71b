// SPDX-License-Identifier: MIT

// Package dlx: functional configuration for the solver entry points.
// This file defines:
//   - Option / options (functional options with internal state),
//   - WithForcedRows constructor,
//   - gatherOptions helper (internal) that resolves the effective set.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: option constructors copy caller slices so
//     later mutation cannot leak into a running solve.
//   - Reusability: options fields are unexported; public APIs consume
//     ...Option.
package dlx

// Option mutates internal options. Applied in order; repeated
// WithForcedRows options accumulate their rows.
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. It is intentionally unexported to prevent external mutation.
type options struct {
	// forcedRows lists row tags that must appear in any returned cover,
	// applied in order before the search begins.
	forcedRows []int
}

// WithForcedRows requires the given candidate rows (by row number) to be
// part of every returned cover. The rows are committed before the search
// starts and are never backtracked over: the solver answers the question
// "is there a cover that extends this set?".
//
// Behavior highlights:
//   - Rows are applied in the given order.
//   - A duplicate row number is applied once.
//   - Two forced rows sharing a column can never coexist in a cover, so
//     the solve reports Found == false.
//
// Errors (surfaced by Run/Solve, not here):
//   - ErrForcedRowRange when a row number is outside [0, NumRows).
//   - ErrForcedRowEmpty when the row has no positions.
//
// Complexity: O(len(rows)) copy; application is O(cells touched).
func WithForcedRows(rows ...int) Option {
	forced := make([]int, len(rows))
	copy(forced, rows)

	return func(o *options) { o.forcedRows = append(o.forcedRows, forced...) }
}

// gatherOptions applies user-provided Option setters on top of the
// zero-value defaults. Stable for a given sequence of setters.
func gatherOptions(user ...Option) options {
	var o options
	for _, set := range user {
		set(&o)
	}

	return o
}

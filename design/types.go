package design

import "errors"

var (
	// ErrParams indicates parameters violating 1 ≤ t < k ≤ v.
	ErrParams = errors.New("design: parameters must satisfy 1 ≤ t < k ≤ v")
	// ErrNoDesign indicates that no t-(v,k,1) design exists for the
	// given parameters.
	ErrNoDesign = errors.New("design: no design exists")
	// ErrNotSolved indicates a block extraction from a result without a
	// cover.
	ErrNotSolved = errors.New("design: result holds no cover")
	// ErrResultShape indicates a result vector of the wrong length.
	ErrResultShape = errors.New("design: result does not match parameters")
)

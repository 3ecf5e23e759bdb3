package curve

import "errors"

var (
	// ErrLengthMismatch reports x/y slices of unequal length.
	ErrLengthMismatch = errors.New("x and y must have the same length")
	// ErrTooFewPoints reports a sample with fewer than two observations.
	ErrTooFewPoints = errors.New("sample must contain at least 2 points")
)

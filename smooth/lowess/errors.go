package lowess

import (
	"errors"
	"fmt"
)

// ErrConfig is wrapped by every configuration error returned from this
// package, so callers can match the whole class with errors.Is.
var ErrConfig = errors.New("invalid smoothing configuration")

var errUnsortedEval = errors.New("evaluation points must be ascending")

func validateFrac(v float64) error {
	if v <= 0 || v > 1 {
		return fmt.Errorf("%w: frac must be in (0, 1]: %v", ErrConfig, v)
	}
	return nil
}

func validateGridSize(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: gridsize must be >= 2: %d", ErrConfig, n)
	}
	return nil
}

func validateIterations(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: iteration count must be >= 0: %d", ErrConfig, n)
	}
	return nil
}

func validateDelta(v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: delta must be >= 0: %v", ErrConfig, v)
	}
	return nil
}

func validateBootstrap(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: bootstrap count must be >= 0: %d", ErrConfig, n)
	}
	return nil
}

func validateAlpha(v float64) error {
	if v <= 0 || v >= 1 {
		return fmt.Errorf("%w: alpha must be in (0, 1): %v", ErrConfig, v)
	}
	return nil
}

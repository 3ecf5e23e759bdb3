package polyfit

import (
	"errors"
	"fmt"
)

// ErrConfig is wrapped by every configuration error returned from this
// package, including rank-deficient designs detected during fitting.
var ErrConfig = errors.New("invalid polynomial fit configuration")

func validateOrder(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: order must be >= 1: %d", ErrConfig, n)
	}
	return nil
}

func validateGridSize(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: gridsize must be >= 2: %d", ErrConfig, n)
	}
	return nil
}

func validateAlpha(v float64) error {
	if v <= 0 || v >= 1 {
		return fmt.Errorf("%w: alpha must be in (0, 1): %v", ErrConfig, v)
	}
	return nil
}

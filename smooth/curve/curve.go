package curve

import (
	"math"
	"sort"
)

// Sample holds paired scatter observations. X need not be sorted or unique;
// the pairing of X[i] with Y[i] is the only structural requirement.
type Sample struct {
	X []float64
	Y []float64
}

// Len returns the number of observations.
func (s Sample) Len() int {
	return len(s.X)
}

// Validate checks the structural invariants: equal lengths and at least two
// observations.
func (s Sample) Validate() error {
	if len(s.X) != len(s.Y) {
		return ErrLengthMismatch
	}
	if len(s.X) < 2 {
		return ErrTooFewPoints
	}
	return nil
}

// DistinctX returns the number of distinct x values in the sample.
func (s Sample) DistinctX() int {
	if len(s.X) == 0 {
		return 0
	}
	xs := append([]float64(nil), s.X...)
	sort.Float64s(xs)
	n := 1
	for i := 1; i < len(xs); i++ {
		if xs[i] != xs[i-1] {
			n++
		}
	}
	return n
}

// XRange returns the minimum and maximum x value.
func (s Sample) XRange() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range s.X {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Sorted returns a copy of the sample ordered by ascending x, preserving the
// pairing of each (x, y) row. The receiver is not modified.
func (s Sample) Sorted() Sample {
	idx := make([]int, len(s.X))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return s.X[idx[a]] < s.X[idx[b]] })

	out := Sample{
		X: make([]float64, len(s.X)),
		Y: make([]float64, len(s.Y)),
	}
	for i, j := range idx {
		out.X[i] = s.X[j]
		out.Y[i] = s.Y[j]
	}
	return out
}

// Curve is the standardized smoother output: fitted Y over a strictly
// ascending evaluation grid X, optionally with pointwise confidence bounds.
// YMin and YMax are either both nil (no interval estimation) or both the same
// length as X, with NaN marking grid points where no interval could be
// computed. Y may contain NaN at grid points the estimator could not fit.
type Curve struct {
	X    []float64
	Y    []float64
	YMin []float64
	YMax []float64
}

// Len returns the number of grid points.
func (c Curve) Len() int {
	return len(c.X)
}

// HasBounds reports whether the curve carries confidence bounds.
func (c Curve) HasBounds() bool {
	return c.YMin != nil && c.YMax != nil
}

// Grid returns n evenly spaced evaluation points spanning [min, max],
// inclusive on both ends. n must be >= 2 so the span endpoints are always
// represented; smaller values return nil.
func Grid(min, max float64, n int) []float64 {
	if n < 2 || min > max {
		return nil
	}
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	// Guard against accumulated step error at the far end.
	out[n-1] = max
	return out
}

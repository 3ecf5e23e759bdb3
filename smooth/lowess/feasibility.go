package lowess

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/smooth/curve"
)

// minWindowPoints is the smallest number of distinct x values a local window
// must be able to cover for a stable local linear fit.
const minWindowPoints = 3

// Feasibility describes whether a requested window fraction is numerically
// supportable by a sample, and the effective fraction after clamping.
type Feasibility struct {
	// NDistinct is the number of distinct x values in the sample.
	NDistinct int
	// FracMin is the smallest supportable fraction, minWindowPoints/NDistinct.
	FracMin float64
	// Frac is the effective fraction: the requested value clamped into
	// [FracMin, 1].
	Frac float64
	// Clamped reports whether the requested fraction was adjusted.
	Clamped bool
	// BootstrapOK reports whether the sample has enough distinct x values
	// for resampled refits to be meaningful (FracMin <= 1). When false,
	// interval estimation is silently skipped.
	BootstrapOK bool
}

// Check computes the feasibility of running a local regression with the
// requested fraction on the sample. It never fails; strict-mode rejection is
// the caller's decision based on the Clamped flag.
func Check(s curve.Sample, frac float64) Feasibility {
	f := Feasibility{NDistinct: s.DistinctX()}
	if f.NDistinct > 0 {
		f.FracMin = float64(minWindowPoints) / float64(f.NDistinct)
	}
	f.BootstrapOK = f.FracMin <= 1

	f.Frac = frac
	if f.Frac < f.FracMin {
		f.Frac = f.FracMin
		f.Clamped = true
	}
	if f.Frac > 1 {
		f.Frac = 1
	}
	return f
}

func (f Feasibility) strictErr(requested float64) error {
	return fmt.Errorf("%w: frac %v below feasible minimum %v (%d distinct x, %d points per window required)",
		ErrConfig, requested, f.FracMin, f.NDistinct, minWindowPoints)
}

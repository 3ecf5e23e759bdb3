package bootstrap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-smooth/internal/testutil"
)

// meanFitter fits a constant: the mean of the resampled y values, repeated
// across a fixed-size grid.
func meanFitter(gridLen int) Fitter {
	return func(x, y []float64) []float64 {
		var m float64
		for _, v := range y {
			m += v
		}
		m /= float64(len(y))
		out := make([]float64, gridLen)
		for i := range out {
			out[i] = m
		}
		return out
	}
}

func TestBandsOrdering(t *testing.T) {
	x, y := testutil.NoisyLine(3, 0, 0, 1, 1, 100)

	ymin, ymax, err := Bands(x, y, 5, meanFitter(5), Config{N: 200, Alpha: 0.05, Seed: 1})
	require.NoError(t, err)
	require.Len(t, ymin, 5)
	require.Len(t, ymax, 5)
	for i := range ymin {
		require.LessOrEqual(t, ymin[i], ymax[i])
	}
}

func TestBandsReproducible(t *testing.T) {
	x, y := testutil.NoisyLine(5, 1, 2, 0.5, 9, 80)

	run := func() ([]float64, []float64) {
		ymin, ymax, err := Bands(x, y, 3, meanFitter(3), Config{N: 100, Alpha: 0.1, Seed: 42})
		require.NoError(t, err)
		return ymin, ymax
	}

	amin, amax := run()
	bmin, bmax := run()
	require.Equal(t, amin, bmin)
	require.Equal(t, amax, bmax)
}

func TestBandsWorkerCountInvariant(t *testing.T) {
	x, y := testutil.NoisyLine(5, 1, 2, 0.5, 9, 80)

	run := func(workers int) []float64 {
		ymin, _, err := Bands(x, y, 4, meanFitter(4), Config{N: 64, Alpha: 0.05, Seed: 7, Workers: workers})
		require.NoError(t, err)
		return ymin
	}

	require.Equal(t, run(1), run(16))
}

func TestBandsSeedMatters(t *testing.T) {
	x, y := testutil.NoisyLine(5, 1, 2, 0.5, 9, 80)

	run := func(seed int64) []float64 {
		ymin, _, err := Bands(x, y, 2, meanFitter(2), Config{N: 50, Alpha: 0.05, Seed: seed})
		require.NoError(t, err)
		return ymin
	}

	require.NotEqual(t, run(1), run(2))
}

func TestBandsNaNColumnExcluded(t *testing.T) {
	x, y := testutil.NoisyLine(9, 0, 1, 0.5, 9, 50)

	// Column 0 is NaN in every other iteration, column 1 always.
	var iteration int
	fit := func(_, ry []float64) []float64 {
		iteration++
		out := []float64{float64(iteration), math.NaN(), ry[0]}
		if iteration%2 == 0 {
			out[0] = math.NaN()
		}
		return out
	}

	ymin, ymax, err := Bands(x, y, 3, fit, Config{N: 20, Alpha: 0.1, Seed: 3, Workers: 1})
	require.NoError(t, err)

	// Column 0 keeps an interval from its valid half.
	require.False(t, math.IsNaN(ymin[0]))
	require.False(t, math.IsNaN(ymax[0]))
	// Column 1 never produced a valid value.
	require.True(t, math.IsNaN(ymin[1]))
	require.True(t, math.IsNaN(ymax[1]))
	// Column 2 is fully valid.
	require.False(t, math.IsNaN(ymin[2]))
	require.LessOrEqual(t, ymin[2], ymax[2])
}

func TestBandsInsufficientValidSamples(t *testing.T) {
	x, y := testutil.NoisyLine(9, 0, 1, 0.5, 9, 50)

	// Only one iteration yields a finite value for the single grid point.
	var iteration int
	fit := func(_, _ []float64) []float64 {
		iteration++
		if iteration == 1 {
			return []float64{1.5}
		}
		return []float64{math.NaN()}
	}

	ymin, ymax, err := Bands(x, y, 1, fit, Config{N: 10, Alpha: 0.05, Seed: 3, Workers: 1})
	require.NoError(t, err)
	require.True(t, math.IsNaN(ymin[0]))
	require.True(t, math.IsNaN(ymax[0]))
}

func TestBandsAlphaWidens(t *testing.T) {
	x, y := testutil.NoisyLine(13, 0, 0, 1, 1, 200)

	width := func(alpha float64) float64 {
		ymin, ymax, err := Bands(x, y, 1, meanFitter(1), Config{N: 300, Alpha: alpha, Seed: 11})
		require.NoError(t, err)
		return ymax[0] - ymin[0]
	}

	require.Less(t, width(0.10), width(0.01))
}

func TestBandsConfigErrors(t *testing.T) {
	x, y := []float64{1, 2}, []float64{1, 2}
	fit := meanFitter(1)

	_, _, err := Bands(x, []float64{1}, 1, fit, Config{N: 10, Alpha: 0.05})
	require.ErrorIs(t, err, ErrConfig)

	_, _, err = Bands(x, y, 1, fit, Config{N: 0, Alpha: 0.05})
	require.ErrorIs(t, err, ErrConfig)

	_, _, err = Bands(x, y, 1, fit, Config{N: 10, Alpha: 0})
	require.ErrorIs(t, err, ErrConfig)

	_, _, err = Bands(x, y, 1, fit, Config{N: 10, Alpha: 1})
	require.ErrorIs(t, err, ErrConfig)
}

func TestBandsGridLengthMismatch(t *testing.T) {
	x, y := []float64{1, 2, 3}, []float64{1, 2, 3}
	fit := func(_, _ []float64) []float64 { return make([]float64, 2) }

	_, _, err := Bands(x, y, 5, fit, Config{N: 4, Alpha: 0.05})
	require.ErrorIs(t, err, ErrConfig)
}

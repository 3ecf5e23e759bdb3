package bootstrap

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"
)

// Fitter maps one resampled observation set to fitted values over the fixed
// evaluation grid shared by all iterations. Implementations must be safe for
// concurrent use; grid points a resample cannot support are reported as NaN.
type Fitter func(x, y []float64) []float64

// Config controls one banding run.
type Config struct {
	// N is the number of bootstrap resamples.
	N int
	// Alpha is the two-sided tail probability; bands cover the empirical
	// [Alpha/2, 1-Alpha/2] percentile range per grid point.
	Alpha float64
	// Seed pins the resampling stream. Iteration draws depend only on Seed
	// and the iteration index, never on scheduling.
	Seed int64
	// Workers bounds concurrent refits; values <= 0 use one per CPU.
	Workers int
}

// ErrConfig is wrapped by configuration errors from this package.
var ErrConfig = errors.New("invalid bootstrap configuration")

// minValid is the smallest number of finite refit values a grid point needs
// before a percentile interval is reported for it.
const minValid = 2

// Bands resamples the rows of (x, y) jointly N times, refits each resample on
// the shared grid via fit, and returns the pointwise percentile envelope.
// Grid points where fewer than two resamples produced finite values get NaN
// bounds. gridLen must match the length of every fit result.
func Bands(x, y []float64, gridLen int, fit Fitter, cfg Config) (ymin, ymax []float64, err error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("%w: x and y must have same length: %d vs %d", ErrConfig, len(x), len(y))
	}
	if cfg.N < 1 {
		return nil, nil, fmt.Errorf("%w: resample count must be >= 1: %d", ErrConfig, cfg.N)
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		return nil, nil, fmt.Errorf("%w: alpha must be in (0, 1): %v", ErrConfig, cfg.Alpha)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.N {
		workers = cfg.N
	}

	fits := make([][]float64, cfg.N)

	var wg sync.WaitGroup
	next := make(chan int)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			rx := make([]float64, len(x))
			ry := make([]float64, len(y))
			for i := range next {
				rng := rand.New(rand.NewSource(subSeed(cfg.Seed, i)))
				resample(rng, rx, ry, x, y)
				fits[i] = fit(rx, ry)
			}
		}()
	}
	for i := 0; i < cfg.N; i++ {
		next <- i
	}
	close(next)
	wg.Wait()

	for i := range fits {
		if len(fits[i]) != gridLen {
			return nil, nil, fmt.Errorf("%w: fit returned %d values for a %d-point grid", ErrConfig, len(fits[i]), gridLen)
		}
	}

	ymin = make([]float64, gridLen)
	ymax = make([]float64, gridLen)
	col := make([]float64, 0, cfg.N)
	for j := 0; j < gridLen; j++ {
		col = col[:0]
		for i := range fits {
			if v := fits[i][j]; !math.IsNaN(v) {
				col = append(col, v)
			}
		}
		if len(col) < minValid {
			ymin[j] = math.NaN()
			ymax[j] = math.NaN()
			continue
		}
		sort.Float64s(col)
		ymin[j] = stat.Quantile(cfg.Alpha/2, stat.LinInterp, col, nil)
		ymax[j] = stat.Quantile(1-cfg.Alpha/2, stat.LinInterp, col, nil)
	}
	return ymin, ymax, nil
}

// resample fills (rx, ry) with len(x) rows drawn jointly from (x, y) with
// replacement.
func resample(rng *rand.Rand, rx, ry, x, y []float64) {
	for i := range rx {
		j := rng.Intn(len(x))
		rx[i] = x[j]
		ry[i] = y[j]
	}
}

// subSeed derives an independent per-iteration seed from the run seed. The
// golden-ratio increment keeps neighboring iterations uncorrelated while
// staying a pure function of (seed, i).
func subSeed(seed int64, i int) int64 {
	return seed + int64(i+1)*-0x61c8864680b583eb
}

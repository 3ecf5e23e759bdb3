package lowess

import (
	"math/rand"

	"github.com/cwbudde/algo-smooth/smooth/bootstrap"
	"github.com/cwbudde/algo-smooth/smooth/curve"
)

// Lowess is a configured locally weighted regression smoother. It is
// immutable after construction and safe for concurrent Fit calls.
type Lowess struct {
	cfg config
}

// New builds a smoother from the given options, validating parameter ranges
// up front. If alpha was set explicitly and no bootstrap count was, interval
// estimation is enabled with a default resample count; this normalization
// happens here, exactly once.
func New(opts ...Option) (*Lowess, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateFrac(cfg.frac); err != nil {
		return nil, err
	}
	if err := validateGridSize(cfg.gridSize); err != nil {
		return nil, err
	}
	if err := validateIterations(cfg.it); err != nil {
		return nil, err
	}
	if err := validateDelta(cfg.delta); err != nil {
		return nil, err
	}
	if err := validateBootstrap(cfg.boot); err != nil {
		return nil, err
	}
	if err := validateAlpha(cfg.alpha); err != nil {
		return nil, err
	}

	if !cfg.bootSet && cfg.alphaSet {
		cfg.boot = autoBootstrap
	}
	return &Lowess{cfg: cfg}, nil
}

// Bootstraps returns the effective resample count after normalization.
// Zero means no interval estimation.
func (l *Lowess) Bootstraps() int {
	return l.cfg.boot
}

// Fit smooths the sample over an evenly spaced grid spanning its x-range.
// The returned curve always has the configured number of ascending grid
// x's; Y carries
// NaN at grid points no local window could support. When bootstrapping is
// enabled and the sample has enough distinct x values, YMin/YMax hold the
// percentile bands; otherwise both are nil.
func (l *Lowess) Fit(s curve.Sample) (curve.Curve, error) {
	if err := s.Validate(); err != nil {
		return curve.Curve{}, err
	}

	feas := Check(s, l.cfg.frac)
	if l.cfg.strict && feas.Clamped {
		return curve.Curve{}, feas.strictErr(l.cfg.frac)
	}

	sorted := s.Sorted()
	minX, maxX := sorted.X[0], sorted.X[len(sorted.X)-1]
	xs := curve.Grid(minX, maxX, l.cfg.gridSize)

	eng := newEngine(sorted.X, sorted.Y, feas.Frac, l.cfg.kern)
	eng.robustify(l.cfg.it)

	out := curve.Curve{
		X: xs,
		Y: eng.eval(xs, l.cfg.delta),
	}

	if l.cfg.boot > 0 && feas.BootstrapOK {
		ymin, ymax, err := bootstrap.Bands(sorted.X, sorted.Y, len(xs), l.fitter(feas.Frac, xs), bootstrap.Config{
			N:       l.cfg.boot,
			Alpha:   l.cfg.alpha,
			Seed:    l.seed(),
			Workers: l.cfg.workers,
		})
		if err != nil {
			return curve.Curve{}, err
		}
		out.YMin = ymin
		out.YMax = ymax
	}
	return out, nil
}

// FitAt evaluates the smoother at caller-chosen ascending points instead of
// an even grid. No interval estimation is performed.
func (l *Lowess) FitAt(s curve.Sample, xs []float64) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return nil, errUnsortedEval
		}
	}

	feas := Check(s, l.cfg.frac)
	if l.cfg.strict && feas.Clamped {
		return nil, feas.strictErr(l.cfg.frac)
	}

	sorted := s.Sorted()
	eng := newEngine(sorted.X, sorted.Y, feas.Frac, l.cfg.kern)
	eng.robustify(l.cfg.it)
	return eng.eval(xs, l.cfg.delta), nil
}

// fitter adapts one resample refit to the bootstrap contract: sort, rebuild
// the engine with the effective fraction, and evaluate on the shared grid.
func (l *Lowess) fitter(frac float64, xs []float64) bootstrap.Fitter {
	return func(bx, by []float64) []float64 {
		bs := curve.Sample{X: bx, Y: by}.Sorted()
		eng := newEngine(bs.X, bs.Y, frac, l.cfg.kern)
		eng.robustify(l.cfg.it)
		return eng.eval(xs, l.cfg.delta)
	}
}

func (l *Lowess) seed() int64 {
	if l.cfg.seedSet {
		return l.cfg.seed
	}
	return rand.Int63()
}

package lowess

import "github.com/cwbudde/algo-smooth/smooth/kernel"

// Option configures a Lowess smoother.
type Option func(*config)

type config struct {
	frac     float64
	gridSize int
	it       int
	delta    float64
	kern     kernel.Type
	strict   bool
	workers  int

	boot     int
	bootSet  bool
	alpha    float64
	alphaSet bool
	seed     int64
	seedSet  bool
}

func defaultConfig() config {
	return config{
		frac:     2.0 / 3.0,
		gridSize: 100,
		it:       3,
		alpha:    defaultAlpha,
		kern:     kernel.TypeTricube,
	}
}

const (
	defaultAlpha = 0.05

	// Bootstrap count substituted when alpha was set explicitly but no
	// bootstrap count was; applied once, at construction time.
	autoBootstrap = 200
)

// WithFrac configures the fraction of the sample used per local window.
func WithFrac(v float64) Option {
	return func(c *config) {
		c.frac = v
	}
}

// WithGridSize configures the number of evaluation points.
func WithGridSize(n int) Option {
	return func(c *config) {
		c.gridSize = n
	}
}

// WithIterations configures the number of robustness iterations that
// downweight high-residual points between refits.
func WithIterations(n int) Option {
	return func(c *config) {
		c.it = n
	}
}

// WithDelta configures the x-distance below which grid fits are linearly
// interpolated instead of recomputed. Zero recomputes at every grid point.
func WithDelta(v float64) Option {
	return func(c *config) {
		c.delta = v
	}
}

// WithKernel configures the local weighting kernel.
func WithKernel(t kernel.Type) Option {
	return func(c *config) {
		c.kern = t
	}
}

// WithBootstrap configures the number of bootstrap resamples used to build
// confidence bands. Zero disables interval estimation explicitly.
func WithBootstrap(n int) Option {
	return func(c *config) {
		c.boot = n
		c.bootSet = true
	}
}

// WithAlpha configures the two-sided tail probability of the confidence
// bands. Setting alpha without WithBootstrap enables bootstrapping with a
// default resample count; this applies even when the value equals the
// package default, since the option records intent, not the value.
func WithAlpha(v float64) Option {
	return func(c *config) {
		c.alpha = v
		c.alphaSet = true
	}
}

// WithSeed pins the bootstrap random source for reproducible bands.
// Without it each Fit draws a fresh seed from the process random source.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seedSet = true
	}
}

// WithStrict makes an infeasible frac a configuration error instead of
// clamping it up to the feasible minimum.
func WithStrict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithWorkers bounds the number of goroutines used for bootstrap resampling.
// Values <= 0 select one worker per available CPU. The bands produced are
// identical at any worker count.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

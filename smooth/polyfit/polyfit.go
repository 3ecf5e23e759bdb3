package polyfit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-smooth/smooth/curve"
)

// PolyFit is a configured polynomial smoother with analytic confidence
// bands. It is immutable after construction and safe for concurrent Fit
// calls.
type PolyFit struct {
	cfg config
}

// Option configures a PolyFit smoother.
type Option func(*config)

type config struct {
	order    int
	gridSize int
	alpha    float64
}

func defaultConfig() config {
	return config{
		order:    2,
		gridSize: 100,
		alpha:    0.05,
	}
}

// WithOrder configures the polynomial degree.
func WithOrder(n int) Option {
	return func(c *config) {
		c.order = n
	}
}

// WithGridSize configures the number of evaluation points.
func WithGridSize(n int) Option {
	return func(c *config) {
		c.gridSize = n
	}
}

// WithAlpha configures the two-sided tail probability of the bands.
func WithAlpha(v float64) Option {
	return func(c *config) {
		c.alpha = v
	}
}

// New builds a polynomial smoother from the given options.
func New(opts ...Option) (*PolyFit, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateOrder(cfg.order); err != nil {
		return nil, err
	}
	if err := validateGridSize(cfg.gridSize); err != nil {
		return nil, err
	}
	if err := validateAlpha(cfg.alpha); err != nil {
		return nil, err
	}
	return &PolyFit{cfg: cfg}, nil
}

// Fit solves the least-squares polynomial for the sample and evaluates it
// with confidence bands over an evenly spaced grid spanning the x-range.
// Bands are omitted (YMin/YMax nil) when there is no residual degree of
// freedom left to estimate the noise variance.
func (p *PolyFit) Fit(s curve.Sample) (curve.Curve, error) {
	if err := s.Validate(); err != nil {
		return curve.Curve{}, err
	}
	if nd := s.DistinctX(); p.cfg.order >= nd {
		return curve.Curve{}, fmt.Errorf("%w: order %d requires more than %d distinct x values", ErrConfig, p.cfg.order, nd)
	}

	coeffs, cov, dof, err := solve(s.X, s.Y, p.cfg.order)
	if err != nil {
		return curve.Curve{}, err
	}

	minX, maxX := s.XRange()
	xs := curve.Grid(minX, maxX, p.cfg.gridSize)

	out := curve.Curve{
		X: xs,
		Y: make([]float64, len(xs)),
	}
	for i, x0 := range xs {
		out.Y[i] = evalPoly(coeffs, x0)
	}

	if cov == nil || dof < 1 {
		return out, nil
	}

	z := distuv.UnitNormal.Quantile(1 - p.cfg.alpha/2)
	out.YMin = make([]float64, len(xs))
	out.YMax = make([]float64, len(xs))
	v := make([]float64, len(coeffs))
	for i, x0 := range xs {
		features(v, x0)
		se := math.Sqrt(quadForm(cov, v))
		half := z * se
		out.YMin[i] = out.Y[i] - half
		out.YMax[i] = out.Y[i] + half
	}
	return out, nil
}

// Coefficients returns the least-squares coefficients for the sample in
// ascending power order: c[0] + c[1]x + c[2]x^2 + ...
func (p *PolyFit) Coefficients(s curve.Sample) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if nd := s.DistinctX(); p.cfg.order >= nd {
		return nil, fmt.Errorf("%w: order %d requires more than %d distinct x values", ErrConfig, p.cfg.order, nd)
	}
	coeffs, _, _, err := solve(s.X, s.Y, p.cfg.order)
	return coeffs, err
}

// solve fits the polynomial by QR least squares and returns the coefficient
// estimates, their covariance matrix scaled by the residual variance, and
// the residual degrees of freedom. cov is nil when dof < 1.
func solve(x, y []float64, order int) (coeffs []float64, cov *mat.Dense, dof int, err error) {
	n := len(x)
	p := order + 1

	a := vandermonde(x, order)
	b := mat.NewVecDense(n, y)
	c := mat.NewVecDense(p, nil)

	qr := new(mat.QR)
	qr.Factorize(a)
	if err := qr.SolveVecTo(c, false, b); err != nil {
		return nil, nil, 0, fmt.Errorf("%w: rank-deficient design matrix: %v", ErrConfig, err)
	}

	coeffs = make([]float64, p)
	for i := range coeffs {
		coeffs[i] = c.AtVec(i)
	}

	dof = n - p
	if dof < 1 {
		return coeffs, nil, dof, nil
	}

	var rss float64
	for i := range x {
		r := y[i] - evalPoly(coeffs, x[i])
		rss += r * r
	}
	sigma2 := rss / float64(dof)

	var xtx mat.Dense
	xtx.Mul(a.T(), a)
	var inv mat.Dense
	if err := inv.Inverse(&xtx); err != nil {
		return nil, nil, 0, fmt.Errorf("%w: singular normal matrix: %v", ErrConfig, err)
	}
	inv.Scale(sigma2, &inv)
	return coeffs, &inv, dof, nil
}

// vandermonde builds the n x (order+1) design matrix with rows
// (1, x, x^2, ..., x^order).
func vandermonde(a []float64, order int) *mat.Dense {
	x := mat.NewDense(len(a), order+1, nil)
	for i := range a {
		for j, p := 0, 1.0; j <= order; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}

// features fills v with the polynomial feature vector (1, x0, x0^2, ...).
func features(v []float64, x0 float64) {
	p := 1.0
	for i := range v {
		v[i] = p
		p *= x0
	}
}

// evalPoly evaluates the polynomial at x0 by Horner's rule.
func evalPoly(coeffs []float64, x0 float64) float64 {
	var y float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x0 + coeffs[i]
	}
	return y
}

// quadForm computes v' m v.
func quadForm(m *mat.Dense, v []float64) float64 {
	var sum float64
	for i := range v {
		for j := range v {
			sum += v[i] * m.At(i, j) * v[j]
		}
	}
	return sum
}

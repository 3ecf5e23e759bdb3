package lowess

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-smooth/smooth/kernel"
)

// engine performs weighted local linear regression on a sample sorted by x.
// Evaluation points must be visited in ascending order so the nearest-k
// window can roll forward instead of being searched from scratch.
type engine struct {
	x, y []float64
	k    int
	kern kernel.Type

	// rob holds the robustness weights from the last robustify pass;
	// nil means every point carries full weight.
	rob []float64

	// scratch buffers sized to len(x)
	w    []float64
	comb []float64
}

func newEngine(x, y []float64, frac float64, kern kernel.Type) *engine {
	n := len(x)
	k := int(frac * float64(n))
	if k > n {
		k = n
	}
	if k < 2 {
		k = 2
	}
	return &engine{
		x:    x,
		y:    y,
		k:    k,
		kern: kern,
		w:    make([]float64, n),
		comb: make([]float64, n),
	}
}

// advance rolls the left edge of the k-point window forward until the window
// holds the k sample points nearest x0. Queries must be ascending.
func (e *engine) advance(lo int, x0 float64) int {
	for lo+e.k < len(e.x) && x0-e.x[lo] > e.x[lo+e.k]-x0 {
		lo++
	}
	return lo
}

// fitAt computes the weighted local linear fit at x0 over the window
// starting at lo. A window whose kernel weights sum to zero yields NaN;
// a window with no x-spread yields the weighted mean.
func (e *engine) fitAt(lo int, x0 float64) float64 {
	hi := lo + e.k
	h := math.Max(x0-e.x[lo], e.x[hi-1]-x0)

	w := e.w[lo:hi]
	kernel.Fill(e.kern, w, e.x[lo:hi], x0, h) //nolint:errcheck // lengths match by construction

	wts := w
	if e.rob != nil {
		wts = e.comb[lo:hi]
		vecmath.MulBlock(wts, w, e.rob[lo:hi])
	}

	var sw float64
	for _, v := range wts {
		sw += v
	}
	if sw == 0 {
		return math.NaN()
	}

	var mx, my float64
	for i, wv := range wts {
		mx += wv * e.x[lo+i]
		my += wv * e.y[lo+i]
	}
	mx /= sw
	my /= sw

	var sxx, sxy float64
	for i, wv := range wts {
		dx := e.x[lo+i] - mx
		sxx += wv * dx * dx
		sxy += wv * dx * (e.y[lo+i] - my)
	}
	if sxx <= 1e-12*h*h {
		return my
	}
	return my + sxy/sxx*(x0-mx)
}

// eval fits the smoother at every point of xs (ascending). With delta > 0,
// points within delta of the last computed fit are linearly interpolated
// between the surrounding computed fits instead of refitted.
func (e *engine) eval(xs []float64, delta float64) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}

	lo := e.advance(0, xs[0])
	out[0] = e.fitAt(lo, xs[0])

	for lc := 0; lc < len(xs)-1; {
		nxt := lc + 1
		for nxt < len(xs)-1 && xs[nxt] <= xs[lc]+delta {
			nxt++
		}
		lo = e.advance(lo, xs[nxt])
		out[nxt] = e.fitAt(lo, xs[nxt])

		if span := xs[nxt] - xs[lc]; nxt > lc+1 {
			for j := lc + 1; j < nxt; j++ {
				if span > 0 {
					t := (xs[j] - xs[lc]) / span
					out[j] = out[lc] + t*(out[nxt]-out[lc])
				} else {
					out[j] = out[lc]
				}
			}
		}
		lc = nxt
	}
	return out
}

// robustify runs it rounds of residual-based downweighting: fit at every
// sample point, scale residuals by six times their median magnitude, and
// bisquare-weight the next round. Points the fit could not reach keep zero
// weight for the round.
func (e *engine) robustify(it int) {
	if it <= 0 {
		return
	}
	n := len(e.x)
	fitted := make([]float64, n)
	resid := make([]float64, n)
	absr := make([]float64, 0, n)

	var scale float64
	for _, v := range e.y {
		if a := math.Abs(v); a > scale {
			scale = a
		}
	}

	for iter := 0; iter < it; iter++ {
		lo := 0
		for i, x0 := range e.x {
			lo = e.advance(lo, x0)
			fitted[i] = e.fitAt(lo, x0)
		}
		absr = absr[:0]
		for i := range resid {
			resid[i] = e.y[i] - fitted[i]
			if !math.IsNaN(resid[i]) {
				absr = append(absr, math.Abs(resid[i]))
			}
		}
		s := median(absr)
		// A residual scale at floating-point noise level means the fit is
		// effectively exact; further downweighting would only amplify
		// rounding error.
		if math.IsNaN(s) || s <= 1e-12*scale {
			return
		}
		if e.rob == nil {
			e.rob = make([]float64, n)
		}
		for i := range e.rob {
			if math.IsNaN(fitted[i]) {
				e.rob[i] = 0
				continue
			}
			e.rob[i] = kernel.Weight(kernel.TypeBisquare, resid[i]/(6*s))
		}
	}
}

// median sorts v in place and returns its median.
func median(v []float64) float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	sort.Float64s(v)
	mid := len(v) / 2
	if len(v)%2 == 1 {
		return v[mid]
	}
	return 0.5 * (v[mid-1] + v[mid])
}

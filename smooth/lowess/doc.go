// Package lowess implements locally weighted scatterplot smoothing with
// optional bootstrap confidence bands.
//
// A [Lowess] smoother fits, at each point of an evenly spaced evaluation
// grid spanning the sample's x-range, a weighted linear regression over the
// nearest fraction of the sample, weighted by a tri-cube kernel (see
// [github.com/cwbudde/algo-smooth/smooth/kernel]). Robustness iterations
// downweight outliers by their bisquare-scaled residuals, and the delta
// parameter trades accuracy for speed by interpolating between fits at
// closely spaced grid points.
//
// When bootstrap resampling is enabled, the sample is repeatedly redrawn with
// replacement and refitted against the same grid; the pointwise percentile
// envelope of the refits becomes the YMin/YMax bounds of the output curve.
//
// Requesting a window fraction smaller than the data can support is clamped
// upward by default; [WithStrict] turns the clamp into a configuration error.
package lowess

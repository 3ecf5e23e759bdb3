// Package bootstrap derives empirical confidence bands for a fitted curve by
// resampling the observations with replacement and refitting against a fixed
// evaluation grid. It is generic over the fit: any function that maps a
// resampled (x, y) pair set to fitted values on the shared grid can be
// banded, which keeps the resampler decoupled from the smoother that uses it.
//
// Resample draws are derived deterministically from a single seed and the
// iteration index, so the bands are reproducible regardless of how many
// workers run the iterations.
package bootstrap

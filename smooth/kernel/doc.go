// Package kernel provides the weighting kernels used by local regression.
//
// A kernel maps a normalized distance u = |x - x0| / h to a weight in [0, 1],
// with full weight at u = 0 and (for compactly supported kernels) zero weight
// at and beyond u = 1. Available kernels, from the LOWESS default down:
//
//   - [TypeTricube]:      (1 - u^3)^3, the classic LOWESS kernel
//   - [TypeBisquare]:     (1 - u^2)^2, also used for robustness downweighting
//   - [TypeEpanechnikov]: 1 - u^2, variance-optimal
//   - [TypeTriangle]:     1 - u
//   - [TypeUniform]:      1 on [0, 1)
//   - [TypeGauss]:        exp(-u^2 / 2), not compactly supported
//
// The [Type] enum allows selecting the kernel at smoother construction time.
package kernel

// Package polyfit fits a global polynomial to scatter data by ordinary least
// squares and derives analytic, normal-theory confidence bands from the
// coefficient covariance matrix.
//
// The design matrix is the Vandermonde matrix of the sample x's, solved via
// QR factorization. The pointwise standard error at an evaluation point x0 is
// sqrt(v' Cov(c) v) with v the feature vector (1, x0, x0^2, ...), and the
// band half-width is the normal alpha/2 quantile times that standard error.
// Rank-deficient designs (order at or above the distinct-x count) are
// rejected as configuration errors rather than producing an unstable fit.
package polyfit

// Package testutil provides deterministic scatter-data generators and float
// tolerance helpers shared by the smoothing package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Linspace returns n evenly spaced values from min to max inclusive.
func Linspace(min, max float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = min
		return out
	}
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	out[n-1] = max
	return out
}

// NoisyLine generates x on [0, xmax] and y = a + b*x plus gaussian noise of
// the given standard deviation, with a fixed seed for reproducibility.
func NoisyLine(seed int64, a, b, noise, xmax float64, n int) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = Linspace(0, xmax, n)
	y = make([]float64, n)
	for i := range y {
		y[i] = a + b*x[i] + noise*rng.NormFloat64()
	}
	return x, y
}

// NoisySine generates x on [0, xmax] and y = sin(x) plus gaussian noise of
// the given standard deviation, with a fixed seed for reproducibility.
func NoisySine(seed int64, noise, xmax float64, n int) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = Linspace(0, xmax, n)
	y = make([]float64, n)
	for i := range y {
		y[i] = math.Sin(x[i]) + noise*rng.NormFloat64()
	}
	return x, y
}

// Shuffled returns copies of x and y with their rows jointly permuted.
func Shuffled(seed int64, x, y []float64) (sx, sy []float64) {
	rng := rand.New(rand.NewSource(seed))
	sx = append([]float64(nil), x...)
	sy = append([]float64(nil), y...)
	rng.Shuffle(len(sx), func(i, j int) {
		sx[i], sx[j] = sx[j], sx[i]
		sy[i], sy[j] = sy[j], sy[i]
	})
	return sx, sy
}

package kernel

import "math"

// Type identifies a weighting kernel.
type Type int

const (
	TypeTricube Type = iota
	TypeBisquare
	TypeEpanechnikov
	TypeTriangle
	TypeUniform
	TypeGauss
)

// Metadata holds static properties of a kernel type.
type Metadata struct {
	Name string
	// CompactSupport reports whether the weight is exactly zero for u >= 1.
	CompactSupport bool
	// Efficiency is the asymptotic relative efficiency versus the
	// Epanechnikov kernel (1 by definition for Epanechnikov).
	Efficiency float64
}

var metadataByType = map[Type]Metadata{
	TypeTricube:      {Name: "Tricube", CompactSupport: true, Efficiency: 0.998},
	TypeBisquare:     {Name: "Bisquare", CompactSupport: true, Efficiency: 0.994},
	TypeEpanechnikov: {Name: "Epanechnikov", CompactSupport: true, Efficiency: 1},
	TypeTriangle:     {Name: "Triangle", CompactSupport: true, Efficiency: 0.986},
	TypeUniform:      {Name: "Uniform", CompactSupport: true, Efficiency: 0.930},
	TypeGauss:        {Name: "Gauss", CompactSupport: false, Efficiency: 0.951},
}

// Info returns static metadata for a kernel type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}
	return metadataByType[TypeTricube]
}

// Weight evaluates the kernel at normalized distance u >= 0.
// Unknown types fall back to tricube.
func Weight(t Type, u float64) float64 {
	if u < 0 {
		u = -u
	}
	if t != TypeGauss && u >= 1 {
		return 0
	}

	switch t {
	case TypeBisquare:
		v := 1 - u*u
		return v * v
	case TypeEpanechnikov:
		return 1 - u*u
	case TypeTriangle:
		return 1 - u
	case TypeUniform:
		return 1
	case TypeGauss:
		return math.Exp(-0.5 * u * u)
	default:
		v := 1 - u*u*u
		return v * v * v
	}
}

// Fill writes Weight(t, |x[i]-x0|/h) into dst for each i. dst and x must have
// the same length. A non-positive bandwidth h yields full weight at exact
// x0 matches and zero elsewhere, so degenerate windows never divide by zero.
func Fill(t Type, dst, x []float64, x0, h float64) error {
	if len(dst) != len(x) {
		return errMismatchedLength
	}
	if h <= 0 {
		for i, v := range x {
			if v == x0 {
				dst[i] = 1
			} else {
				dst[i] = 0
			}
		}
		return nil
	}
	for i, v := range x {
		dst[i] = Weight(t, math.Abs(v-x0)/h)
	}
	return nil
}

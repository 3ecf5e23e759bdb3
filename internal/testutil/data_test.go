package testutil

import (
	"math"
	"testing"
)

func TestLinspace(t *testing.T) {
	g := Linspace(0, 1, 5)
	if len(g) != 5 {
		t.Fatalf("len = %d, want 5", len(g))
	}
	if g[0] != 0 || g[4] != 1 {
		t.Fatalf("endpoints = %v, %v, want 0, 1", g[0], g[4])
	}
}

func TestNoisyLineReproducible(t *testing.T) {
	ax, ay := NoisyLine(42, 1, 2, 0.5, 10, 50)
	bx, by := NoisyLine(42, 1, 2, 0.5, 10, 50)
	for i := range ax {
		if ax[i] != bx[i] || ay[i] != by[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
	}
}

func TestNoisyLineDifferentSeeds(t *testing.T) {
	_, a := NoisyLine(1, 0, 0, 1, 10, 30)
	_, b := NoisyLine(2, 0, 0, 1, 10, 30)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestNoisySineNoiseless(t *testing.T) {
	x, y := NoisySine(7, 0, 2*math.Pi, 20)
	for i := range x {
		if math.Abs(y[i]-math.Sin(x[i])) > 1e-15 {
			t.Fatalf("index %d: y = %v, want sin(x) = %v", i, y[i], math.Sin(x[i]))
		}
	}
}

func TestShuffledPreservesPairs(t *testing.T) {
	x, y := NoisyLine(3, 1, 2, 0, 10, 40)
	sx, sy := Shuffled(9, x, y)
	for i := range sx {
		want := 1 + 2*sx[i]
		if math.Abs(sy[i]-want) > 1e-12 {
			t.Fatalf("index %d: pairing broken: y = %v, want %v", i, sy[i], want)
		}
	}
}

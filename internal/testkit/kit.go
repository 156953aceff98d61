// Package testkit provides deterministic synthetic sample pairs for
// tests. All generators take an explicit seed so fixtures are
// reproducible across runs.
package testkit

import (
	"math"
	"math/rand"
)

// LinearPair generates y = slope*x + intercept + noise*ε with standard
// normal ε
func LinearPair(n int, slope, intercept, noise float64, seed int64) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i) + rng.Float64()
		y[i] = slope*x[i] + intercept + noise*rng.NormFloat64()
	}
	return x, y
}

// MonotonePair generates a strictly increasing nonlinear pair with no
// ties
func MonotonePair(n int) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i + 1)
		y[i] = math.Exp(0.1 * x[i])
	}
	return x, y
}

// IndependentPair generates two independent uniform samples
func IndependentPair(n int, seed int64) (x, y []float64) {
	rng := rand.New(rand.NewSource(seed))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64()
		y[i] = rng.Float64()
	}
	return x, y
}

// WithMissing returns a copy of values with NaN planted at the given
// indices
func WithMissing(values []float64, idx ...int) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	for _, i := range idx {
		out[i] = math.NaN()
	}
	return out
}

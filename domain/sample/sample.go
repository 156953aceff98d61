// Package sample validates paired observations and applies the
// missing-value policy before any dependence measure is estimated.
package sample

import (
	"math"

	"goassoc/domain/measure"
	"goassoc/internal/errors"
)

// Prepared is the outcome of preprocessing a sample pair. When Undefined
// is set the inputs cannot support a test and every numeric field of the
// eventual result must be NaN; NEff is still valid in that case.
type Prepared struct {
	X, Y      []float64
	Weights   []float64
	NEff      float64
	Undefined bool
}

// CheckSizes validates that x, y, and a non-empty weight vector are
// pairwise aligned
func CheckSizes(x, y, weights []float64) error {
	if len(x) != len(y) {
		return errors.Newf(errors.CodeValidation, "sizes of x (%d) and y (%d) don't match", len(x), len(y))
	}
	if len(weights) > 0 && len(weights) != len(x) {
		return errors.Newf(errors.CodeValidation, "sizes of data (%d) and weights (%d) don't match", len(x), len(weights))
	}
	return nil
}

// ValidIndex returns the indices of rows where neither x, y, nor the
// corresponding weight is missing
func ValidIndex(x, y, weights []float64) []int {
	idx := make([]int, 0, len(x))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		if len(weights) > 0 && math.IsNaN(weights[i]) {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// Filter keeps only the rows selected by ValidIndex
func Filter(x, y, weights []float64) (fx, fy, fw []float64) {
	idx := ValidIndex(x, y, weights)
	fx = make([]float64, len(idx))
	fy = make([]float64, len(idx))
	if len(weights) > 0 {
		fw = make([]float64, len(idx))
	}
	for k, i := range idx {
		fx[k] = x[i]
		fy[k] = y[i]
		if fw != nil {
			fw[k] = weights[i]
		}
	}
	return fx, fy, fw
}

// HasMissing reports whether any row of the pair (or its weight) is NaN
func HasMissing(x, y, weights []float64) bool {
	return len(ValidIndex(x, y, weights)) < len(x)
}

// EffectiveSize computes the effective sample size. Without weights it is
// the row count; with weights it is the Kish size (Σw)²/Σw², which reduces
// to the row count under unit weights.
func EffectiveSize(n int, weights []float64) float64 {
	if len(weights) == 0 {
		return float64(n)
	}
	var sum, sumSq float64
	for _, w := range weights {
		sum += w
		sumSq += w * w
	}
	return sum * sum / sumSq
}

// Prepare validates the inputs and applies the missing-value policy.
// With removeMissing, rows containing NaN are dropped and too few
// remaining rows mark the result undefined; without it, any NaN marks
// the result undefined with NEff taken from the unfiltered inputs.
// Estimators downstream may assume Prepared data is missing-free.
func Prepare(x, y, weights []float64, kind measure.Kind, removeMissing bool) (Prepared, error) {
	if err := CheckSizes(x, y, weights); err != nil {
		return Prepared{}, err
	}

	if removeMissing {
		fx, fy, fw := Filter(x, y, weights)
		p := Prepared{
			X:       fx,
			Y:       fy,
			Weights: fw,
			NEff:    EffectiveSize(len(fx), fw),
		}
		if len(fx) < kind.MinObservations() {
			p.Undefined = true
		}
		return p, nil
	}

	p := Prepared{
		X:       x,
		Y:       y,
		Weights: weights,
		NEff:    EffectiveSize(len(x), weights),
	}
	if HasMissing(x, y, weights) || len(x) < kind.MinObservations() {
		p.Undefined = true
	}
	return p, nil
}

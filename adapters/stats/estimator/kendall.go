package estimator

import "math"

// KendallTau computes the weighted Kendall tau-b. Each pair (i, j)
// contributes with weight w_i*w_j; the denominator corrects for ties
// in either coordinate so perfectly concordant data reaches exactly 1.
func KendallTau(x, y, weights []float64) float64 {
	n := len(x)
	w := unitWeights(weights, n)

	var num, pairs, tiesX, tiesY float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pw := w[i] * w[j]
			pairs += pw
			if x[i] == x[j] {
				tiesX += pw
			}
			if y[i] == y[j] {
				tiesY += pw
			}
			num += pw * sign(x[i]-x[j]) * sign(y[i]-y[j])
		}
	}

	return num / math.Sqrt((pairs-tiesX)*(pairs-tiesY))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

package estimator

import "math"

// PearsonRho computes the weighted Pearson product-moment correlation.
// Inputs must be missing-free and pairwise aligned; weights may be nil
// for the unweighted estimate.
func PearsonRho(x, y, weights []float64) float64 {
	n := len(x)
	w := unitWeights(weights, n)

	var wSum, muX, muY float64
	for i := 0; i < n; i++ {
		wSum += w[i]
		muX += w[i] * x[i]
		muY += w[i] * y[i]
	}
	muX /= wSum
	muY /= wSum

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - muX
		dy := y[i] - muY
		cov += w[i] * dx * dy
		varX += w[i] * dx * dx
		varY += w[i] * dy * dy
	}

	return cov / math.Sqrt(varX*varY)
}

package estimator

// BlomqvistBeta computes the weighted Blomqvist quadrant correlation:
// the weighted balance of observations falling in concordant versus
// discordant quadrants about the weighted medians. Observations lying
// exactly on a median line carry no quadrant information and are
// excluded from both numerator and denominator.
func BlomqvistBeta(x, y, weights []float64) float64 {
	n := len(x)
	w := unitWeights(weights, n)

	medX := weightedMedian(x, weights)
	medY := weightedMedian(y, weights)

	var num, denom float64
	for i := 0; i < n; i++ {
		s := sign(x[i]-medX) * sign(y[i]-medY)
		if s == 0 {
			continue
		}
		num += w[i] * s
		denom += w[i]
	}
	if denom == 0 {
		return 0
	}
	return num / denom
}

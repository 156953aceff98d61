package estimator

// HoeffdingD computes the weighted Hoeffding dependence statistic,
// scaled by 30 so the population value under perfect dependence is 1.
// The weighted form replaces every count by a weight sum, so unit
// weights reproduce the classical estimator exactly and doubling an
// observation's weight is equivalent to duplicating the row. Requires
// an effective size of at least 5 (the preprocessor enforces this).
func HoeffdingD(x, y, weights []float64) float64 {
	n := len(x)
	w := unitWeights(weights, n)

	r := Ranks(x, w)
	s := Ranks(y, w)
	q := bivariateRanks(x, y, w)

	var nf, sumQ, sumRS, sumMix float64
	for i := 0; i < n; i++ {
		nf += w[i]
		sumQ += w[i] * (q[i] - 1) * (q[i] - 2)
		sumRS += w[i] * (r[i] - 1) * (r[i] - 2) * (s[i] - 1) * (s[i] - 2)
		sumMix += w[i] * (r[i] - 2) * (s[i] - 2) * (q[i] - 1)
	}

	num := (nf-2)*(nf-3)*sumQ + sumRS - 2*(nf-2)*sumMix
	denom := nf * (nf - 1) * (nf - 2) * (nf - 3) * (nf - 4)
	return 30 * num / denom
}

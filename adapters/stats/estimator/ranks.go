package estimator

import "sort"

// unitWeights returns w unchanged when non-empty, otherwise a unit vector
func unitWeights(w []float64, n int) []float64 {
	if len(w) > 0 {
		return w
	}
	u := make([]float64, n)
	for i := range u {
		u[i] = 1
	}
	return u
}

// Ranks computes weighted mid-ranks (average rank over ties). With unit
// weights the result is the classical 1..n mid-rank vector.
func Ranks(x, weights []float64) []float64 {
	n := len(x)
	w := unitWeights(weights, n)

	ord := make([]int, n)
	for i := range ord {
		ord[i] = i
	}
	sort.Slice(ord, func(a, b int) bool { return x[ord[a]] < x[ord[b]] })

	ranks := make([]float64, n)
	var cum float64
	for i := 0; i < n; {
		j := i
		var groupW float64
		for j < n && x[ord[j]] == x[ord[i]] {
			groupW += w[ord[j]]
			j++
		}
		r := 0.5 + cum + 0.5*groupW
		for k := i; k < j; k++ {
			ranks[ord[k]] = r
		}
		cum += groupW
		i = j
	}
	return ranks
}

// bivariateRanks computes the weighted bivariate rank of each observation:
// the weight of points strictly below-left, with half credit for a tie in
// one coordinate and quarter credit for a tie in both.
func bivariateRanks(x, y, weights []float64) []float64 {
	n := len(x)
	w := unitWeights(weights, n)

	q := make([]float64, n)
	for i := 0; i < n; i++ {
		qi := 0.75
		for j := 0; j < n; j++ {
			switch {
			case x[j] < x[i] && y[j] < y[i]:
				qi += w[j]
			case x[j] == x[i] && y[j] == y[i]:
				qi += 0.25 * w[j]
			case x[j] == x[i] && y[j] < y[i]:
				qi += 0.5 * w[j]
			case x[j] < x[i] && y[j] == y[i]:
				qi += 0.5 * w[j]
			}
		}
		q[i] = qi
	}
	return q
}

// weightedMedian returns the smallest value whose cumulative weight
// reaches half of the total
func weightedMedian(x, weights []float64) float64 {
	n := len(x)
	w := unitWeights(weights, n)

	ord := make([]int, n)
	for i := range ord {
		ord[i] = i
	}
	sort.Slice(ord, func(a, b int) bool { return x[ord[a]] < x[ord[b]] })

	var total float64
	for _, wi := range w {
		total += wi
	}

	var cum float64
	for _, i := range ord {
		cum += w[i]
		if cum >= 0.5*total {
			return x[i]
		}
	}
	return x[ord[n-1]]
}

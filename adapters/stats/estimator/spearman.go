package estimator

// SpearmanRho computes the weighted Spearman rank correlation: the
// weighted Pearson correlation of the weighted mid-ranks.
func SpearmanRho(x, y, weights []float64) float64 {
	return PearsonRho(Ranks(x, weights), Ranks(y, weights), weights)
}

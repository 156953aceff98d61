// Package estimator implements the weighted dependence-measure
// estimators behind the inference pipeline. Every estimator is pure and
// deterministic, accepts an optional non-negative weight vector (nil
// means unit weights), and assumes its inputs have already been
// validated and cleared of missing values.
package estimator

import (
	"goassoc/domain/measure"
	"goassoc/internal/errors"
)

// Estimate dispatches to the estimator for the given kind. The kind set
// is closed; an unrecognized kind fails fast even though the resolver
// upstream should never produce one.
func Estimate(kind measure.Kind, x, y, weights []float64) (float64, error) {
	switch kind {
	case measure.Pearson:
		return PearsonRho(x, y, weights), nil
	case measure.Spearman:
		return SpearmanRho(x, y, weights), nil
	case measure.Kendall:
		return KendallTau(x, y, weights), nil
	case measure.Blomqvist:
		return BlomqvistBeta(x, y, weights), nil
	case measure.Hoeffding:
		return HoeffdingD(x, y, weights), nil
	default:
		return 0, errors.Newf(errors.CodeUnsupportedMethod, "method %q not implemented", kind)
	}
}

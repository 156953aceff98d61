package engine

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"goassoc/domain/measure"
	"goassoc/internal/errors"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// PValue computes the p-value of the independence test from the
// standardized statistic. All kinds except Hoeffding's D use the
// standard normal limiting distribution; Hoeffding's D uses the
// Blum-Kiefer-Rosenblatt approximation and admits only the two-sided
// alternative.
func PValue(statistic float64, kind measure.Kind, alternative measure.Alternative, nEff float64) (float64, error) {
	if kind == measure.Hoeffding {
		if nEff <= 0 {
			return 0, errors.New(errors.CodeIncompatible, "must provide n_eff for Hoeffding's D")
		}
		if alternative != measure.TwoSided {
			return 0, errors.New(errors.CodeIncompatible, "only two-sided test available for Hoeffding's D")
		}
		return phoeffb(statistic, nEff), nil
	}

	switch alternative {
	case measure.TwoSided:
		return 2 * stdNormal.CDF(-math.Abs(statistic)), nil
	case measure.Less:
		return stdNormal.CDF(statistic), nil
	case measure.Greater:
		return 1 - stdNormal.CDF(statistic), nil
	default:
		return 0, errors.Newf(errors.CodeUnsupportedAlt, "alternative %q not implemented", alternative)
	}
}

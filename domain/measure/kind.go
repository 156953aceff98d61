package measure

import (
	"goassoc/internal/errors"
)

// Kind identifies one of the supported dependence measures
type Kind string

const (
	Pearson   Kind = "pearson"   // Pearson product-moment correlation
	Spearman  Kind = "spearman"  // Spearman's rho (rank correlation)
	Kendall   Kind = "kendall"   // Kendall's tau
	Blomqvist Kind = "blomqvist" // Blomqvist's beta (quadrant correlation)
	Hoeffding Kind = "hoeffding" // Hoeffding's D
)

// Alternative identifies the alternative hypothesis of an independence test
type Alternative string

const (
	TwoSided Alternative = "two-sided" // association in either direction
	Less     Alternative = "less"      // negative association
	Greater  Alternative = "greater"   // positive association
)

// aliases maps every accepted method name to its canonical kind.
// Resolution is case-exact.
var aliases = map[string]Kind{
	"pearson":   Pearson,
	"prho":      Pearson,
	"cor":       Pearson,
	"spearman":  Spearman,
	"srho":      Spearman,
	"rho":       Spearman,
	"kendall":   Kendall,
	"ktau":      Kendall,
	"tau":       Kendall,
	"blomqvist": Blomqvist,
	"bbeta":     Blomqvist,
	"beta":      Blomqvist,
	"hoeffding": Hoeffding,
	"hoeffd":    Hoeffding,
	"d":         Hoeffding,
}

// Resolve maps a method name (or alias) to its canonical kind.
// The result should be carried through the pipeline; later stages
// dispatch on Kind, never on the raw string.
func Resolve(method string) (Kind, error) {
	kind, ok := aliases[method]
	if !ok {
		return "", errors.Newf(errors.CodeUnsupportedMethod, "unsupported method %q", method)
	}
	return kind, nil
}

// ResolveAlternative validates an alternative hypothesis name
func ResolveAlternative(alternative string) (Alternative, error) {
	switch Alternative(alternative) {
	case TwoSided, Less, Greater:
		return Alternative(alternative), nil
	default:
		return "", errors.Newf(errors.CodeUnsupportedAlt, "alternative %q not implemented", alternative)
	}
}

// MinObservations is the smallest number of valid rows for which the
// measure is computable; below it the test result is undefined.
func (k Kind) MinObservations() int {
	if k == Hoeffding {
		// the D denominator vanishes for n < 5
		return 5
	}
	return 2
}

func (k Kind) String() string {
	return string(k)
}

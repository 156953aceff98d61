// Package engine runs asymptotic independence tests on paired,
// optionally weighted samples. The pipeline resolves the method name
// once, preprocesses the pair (missing-value policy, effective sample
// size), estimates the measure, standardizes it into a test statistic,
// and computes the p-value. Everything is pure and free of cross-call
// state, so callers may run tests concurrently without synchronization.
package engine

import (
	"math"

	"goassoc/adapters/stats/estimator"
	"goassoc/domain/measure"
	"goassoc/domain/sample"
)

type options struct {
	weights       []float64
	removeMissing bool
	alternative   string
}

// Option configures a measure computation or independence test
type Option func(*options)

// WithWeights attaches a non-negative observation weight vector
func WithWeights(weights []float64) Option {
	return func(o *options) { o.weights = weights }
}

// KeepMissing disables missing-value removal; any NaN in the inputs
// then short-circuits to the undefined result
func KeepMissing() Option {
	return func(o *options) { o.removeMissing = false }
}

// WithAlternative selects the alternative hypothesis ("two-sided",
// "less", or "greater"); the default is two-sided
func WithAlternative(alternative string) Option {
	return func(o *options) { o.alternative = alternative }
}

func buildOptions(opts []Option) options {
	o := options{removeMissing: true, alternative: string(measure.TwoSided)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Measure computes the (weighted) dependence measure named by method.
// It returns NaN without error when the missing-value policy
// short-circuits the computation.
func Measure(x, y []float64, method string, opts ...Option) (float64, error) {
	o := buildOptions(opts)

	kind, err := measure.Resolve(method)
	if err != nil {
		return 0, err
	}

	prep, err := sample.Prepare(x, y, o.weights, kind, o.removeMissing)
	if err != nil {
		return 0, err
	}
	if prep.Undefined {
		return math.NaN(), nil
	}

	return estimator.Estimate(kind, prep.X, prep.Y, prep.Weights)
}

// IndepTest holds the immutable outcome of an asymptotic independence
// test: either every numeric field is defined, or estimate, statistic,
// and p-value are all NaN (the effective sample size stays reported).
type IndepTest struct {
	method      measure.Kind
	alternative measure.Alternative
	nEff        float64
	estimate    float64
	statistic   float64
	pValue      float64
	defined     bool
}

// NewIndepTest runs the full test pipeline. Validation,
// unsupported-method, unsupported-alternative, and test-incompatibility
// failures return an error before any result exists; unresolved missing
// data instead yields a test whose Defined() is false.
func NewIndepTest(x, y []float64, method string, opts ...Option) (*IndepTest, error) {
	o := buildOptions(opts)

	kind, err := measure.Resolve(method)
	if err != nil {
		return nil, err
	}
	alt, err := measure.ResolveAlternative(o.alternative)
	if err != nil {
		return nil, err
	}

	prep, err := sample.Prepare(x, y, o.weights, kind, o.removeMissing)
	if err != nil {
		return nil, err
	}

	test := &IndepTest{
		method:      kind,
		alternative: alt,
		nEff:        prep.NEff,
	}
	if prep.Undefined {
		test.estimate = math.NaN()
		test.statistic = math.NaN()
		test.pValue = math.NaN()
		return test, nil
	}

	estimate, err := estimator.Estimate(kind, prep.X, prep.Y, prep.Weights)
	if err != nil {
		return nil, err
	}
	statistic, err := Standardize(estimate, kind, prep.NEff)
	if err != nil {
		return nil, err
	}
	pValue, err := PValue(statistic, kind, alt, prep.NEff)
	if err != nil {
		return nil, err
	}

	test.estimate = estimate
	test.statistic = statistic
	test.pValue = pValue
	test.defined = true
	return test, nil
}

// Method returns the canonical measure kind used for the test
func (t *IndepTest) Method() measure.Kind { return t.method }

// Alternative returns the alternative hypothesis of the test
func (t *IndepTest) Alternative() measure.Alternative { return t.alternative }

// NEff returns the effective sample size; it is valid even when the
// rest of the result is undefined
func (t *IndepTest) NEff() float64 { return t.nEff }

// Estimate returns the estimated dependence measure
func (t *IndepTest) Estimate() float64 { return t.estimate }

// Statistic returns the standardized test statistic
func (t *IndepTest) Statistic() float64 { return t.statistic }

// PValue returns the p-value of the test
func (t *IndepTest) PValue() float64 { return t.pValue }

// Defined reports whether the numeric results are computable; when
// false, estimate, statistic, and p-value are all NaN together
func (t *IndepTest) Defined() bool { return t.defined }

package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goassoc/domain/measure"
	"goassoc/internal/errors"
)

var nan = math.NaN()

func TestMeasure_AgreesWithTestEstimate(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	y := []float64{2, 1, 4, 3, 6, 8, 7, 9}

	for _, method := range []string{"pearson", "srho", "tau", "bbeta", "hoeffd"} {
		est, err := Measure(x, y, method)
		require.NoError(t, err, method)

		test, err := NewIndepTest(x, y, method)
		require.NoError(t, err, method)
		assert.Equal(t, est, test.Estimate(), "estimates must agree for %s", method)
	}
}

func TestNewIndepTest_Pearson(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	y := []float64{1.2, 2.1, 2.9, 4.3, 4.8, 6.1, 7.2, 7.9, 9.1, 9.8}

	test, err := NewIndepTest(x, y, "pearson")
	require.NoError(t, err)

	assert.Equal(t, measure.Pearson, test.Method())
	assert.Equal(t, measure.TwoSided, test.Alternative())
	assert.Equal(t, 10.0, test.NEff())
	assert.True(t, test.Defined())
	assert.InDelta(t, 1.0, test.Estimate(), 0.01)
	assert.Greater(t, test.PValue(), 0.0)
	assert.Less(t, test.PValue(), 0.001)
}

func TestNewIndepTest_SizeMismatch(t *testing.T) {
	_, err := NewIndepTest([]float64{1, 2, 3}, []float64{1, 2}, "pearson")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeValidation))
}

func TestNewIndepTest_UnsupportedMethod(t *testing.T) {
	_, err := NewIndepTest([]float64{1, 2}, []float64{1, 2}, "ttest")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeUnsupportedMethod))
}

func TestNewIndepTest_UnsupportedAlternative(t *testing.T) {
	_, err := NewIndepTest([]float64{1, 2, 3}, []float64{1, 2, 3}, "pearson",
		WithAlternative("one-sided"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeUnsupportedAlt))
}

func TestNewIndepTest_HoeffdingRejectsOneSided(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2, 3, 1, 5, 6, 4}

	_, err := NewIndepTest(x, y, "hoeffding", WithAlternative("greater"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeIncompatible))
}

func TestNewIndepTest_MissingRemoved(t *testing.T) {
	// two of three rows carry a missing value; one valid pair remains
	x := []float64{1, nan, 3}
	y := []float64{1, 2, nan}

	test, err := NewIndepTest(x, y, "pearson")
	require.NoError(t, err)

	assert.False(t, test.Defined())
	assert.Equal(t, 1.0, test.NEff())
	assert.True(t, math.IsNaN(test.Estimate()))
	assert.True(t, math.IsNaN(test.Statistic()))
	assert.True(t, math.IsNaN(test.PValue()))
}

func TestNewIndepTest_MissingKept(t *testing.T) {
	x := []float64{1, nan, 3}
	y := []float64{1, 2, nan}

	test, err := NewIndepTest(x, y, "pearson", KeepMissing())
	require.NoError(t, err)

	assert.False(t, test.Defined())
	// n_eff reflects the unfiltered length
	assert.Equal(t, 3.0, test.NEff())
	assert.True(t, math.IsNaN(test.Estimate()))
	assert.True(t, math.IsNaN(test.Statistic()))
	assert.True(t, math.IsNaN(test.PValue()))

	est, err := Measure(x, y, "pearson", KeepMissing())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(est))
}

func TestNewIndepTest_Weighted(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1.1, 1.9, 3.2, 3.8, 5.1}
	w := []float64{1, 2, 1, 2, 1}

	test, err := NewIndepTest(x, y, "kendall", WithWeights(w))
	require.NoError(t, err)

	assert.True(t, test.Defined())
	// Kish size (Σw)²/Σw² = 49/11
	assert.InDelta(t, 49.0/11.0, test.NEff(), 1e-12)
}

func TestNewIndepTest_PerfectConcordanceRoundTrip(t *testing.T) {
	// estimate hits exactly 1.0 and must survive the clamp: the
	// two-sided p-value is tiny but neither zero nor NaN
	n := 10
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = float64(i * i)
	}

	for _, method := range []string{"kendall", "spearman"} {
		test, err := NewIndepTest(x, y, method)
		require.NoError(t, err, method)

		assert.Equal(t, 1.0, test.Estimate(), method)
		p := test.PValue()
		assert.False(t, math.IsNaN(p), method)
		assert.False(t, math.IsInf(p, 0), method)
		assert.Greater(t, p, 0.0, method)
		assert.Less(t, p, 1e-4, method)
	}
}

func TestNewIndepTest_Hoeffding(t *testing.T) {
	n := 12
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = float64(i)
	}

	test, err := NewIndepTest(x, y, "hoeffding")
	require.NoError(t, err)

	assert.True(t, test.Defined())
	assert.Greater(t, test.Estimate(), 0.0)
	assert.GreaterOrEqual(t, test.PValue(), 1e-12)
	assert.LessOrEqual(t, test.PValue(), 1.0)
	// strong dependence should be flagged
	assert.Less(t, test.PValue(), 0.05)
}

func TestPValue_NormalBranches(t *testing.T) {
	p, err := PValue(1.959964, measure.Pearson, measure.TwoSided, 30)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, p, 1e-4)

	p, err = PValue(0, measure.Kendall, measure.Less, 30)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12)

	p, err = PValue(0, measure.Blomqvist, measure.Greater, 30)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12)

	_, err = PValue(1, measure.Pearson, measure.Alternative("both"), 30)
	assert.True(t, errors.HasCode(err, errors.CodeUnsupportedAlt))
}

func TestPValue_HoeffdingNeedsNEff(t *testing.T) {
	_, err := PValue(0.1, measure.Hoeffding, measure.TwoSided, 0)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeIncompatible))
}

func TestPValue_MonotoneInStatistic(t *testing.T) {
	prev := 1.1
	for _, s := range []float64{0, 0.5, 1, 2, 3, 5} {
		p, err := PValue(s, measure.Spearman, measure.TwoSided, 25)
		require.NoError(t, err)
		assert.LessOrEqual(t, p, prev, "p must not grow with |statistic|")
		prev = p
	}
}

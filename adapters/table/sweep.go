package table

import (
	"time"

	"github.com/google/uuid"

	"goassoc/adapters/stats/engine"
	"goassoc/internal/errors"
)

// PairResult is the independence-test outcome for one column pair
type PairResult struct {
	VariableX string            `json:"variable_x"`
	VariableY string            `json:"variable_y"`
	Test      *engine.IndepTest `json:"-"`

	Estimate  float64 `json:"estimate"`
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
	NEff      float64 `json:"n_eff"`
	Defined   bool    `json:"defined"`
}

// Manifest captures the parameters and accounting of a sweep
type Manifest struct {
	SweepID          string    `json:"sweep_id"`
	Method           string    `json:"method"`
	Alternative      string    `json:"alternative"`
	TotalComparisons int       `json:"total_comparisons"`
	Undefined        int       `json:"undefined"`
	RuntimeMs        int64     `json:"runtime_ms"`
	CreatedAt        time.Time `json:"created_at"`
}

// Sweep is the complete result of testing every column pair of a table
type Sweep struct {
	Manifest Manifest     `json:"manifest"`
	Results  []PairResult `json:"results"`
}

// RunSweep runs the independence test for all column pairs of tbl and
// records an audit manifest alongside the per-pair results.
func RunSweep(tbl *Table, method string, opts ...engine.Option) (*Sweep, error) {
	start := time.Now()
	d := tbl.NumCols()
	if d < 2 {
		return nil, errors.New(errors.CodeValidation, "table must have at least 2 columns")
	}

	results := make([]PairResult, 0, d*(d-1)/2)
	undefined := 0
	var alternative string
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			test, err := engine.NewIndepTest(tbl.Column(i), tbl.Column(j), method, opts...)
			if err != nil {
				return nil, err
			}
			if !test.Defined() {
				undefined++
			}
			alternative = string(test.Alternative())
			results = append(results, PairResult{
				VariableX: tbl.Columns[i],
				VariableY: tbl.Columns[j],
				Test:      test,
				Estimate:  test.Estimate(),
				Statistic: test.Statistic(),
				PValue:    test.PValue(),
				NEff:      test.NEff(),
				Defined:   test.Defined(),
			})
		}
	}

	return &Sweep{
		Manifest: Manifest{
			SweepID:          uuid.New().String(),
			Method:           method,
			Alternative:      alternative,
			TotalComparisons: len(results),
			Undefined:        undefined,
			RuntimeMs:        time.Since(start).Milliseconds(),
			CreatedAt:        start.UTC(),
		},
		Results: results,
	}, nil
}

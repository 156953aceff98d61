package table

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"goassoc/adapters/stats/engine"
	"goassoc/internal/errors"
)

// Pairwise computes the symmetric matrix of pairwise dependence
// measures over the columns of data: the diagonal is fixed to 1, the
// upper triangle is computed and mirrored below. Column pairs are
// evaluated concurrently; the engine holds no cross-call state, so the
// only coordination needed is that each goroutine writes distinct
// cells.
func Pairwise(data *mat.Dense, method string, opts ...engine.Option) (*mat.Dense, error) {
	_, d := data.Dims()
	if d < 2 {
		return nil, errors.New(errors.CodeValidation, "data must have at least 2 columns")
	}

	out := mat.NewDense(d, d, nil)
	for i := 0; i < d; i++ {
		out.Set(i, i, 1)
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			g.Go(func() error {
				v, err := engine.Measure(mat.Col(nil, i, data), mat.Col(nil, j, data), method, opts...)
				if err != nil {
					return err
				}
				out.Set(i, j, v)
				out.Set(j, i, v)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

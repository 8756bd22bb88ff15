package regress

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goregress/dataset"
)

// designMatrix evaluates the expanded terms against every row, producing the
// n x (p+1) design matrix with a leading intercept column of ones.
func designMatrix(t *dataset.Table, terms []Term) (*mat.Dense, error) {
	n := t.Len()
	x := mat.NewDense(n, len(terms)+1, nil)

	for i := 0; i < n; i++ {
		x.Set(i, 0, 1)
	}
	for j, tm := range terms {
		col, err := tm.eval(t)
		if err != nil {
			return nil, err
		}
		x.SetCol(j+1, col)
	}
	return x, nil
}

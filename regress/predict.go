package regress

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goregress/dataset"
)

// IntervalKind selects the interval formula used by Predict.
type IntervalKind int

const (
	// ConfidenceInterval bounds the mean response at the given covariates.
	ConfidenceInterval IntervalKind = iota
	// PredictionInterval bounds a single future observation; it adds the
	// residual variance to the estimator's own variance and is therefore
	// strictly wider than the confidence interval whenever the residual
	// variance is nonzero.
	PredictionInterval
)

// Prediction is one point estimate with its interval bounds.
type Prediction struct {
	Point float64
	Lower float64
	Upper float64
}

// PointPredictions applies the model's coefficients to new rows, returning
// one point estimate per row. The rows must supply every base column the
// model's terms reference; dataset.ErrMissingColumn is returned otherwise.
func (m *Model) PointPredictions(rows *dataset.Table) ([]float64, error) {
	if err := m.checkColumns(rows); err != nil {
		return nil, err
	}
	x, err := designMatrix(rows, m.Terms)
	if err != nil {
		return nil, err
	}

	n := rows.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		pred := 0.0
		for j, bj := range m.beta {
			pred += bj * x.At(i, j)
		}
		out[i] = pred
	}
	return out, nil
}

// Predict produces point estimates with confidence or prediction intervals
// at the given level for each new row. Level must lie in (0, 1);
// ErrInvalidConfidenceLevel is returned before any computation otherwise.
func (m *Model) Predict(rows *dataset.Table, kind IntervalKind, level float64) ([]Prediction, error) {
	if level <= 0 || level >= 1 {
		return nil, errors.Wrapf(ErrInvalidConfidenceLevel, "got %v", level)
	}
	if m.DOF <= 0 {
		return nil, errors.Wrap(ErrDegenerateDesign, "no residual degrees of freedom for intervals")
	}
	if err := m.checkColumns(rows); err != nil {
		return nil, err
	}

	x, err := designMatrix(rows, m.Terms)
	if err != nil {
		return nil, err
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(m.DOF)}
	tq := tDist.Quantile(1 - (1-level)/2)
	sigma2 := m.ResidualStdError * m.ResidualStdError

	n := rows.Len()
	params := len(m.beta)
	out := make([]Prediction, n)
	x0 := mat.NewVecDense(params, nil)
	var hx mat.VecDense

	for i := 0; i < n; i++ {
		point := 0.0
		for j, bj := range m.beta {
			x0.SetVec(j, x.At(i, j))
			point += bj * x.At(i, j)
		}

		// Leverage x0' (X'X)^-1 x0 from the training factorization.
		hx.MulVec(m.xtxInv, x0)
		h := mat.Dot(x0, &hx)

		variance := sigma2 * h
		if kind == PredictionInterval {
			variance += sigma2
		}
		half := tq * math.Sqrt(variance)
		out[i] = Prediction{Point: point, Lower: point - half, Upper: point + half}
	}
	return out, nil
}

// checkColumns verifies the new rows carry every base column the model's
// term set references, before any evaluation begins.
func (m *Model) checkColumns(rows *dataset.Table) error {
	for _, tm := range m.Terms {
		for _, col := range tm.Columns() {
			if !rows.HasColumn(col) {
				return errors.Wrapf(dataset.ErrMissingColumn, "%q required by term %q", col, tm.Name())
			}
		}
	}
	return nil
}

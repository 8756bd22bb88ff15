package diagnostics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goregress/dataset"
	"github.com/sartorproj/goregress/regress"
)

func fittedModel(t *testing.T) *regress.Model {
	t.Helper()
	n := 50
	y := make([]float64, n)
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = 3 + 2*x[i] + float64(i%11-5)/5
	}
	table, err := dataset.New(
		dataset.NumericColumn("y", y),
		dataset.NumericColumn("x", x),
	)
	require.NoError(t, err)

	m, err := regress.Fit(table, "y", []regress.Term{regress.Identity("x")})
	require.NoError(t, err)
	return m
}

func TestDiagnoseReport(t *testing.T) {
	m := fittedModel(t)
	report := Diagnose(m)

	require.Len(t, report.FittedResiduals, m.NObs)
	require.Len(t, report.QQ, m.NObs)

	fitted := m.FittedValues()
	residuals := m.Residuals()
	for i, p := range report.FittedResiduals {
		require.Equal(t, fitted[i], p.X)
		require.Equal(t, residuals[i], p.Y)
	}
}

func TestDiagnoseDoesNotMutateModel(t *testing.T) {
	m := fittedModel(t)
	before := m.Residuals()
	_ = Diagnose(m)
	require.Equal(t, before, m.Residuals())
}

func TestHistogramCountsSumToN(t *testing.T) {
	m := fittedModel(t)
	report := Diagnose(m)

	total := 0
	for _, c := range report.Histogram.Counts {
		total += c
	}
	require.Equal(t, m.NObs, total)
	require.Len(t, report.Histogram.Edges, len(report.Histogram.Counts)+1)
}

func TestQQPairsMonotone(t *testing.T) {
	m := fittedModel(t)
	report := Diagnose(m)

	for i := 1; i < len(report.QQ); i++ {
		require.Greater(t, report.QQ[i].X, report.QQ[i-1].X, "theoretical quantiles ascend")
		require.GreaterOrEqual(t, report.QQ[i].Y, report.QQ[i-1].Y, "sample quantiles sorted")
	}

	// Standardized residuals have mean ~0; the middle of the plot sits
	// near the origin.
	mid := report.QQ[len(report.QQ)/2]
	require.InDelta(t, 0, mid.X, 0.1)
}

func TestDurbinWatson(t *testing.T) {
	// Alternating residuals have maximal negative serial correlation:
	// numerator (n-1)*4, denominator n, so DW -> 4.
	n := 100
	alternating := make([]float64, n)
	for i := range alternating {
		if i%2 == 0 {
			alternating[i] = 1
		} else {
			alternating[i] = -1
		}
	}
	dw := DurbinWatson(alternating)
	require.InDelta(t, 4*float64(n-1)/float64(n), dw, 1e-12)

	// A slowly drifting sequence is positively correlated: DW near 0.
	drift := make([]float64, n)
	for i := range drift {
		drift[i] = math.Sin(float64(i) / 25)
	}
	require.Less(t, DurbinWatson(drift), 1.0)

	require.True(t, math.IsNaN(DurbinWatson([]float64{1})))
}

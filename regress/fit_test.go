package regress

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goregress/dataset"
)

// noisyTable builds y = 2 + 3*x1 - 1.5*x2 + e with deterministic pseudo-noise.
func noisyTable(t *testing.T, n int) *dataset.Table {
	t.Helper()
	y := make([]float64, n)
	x1 := make([]float64, n)
	x2 := make([]float64, n)
	for i := 0; i < n; i++ {
		x1[i] = float64(i)
		x2[i] = float64((i * 3) % 17)
		e := float64(i%7-3) / 3
		y[i] = 2 + 3*x1[i] - 1.5*x2[i] + e
	}
	table, err := dataset.New(
		dataset.NumericColumn("y", y),
		dataset.NumericColumn("x1", x1),
		dataset.NumericColumn("x2", x2),
	)
	require.NoError(t, err)
	return table
}

func TestFitExactLine(t *testing.T) {
	table, err := dataset.New(
		dataset.NumericColumn("y", []float64{1, 2, 3}),
		dataset.NumericColumn("x", []float64{1, 2, 3}),
	)
	require.NoError(t, err)

	m, err := Fit(table, "y", []Term{Identity("x")})
	require.NoError(t, err)

	require.InDelta(t, 0, m.Coefficients[0].Estimate, 1e-10, "intercept")
	require.InDelta(t, 1, m.Coefficients[1].Estimate, 1e-10, "slope")
	require.InDelta(t, 1, m.R2, 1e-10)
	for _, r := range m.Residuals() {
		require.InDelta(t, 0, r, 1e-10)
	}
}

func TestFitIsDeterministic(t *testing.T) {
	table := noisyTable(t, 60)
	terms := []Term{Identity("x1"), Identity("x2"), Power("x1", 2)}

	m1, err := Fit(table, "y", terms)
	require.NoError(t, err)
	m2, err := Fit(table, "y", terms)
	require.NoError(t, err)

	for j := range m1.Coefficients {
		require.Equal(t, m1.Coefficients[j].Estimate, m2.Coefficients[j].Estimate)
	}
	require.Equal(t, m1.FittedValues(), m2.FittedValues())
	require.Equal(t, m1.Residuals(), m2.Residuals())
}

func TestResidualsSumToZeroWithIntercept(t *testing.T) {
	table := noisyTable(t, 50)

	m, err := Fit(table, "y", []Term{Identity("x1")})
	require.NoError(t, err)

	sum := 0.0
	for _, r := range m.Residuals() {
		sum += r
	}
	require.InDelta(t, 0, sum, 1e-8)
}

func TestR2NonDecreasingOnTermAddition(t *testing.T) {
	table := noisyTable(t, 50)

	base, err := Fit(table, "y", []Term{Identity("x1")})
	require.NoError(t, err)
	wider, err := Fit(table, "y", []Term{Identity("x1"), Identity("x2")})
	require.NoError(t, err)
	widest, err := Fit(table, "y", []Term{Identity("x1"), Identity("x2"), Power("x1", 2)})
	require.NoError(t, err)

	require.GreaterOrEqual(t, wider.R2, base.R2-1e-12)
	require.GreaterOrEqual(t, widest.R2, wider.R2-1e-12)
}

func TestFitRecoversCoefficients(t *testing.T) {
	table := noisyTable(t, 100)

	m, err := Fit(table, "y", []Term{Identity("x1"), Identity("x2")})
	require.NoError(t, err)

	require.InDelta(t, 2, m.Coefficients[0].Estimate, 0.5)
	require.InDelta(t, 3, m.Coefficients[1].Estimate, 0.05)
	require.InDelta(t, -1.5, m.Coefficients[2].Estimate, 0.05)
	require.Greater(t, m.R2, 0.99)

	// x1 and x2 carry nearly all of the variance; both should test as
	// highly significant.
	require.Less(t, m.Coefficients[1].PValue, 1e-6)
	require.Less(t, m.Coefficients[2].PValue, 1e-6)
}

func TestFitCollinearDesign(t *testing.T) {
	n := 20
	y := make([]float64, n)
	x := make([]float64, n)
	double := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		double[i] = 2 * x[i]
		y[i] = x[i] + float64(i%5)
	}
	table, err := dataset.New(
		dataset.NumericColumn("y", y),
		dataset.NumericColumn("x", x),
		dataset.NumericColumn("double", double),
	)
	require.NoError(t, err)

	_, err = Fit(table, "y", []Term{Identity("x"), Identity("double")})
	require.True(t, errors.Is(err, ErrDegenerateDesign))
}

func TestFitUnderdetermined(t *testing.T) {
	table, err := dataset.New(
		dataset.NumericColumn("y", []float64{1, 2}),
		dataset.NumericColumn("x1", []float64{1, 2}),
		dataset.NumericColumn("x2", []float64{2, 1}),
	)
	require.NoError(t, err)

	_, err = Fit(table, "y", []Term{Identity("x1"), Identity("x2")})
	require.True(t, errors.Is(err, ErrDegenerateDesign))
}

func TestFitDuplicateTerm(t *testing.T) {
	table := noisyTable(t, 20)
	_, err := Fit(table, "y", []Term{Identity("x1"), Identity("x1")})
	require.True(t, errors.Is(err, ErrDuplicateTerm))
}

func TestFitMissingColumn(t *testing.T) {
	table := noisyTable(t, 20)
	_, err := Fit(table, "y", []Term{Identity("nope")})
	require.True(t, errors.Is(err, dataset.ErrMissingColumn))
}

func TestFitInterceptOnly(t *testing.T) {
	table := noisyTable(t, 30)

	m, err := Fit(table, "y", nil)
	require.NoError(t, err)
	require.Len(t, m.Coefficients, 1)

	y, err := table.Numeric("y")
	require.NoError(t, err)
	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))
	require.InDelta(t, mean, m.Coefficients[0].Estimate, 1e-10)
}

func TestCategoricalExpansion(t *testing.T) {
	// Group offsets: NE +0 (reference), NW +10, SE +20.
	n := 30
	groups := []string{"NE", "NW", "SE"}
	offsets := map[string]float64{"NE": 0, "NW": 10, "SE": 20}
	y := make([]float64, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		g := groups[i%3]
		labels[i] = g
		y[i] = 5 + offsets[g] + float64(i%5-2)/10
	}
	table, err := dataset.New(
		dataset.NumericColumn("y", y),
		dataset.CategoricalColumn("cbwd", labels),
	)
	require.NoError(t, err)

	m, err := Fit(table, "y", []Term{Identity("cbwd")})
	require.NoError(t, err)

	// Lexically first level NE is the dropped reference.
	require.Len(t, m.Terms, 2)
	require.Equal(t, "cbwd[NW]", m.Terms[0].Name())
	require.Equal(t, "cbwd[SE]", m.Terms[1].Name())

	require.InDelta(t, 10, m.Coefficients[1].Estimate, 0.2)
	require.InDelta(t, 20, m.Coefficients[2].Estimate, 0.2)
}

func TestInteractionAndPowerTerms(t *testing.T) {
	table := noisyTable(t, 40)

	m, err := Fit(table, "y", []Term{
		Identity("x1"),
		Power("x2", 2),
		Interaction("x1", "x2"),
	})
	require.NoError(t, err)
	require.Equal(t, "y ~ x1 + x2^2 + x1:x2", m.Formula())
	require.False(t, math.IsNaN(m.AdjR2))
	require.False(t, math.IsInf(m.AIC, 0))
}

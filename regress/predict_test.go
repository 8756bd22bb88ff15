package regress

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goregress/dataset"
)

func fittedNoisyModel(t *testing.T) (*Model, *dataset.Table) {
	t.Helper()
	table := noisyTable(t, 60)
	m, err := Fit(table, "y", []Term{Identity("x1"), Identity("x2")})
	require.NoError(t, err)
	return m, table
}

func newRows(t *testing.T) *dataset.Table {
	t.Helper()
	rows, err := dataset.New(
		dataset.NumericColumn("x1", []float64{5, 30}),
		dataset.NumericColumn("x2", []float64{2, 11}),
	)
	require.NoError(t, err)
	return rows
}

func TestPointPredictionsMatchFittedValues(t *testing.T) {
	m, table := fittedNoisyModel(t)

	preds, err := m.PointPredictions(table)
	require.NoError(t, err)

	fitted := m.FittedValues()
	require.Len(t, preds, len(fitted))
	for i := range preds {
		require.InDelta(t, fitted[i], preds[i], 1e-10)
	}
}

func TestPredictionIntervalWiderThanConfidence(t *testing.T) {
	m, _ := fittedNoisyModel(t)
	require.Greater(t, m.ResidualStdError, 0.0, "fixture must have residual variance")

	rows := newRows(t)
	ci, err := m.Predict(rows, ConfidenceInterval, 0.95)
	require.NoError(t, err)
	pi, err := m.Predict(rows, PredictionInterval, 0.95)
	require.NoError(t, err)

	for i := range ci {
		require.InDelta(t, ci[i].Point, pi[i].Point, 1e-10, "point estimates agree")
		ciWidth := ci[i].Upper - ci[i].Lower
		piWidth := pi[i].Upper - pi[i].Lower
		require.Greater(t, piWidth, ciWidth)
	}
}

func TestPredictIntervalContainsPoint(t *testing.T) {
	m, _ := fittedNoisyModel(t)

	preds, err := m.Predict(newRows(t), ConfidenceInterval, 0.9)
	require.NoError(t, err)
	for _, p := range preds {
		require.Less(t, p.Lower, p.Point)
		require.Greater(t, p.Upper, p.Point)
	}
}

func TestPredictHigherLevelWidensInterval(t *testing.T) {
	m, _ := fittedNoisyModel(t)
	rows := newRows(t)

	narrow, err := m.Predict(rows, PredictionInterval, 0.8)
	require.NoError(t, err)
	wide, err := m.Predict(rows, PredictionInterval, 0.99)
	require.NoError(t, err)

	for i := range narrow {
		require.Greater(t, wide[i].Upper-wide[i].Lower, narrow[i].Upper-narrow[i].Lower)
	}
}

func TestPredictInvalidConfidenceLevel(t *testing.T) {
	m, _ := fittedNoisyModel(t)
	rows := newRows(t)

	for _, level := range []float64{1.5, 0, 1, -0.2} {
		_, err := m.Predict(rows, ConfidenceInterval, level)
		require.True(t, errors.Is(err, ErrInvalidConfidenceLevel), "level %v", level)
	}
}

func TestPredictMissingColumn(t *testing.T) {
	m, _ := fittedNoisyModel(t)

	rows, err := dataset.New(dataset.NumericColumn("x1", []float64{5}))
	require.NoError(t, err)

	_, err = m.Predict(rows, ConfidenceInterval, 0.95)
	require.True(t, errors.Is(err, dataset.ErrMissingColumn))
}

package plot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goregress/dataset"
	"github.com/sartorproj/goregress/diagnostics"
	"github.com/sartorproj/goregress/regress"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func testReport(t *testing.T) (*regress.Model, *diagnostics.Report, []float64) {
	t.Helper()
	n := 40
	y := make([]float64, n)
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = 5 + 1.5*x[i] + float64(i%7-3)/2
	}
	table, err := dataset.New(
		dataset.NumericColumn("y", y),
		dataset.NumericColumn("x", x),
	)
	require.NoError(t, err)

	m, err := regress.Fit(table, "y", []regress.Term{regress.Identity("x")})
	require.NoError(t, err)
	return m, diagnostics.Diagnose(m), y
}

func TestFittedVsResidualsRendersPNG(t *testing.T) {
	_, report, _ := testReport(t)

	var buf bytes.Buffer
	require.NoError(t, FittedVsResiduals(report.FittedResiduals, &buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestQQPlotRendersPNG(t *testing.T) {
	_, report, _ := testReport(t)

	var buf bytes.Buffer
	require.NoError(t, QQPlot(report.QQ, &buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestResidualHistogramRendersPNG(t *testing.T) {
	_, report, _ := testReport(t)

	var buf bytes.Buffer
	require.NoError(t, ResidualHistogram(report.Histogram, &buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestActualVsFittedRendersPNG(t *testing.T) {
	m, _, actual := testReport(t)

	var buf bytes.Buffer
	require.NoError(t, ActualVsFitted(m.FittedValues(), actual, &buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestActualVsFittedLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, ActualVsFitted([]float64{1, 2}, []float64{1}, &buf))
}

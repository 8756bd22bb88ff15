package plot

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/sartorproj/goregress/diagnostics"
)

// scatterStyle renders points only, no connecting stroke.
func scatterStyle() chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    3,
		DotColor:    chart.ColorBlue,
	}
}

// FittedVsResiduals writes a PNG scatter of residuals against fitted values.
func FittedVsResiduals(pairs []diagnostics.Pair, w io.Writer) error {
	xs, ys := split(pairs)
	c := chart.Chart{
		Title: "Residuals vs Fitted",
		XAxis: chart.XAxis{Name: "Fitted value"},
		YAxis: chart.YAxis{Name: "Residual"},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys, Style: scatterStyle()},
		},
	}
	return errors.Wrap(c.Render(chart.PNG, w), "plot: rendering fitted-vs-residuals")
}

// QQPlot writes a PNG normal quantile-quantile plot with a reference line.
func QQPlot(pairs []diagnostics.Pair, w io.Writer) error {
	xs, ys := split(pairs)
	c := chart.Chart{
		Title: "Normal Q-Q",
		XAxis: chart.XAxis{Name: "Theoretical quantile"},
		YAxis: chart.YAxis{Name: "Standardized residual"},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys, Style: scatterStyle()},
			chart.ContinuousSeries{
				XValues: []float64{xs[0], xs[len(xs)-1]},
				YValues: []float64{xs[0], xs[len(xs)-1]},
				Style:   chart.Style{StrokeColor: chart.ColorAlternateGray, StrokeWidth: 1},
			},
		},
	}
	return errors.Wrap(c.Render(chart.PNG, w), "plot: rendering Q-Q")
}

// ResidualHistogram writes a PNG bar chart of binned residual counts.
func ResidualHistogram(h diagnostics.Histogram, w io.Writer) error {
	bars := make([]chart.Value, len(h.Counts))
	for i, count := range h.Counts {
		mid := (h.Edges[i] + h.Edges[i+1]) / 2
		bars[i] = chart.Value{Value: float64(count), Label: fmt.Sprintf("%.0f", mid)}
	}
	c := chart.BarChart{
		Title:    "Residual distribution",
		BarWidth: 24,
		Bars:     bars,
	}
	return errors.Wrap(c.Render(chart.PNG, w), "plot: rendering histogram")
}

// ActualVsFitted writes a PNG scatter of observed response values against
// fitted values, with the identity line for reference.
func ActualVsFitted(fitted, actual []float64, w io.Writer) error {
	if len(fitted) != len(actual) || len(fitted) == 0 {
		return errors.New("plot: fitted and actual must be equal-length and non-empty")
	}
	lo, hi := fitted[0], fitted[0]
	for _, v := range append(append([]float64(nil), fitted...), actual...) {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	c := chart.Chart{
		Title: "Actual vs Fitted",
		XAxis: chart.XAxis{Name: "Fitted value"},
		YAxis: chart.YAxis{Name: "Actual value"},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: fitted, YValues: actual, Style: scatterStyle()},
			chart.ContinuousSeries{
				XValues: []float64{lo, hi},
				YValues: []float64{lo, hi},
				Style:   chart.Style{StrokeColor: chart.ColorAlternateGray, StrokeWidth: 1},
			},
		},
	}
	return errors.Wrap(c.Render(chart.PNG, w), "plot: rendering actual-vs-fitted")
}

func split(pairs []diagnostics.Pair) ([]float64, []float64) {
	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

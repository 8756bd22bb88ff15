package regress

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Coefficient holds one estimated coefficient and its inference statistics.
type Coefficient struct {
	Name     string
	Estimate float64
	StdError float64
	TValue   float64
	PValue   float64
}

// Model is an immutable fitted OLS model. It owns its expanded term set, the
// coefficient table (intercept first), the fit statistics, and the fitted
// value and residual sequences aligned index-for-index with the training
// rows. A Model is created by one Fit call and never modified afterward, so
// it can be shared read-only across diagnostics and prediction.
type Model struct {
	Response     string
	Terms        []Term
	Coefficients []Coefficient

	ResidualStdError float64
	R2               float64
	AdjR2            float64
	LogLik           float64
	AIC              float64
	AICc             float64
	BIC              float64
	NObs             int
	DOF              int

	beta       []float64
	fittedVals []float64
	residuals  []float64
	xtxInv     *mat.Dense
}

// FittedValues returns a copy of the fitted values, aligned with the
// training rows.
func (m *Model) FittedValues() []float64 {
	out := make([]float64, len(m.fittedVals))
	copy(out, m.fittedVals)
	return out
}

// Residuals returns a copy of the residuals, aligned with the training rows.
func (m *Model) Residuals() []float64 {
	out := make([]float64, len(m.residuals))
	copy(out, m.residuals)
	return out
}

// Formula returns the model in y ~ a + b form.
func (m *Model) Formula() string {
	if len(m.Terms) == 0 {
		return m.Response + " ~ 1"
	}
	names := make([]string, len(m.Terms))
	for i, tm := range m.Terms {
		names[i] = tm.Name()
	}
	return m.Response + " ~ " + strings.Join(names, " + ")
}

// String formats a coefficient table and fit statistics.
func (m *Model) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Formula: %s\n\n", m.Formula())
	fmt.Fprintf(&b, "%-16s %12s %12s %9s %9s\n", "Coefficient", "Estimate", "Std. Error", "t value", "Pr(>|t|)")
	for _, c := range m.Coefficients {
		fmt.Fprintf(&b, "%-16s %12.4f %12.4f %9.3f %9.4f\n", c.Name, c.Estimate, c.StdError, c.TValue, c.PValue)
	}
	fmt.Fprintf(&b, "\nResidual std. error: %.4f on %d degrees of freedom\n", m.ResidualStdError, m.DOF)
	fmt.Fprintf(&b, "R-squared: %.4f, Adjusted R-squared: %.4f\n", m.R2, m.AdjR2)
	fmt.Fprintf(&b, "AIC: %.2f, AICc: %.2f, BIC: %.2f\n", m.AIC, m.AICc, m.BIC)
	return b.String()
}

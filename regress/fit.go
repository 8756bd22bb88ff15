package regress

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goregress/dataset"
)

// rankTol is the relative tolerance below which a diagonal element of the R
// factor marks the design as rank deficient.
const rankTol = 1e-12

// Fit estimates an ordinary least squares model of the response on the given
// terms, plus an intercept. The term set may be empty for an intercept-only
// model. Fit is a pure function of its inputs: it never mutates the table
// and the returned Model is immutable.
//
// Fit returns ErrDegenerateDesign when the design is rank deficient or the
// row count is smaller than the parameter count, dataset.ErrMissingColumn
// when a term references an absent column, and ErrDuplicateTerm when the
// expanded term set repeats a term.
func Fit(t *dataset.Table, response string, terms []Term) (*Model, error) {
	y, err := t.Numeric(response)
	if err != nil {
		return nil, err
	}

	expanded, err := expandTerms(t, terms)
	if err != nil {
		return nil, err
	}

	n := t.Len()
	params := len(expanded) + 1
	if n < params {
		return nil, errors.Wrapf(ErrDegenerateDesign, "%d rows cannot identify %d parameters", n, params)
	}

	x, err := designMatrix(t, expanded)
	if err != nil {
		return nil, err
	}

	var qr mat.QR
	qr.Factorize(x)

	var r mat.Dense
	qr.RTo(&r)
	if deficient(&r, params) {
		return nil, errors.Wrap(ErrDegenerateDesign, "design matrix is rank deficient")
	}

	yVec := mat.NewVecDense(n, y)
	var betaVec mat.VecDense
	if err := qr.SolveVecTo(&betaVec, false, yVec); err != nil {
		return nil, errors.Wrapf(ErrDegenerateDesign, "least squares solve: %v", err)
	}
	beta := make([]float64, params)
	for j := range beta {
		beta[j] = betaVec.AtVec(j)
	}

	// (X'X)^-1 = R^-1 R^-T from the factorization; no inverse of X'X itself.
	var rTop mat.Dense
	rTop.CloneFrom(r.Slice(0, params, 0, params))
	var rInv mat.Dense
	if err := rInv.Inverse(&rTop); err != nil {
		return nil, errors.Wrapf(ErrDegenerateDesign, "inverting R factor: %v", err)
	}
	var xtxInv mat.Dense
	xtxInv.Mul(&rInv, rInv.T())

	// Fitted values and residuals.
	var fittedVec mat.VecDense
	fittedVec.MulVec(x, &betaVec)
	fitted := make([]float64, n)
	residuals := make([]float64, n)
	sse := 0.0
	for i := 0; i < n; i++ {
		fitted[i] = fittedVec.AtVec(i)
		residuals[i] = y[i] - fitted[i]
		sse += residuals[i] * residuals[i]
	}

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(n)
	tss := 0.0
	for _, v := range y {
		d := v - mean
		tss += d * d
	}

	r2 := 0.0
	if tss > 0 {
		r2 = 1 - sse/tss
	} else if sse == 0 {
		r2 = 1
	}

	dof := n - params
	sigma2 := 0.0
	adjR2 := math.NaN()
	if dof > 0 {
		sigma2 = sse / float64(dof)
		adjR2 = 1 - (1-r2)*float64(n-1)/float64(dof)
	}

	m := &Model{
		Response:         response,
		Terms:            expanded,
		ResidualStdError: math.Sqrt(sigma2),
		R2:               r2,
		AdjR2:            adjR2,
		NObs:             n,
		DOF:              dof,
		beta:             beta,
		fittedVals:       fitted,
		residuals:        residuals,
		xtxInv:           &xtxInv,
	}
	m.Coefficients = coefficientTable(m, expanded, sigma2)
	m.computeIC(sse, sigma2)
	return m, nil
}

// deficient reports whether the R factor's leading diagonal indicates rank
// deficiency, relative to its largest diagonal element.
func deficient(r *mat.Dense, params int) bool {
	maxDiag := 0.0
	for j := 0; j < params; j++ {
		if v := math.Abs(r.At(j, j)); v > maxDiag {
			maxDiag = v
		}
	}
	if maxDiag == 0 {
		return true
	}
	for j := 0; j < params; j++ {
		if math.Abs(r.At(j, j)) < rankTol*maxDiag {
			return true
		}
	}
	return false
}

// coefficientTable derives the standard error, t-value, and two-sided
// p-value for the intercept and every term coefficient.
func coefficientTable(m *Model, terms []Term, sigma2 float64) []Coefficient {
	coefs := make([]Coefficient, len(m.beta))
	var tDist distuv.StudentsT
	if m.DOF > 0 {
		tDist = distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(m.DOF)}
	}

	for j := range m.beta {
		name := "(Intercept)"
		if j > 0 {
			name = terms[j-1].Name()
		}
		se := math.Sqrt(sigma2 * m.xtxInv.At(j, j))
		tv := math.NaN()
		pv := math.NaN()
		if se > 0 {
			tv = m.beta[j] / se
			if m.DOF > 0 {
				pv = 2 * tDist.CDF(-math.Abs(tv))
			}
		}
		coefs[j] = Coefficient{Name: name, Estimate: m.beta[j], StdError: se, TValue: tv, PValue: pv}
	}
	return coefs
}

// computeIC fills in the Gaussian log-likelihood and the AIC, AICc, and BIC
// of the fitted model.
func (m *Model) computeIC(sse, sigma2 float64) {
	n := float64(m.NObs)
	k := float64(len(m.beta))

	if sigma2 > 0 {
		m.LogLik = -n/2*math.Log(2*math.Pi) - n/2*math.Log(sigma2) - sse/(2*sigma2)
	} else {
		m.LogLik = math.Inf(1)
	}

	m.AIC = -2*m.LogLik + 2*k
	if n-k-1 > 0 {
		m.AICc = m.AIC + 2*k*(k+1)/(n-k-1)
	} else {
		m.AICc = math.Inf(1)
	}
	m.BIC = -2*m.LogLik + k*math.Log(n)
}

// Package regress implements ordinary least squares fitting over term sets.
//
// A model is defined by a response column and an ordered set of terms, where
// each term is a pure, named transformation of one or more table columns:
// the raw column itself, a polynomial power, a pairwise interaction, or a
// categorical indicator. Fitting evaluates every term against every row into
// a design matrix (with a leading intercept column), solves the least squares
// problem by QR decomposition, and derives coefficient inference and fit
// statistics from the residuals.
//
// # Fitting
//
//	model, err := regress.Fit(table, "pm2.5", []regress.Term{
//	    regress.Identity("TEMP"),
//	    regress.Power("DEWP", 2),
//	    regress.Interaction("TEMP", "Iws"),
//	    regress.Identity("cbwd"), // categorical: expands to indicators
//	})
//
// An Identity term naming a categorical column expands into one indicator
// term per level beyond the first; the lexically first level is the dropped
// reference, so coefficients are relative to it and the design never carries
// a redundant column.
//
// # Degenerate designs
//
// Fit returns ErrDegenerateDesign when the design matrix is rank deficient
// (duplicate or collinear columns) or when there are fewer rows than
// parameters. The solve itself never forms an explicit matrix inverse of the
// design; near-degenerate but full-rank designs produce a result whose wide
// standard errors make the low confidence visible.
//
// # Prediction
//
//	preds, err := model.Predict(newRows, regress.PredictionInterval, 0.95)
//	for _, p := range preds {
//	    fmt.Printf("%.1f [%.1f, %.1f]\n", p.Point, p.Lower, p.Upper)
//	}
//
// Confidence intervals bound the mean response at the given covariates;
// prediction intervals bound a single future observation and are strictly
// wider whenever the residual variance is nonzero.
package regress

// Package goregress provides linear regression modeling for air-quality data.
//
// GoRegress is a Go package for exploratory and confirmatory ordinary
// least squares (OLS) modeling of an hourly pollution series: predictor
// ranking, candidate model construction (single-predictor, multi-predictor,
// polynomial, interaction), automated feature selection, cross-validated
// performance estimation, residual diagnostics, and point and interval
// prediction.
//
// # Features
//
//   - Typed observation tables with numeric and categorical columns
//   - OLS fitting via QR decomposition with full coefficient inference
//   - Polynomial, interaction, and categorical indicator terms
//   - Forward and backward stepwise selection driven by AIC
//   - Exhaustive best-subset selection ranked by adjusted R-squared
//   - Seeded, reproducible k-fold cross-validation
//   - Residual diagnostics (fitted-vs-residual, histogram, Q-Q, Durbin-Watson)
//   - Confidence and prediction intervals for new observations
//
// # Quick Start
//
// Fit a model and predict:
//
//	table, _ := dataset.LoadCSV("air.csv", schema, nil)
//	model, _ := regress.Fit(table, "pm2.5", []regress.Term{
//	    regress.Identity("TEMP"),
//	    regress.Power("TEMP", 2),
//	    regress.Interaction("TEMP", "DEWP"),
//	})
//	preds, _ := model.Predict(newRows, regress.PredictionInterval, 0.95)
//
// Let the selectors choose the terms:
//
//	best, trace, _ := selection.Stepwise(table, "pm2.5", nil, universe, selection.Forward)
//	cv, _ := crossval.Run(table, "pm2.5", best.Terms, 10, 42)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - dataset: Observation tables, CSV loading, summaries and correlations
//   - regress: Terms, the OLS fitter, fitted models, and prediction
//   - selection: Stepwise and best-subset term selection
//   - crossval: k-fold cross-validation
//   - diagnostics: Residual diagnostic artifacts
//   - plot: Chart rendering for diagnostic artifacts
//
// # References
//
//   - Kutner, M., Nachtsheim, C., Neter, J., & Li, W. (2004). Applied Linear Statistical Models
//   - James, G., Witten, D., Hastie, T., & Tibshirani, R. (2021). An Introduction to Statistical Learning
package goregress

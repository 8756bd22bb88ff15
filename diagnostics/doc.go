// Package diagnostics derives residual diagnostic artifacts from fitted models.
//
// Diagnose is a pure, read-only transform of a model's residual and fitted
// value sequences. It produces no new inference, only re-expressions used
// for visual or numeric checks:
//
//	report := diagnostics.Diagnose(model)
//	// report.FittedResiduals: scatter input for a pattern check
//	// report.Histogram:       binned residuals for a distribution check
//	// report.QQ:              normal quantile pairs for a normality check
//	// report.DurbinWatson:    first-order autocorrelation statistic
//
// The Q-Q pairs set standardized sorted residuals against standard normal
// quantiles at the (i-0.5)/n plotting positions; points near the 45 degree
// line indicate approximately normal residuals. The Durbin-Watson statistic
// is near 2 for uncorrelated residuals, below 2 under positive serial
// correlation.
package diagnostics

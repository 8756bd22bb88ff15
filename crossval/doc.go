// Package crossval estimates out-of-sample model performance by k-fold cross-validation.
//
// A run partitions the row indices into k disjoint, collectively exhaustive
// folds using a seeded shuffle, fits the model on k-1 folds, scores the
// held-out fold by root mean squared error, and aggregates the k scores.
// The same seed and k always reproduce identical folds, which makes runs
// usable as test oracles.
//
//	result, err := crossval.Run(table, "pm2.5", terms, 10, 42)
//	fmt.Printf("RMSE %.2f +/- %.2f\n", result.Mean, result.Std)
//
// A degenerate design in any fold aborts the whole run with the fitter's
// error; folds are never silently skipped, since a partial aggregate would
// misreport the model's performance.
package crossval

// Package plot renders diagnostic artifacts as PNG charts.
//
// The package is a thin visualization collaborator: every function takes
// numeric artifacts already produced by the diagnostics or regress packages
// and writes a chart, computing no statistics of its own.
//
//	report := diagnostics.Diagnose(model)
//	f, _ := os.Create("residuals.png")
//	defer f.Close()
//	plot.FittedVsResiduals(report.FittedResiduals, f)
package plot

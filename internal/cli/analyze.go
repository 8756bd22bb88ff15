package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/sartorproj/goregress/crossval"
	"github.com/sartorproj/goregress/dataset"
	"github.com/sartorproj/goregress/diagnostics"
	"github.com/sartorproj/goregress/plot"
	"github.com/sartorproj/goregress/regress"
	"github.com/sartorproj/goregress/selection"
)

func newAnalyzeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Search for the best model and report its diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			return runAnalyze(cmd, cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "analysis.toml", "analysis config file")
	return cmd
}

func runAnalyze(cmd *cobra.Command, cfg *Config) error {
	logger := loggerFromContext(cmd.Context())

	table, err := dataset.LoadCSV(cfg.CSV, cfg.Schema(true), nil)
	if err != nil {
		return err
	}
	logger.Info("loaded table", "rows", table.Len(), "columns", len(table.Columns()))

	summaries, err := dataset.Summary(table)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		logger.Debug("column", "name", s.Column, "mean", s.Mean, "std", s.Std, "min", s.Min, "max", s.Max)
	}

	corrs, err := dataset.Correlations(table, cfg.Response)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Predictor ranking by |r| with %s:\n", cfg.Response)
	for _, c := range corrs {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %+.4f\n", c.Column, c.R)
	}

	universe := cfg.Universe()

	forward, forwardTrace, err := selection.Stepwise(table, cfg.Response, nil, universe, selection.Forward)
	if err != nil {
		return err
	}
	logger.Info("forward stepwise done", "terms", len(forward.Terms), "aic", forward.AIC, "steps", len(forwardTrace))

	backward, backwardTrace, err := selection.Stepwise(table, cfg.Response, universe, universe, selection.Backward)
	if err != nil {
		return err
	}
	logger.Info("backward stepwise done", "terms", len(backward.Terms), "aic", backward.AIC, "steps", len(backwardTrace))

	// The winner is chosen by adjusted R-squared, not by inspection.
	best := forward
	bestTrace := forwardTrace
	if backward.AdjR2 > forward.AdjR2 {
		best = backward
		bestTrace = backwardTrace
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nSelection trace:\n")
	for _, step := range bestTrace {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-6s %-14s AIC=%.2f\n", step.Action, step.Term.Name(), step.Criterion)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", best)

	subsetCandidates := identityCandidates(cfg)
	subsets, err := selection.BestSubsets(table, cfg.Response, subsetCandidates, cfg.MaxSubset)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Best subsets by adjusted R-squared:\n")
	for _, s := range subsets {
		fmt.Fprintf(cmd.OutOrStdout(), "  size %d: adjR2=%.4f %s\n", len(s.Terms), s.AdjR2, formulaOf(s.Terms))
	}

	cv, err := crossval.Run(table, cfg.Response, best.Terms, cfg.Folds, cfg.Seed)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d-fold CV RMSE: %.3f +/- %.3f\n", cfg.Folds, cv.Mean, cv.Std)
	logger.Debug("per-fold RMSE", "folds", cv.FoldRMSE)

	report := diagnostics.Diagnose(best)
	logger.Info("diagnostics", "durbin-watson", report.DurbinWatson)
	if err := writeCharts(cfg.OutDir, table, cfg.Response, best, report); err != nil {
		return err
	}
	logger.Info("charts written", "dir", cfg.OutDir)
	return nil
}

// identityCandidates returns the raw-column terms for best-subset search,
// capped at the exhaustive enumeration bound.
func identityCandidates(cfg *Config) []regress.Term {
	var terms []regress.Term
	for _, p := range cfg.Predictors {
		terms = append(terms, regress.Identity(p))
	}
	for _, cat := range cfg.Categorical {
		terms = append(terms, regress.Identity(cat))
	}
	if len(terms) > 12 {
		terms = terms[:12]
	}
	return terms
}

func formulaOf(terms []regress.Term) string {
	s := ""
	for i, tm := range terms {
		if i > 0 {
			s += " + "
		}
		s += tm.Name()
	}
	return s
}

// writeCharts renders the diagnostic artifacts as PNG files.
func writeCharts(dir string, table *dataset.Table, response string, m *regress.Model, report *diagnostics.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating output dir %s", dir)
	}

	actual, err := table.Numeric(response)
	if err != nil {
		return err
	}

	charts := []struct {
		name   string
		render func(w *os.File) error
	}{
		{"residuals_vs_fitted.png", func(w *os.File) error { return plot.FittedVsResiduals(report.FittedResiduals, w) }},
		{"residual_histogram.png", func(w *os.File) error { return plot.ResidualHistogram(report.Histogram, w) }},
		{"qq_plot.png", func(w *os.File) error { return plot.QQPlot(report.QQ, w) }},
		{"actual_vs_fitted.png", func(w *os.File) error { return plot.ActualVsFitted(m.FittedValues(), actual, w) }},
	}

	for _, c := range charts {
		f, err := os.Create(filepath.Join(dir, c.name))
		if err != nil {
			return errors.Wrapf(err, "creating %s", c.name)
		}
		if err := c.render(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "closing %s", c.name)
		}
	}
	return nil
}

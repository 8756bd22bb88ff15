// Package cli implements the goregress command-line driver.
//
// The CLI is a thin collaborator around the library packages: it loads a CSV
// table, runs the configured model search, and hands the numeric artifacts
// to the plot and report writers. No statistics are computed here.
//
// # Commands
//
//   - analyze: rank predictors, run stepwise and best-subset selection,
//     cross-validate the winning model, and write diagnostic charts
//   - predict: fit the selected model and emit point and interval
//     predictions for new covariate rows
//
// Both commands read a TOML analysis config (see Config) and support
// --verbose (-v) for debug-level logging. Loggers are passed through
// context.Context.
package cli

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version string displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v string) {
	version = v
}

// Execute runs the goregress CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "goregress",
		Short:        "goregress models air-quality data with OLS regression",
		Long:         `goregress fits, selects, cross-validates, and applies ordinary least squares models of a pollutant concentration on meteorological covariates.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newPredictCmd())

	return root.Execute()
}

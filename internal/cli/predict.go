package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/sartorproj/goregress/dataset"
	"github.com/sartorproj/goregress/regress"
	"github.com/sartorproj/goregress/selection"
)

func newPredictCmd() *cobra.Command {
	var (
		configPath string
		inputPath  string
		kindName   string
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict new rows with the selected model",
		Long:  `predict reruns the configured forward stepwise selection on the training data, fits the winning model, and emits one point estimate with interval bounds per input row as CSV on stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			var kind regress.IntervalKind
			switch kindName {
			case "prediction":
				kind = regress.PredictionInterval
			case "confidence":
				kind = regress.ConfidenceInterval
			default:
				return errors.Newf("unknown interval kind %q (want prediction or confidence)", kindName)
			}

			return runPredict(cmd, cfg, inputPath, kind)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "analysis.toml", "analysis config file")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "CSV of new covariate rows (required)")
	cmd.Flags().StringVarP(&kindName, "kind", "k", "prediction", "interval kind: prediction or confidence")
	cmd.MarkFlagRequired("input")
	return cmd
}

func runPredict(cmd *cobra.Command, cfg *Config, inputPath string, kind regress.IntervalKind) error {
	logger := loggerFromContext(cmd.Context())

	train, err := dataset.LoadCSV(cfg.CSV, cfg.Schema(true), nil)
	if err != nil {
		return err
	}

	model, _, err := selection.Stepwise(train, cfg.Response, nil, cfg.Universe(), selection.Forward)
	if err != nil {
		return err
	}
	logger.Info("selected model", "formula", model.Formula(), "adj_r2", model.AdjR2)

	rows, err := dataset.LoadCSV(inputPath, cfg.Schema(false), nil)
	if err != nil {
		return err
	}

	preds, err := model.Predict(rows, kind, cfg.Level)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "point,lower,upper")
	for _, p := range preds {
		fmt.Fprintf(cmd.OutOrStdout(), "%.4f,%.4f,%.4f\n", p.Point, p.Lower, p.Upper)
	}
	return nil
}

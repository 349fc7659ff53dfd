package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"macrostat/analysis"
	"macrostat/config"
	"macrostat/infra/staticlog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath  string
		data     string
		plotPath string
		alpha    float64
		trend    string
		maxLag   int
		lagMode  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "macrostat [data.csv]",
		Short:        "OLS and ADF stationarity analysis over a macroeconomic dataset",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if len(args) == 1 {
				cfg.Data = args[0]
			}

			flags := cmd.Flags()
			if flags.Changed("data") {
				cfg.Data = data
			}
			if flags.Changed("plot") {
				cfg.Plot = plotPath
			}
			if flags.Changed("alpha") {
				cfg.Significance = alpha
			}
			if flags.Changed("trend") {
				cfg.Trend = trend
			}
			if flags.Changed("max-lag") {
				cfg.MaxLag = maxLag
			}
			if flags.Changed("lag-mode") {
				cfg.LagMode = lagMode
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			staticlog.Init(cfg.Log)

			runner := &analysis.Runner{Cfg: cfg, Out: cmd.OutOrStdout()}
			_, err := runner.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&data, "data", "", "input CSV path")
	cmd.Flags().StringVar(&plotPath, "plot", "", "output PNG path")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "significance threshold for the stationarity verdict")
	cmd.Flags().StringVar(&trend, "trend", "c", "deterministic terms: n, c or ct")
	cmd.Flags().IntVar(&maxLag, "max-lag", 0, "maximum lag order (0 = automatic)")
	cmd.Flags().StringVar(&lagMode, "lag-mode", "AIC", "lag selection: AIC, BIC or t-stat")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	return cmd
}

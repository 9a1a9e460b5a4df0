package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rewired-gh/tokval/internal/config"
	"github.com/rewired-gh/tokval/internal/logger"
	"github.com/rewired-gh/tokval/internal/report"
	"github.com/rewired-gh/tokval/internal/scenario"
	"github.com/rewired-gh/tokval/internal/valuation"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tokval",
		Short: "Value tokenized future advertising revenue",
		Long: `tokval prices a pool of tokenized quarterly advertising revenue by
discounted cash flow across 48 scenarios of payout timing, market volatility
and investor engagement, and prints a sensitivity report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runValuation,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "path to configuration file")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (json, text)")

	f := root.Flags()
	f.Float64P("forecast", "f", 0, "raw quarterly revenue forecast in dollars")
	f.Float64P("risk-free-rate", "r", 4.5, "risk-free rate in percent")
	f.Float64P("platform-risk-premium", "p", 12.0, "platform risk premium in percent")
	f.Float64P("platform-adjustment", "a", -9.1, "platform adjustment to the forecast in percent")
	f.Int64("baseline-audience", 1000000, "baseline audience size")
	f.Float64("rpm", 15.0, "revenue per thousand impressions in dollars")
	f.Int("investor-count", 1000, "number of token holders")
	f.Float64("lift-per-investor", 10.0, "audience lift contributed by each investor")
	f.Bool("parallel", false, "evaluate scenarios concurrently")
	f.Int("workers", 4, "maximum concurrent evaluations when --parallel is set")
	f.String("format", "text", "report format (text, json)")

	root.AddCommand(newScenariosCmd(), newVersionCmd())
	return root
}

func runValuation(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	defer logger.Sync()
	if configPath != "" {
		logger.Info("Configuration loaded from %s", configPath)
	}

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}

	engine := valuation.New(valuation.Config{
		Parallel: cfg.Engine.Parallel,
		Workers:  cfg.Engine.Workers,
	})
	r, err := engine.Run(cfg.Assumptions())
	if err != nil {
		return err
	}

	return report.Render(cmd.OutOrStdout(), r, format)
}

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the scenario space in evaluation order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for i, s := range scenario.Space() {
				fmt.Fprintf(out, "%2d  %s\n", i, s)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tokval %s\n", version)
			fmt.Fprintf(out, "  model:   %s\n", valuation.ModelVersion)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/davetashner/icudash/internal/config"
	icudashlog "github.com/davetashner/icudash/internal/log"
	"github.com/davetashner/icudash/internal/term"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	logFormat  string
	configPath string

	endpoint   string
	dateRange  string
	unit       string
	errorScope string
)

// rootCmd is the base command for icudash.
var rootCmd = &cobra.Command{
	Use:   "icudash",
	Short: "ICU metrics dashboard for the terminal",
	Long: `icudash shows ICU occupancy, census, acuity and admission metrics from an
aggregation endpoint. Pick a date range and unit, then drill into a chart
segment to narrow every panel to one acuity level or admission source.

Run it interactively (watch), once (snapshot), or as an MCP tool server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := icudashlog.Setup(cmd.ErrOrStderr(), verbose, quiet, logFormat); err != nil {
			return exitError(ExitInvalidArgs, "icudash: %v", err)
		}
		if noColor {
			term.SetColor(false)
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
	pf.StringVar(&logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&configPath, "config", "", "config file (default .icudash.yaml or .icudash.toml)")

	pf.StringVar(&endpoint, "endpoint", "", "aggregation endpoint base URL (default "+config.DefaultEndpoint+")")
	pf.StringVar(&dateRange, "date-range", "", "initial date range: Last 7 Days, Last 30 Days, All Time")
	pf.StringVar(&unit, "unit", "", "initial ICU unit (default All ICU Units)")
	pf.StringVar(&errorScope, "error-scope", "", "error panel scope: surface (replaces everything) or content (keeps the filters)")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

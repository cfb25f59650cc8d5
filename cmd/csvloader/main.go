package main

import (
	"os"

	"github.com/oleg578/csvloader/internal/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Get().Error().Err(err).Msg("csvloader failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	logOpts := logger.FromEnv()

	rootCmd := &cobra.Command{
		Use:           "csvloader",
		Short:         "Load CSV telemetry into typed rows",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logOpts.Writer = cmd.ErrOrStderr()
			logger.Init(logOpts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logOpts.Level, "log-level", logOpts.Level, "log level (trace, debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringVar(&logOpts.Format, "log-format", logOpts.Format, "log format (console, json)")

	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newFmtCmd())

	return rootCmd
}

package main

import (
	"leadsweep/internal/config"
	"leadsweep/internal/logging"
	"leadsweep/internal/version"

	"github.com/spf13/cobra"
)

var (
	// quietFlag suppresses all log output below the error level
	quietFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "leadsweep",
	Short: "leadsweep - sales-lead deduplicator",
	Long: `leadsweep cleans a batch of sales-lead records by removing duplicates.

Both a record's identifier and its email address end up unique across the
output set. When records collide, the one with the newest entry date wins;
on identical dates the record that appeared last in the input wins.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("leadsweep version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false,
		"Suppress log output below the error level")
}

// newLogger builds the command logger from config, honoring --quiet.
func newLogger(cfg *config.Config) *logging.Logger {
	level := logging.ParseLevel(cfg.Logging.Level)
	if quietFlag {
		level = logging.ErrorLevel
	}
	format := logging.HumanFormat
	if cfg.Logging.Format == "json" {
		format = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: format,
		Level:  level,
	})
}

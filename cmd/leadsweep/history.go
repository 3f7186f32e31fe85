package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"leadsweep/internal/config"
	"leadsweep/internal/storage"
)

var (
	historyLimit  int
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent dedupe runs",
	Long: `List recent dedupe runs recorded in the history ledger.

Examples:
  leadsweep history
  leadsweep history -n 5
  leadsweep history --format json`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show")
	historyCmd.Flags().StringVar(&historyFormat, "format", "human", "Output format (human, json)")
	rootCmd.AddCommand(historyCmd)
}

// HistoryResponse wraps the ledger rows for formatting.
type HistoryResponse struct {
	Runs []storage.Run `json:"runs"`
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := newLogger(cfg)

	db, err := storage.Open(".", logger)
	if err != nil {
		return fmt.Errorf("opening history ledger: %w", err)
	}
	defer func() { _ = db.Close() }()

	runs, err := db.RecentRuns(historyLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	output, err := FormatResponse(&HistoryResponse{Runs: runs}, OutputFormat(historyFormat))
	if err != nil {
		return err
	}
	fmt.Println(output)

	return nil
}

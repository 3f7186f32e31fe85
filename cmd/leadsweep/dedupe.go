package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"leadsweep/internal/config"
	"leadsweep/internal/loader"
	"leadsweep/internal/logging"
	"leadsweep/internal/resolver"
	"leadsweep/internal/storage"
	"leadsweep/internal/writer"
)

var (
	dedupeFormat    string
	dedupeNoHistory bool
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe <input-file> [output-file]",
	Short: "Deduplicate leads from a JSON document",
	Long: `Deduplicate the leads in a JSON document and write the cleaned set.

Rules:
  - Duplicate ids and duplicate emails are not allowed in the output
  - The record with the newest entry date is preferred
  - For identical dates, the record appearing last in the input is preferred

The output defaults to deduplicated_leads.json (configurable via
.leadsweep/config.json). Paths ending in .gz are read and written
gzip-compressed.

Examples:
  leadsweep dedupe leads.json
  leadsweep dedupe leads.json clean_leads.json
  leadsweep dedupe leads.json.gz clean_leads.json.gz --format json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDedupe,
}

func init() {
	dedupeCmd.Flags().StringVar(&dedupeFormat, "format", "human", "Summary format (human, json)")
	dedupeCmd.Flags().BoolVar(&dedupeNoHistory, "no-history", false, "Skip recording the run in the history ledger")
	rootCmd.AddCommand(dedupeCmd)
}

// DedupeSummary is the run report printed after a successful dedupe.
type DedupeSummary struct {
	RunID      string `json:"runId,omitempty"`
	InputPath  string `json:"inputPath"`
	OutputPath string `json:"outputPath"`
	Input      int    `json:"inputCount"`
	Kept       int    `json:"keptCount"`
	Duplicates int    `json:"duplicatesRemoved"`
	Skipped    int    `json:"skippedIncomplete"`
	DurationMs int64  `json:"durationMs"`
}

func runDedupe(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := newLogger(cfg)

	inputPath := args[0]
	outputPath := cfg.DefaultOutput
	if len(args) > 1 {
		outputPath = args[1]
	}

	logger.Info("reading leads", map[string]interface{}{"path": inputPath})
	leads, err := loader.Load(inputPath, logger)
	if err != nil {
		return err
	}
	logger.Info("resolving duplicates", map[string]interface{}{"leads": len(leads)})

	result := resolver.Resolve(leads)

	logger.Info("writing deduplicated leads", map[string]interface{}{
		"path": outputPath,
		"kept": len(result.Leads),
	})
	if err := writer.Write(outputPath, result.Leads); err != nil {
		return err
	}

	summary := DedupeSummary{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Input:      len(leads),
		Kept:       len(result.Leads),
		Duplicates: result.Duplicates,
		Skipped:    result.Incomplete,
		DurationMs: time.Since(start).Milliseconds(),
	}

	if cfg.History.Enabled && !dedupeNoHistory {
		summary.RunID = recordRun(logger, summary)
	}

	output, err := FormatResponse(&summary, OutputFormat(dedupeFormat))
	if err != nil {
		return err
	}
	fmt.Println(output)

	return nil
}

// recordRun appends the run to the ledger. Ledger trouble never fails a
// dedupe that already wrote its output; it only costs the history row.
func recordRun(logger *logging.Logger, summary DedupeSummary) string {
	db, err := storage.Open(".", logger)
	if err != nil {
		logger.Warn("history ledger unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return ""
	}
	defer func() { _ = db.Close() }()

	runID, err := db.RecordRun(storage.Run{
		InputPath:    summary.InputPath,
		OutputPath:   summary.OutputPath,
		InputCount:   summary.Input,
		KeptCount:    summary.Kept,
		RemovedCount: summary.Duplicates,
		SkippedCount: summary.Skipped,
		DurationMs:   summary.DurationMs,
	})
	if err != nil {
		logger.Warn("failed to record run", map[string]interface{}{
			"error": err.Error(),
		})
		return ""
	}
	return runID
}

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats the response as JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *DedupeSummary:
		return formatSummaryHuman(v), nil
	case *HistoryResponse:
		return formatHistoryHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatSummaryHuman(s *DedupeSummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Deduplicated %s -> %s\n", s.InputPath, s.OutputPath))
	b.WriteString(fmt.Sprintf("  Input records:      %d\n", s.Input))
	b.WriteString(fmt.Sprintf("  Kept:               %d\n", s.Kept))
	b.WriteString(fmt.Sprintf("  Duplicates removed: %d\n", s.Duplicates))
	if s.Skipped > 0 {
		b.WriteString(fmt.Sprintf("  Skipped (missing id or email): %d\n", s.Skipped))
	}
	b.WriteString(fmt.Sprintf("  Duration:           %dms", s.DurationMs))
	if s.RunID != "" {
		b.WriteString(fmt.Sprintf("\n  Run id:             %s", s.RunID))
	}

	return b.String()
}

func formatHistoryHuman(h *HistoryResponse) string {
	if len(h.Runs) == 0 {
		return "No runs recorded yet."
	}

	var b strings.Builder
	for i, run := range h.Runs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s  %s -> %s  kept %d/%d (removed %d, skipped %d)",
			run.CreatedAt.Format(time.RFC3339),
			run.InputPath,
			run.OutputPath,
			run.KeptCount,
			run.InputCount,
			run.RemovedCount,
			run.SkippedCount,
		))
	}

	return b.String()
}

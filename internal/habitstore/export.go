package habitstore

import (
	"errors"
	"fmt"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/internal/parquet"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// ExecuteHistoryExport dumps every habit's completion history to a Parquet
// file for analysis in Spark, Pandas, DuckDB and friends.
func ExecuteHistoryExport(store contract.HabitStore, lookbackDays int, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for parquet export")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.TotalCompletions == 0 {
		return errors.New("no completion data found to export")
	}

	habits, err := store.ListHabits()
	if err != nil {
		return fmt.Errorf("failed to list habits: %w", err)
	}

	histories := make(map[string][]schema.CompletionRecord, len(habits))
	for _, h := range habits {
		history, err := store.GetCompletionHistory(h.ID, lookbackDays)
		if err != nil {
			return fmt.Errorf("failed to read history for %q: %w", h.ID, err)
		}
		histories[h.ID] = history
	}

	rows := parquet.ConvertCompletionRecords(habits, histories)
	if err := parquet.WriteCompletionsParquet(rows, outputFile); err != nil {
		return fmt.Errorf("failed to write completion export: %w", err)
	}

	fmt.Printf("Exported %d completion records for %d habits to: %s\n", len(rows), len(habits), outputFile)
	return nil
}

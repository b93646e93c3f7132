// Package parquet provides data structures and functions for exporting habit
// history and ranking data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/schema"
	"github.com/parquet-go/parquet-go"
)

// CompletionRow is one day of habit history in the export.
type CompletionRow struct {
	// HabitID references the habit definition
	HabitID string `parquet:"habit_id,snappy"`

	// HabitTitle denormalizes the title so exports stand alone
	HabitTitle string `parquet:"habit_title,snappy"`

	// Day is the calendar date of the record (UTC midnight)
	Day time.Time `parquet:"day,snappy"`

	// Completed reports whether the habit was done that day
	Completed bool `parquet:"completed,snappy"`

	// Planned reports whether the habit was scheduled that day
	Planned bool `parquet:"planned,snappy"`

	// CompletedAt is the completion timestamp when one was recorded (nullable)
	CompletedAt *time.Time `parquet:"completed_at,optional,snappy"`
}

// NextActionRow is one ranked habit in the export.
type NextActionRow struct {
	// Rank is the 1-based position in the ranking
	Rank int32 `parquet:"rank,snappy"`

	// HabitID references the habit definition
	HabitID string `parquet:"habit_id,snappy"`

	// HabitTitle denormalizes the title so exports stand alone
	HabitTitle string `parquet:"habit_title,snappy"`

	// Streak is the current streak length at ranking time
	Streak int32 `parquet:"streak,snappy"`

	// TimeType is the habit's scheduled slot
	TimeType string `parquet:"time_type,snappy"`

	// GeneratedAt is the reference time the ranking was computed for
	GeneratedAt time.Time `parquet:"generated_at,snappy"`
}

// ConvertCompletionRecords flattens per-habit histories into export rows.
// Habit order follows the input slice so exports are reproducible.
func ConvertCompletionRecords(habits []schema.Habit, histories map[string][]schema.CompletionRecord) []CompletionRow {
	var rows []CompletionRow
	for _, h := range habits {
		for _, rec := range histories[h.ID] {
			rows = append(rows, CompletionRow{
				HabitID:     h.ID,
				HabitTitle:  h.Title,
				Day:         rec.Day,
				Completed:   rec.Completed,
				Planned:     rec.Planned,
				CompletedAt: rec.CompletedAt,
			})
		}
	}
	return rows
}

// ConvertRankedHabits maps a ranking result into export rows.
func ConvertRankedHabits(ranked []schema.RankedHabit, generatedAt time.Time) []NextActionRow {
	rows := make([]NextActionRow, 0, len(ranked))
	for i, h := range ranked {
		rows = append(rows, NextActionRow{
			Rank:        int32(i + 1),
			HabitID:     h.ID,
			HabitTitle:  h.Title,
			Streak:      int32(h.Streak),
			TimeType:    string(h.TimeType),
			GeneratedAt: generatedAt,
		})
	}
	return rows
}

// WriteCompletionsParquet writes history rows to a Parquet file.
func WriteCompletionsParquet(data []CompletionRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteNextActionsParquet writes ranking rows to a Parquet file.
func WriteNextActionsParquet(data []NextActionRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes any row type to outputPath, inferring the schema from
// the struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

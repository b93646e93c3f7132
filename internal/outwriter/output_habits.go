package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteHabitList outputs habit definitions, dispatching based on the output
// format configured.
func WriteHabitList(habits []schema.Habit, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, habits)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHabitsCSV(w, habits)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for habit lists; use 'habitsense store export'")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHabitsTable(w, habits, cfg)
		}, "Wrote table")
	}
}

func writeHabitsCSV(w io.Writer, habits []schema.Habit) error {
	header := []string{"id", "title", "difficulty", "time_type", "specific_time", "days_of_week", "archived"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, h := range habits {
			record := []string{
				h.ID,
				h.Title,
				string(h.Difficulty),
				string(h.TimeType),
				h.SpecificTime,
				schema.FormatWeekdays(h.DaysOfWeek),
				strconv.FormatBool(h.Archived),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeHabitsTable(w io.Writer, habits []schema.Habit, cfg *contract.Config) error {
	if len(habits) == 0 {
		fmt.Fprintln(w, "No habits yet. Add one with 'habitsense habit add'.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Title", "Difficulty", "When", "Days"})

	maxTitle := getMaxTitleWidth(cfg)
	var data [][]string
	for _, h := range habits {
		when := string(h.TimeType)
		if h.TimeType == schema.SpecificTime && h.SpecificTime != "" {
			when = h.SpecificTime
		}
		days := schema.FormatWeekdays(h.DaysOfWeek)
		if days == "" {
			days = "daily"
		}
		data = append(data, []string{
			h.ID,
			truncateTitle(h.Title, maxTitle),
			string(h.Difficulty),
			when,
			days,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/internal/parquet"
	"github.com/Zak-aden1/ai-journal-sub003/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteNextActions outputs ranked next actions, dispatching based on the
// output format configured.
func WriteNextActions(ranked []schema.RankedHabit, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, ranked)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankedCSV(w, ranked)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		rows := parquet.ConvertRankedHabits(ranked, cfg.Now)
		if err := parquet.WriteNextActionsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("failed to write parquet output: %w", err)
		}
		fmt.Printf("Exported %d ranked habits to: %s\n", len(rows), cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankedTable(w, ranked, cfg)
		}, "Wrote table")
	}
}

func writeRankedCSV(w io.Writer, ranked []schema.RankedHabit) error {
	header := []string{"rank", "id", "title", "streak", "time_type", "specific_time", "days_of_week"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, h := range ranked {
			record := []string{
				strconv.Itoa(i + 1),
				h.ID,
				h.Title,
				strconv.Itoa(h.Streak),
				string(h.TimeType),
				h.SpecificTime,
				schema.FormatWeekdays(h.DaysOfWeek),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeRankedTable(w io.Writer, ranked []schema.RankedHabit, cfg *contract.Config) error {
	if len(ranked) == 0 {
		fmt.Fprintln(w, "Nothing left to do. Every habit is either done or excluded.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Habit", "Streak", "When"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxTitle := getMaxTitleWidth(cfg)
	var data [][]string
	for i, h := range ranked {
		when := string(h.TimeType)
		if h.TimeType == schema.SpecificTime && h.SpecificTime != "" {
			when = h.SpecificTime
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			truncateTitle(h.Title, maxTitle),
			strconv.Itoa(h.Streak),
			when,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Showing %d candidate actions.\n", len(ranked))
	return nil
}

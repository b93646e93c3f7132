package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteTimingPattern outputs a timing pattern, dispatching based on the
// output format configured.
func WriteTimingPattern(pattern schema.HabitTimingPattern, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, pattern)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePatternCSV(w, pattern, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for timing patterns; use 'habitsense store export'")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePatternTable(w, pattern, fmtFloat)
		}, "Wrote table")
	}
}

func writePatternCSV(w io.Writer, pattern schema.HabitTimingPattern, fmtFloat func(float64) string) error {
	header := []string{"habit_id", "optimal_time", "completion_rate", "streak_potential", "energy_pattern", "difficult_days"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		record := []string{
			pattern.HabitID,
			schema.FormatHourRange(pattern.OptimalHours),
			fmtFloat(pattern.CompletionRate),
			fmtFloat(pattern.StreakPotential),
			string(pattern.EnergyPattern),
			schema.FormatWeekdays(pattern.DifficultDays),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
		return nil
	})
}

func writePatternTable(w io.Writer, pattern schema.HabitTimingPattern, fmtFloat func(float64) string) error {
	fmt.Fprintf(w, "Timing pattern for %s\n\n", pattern.HabitID)
	fmt.Fprintf(w, "  Optimal time:     %s\n", schema.FormatHourRange(pattern.OptimalHours))
	fmt.Fprintf(w, "  Completion rate:  %s\n", fmtFloat(pattern.CompletionRate))
	fmt.Fprintf(w, "  Streak potential: %s\n", fmtFloat(pattern.StreakPotential))
	fmt.Fprintf(w, "  Energy pattern:   %s\n", pattern.EnergyPattern)
	if len(pattern.DifficultDays) > 0 {
		fmt.Fprintf(w, "  Difficult days:   %s\n", schema.FormatWeekdays(pattern.DifficultDays))
	}
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Weekday", "Rate"})

	var data [][]string
	for day := time.Sunday; day <= time.Saturday; day++ {
		data = append(data, []string{day.String(), fmtFloat(pattern.WeekdayPattern[day])})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteCorrelationInsights outputs habit correlations, dispatching based on
// the output format configured.
func WriteCorrelationInsights(insights []schema.HabitCorrelationInsight, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, insights)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCorrelationsCSV(w, insights, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for correlations; use 'habitsense store export'")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCorrelationsTable(w, insights, fmtFloat)
		}, "Wrote table")
	}
}

func writeCorrelationsCSV(w io.Writer, insights []schema.HabitCorrelationInsight, fmtFloat func(float64) string) error {
	header := []string{"habit_a", "habit_b", "correlation", "type", "confidence", "insight"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, in := range insights {
			record := []string{
				in.HabitA,
				in.HabitB,
				fmtFloat(in.Correlation),
				string(in.Type),
				fmtFloat(in.Confidence),
				in.Insight,
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeCorrelationsTable(w io.Writer, insights []schema.HabitCorrelationInsight, fmtFloat func(float64) string) error {
	if len(insights) == 0 {
		fmt.Fprintln(w, "No notable correlations found. Log more overlapping history and try again.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Habit A", "Habit B", "r", "Type", "Confidence"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, in := range insights {
		data = append(data, []string{
			in.HabitA,
			in.HabitB,
			fmtFloat(in.Correlation),
			string(in.Type),
			fmtFloat(in.Confidence),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	for _, in := range insights {
		fmt.Fprintf(w, "  %s\n", in.Insight)
	}
	return nil
}

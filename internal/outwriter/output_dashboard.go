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

// WriteDashboardResult outputs the full dashboard, dispatching based on the
// output format configured.
func WriteDashboardResult(result *schema.DashboardResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDashboardCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for the dashboard; use 'habitsense next --output parquet' or 'habitsense store export'")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDashboardText(w, result, cfg, fmtFloat)
		}, "Wrote report")
	}
}

func writeDashboardCSV(w io.Writer, result *schema.DashboardResult, fmtFloat func(float64) string) error {
	header := []string{"habit_id", "title", "current_streak", "longest_streak", "risk_confidence", "optimal_time", "tip_key", "message_key"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, hd := range result.Habits {
			confidence := ""
			if hd.Insights.StreakRisk != nil {
				confidence = fmtFloat(hd.Insights.StreakRisk.ConfidenceScore)
			}
			record := []string{
				hd.Habit.ID,
				hd.Habit.Title,
				strconv.Itoa(hd.Streak.Current),
				strconv.Itoa(hd.Streak.Longest),
				confidence,
				hd.Insights.OptimalTime,
				string(hd.Insights.TipKey),
				string(hd.Insights.MessageKey),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeDashboardText(w io.Writer, result *schema.DashboardResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	fmt.Fprintf(w, "Habit dashboard (%s)\n\n", result.GeneratedAt.Format("Mon Jan 2 15:04"))

	if len(result.Habits) == 0 {
		fmt.Fprintln(w, "No habits yet. Add one with 'habitsense habit add'.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Habit", "Streak", "Risk", "Top Insight"})

	maxTitle := getMaxTitleWidth(cfg)
	var data [][]string
	for _, hd := range result.Habits {
		risk := ""
		if hd.Insights.StreakRisk != nil {
			risk = riskLabel(hd.Insights.StreakRisk.ConfidenceScore, cfg)
		}
		topInsight := ""
		if len(hd.Insights.PrimaryInsights) > 0 {
			topInsight = hd.Insights.PrimaryInsights[0].Title
		}
		data = append(data, []string{
			truncateTitle(hd.Habit.Title, maxTitle),
			strconv.Itoa(hd.Streak.Current),
			risk,
			topInsight,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(result.NextActions) > 0 {
		fmt.Fprintln(w, "\nNext up:")
		for i, h := range result.NextActions {
			fmt.Fprintf(w, "  %d. %s\n", i+1, h.Title)
		}
	}
	return nil
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// WriteSmartInsights outputs a synthesized insight bundle, dispatching based
// on the output format configured.
func WriteSmartInsights(insights schema.SmartInsights, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, insights)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeInsightsCSV(w, insights, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for insights; use 'habitsense store export'")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeInsightsText(w, insights, cfg, fmtFloat)
		}, "Wrote report")
	}
}

func writeInsightsCSV(w io.Writer, insights schema.SmartInsights, fmtFloat func(float64) string) error {
	header := []string{"habit_id", "insight_id", "type", "priority", "confidence", "title", "message", "suggested_action"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, in := range insights.PrimaryInsights {
			record := []string{
				insights.HabitID,
				in.ID,
				string(in.Type),
				string(in.Priority),
				fmtFloat(in.Confidence),
				in.Title,
				in.Message,
				in.SuggestedAction,
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

func writeInsightsText(w io.Writer, insights schema.SmartInsights, cfg *contract.Config, fmtFloat func(float64) string) error {
	fmt.Fprintf(w, "Insights for %s\n\n", insights.HabitID)

	if len(insights.PrimaryInsights) == 0 {
		fmt.Fprintln(w, "  Nothing notable right now.")
	}
	for _, in := range insights.PrimaryInsights {
		priority := string(in.Priority)
		if cfg.UseColors {
			priority = contract.GetColorPriorityLabel(in.Priority)
		}
		fmt.Fprintf(w, "  %s %s [%s, confidence %s]\n", in.Icon, in.Title, priority, fmtFloat(in.Confidence))
		fmt.Fprintf(w, "     %s\n", in.Message)
		if in.SuggestedAction != "" {
			fmt.Fprintf(w, "     -> %s\n", in.SuggestedAction)
		}
	}

	if insights.OptimalTime != "" {
		fmt.Fprintf(w, "\n  Optimal time: %s\n", insights.OptimalTime)
	}
	if insights.StreakRisk != nil {
		fmt.Fprintf(w, "  Streak risk:  %s (confidence %s)\n",
			riskLabel(insights.StreakRisk.ConfidenceScore, cfg),
			fmtFloat(insights.StreakRisk.ConfidenceScore))
	}
	if insights.PersonalizedTip != "" {
		fmt.Fprintf(w, "\n  Tip: %s\n", insights.PersonalizedTip)
	}
	if insights.MotivationalMessage != "" {
		fmt.Fprintf(w, "  %s\n", insights.MotivationalMessage)
	}
	return nil
}

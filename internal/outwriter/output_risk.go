package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// WriteStreakPrediction outputs a streak risk assessment, dispatching based
// on the output format configured.
func WriteStreakPrediction(prediction schema.StreakPrediction, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, prediction)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRiskCSV(w, prediction, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for risk predictions; use 'habitsense store export'")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRiskText(w, prediction, cfg, fmtFloat)
		}, "Wrote report")
	}
}

func writeRiskCSV(w io.Writer, p schema.StreakPrediction, fmtFloat func(float64) string) error {
	header := []string{"habit_id", "current_streak", "confidence", "risk_level", "predicted_end", "risk_factors", "strength_factors", "recommendation_key"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		predictedEnd := ""
		if p.PredictedStreakEnd != nil {
			predictedEnd = p.PredictedStreakEnd.Format("2006-01-02")
		}
		record := []string{
			p.HabitID,
			fmt.Sprintf("%d", p.CurrentStreak),
			fmtFloat(p.ConfidenceScore),
			contract.GetPlainRiskLabel(p.ConfidenceScore),
			predictedEnd,
			strings.Join(p.RiskFactors, "|"),
			strings.Join(p.StrengthFactors, "|"),
			string(p.RecommendationKey),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
		return nil
	})
}

func writeRiskText(w io.Writer, p schema.StreakPrediction, cfg *contract.Config, fmtFloat func(float64) string) error {
	fmt.Fprintf(w, "Streak outlook for %s\n\n", p.HabitID)
	fmt.Fprintf(w, "  Current streak: %d days\n", p.CurrentStreak)
	fmt.Fprintf(w, "  Confidence:     %s (%s risk)\n", fmtFloat(p.ConfidenceScore), riskLabel(p.ConfidenceScore, cfg))
	if p.PredictedStreakEnd != nil {
		fmt.Fprintf(w, "  Likely to break by: %s\n", p.PredictedStreakEnd.Format("Mon Jan 2"))
	}

	if len(p.RiskFactors) > 0 {
		fmt.Fprintln(w, "\n  Risks:")
		for _, f := range p.RiskFactors {
			fmt.Fprintf(w, "    - %s\n", f)
		}
	}
	if len(p.StrengthFactors) > 0 {
		fmt.Fprintln(w, "\n  Strengths:")
		for _, f := range p.StrengthFactors {
			fmt.Fprintf(w, "    + %s\n", f)
		}
	}

	fmt.Fprintf(w, "\n  Recommendation: %s\n", p.Recommendation)
	return nil
}

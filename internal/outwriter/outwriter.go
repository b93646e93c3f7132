// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WritePattern prints a timing pattern using the configured output format.
func (ow *OutWriter) WritePattern(pattern schema.HabitTimingPattern, cfg *contract.Config) error {
	return WriteTimingPattern(pattern, cfg)
}

// WriteRisk prints a streak prediction using the configured output format.
func (ow *OutWriter) WriteRisk(prediction schema.StreakPrediction, cfg *contract.Config) error {
	return WriteStreakPrediction(prediction, cfg)
}

// WriteCorrelations prints correlation insights using the configured output format.
func (ow *OutWriter) WriteCorrelations(insights []schema.HabitCorrelationInsight, cfg *contract.Config) error {
	return WriteCorrelationInsights(insights, cfg)
}

// WriteInsights prints synthesized insights using the configured output format.
func (ow *OutWriter) WriteInsights(insights schema.SmartInsights, cfg *contract.Config) error {
	return WriteSmartInsights(insights, cfg)
}

// WriteRanked prints ranked next actions using the configured output format.
func (ow *OutWriter) WriteRanked(ranked []schema.RankedHabit, cfg *contract.Config) error {
	return WriteNextActions(ranked, cfg)
}

// WriteDashboard prints the full dashboard using the configured output format.
func (ow *OutWriter) WriteDashboard(result *schema.DashboardResult, cfg *contract.Config) error {
	return WriteDashboardResult(result, cfg)
}

// WriteStatus prints store status using the configured output format.
func (ow *OutWriter) WriteHabits(habits []schema.Habit, cfg *contract.Config) error {
	return WriteHabitList(habits, cfg)
}

func (ow *OutWriter) WriteStatus(status schema.StoreStatus, cfg *contract.Config) error {
	return WriteStoreStatus(status, cfg)
}

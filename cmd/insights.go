package cmd

import (
	"github.com/Zak-aden1/ai-journal-sub003/core"
	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/internal/habitstore"
	"github.com/Zak-aden1/ai-journal-sub003/internal/outwriter"
	"github.com/spf13/cobra"
)

// insightsCmd synthesizes the full insight bundle for one habit.
var insightsCmd = &cobra.Command{
	Use:   "insights <habit-id>",
	Short: "Synthesize prioritized insights for a habit.",
	Long: `Run every analyzer for one habit and distill the results into at most
three prioritized insights, plus a personalized tip and a motivational
message.

The bundle covers timing (is now a good moment?), streak health (milestones
and break risk), motivation, stacking opportunities with other habits, and
concrete recommendations. Insight synthesis is best-effort: if part of the
analysis fails, you still get a reduced bundle instead of an error.

Examples:
  # Insights for one habit
  habitsense insights meditate

  # Pin the reference time for reproducible output
  habitsense insights meditate --now 2026-03-16T09:00:00Z`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		insights, err := core.GetSmartInsights(cfg, habitstore.GetStore(), args[0])
		if err != nil {
			contract.LogFatal("Cannot synthesize insights", err)
		}
		if err := outwriter.WriteSmartInsights(insights, cfg); err != nil {
			contract.LogFatal("Cannot write insights", err)
		}
	},
}

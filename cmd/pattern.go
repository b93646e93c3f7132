package cmd

import (
	"github.com/Zak-aden1/ai-journal-sub003/core"
	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/internal/habitstore"
	"github.com/Zak-aden1/ai-journal-sub003/internal/outwriter"
	"github.com/spf13/cobra"
)

// patternCmd analyzes one habit's timing pattern.
var patternCmd = &cobra.Command{
	Use:   "pattern <habit-id>",
	Short: "Show when a habit actually gets done.",
	Long: `Analyze a habit's completion history to find its timing pattern.

Reports:
- The hours the habit most often gets completed
- Per-weekday completion rates
- Days where the habit reliably slips (difficult days)
- The habit's coarse energy classification (morning/afternoon/evening)
- A streak potential estimate

A habit with no history falls back to sensible defaults rather than failing,
so the command is safe to run on day one.

Examples:
  # Analyze the last 30 days (default window)
  habitsense pattern meditate

  # Widen the window and export as JSON
  habitsense pattern meditate --lookback 90 --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		pattern, err := core.GetTimingPattern(cfg, habitstore.GetStore(), args[0])
		if err != nil {
			contract.LogFatal("Cannot analyze timing pattern", err)
		}
		if err := outwriter.WriteTimingPattern(pattern, cfg); err != nil {
			contract.LogFatal("Cannot write timing pattern", err)
		}
	},
}

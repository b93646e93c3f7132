package cmd

import (
	"github.com/Zak-aden1/ai-journal-sub003/core"
	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/internal/habitstore"
	"github.com/Zak-aden1/ai-journal-sub003/internal/outwriter"
	"github.com/spf13/cobra"
)

// nextCmd ranks the incomplete habits by what is most worth doing now.
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Rank what is most worth doing right now.",
	Long: `Rank every incomplete habit by how well this moment suits it.

The score favors habits scheduled for today, habits whose time slot is close
to the current hour, and habits whose streak needs protecting (young streaks
score higher than established ones). Completed habits and anything passed
via --exclude are skipped.

Examples:
  # What should I do next?
  habitsense next

  # Skip habits you can't do right now
  habitsense next --exclude run,swim

  # Export the ranking for downstream analysis
  habitsense next --output parquet --output-file next.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ranked, err := core.GetNextActions(cfg, habitstore.GetStore())
		if err != nil {
			contract.LogFatal("Cannot rank next actions", err)
		}
		if err := outwriter.WriteNextActions(ranked, cfg); err != nil {
			contract.LogFatal("Cannot write next actions", err)
		}
	},
}

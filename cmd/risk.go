package cmd

import (
	"github.com/Zak-aden1/ai-journal-sub003/core"
	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/internal/habitstore"
	"github.com/Zak-aden1/ai-journal-sub003/internal/outwriter"
	"github.com/spf13/cobra"
)

// riskCmd assesses the break risk of one habit's streak.
var riskCmd = &cobra.Command{
	Use:   "risk <habit-id>",
	Short: "Assess how likely a streak is to break.",
	Long: `Predict whether a habit's current streak will survive.

Combines the overall completion rate, the current streak length and the last
two weeks of activity into a confidence score, then lists the concrete risk
and strength factors behind it. Low-confidence habits also get a projected
break date so you know how much runway is left.

Examples:
  # Assess a habit's streak
  habitsense risk run

  # Machine-readable output for automation
  habitsense risk run --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		prediction, err := core.GetStreakPrediction(cfg, habitstore.GetStore(), args[0])
		if err != nil {
			contract.LogFatal("Cannot assess streak risk", err)
		}
		if err := outwriter.WriteStreakPrediction(prediction, cfg); err != nil {
			contract.LogFatal("Cannot write streak prediction", err)
		}
	},
}

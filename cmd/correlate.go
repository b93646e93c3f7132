package cmd

import (
	"github.com/Zak-aden1/ai-journal-sub003/core"
	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/internal/habitstore"
	"github.com/Zak-aden1/ai-journal-sub003/internal/outwriter"
	"github.com/spf13/cobra"
)

// correlateCmd detects completion correlations across habits.
var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Find habits that succeed or fail together.",
	Long: `Correlate completion histories across every habit pair.

Each pair's histories are joined on shared calendar days before computing the
Pearson correlation, so habits with different start dates still compare
cleanly. Only pairs with a meaningful relationship (|r| > 0.3) are reported,
strongest first.

Use this to find stacking opportunities (positive pairs) and habits that
crowd each other out (negative pairs).

Examples:
  # Correlate over the default window
  habitsense correlate

  # Wider window, CSV export
  habitsense correlate --lookback 90 --output csv --output-file pairs.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		insights, err := core.GetCorrelationInsights(cfg, habitstore.GetStore())
		if err != nil {
			contract.LogFatal("Cannot correlate habits", err)
		}
		if err := outwriter.WriteCorrelationInsights(insights, cfg); err != nil {
			contract.LogFatal("Cannot write correlations", err)
		}
	},
}

package cmd

import (
	"github.com/Zak-aden1/ai-journal-sub003/core"
	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/internal/habitstore"
	"github.com/Zak-aden1/ai-journal-sub003/internal/outwriter"
	"github.com/spf13/cobra"
)

// dashboardCmd runs the full per-habit fan-out.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show every habit's state in one view.",
	Long: `Run the full analysis across every habit concurrently.

For each habit this synthesizes the insight bundle (timing, streak risk,
motivation, stacking), then ranks the incomplete habits as next actions.
Worker count is controlled with --workers; output order is stable regardless
of scheduling.

Examples:
  # The morning overview
  habitsense dashboard

  # JSON for a wrapping UI
  habitsense dashboard --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		result, err := core.RunDashboard(rootCtx, cfg, habitstore.GetStore())
		if err != nil {
			contract.LogFatal("Cannot run dashboard", err)
		}
		if err := outwriter.WriteDashboardResult(result, cfg); err != nil {
			contract.LogFatal("Cannot write dashboard", err)
		}
	},
}

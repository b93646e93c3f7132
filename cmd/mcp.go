package cmd

import (
	"github.com/Zak-aden1/ai-journal-sub003/internal/habitstore"
	"github.com/Zak-aden1/ai-journal-sub003/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Habitsense MCP server",
	Long:  `Launch an MCP server that allows AI agents to run habit analysis via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdio carries the protocol, so setup must not print anything.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, habitstore.GetStore())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

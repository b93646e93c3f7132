// Package cmd defines the command-line interface for habitsense.
package cmd

import (
	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(patternCmd)
	rootCmd.AddCommand(riskCmd)
	rootCmd.AddCommand(correlateCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(habitCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the habit subcommands to the parent habit command
	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitLogCmd)
	habitCmd.AddCommand(habitListCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)
	storeCmd.AddCommand(storeSeedCmd)
	storeCmd.AddCommand(storeExportCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("now", "", "Reference time in RFC3339 (defaults to wall clock)")
	rootCmd.PersistentFlags().Int("lookback", contract.DefaultLookbackDays, "History window in days")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("db-backend", string(schema.SQLiteBackend), "Store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of nextCmd to Viper
	nextCmd.Flags().String("exclude", "", "Comma-separated habit IDs to exclude from ranking")
	if err := viper.BindPFlags(nextCmd.Flags()); err != nil {
		contract.LogFatal("Error binding next flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}

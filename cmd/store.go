package cmd

import (
	"fmt"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/internal/habitstore"
	"github.com/Zak-aden1/ai-journal-sub003/internal/outwriter"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("db-backend"))
	connStr := viper.GetString("db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	if err := habitstore.InitStore(backend, connStr); err != nil {
		return err
	}

	cfg.Backend = backend
	cfg.DBConnect = connStr

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeCmd groups habit store management commands.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by analysis commands. This avoids the analysis
// config processing for simple maintenance operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the habit store (status, maintenance, export)",
	Long: `Manage the database that holds habit definitions and completion history.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (no-op)

Subcommands:
  status  - Show store statistics and connection info
  clear   - Remove all habits and completions
  migrate - Apply or roll back schema migrations
  seed    - Populate the store with demo habits and history
  export  - Dump completion history to a Parquet file

Examples:
  # Check store status
  habitsense store status

  # Try the analyzers on generated data
  habitsense store seed && habitsense dashboard`,
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show detailed information about the habit store.

Displays:
- Backend type and connection status
- Habit and completion record counts
- The date range covered by history

Examples:
  # Check SQLite store status (default)
  habitsense store status

  # Check a PostgreSQL store
  HABITSENSE_DB_BACKEND=postgresql HABITSENSE_DB_CONNECT="..." habitsense store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := habitstore.GetStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		if err := outwriter.WriteStoreStatus(status, cfg); err != nil {
			contract.LogFatal("Cannot write store status", err)
		}
	},
}

// storeClearCmd clears all stored data.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all habits and completion history",
	Long: `Delete every habit definition and completion record from the store.

There is no undo. Export first if you might want the history back:

  habitsense store export --output-file backup.parquet
  habitsense store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := habitstore.GetStore().Clear(); err != nil {
			contract.LogFatal("Failed to clear store", err)
		}
		fmt.Println("Store cleared successfully.")
	},
}

// storeMigrateCmd applies schema migrations.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back store schema migrations",
	Long: `Migrate the store schema to a target version.

Migrations normally run automatically when the store opens; this command
exists for explicit control, primarily rolling back:

  -1  migrate up to the latest version (default)
   0  roll back to an empty schema
   N  migrate to version N exactly

Examples:
  # Bring the schema up to date
  habitsense store migrate

  # Tear the schema down
  habitsense store migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Migration opens its own connection; skip store initialization.
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, _ []string) {
		backend := schema.DatabaseBackend(viper.GetString("db-backend"))
		connStr := viper.GetString("db-connect")
		targetVersion := viper.GetInt("target-version")

		if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
			contract.LogFatal("Invalid store configuration", err)
		}
		if err := habitstore.Migrate(backend, connStr, targetVersion); err != nil {
			contract.LogFatal("Migration failed", err)
		}
		fmt.Println("Migration completed successfully.")
	},
}

// storeSeedCmd populates the store with demo data.
var storeSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the store with demo habits and history",
	Long: `Generate a small set of demo habits with several weeks of plausible
completion history, so the analyzers have something to chew on.

Seeding is deterministic for a given --seed value, which makes demo output
reproducible. Existing habits with the same IDs are replaced.

Examples:
  # Default: 5 habits, 60 days of history
  habitsense store seed

  # Longer history, different variation
  habitsense store seed --days 120 --seed 7`,
	PreRunE: storeSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		days, _ := cmd.Flags().GetInt("days")
		seed, _ := cmd.Flags().GetInt64("seed")

		if err := habitstore.Seed(habitstore.GetStore(), days, seed); err != nil {
			contract.LogFatal("Seeding failed", err)
		}
		fmt.Printf("Seeded demo habits with %d days of history.\n", days)
	},
}

// storeExportCmd dumps completion history to Parquet.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump completion history to a Parquet file",
	Long: `Export every habit's completion history to a Parquet file for
analysis in Spark, Pandas, DuckDB and friends.

The export window follows --lookback. An empty store is an error rather than
an empty file.

Examples:
  habitsense store export --output-file history.parquet
  habitsense store export --lookback 180 --output-file history.parquet`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		lookback := viper.GetInt("lookback")
		outputFile := viper.GetString("output-file")

		if err := habitstore.ExecuteHistoryExport(habitstore.GetStore(), lookback, outputFile); err != nil {
			contract.LogFatal("Export failed", err)
		}
	},
}

func init() {
	storeSeedCmd.Flags().Int("days", 60, "Days of history to generate")
	storeSeedCmd.Flags().Int64("seed", 1, "Random seed for reproducible history")
}

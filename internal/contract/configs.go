package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// Default values for configuration.
const (
	DefaultLookbackDays = 30
	DefaultRecentDays   = 14
	DefaultResultLimit  = 25
	MaxResultLimit      = 1000
	MaxLookbackDays     = 365
	DefaultPrecision    = 2
)

// DefaultWorkers is the default number of concurrent workers for the
// dashboard fan-out.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the engine shell.
// This struct remains the "final, validated" config.
type Config struct {
	Now          time.Time // Reference time for all analysis (wall clock unless overridden)
	LookbackDays int       // History window in days supplied to the analyzers
	ResultLimit  int       // Maximum number of results to show
	Workers      int       // Number of concurrent workers for the dashboard fan-out
	Precision    int       // Decimal precision for numeric columns
	Output       schema.OutputMode
	OutputFile   string
	Width        int // Terminal width override (0 = auto-detect)

	Backend   schema.DatabaseBackend
	DBConnect string // Please use env var as this is plaintext

	ExcludeIDs []string // Habit IDs excluded from ranking

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Now        string `mapstructure:"now"`
	Lookback   int    `mapstructure:"lookback"`
	Limit      int    `mapstructure:"limit"`
	Workers    int    `mapstructure:"workers"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Backend    string `mapstructure:"db-backend"`
	DBConnect  string `mapstructure:"db-connect"`
	Color      string `mapstructure:"color"`

	// --- Fields from nextCmd.Flags() ---
	Exclude string `mapstructure:"exclude"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.ExcludeIDs != nil {
		clone.ExcludeIDs = make([]string, len(c.ExcludeIDs))
		copy(clone.ExcludeIDs, c.ExcludeIDs)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processNow(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-time, non-backend fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Lookback Validation ---
	if input.Lookback <= 0 || input.Lookback > MaxLookbackDays {
		return fmt.Errorf("lookback must be between 1 and %d days (received %d)", MaxLookbackDays, input.Lookback)
	}
	cfg.LookbackDays = input.Lookback

	// --- 4. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 3 {
		return fmt.Errorf("precision must be between 1 and 3 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv, parquet", cfg.Output)
	}

	// --- 5. Exclude Processing ---
	cfg.ExcludeIDs = nil
	if input.Exclude != "" {
		for p := range strings.SplitSeq(input.Exclude, ",") {
			trimmed := strings.TrimSpace(p)
			if trimmed != "" {
				cfg.ExcludeIDs = append(cfg.ExcludeIDs, trimmed)
			}
		}
	}

	return nil
}

// processNow resolves the reference time. The --now override exists so that
// output is reproducible in tests and demos; everything downstream treats
// cfg.Now as the current moment.
func processNow(cfg *Config, input *ConfigRawInput) error {
	if input.Now == "" {
		cfg.Now = time.Now()
		return nil
	}
	parsed, err := time.Parse(DateTimeFormat, input.Now)
	if err != nil {
		return fmt.Errorf("invalid --now value %q, expected RFC3339: %w", input.Now, err)
	}
	cfg.Now = parsed
	return nil
}

// validateBackendConfig validates the store backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.Backend = schema.DatabaseBackend(strings.ToLower(input.Backend))
	if _, ok := schema.ValidBackends[cfg.Backend]; !ok {
		return fmt.Errorf("invalid db backend '%s'. must be sqlite, mysql, postgresql, none", input.Backend)
	}
	cfg.DBConnect = input.DBConnect
	return ValidateDatabaseConnectionString(cfg.Backend, cfg.DBConnect)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseBoolString parses common yes/no style flag values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes/no/true/false/1/0, got %q", s)
	}
}

// GetDBFilePath returns the default SQLite database path for the habit store.
func GetDBFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".habitsense.db"
	}
	return filepath.Join(home, ".habitsense.db")
}

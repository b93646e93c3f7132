package contract

import (
	"testing"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation, for mutation in tests.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Lookback:  DefaultLookbackDays,
		Limit:     DefaultResultLimit,
		Workers:   4,
		Precision: DefaultPrecision,
		Output:    string(schema.TextOut),
		Backend:   string(schema.SQLiteBackend),
		Color:     "yes",
	}
}

// TestProcessAndValidateDefaults verifies a plain valid input resolves.
func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, DefaultLookbackDays, cfg.LookbackDays)
	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.Backend)
	assert.True(t, cfg.UseColors)
	assert.WithinDuration(t, time.Now(), cfg.Now, 5*time.Second)
}

// TestProcessAndValidateNowOverride verifies the RFC3339 --now override.
func TestProcessAndValidateNowOverride(t *testing.T) {
	input := validInput()
	input.Now = "2026-03-14T09:00:00Z"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), cfg.Now)

	input.Now = "yesterday"
	assert.Error(t, ProcessAndValidate(&Config{}, input))
}

// TestProcessAndValidateRejections covers the rejection paths.
func TestProcessAndValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{name: "zero limit", mutate: func(i *ConfigRawInput) { i.Limit = 0 }},
		{name: "excessive limit", mutate: func(i *ConfigRawInput) { i.Limit = MaxResultLimit + 1 }},
		{name: "zero workers", mutate: func(i *ConfigRawInput) { i.Workers = 0 }},
		{name: "zero lookback", mutate: func(i *ConfigRawInput) { i.Lookback = 0 }},
		{name: "excessive lookback", mutate: func(i *ConfigRawInput) { i.Lookback = MaxLookbackDays + 1 }},
		{name: "bad precision", mutate: func(i *ConfigRawInput) { i.Precision = 9 }},
		{name: "bad output", mutate: func(i *ConfigRawInput) { i.Output = "xml" }},
		{name: "bad backend", mutate: func(i *ConfigRawInput) { i.Backend = "oracle" }},
		{name: "bad color", mutate: func(i *ConfigRawInput) { i.Color = "maybe" }},
		{name: "mysql without connect", mutate: func(i *ConfigRawInput) { i.Backend = "mysql" }},
		{name: "postgres without connect", mutate: func(i *ConfigRawInput) { i.Backend = "postgresql" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

// TestExcludeParsing verifies comma-separated exclude handling.
func TestExcludeParsing(t *testing.T) {
	input := validInput()
	input.Exclude = "habit-1, habit-2,,habit-3 "

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{"habit-1", "habit-2", "habit-3"}, cfg.ExcludeIDs)
}

// TestValidateDatabaseConnectionString covers connection string formats.
func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/habits"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost port=5432 dbname=habits"))

	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@localhost/habits"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "localhost:5432"))
}

// TestConfigClone verifies deep copy semantics.
func TestConfigClone(t *testing.T) {
	cfg := &Config{ResultLimit: 10, ExcludeIDs: []string{"a", "b"}}
	clone := cfg.Clone()
	clone.ExcludeIDs[0] = "changed"
	assert.Equal(t, "a", cfg.ExcludeIDs[0])
}

// TestGetPlainRiskLabel verifies the confidence-to-label mapping.
func TestGetPlainRiskLabel(t *testing.T) {
	assert.Equal(t, HighRiskValue, GetPlainRiskLabel(0.2))
	assert.Equal(t, MediumRiskValue, GetPlainRiskLabel(0.6))
	assert.Equal(t, LowRiskValue, GetPlainRiskLabel(0.9))
}

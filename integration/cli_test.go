//go:build basic

// Package integration contains end-to-end tests for the habitsense CLI.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sqliteEnv points the CLI at a throwaway SQLite database.
func sqliteEnv(t *testing.T) []string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "habitsense.db")
	return []string{
		"HABITSENSE_DB_BACKEND=sqlite",
		"HABITSENSE_DB_CONNECT=" + dbPath,
	}
}

func TestHabitLifecycle(t *testing.T) {
	env := sqliteEnv(t)

	out, err := runHabitsense(t, env, "habit", "add", "meditate",
		"--title", "Meditate", "--difficulty", "easy", "--time-type", "morning")
	require.NoError(t, err)
	assert.Contains(t, out, `Saved habit "meditate".`)

	out, err = runHabitsense(t, env, "habit", "log", "meditate")
	require.NoError(t, err)
	assert.Contains(t, out, "done")

	out, err = runHabitsense(t, env, "habit", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Meditate")

	out, err = runHabitsense(t, env, "store", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlite")
	assert.Contains(t, out, "Habits:        1")
}

func TestHabitAddValidation(t *testing.T) {
	env := sqliteEnv(t)

	_, err := runHabitsense(t, env, "habit", "add", "bad", "--difficulty", "impossible")
	require.Error(t, err)

	_, err = runHabitsense(t, env, "habit", "add", "bad", "--time-type", "specific")
	require.Error(t, err, "specific time type without --at-time should fail")
}

func TestAnalysisCommandsOnSeededStore(t *testing.T) {
	env := sqliteEnv(t)
	now := "--now=2026-03-16T09:00:00Z"

	out, err := runHabitsense(t, env, "store", "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded demo habits")

	out, err = runHabitsense(t, env, "pattern", "meditate", now)
	require.NoError(t, err)
	assert.Contains(t, out, "Timing pattern for meditate")

	out, err = runHabitsense(t, env, "risk", "run", now)
	require.NoError(t, err)
	assert.Contains(t, out, "Streak outlook for run")

	out, err = runHabitsense(t, env, "correlate", now)
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	out, err = runHabitsense(t, env, "insights", "meditate", now)
	require.NoError(t, err)
	assert.Contains(t, out, "Insights for meditate")

	out, err = runHabitsense(t, env, "next", now, "--exclude", "read")
	require.NoError(t, err)
	assert.NotContains(t, out, "read")

	out, err = runHabitsense(t, env, "dashboard", now)
	require.NoError(t, err)
	assert.Contains(t, out, "Habit dashboard")
}

func TestJSONOutput(t *testing.T) {
	env := sqliteEnv(t)

	_, err := runHabitsense(t, env, "store", "seed")
	require.NoError(t, err)

	out, err := runHabitsense(t, env, "pattern", "meditate", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"habit_id": "meditate"`)

	out, err = runHabitsense(t, env, "next", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "rank,id,title")
}

func TestParquetExport(t *testing.T) {
	env := sqliteEnv(t)
	exportPath := filepath.Join(t.TempDir(), "history.parquet")

	// Empty store is an error
	_, err := runHabitsense(t, env, "store", "export", "--output-file", exportPath)
	require.Error(t, err)

	_, err = runHabitsense(t, env, "store", "seed")
	require.NoError(t, err)

	out, err := runHabitsense(t, env, "store", "export", "--output-file", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported")
	assert.FileExists(t, exportPath)
}

func TestStoreClear(t *testing.T) {
	env := sqliteEnv(t)

	_, err := runHabitsense(t, env, "store", "seed")
	require.NoError(t, err)

	out, err := runHabitsense(t, env, "store", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Store cleared successfully.")

	out, err = runHabitsense(t, env, "store", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Habits:        0")
}

func TestUnknownHabitFails(t *testing.T) {
	env := sqliteEnv(t)

	_, err := runHabitsense(t, env, "pattern", "missing")
	require.Error(t, err)

	_, err = runHabitsense(t, env, "habit", "log", "missing")
	require.Error(t, err)
}

// Package contract provides interfaces and shared utilities for the
// habitsense internal architecture.
package contract

import (
	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// HistoryReader is the narrow read interface the analytic core consumes.
// The core treats it as read-only and never writes back; any implementation
// error is handled best-effort by the caller (missing sub-results suppress
// the insights that depend on them).
type HistoryReader interface {
	// GetCompletionHistory returns the last daysBack days of records for a
	// habit, ordered by day ascending.
	GetCompletionHistory(habitID string, daysBack int) ([]schema.CompletionRecord, error)

	// GetStreakState returns the derived streak counters for a habit.
	GetStreakState(habitID string) (schema.StreakState, error)
}

// HabitStore is the full persistence surface used by the CLI shell.
// This allows mocking the store for testing.
type HabitStore interface {
	HistoryReader

	// ListHabits returns all non-archived habits.
	ListHabits() ([]schema.Habit, error)

	// GetHabit returns a habit definition by ID.
	GetHabit(id string) (schema.Habit, error)

	// UpsertHabit creates or replaces a habit definition.
	UpsertHabit(h schema.Habit) error

	// LogCompletion records one day of history for a habit.
	LogCompletion(habitID string, rec schema.CompletionRecord) error

	// GetStatus returns status information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Clear removes all habits and completions.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}

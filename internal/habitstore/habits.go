package habitstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// unixDay converts a stored day-level unix timestamp back to a UTC date.
func unixDay(sec int64) time.Time {
	return schema.DayOf(time.Unix(sec, 0))
}

// ListHabits returns all non-archived habits ordered by title.
func (s *StoreImpl) ListHabits() ([]schema.Habit, error) {
	if s.disabled() {
		return []schema.Habit{}, nil
	}

	rows, err := s.db.Query(s.rebind(`
		SELECT id, title, difficulty, time_type, specific_time, days_of_week, archived
		FROM habits WHERE archived = ? ORDER BY title, id`), false)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var habits []schema.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// GetHabit returns a habit definition by ID.
func (s *StoreImpl) GetHabit(id string) (schema.Habit, error) {
	if s.disabled() {
		return schema.Habit{}, fmt.Errorf("habit %q not found: store backend is none", id)
	}

	row := s.db.QueryRow(s.rebind(`
		SELECT id, title, difficulty, time_type, specific_time, days_of_week, archived
		FROM habits WHERE id = ?`), id)
	h, err := scanHabit(row)
	if err == sql.ErrNoRows {
		return schema.Habit{}, fmt.Errorf("habit %q not found", id)
	}
	return h, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanHabit(sc scanner) (schema.Habit, error) {
	var h schema.Habit
	var days string
	if err := sc.Scan(&h.ID, &h.Title, &h.Difficulty, &h.TimeType, &h.SpecificTime, &days, &h.Archived); err != nil {
		if err == sql.ErrNoRows {
			return h, err
		}
		return h, fmt.Errorf("failed to scan habit row: %w", err)
	}
	h.DaysOfWeek = schema.ParseWeekdays(days)
	return h, nil
}

// UpsertHabit creates or replaces a habit definition.
func (s *StoreImpl) UpsertHabit(h schema.Habit) error {
	if s.disabled() {
		return nil
	}
	if h.ID == "" {
		return fmt.Errorf("habit ID must not be empty")
	}

	var query string
	switch s.backend {
	case schema.MySQLBackend:
		query = `
			INSERT INTO habits (id, title, difficulty, time_type, specific_time, days_of_week, archived)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				title = VALUES(title), difficulty = VALUES(difficulty),
				time_type = VALUES(time_type), specific_time = VALUES(specific_time),
				days_of_week = VALUES(days_of_week), archived = VALUES(archived)`
	default: // SQLite and PostgreSQL share the conflict clause
		query = `
			INSERT INTO habits (id, title, difficulty, time_type, specific_time, days_of_week, archived)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				title = excluded.title, difficulty = excluded.difficulty,
				time_type = excluded.time_type, specific_time = excluded.specific_time,
				days_of_week = excluded.days_of_week, archived = excluded.archived`
	}

	_, err := s.db.Exec(s.rebind(query),
		h.ID, h.Title, string(h.Difficulty), string(h.TimeType), h.SpecificTime,
		schema.FormatWeekdays(h.DaysOfWeek), h.Archived)
	if err != nil {
		return fmt.Errorf("failed to upsert habit %q: %w", h.ID, err)
	}
	return nil
}

// LogCompletion records one day of history for a habit, replacing any
// earlier record for the same day.
func (s *StoreImpl) LogCompletion(habitID string, rec schema.CompletionRecord) error {
	if s.disabled() {
		return nil
	}
	if habitID == "" {
		return fmt.Errorf("habit ID must not be empty")
	}

	var completedAt sql.NullInt64
	if rec.CompletedAt != nil {
		completedAt = sql.NullInt64{Int64: rec.CompletedAt.Unix(), Valid: true}
	}
	day := schema.DayOf(rec.Day).Unix()

	var query string
	switch s.backend {
	case schema.MySQLBackend:
		query = `
			INSERT INTO completions (habit_id, day_unix, completed, planned, completed_at_unix)
			VALUES (?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				completed = VALUES(completed), planned = VALUES(planned),
				completed_at_unix = VALUES(completed_at_unix)`
	default:
		query = `
			INSERT INTO completions (habit_id, day_unix, completed, planned, completed_at_unix)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (habit_id, day_unix) DO UPDATE SET
				completed = excluded.completed, planned = excluded.planned,
				completed_at_unix = excluded.completed_at_unix`
	}

	_, err := s.db.Exec(s.rebind(query), habitID, day, rec.Completed, rec.Planned, completedAt)
	if err != nil {
		return fmt.Errorf("failed to log completion for habit %q: %w", habitID, err)
	}
	return nil
}

// GetCompletionHistory returns the last daysBack days of records for a
// habit, ordered by day ascending.
func (s *StoreImpl) GetCompletionHistory(habitID string, daysBack int) ([]schema.CompletionRecord, error) {
	if s.disabled() {
		return []schema.CompletionRecord{}, nil
	}

	cutoff := schema.DayOf(time.Now()).AddDate(0, 0, -daysBack).Unix()
	rows, err := s.db.Query(s.rebind(`
		SELECT day_unix, completed, planned, completed_at_unix
		FROM completions WHERE habit_id = ? AND day_unix >= ?
		ORDER BY day_unix ASC`), habitID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to read history for habit %q: %w", habitID, err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.CompletionRecord
	for rows.Next() {
		var day int64
		var completedAt sql.NullInt64
		var rec schema.CompletionRecord
		if err := rows.Scan(&day, &rec.Completed, &rec.Planned, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan completion row: %w", err)
		}
		rec.Day = unixDay(day)
		if completedAt.Valid {
			ts := time.Unix(completedAt.Int64, 0).UTC()
			rec.CompletedAt = &ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetStreakState derives the current and longest streak from the full
// completion history. The current streak tolerates a not-yet-logged today:
// a run ending yesterday still counts as alive.
func (s *StoreImpl) GetStreakState(habitID string) (schema.StreakState, error) {
	if s.disabled() {
		return schema.StreakState{}, nil
	}

	rows, err := s.db.Query(s.rebind(`
		SELECT day_unix FROM completions
		WHERE habit_id = ? AND completed = ?
		ORDER BY day_unix ASC`), habitID, true)
	if err != nil {
		return schema.StreakState{}, fmt.Errorf("failed to read streak days for habit %q: %w", habitID, err)
	}
	defer func() { _ = rows.Close() }()

	var days []time.Time
	for rows.Next() {
		var day int64
		if err := rows.Scan(&day); err != nil {
			return schema.StreakState{}, fmt.Errorf("failed to scan streak row: %w", err)
		}
		days = append(days, unixDay(day))
	}
	if err := rows.Err(); err != nil {
		return schema.StreakState{}, err
	}

	return deriveStreaks(days, time.Now()), nil
}

// deriveStreaks computes streak counters from an ascending list of distinct
// completed days.
func deriveStreaks(days []time.Time, now time.Time) schema.StreakState {
	if len(days) == 0 {
		return schema.StreakState{}
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// The trailing run is current only if it reaches today or yesterday.
	today := schema.DayOf(now)
	last := days[len(days)-1]
	current := 0
	if last.Equal(today) || last.Equal(today.AddDate(0, 0, -1)) {
		current = 1
		for i := len(days) - 1; i > 0; i-- {
			if days[i].Sub(days[i-1]) != 24*time.Hour {
				break
			}
			current++
		}
	}

	return schema.StreakState{Current: current, Longest: longest}
}

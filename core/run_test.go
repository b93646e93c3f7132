package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory HabitStore for the orchestration tests. It
// ignores the lookback argument and hands back the full canned history.
type memStore struct {
	habits    []schema.Habit
	histories map[string][]schema.CompletionRecord
	streaks   map[string]schema.StreakState
}

func (m *memStore) GetCompletionHistory(habitID string, _ int) ([]schema.CompletionRecord, error) {
	return m.histories[habitID], nil
}

func (m *memStore) GetStreakState(habitID string) (schema.StreakState, error) {
	return m.streaks[habitID], nil
}

func (m *memStore) ListHabits() ([]schema.Habit, error) {
	return m.habits, nil
}

func (m *memStore) GetHabit(id string) (schema.Habit, error) {
	for _, h := range m.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return schema.Habit{}, fmt.Errorf("habit not found: %s", id)
}

func (m *memStore) UpsertHabit(schema.Habit) error                      { return nil }
func (m *memStore) LogCompletion(string, schema.CompletionRecord) error { return nil }
func (m *memStore) GetStatus() (schema.StoreStatus, error)              { return schema.StoreStatus{}, nil }
func (m *memStore) Clear() error                                        { return nil }
func (m *memStore) Close() error                                        { return nil }

// runNow is a Monday morning; "run" is completed for that day, "meditate"
// is not.
var runNow = time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)

func newRunStore() *memStore {
	// Identical series through yesterday; only "run" has a record for today.
	start := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	bits := []int{1, 1, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1}
	meditate := seriesHistory(start, bits)
	run := seriesHistory(start, bits)
	run = append(run, schema.CompletionRecord{Day: schema.DayOf(runNow), Completed: true, Planned: true})

	return &memStore{
		habits: []schema.Habit{
			{ID: "meditate", Title: "Morning meditation", Difficulty: schema.EasyDifficulty, TimeType: schema.MorningTime},
			{ID: "run", Title: "Evening run", Difficulty: schema.HardDifficulty, TimeType: schema.EveningTime},
		},
		histories: map[string][]schema.CompletionRecord{
			"meditate": meditate,
			"run":      run,
		},
		streaks: map[string]schema.StreakState{
			"meditate": {Current: 2, Longest: 5},
			"run":      {Current: 3, Longest: 3},
		},
	}
}

func runConfig() *contract.Config {
	return &contract.Config{
		Now:          runNow,
		LookbackDays: 30,
		ResultLimit:  10,
		Workers:      2,
	}
}

func TestGetTimingPatternUnknownHabit(t *testing.T) {
	_, err := GetTimingPattern(runConfig(), newRunStore(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "habit not found")
}

func TestGetTimingPattern(t *testing.T) {
	pattern, err := GetTimingPattern(runConfig(), newRunStore(), "meditate")
	require.NoError(t, err)

	assert.Equal(t, "meditate", pattern.HabitID)
	assert.Greater(t, pattern.CompletionRate, 0.0)
	assert.LessOrEqual(t, pattern.CompletionRate, 1.0)
}

func TestGetStreakPrediction(t *testing.T) {
	prediction, err := GetStreakPrediction(runConfig(), newRunStore(), "run")
	require.NoError(t, err)

	assert.Equal(t, "run", prediction.HabitID)
	assert.Equal(t, 3, prediction.CurrentStreak)
	assert.GreaterOrEqual(t, prediction.ConfidenceScore, 0.0)
	assert.LessOrEqual(t, prediction.ConfidenceScore, 1.0)
	assert.NotEmpty(t, prediction.Recommendation)
	assert.NotNil(t, prediction.RiskFactors)
	assert.NotNil(t, prediction.StrengthFactors)
}

func TestGetCorrelationInsights(t *testing.T) {
	insights, err := GetCorrelationInsights(runConfig(), newRunStore())
	require.NoError(t, err)

	require.Len(t, insights, 1)
	assert.Equal(t, schema.PositiveCorrelation, insights[0].Type)
}

func TestGetCorrelationInsightsNoCap(t *testing.T) {
	cfg := runConfig()
	cfg.ResultLimit = 0
	insights, err := GetCorrelationInsights(cfg, newRunStore())
	require.NoError(t, err)
	assert.Len(t, insights, 1)
}

func TestGetCorrelationInsightsSingleHabit(t *testing.T) {
	store := newRunStore()
	store.habits = store.habits[:1]

	insights, err := GetCorrelationInsights(runConfig(), store)
	require.NoError(t, err)
	require.NotNil(t, insights)
	assert.Empty(t, insights)
}

func TestGetSmartInsights(t *testing.T) {
	insights, err := GetSmartInsights(runConfig(), newRunStore(), "meditate")
	require.NoError(t, err)

	assert.Equal(t, "meditate", insights.HabitID)
	assert.NotEmpty(t, insights.PersonalizedTip)
	assert.NotEmpty(t, insights.MotivationalMessage)
}

func TestGetNextActionsSkipsCompleted(t *testing.T) {
	ranked, err := GetNextActions(runConfig(), newRunStore())
	require.NoError(t, err)

	require.Len(t, ranked, 1)
	assert.Equal(t, "meditate", ranked[0].ID)
	assert.Equal(t, 2, ranked[0].Streak)
}

func TestGetNextActionsExclude(t *testing.T) {
	cfg := runConfig()
	cfg.ExcludeIDs = []string{"meditate"}

	ranked, err := GetNextActions(cfg, newRunStore())
	require.NoError(t, err)
	require.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRunDashboard(t *testing.T) {
	result, err := RunDashboard(context.Background(), runConfig(), newRunStore())
	require.NoError(t, err)

	require.Len(t, result.Habits, 2)
	// Result order follows the store's listing order, not worker order.
	assert.Equal(t, "meditate", result.Habits[0].Habit.ID)
	assert.Equal(t, "run", result.Habits[1].Habit.ID)
	assert.Equal(t, "meditate", result.Habits[0].Insights.HabitID)
	assert.Equal(t, 3, result.Habits[1].Streak.Current)

	require.Len(t, result.NextActions, 1)
	assert.Equal(t, "meditate", result.NextActions[0].ID)
	assert.Equal(t, runNow, result.GeneratedAt)
}

func TestRunDashboardCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunDashboard(ctx, runConfig(), newRunStore())
	assert.ErrorIs(t, err, context.Canceled)
}

package core

import (
	"fmt"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// todaySnapshot captures each habit's state for the reference day. It feeds
// the user context, the sibling lists and the ranking input.
type todaySnapshot struct {
	completedToday map[string]bool
	completedAt    map[string]*time.Time
	streaks        map[string]schema.StreakState
}

func loadTodaySnapshot(store contract.HabitStore, habits []schema.Habit, now time.Time) todaySnapshot {
	today := schema.DayOf(now)
	snap := todaySnapshot{
		completedToday: make(map[string]bool, len(habits)),
		completedAt:    make(map[string]*time.Time, len(habits)),
		streaks:        make(map[string]schema.StreakState, len(habits)),
	}
	for _, h := range habits {
		history, err := store.GetCompletionHistory(h.ID, 1)
		if err == nil {
			for _, rec := range history {
				if rec.Completed && schema.DayOf(rec.Day).Equal(today) {
					snap.completedToday[h.ID] = true
					snap.completedAt[h.ID] = rec.CompletedAt
				}
			}
		}
		if s, err := store.GetStreakState(h.ID); err == nil {
			snap.streaks[h.ID] = s
		}
	}
	return snap
}

func (s todaySnapshot) userContext(habits []schema.Habit, now time.Time) schema.UserContext {
	completedCount := 0
	for _, done := range s.completedToday {
		if done {
			completedCount++
		}
	}
	userCtx := schema.UserContext{
		CurrentHour:     now.Hour(),
		DayOfWeek:       now.Weekday(),
		TotalHabits:     len(habits),
		CompletedHabits: completedCount,
	}
	if len(habits) > 0 {
		userCtx.CompletionRate = float64(completedCount) / float64(len(habits))
	}
	return userCtx
}

// GetTimingPattern analyzes one habit's completion history over the
// configured lookback window.
func GetTimingPattern(cfg *contract.Config, store contract.HabitStore, habitID string) (schema.HabitTimingPattern, error) {
	if _, err := store.GetHabit(habitID); err != nil {
		return schema.HabitTimingPattern{}, err
	}
	history, err := store.GetCompletionHistory(habitID, cfg.LookbackDays)
	if err != nil {
		return schema.HabitTimingPattern{}, fmt.Errorf("failed to load completion history: %w", err)
	}
	streak, err := store.GetStreakState(habitID)
	if err != nil {
		return schema.HabitTimingPattern{}, fmt.Errorf("failed to load streak state: %w", err)
	}
	return AnalyzeTiming(habitID, history, streak), nil
}

// GetStreakPrediction assesses the break risk of one habit's current streak.
func GetStreakPrediction(cfg *contract.Config, store contract.HabitStore, habitID string) (schema.StreakPrediction, error) {
	pattern, err := GetTimingPattern(cfg, store, habitID)
	if err != nil {
		return schema.StreakPrediction{}, err
	}
	streak, err := store.GetStreakState(habitID)
	if err != nil {
		return schema.StreakPrediction{}, fmt.Errorf("failed to load streak state: %w", err)
	}
	recent, err := store.GetCompletionHistory(habitID, contract.DefaultRecentDays)
	if err != nil {
		return schema.StreakPrediction{}, fmt.Errorf("failed to load recent history: %w", err)
	}
	return PredictRisk(habitID, streak, pattern, recent, cfg.Now), nil
}

// GetCorrelationInsights detects completion correlations across all habits
// using their date-joined histories.
func GetCorrelationInsights(cfg *contract.Config, store contract.HabitStore) ([]schema.HabitCorrelationInsight, error) {
	habits, err := store.ListHabits()
	if err != nil {
		return nil, err
	}
	histories := make(map[string][]schema.CompletionRecord, len(habits))
	for _, h := range habits {
		history, err := store.GetCompletionHistory(h.ID, cfg.LookbackDays)
		if err != nil {
			return nil, fmt.Errorf("failed to load history for %s: %w", h.ID, err)
		}
		histories[h.ID] = history
	}
	insights := AnalyzeCorrelationsByDate(histories)
	if cfg.ResultLimit > 0 && len(insights) > cfg.ResultLimit {
		insights = insights[:cfg.ResultLimit]
	}
	return insights, nil
}

// GetSmartInsights synthesizes the full insight bundle for one habit,
// using every other habit as stacking context.
func GetSmartInsights(cfg *contract.Config, store contract.HabitStore, habitID string) (schema.SmartInsights, error) {
	target, err := store.GetHabit(habitID)
	if err != nil {
		return schema.SmartInsights{}, err
	}
	habits, err := store.ListHabits()
	if err != nil {
		return schema.SmartInsights{}, err
	}

	now := cfg.Now
	snap := loadTodaySnapshot(store, habits, now)
	userCtx := snap.userContext(habits, now)

	return Synthesize(store, habitInfo(target, snap.completedToday, snap.streaks), userCtx,
		siblingsOf(habits, target.ID, snap.completedToday, snap.completedAt), now), nil
}

// GetNextActions ranks the incomplete habits for the reference time.
func GetNextActions(cfg *contract.Config, store contract.HabitStore) ([]schema.RankedHabit, error) {
	habits, err := store.ListHabits()
	if err != nil {
		return nil, err
	}

	now := cfg.Now
	snap := loadTodaySnapshot(store, habits, now)

	exclude := make(map[string]struct{}, len(cfg.ExcludeIDs))
	for _, id := range cfg.ExcludeIDs {
		exclude[id] = struct{}{}
	}
	ranked := RankNextActions(rankingInput(habits, snap.completedToday, snap.streaks), exclude, now)
	if cfg.ResultLimit > 0 && len(ranked) > cfg.ResultLimit {
		ranked = ranked[:cfg.ResultLimit]
	}
	return ranked, nil
}

package core

import (
	"context"
	"sync"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// RunDashboard performs the full per-habit fan-out: it loads every habit,
// synthesizes insights for each one concurrently with cfg.Workers workers,
// and ranks the incomplete habits as next actions. The per-habit order of
// the result matches the store's listing order regardless of worker
// scheduling.
func RunDashboard(ctx context.Context, cfg *contract.Config, store contract.HabitStore) (*schema.DashboardResult, error) {
	habits, err := store.ListHabits()
	if err != nil {
		return nil, err
	}

	now := cfg.Now
	snap := loadTodaySnapshot(store, habits, now)
	userCtx := snap.userContext(habits, now)

	results := make([]schema.HabitDashboard, len(habits))
	idxCh := make(chan int, len(habits))
	var wg sync.WaitGroup
	for range cfg.Workers {
		wg.Go(func() {
			for idx := range idxCh {
				select {
				case <-ctx.Done():
					continue
				default:
				}
				h := habits[idx]
				// Each goroutine writes to a unique index, which is safe.
				results[idx] = schema.HabitDashboard{
					Habit:  h,
					Streak: snap.streaks[h.ID],
					Insights: Synthesize(store, habitInfo(h, snap.completedToday, snap.streaks), userCtx,
						siblingsOf(habits, h.ID, snap.completedToday, snap.completedAt), now),
				}
			}
		})
	}
	for idx := range habits {
		idxCh <- idx
	}
	close(idxCh)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exclude := make(map[string]struct{}, len(cfg.ExcludeIDs))
	for _, id := range cfg.ExcludeIDs {
		exclude[id] = struct{}{}
	}
	nextActions := RankNextActions(rankingInput(habits, snap.completedToday, snap.streaks), exclude, now)
	if cfg.ResultLimit > 0 && len(nextActions) > cfg.ResultLimit {
		nextActions = nextActions[:cfg.ResultLimit]
	}

	return &schema.DashboardResult{
		Habits:      results,
		NextActions: nextActions,
		GeneratedAt: now,
	}, nil
}

func habitInfo(h schema.Habit, completedToday map[string]bool, streaks map[string]schema.StreakState) schema.HabitInfo {
	return schema.HabitInfo{
		ID:           h.ID,
		Name:         h.Title,
		Completed:    completedToday[h.ID],
		Streak:       streaks[h.ID].Current,
		Difficulty:   h.Difficulty,
		TimeType:     h.TimeType,
		SpecificTime: h.SpecificTime,
	}
}

func siblingsOf(habits []schema.Habit, selfID string, completedToday map[string]bool, completedAt map[string]*time.Time) []schema.SiblingHabit {
	siblings := make([]schema.SiblingHabit, 0, len(habits)-1)
	for _, h := range habits {
		if h.ID == selfID {
			continue
		}
		siblings = append(siblings, schema.SiblingHabit{
			ID:          h.ID,
			Name:        h.Title,
			Completed:   completedToday[h.ID],
			CompletedAt: completedAt[h.ID],
		})
	}
	return siblings
}

func rankingInput(habits []schema.Habit, completedToday map[string]bool, streaks map[string]schema.StreakState) []schema.RankedHabit {
	input := make([]schema.RankedHabit, 0, len(habits))
	for _, h := range habits {
		input = append(input, schema.RankedHabit{
			ID:           h.ID,
			Title:        h.Title,
			Completed:    completedToday[h.ID],
			Streak:       streaks[h.ID].Current,
			TimeType:     h.TimeType,
			SpecificTime: h.SpecificTime,
			DaysOfWeek:   h.DaysOfWeek,
		})
	}
	return input
}

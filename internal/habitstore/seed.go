package habitstore

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// Demo habits spanning the time slot and difficulty variants, each with a
// target completion rate the generated history converges on.
var seedHabits = []struct {
	habit schema.Habit
	rate  float64
	hour  int // -1 for no completion timestamps
}{
	{
		habit: schema.Habit{ID: "meditate", Title: "Meditate", Difficulty: schema.EasyDifficulty,
			TimeType: schema.MorningTime},
		rate: 0.85, hour: 7,
	},
	{
		habit: schema.Habit{ID: "run", Title: "Go for a run", Difficulty: schema.HardDifficulty,
			TimeType: schema.MorningTime,
			DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		rate: 0.6, hour: 6,
	},
	{
		habit: schema.Habit{ID: "journal", Title: "Write journal", Difficulty: schema.MediumDifficulty,
			TimeType: schema.EveningTime},
		rate: 0.75, hour: 21,
	},
	{
		habit: schema.Habit{ID: "read", Title: "Read 20 pages", Difficulty: schema.MediumDifficulty,
			TimeType: schema.AnytimeTime},
		rate: 0.5, hour: -1,
	},
	{
		habit: schema.Habit{ID: "stretch", Title: "Stretch", Difficulty: schema.EasyDifficulty,
			TimeType: schema.SpecificTime, SpecificTime: "12:30"},
		rate: 0.4, hour: 12,
	},
}

// Seed fills the store with demo habits and the given number of days of
// generated history. The same seed value reproduces the same history, which
// keeps demos and bug reports comparable.
func Seed(store contract.HabitStore, days int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	today := schema.DayOf(time.Now())

	for _, sh := range seedHabits {
		if err := store.UpsertHabit(sh.habit); err != nil {
			return fmt.Errorf("failed to seed habit %q: %w", sh.habit.ID, err)
		}

		for i := days; i > 0; i-- {
			day := today.AddDate(0, 0, -i)
			if !scheduledOn(sh.habit, day.Weekday()) {
				continue
			}
			rec := schema.CompletionRecord{
				Day:       day,
				Planned:   true,
				Completed: rng.Float64() < sh.rate,
			}
			if rec.Completed && sh.hour >= 0 {
				// Jitter the completion time around the habitual hour.
				ts := day.Add(time.Duration(sh.hour)*time.Hour + time.Duration(rng.Intn(50))*time.Minute)
				rec.CompletedAt = &ts
			}
			if err := store.LogCompletion(sh.habit.ID, rec); err != nil {
				return fmt.Errorf("failed to seed history for %q: %w", sh.habit.ID, err)
			}
		}
	}
	return nil
}

func scheduledOn(h schema.Habit, day time.Weekday) bool {
	if len(h.DaysOfWeek) == 0 {
		return true
	}
	for _, d := range h.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

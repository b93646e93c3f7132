// Package core implements the habit analytics engine: timing pattern
// analysis, streak risk prediction, habit correlation, insight synthesis and
// next-action ranking. Every entry point is a pure function of its inputs
// plus an explicit reference time, safe for concurrent use.
package core

import (
	"sort"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// Tunable analysis constants.
const (
	maxOptimalHours       = 3    // top completion hours to surface
	maxDifficultDays      = 2    // weakest weekdays to surface
	difficultDayThreshold = 0.5  // weekday rate below this marks a difficult day
	streakBonusPerDay     = 0.1  // streak contribution to potential, per day
	maxStreakBonus        = 0.3  // streak contribution saturates here
	maxStreakPotential    = 0.95 // potential is never reported as a certainty

	morningHourCutoff   = 11 // mean optimal hour at or below this is a morning habit
	afternoonHourCutoff = 16 // ... and at or below this an afternoon habit
)

// moodTableProvider supplies the mood correlation table. The journal does
// not yet tag completions with moods, so the default is a fixed prior.
var moodTableProvider = schema.DefaultMoodCorrelation

// SetMoodTableProvider replaces the mood table source once mood-tagged
// completion data is available. Passing nil restores the default.
func SetMoodTableProvider(fn func() map[schema.Mood]float64) {
	if fn == nil {
		moodTableProvider = schema.DefaultMoodCorrelation
		return
	}
	moodTableProvider = fn
}

// AnalyzeTiming turns a completion history into a timing pattern: optimal
// hours, per-weekday success rates, difficult days and an energy-period
// classification. An empty history yields the documented default pattern,
// and any internal fault degrades to the same default; this function never
// returns an error to its caller.
func AnalyzeTiming(habitID string, history []schema.CompletionRecord, streak schema.StreakState) (pattern schema.HabitTimingPattern) {
	defer func() {
		if r := recover(); r != nil {
			pattern = DefaultTimingPattern(habitID)
		}
	}()

	if len(history) == 0 {
		return DefaultTimingPattern(habitID)
	}

	completed := 0
	for _, rec := range history {
		if rec.Completed {
			completed++
		}
	}
	completionRate := float64(completed) / float64(len(history))

	weekdayPattern := computeWeekdayPattern(history)
	optimalHours, observed := computeOptimalHours(history)

	energy := schema.FlexibleEnergy
	if observed {
		energy = classifyEnergy(optimalHours)
	}

	return schema.HabitTimingPattern{
		HabitID:         habitID,
		OptimalHours:    optimalHours,
		CompletionRate:  completionRate,
		WeekdayPattern:  weekdayPattern,
		MoodCorrelation: moodTableProvider(),
		StreakPotential: computeStreakPotential(completionRate, streak.Current, weekdayPattern),
		DifficultDays:   findDifficultDays(weekdayPattern),
		EnergyPattern:   energy,
	}
}

// DefaultTimingPattern is the deterministic cold-start pattern returned for
// habits with no history. It seeds every downstream heuristic, so changing
// any value here changes first-week behavior for new users.
func DefaultTimingPattern(habitID string) schema.HabitTimingPattern {
	weekdayPattern := schema.DefaultWeekdayPattern()
	return schema.HabitTimingPattern{
		HabitID:         habitID,
		OptimalHours:    append([]int(nil), schema.DefaultOptimalHours...),
		CompletionRate:  schema.DefaultCompletionRate,
		WeekdayPattern:  weekdayPattern,
		MoodCorrelation: moodTableProvider(),
		StreakPotential: computeStreakPotential(schema.DefaultCompletionRate, 0, weekdayPattern),
		DifficultDays:   findDifficultDays(weekdayPattern),
		EnergyPattern:   schema.FlexibleEnergy,
	}
}

// computeWeekdayPattern computes completed-on-day / total-on-day for each of
// the 7 weekdays. Days with zero observations get rate 0.
func computeWeekdayPattern(history []schema.CompletionRecord) map[time.Weekday]float64 {
	var totals, wins [7]int
	for _, rec := range history {
		day := rec.Day.Weekday()
		totals[day]++
		if rec.Completed {
			wins[day]++
		}
	}

	pattern := make(map[time.Weekday]float64, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		if totals[day] == 0 {
			pattern[day] = 0
			continue
		}
		pattern[day] = float64(wins[day]) / float64(totals[day])
	}
	return pattern
}

// computeOptimalHours returns the top completion hours, most frequent first,
// from the records that carry a completion timestamp. When no record has a
// timestamp (the journal historically stored only dates) it falls back to
// the default hours and reports observed=false so callers do not mistake
// the heuristic for evidence.
func computeOptimalHours(history []schema.CompletionRecord) (hours []int, observed bool) {
	counts := make(map[int]int)
	for _, rec := range history {
		if !rec.Completed || rec.CompletedAt == nil {
			continue
		}
		counts[rec.CompletedAt.Hour()]++
	}

	if len(counts) == 0 {
		return append([]int(nil), schema.DefaultOptimalHours...), false
	}

	distinct := make([]int, 0, len(counts))
	for h := range counts {
		distinct = append(distinct, h)
	}
	// Most frequent first; ties resolve to the earlier hour for determinism.
	sort.Slice(distinct, func(i, j int) bool {
		if counts[distinct[i]] != counts[distinct[j]] {
			return counts[distinct[i]] > counts[distinct[j]]
		}
		return distinct[i] < distinct[j]
	})

	if len(distinct) > maxOptimalHours {
		distinct = distinct[:maxOptimalHours]
	}
	return distinct, true
}

// classifyEnergy maps the mean optimal hour to a coarse energy period.
func classifyEnergy(hours []int) schema.EnergyPattern {
	if len(hours) == 0 {
		return schema.FlexibleEnergy
	}
	sum := 0
	for _, h := range hours {
		sum += h
	}
	mean := float64(sum) / float64(len(hours))
	switch {
	case mean <= morningHourCutoff:
		return schema.MorningEnergy
	case mean <= afternoonHourCutoff:
		return schema.AfternoonEnergy
	default:
		return schema.EveningEnergy
	}
}

// findDifficultDays returns the up-to-2 weakest weekdays, ascending by rate,
// excluding any day at or above the difficulty threshold.
func findDifficultDays(pattern map[time.Weekday]float64) []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		if pattern[day] < difficultDayThreshold {
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool {
		if pattern[days[i]] != pattern[days[j]] {
			return pattern[days[i]] < pattern[days[j]]
		}
		return days[i] < days[j]
	})
	if len(days) > maxDifficultDays {
		days = days[:maxDifficultDays]
	}
	return days
}

// computeStreakPotential averages the completion rate, a capped streak bonus
// and the mean weekday rate, never exceeding maxStreakPotential.
func computeStreakPotential(completionRate float64, currentStreak int, weekdayPattern map[time.Weekday]float64) float64 {
	bonus := float64(currentStreak) * streakBonusPerDay
	if bonus > maxStreakBonus {
		bonus = maxStreakBonus
	}

	var weekdaySum float64
	for _, rate := range weekdayPattern {
		weekdaySum += rate
	}
	weekdayMean := weekdaySum / 7.0

	potential := (completionRate + bonus + weekdayMean) / 3.0
	if potential > maxStreakPotential {
		potential = maxStreakPotential
	}
	return schema.Clamp01(potential)
}

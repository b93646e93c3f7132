package core

import (
	"sort"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// Ranking weights. Day match dominates, then time proximity, then how badly
// the streak needs attention.
const (
	dayMatchBonus   = 10
	dayMatchPenalty = -5
	anytimeScore    = 4

	slotProximityMax     = 8
	specificProximityMax = 10
)

// Anchor hours for the coarse time slots.
var slotAnchorHours = map[schema.TimeType]int{
	schema.MorningTime:   9,
	schema.AfternoonTime: 14,
	schema.EveningTime:   19,
	schema.LunchTime:     12,
}

// RankNextActions orders the user's remaining habits by how sensible it is
// to do them right now. Completed habits and excluded IDs are filtered out.
// The sort is stable and deterministic for a fixed now, input is never
// mutated, and the internal score is stripped from the result.
func RankNextActions(habits []schema.RankedHabit, excludeIDs map[string]struct{}, now time.Time) []schema.RankedHabit {
	type scored struct {
		habit schema.RankedHabit
		score int
	}

	candidates := make([]scored, 0, len(habits))
	for _, h := range habits {
		if h.Completed {
			continue
		}
		if _, skip := excludeIDs[h.ID]; skip {
			continue
		}
		candidates = append(candidates, scored{habit: h, score: scoreHabit(h, now)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	ranked := make([]schema.RankedHabit, len(candidates))
	for i, c := range candidates {
		ranked[i] = c.habit
	}
	return ranked
}

// scoreHabit computes the ephemeral composite score for one habit.
func scoreHabit(h schema.RankedHabit, now time.Time) int {
	return dayMatchScore(h.DaysOfWeek, now.Weekday()) +
		proximityScore(h, now.Hour()) +
		streakNeedScore(h.Streak)
}

// dayMatchScore rewards habits scheduled for today. An empty day list means
// the habit runs every day.
func dayMatchScore(days []time.Weekday, today time.Weekday) int {
	if len(days) == 0 {
		return dayMatchBonus
	}
	for _, d := range days {
		if d == today {
			return dayMatchBonus
		}
	}
	return dayMatchPenalty
}

// proximityScore rewards habits whose time slot is close to the current
// hour. A malformed specific time contributes zero rather than erroring.
func proximityScore(h schema.RankedHabit, currentHour int) int {
	if anchor, ok := slotAnchorHours[h.TimeType]; ok {
		return slotProximityMax - min(hourDistance(currentHour, anchor), slotProximityMax)
	}
	if h.TimeType == schema.SpecificTime {
		hour, ok := schema.ParseClockHour(h.SpecificTime)
		if !ok {
			return 0
		}
		return specificProximityMax - min(hourDistance(currentHour, hour), specificProximityMax)
	}
	return anytimeScore
}

// streakNeedScore prioritizes nascent streaks over stable long ones.
func streakNeedScore(streak int) int {
	switch {
	case streak <= 1:
		return 10
	case streak <= 3:
		return 7
	case streak <= 7:
		return 5
	default:
		return 2
	}
}

func hourDistance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

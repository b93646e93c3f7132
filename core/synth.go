package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// Synthesis constants.
const (
	lowCompletionThreshold  = 0.3
	highCompletionThreshold = 0.8
	streakMilestoneInterval = 7
	highRiskConfidence      = 0.5 // below this a prediction counts as high risk
	maxPrimaryInsights      = 3
)

// Synthesize runs the full analyzer chain for one habit and distills the
// results into at most three renderable insights plus a personalized tip and
// a motivational message. Reader failures are absorbed: a missing history or
// streak simply suppresses the insights that depend on it. Any internal
// fault degrades to a minimal fallback bundle; this function never returns
// an error or panics to its caller.
func Synthesize(reader contract.HistoryReader, habit schema.HabitInfo, userCtx schema.UserContext, siblings []schema.SiblingHabit, now time.Time) (out schema.SmartInsights) {
	defer func() {
		if r := recover(); r != nil {
			out = fallbackInsights(habit, userCtx)
		}
	}()

	var history []schema.CompletionRecord
	if reader != nil {
		if h, err := reader.GetCompletionHistory(habit.ID, contract.DefaultLookbackDays); err == nil {
			history = h
		}
	}
	streak := schema.StreakState{Current: habit.Streak, Longest: habit.Streak}
	if reader != nil {
		if s, err := reader.GetStreakState(habit.ID); err == nil {
			streak = s
		}
	}

	pattern := AnalyzeTiming(habit.ID, history, streak)
	recent := history
	if len(recent) > contract.DefaultRecentDays {
		recent = recent[len(recent)-contract.DefaultRecentDays:]
	}
	prediction := PredictRisk(habit.ID, streak, pattern, recent, now)
	riskHigh := prediction.ConfidenceScore < highRiskConfidence

	insights := []schema.EnhancedInsight{}
	insights = append(insights, timingInsights(habit, pattern, userCtx)...)
	insights = append(insights, streakInsights(habit, streak, riskHigh)...)
	insights = append(insights, motivationInsights(habit, userCtx)...)
	insights = append(insights, patternInsights(habit, userCtx, siblings)...)
	insights = append(insights, recommendationInsights(habit, pattern, userCtx, riskHigh)...)

	sort.SliceStable(insights, func(i, j int) bool {
		pi, pj := schema.PriorityRank(insights[i].Priority), schema.PriorityRank(insights[j].Priority)
		if pi != pj {
			return pi > pj
		}
		return insights[i].Confidence > insights[j].Confidence
	})
	if len(insights) > maxPrimaryInsights {
		insights = insights[:maxPrimaryInsights]
	}

	tipKey := selectTipKey(&prediction, &pattern, userCtx)
	msgKey := selectMotivationKey(userCtx.CompletionRate, userCtx.CurrentHour)
	return schema.SmartInsights{
		HabitID:             habit.ID,
		PrimaryInsights:     insights,
		OptimalTime:         schema.FormatHourRange(pattern.OptimalHours),
		StreakRisk:          &prediction,
		PersonalizedTip:     tipText(tipKey),
		TipKey:              tipKey,
		MotivationalMessage: motivationText(msgKey),
		MessageKey:          msgKey,
	}
}

// timingInsights fires when the habit is incomplete: either "now is optimal"
// or "your optimal window is coming up", wrapping past midnight to the
// earliest optimal hour.
func timingInsights(habit schema.HabitInfo, pattern schema.HabitTimingPattern, userCtx schema.UserContext) []schema.EnhancedInsight {
	if habit.Completed || len(pattern.OptimalHours) == 0 {
		return nil
	}
	for _, h := range pattern.OptimalHours {
		if h == userCtx.CurrentHour {
			return []schema.EnhancedInsight{{
				ID:              "timing-now-" + habit.ID,
				Type:            schema.TimingInsight,
				Icon:            "⏰",
				Title:           "Perfect timing",
				Message:         fmt.Sprintf("Right now is one of your best times for %s.", habit.Name),
				Priority:        schema.HighPriority,
				Actionable:      true,
				SuggestedAction: fmt.Sprintf("Do %s now while the window is open.", habit.Name),
				Confidence:      0.9,
			}}
		}
	}
	next := nextOptimalHour(pattern.OptimalHours, userCtx.CurrentHour)
	return []schema.EnhancedInsight{{
		ID:              "timing-upcoming-" + habit.ID,
		Type:            schema.TimingInsight,
		Icon:            "⏰",
		Title:           "Optimal time upcoming",
		Message:         fmt.Sprintf("Your best window for %s is around %d:00.", habit.Name, next),
		Priority:        schema.MediumPriority,
		Actionable:      true,
		SuggestedAction: fmt.Sprintf("Set a reminder for %d:00.", next),
		Confidence:      0.7,
	}}
}

// nextOptimalHour returns the first optimal hour strictly after current,
// wrapping to the smallest hour when none remain today.
func nextOptimalHour(hours []int, current int) int {
	sorted := make([]int, len(hours))
	copy(sorted, hours)
	sort.Ints(sorted)
	for _, h := range sorted {
		if h > current {
			return h
		}
	}
	return sorted[0]
}

// streakInsights covers high-risk warnings and weekly milestones. The two
// are mutually exclusive: a streak in danger is not worth celebrating.
func streakInsights(habit schema.HabitInfo, streak schema.StreakState, riskHigh bool) []schema.EnhancedInsight {
	if riskHigh {
		return []schema.EnhancedInsight{{
			ID:              "streak-risk-" + habit.ID,
			Type:            schema.StreakInsight,
			Icon:            "⚠️",
			Title:           "Streak at risk",
			Message:         fmt.Sprintf("Your %s streak is in danger of breaking.", habit.Name),
			Priority:        schema.HighPriority,
			Actionable:      true,
			SuggestedAction: "Complete it today, even a small version counts.",
			Confidence:      0.8,
		}}
	}
	if streak.Current >= streakMilestoneInterval && streak.Current%streakMilestoneInterval == 0 {
		return []schema.EnhancedInsight{{
			ID:         "streak-milestone-" + habit.ID,
			Type:       schema.StreakInsight,
			Icon:       "🎉",
			Title:      "Milestone reached",
			Message:    fmt.Sprintf("%d days straight of %s. That's %d full weeks!", streak.Current, habit.Name, streak.Current/streakMilestoneInterval),
			Priority:   schema.MediumPriority,
			Actionable: false,
			Confidence: 1.0,
		}}
	}
	return nil
}

// motivationInsights reacts to the day-level completion rate across all of
// the user's habits.
func motivationInsights(habit schema.HabitInfo, userCtx schema.UserContext) []schema.EnhancedInsight {
	if userCtx.CompletionRate >= highCompletionThreshold {
		return []schema.EnhancedInsight{{
			ID:         "motivation-strong-" + habit.ID,
			Type:       schema.MotivationInsight,
			Icon:       "💪",
			Title:      "Strong day",
			Message:    fmt.Sprintf("%d of %d habits done already. Great momentum.", userCtx.CompletedHabits, userCtx.TotalHabits),
			Priority:   schema.MediumPriority,
			Actionable: false,
			Confidence: 1.0,
		}}
	}
	if userCtx.CompletionRate < lowCompletionThreshold && userCtx.CurrentHour < lateDayHour {
		return []schema.EnhancedInsight{{
			ID:              "motivation-restart-" + habit.ID,
			Type:            schema.MotivationInsight,
			Icon:            "🌱",
			Title:           "Start small",
			Message:         "A slow day so far. One small win can turn it around.",
			Priority:        schema.MediumPriority,
			Actionable:      true,
			SuggestedAction: fmt.Sprintf("Try a five-minute version of %s.", habit.Name),
			Confidence:      0.7,
		}}
	}
	return nil
}

// patternInsights covers habit stacking off a completed sibling and the
// weekend-capacity note for hard habits.
func patternInsights(habit schema.HabitInfo, userCtx schema.UserContext, siblings []schema.SiblingHabit) []schema.EnhancedInsight {
	var insights []schema.EnhancedInsight
	if !habit.Completed {
		if anchor, ok := latestCompletedSibling(siblings); ok {
			insights = append(insights, schema.EnhancedInsight{
				ID:              "pattern-stack-" + habit.ID,
				Type:            schema.PatternInsight,
				Icon:            "🔗",
				Title:           "Stack your habits",
				Message:         fmt.Sprintf("You just finished %s. Ride that momentum into %s.", anchor.Name, habit.Name),
				Priority:        schema.MediumPriority,
				Actionable:      true,
				SuggestedAction: fmt.Sprintf("Do %s right after %s.", habit.Name, anchor.Name),
				Confidence:      0.6,
			})
		}
	}
	if isWeekend(userCtx.DayOfWeek) && habit.Difficulty == schema.HardDifficulty {
		insights = append(insights, schema.EnhancedInsight{
			ID:         "pattern-weekend-" + habit.ID,
			Type:       schema.PatternInsight,
			Icon:       "🧘",
			Title:      "Weekend capacity",
			Message:    fmt.Sprintf("%s is a hard habit and weekends break routines. Plan a specific slot for it.", habit.Name),
			Priority:   schema.LowPriority,
			Actionable: true,
			Confidence: 0.5,
		})
	}
	return insights
}

// latestCompletedSibling picks the most recently completed sibling habit.
// Siblings completed without a timestamp lose ties to any timestamped one.
func latestCompletedSibling(siblings []schema.SiblingHabit) (schema.SiblingHabit, bool) {
	var best schema.SiblingHabit
	found := false
	for _, s := range siblings {
		if !s.Completed {
			continue
		}
		if !found {
			best, found = s, true
			continue
		}
		if s.CompletedAt != nil && (best.CompletedAt == nil || s.CompletedAt.After(*best.CompletedAt)) {
			best = s
		}
	}
	return best, found
}

// recommendationInsights suggests intensity or scheduling changes when the
// risk profile or the weekday calls for them.
func recommendationInsights(habit schema.HabitInfo, pattern schema.HabitTimingPattern, userCtx schema.UserContext, riskHigh bool) []schema.EnhancedInsight {
	var insights []schema.EnhancedInsight
	if riskHigh && habit.Difficulty == schema.HardDifficulty {
		insights = append(insights, schema.EnhancedInsight{
			ID:              "rec-intensity-" + habit.ID,
			Type:            schema.RecommendationInsight,
			Icon:            "🎯",
			Title:           "Reduce the intensity",
			Message:         fmt.Sprintf("%s is hard and the streak is shaky. A lighter version keeps the chain alive.", habit.Name),
			Priority:        schema.MediumPriority,
			Actionable:      true,
			SuggestedAction: "Cut the duration or difficulty in half this week.",
			Confidence:      0.7,
		})
	}
	for _, day := range pattern.DifficultDays {
		if day == userCtx.DayOfWeek {
			insights = append(insights, schema.EnhancedInsight{
				ID:              "rec-earlier-" + habit.ID,
				Type:            schema.RecommendationInsight,
				Icon:            "🌅",
				Title:           "Tough day ahead",
				Message:         fmt.Sprintf("%ss are usually hard for %s.", userCtx.DayOfWeek, habit.Name),
				Priority:        schema.MediumPriority,
				Actionable:      true,
				SuggestedAction: "Schedule it earlier in the day than usual.",
				Confidence:      0.6,
			})
			break
		}
	}
	return insights
}

// fallbackInsights is the reduced bundle returned when synthesis fails
// internally: at most one generic insight plus generic copy.
func fallbackInsights(habit schema.HabitInfo, userCtx schema.UserContext) schema.SmartInsights {
	insights := []schema.EnhancedInsight{}
	if !habit.Completed && userCtx.CurrentHour < lateDayHour {
		insights = append(insights, schema.EnhancedInsight{
			ID:         "fallback-" + habit.ID,
			Type:       schema.MotivationInsight,
			Icon:       "✨",
			Title:      "Ready to begin",
			Message:    fmt.Sprintf("There's still time today for %s.", habit.Name),
			Priority:   schema.MediumPriority,
			Actionable: true,
			Confidence: 0.5,
		})
	}
	msgKey := selectMotivationKey(0, userCtx.CurrentHour)
	return schema.SmartInsights{
		HabitID:             habit.ID,
		PrimaryInsights:     insights,
		PersonalizedTip:     tipText(schema.TipSteadyProgress),
		TipKey:              schema.TipSteadyProgress,
		MotivationalMessage: motivationText(msgKey),
		MessageKey:          msgKey,
	}
}

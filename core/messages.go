package core

import (
	"fmt"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// The copy tables below separate wording from the rules that select it.
// Tests assert on the selected MessageKey, never on the literal strings, so
// product can rewrite copy without touching the engine contract.

// Hour-of-day boundaries for message selection.
const (
	morningEndHour = 12
	lateDayHour    = 20
)

var recommendationCopy = map[schema.MessageKey]string{
	schema.RecReinforceRoutine: "Your routine is working. Keep the same time and context every day.",
	schema.RecAddressTopRisk:   "Biggest threat to your streak: %s. Tackle that first.",
	schema.RecMinimalAction:    "Shrink this habit to its minimum viable version and do it daily until the streak stabilizes.",
	schema.RecInsufficientData: "Not enough history yet. Log a few more days to unlock predictions.",
}

var tipCopy = map[schema.MessageKey]string{
	schema.TipAnchorRoutine:  "Attach this habit to something you already do daily, like your morning coffee.",
	schema.TipDifficultDay:   "Today is usually a tough day for this habit. Schedule it earlier than usual.",
	schema.TipStartSmall:     "Commit to just five minutes. Momentum matters more than volume.",
	schema.TipMorningEnergy:  "Your willpower is highest before noon. Knock this out early.",
	schema.TipSteadyProgress: "Consistency beats intensity. Same time, same place, every day.",
}

var motivationCopy = map[schema.MessageKey]string{
	schema.MsgPerfectDay:  "Perfect day! Every habit done. 🎉",
	schema.MsgAlmostThere: "Almost there! Finish the day strong.",
	schema.MsgGoodPace:    "Good pace. You're past the halfway mark.",
	schema.MsgFreshStart:  "Fresh start. Pick one habit and begin.",
	schema.MsgEveningWind: "The day is winding down. Tomorrow is a fresh start.",
	schema.MsgKeepGoing:   "Keep going. Small steps add up.",
}

// recommendationText renders the recommendation for a key, naming the top
// risk factor when the tier calls for one.
func recommendationText(key schema.MessageKey, riskFactors []string) string {
	text := recommendationCopy[key]
	if key != schema.RecAddressTopRisk {
		return text
	}
	top := "low consistency"
	if len(riskFactors) > 0 {
		top = riskFactors[0]
	}
	return fmt.Sprintf(text, top)
}

// selectTipKey walks the personalized-tip decision table in priority order:
// streak danger, difficult day, low completion, then time of day.
func selectTipKey(prediction *schema.StreakPrediction, pattern *schema.HabitTimingPattern, userCtx schema.UserContext) schema.MessageKey {
	if prediction != nil && prediction.ConfidenceScore < highRiskConfidence {
		return schema.TipAnchorRoutine
	}
	if pattern != nil {
		for _, day := range pattern.DifficultDays {
			if day == userCtx.DayOfWeek {
				return schema.TipDifficultDay
			}
		}
	}
	if userCtx.CompletionRate < 0.3 {
		return schema.TipStartSmall
	}
	if userCtx.CurrentHour < morningEndHour {
		return schema.TipMorningEnergy
	}
	return schema.TipSteadyProgress
}

// selectMotivationKey walks the motivational-message decision table:
// completion tiers first, then hour of day.
func selectMotivationKey(completionRate float64, currentHour int) schema.MessageKey {
	switch {
	case completionRate >= 1.0:
		return schema.MsgPerfectDay
	case completionRate >= 0.8:
		return schema.MsgAlmostThere
	case completionRate >= 0.5:
		return schema.MsgGoodPace
	case currentHour < morningEndHour:
		return schema.MsgFreshStart
	case currentHour >= lateDayHour:
		return schema.MsgEveningWind
	default:
		return schema.MsgKeepGoing
	}
}

// tipText and motivationText render the selected keys.
func tipText(key schema.MessageKey) string {
	return tipCopy[key]
}

func motivationText(key schema.MessageKey) string {
	return motivationCopy[key]
}

// isWeekend reports whether the given weekday is Saturday or Sunday.
func isWeekend(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}

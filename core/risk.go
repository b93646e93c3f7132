package core

import (
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// Risk factor strings surfaced in predictions. These are stable identifiers
// as far as the UI is concerned; change them and saved screenshots lie.
const (
	RiskLowCompletion    = "Low overall completion rate"
	RiskDifficultDays    = "Struggles on certain weekdays"
	RiskRecentMisses     = "Recent missed days increasing"
	RiskLowPotential     = "Low streak potential"
	StrengthHighRate     = "High completion rate"
	StrengthLongStreak   = "Strong current streak"
	StrengthTimingHabit  = "Consistent time-of-day preference"
	StrengthHighPotental = "High streak potential"
)

// Prediction thresholds and weights.
const (
	riskRateThreshold      = 0.6  // completion rate below this is a risk
	strengthRateThreshold  = 0.8  // ... and above this a strength
	riskMissedThreshold    = 3    // missed days in the recent window above this is a risk
	riskPotentialFloor     = 0.5  // potential below this is a risk
	strengthPotentialFloor = 0.7  // ... and above this a strength
	strongStreakDays       = 7    // streaks at least this long are a strength
	confidenceFloor        = 0.1  // prediction confidence lower bound
	confidenceCeil         = 0.95 // prediction confidence upper bound
	predictionThreshold    = 0.6  // below this confidence we predict a break date
	predictionHorizonDays  = 14   // break date lands within this many days
)

// PredictRisk combines streak counters, timing pattern and the last two
// weeks of history into a streak prediction. A break date is estimated only
// when confidence drops below the prediction threshold; any internal fault
// degrades to an insufficient-data fallback. Never returns an error.
func PredictRisk(habitID string, streak schema.StreakState, pattern schema.HabitTimingPattern, recent []schema.CompletionRecord, now time.Time) (prediction schema.StreakPrediction) {
	defer func() {
		if r := recover(); r != nil {
			prediction = fallbackPrediction(habitID)
		}
	}()

	riskFactors := []string{}
	strengthFactors := []string{}

	missed := 0
	recentDone := 0
	for _, rec := range recent {
		if rec.Completed {
			recentDone++
		} else {
			missed++
		}
	}

	if pattern.CompletionRate < riskRateThreshold {
		riskFactors = append(riskFactors, RiskLowCompletion)
	}
	if len(pattern.DifficultDays) > 0 {
		riskFactors = append(riskFactors, RiskDifficultDays)
	}
	if missed > riskMissedThreshold {
		riskFactors = append(riskFactors, RiskRecentMisses)
	}
	if pattern.StreakPotential < riskPotentialFloor {
		riskFactors = append(riskFactors, RiskLowPotential)
	}

	if pattern.CompletionRate > strengthRateThreshold {
		strengthFactors = append(strengthFactors, StrengthHighRate)
	}
	if streak.Current >= strongStreakDays {
		strengthFactors = append(strengthFactors, StrengthLongStreak)
	}
	if pattern.EnergyPattern != schema.FlexibleEnergy {
		strengthFactors = append(strengthFactors, StrengthTimingHabit)
	}
	if pattern.StreakPotential > strengthPotentialFloor {
		strengthFactors = append(strengthFactors, StrengthHighPotental)
	}

	confidence := computeConfidence(pattern.CompletionRate, streak.Current, recentDone, len(recent))

	var predictedEnd *time.Time
	if confidence < predictionThreshold {
		// Lower completion rates predict a nearer break.
		days := int(float64(predictionHorizonDays) * pattern.CompletionRate)
		end := schema.DayOf(now).AddDate(0, 0, days)
		predictedEnd = &end
	}

	key := recommendationKey(confidence)
	return schema.StreakPrediction{
		HabitID:            habitID,
		CurrentStreak:      streak.Current,
		PredictedStreakEnd: predictedEnd,
		RiskFactors:        riskFactors,
		StrengthFactors:    strengthFactors,
		ConfidenceScore:    confidence,
		Recommendation:     recommendationText(key, riskFactors),
		RecommendationKey:  key,
	}
}

// computeConfidence averages three signals: the long-run completion rate
// (boosted 1.2x, capped), a per-day streak bonus, and the recent two-week
// performance clamped into [0.1, 0.9]. The result is clamped to the
// documented [0.1, 0.95] band.
func computeConfidence(completionRate float64, currentStreak, recentDone, recentTotal int) float64 {
	rateSignal := completionRate * 1.2
	if rateSignal > confidenceCeil {
		rateSignal = confidenceCeil
	}

	streakBonus := float64(currentStreak) * 0.05
	if streakBonus > 0.3 {
		streakBonus = 0.3
	}

	var recentPerformance float64
	if recentTotal > 0 {
		recentPerformance = float64(recentDone) / float64(recentTotal)
	}
	recentPerformance = schema.ClampRange(recentPerformance, 0.1, 0.9)

	confidence := (rateSignal + streakBonus + recentPerformance) / 3.0
	return schema.ClampRange(confidence, confidenceFloor, confidenceCeil)
}

// recommendationKey picks the decision-table row for a confidence tier.
func recommendationKey(confidence float64) schema.MessageKey {
	switch {
	case confidence > 0.8:
		return schema.RecReinforceRoutine
	case confidence > 0.6:
		return schema.RecAddressTopRisk
	default:
		return schema.RecMinimalAction
	}
}

// fallbackPrediction is returned when prediction fails internally: zeroed
// counters, floor confidence, and a generic insufficient-data message.
func fallbackPrediction(habitID string) schema.StreakPrediction {
	return schema.StreakPrediction{
		HabitID:           habitID,
		CurrentStreak:     0,
		RiskFactors:       []string{},
		StrengthFactors:   []string{},
		ConfidenceScore:   confidenceFloor,
		Recommendation:    recommendationText(schema.RecInsufficientData, nil),
		RecommendationKey: schema.RecInsufficientData,
	}
}

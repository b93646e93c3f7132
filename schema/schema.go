// Package schema has the value objects, typed constants and shared helpers
// for all parts of habitsense. Every struct here is a plain value owned by
// the caller; the analytic core never retains or mutates them.
package schema

import "time"

// CompletionRecord is a single day of habit history as supplied by the store.
// Records are ordered by day ascending and append-only from the core's
// perspective. CompletedAt is optional: the journaling apps that feed this
// engine historically recorded only a calendar date, so hour-level analysis
// falls back to a documented default when it is nil.
type CompletionRecord struct {
	Day         time.Time  `json:"day"`
	Completed   bool       `json:"completed"`
	Planned     bool       `json:"planned"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// StreakState holds the derived streak counters for a habit. It is computed
// by the store from the completion history and passed into the core.
type StreakState struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// HabitTimingPattern describes when and how reliably a habit gets done.
// All rates are in [0,1]; OptimalHours holds the top 3 completion hours,
// most frequent first.
type HabitTimingPattern struct {
	HabitID         string                   `json:"habit_id"`
	OptimalHours    []int                    `json:"optimal_hours"`
	CompletionRate  float64                  `json:"completion_rate"`
	WeekdayPattern  map[time.Weekday]float64 `json:"weekday_pattern"`
	MoodCorrelation map[Mood]float64         `json:"mood_correlation"`
	StreakPotential float64                  `json:"streak_potential"`
	DifficultDays   []time.Weekday           `json:"difficult_days"`
	EnergyPattern   EnergyPattern            `json:"energy_pattern"`
}

// StreakPrediction is the risk assessment for an ongoing streak.
// PredictedStreakEnd is set only when ConfidenceScore < 0.6; the confidence
// is always clamped to [0.1, 0.95]. RecommendationKey identifies the row of
// the recommendation decision table that fired, so tests can assert on the
// tier rather than the copy text.
type StreakPrediction struct {
	HabitID            string     `json:"habit_id"`
	CurrentStreak      int        `json:"current_streak"`
	PredictedStreakEnd *time.Time `json:"predicted_streak_end,omitempty"`
	RiskFactors        []string   `json:"risk_factors"`
	StrengthFactors    []string   `json:"strength_factors"`
	ConfidenceScore    float64    `json:"confidence_score"`
	Recommendation     string     `json:"recommendation"`
	RecommendationKey  MessageKey `json:"recommendation_key"`
}

// HabitCorrelationInsight is a statistically notable relationship between two
// habits. Only pairs with |Correlation| > 0.3 are ever emitted.
type HabitCorrelationInsight struct {
	HabitA      string          `json:"habit_a"`
	HabitB      string          `json:"habit_b"`
	Correlation float64         `json:"correlation"`
	Type        CorrelationType `json:"type"`
	Insight     string          `json:"insight"`
	Confidence  float64         `json:"confidence"`
}

// EnhancedInsight is one renderable insight card. Insights are generated
// fresh per synthesis call and never persisted.
type EnhancedInsight struct {
	ID              string      `json:"id"`
	Type            InsightType `json:"type"`
	Icon            string      `json:"icon"`
	Title           string      `json:"title"`
	Message         string      `json:"message"`
	Priority        Priority    `json:"priority"`
	Actionable      bool        `json:"actionable"`
	SuggestedAction string      `json:"suggested_action,omitempty"`
	Confidence      float64     `json:"confidence"`
}

// SmartInsights is the top-level synthesis result for a single habit: at most
// three primary insights plus a tip and a motivational message. TipKey and
// MessageKey expose the decision-table rows that selected the copy.
type SmartInsights struct {
	HabitID             string            `json:"habit_id"`
	PrimaryInsights     []EnhancedInsight `json:"primary_insights"`
	OptimalTime         string            `json:"optimal_time,omitempty"`
	StreakRisk          *StreakPrediction `json:"streak_risk,omitempty"`
	PersonalizedTip     string            `json:"personalized_tip,omitempty"`
	TipKey              MessageKey        `json:"tip_key,omitempty"`
	MotivationalMessage string            `json:"motivational_message,omitempty"`
	MessageKey          MessageKey        `json:"message_key,omitempty"`
}

// HabitInfo is the synthesizer's view of the habit being analyzed.
type HabitInfo struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Completed    bool       `json:"completed"`
	Streak       int        `json:"streak"`
	Difficulty   Difficulty `json:"difficulty"`
	TimeType     TimeType   `json:"time_type,omitempty"`
	SpecificTime string     `json:"specific_time,omitempty"`
}

// UserContext is the day-level context shared by all habits of a user.
type UserContext struct {
	CurrentHour     int          `json:"current_hour"`
	DayOfWeek       time.Weekday `json:"day_of_week"`
	CompletionRate  float64      `json:"completion_rate"`
	TotalHabits     int          `json:"total_habits"`
	CompletedHabits int          `json:"completed_habits"`
}

// SiblingHabit is the minimal view of another habit of the same user, used
// for habit-stacking suggestions.
type SiblingHabit struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RankedHabit is both the input and the output of next-action ranking.
// Ranking never mutates these; the composite score is ephemeral and stripped
// before results are returned.
type RankedHabit struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Completed    bool           `json:"completed"`
	Streak       int            `json:"streak"`
	TimeType     TimeType       `json:"time_type,omitempty"`
	SpecificTime string         `json:"specific_time,omitempty"`
	DaysOfWeek   []time.Weekday `json:"days_of_week,omitempty"`
}

// Habit is the store's record of a habit definition.
type Habit struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Difficulty   Difficulty     `json:"difficulty"`
	TimeType     TimeType       `json:"time_type"`
	SpecificTime string         `json:"specific_time,omitempty"`
	DaysOfWeek   []time.Weekday `json:"days_of_week,omitempty"`
	Archived     bool           `json:"archived"`
}

// HabitDashboard pairs a habit's insights with its current state for the
// fan-out result.
type HabitDashboard struct {
	Habit    Habit         `json:"habit"`
	Streak   StreakState   `json:"streak"`
	Insights SmartInsights `json:"insights"`
}

/// DashboardResult is the output of a full per-habit fan-out: one insight
// bundle per habit plus the ranked next actions across all of them.
type DashboardResult struct {
	Habits      []HabitDashboard `json:"habits"`
	NextActions []RankedHabit    `json:"next_actions"`
	GeneratedAt time.Time        `json:"generated_at"`
}

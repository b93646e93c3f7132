package schema

import "time"

// Custom string types for type safety.
type (
	// EnergyPattern is the coarse time-of-day classification for a habit.
	EnergyPattern string

	// InsightType represents the category of an EnhancedInsight.
	InsightType string

	// Priority represents the display priority of an insight.
	Priority string

	// CorrelationType represents the sign of a habit correlation.
	CorrelationType string

	// TimeType represents a habit's scheduled time slot.
	TimeType string

	// Difficulty represents the self-reported difficulty of a habit.
	Difficulty string

	// Mood is a coarse mood label attached to completions.
	Mood string

	// MessageKey identifies a row in one of the copy decision tables.
	MessageKey string

	// OutputMode represents the format of CLI output.
	OutputMode string

	// DatabaseBackend represents the database backend for the habit store.
	DatabaseBackend string
)

// All energy patterns supported.
const (
	MorningEnergy   EnergyPattern = "morning"
	AfternoonEnergy EnergyPattern = "afternoon"
	EveningEnergy   EnergyPattern = "evening"
	FlexibleEnergy  EnergyPattern = "flexible" // default when no hour data exists
)

// All insight types supported.
const (
	TimingInsight         InsightType = "timing"
	StreakInsight         InsightType = "streak"
	MotivationInsight     InsightType = "motivation"
	PatternInsight        InsightType = "pattern"
	RecommendationInsight InsightType = "recommendation"
)

// All insight priorities supported.
const (
	LowPriority    Priority = "low"
	MediumPriority Priority = "medium"
	HighPriority   Priority = "high"
)

// All correlation types supported.
const (
	PositiveCorrelation CorrelationType = "positive"
	NegativeCorrelation CorrelationType = "negative"
	NeutralCorrelation  CorrelationType = "neutral"
)

// All habit time slots supported.
const (
	MorningTime   TimeType = "morning"
	AfternoonTime TimeType = "afternoon"
	EveningTime   TimeType = "evening"
	LunchTime     TimeType = "lunch"
	SpecificTime  TimeType = "specific"
	AnytimeTime   TimeType = "anytime" // default
)

// All difficulties supported.
const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

// All moods tracked by the journal side of the product.
const (
	GreatMood    Mood = "great"
	GoodMood     Mood = "good"
	OkayMood     Mood = "okay"
	LowMood      Mood = "low"
	StressedMood Mood = "stressed"
)

// Recommendation keys for StreakPrediction, by confidence tier.
const (
	RecReinforceRoutine MessageKey = "rec_reinforce_routine" // confidence > 0.8
	RecAddressTopRisk   MessageKey = "rec_address_top_risk"  // confidence > 0.6
	RecMinimalAction    MessageKey = "rec_minimal_action"    // everything else
	RecInsufficientData MessageKey = "rec_insufficient_data" // fallback prediction
)

// Personalized tip keys, in decision-table order.
const (
	TipAnchorRoutine  MessageKey = "tip_anchor_routine"  // high streak risk
	TipDifficultDay   MessageKey = "tip_difficult_day"   // today is a difficult day
	TipStartSmall     MessageKey = "tip_start_small"     // low completion rate
	TipMorningEnergy  MessageKey = "tip_morning_energy"  // morning hours
	TipSteadyProgress MessageKey = "tip_steady_progress" // default
)

// Motivational message keys, in decision-table order.
const (
	MsgPerfectDay  MessageKey = "msg_perfect_day"  // completion rate == 1.0
	MsgAlmostThere MessageKey = "msg_almost_there" // completion rate >= 0.8
	MsgGoodPace    MessageKey = "msg_good_pace"    // completion rate >= 0.5
	MsgFreshStart  MessageKey = "msg_fresh_start"  // morning, low completion
	MsgEveningWind MessageKey = "msg_evening_wind" // evening, low completion
	MsgKeepGoing   MessageKey = "msg_keep_going"   // default
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
}

// ValidBackends lists all valid store backends.
var ValidBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidTimeTypes lists all valid habit time slots.
var ValidTimeTypes = map[TimeType]struct{}{
	MorningTime:   {},
	AfternoonTime: {},
	EveningTime:   {},
	LunchTime:     {},
	SpecificTime:  {},
	AnytimeTime:   {},
}

// ValidDifficulties lists all valid difficulties.
var ValidDifficulties = map[Difficulty]struct{}{
	EasyDifficulty:   {},
	MediumDifficulty: {},
	HardDifficulty:   {},
}

// DefaultOptimalHours seeds cold-start behavior when a habit has no history
// or its records carry no timestamps: breakfast, post-lunch and evening.
var DefaultOptimalHours = []int{9, 14, 19}

// DefaultCompletionRate is the cold-start completion rate.
const DefaultCompletionRate = 0.5

// DefaultWeekdayPattern is the cold-start weekday map: weekdays assumed
// mildly more reliable than weekends.
func DefaultWeekdayPattern() map[time.Weekday]float64 {
	return map[time.Weekday]float64{
		time.Sunday:    0.4,
		time.Monday:    0.6,
		time.Tuesday:   0.6,
		time.Wednesday: 0.6,
		time.Thursday:  0.6,
		time.Friday:    0.5,
		time.Saturday:  0.4,
	}
}

// DefaultMoodCorrelation is the placeholder mood table. The journal side of
// the product does not yet tag completions with moods, so these rates are a
// fixed prior rather than a measurement; swap in a real table via
// core.SetMoodTableProvider once mood-tagged data is wired through.
func DefaultMoodCorrelation() map[Mood]float64 {
	return map[Mood]float64{
		GreatMood:    0.85,
		GoodMood:     0.75,
		OkayMood:     0.55,
		LowMood:      0.35,
		StressedMood: 0.30,
	}
}

// PriorityRank maps a Priority to a sortable integer (higher is more urgent).
func PriorityRank(p Priority) int {
	switch p {
	case HighPriority:
		return 2
	case MediumPriority:
		return 1
	default:
		return 0
	}
}

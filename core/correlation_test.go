package core

import (
	"math"
	"testing"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seriesHistory expands a 0/1 pattern into daily records starting at start.
func seriesHistory(start time.Time, bits []int) []schema.CompletionRecord {
	records := make([]schema.CompletionRecord, len(bits))
	for i, b := range bits {
		records[i] = schema.CompletionRecord{
			Day:       start.AddDate(0, 0, i),
			Completed: b == 1,
			Planned:   true,
		}
	}
	return records
}

// TestAnalyzeCorrelationsIdenticalSequences: two habits completing on the
// same days correlate at r = 1 and are surfaced as positive.
func TestAnalyzeCorrelationsIdenticalSequences(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	bits := []int{1, 1, 0, 1, 0, 0, 1, 1, 0, 1, 1, 0, 1, 1}
	histories := map[string][]schema.CompletionRecord{
		"meditate": seriesHistory(start, bits),
		"journal":  seriesHistory(start, bits),
	}

	insights := AnalyzeCorrelations(histories)

	require.Len(t, insights, 1)
	assert.InDelta(t, 1.0, insights[0].Correlation, 0.001)
	assert.Equal(t, schema.PositiveCorrelation, insights[0].Type)
	assert.InDelta(t, 0.95, insights[0].Confidence, 0.001)
	assert.NotEmpty(t, insights[0].Insight)
}

// TestAnalyzeCorrelationsInverseSequences: perfectly opposed habits come
// back as a negative correlation.
func TestAnalyzeCorrelationsInverseSequences(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	histories := map[string][]schema.CompletionRecord{
		"run":  seriesHistory(start, []int{1, 0, 1, 0, 1, 0, 1, 0}),
		"rest": seriesHistory(start, []int{0, 1, 0, 1, 0, 1, 0, 1}),
	}

	insights := AnalyzeCorrelations(histories)

	require.Len(t, insights, 1)
	assert.InDelta(t, -1.0, insights[0].Correlation, 0.001)
	assert.Equal(t, schema.NegativeCorrelation, insights[0].Type)
}

// TestAnalyzeCorrelationsSinglePairPerOrdering: (A,B) and (B,A) are the
// same pair and must not be double emitted; the emitted pair uses sorted
// habit IDs.
func TestAnalyzeCorrelationsSinglePairPerOrdering(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	bits := []int{1, 0, 1, 1, 0, 1, 0, 1}
	histories := map[string][]schema.CompletionRecord{
		"b-habit": seriesHistory(start, bits),
		"a-habit": seriesHistory(start, bits),
		"c-habit": seriesHistory(start, bits),
	}

	insights := AnalyzeCorrelations(histories)

	require.Len(t, insights, 3) // 3 unordered pairs from 3 habits
	seen := map[string]bool{}
	for _, in := range insights {
		assert.Less(t, in.HabitA, in.HabitB)
		key := in.HabitA + "|" + in.HabitB
		assert.False(t, seen[key], "pair %s emitted twice", key)
		seen[key] = true
	}
}

// TestAnalyzeCorrelationsConstantSeries: zero-variance series yield r = 0
// and are never surfaced.
func TestAnalyzeCorrelationsConstantSeries(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	histories := map[string][]schema.CompletionRecord{
		"always": seriesHistory(start, []int{1, 1, 1, 1, 1, 1}),
		"varied": seriesHistory(start, []int{1, 0, 1, 0, 1, 0}),
	}

	insights := AnalyzeCorrelations(histories)
	assert.Empty(t, insights)
	assert.NotNil(t, insights)
}

// TestAnalyzeCorrelationsSortedByStrength verifies |r| descending order.
func TestAnalyzeCorrelationsSortedByStrength(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	histories := map[string][]schema.CompletionRecord{
		"a": seriesHistory(start, []int{1, 1, 0, 1, 0, 0, 1, 1, 0, 1}),
		"b": seriesHistory(start, []int{1, 1, 0, 1, 0, 0, 1, 1, 0, 1}), // identical to a
		"c": seriesHistory(start, []int{1, 1, 0, 1, 0, 1, 1, 0, 0, 1}), // close to a
	}

	insights := AnalyzeCorrelations(histories)

	require.NotEmpty(t, insights)
	for i := 1; i < len(insights); i++ {
		assert.GreaterOrEqual(t,
			math.Abs(insights[i-1].Correlation),
			math.Abs(insights[i].Correlation))
	}
}

// TestAnalyzeCorrelationsByDate joins on calendar days, so offset start
// dates still correlate over the shared window.
func TestAnalyzeCorrelationsByDate(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	bits := []int{1, 1, 0, 1, 0, 0, 1, 1, 0, 1, 1, 0}
	// Habit b starts 4 days later but matches a on every shared day.
	histories := map[string][]schema.CompletionRecord{
		"a": seriesHistory(start, bits),
		"b": seriesHistory(start.AddDate(0, 0, 4), bits[4:]),
	}

	insights := AnalyzeCorrelationsByDate(histories)

	require.Len(t, insights, 1)
	assert.InDelta(t, 1.0, insights[0].Correlation, 0.001)
	assert.Equal(t, schema.PositiveCorrelation, insights[0].Type)
}

// TestAnalyzeCorrelationsByDateNoOverlap: disjoint date ranges produce no
// pairs.
func TestAnalyzeCorrelationsByDateNoOverlap(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	histories := map[string][]schema.CompletionRecord{
		"a": seriesHistory(start, []int{1, 0, 1, 0}),
		"b": seriesHistory(start.AddDate(0, 0, 30), []int{1, 0, 1, 0}),
	}

	insights := AnalyzeCorrelationsByDate(histories)
	assert.Empty(t, insights)
}

// TestPearsonBounds: r stays within [-1, 1] for assorted inputs.
func TestPearsonBounds(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{name: "empty", xs: nil, ys: nil},
		{name: "identical", xs: []float64{1, 0, 1}, ys: []float64{1, 0, 1}},
		{name: "opposed", xs: []float64{1, 0, 1}, ys: []float64{0, 1, 0}},
		{name: "mixed", xs: []float64{1, 1, 0, 0, 1}, ys: []float64{0, 1, 1, 0, 1}},
		{name: "constant x", xs: []float64{1, 1, 1}, ys: []float64{1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := pearson(tt.xs, tt.ys)
			assert.GreaterOrEqual(t, r, -1.0)
			assert.LessOrEqual(t, r, 1.0)
		})
	}
}

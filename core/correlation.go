package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/Zak-aden1/ai-journal-sub003/schema"
)

// Correlation thresholds.
const (
	correlationThreshold     = 0.3  // |r| must exceed this to be worth surfacing
	correlationConfidenceMul = 1.2  // confidence = |r| * this, capped below
	correlationConfidenceCap = 0.95 //
)

// AnalyzeCorrelations computes the pairwise Pearson correlation of completion
// sequences across all unordered habit pairs and returns the notable ones
// sorted by |r| descending. Histories are aligned by list position and
// truncated to the shorter of the pair, so callers should supply same-window
// histories; use AnalyzeCorrelationsByDate when they cannot. Any internal
// fault yields an empty list, never an error.
func AnalyzeCorrelations(histories map[string][]schema.CompletionRecord) (insights []schema.HabitCorrelationInsight) {
	defer func() {
		if r := recover(); r != nil {
			insights = []schema.HabitCorrelationInsight{}
		}
	}()

	ids := sortedIDs(histories)
	insights = []schema.HabitCorrelationInsight{}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			xs := toBinarySeries(histories[ids[i]])
			ys := toBinarySeries(histories[ids[j]])

			// Align by position, truncating to the shorter series.
			n := min(len(xs), len(ys))
			if n == 0 {
				continue
			}

			if insight, ok := pairInsight(ids[i], ids[j], xs[:n], ys[:n]); ok {
				insights = append(insights, insight)
			}
		}
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return math.Abs(insights[i].Correlation) > math.Abs(insights[j].Correlation)
	})
	return insights
}

// AnalyzeCorrelationsByDate joins each pair of histories on their shared
// calendar days before correlating, so habits with different start dates or
// gaps still produce meaningful pairs. Output contract matches
// AnalyzeCorrelations.
func AnalyzeCorrelationsByDate(histories map[string][]schema.CompletionRecord) (insights []schema.HabitCorrelationInsight) {
	defer func() {
		if r := recover(); r != nil {
			insights = []schema.HabitCorrelationInsight{}
		}
	}()

	ids := sortedIDs(histories)
	insights = []schema.HabitCorrelationInsight{}

	byDay := make(map[string]map[int64]bool, len(ids))
	for id, history := range histories {
		m := make(map[int64]bool, len(history))
		for _, rec := range history {
			m[schema.DayOf(rec.Day).Unix()] = rec.Completed
		}
		byDay[id] = m
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := byDay[ids[i]], byDay[ids[j]]

			shared := make([]int64, 0, min(len(a), len(b)))
			for day := range a {
				if _, ok := b[day]; ok {
					shared = append(shared, day)
				}
			}
			if len(shared) == 0 {
				continue
			}
			sort.Slice(shared, func(x, y int) bool { return shared[x] < shared[y] })

			xs := make([]float64, len(shared))
			ys := make([]float64, len(shared))
			for k, day := range shared {
				if a[day] {
					xs[k] = 1
				}
				if b[day] {
					ys[k] = 1
				}
			}

			if insight, ok := pairInsight(ids[i], ids[j], xs, ys); ok {
				insights = append(insights, insight)
			}
		}
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return math.Abs(insights[i].Correlation) > math.Abs(insights[j].Correlation)
	})
	return insights
}

// pairInsight correlates two aligned series and builds the insight when the
// correlation clears the threshold.
func pairInsight(habitA, habitB string, xs, ys []float64) (schema.HabitCorrelationInsight, bool) {
	r := pearson(xs, ys)
	if math.Abs(r) <= correlationThreshold {
		return schema.HabitCorrelationInsight{}, false
	}

	ctype := classifyCorrelation(r)
	confidence := math.Abs(r) * correlationConfidenceMul
	if confidence > correlationConfidenceCap {
		confidence = correlationConfidenceCap
	}

	return schema.HabitCorrelationInsight{
		HabitA:      habitA,
		HabitB:      habitB,
		Correlation: r,
		Type:        ctype,
		Insight:     describeCorrelation(habitA, habitB, r, ctype),
		Confidence:  confidence,
	}, true
}

// pearson computes the Pearson correlation coefficient in computational
// form: r = (nΣxy − ΣxΣy) / sqrt((nΣx²−(Σx)²)(nΣy²−(Σy)²)). Either
// denominator term being zero (a constant series) yields r = 0.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n == 0 {
		return 0
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
		sumY2 += ys[i] * ys[i]
	}

	varX := n*sumX2 - sumX*sumX
	varY := n*sumY2 - sumY*sumY
	if varX == 0 || varY == 0 {
		return 0
	}

	return (n*sumXY - sumX*sumY) / math.Sqrt(varX*varY)
}

// classifyCorrelation maps r to its sign bucket.
func classifyCorrelation(r float64) schema.CorrelationType {
	switch {
	case r > correlationThreshold:
		return schema.PositiveCorrelation
	case r < -correlationThreshold:
		return schema.NegativeCorrelation
	default:
		return schema.NeutralCorrelation
	}
}

// describeCorrelation builds the human-readable insight line.
func describeCorrelation(habitA, habitB string, r float64, ctype schema.CorrelationType) string {
	strength := "somewhat"
	if math.Abs(r) > 0.7 {
		strength = "strongly"
	} else if math.Abs(r) > 0.5 {
		strength = "moderately"
	}

	if ctype == schema.NegativeCorrelation {
		return fmt.Sprintf("%s and %s are %s negatively linked: completing one tends to crowd out the other (r=%.2f)", habitA, habitB, strength, r)
	}
	return fmt.Sprintf("%s and %s are %s linked: they tend to succeed on the same days (r=%.2f)", habitA, habitB, strength, r)
}

// toBinarySeries converts a history to a 0/1 completed sequence.
func toBinarySeries(history []schema.CompletionRecord) []float64 {
	series := make([]float64, len(history))
	for i, rec := range history {
		if rec.Completed {
			series[i] = 1
		}
	}
	return series
}

// sortedIDs returns map keys in a stable order so pair iteration is
// deterministic.
func sortedIDs(histories map[string][]schema.CompletionRecord) []string {
	ids := make([]string, 0, len(histories))
	for id := range histories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

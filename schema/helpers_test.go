package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestParseWeekdays tests schedule day-code parsing.
func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []time.Weekday
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "simple list",
			input:    "mon,wed,fri",
			expected: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:     "long names and mixed case",
			input:    "Sunday, TUESDAY",
			expected: []time.Weekday{time.Sunday, time.Tuesday},
		},
		{
			name:     "unknown codes skipped",
			input:    "mon,xyz,fri",
			expected: []time.Weekday{time.Monday, time.Friday},
		},
		{
			name:     "duplicates collapsed and sorted",
			input:    "fri,mon,fri",
			expected: []time.Weekday{time.Monday, time.Friday},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseWeekdays(tt.input))
		})
	}
}

// TestFormatWeekdaysRoundTrip ensures parse and format agree.
func TestFormatWeekdaysRoundTrip(t *testing.T) {
	days := ParseWeekdays("sun,mon,sat")
	assert.Equal(t, "sun,mon,sat", FormatWeekdays(days))
}

// TestParseClockHour tests "HH:MM" parsing and its malformed-input behavior.
func TestParseClockHour(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		hour   int
		wantOK bool
	}{
		{name: "valid morning", input: "07:30", hour: 7, wantOK: true},
		{name: "valid evening", input: "19:00", hour: 19, wantOK: true},
		{name: "missing colon", input: "1930", wantOK: false},
		{name: "hour out of range", input: "25:00", wantOK: false},
		{name: "non-numeric", input: "aa:bb", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, ok := ParseClockHour(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.hour, hour)
			}
		})
	}
}

// TestFormatHourRange tests optimal-time rendering.
func TestFormatHourRange(t *testing.T) {
	assert.Equal(t, "", FormatHourRange(nil))
	assert.Equal(t, "9:00", FormatHourRange([]int{9}))
	assert.Equal(t, "9:00-19:00", FormatHourRange([]int{14, 9, 19}))
}

// TestClampRange tests boundary clamping used by confidence scores.
func TestClampRange(t *testing.T) {
	assert.Equal(t, 0.1, ClampRange(0.05, 0.1, 0.95))
	assert.Equal(t, 0.95, ClampRange(1.2, 0.1, 0.95))
	assert.Equal(t, 0.5, ClampRange(0.5, 0.1, 0.95))
}

// TestDefaultsAreWellFormed verifies the documented cold-start values.
func TestDefaultsAreWellFormed(t *testing.T) {
	assert.Equal(t, []int{9, 14, 19}, DefaultOptimalHours)

	pattern := DefaultWeekdayPattern()
	assert.Len(t, pattern, 7)
	for day, rate := range pattern {
		assert.GreaterOrEqual(t, rate, 0.0, "day %s", day)
		assert.LessOrEqual(t, rate, 1.0, "day %s", day)
	}

	moods := DefaultMoodCorrelation()
	assert.Len(t, moods, 5)
	for mood, rate := range moods {
		assert.GreaterOrEqual(t, rate, 0.0, "mood %s", mood)
		assert.LessOrEqual(t, rate, 1.0, "mood %s", mood)
	}
}

// TestDayOf verifies calendar-date truncation.
func TestDayOf(t *testing.T) {
	ts := time.Date(2026, 3, 14, 22, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), DayOf(ts))
}

package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Clamp01 clamps v to the [0,1] range.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ClampRange clamps v to the [lo,hi] range.
func ClampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// weekdayCodes maps the short day codes used in habit schedules to weekdays.
var weekdayCodes = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseWeekdays parses a comma-separated list of short day codes
// (e.g. "mon,wed,fri") into weekdays, sorted Sunday-first. Unknown codes are
// skipped rather than rejected; an empty input yields nil (no restriction).
func ParseWeekdays(s string) []time.Weekday {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var days []time.Weekday
	seen := make(map[time.Weekday]bool)
	for part := range strings.SplitSeq(s, ",") {
		code := strings.ToLower(strings.TrimSpace(part))
		if len(code) > 3 {
			code = code[:3]
		}
		if d, ok := weekdayCodes[code]; ok && !seen[d] {
			days = append(days, d)
			seen[d] = true
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// FormatWeekdays renders weekdays back into the short-code form.
func FormatWeekdays(days []time.Weekday) string {
	codes := make([]string, 0, len(days))
	for _, d := range days {
		codes = append(codes, strings.ToLower(d.String()[:3]))
	}
	return strings.Join(codes, ",")
}

/// ParseClockHour extracts the hour from an "HH:MM" string. The second return
// value is false when the string is malformed; callers treat that as a
// neutral field rather than an error.
func ParseClockHour(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return 0, false
	}
	return hour, true
}

// FormatHourRange renders optimal hours for display: a single hour as
// "H:00", multiple hours as "min:00-max:00".
func FormatHourRange(hours []int) string {
	if len(hours) == 0 {
		return ""
	}
	lo, hi := hours[0], hours[0]
	for _, h := range hours[1:] {
		if h < lo {
			lo = h
		}
		if h > hi {
			hi = h
		}
	}
	if lo == hi {
		return fmt.Sprintf("%d:00", lo)
	}
	return fmt.Sprintf("%d:00-%d:00", lo, hi)
}

// DayOf truncates t to its calendar date in UTC. Completion records are
// keyed by this value.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package contract

import (
	"fmt"
	"os"

	"github.com/Zak-aden1/ai-journal-sub003/schema"
	"github.com/fatih/color"
)

// Risk label constants.
const (
	HighRiskValue   = "High"   // streak likely to break soon
	MediumRiskValue = "Medium" // streak needs attention
	LowRiskValue    = "Low"    // streak is stable
)

// Color variables for console output.
var (
	HighRiskColor   = color.New(color.FgRed, color.Bold) // strong warning
	MediumRiskColor = color.New(color.FgYellow)          // standard caution, not bold
	LowRiskColor    = color.New(color.FgCyan)            // informational signal

	HighPriorityColor   = color.New(color.FgMagenta, color.Bold)
	MediumPriorityColor = color.New(color.FgYellow)
	LowPriorityColor    = color.New(color.FgCyan)
)

// GetPlainRiskLabel returns a plain text label for a streak confidence
// score. Low confidence means high risk. This is the core logic used for
// CSV, JSON, and table printing.
func GetPlainRiskLabel(confidence float64) string {
	switch {
	case confidence < 0.5:
		return HighRiskValue
	case confidence < 0.7:
		return MediumRiskValue
	default:
		return LowRiskValue
	}
}

// GetColorRiskLabel returns a colored risk label for console output.
// It uses GetPlainRiskLabel to determine the string, then applies the color.
func GetColorRiskLabel(confidence float64) string {
	text := GetPlainRiskLabel(confidence)

	switch text {
	case HighRiskValue:
		return HighRiskColor.Sprint(text)
	case MediumRiskValue:
		return MediumRiskColor.Sprint(text)
	default: // "Low"
		return LowRiskColor.Sprint(text)
	}
}

// GetColorPriorityLabel returns a colored priority label for insight tables.
func GetColorPriorityLabel(p schema.Priority) string {
	switch p {
	case schema.HighPriority:
		return HighPriorityColor.Sprint(string(p))
	case schema.MediumPriority:
		return MediumPriorityColor.Sprint(string(p))
	default:
		return LowPriorityColor.Sprint(string(p))
	}
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
		return
	}
	fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg)
}

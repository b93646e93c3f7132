package cmd

import (
	"fmt"
	"time"

	"github.com/Zak-aden1/ai-journal-sub003/internal/contract"
	"github.com/Zak-aden1/ai-journal-sub003/internal/habitstore"
	"github.com/Zak-aden1/ai-journal-sub003/internal/outwriter"
	"github.com/Zak-aden1/ai-journal-sub003/schema"
	"github.com/spf13/cobra"
)

// habitCmd groups habit definition and logging commands.
var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habit definitions and daily logs",
	Long: `Manage the habits the analyzers work on.

Subcommands:
  add  - Create or replace a habit definition
  log  - Record one day of history for a habit
  list - Show all habit definitions

Examples:
  # Define a morning habit scheduled Mon/Wed/Fri
  habitsense habit add run --title "Morning run" --difficulty hard --time-type morning --days mon,wed,fri

  # Mark it done for today
  habitsense habit log run

  # Backfill a miss
  habitsense habit log run --date 2026-03-14 --missed`,
}

// habitAddCmd creates or replaces a habit definition.
var habitAddCmd = &cobra.Command{
	Use:   "add <habit-id>",
	Short: "Create or replace a habit definition",
	Long: `Create a habit definition, or replace it if the ID already exists.

The ID is the stable key used by every other command; pick something short
and memorable. Scheduling is optional: a habit with no --days is considered
daily, and a habit with no --time-type is 'anytime'.

Examples:
  habitsense habit add meditate --title "Meditate" --difficulty easy --time-type morning
  habitsense habit add standup --title "Stretch" --time-type specific --at-time 12:30`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		title, _ := cmd.Flags().GetString("title")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		timeType, _ := cmd.Flags().GetString("time-type")
		atTime, _ := cmd.Flags().GetString("at-time")
		days, _ := cmd.Flags().GetString("days")

		habit := schema.Habit{
			ID:           args[0],
			Title:        title,
			Difficulty:   schema.Difficulty(difficulty),
			TimeType:     schema.TimeType(timeType),
			SpecificTime: atTime,
			DaysOfWeek:   schema.ParseWeekdays(days),
		}
		if habit.Title == "" {
			habit.Title = habit.ID
		}
		if err := validateHabit(habit); err != nil {
			contract.LogFatal("Invalid habit definition", err)
		}
		if err := habitstore.GetStore().UpsertHabit(habit); err != nil {
			contract.LogFatal("Cannot save habit", err)
		}
		fmt.Printf("Saved habit %q.\n", habit.ID)
	},
}

// habitLogCmd records one day of history.
var habitLogCmd = &cobra.Command{
	Use:   "log <habit-id>",
	Short: "Record one day of history for a habit",
	Long: `Record a completion (or a miss, with --missed) for a habit.

The record is keyed by calendar day, so logging the same day twice replaces
the earlier record. --date backfills past days; without it the reference
time's day is used, and completions get the current clock time as their
completion timestamp.

Examples:
  # Done today
  habitsense habit log meditate

  # Missed it on the 14th
  habitsense habit log meditate --date 2026-03-14 --missed`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		habitID := args[0]
		dateStr, _ := cmd.Flags().GetString("date")
		missed, _ := cmd.Flags().GetBool("missed")

		if _, err := habitstore.GetStore().GetHabit(habitID); err != nil {
			contract.LogFatal("Cannot log completion", err)
		}

		day := schema.DayOf(cfg.Now)
		rec := schema.CompletionRecord{Completed: !missed, Planned: true}
		if dateStr != "" {
			parsed, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				contract.LogFatal("Invalid --date value, expected YYYY-MM-DD", err)
			}
			day = schema.DayOf(parsed)
		} else if !missed {
			// Only same-day completions get a wall-clock timestamp;
			// backfilled days have no trustworthy hour.
			at := cfg.Now
			rec.CompletedAt = &at
		}
		rec.Day = day

		if err := habitstore.GetStore().LogCompletion(habitID, rec); err != nil {
			contract.LogFatal("Cannot log completion", err)
		}
		state := "done"
		if missed {
			state = "missed"
		}
		fmt.Printf("Logged %q as %s for %s.\n", habitID, state, day.Format("2006-01-02"))
	},
}

// habitListCmd shows all habit definitions.
var habitListCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show all habit definitions",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		habits, err := habitstore.GetStore().ListHabits()
		if err != nil {
			contract.LogFatal("Cannot list habits", err)
		}
		if err := outwriter.WriteHabitList(habits, cfg); err != nil {
			contract.LogFatal("Cannot write habit list", err)
		}
	},
}

// validateHabit rejects definitions the analyzers cannot interpret.
func validateHabit(h schema.Habit) error {
	if h.Difficulty == "" {
		return fmt.Errorf("difficulty is required (easy, medium, hard)")
	}
	if _, ok := schema.ValidDifficulties[h.Difficulty]; !ok {
		return fmt.Errorf("invalid difficulty %q. must be easy, medium, hard", h.Difficulty)
	}
	if _, ok := schema.ValidTimeTypes[h.TimeType]; !ok {
		return fmt.Errorf("invalid time type %q. must be morning, afternoon, evening, lunch, specific, anytime", h.TimeType)
	}
	if h.TimeType == schema.SpecificTime {
		if _, ok := schema.ParseClockHour(h.SpecificTime); !ok {
			return fmt.Errorf("--at-time must be HH:MM when --time-type is specific (got %q)", h.SpecificTime)
		}
	}
	return nil
}

func init() {
	habitAddCmd.Flags().String("title", "", "Display title (defaults to the habit ID)")
	habitAddCmd.Flags().String("difficulty", string(schema.MediumDifficulty), "Difficulty: easy, medium, hard")
	habitAddCmd.Flags().String("time-type", string(schema.AnytimeTime), "Time slot: morning, afternoon, evening, lunch, specific, anytime")
	habitAddCmd.Flags().String("at-time", "", "Clock time (HH:MM) when --time-type is specific")
	habitAddCmd.Flags().String("days", "", "Comma-separated scheduled weekdays (e.g. mon,wed,fri); empty means daily")

	habitLogCmd.Flags().String("date", "", "Day to log (YYYY-MM-DD); defaults to today")
	habitLogCmd.Flags().Bool("missed", false, "Record the day as missed instead of done")
}

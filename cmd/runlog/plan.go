// ABOUTME: CLI commands for viewing and setting weekly time goals.
// ABOUTME: Week navigation via --week offsets and --date jumps.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/runlog/internal/dateweek"
	"github.com/harperreed/runlog/internal/registry"
	"github.com/harperreed/runlog/internal/summary"
	"github.com/spf13/cobra"
)

var (
	planWeek int
	planDate string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show or edit the weekly plan",
	Long: `Show the Monday-to-Sunday plan grid for a week.

Weeks always start on Monday. With no flags the current week is shown.
An unparseable --date is silently ignored and the current week is kept.

EXAMPLES:

  runlog plan                      # This week
  runlog plan --week -1            # Last week
  runlog plan --week 2             # Two weeks ahead
  runlog plan --date 2024-03-10    # Week containing March 10
  runlog plan set 2024-03-11 45    # Plan 45 minutes for a day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		base := time.Now()
		if planDate != "" {
			if jumped, err := dateweek.ParseDay(planDate); err == nil {
				base = jumped
			}
		}
		base = dateweek.ShiftWeek(base, planWeek)

		w := dateweek.WeekWindow(base)
		today := dateweek.DayString(time.Now())

		fmt.Printf("%s  (%s)\n\n", color.New(color.Bold).Sprint(w.RangeLabel()), dateweek.WeekOfMonthLabel(base))

		for _, day := range w {
			t, _ := dateweek.ParseDay(day)
			marker := "  "
			if day == today {
				marker = color.CyanString("> ")
			}

			minutes := plans.PlannedFor(day)
			if minutes > 0 {
				fmt.Printf("%s%s %s  %3d min\n", marker, t.Format("Mon"), day, minutes)
			} else {
				fmt.Printf("%s%s %s    -\n", marker, t.Format("Mon"), day)
			}
		}

		progress := summary.WeeklyProgress(w, plans, logs)
		fmt.Printf("\nTotal planned: %d min   actual: %d min\n", progress.PlannedMinutes, progress.ActualMinutes)

		return nil
	},
}

var planSetCmd = &cobra.Command{
	Use:   "set <day> <minutes>",
	Short: "Set planned minutes for a day",
	Long: `Set the planned training minutes for a calendar day. Setting a day
again overwrites the previous value; zero clears it for display purposes.

Non-numeric or negative minutes coerce to 0.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := args[0]
		if _, err := dateweek.ParseDay(day); err != nil {
			return fmt.Errorf("invalid day: %s (use YYYY-MM-DD)", day)
		}

		minutes := registry.NonNegativeInt(args[1])
		if err := plans.Set(day, minutes); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		color.Green("✓ Planned %d min for %s", minutes, day)
		w := dateweek.WeekWindow(mustParseDay(day))
		fmt.Printf("  week total: %d min\n", plans.WeeklyTotal(w))

		return nil
	},
}

// mustParseDay is only called after the day-string has been validated.
func mustParseDay(day string) time.Time {
	t, _ := dateweek.ParseDay(day)
	return t
}

func init() {
	planCmd.Flags().IntVarP(&planWeek, "week", "w", 0, "week offset from the current week")
	planCmd.Flags().StringVar(&planDate, "date", "", "jump to the week containing this date")
	planCmd.AddCommand(planSetCmd)
	rootCmd.AddCommand(planCmd)
}

// ABOUTME: CLI command for listing logged runs.
// ABOUTME: Shows week-of-month labels and per-run metrics, newest first.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/runlog/internal/dateweek"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List logged runs",
	Long: `List logged runs, newest date first.

OUTPUT FORMAT:

  Each line shows: ID  WEEK  DATE  DISTANCE  PACE  DURATION  (EXTRAS)

  The ID is the number you pass to 'runlog delete'.

EXAMPLES:

  runlog list            # Show last 20 runs
  runlog list -n 50      # Show last 50 runs
  runlog list -n 0       # Show everything`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := logs.Entries()
		if listLimit > 0 && len(entries) > listLimit {
			entries = entries[:listLimit]
		}

		if len(entries) == 0 {
			fmt.Println("No runs logged yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			day, _ := dateweek.ParseDay(e.Date)
			extras := extrasFor(e.HeartRateBpm, e.BodyBatteryDrain, e.RPE)

			fmt.Printf("%s %s %s %6.2f km  %s/km  %s%s\n",
				faint.Sprintf("%d", e.ID),
				padRight(dateweek.WeekOfMonthLabel(day), 8),
				e.Date,
				e.DistanceKm,
				e.Pace,
				e.FormatDuration(),
				extras)

			if e.PlanText != "" {
				fmt.Printf("    plan: %s\n", faint.Sprint(e.PlanText))
			}
			if e.AnalysisText != "" {
				fmt.Printf("    see:  %s\n", faint.Sprint(e.AnalysisText))
			}
		}

		return nil
	},
}

func extrasFor(hr, battery, rpe int) string {
	var parts []string
	if hr > 0 {
		parts = append(parts, fmt.Sprintf("%d bpm", hr))
	}
	if battery > 0 {
		parts = append(parts, fmt.Sprintf("battery -%d", battery))
	}
	parts = append(parts, fmt.Sprintf("RPE %d", rpe))
	return "  (" + strings.Join(parts, ", ") + ")"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results (0 = all)")
	rootCmd.AddCommand(listCmd)
}

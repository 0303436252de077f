// ABOUTME: CLI command for logging a completed run.
// ABOUTME: Passes raw flag values through the registry's coercion boundary.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/runlog/internal/dateweek"
	"github.com/harperreed/runlog/internal/registry"
	"github.com/spf13/cobra"
)

var addInput registry.EntryInput

var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"a", "log"},
	Short:   "Log a completed run",
	Long: `Log a completed run. Pace and total duration are derived from the
distance and time flags at creation; entries are immutable afterwards
(delete and re-add to correct a mistake).

Malformed numeric values coerce to zero rather than erroring.

Examples:
  runlog add --km 10 --minutes 50
  runlog add --km 5.2 --minutes 28 --seconds 30 --hr 152 --rpe 7
  runlog add --date 2024-03-10 --km 21.1 --hours 1 --minutes 45 \
    --plan "long run, easy effort" --analysis "faded after 18k"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addInput.Date == "" {
			addInput.Date = dateweek.DayString(time.Now())
		}

		entry, err := logs.Insert(addInput)
		if err != nil {
			return fmt.Errorf("failed to log run: %w", err)
		}

		color.Green("✓ Logged %.2f km on %s", entry.DistanceKm, entry.Date)
		fmt.Printf("  %s %s/km  %s\n",
			color.New(color.Faint).Sprintf("%d", entry.ID),
			entry.Pace, entry.FormatDuration())

		if planned := plans.PlannedFor(entry.Date); planned > 0 {
			fmt.Printf("  planned for that day: %d min\n", planned)
		}

		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addInput.Date, "date", "", "run date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&addInput.Distance, "km", "", "distance in kilometers")
	addCmd.Flags().StringVar(&addInput.Hours, "hours", "0", "elapsed hours")
	addCmd.Flags().StringVar(&addInput.Minutes, "minutes", "0", "elapsed minutes")
	addCmd.Flags().StringVar(&addInput.Seconds, "seconds", "0", "elapsed seconds")
	addCmd.Flags().StringVar(&addInput.Elevation, "elevation", "", "elevation gain in meters")
	addCmd.Flags().StringVar(&addInput.HeartRate, "hr", "", "average heart rate (bpm)")
	addCmd.Flags().StringVar(&addInput.RelativeEffort, "effort", "", "relative effort score")
	addCmd.Flags().StringVar(&addInput.BodyBattery, "battery", "", "body battery drain (positive magnitude)")
	addCmd.Flags().StringVar(&addInput.RPE, "rpe", "5", "rate of perceived exertion (1-10)")
	addCmd.Flags().StringVar(&addInput.PlanText, "plan", "", "what this run was supposed to be")
	addCmd.Flags().StringVar(&addInput.AnalysisText, "analysis", "", "post-run analysis notes")
	rootCmd.AddCommand(addCmd)
}

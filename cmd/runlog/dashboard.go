// ABOUTME: CLI dashboard showing lifetime totals and weekly progress.
// ABOUTME: Mirrors the journal's home view: totals, progress bar, recent runs.
package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/runlog/internal/dateweek"
	"github.com/harperreed/runlog/internal/summary"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d"},
	Short:   "Show training dashboard",
	Long: `Show the training dashboard: lifetime distance and run count, this
week's planned-vs-actual progress, and the three most recent runs.

Progress is capped at 100%: running more than planned fills the bar
but reports no overachievement.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := dateweek.WeekWindow(time.Now())
		totals := summary.Lifetime(logs)
		progress := summary.WeeklyProgress(w, plans, logs)

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		fmt.Printf("%s  %s\n\n", bold.Sprint("RUNLOG"), faint.Sprint(w.RangeLabel()))
		fmt.Printf("  %.1f km total   %d runs\n\n", totals.TotalDistance, totals.TotalRuns)

		fmt.Printf("  This week  %s %3.0f%%\n", progressBar(progress.ProgressPct, 24), progress.ProgressPct)
		fmt.Printf("             actual %d min / planned %d min\n\n", progress.ActualMinutes, progress.PlannedMinutes)

		recent := logs.Recent(3)
		if len(recent) == 0 {
			fmt.Println("  No runs logged yet.")
			return nil
		}

		for _, e := range recent {
			day, _ := dateweek.ParseDay(e.Date)
			battery := ""
			if e.BodyBatteryDrain > 0 {
				battery = faint.Sprintf("  battery -%d", e.BodyBatteryDrain)
			}
			fmt.Printf("  %s %s  %.2f km  %s/km%s\n",
				faint.Sprint(dateweek.WeekOfMonthLabel(day)),
				e.Date, e.DistanceKm, e.Pace, battery)
		}

		return nil
	},
}

// progressBar renders pct (0-100) as a fixed-width bar.
func progressBar(pct float64, width int) string {
	filled := int(math.Round(pct / 100 * float64(width)))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

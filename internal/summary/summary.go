// ABOUTME: Aggregation engine composing the plan and log registries.
// ABOUTME: Pure and stateless; recomputed from registry contents per read.
package summary

import (
	"math"

	"github.com/harperreed/runlog/internal/dateweek"
	"github.com/harperreed/runlog/internal/registry"
)

// Progress is one week's planned-versus-actual training time.
type Progress struct {
	PlannedMinutes int     `json:"plannedMinutes"`
	ActualMinutes  int     `json:"actualMinutes"`
	ProgressPct    float64 `json:"progressPct"`
}

// Totals are lifetime aggregates over every logged run.
type Totals struct {
	TotalDistance float64 `json:"totalDistance"`
	TotalRuns     int     `json:"totalRuns"`
}

// WeeklyProgress computes planned and actual minutes for the window. The
// percentage is capped at 100, and a zero plan yields 0 rather than
// dividing by zero.
func WeeklyProgress(w dateweek.Window, plans *registry.PlanRegistry, logs *registry.LogRegistry) Progress {
	planned := plans.WeeklyTotal(w)

	actualSeconds := 0
	for _, e := range logs.EntriesInWeek(w) {
		actualSeconds += e.DurationSeconds
	}
	actual := int(math.Round(float64(actualSeconds) / 60))

	pct := 0.0
	if planned > 0 {
		pct = math.Min(float64(actual)/float64(planned)*100, 100)
	}

	return Progress{
		PlannedMinutes: planned,
		ActualMinutes:  actual,
		ProgressPct:    pct,
	}
}

// Lifetime passes through the log registry's global aggregates.
func Lifetime(logs *registry.LogRegistry) Totals {
	return Totals{
		TotalDistance: logs.TotalDistance(),
		TotalRuns:     logs.TotalRuns(),
	}
}

// ABOUTME: Plan registry mapping day-strings to planned training minutes.
// ABOUTME: Write-through: every mutation rewrites the runningPlans key.
package registry

import (
	"encoding/json"
	"fmt"

	"github.com/harperreed/runlog/internal/dateweek"
	"github.com/harperreed/runlog/internal/store"
)

// PlanRegistry holds planned minutes per calendar day. An absent day means
// zero; there is no delete primitive because zero and absent are equivalent.
type PlanRegistry struct {
	store store.Store
	plans map[string]int
}

// LoadPlans reads the runningPlans key, treating a missing key as empty.
func LoadPlans(st store.Store) (*PlanRegistry, error) {
	r := &PlanRegistry{store: st, plans: make(map[string]int)}

	data, err := st.Get(store.PlansKey)
	if err != nil {
		return nil, fmt.Errorf("load plans: %w", err)
	}
	if data != nil {
		if err := json.Unmarshal(data, &r.plans); err != nil {
			return nil, fmt.Errorf("unmarshal plans: %w", err)
		}
	}
	return r, nil
}

// Set overwrites the planned minutes for day and persists the full registry
// before returning.
func (r *PlanRegistry) Set(day string, minutes int) error {
	r.plans[day] = minutes
	return r.persist()
}

// PlannedFor returns the planned minutes for day, defaulting to 0.
func (r *PlanRegistry) PlannedFor(day string) int {
	return r.plans[day]
}

// WeeklyTotal sums planned minutes over the window's seven days.
func (r *PlanRegistry) WeeklyTotal(w dateweek.Window) int {
	total := 0
	for _, day := range w {
		total += r.plans[day]
	}
	return total
}

// All returns a copy of the full day-to-minutes mapping.
func (r *PlanRegistry) All() map[string]int {
	out := make(map[string]int, len(r.plans))
	for day, minutes := range r.plans {
		out[day] = minutes
	}
	return out
}

// Replace swaps in a whole new mapping and persists it. Used by import.
func (r *PlanRegistry) Replace(plans map[string]int) error {
	r.plans = make(map[string]int, len(plans))
	for day, minutes := range plans {
		r.plans[day] = minutes
	}
	return r.persist()
}

func (r *PlanRegistry) persist() error {
	data, err := json.Marshal(r.plans)
	if err != nil {
		return fmt.Errorf("marshal plans: %w", err)
	}
	return r.store.Set(store.PlansKey, data)
}

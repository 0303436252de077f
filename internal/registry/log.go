// ABOUTME: Log registry holding completed runs sorted newest-date first.
// ABOUTME: Write-through: every mutation rewrites the runningLogs key.
package registry

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/runlog/internal/dateweek"
	"github.com/harperreed/runlog/internal/models"
	"github.com/harperreed/runlog/internal/pace"
	"github.com/harperreed/runlog/internal/store"
)

// EntryInput carries the raw form values for a new run. All numeric fields
// are strings because the boundary supplies them untyped; coercion happens
// here, once, via the parse-or-zero functions.
type EntryInput struct {
	Date           string
	Distance       string
	Hours          string
	Minutes        string
	Seconds        string
	Elevation      string
	HeartRate      string
	RelativeEffort string
	BodyBattery    string
	RPE            string
	PlanText       string
	AnalysisText   string
}

// LogRegistry is an append-only-with-delete collection of runs, kept sorted
// descending by date. Entries sharing a date order most-recently-inserted
// first.
type LogRegistry struct {
	store   store.Store
	entries []*models.LogEntry
	lastID  int64
}

// LoadLogs reads the runningLogs key, treating a missing key as empty.
func LoadLogs(st store.Store) (*LogRegistry, error) {
	r := &LogRegistry{store: st}

	data, err := st.Get(store.LogsKey)
	if err != nil {
		return nil, fmt.Errorf("load logs: %w", err)
	}
	if data != nil {
		if err := json.Unmarshal(data, &r.entries); err != nil {
			return nil, fmt.Errorf("unmarshal logs: %w", err)
		}
	}

	for _, e := range r.entries {
		if e.ID > r.lastID {
			r.lastID = e.ID
		}
	}
	return r, nil
}

// Insert creates an entry from raw form values, derives pace and duration,
// assigns a monotonic id, and persists the re-sorted collection.
func (r *LogRegistry) Insert(input EntryInput) (*models.LogEntry, error) {
	day := input.Date
	if _, err := dateweek.ParseDay(day); err != nil {
		day = dateweek.DayString(time.Now())
	}

	dist := NonNegativeFloat(input.Distance)
	h := NonNegativeInt(input.Hours)
	m := NonNegativeInt(input.Minutes)
	s := NonNegativeInt(input.Seconds)

	entry := &models.LogEntry{
		ID:               r.nextID(),
		Date:             day,
		DistanceKm:       dist,
		DurationSeconds:  pace.TotalSeconds(h, m, s),
		Pace:             pace.Format(dist, h, m, s),
		ElevationM:       NonNegativeFloat(input.Elevation),
		HeartRateBpm:     NonNegativeInt(input.HeartRate),
		RelativeEffort:   NonNegativeFloat(input.RelativeEffort),
		BodyBatteryDrain: NonNegativeInt(input.BodyBattery),
		RPE:              RPE(input.RPE),
		PlanText:         input.PlanText,
		AnalysisText:     input.AnalysisText,
	}

	// Prepend then stable-sort: entries with the same date keep the
	// newest insertion first.
	r.entries = append([]*models.LogEntry{entry}, r.entries...)
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].Date > r.entries[j].Date
	})

	if err := r.persist(); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes the entry with the given id. A missing id is a no-op and
// leaves the registry (and the store) untouched.
func (r *LogRegistry) Delete(id int64) error {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return r.persist()
		}
	}
	return nil
}

// Get returns the entry with the given id, or nil if absent.
func (r *LogRegistry) Get(id int64) *models.LogEntry {
	for _, e := range r.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Entries returns all entries, newest date first.
func (r *LogRegistry) Entries() []*models.LogEntry {
	return r.entries
}

// Recent returns up to n of the newest entries.
func (r *LogRegistry) Recent(n int) []*models.LogEntry {
	if n > len(r.entries) {
		n = len(r.entries)
	}
	return r.entries[:n]
}

// EntriesInWeek filters entries whose date falls inside the window.
func (r *LogRegistry) EntriesInWeek(w dateweek.Window) []*models.LogEntry {
	var out []*models.LogEntry
	for _, e := range r.entries {
		if w.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// TotalDistance sums distance over all entries.
func (r *LogRegistry) TotalDistance() float64 {
	total := 0.0
	for _, e := range r.entries {
		total += e.DistanceKm
	}
	return total
}

// TotalRuns returns the number of logged runs.
func (r *LogRegistry) TotalRuns() int {
	return len(r.entries)
}

// Replace swaps in a whole new collection and persists it. Used by import.
func (r *LogRegistry) Replace(entries []*models.LogEntry) error {
	r.entries = append([]*models.LogEntry(nil), entries...)
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].Date > r.entries[j].Date
	})
	r.lastID = 0
	for _, e := range r.entries {
		if e.ID > r.lastID {
			r.lastID = e.ID
		}
	}
	return r.persist()
}

// nextID issues unix-millisecond ids, bumping on collision so ids stay
// strictly monotonic even for back-to-back inserts.
func (r *LogRegistry) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *LogRegistry) persist() error {
	data, err := json.Marshal(r.entries)
	if err != nil {
		return fmt.Errorf("marshal logs: %w", err)
	}
	return r.store.Set(store.LogsKey, data)
}

// ABOUTME: Snapshot export and import for the two registries.
// ABOUTME: Supports JSON and YAML; import replaces both registries wholesale.
package registry

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/runlog/internal/models"
	"gopkg.in/yaml.v3"
)

// Snapshot is the full export format for training data.
type Snapshot struct {
	Version    string             `json:"version" yaml:"version"`
	ExportID   uuid.UUID          `json:"export_id" yaml:"export_id"`
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Tool       string             `json:"tool" yaml:"tool"`
	Logs       []*models.LogEntry `json:"logs" yaml:"logs"`
	Plans      map[string]int     `json:"plans" yaml:"plans"`
}

// BuildSnapshot captures the current contents of both registries.
func BuildSnapshot(logs *LogRegistry, plans *PlanRegistry) *Snapshot {
	return &Snapshot{
		Version:    "1.0",
		ExportID:   uuid.New(),
		ExportedAt: time.Now(),
		Tool:       "runlog",
		Logs:       logs.Entries(),
		Plans:      plans.All(),
	}
}

// JSON renders the snapshot as indented JSON.
func (s *Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// YAML renders the snapshot as YAML.
func (s *Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// Restore replaces the contents of both registries with the snapshot's data
// and persists each. Existing entries are discarded, not merged.
func Restore(data []byte, logs *LogRegistry, plans *PlanRegistry) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}

	if err := logs.Replace(snap.Logs); err != nil {
		return fmt.Errorf("restore logs: %w", err)
	}
	if err := plans.Replace(snap.Plans); err != nil {
		return fmt.Errorf("restore plans: %w", err)
	}
	return nil
}

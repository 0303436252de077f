// ABOUTME: Tests for the LogEntry model.
// ABOUTME: Validates duration formatting and JSON round trips.
package models

import (
	"encoding/json"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"sub-hour", 3000, "50m 00s"},
		{"with hours", 6330, "1h 45m 30s"},
		{"zero", 0, "0m 00s"},
		{"just seconds", 42, "0m 42s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &LogEntry{DurationSeconds: tt.seconds}
			if got := e.FormatDuration(); got != tt.want {
				t.Errorf("FormatDuration(%d) = %s, want %s", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestLogEntryJSONOmitsEmptyOptionals(t *testing.T) {
	e := &LogEntry{ID: 1, Date: "2024-03-10", DistanceKm: 10, Pace: `5'00"`, RPE: 5}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"elevationM", "heartRateBpm", "planText"} {
		if _, present := raw[key]; present {
			t.Errorf("expected %s to be omitted when zero", key)
		}
	}
	if _, present := raw["rpe"]; !present {
		t.Error("rpe must always be serialized")
	}
}

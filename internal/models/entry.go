// ABOUTME: LogEntry model for completed runs.
// ABOUTME: Entries are immutable after creation; only deletion is supported.
package models

import "fmt"

// LogEntry is one completed run. Pace and DurationSeconds are derived from
// the distance/time fields at creation and never recomputed afterwards.
type LogEntry struct {
	ID               int64   `json:"id"`
	Date             string  `json:"date"`
	DistanceKm       float64 `json:"distanceKm"`
	DurationSeconds  int     `json:"durationSeconds"`
	Pace             string  `json:"pace"`
	ElevationM       float64 `json:"elevationM,omitempty"`
	HeartRateBpm     int     `json:"heartRateBpm,omitempty"`
	RelativeEffort   float64 `json:"relativeEffort,omitempty"`
	BodyBatteryDrain int     `json:"bodyBatteryDrain,omitempty"`
	RPE              int     `json:"rpe"`
	PlanText         string  `json:"planText,omitempty"`
	AnalysisText     string  `json:"analysisText,omitempty"`
}

// FormatDuration renders DurationSeconds as "1h 05m 30s", dropping the hour
// part for sub-hour runs.
func (e *LogEntry) FormatDuration() string {
	h := e.DurationSeconds / 3600
	m := (e.DurationSeconds % 3600) / 60
	s := e.DurationSeconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	}
	return fmt.Sprintf("%dm %02ds", m, s)
}

// ABOUTME: MCP tool implementations for the training journal.
// ABOUTME: Exposes run logging, weekly planning, and progress queries.
package mcp

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/harperreed/runlog/internal/dateweek"
	"github.com/harperreed/runlog/internal/models"
	"github.com/harperreed/runlog/internal/pace"
	"github.com/harperreed/runlog/internal/registry"
	"github.com/harperreed/runlog/internal/summary"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_run",
		Description: "Record a completed run with distance, time, and optional effort metrics",
	}, s.handleLogRun)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_runs",
		Description: "List logged runs, newest first",
	}, s.handleListRuns)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_run",
		Description: "Delete a run by its id",
	}, s.handleDeleteRun)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_plan",
		Description: "Set planned training minutes for a calendar day (YYYY-MM-DD)",
	}, s.handleSetPlan)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_week_plan",
		Description: "Get the Monday-to-Sunday plan for the week containing a date",
	}, s.handleGetWeekPlan)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_progress",
		Description: "Planned vs actual training minutes for the week containing a date",
	}, s.handleWeeklyProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "lifetime_summary",
		Description: "Total distance and run count over all logged runs",
	}, s.handleLifetimeSummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "compute_pace",
		Description: "Compute a M'SS\" per-km pace from distance and elapsed time",
	}, s.handleComputePace)
}

// Tool input/output types

type logRunInput struct {
	Date             string  `json:"date,omitempty" jsonschema:"Run date (YYYY-MM-DD); defaults to today"`
	DistanceKm       float64 `json:"distance_km" jsonschema:"Distance in kilometers"`
	Hours            int     `json:"hours,omitempty" jsonschema:"Elapsed hours"`
	Minutes          int     `json:"minutes,omitempty" jsonschema:"Elapsed minutes"`
	Seconds          int     `json:"seconds,omitempty" jsonschema:"Elapsed seconds"`
	ElevationM       float64 `json:"elevation_m,omitempty" jsonschema:"Elevation gain in meters"`
	HeartRateBpm     int     `json:"heart_rate_bpm,omitempty" jsonschema:"Average heart rate"`
	RelativeEffort   float64 `json:"relative_effort,omitempty" jsonschema:"Relative effort score"`
	BodyBatteryDrain int     `json:"body_battery_drain,omitempty" jsonschema:"Body battery drain (positive magnitude)"`
	RPE              int     `json:"rpe,omitempty" jsonschema:"Rate of perceived exertion 1-10 (default 5)"`
	PlanText         string  `json:"plan_text,omitempty" jsonschema:"What the run was supposed to be"`
	AnalysisText     string  `json:"analysis_text,omitempty" jsonschema:"Post-run analysis notes"`
}

type runOutput struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Pace    string `json:"pace"`
	Message string `json:"message"`
}

type listRunsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type listRunsOutput struct {
	Runs []*models.LogEntry `json:"runs"`
}

type deleteRunInput struct {
	ID int64 `json:"id" jsonschema:"Run id"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type setPlanInput struct {
	Date    string `json:"date" jsonschema:"Calendar day (YYYY-MM-DD)"`
	Minutes int    `json:"minutes" jsonschema:"Planned training minutes"`
}

type weekInput struct {
	Date string `json:"date,omitempty" jsonschema:"Any date inside the week (YYYY-MM-DD); defaults to today"`
}

type weekPlanOutput struct {
	Window       []string       `json:"window"`
	Plans        map[string]int `json:"plans"`
	TotalMinutes int            `json:"total_minutes"`
}

type progressOutput struct {
	Window   []string         `json:"window"`
	Progress summary.Progress `json:"progress"`
}

type computePaceInput struct {
	DistanceKm float64 `json:"distance_km" jsonschema:"Distance in kilometers"`
	Hours      int     `json:"hours,omitempty" jsonschema:"Elapsed hours"`
	Minutes    int     `json:"minutes,omitempty" jsonschema:"Elapsed minutes"`
	Seconds    int     `json:"seconds,omitempty" jsonschema:"Elapsed seconds"`
}

type paceOutput struct {
	Pace         string `json:"pace"`
	TotalSeconds int    `json:"total_seconds"`
}

// weekFor resolves an optional date string to a week window, falling back to
// the current week when the date is absent or unparseable.
func weekFor(date string) dateweek.Window {
	t := time.Now()
	if date != "" {
		if parsed, err := dateweek.ParseDay(date); err == nil {
			t = parsed
		}
	}
	return dateweek.WeekWindow(t)
}

// Tool handlers

func (s *Server) handleLogRun(ctx context.Context, req *mcp.CallToolRequest, input logRunInput) (*mcp.CallToolResult, runOutput, error) {
	if input.RPE == 0 {
		input.RPE = 5
	}

	entry, err := s.logs.Insert(registry.EntryInput{
		Date:           input.Date,
		Distance:       strconv.FormatFloat(input.DistanceKm, 'f', -1, 64),
		Hours:          strconv.Itoa(input.Hours),
		Minutes:        strconv.Itoa(input.Minutes),
		Seconds:        strconv.Itoa(input.Seconds),
		Elevation:      strconv.FormatFloat(input.ElevationM, 'f', -1, 64),
		HeartRate:      strconv.Itoa(input.HeartRateBpm),
		RelativeEffort: strconv.FormatFloat(input.RelativeEffort, 'f', -1, 64),
		BodyBattery:    strconv.Itoa(input.BodyBatteryDrain),
		RPE:            strconv.Itoa(input.RPE),
		PlanText:       input.PlanText,
		AnalysisText:   input.AnalysisText,
	})
	if err != nil {
		return nil, runOutput{}, fmt.Errorf("log run: %w", err)
	}

	return nil, runOutput{
		ID:      entry.ID,
		Date:    entry.Date,
		Pace:    entry.Pace,
		Message: fmt.Sprintf("Logged %.2f km on %s at %s/km", entry.DistanceKm, entry.Date, entry.Pace),
	}, nil
}

func (s *Server) handleListRuns(ctx context.Context, req *mcp.CallToolRequest, input listRunsInput) (*mcp.CallToolResult, listRunsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}
	return nil, listRunsOutput{Runs: s.logs.Recent(limit)}, nil
}

func (s *Server) handleDeleteRun(ctx context.Context, req *mcp.CallToolRequest, input deleteRunInput) (*mcp.CallToolResult, simpleOutput, error) {
	entry := s.logs.Get(input.ID)
	if entry == nil {
		return nil, simpleOutput{Message: fmt.Sprintf("No run with id %d; nothing deleted", input.ID)}, nil
	}
	if err := s.logs.Delete(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("delete run: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted run %d (%s, %.2f km)", entry.ID, entry.Date, entry.DistanceKm)}, nil
}

func (s *Server) handleSetPlan(ctx context.Context, req *mcp.CallToolRequest, input setPlanInput) (*mcp.CallToolResult, simpleOutput, error) {
	if _, err := dateweek.ParseDay(input.Date); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", input.Date)
	}

	minutes := input.Minutes
	if minutes < 0 {
		minutes = 0
	}
	if err := s.plans.Set(input.Date, minutes); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("set plan: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Planned %d minutes for %s", minutes, input.Date)}, nil
}

func (s *Server) handleGetWeekPlan(ctx context.Context, req *mcp.CallToolRequest, input weekInput) (*mcp.CallToolResult, weekPlanOutput, error) {
	w := weekFor(input.Date)

	plans := make(map[string]int, len(w))
	for _, day := range w {
		plans[day] = s.plans.PlannedFor(day)
	}

	return nil, weekPlanOutput{
		Window:       w[:],
		Plans:        plans,
		TotalMinutes: s.plans.WeeklyTotal(w),
	}, nil
}

func (s *Server) handleWeeklyProgress(ctx context.Context, req *mcp.CallToolRequest, input weekInput) (*mcp.CallToolResult, progressOutput, error) {
	w := weekFor(input.Date)
	return nil, progressOutput{
		Window:   w[:],
		Progress: summary.WeeklyProgress(w, s.plans, s.logs),
	}, nil
}

func (s *Server) handleLifetimeSummary(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, summary.Totals, error) {
	return nil, summary.Lifetime(s.logs), nil
}

func (s *Server) handleComputePace(ctx context.Context, req *mcp.CallToolRequest, input computePaceInput) (*mcp.CallToolResult, paceOutput, error) {
	return nil, paceOutput{
		Pace:         pace.Format(input.DistanceKm, input.Hours, input.Minutes, input.Seconds),
		TotalSeconds: pace.TotalSeconds(input.Hours, input.Minutes, input.Seconds),
	}, nil
}

// ABOUTME: MCP resource implementations for the training journal.
// ABOUTME: Provides runlog://dashboard and runlog://week/current resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/runlog/internal/dateweek"
	"github.com/harperreed/runlog/internal/summary"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "runlog://dashboard",
		Name:        "Training Dashboard",
		Description: "Lifetime totals, current-week progress, and recent runs",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "runlog://week/current",
		Name:        "Current Week",
		Description: "This week's window, per-day plan, and logged runs",
		MIMEType:    "application/json",
	}, s.handleCurrentWeekResource)
}

// Resource handlers

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	w := dateweek.WeekWindow(time.Now())

	result := map[string]interface{}{
		"week":        w.RangeLabel(),
		"lifetime":    summary.Lifetime(s.logs),
		"progress":    summary.WeeklyProgress(w, s.plans, s.logs),
		"recent_runs": s.logs.Recent(3),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "runlog://dashboard",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleCurrentWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	w := dateweek.WeekWindow(time.Now())

	plans := make(map[string]int, len(w))
	for _, day := range w {
		plans[day] = s.plans.PlannedFor(day)
	}

	result := map[string]interface{}{
		"window":                w[:],
		"label":                 w.RangeLabel(),
		"plans":                 plans,
		"total_planned_minutes": s.plans.WeeklyTotal(w),
		"runs":                  s.logs.EntriesInWeek(w),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "runlog://week/current",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/runlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "runlog": {
        "command": "runlog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_run           Record a completed run
  list_runs         List logged runs
  delete_run        Delete a run by id
  set_plan          Set planned minutes for a day
  get_week_plan     Get a week's plan grid
  weekly_progress   Planned vs actual minutes for a week
  lifetime_summary  Total distance and run count
  compute_pace      Pace from distance and time

AVAILABLE RESOURCES:

  runlog://dashboard       Lifetime totals, progress, recent runs
  runlog://week/current    Current week window, plan, and runs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(logs, plans)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

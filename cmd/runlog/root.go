// ABOUTME: Root Cobra command for runlog CLI.
// ABOUTME: Opens the store and registries via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/runlog/internal/config"
	"github.com/harperreed/runlog/internal/registry"
	"github.com/harperreed/runlog/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	st    store.Store
	logs  *registry.LogRegistry
	plans *registry.PlanRegistry
)

var rootCmd = &cobra.Command{
	Use:   "runlog",
	Short: "Personal running journal with weekly time goals",
	Long: `Runlog is a CLI training journal: record completed runs, set weekly
time goals per day, and track planned vs actual training minutes.

QUICK START:

  $ runlog add --km 10 --minutes 50          # Log a 10 km run in 50 minutes
  $ runlog plan set 2024-03-11 45            # Plan 45 minutes for a day
  $ runlog plan                              # Show this week's plan grid
  $ runlog dashboard                         # Progress bar + lifetime totals
  $ runlog list                              # All logged runs, newest first
  $ runlog pace 10 0 50 0                    # Pace preview: 5'00"/km

WEEK NAVIGATION:

  Weeks always run Monday through Sunday.

  $ runlog plan --week -1                    # Last week's plan
  $ runlog plan --date 2024-03-10            # Week containing a date

DATA STORAGE:

  Runs and plans live under two keys in a local key-value store
  (~/.local/share/runlog by default). Backends: badger (default),
  sqlite, or charm for E2E-encrypted sync via Charm Cloud.

MCP INTEGRATION:

  Run 'runlog mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "runlog": { "command": "runlog", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "pace" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		st, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		logs, err = registry.LoadLogs(st)
		if err != nil {
			return err
		}
		plans, err = registry.LoadPlans(st)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			return st.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ABOUTME: CLI command for syncing the charm backend with Charm Cloud.
// ABOUTME: Local backends report that sync is unavailable.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/runlog/internal/store"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync with Charm Cloud",
	Long: `Push and pull training data to Charm Cloud.

Only the charm backend syncs; badger and sqlite are purely local. Charm
syncs automatically after every write, so this command is mostly useful
to pull changes made on another device.

To enable sync, set "backend": "charm" in your config
(~/.config/runlog/config.json).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		syncer, ok := st.(store.Syncer)
		if !ok {
			return fmt.Errorf("the %q backend does not sync; set backend to \"charm\"", cfg.GetBackend())
		}

		if err := syncer.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		color.Green("✓ Synced with Charm Cloud")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

// ABOUTME: CLI commands for exporting and importing training data.
// ABOUTME: Supports JSON and YAML snapshot formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/runlog/internal/registry"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export training data",
	Long: `Export all runs and plans as a single snapshot.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)

EXAMPLES:

  runlog export json                  # Print JSON to stdout
  runlog export json -o backup.json   # Save to file
  runlog export yaml                  # Print YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := registry.BuildSnapshot(logs, plans)

		var data []byte
		var err error
		switch args[0] {
		case "json":
			data, err = snap.JSON()
		case "yaml":
			data, err = snap.YAML()
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import training data from a JSON snapshot",
	Long: `Import runs and plans from a previously exported JSON snapshot.

The snapshot REPLACES the current contents of both registries; it is a
restore, not a merge.

EXAMPLES:

  runlog import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := registry.Restore(data, logs, plans); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", args[0])
		fmt.Printf("  %d runs, %d planned days\n", logs.TotalRuns(), len(plans.All()))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

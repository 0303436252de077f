// ABOUTME: CLI command for deleting a logged run.
// ABOUTME: Confirmation lives here at the boundary, not in the registry.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a logged run",
	Long: `Delete a logged run by its id (first column of 'runlog list').

Deleting an id that doesn't exist is a no-op. Deletion is permanent;
there is no undo.

EXAMPLES:

  runlog delete 1710072000123        # Asks for confirmation
  runlog delete 1710072000123 --yes  # Skips the prompt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		entry := logs.Get(id)
		if entry == nil {
			fmt.Printf("No run with id %d; nothing deleted.\n", id)
			return nil
		}

		if !deleteYes {
			fmt.Printf("Delete run from %s (%.2f km)? [y/N] ", entry.Date, entry.DistanceKm)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := logs.Delete(id); err != nil {
			return fmt.Errorf("failed to delete run: %w", err)
		}

		color.Yellow("✗ Deleted run from %s", entry.Date)
		fmt.Printf("  %s %.2f km  %s/km\n",
			color.New(color.Faint).Sprintf("%d", entry.ID),
			entry.DistanceKm, entry.Pace)

		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

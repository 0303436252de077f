// ABOUTME: CLI command for previewing pace from distance and time.
// ABOUTME: Stateless; the same math runs inside every log insert.
package main

import (
	"fmt"

	"github.com/harperreed/runlog/internal/pace"
	"github.com/harperreed/runlog/internal/registry"
	"github.com/spf13/cobra"
)

var paceCmd = &cobra.Command{
	Use:   "pace <km> [hours] [minutes] [seconds]",
	Short: "Compute pace from distance and time",
	Long: `Compute a per-kilometer pace without logging anything.

A zero or missing distance yields the 0'00" sentinel. Non-numeric
arguments coerce to zero.

EXAMPLES:

  runlog pace 10 0 50 0     # 5'00"/km
  runlog pace 5.2 0 28 30   # pace for 5.2 km in 28:30`,
	Args: cobra.RangeArgs(1, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		get := func(i int) string {
			if i < len(args) {
				return args[i]
			}
			return "0"
		}

		km := registry.NonNegativeFloat(get(0))
		h := registry.NonNegativeInt(get(1))
		m := registry.NonNegativeInt(get(2))
		s := registry.NonNegativeInt(get(3))

		fmt.Printf("%s/km  (%d seconds total)\n", pace.Format(km, h, m, s), pace.TotalSeconds(h, m, s))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paceCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var slopeCmd = &cobra.Command{
	Use:   "slope",
	Short: "Slope angle, ratio and triangle calculator",
	Long: `Convert between slope angles and V:H ratios, and solve the
right triangle formed by the rise and run of a slope.

Subcommands:
  convert   - Convert an angle to a ratio or a ratio to an angle
  triangle  - Compute the missing side or angle of a slope triangle`,
}

func init() {
	rootCmd.AddCommand(slopeCmd)
}

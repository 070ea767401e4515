package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gopile/internal/slope"
	"github.com/spf13/cobra"
)

var (
	triangleVertical   float64
	triangleHorizontal float64
	triangleAngle      float64
)

var slopeTriangleCmd = &cobra.Command{
	Use:   "triangle",
	Short: "Solve the slope triangle from two known values",
	Long: `Compute the missing value of a slope triangle. Give exactly two of
the vertical rise, the horizontal run and the angle from horizontal.

Examples:
  gopile slope triangle --vertical 3 --horizontal 4
  gopile slope triangle --horizontal 10 --angle 30`,
	RunE: runSlopeTriangle,
}

func init() {
	slopeCmd.AddCommand(slopeTriangleCmd)

	slopeTriangleCmd.Flags().Float64VarP(&triangleVertical, "vertical", "v", 0, "Vertical rise (m)")
	slopeTriangleCmd.Flags().Float64Var(&triangleHorizontal, "horizontal", 0, "Horizontal run (m)")
	slopeTriangleCmd.Flags().Float64VarP(&triangleAngle, "angle", "a", 0, "Angle from horizontal (degrees)")
}

func runSlopeTriangle(cmd *cobra.Command, args []string) error {
	given := func(name string, v float64) *float64 {
		if cmd.Flags().Changed(name) {
			return &v
		}
		return nil
	}

	t, err := slope.SolveTriangle(
		given("vertical", triangleVertical),
		given("horizontal", triangleHorizontal),
		given("angle", triangleAngle),
	)
	if err != nil {
		return err
	}

	r := slope.Ratio{Vertical: t.Vertical, Horizontal: t.Horizontal}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Vertical:\t%.2f m\n", t.Vertical)
	fmt.Fprintf(w, "  Horizontal:\t%.2f m\n", t.Horizontal)
	fmt.Fprintf(w, "  Angle:\t%.2f°\n", t.Angle)
	if t.Vertical > 0 && t.Horizontal > 0 {
		fmt.Fprintf(w, "  Ratio:\t%s\n", r)
	}
	return w.Flush()
}

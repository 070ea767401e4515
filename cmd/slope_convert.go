package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gopile/internal/slope"
	"github.com/spf13/cobra"
)

var (
	slopeConvertAngle float64
	slopeConvertRatio string
)

var slopeConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between slope angle and V:H ratio",
	Long: `Convert a slope angle (degrees from horizontal) to a ratio
normalised to 1V:xH, or a ratio such as 2V:3H to an angle.

Examples:
  gopile slope convert --angle 30
  gopile slope convert --ratio 1V:1.5H`,
	RunE: runSlopeConvert,
}

func init() {
	slopeCmd.AddCommand(slopeConvertCmd)

	slopeConvertCmd.Flags().Float64VarP(&slopeConvertAngle, "angle", "a", 0, "Slope angle from horizontal (degrees, 0 to 90)")
	slopeConvertCmd.Flags().StringVarP(&slopeConvertRatio, "ratio", "r", "", "Slope ratio, e.g. 1V:2H")
	slopeConvertCmd.MarkFlagsMutuallyExclusive("angle", "ratio")
	slopeConvertCmd.MarkFlagsOneRequired("angle", "ratio")
}

func runSlopeConvert(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	switch {
	case cmd.Flags().Changed("angle"):
		r, err := slope.AngleToRatio(slopeConvertAngle)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  Angle:\t%.2f°\n", slopeConvertAngle)
		fmt.Fprintf(w, "  Ratio:\t%s\n", r)
	case cmd.Flags().Changed("ratio"):
		r, err := slope.ParseRatio(slopeConvertRatio)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  Ratio:\t%s\n", r)
		fmt.Fprintf(w, "  Angle:\t%.2f°\n", slope.RatioToAngle(r))
	default:
		return errors.New("please enter an angle or a ratio")
	}
	return nil
}

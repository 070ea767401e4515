package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gopile/internal/diagram"
	"github.com/alexiusacademia/gopile/internal/pile"
	"github.com/alexiusacademia/gopile/internal/report"
	"github.com/alexiusacademia/gopile/internal/soil"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	capacityOpts capacityOptions

	// Output options
	capacityShowDiagram bool
	capacityShowChart   bool
	capacityExportFile  string
	capacityCurveFile   string
	capacityReportFile  string
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Calculate the allowable axial capacity of a bored pile",
	Long: `Calculate the allowable skin friction, end bearing and total capacity
of a bored pile in a layered soil profile.

Skin friction is summed over the length of shaft within each layer.
End bearing uses the lowest end bearing value of the layers touching
the zone from (multiplier × diameter) above the pile base to one
diameter below it. Both are multiplied by the strength reduction factor.

Layers are given as name:top:skin_friction:end_bearing with the top as
a depth below ground (mbgl) or a reduced level (mRL, --convention rl).
The last layer extends 1000 m below its top.

Examples:
  # 600mm pile 15m deep in two layers
  gopile capacity --diameter 0.6 --depth 15 -l Clay:0:50 -l Sand:10:80:2000

  # Reduced levels
  gopile capacity --convention rl -D 0.6 -d 15 -l Clay:100:50 -l Sand:90:80:2000

  # From a profile file with a chart and a report
  gopile capacity -f site.yaml --chart --report p1.xlsx`,
	RunE: runCapacity,
}

func init() {
	rootCmd.AddCommand(capacityCmd)

	flags := capacityCmd.Flags()

	// Input flags
	flags.StringVarP(&capacityOpts.file, "file", "f", "", "Soil profile file (json, yaml or xlsx)")
	flags.Float64VarP(&capacityOpts.diameter, "diameter", "D", 0, "Pile diameter (m)")
	flags.Float64VarP(&capacityOpts.depth, "depth", "d", 0, "Pile depth below ground (m)")
	flags.Float64VarP(&capacityOpts.reductionFactor, "reduction-factor", "r", 0.5, "Strength reduction factor")
	flags.Float64VarP(&capacityOpts.zoneMultiplier, "zone-multiplier", "m", 1, "End bearing zone height above the base (× diameter)")
	flags.StringVarP(&capacityOpts.convention, "convention", "c", "bgl", "Level convention: bgl (depth below ground) or rl (reduced level)")
	flags.StringArrayVarP(&capacityOpts.layers, "layer", "l", nil, "Soil layer as name:top:skin_friction:end_bearing (repeatable)")

	// Capacity versus depth
	flags.Float64Var(&capacityOpts.from, "from", 0, "Capacity curve start depth (m)")
	flags.Float64Var(&capacityOpts.to, "to", 0, "Capacity curve end depth (m) (default 1.5 × pile depth)")
	flags.Float64Var(&capacityOpts.step, "step", 0.5, "Capacity curve depth step (m)")

	// Output options
	flags.BoolVar(&capacityShowDiagram, "diagram", false, "Show ASCII soil profile diagram")
	flags.BoolVar(&capacityShowChart, "chart", false, "Show capacity versus depth chart")
	flags.StringVarP(&capacityExportFile, "output", "o", "", "Export profile diagram to file (png, svg, pdf)")
	flags.StringVar(&capacityCurveFile, "curve", "", "Export capacity versus depth curve to file (png, svg, pdf)")
	flags.StringVar(&capacityReportFile, "report", "", "Write a report (xlsx or pdf)")
}

func runCapacity(cmd *cobra.Command, args []string) error {
	changed := cmd.Flags().Changed

	in, profile, err := resolveInput(capacityOpts, changed, cfg)
	if err != nil {
		return err
	}
	appLog.WithFields(logrus.Fields{
		"convention": in.Convention,
		"layers":     len(in.Layers),
		"file":       capacityOpts.file,
	}).Debug("resolved pile input")

	result, err := pile.Calculate(in)
	if err != nil {
		return err
	}
	appLog.WithFields(logrus.Fields{
		"pileTop":    result.Extents.PileTop,
		"pileBase":   result.Extents.PileBase,
		"zoneTop":    result.Extents.ZoneTop,
		"zoneBottom": result.Extents.ZoneBottom,
	}).Debug("derived pile extents")

	printCapacity(profile, result)

	var points []pile.DepthPoint
	if capacityShowChart || capacityCurveFile != "" || capacityReportFile != "" {
		from, to, step := depthRange(capacityOpts, changed, in, cfg)
		points, err = pile.Profile(in, from, to, step)
		if err != nil {
			return fmt.Errorf("capacity versus depth: %w", err)
		}
		appLog.WithFields(logrus.Fields{"from": from, "to": to, "step": step, "points": len(points)}).Debug("evaluated capacity profile")
	}

	data := diagram.NewProfileData(profile.Name, result)

	// Show diagram if requested
	if capacityShowDiagram {
		fmt.Println(diagram.DrawSoilProfile(data))
	}

	if capacityShowChart {
		fmt.Println("CAPACITY VS DEPTH:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(diagram.DrawCapacityChart(points))
		fmt.Println()
	}

	success := color.New(color.FgGreen)

	// Export files if requested
	if capacityExportFile != "" {
		if err := diagram.ExportProfileDiagram(data, capacityExportFile); err != nil {
			return fmt.Errorf("failed to export diagram: %w", err)
		}
		appLog.WithField("path", capacityExportFile).Info("exported profile diagram")
		success.Printf("Diagram exported to: %s\n", capacityExportFile)
	}

	if capacityCurveFile != "" {
		if err := diagram.ExportCapacityCurve(points, capacityCurveFile); err != nil {
			return fmt.Errorf("failed to export capacity curve: %w", err)
		}
		appLog.WithField("path", capacityCurveFile).Info("exported capacity curve")
		success.Printf("Capacity curve exported to: %s\n", capacityCurveFile)
	}

	if capacityReportFile != "" {
		r := report.Report{
			Title:       profile.Name,
			Description: profile.Description,
			Result:      result,
			Points:      points,
		}
		if err := report.Write(r, capacityReportFile); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		appLog.WithField("path", capacityReportFile).Info("wrote report")
		success.Printf("Report written to: %s\n", capacityReportFile)
	}

	return nil
}

func printCapacity(profile *soil.Profile, result *pile.Result) {
	unit := result.Convention.Label()
	ext := result.Extents

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BORED PILE AXIAL CAPACITY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if profile.Name != "" {
		fmt.Printf("  Profile: %s\n", profile.Name)
	}
	if profile.Description != "" {
		fmt.Printf("  Description: %s\n", profile.Description)
	}
	if profile.Name != "" || profile.Description != "" {
		fmt.Println()
	}

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Pile Diameter (D):\t%.3f m\n", result.Spec.Diameter)
	fmt.Fprintf(w, "  Pile Depth:\t%.2f m\n", result.Spec.Depth)
	fmt.Fprintf(w, "  Strength Reduction Factor (φ):\t%.2f\n", result.Spec.ReductionFactor)
	fmt.Fprintf(w, "  End Bearing Zone Multiplier:\t%.2f\n", result.Spec.ZoneMultiplier)
	fmt.Fprintf(w, "  Level Convention:\t%s\n", unit)
	w.Flush()
	fmt.Println()

	fmt.Println("SOIL LAYERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layer\tTop\tBottom\tfs (kPa)\tqb (kPa)\tL (m)\tQs (kN)\n")
	fmt.Fprintf(w, "  ─────\t───\t──────\t────────\t────────\t─────\t───────\n")
	for i, l := range result.Layers {
		name := soil.Layer{Name: l.Name}.DisplayName(i)
		if l.Governs {
			name += " *"
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%s\t%s\t%.2f\t%.1f\n",
			name, l.Top, l.Bottom, optionalValue(l.SkinFriction), optionalValue(l.EndBearing), l.Overlap, l.Contribution)
	}
	w.Flush()
	fmt.Println("  * governing end bearing layer")
	fmt.Println()

	fmt.Println("PILE LEVELS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ground Level:\t%.2f %s\n", ext.GroundLevel, unit)
	fmt.Fprintf(w, "  Pile Top:\t%.2f %s\n", ext.PileTop, unit)
	fmt.Fprintf(w, "  Pile Base:\t%.2f %s\n", ext.PileBase, unit)
	fmt.Fprintf(w, "  End Bearing Zone:\t%.2f to %.2f %s\n", ext.ZoneTop, ext.ZoneBottom, unit)
	w.Flush()
	fmt.Println()

	fmt.Println("END BEARING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Governing qb:\t%.1f kPa\n", result.GoverningEndBearing)
	fmt.Fprintf(w, "  Base Area (πD²/4):\t%.4f m²\n", result.BaseArea)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("ALLOWABLE CAPACITY", []string{
		fmt.Sprintf("Skin Friction (φQs) = %6.0f kN", result.SkinFriction),
		fmt.Sprintf("End Bearing   (φQb) = %6.0f kN", result.EndBearing),
		fmt.Sprintf("Total Capacity (Q)  = %6.0f kN", result.Total),
	}))
	fmt.Println()
}

func optionalValue(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

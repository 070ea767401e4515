package report

import (
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// WritePDF writes a one page summary of the calculation
func WritePDF(r Report, filename string) error {
	res := r.Result
	unit := res.Convention.Label()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, r.title())
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	if r.Description != "" {
		pdf.MultiCell(0, 5, r.Description, "", "L", false)
		pdf.Ln(2)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", r.date().Format("2006-01-02")))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(label, value string) {
		pdf.CellFormat(70, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
	}

	section("Pile")
	row("Diameter", fmt.Sprintf("%.3f m", res.Spec.Diameter))
	row("Depth", fmt.Sprintf("%.2f m", res.Spec.Depth))
	row("Strength reduction factor", fmt.Sprintf("%.2f", res.Spec.ReductionFactor))
	row("End bearing zone multiplier", fmt.Sprintf("%.2f", res.Spec.ZoneMultiplier))
	row("Pile top / base", fmt.Sprintf("%.2f / %.2f %s", res.Extents.PileTop, res.Extents.PileBase, unit))
	row("End bearing zone", fmt.Sprintf("%.2f to %.2f %s", res.Extents.ZoneTop, res.Extents.ZoneBottom, unit))
	pdf.Ln(4)

	section("Soil layers")
	widths := []float64{40, 22, 22, 25, 25, 22, 30}
	headers := []string{"Layer", "Top", "Bottom", "fs (kPa)", "qb (kPa)", "L (m)", "Qs (kN)"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for i, l := range res.Layers {
		name := layerName(l, i)
		if l.Governs {
			name += " *"
		}
		cells := []string{
			name,
			fmt.Sprintf("%.2f", l.Top),
			fmt.Sprintf("%.2f", l.Bottom),
			optional(l.SkinFriction),
			optional(l.EndBearing),
			fmt.Sprintf("%.2f", l.Overlap),
			fmt.Sprintf("%.1f", l.Contribution),
		}
		for j, c := range cells {
			pdf.CellFormat(widths[j], 6, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, "* governing end bearing layer")
	pdf.Ln(8)

	section("Allowable capacity")
	row("Skin friction", fmt.Sprintf("%.0f kN", res.SkinFriction))
	row("End bearing", fmt.Sprintf("%.0f kN", res.EndBearing))
	pdf.SetFont("Helvetica", "B", 11)
	row("Total capacity", fmt.Sprintf("%.0f kN", res.Total))

	if len(r.Points) > 0 {
		pdf.Ln(4)
		section("Capacity versus depth")
		pdf.SetFont("Helvetica", "B", 9)
		for _, h := range []string{"Depth (m)", "Qs (kN)", "Qb (kN)", "Q (kN)"} {
			pdf.CellFormat(35, 6, h, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
		for _, p := range r.Points {
			qb, q := "-", "-"
			if p.OK {
				qb, q = fmt.Sprintf("%.0f", p.EndBearing), fmt.Sprintf("%.0f", p.Total)
			}
			for _, c := range []string{fmt.Sprintf("%.2f", p.Depth), fmt.Sprintf("%.0f", p.SkinFriction), qb, q} {
				pdf.CellFormat(35, 6, c, "1", 0, "C", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	return pdf.OutputFileAndClose(filename)
}

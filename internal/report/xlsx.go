package report

import (
	"fmt"

	"github.com/alexiusacademia/gopile/internal/soil"
	"github.com/xuri/excelize/v2"
)

const (
	sheetResults = "Results"
	sheetDepth   = "Depth Profile"
)

// WriteXLSX writes the report as a workbook. The Pile and Layers sheets use
// the layout soil.LoadFromXLSX reads, so the workbook can be loaded again.
func WriteXLSX(r Report, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	res := r.Result
	spec := res.Spec

	if err := f.SetSheetName("Sheet1", soil.SheetPile); err != nil {
		return err
	}
	pileRows := [][]interface{}{
		{"name", r.title()},
		{"convention", string(res.Convention)},
		{"diameter", spec.Diameter},
		{"depth", spec.Depth},
		{"reduction_factor", spec.ReductionFactor},
		{"zone_multiplier", spec.ZoneMultiplier},
	}
	if err := writeRows(f, soil.SheetPile, pileRows); err != nil {
		return err
	}

	if _, err := f.NewSheet(soil.SheetLayers); err != nil {
		return err
	}
	layerRows := [][]interface{}{
		{"Name", "Top", "Skin friction (kPa)", "End bearing (kPa)", "Bottom", "Overlap (m)", "Shaft capacity (kN)", "In zone", "Governs"},
	}
	for i, l := range res.Layers {
		layerRows = append(layerRows, []interface{}{
			layerName(l, i), l.Top, cellValue(l.SkinFriction), cellValue(l.EndBearing),
			l.Bottom, l.Overlap, l.Contribution, l.InZone, l.Governs,
		})
	}
	if err := writeRows(f, soil.SheetLayers, layerRows); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetResults); err != nil {
		return err
	}
	ext := res.Extents
	resultRows := [][]interface{}{
		{"Quantity", "Value", "Unit"},
		{"Ground level", ext.GroundLevel, res.Convention.Label()},
		{"Pile top", ext.PileTop, res.Convention.Label()},
		{"Pile base", ext.PileBase, res.Convention.Label()},
		{"End bearing zone top", ext.ZoneTop, res.Convention.Label()},
		{"End bearing zone bottom", ext.ZoneBottom, res.Convention.Label()},
		{"Governing end bearing", res.GoverningEndBearing, "kPa"},
		{"Base area", res.BaseArea, "m²"},
		{"Allowable skin friction", res.SkinFriction, "kN"},
		{"Allowable end bearing", res.EndBearing, "kN"},
		{"Total capacity", res.Total, "kN"},
		{"Date", r.date().Format("2006-01-02"), ""},
	}
	if err := writeRows(f, sheetResults, resultRows); err != nil {
		return err
	}

	if len(r.Points) > 0 {
		if _, err := f.NewSheet(sheetDepth); err != nil {
			return err
		}
		depthRows := [][]interface{}{
			{"Depth (m)", "Skin friction (kN)", "End bearing (kN)", "Total (kN)"},
		}
		for _, p := range r.Points {
			row := []interface{}{p.Depth, p.SkinFriction, "", ""}
			if p.OK {
				row[2], row[3] = p.EndBearing, p.Total
			}
			depthRows = append(depthRows, row)
		}
		if err := writeRows(f, sheetDepth, depthRows); err != nil {
			return err
		}
	}

	if idx, err := f.GetSheetIndex(sheetResults); err == nil {
		f.SetActiveSheet(idx)
	}

	return f.SaveAs(filename)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func cellValue(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

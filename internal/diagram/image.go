package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gopile/internal/pile"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Soil column drawing width in plot units
const columnWidth = 10.0

var bandColors = []color.Color{
	color.RGBA{R: 222, G: 196, B: 150, A: 255},
	color.RGBA{R: 181, G: 148, B: 104, A: 255},
	color.RGBA{R: 205, G: 205, B: 180, A: 255},
	color.RGBA{R: 150, G: 130, B: 110, A: 255},
}

// ExportProfileDiagram exports the soil profile with the pile and end bearing
// zone to an image file (png, svg or pdf by extension)
func ExportProfileDiagram(data ProfileData, filename string) error {
	p := plot.New()
	p.Title.Text = "Pile Soil Profile"
	if data.Title != "" {
		p.Title.Text += " - " + data.Title
	}
	p.Y.Label.Text = fmt.Sprintf("Level (%s)", data.LevelLabel)
	p.HideX()
	p.Y.Tick.Marker = levelTicks{data: data}

	maxDepth := data.displayDepth()
	y := func(depth float64) float64 { return -depth }

	// Soil bands, clipped to the drawn depth
	for i, b := range data.Bands {
		top := math.Max(b.TopDepth, 0)
		bottom := math.Min(b.BottomDepth, maxDepth)
		if bottom <= top {
			continue
		}
		band, err := plotter.NewPolygon(rect(0, columnWidth, y(top), y(bottom)))
		if err != nil {
			return err
		}
		band.Color = bandColors[i%len(bandColors)]
		band.LineStyle.Color = color.Gray{Y: 90}
		band.LineStyle.Width = vg.Points(0.5)
		p.Add(band)

		text := b.Name
		if b.SkinFriction != nil {
			text += fmt.Sprintf("  fs=%.0f kPa", *b.SkinFriction)
		}
		if b.EndBearing != nil {
			text += fmt.Sprintf("  qb=%.0f kPa", *b.EndBearing)
		}
		if b.Governs {
			text += " (governs)"
		}
		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: columnWidth * 0.62, Y: y(top + (bottom-top)/2)}},
			Labels: []string{text},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}

	// End bearing zone
	zoneTop := math.Max(data.ZoneTopDepth, 0)
	if data.ZoneBottomDepth > zoneTop {
		zone, err := plotter.NewPolygon(rect(0, columnWidth, y(zoneTop), y(data.ZoneBottomDepth)))
		if err != nil {
			return err
		}
		zone.Color = color.RGBA{R: 100, G: 149, B: 237, A: 110}
		zone.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		zone.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(zone)
	}

	// Pile shaft
	pileHalf := columnWidth * 0.04
	if data.PileBaseDepth > 0 {
		shaft, err := plotter.NewPolygon(rect(columnWidth*0.3-pileHalf, columnWidth*0.3+pileHalf, y(0), y(data.PileBaseDepth)))
		if err != nil {
			return err
		}
		shaft.Color = color.Gray{Y: 70}
		shaft.LineStyle.Color = color.Black
		p.Add(shaft)
	}

	// Ground line
	ground, err := plotter.NewLine(plotter.XYs{{X: -0.5, Y: 0}, {X: columnWidth + 0.5, Y: 0}})
	if err != nil {
		return err
	}
	ground.LineStyle.Width = vg.Points(2)
	ground.LineStyle.Color = color.RGBA{R: 0, G: 120, B: 0, A: 255}
	p.Add(ground)

	// Pile base marker
	base, err := plotter.NewScatter(plotter.XYs{{X: columnWidth * 0.3, Y: y(data.PileBaseDepth)}})
	if err != nil {
		return err
	}
	base.GlyphStyle.Color = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	base.GlyphStyle.Radius = vg.Points(4)
	base.GlyphStyle.Shape = draw.TriangleGlyph{}
	p.Add(base)

	summary, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{{X: 0.2, Y: y(maxDepth) + 0.02*maxDepth}},
		Labels: []string{fmt.Sprintf("D=%.2f m  Qs=%.0f kN  Qb=%.0f kN  Q=%.0f kN",
			data.Diameter, data.SkinFriction, data.EndBearing, data.Total)},
	})
	if err != nil {
		return err
	}
	p.Add(summary)

	p.X.Min, p.X.Max = -0.5, columnWidth+0.5
	p.Y.Min, p.Y.Max = y(maxDepth), math.Max(0.05*maxDepth, -math.Min(data.ZoneTopDepth, 0))

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

// ExportCapacityCurve exports capacity against pile depth to an image file
func ExportCapacityCurve(points []pile.DepthPoint, filename string) error {
	if len(points) == 0 {
		return fmt.Errorf("no capacity points to plot")
	}

	p := plot.New()
	p.Title.Text = "Allowable Capacity vs Pile Depth"
	p.X.Label.Text = "Capacity (kN)"
	p.Y.Label.Text = "Pile depth (m)"
	p.Y.Tick.Marker = depthTicks{}
	p.Legend.Top = true

	var skin, end, total plotter.XYs
	for _, pt := range points {
		skin = append(skin, plotter.XY{X: pt.SkinFriction, Y: -pt.Depth})
		if pt.OK {
			end = append(end, plotter.XY{X: pt.EndBearing, Y: -pt.Depth})
			total = append(total, plotter.XY{X: pt.Total, Y: -pt.Depth})
		}
	}

	series := []struct {
		name string
		pts  plotter.XYs
		col  color.Color
	}{
		{"Skin friction", skin, color.RGBA{R: 0, G: 0, B: 200, A: 255}},
		{"End bearing", end, color.RGBA{R: 0, G: 140, B: 0, A: 255}},
		{"Total", total, color.RGBA{R: 200, G: 0, B: 0, A: 255}},
	}
	for _, s := range series {
		if len(s.pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(s.pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = s.col
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Add(plotter.NewGrid())

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

func rect(x0, x1, yTop, yBottom float64) plotter.XYs {
	return plotter.XYs{
		{X: x0, Y: yTop},
		{X: x1, Y: yTop},
		{X: x1, Y: yBottom},
		{X: x0, Y: yBottom},
	}
}

// levelTicks labels the vertical axis with levels in the input convention
type levelTicks struct {
	data ProfileData
}

func (t levelTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = fmt.Sprintf("%.1f", t.data.levelOf(-ticks[i].Value))
		}
	}
	return ticks
}

// depthTicks shows depths as positive numbers on an axis drawn downwards
type depthTicks struct{}

func (depthTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = fmt.Sprintf("%g", math.Abs(ticks[i].Value))
		}
	}
	return ticks
}

// save writes the plot in the format given by the file extension, defaulting to png
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

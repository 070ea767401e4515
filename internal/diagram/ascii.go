package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gopile/internal/pile"
	"github.com/guptarohit/asciigraph"
)

var bandFills = []rune{'░', '▒', '·', '▓'}

// DrawSoilProfile creates an ASCII section through the soil column with the
// pile and its end bearing zone
func DrawSoilProfile(data ProfileData) string {
	var sb strings.Builder

	const rows = 24
	const width = 30

	maxDepth := data.displayDepth()
	scale := maxDepth / rows
	rowOf := func(depth float64) int {
		return int(math.Round(depth / scale))
	}

	baseRow := rowOf(data.PileBaseDepth)
	zoneTopRow := rowOf(math.Max(0, data.ZoneTopDepth))
	zoneBottomRow := rowOf(data.ZoneBottomDepth)

	boundaries := make(map[int]int)
	for i, b := range data.Bands {
		if b.TopDepth >= 0 && b.TopDepth <= maxDepth {
			boundaries[rowOf(b.TopDepth)] = i
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %10s   SOIL PROFILE\n", data.LevelLabel))
	sb.WriteString(fmt.Sprintf("  %10s   %s\n", "", strings.Repeat("─", width)))

	mid := width / 2
	for i := 0; i <= rows; i++ {
		depth := float64(i) * scale

		fill := ' '
		if idx := data.bandAt(depth); idx >= 0 {
			fill = bandFills[idx%len(bandFills)]
		}
		line := []rune(strings.Repeat(string(fill), width))

		_, isBoundary := boundaries[i]
		if isBoundary {
			line = []rune(strings.Repeat("─", width))
		}
		if i == 0 {
			line = []rune(strings.Repeat("▔", width))
		}

		// Pile shaft
		if i < baseRow {
			line[mid-1], line[mid] = '│', '│'
		} else if i == baseRow {
			line[mid-1], line[mid] = '└', '┘'
		}

		// Zone bracket
		zone := " "
		if i >= zoneTopRow && i <= zoneBottomRow {
			zone = "┃"
		}

		sb.WriteString(fmt.Sprintf("  %10.2f │%s│%s", data.levelOf(depth), string(line), zone))

		var notes []string
		if i == 0 {
			notes = append(notes, "ground")
		}
		if idx, ok := boundaries[i]; ok {
			notes = append(notes, fmt.Sprintf("%s (top %.2f)", data.Bands[idx].Name, data.Bands[idx].Top))
		}
		if i == baseRow {
			notes = append(notes, fmt.Sprintf("pile base %.2f", data.levelOf(data.PileBaseDepth)))
		}
		if len(notes) > 0 {
			sb.WriteString(" ◄─ " + strings.Join(notes, ", "))
		}
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	for i, b := range data.Bands {
		sb.WriteString(fmt.Sprintf("  %c%c%c = %s\n", bandFills[i%len(bandFills)], bandFills[i%len(bandFills)], bandFills[i%len(bandFills)], b.Name))
	}
	sb.WriteString("  │ │ = Pile shaft\n")
	sb.WriteString(fmt.Sprintf("  ┃   = End bearing zone (%.2f to %.2f %s)\n",
		data.levelOf(data.ZoneTopDepth), data.levelOf(data.ZoneBottomDepth), data.LevelLabel))

	return sb.String()
}

// DrawCapacityChart plots skin friction, end bearing and total capacity
// against pile depth. Depths without an end bearing value leave gaps.
func DrawCapacityChart(points []pile.DepthPoint) string {
	if len(points) < 2 {
		return ""
	}

	skin := make([]float64, len(points))
	end := make([]float64, len(points))
	total := make([]float64, len(points))
	for i, p := range points {
		skin[i] = p.SkinFriction
		end[i] = math.NaN()
		total[i] = math.NaN()
		if p.OK {
			end[i] = p.EndBearing
			total[i] = p.Total
		}
	}

	caption := fmt.Sprintf("Allowable capacity (kN) for pile depths %.1f m to %.1f m",
		points[0].Depth, points[len(points)-1].Depth)

	graph := asciigraph.PlotMany(
		[][]float64{skin, end, total},
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Green, asciigraph.Red),
		asciigraph.SeriesLegends("Skin friction", "End bearing", "Total"),
		asciigraph.Caption(caption),
	)

	return "\n" + graph + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

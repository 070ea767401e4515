package diagram

import (
	"math"

	"github.com/alexiusacademia/gopile/internal/pile"
	"github.com/alexiusacademia/gopile/internal/soil"
)

// Band is one soil layer as drawn, with depths measured down from the ground
type Band struct {
	Name         string
	Top          float64 // level in the input convention
	TopDepth     float64 // m below ground
	BottomDepth  float64 // m below ground
	SkinFriction *float64
	EndBearing   *float64
	InZone       bool
	Governs      bool
}

// ProfileData holds what the soil profile diagrams need.
// All depths are metres below ground, whatever the input convention.
type ProfileData struct {
	Title       string
	RL          bool
	LevelLabel  string // mbgl or mRL
	GroundLevel float64
	Diameter    float64

	Bands []Band

	PileBaseDepth   float64
	ZoneTopDepth    float64
	ZoneBottomDepth float64

	SkinFriction float64 // kN
	EndBearing   float64 // kN
	Total        float64 // kN
}

// NewProfileData converts a capacity result to diagram coordinates
func NewProfileData(title string, r *pile.Result) ProfileData {
	d := ProfileData{
		Title:        title,
		RL:           r.Convention == soil.RL,
		LevelLabel:   r.Convention.Label(),
		GroundLevel:  r.Extents.GroundLevel,
		Diameter:     r.Spec.Diameter,
		SkinFriction: r.SkinFriction,
		EndBearing:   r.EndBearing,
		Total:        r.Total,
	}

	d.PileBaseDepth = d.depthOf(r.Extents.PileBase)
	d.ZoneTopDepth = d.depthOf(r.Extents.ZoneTop)
	d.ZoneBottomDepth = d.depthOf(r.Extents.ZoneBottom)

	for i, l := range r.Layers {
		d.Bands = append(d.Bands, Band{
			Name:         soil.Layer{Name: l.Name}.DisplayName(i),
			Top:          l.Top,
			TopDepth:     d.depthOf(l.Top),
			BottomDepth:  d.depthOf(l.Bottom),
			SkinFriction: l.SkinFriction,
			EndBearing:   l.EndBearing,
			InZone:       l.InZone,
			Governs:      l.Governs,
		})
	}

	return d
}

func (d ProfileData) depthOf(level float64) float64 {
	if d.RL {
		return d.GroundLevel - level
	}
	return level - d.GroundLevel
}

func (d ProfileData) levelOf(depth float64) float64 {
	if d.RL {
		return d.GroundLevel - depth
	}
	return d.GroundLevel + depth
}

// displayDepth is how deep the drawings go: a little past the zone or the
// deepest layer top, whichever is lower
func (d ProfileData) displayDepth() float64 {
	deepest := math.Max(d.ZoneBottomDepth, d.PileBaseDepth)
	for _, b := range d.Bands {
		deepest = math.Max(deepest, b.TopDepth)
	}
	return deepest + math.Max(1, 0.15*deepest)
}

// bandAt returns the index of the band containing depth, or -1
func (d ProfileData) bandAt(depth float64) int {
	for i, b := range d.Bands {
		if depth >= b.TopDepth && depth < b.BottomDepth {
			return i
		}
	}
	return -1
}

package pile

import (
	"math"
	"sort"

	"github.com/alexiusacademia/gopile/internal/soil"
)

// calculation holds everything derived for one pass over the layers.
// It is built fresh on every call and never shared.
type calculation struct {
	spec   Spec
	dir    direction
	layers []soil.Layer // valid layers, ascending by level
	ext    Extents
}

// newCalculation checks the preconditions shared by both capacity components.
// It returns false when a required field is blank or no layer is valid.
func newCalculation(in Input) (*calculation, bool) {
	if !present(in.Diameter) || !present(in.Depth) || !present(in.ReductionFactor) {
		return nil, false
	}

	layers := normalizeLayers(in.Layers)
	if len(layers) == 0 {
		return nil, false
	}

	c := &calculation{
		spec: Spec{
			Diameter:        *in.Diameter,
			Depth:           *in.Depth,
			ReductionFactor: *in.ReductionFactor,
			ZoneMultiplier:  in.ZoneMultiplier,
		},
		dir:    newDirection(in.Convention),
		layers: layers,
	}
	c.ext = computeExtents(layers, c.spec, in.Convention, c.dir)
	return c, true
}

// normalizeLayers keeps layers with a usable top and sorts them by ascending level.
// Ascending order serves both conventions: the direction decides which
// neighbour is the deeper one.
func normalizeLayers(layers []soil.Layer) []soil.Layer {
	var valid []soil.Layer
	for _, l := range layers {
		if l.Valid() {
			valid = append(valid, l)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].TopLevel() < valid[j].TopLevel()
	})
	return valid
}

// computeExtents finds the ground level, the pile ends and the end bearing zone
func computeExtents(sorted []soil.Layer, spec Spec, c soil.Convention, dir direction) Extents {
	var ext Extents

	if c == soil.RL {
		ext.GroundLevel = math.Inf(-1)
		for _, l := range sorted {
			ext.GroundLevel = math.Max(ext.GroundLevel, l.TopLevel())
		}
	}

	ext.PileTop = ext.GroundLevel
	ext.PileBase = dir.down(ext.GroundLevel, spec.Depth)

	ext.ZoneTop = dir.up(ext.PileBase, spec.ZoneMultiplier*spec.Diameter)
	ext.ZoneBottom = dir.down(ext.PileBase, spec.Diameter)

	return ext
}

// layerBottom is the top of the next deeper layer, or the deepest layer's top
// pushed down by soil.DeepLayerMargin
func layerBottom(sorted []soil.Layer, i int, dir direction) float64 {
	if next := dir.deeperNeighbour(i, len(sorted)); next >= 0 {
		return sorted[next].TopLevel()
	}
	return dir.down(sorted[i].TopLevel(), soil.DeepLayerMargin)
}

// layerResults lists the layers from the ground surface down
func (c *calculation) layerResults() []LayerResult {
	results := make([]LayerResult, 0, len(c.layers))
	for i, l := range c.layers {
		results = append(results, LayerResult{
			Name:         l.Name,
			Top:          l.TopLevel(),
			Bottom:       layerBottom(c.layers, i, c.dir),
			SkinFriction: l.SkinFriction,
			EndBearing:   l.EndBearing,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return c.dir.isShallower(results[i].Top, results[j].Top)
	})
	return results
}

// skinFriction sums the shaft resistance of every layer the pile passes through.
// Each layer adds fs × πD × overlap × φ; layers without fs add nothing.
func (c *calculation) skinFriction(layers []LayerResult) float64 {
	var total float64

	for i := range layers {
		l := &layers[i]
		if !present(l.SkinFriction) {
			continue
		}

		overlapTop := c.dir.deeper(c.ext.PileTop, l.Top)
		overlapBottom := c.dir.shallower(c.ext.PileBase, l.Bottom)
		if !c.dir.isShallower(overlapTop, overlapBottom) {
			continue
		}

		l.Overlap = math.Abs(overlapBottom - overlapTop)
		surfaceArea := math.Pi * c.spec.Diameter * l.Overlap // m²
		l.Contribution = *l.SkinFriction * surfaceArea * c.spec.ReductionFactor
		total += l.Contribution
	}

	return total
}

// endBearing picks the lowest end bearing stress among the layers touching
// the zone around the pile base. It returns false when none has a value.
func (c *calculation) endBearing(layers []LayerResult) (float64, bool) {
	governing := -1

	for i := range layers {
		l := &layers[i]
		l.InZone = !(c.dir.isShallower(l.Bottom, c.ext.ZoneTop) || c.dir.isDeeper(l.Top, c.ext.ZoneBottom))
		if !l.InZone || !present(l.EndBearing) {
			continue
		}
		if governing < 0 || *l.EndBearing < *layers[governing].EndBearing {
			governing = i
		}
	}

	if governing < 0 {
		return 0, false
	}
	layers[governing].Governs = true
	return *layers[governing].EndBearing, true
}

// baseArea is the cross-sectional area of the pile tip (m²)
func (c *calculation) baseArea() float64 {
	return math.Pi * math.Pow(c.spec.Diameter/2, 2)
}

// SkinFriction returns the allowable shaft capacity (kN) rounded to a whole number.
// It returns false when a required input is missing.
func SkinFriction(in Input) (float64, bool) {
	c, ok := newCalculation(in)
	if !ok {
		return 0, false
	}
	return roundHalfUp(c.skinFriction(c.layerResults())), true
}

// EndBearing returns the allowable tip capacity (kN) rounded to a whole number.
// It returns false when a required input is missing or no layer in the zone
// has an end bearing value.
func EndBearing(in Input) (float64, bool) {
	c, ok := newCalculation(in)
	if !ok {
		return 0, false
	}
	q, ok := c.endBearing(c.layerResults())
	if !ok {
		return 0, false
	}
	return roundHalfUp(q * c.baseArea() * c.spec.ReductionFactor), true
}

func present(v *float64) bool {
	return v != nil && !math.IsNaN(*v)
}

// roundHalfUp rounds to the nearest integer with halves going up, so -2.5 becomes -2
func roundHalfUp(v float64) float64 {
	fl := math.Floor(v)
	if v-fl >= 0.5 {
		return fl + 1
	}
	return fl
}

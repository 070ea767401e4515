package pile

import (
	"math"

	"github.com/alexiusacademia/gopile/internal/soil"
)

// Validate collects every message about missing required inputs.
// It returns nil when the calculation can be attempted.
func Validate(in Input) error {
	var msgs []string

	if !present(in.Diameter) {
		msgs = append(msgs, MsgMissingDiameter)
	}
	if !present(in.Depth) {
		msgs = append(msgs, MsgMissingDepth)
	}
	if !present(in.ReductionFactor) {
		msgs = append(msgs, MsgMissingReductionFactor)
	}
	if len(normalizeLayers(in.Layers)) == 0 {
		msgs = append(msgs, MsgNoLayers)
	}

	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

// Calculate computes the allowable skin friction, end bearing and total capacity of a pile.
//
// A *ValidationError is returned when required inputs are missing, and
// ErrNoApplicableData when no layer in range carries the needed stress value.
func Calculate(in Input) (*Result, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	c, ok := newCalculation(in)
	if !ok {
		return nil, ErrNoApplicableData
	}

	layers := c.layerResults()
	skin := c.skinFriction(layers)
	q, ok := c.endBearing(layers)
	if !ok {
		return nil, ErrNoApplicableData
	}

	result := &Result{
		Spec:                c.spec,
		Convention:          in.Convention,
		Extents:             c.ext,
		Layers:              layers,
		GoverningEndBearing: q,
		BaseArea:            c.baseArea(),
	}
	if result.Convention == "" {
		result.Convention = soil.BGL
	}

	result.SkinFriction = roundHalfUp(skin)
	result.EndBearing = roundHalfUp(q * result.BaseArea * c.spec.ReductionFactor)
	result.Total = result.SkinFriction + result.EndBearing

	if math.IsNaN(result.Total) || math.IsInf(result.Total, 0) {
		return nil, ErrNoApplicableData
	}

	return result, nil
}

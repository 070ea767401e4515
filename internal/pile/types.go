package pile

import (
	"errors"
	"strings"

	"github.com/alexiusacademia/gopile/internal/soil"
)

// Input is a fully-formed capacity problem as read from the user.
// Nil fields were left blank.
type Input struct {
	// Pile geometry (m)
	Diameter *float64
	Depth    *float64

	// Strength reduction factor applied to both components.
	// Values outside (0, 1] are accepted as given.
	ReductionFactor *float64

	// End bearing zone extends ZoneMultiplier × diameter above the pile base
	// and 1 × diameter below it
	ZoneMultiplier float64

	Convention soil.Convention
	Layers     []soil.Layer
}

// Spec is the pile once all required fields are known
type Spec struct {
	Diameter        float64 // m
	Depth           float64 // m
	ReductionFactor float64
	ZoneMultiplier  float64
}

// Extents holds the levels derived for one calculation
type Extents struct {
	GroundLevel float64
	PileTop     float64
	PileBase    float64

	// End bearing zone, ZoneTop is the shallower bound
	ZoneTop    float64
	ZoneBottom float64
}

// LayerResult describes how one layer took part in the calculation
type LayerResult struct {
	Name         string
	Top          float64
	Bottom       float64
	SkinFriction *float64 // kPa
	EndBearing   *float64 // kPa

	Overlap      float64 // length of pile shaft within the layer (m)
	Contribution float64 // unrounded skin friction contribution (kN)
	InZone       bool    // layer touches the end bearing zone
	Governs      bool    // layer supplies the governing end bearing value
}

// Result holds the capacity of a pile
type Result struct {
	Spec       Spec
	Convention soil.Convention
	Extents    Extents
	Layers     []LayerResult

	// Allowable capacities (kN), rounded to whole numbers
	SkinFriction float64
	EndBearing   float64
	Total        float64

	// Governing end bearing stress (kPa) and pile base area (m²)
	GoverningEndBearing float64
	BaseArea            float64
}

// ErrNoApplicableData is returned when the inputs are complete but no layer
// in range carries the stress value a component needs.
var ErrNoApplicableData = errors.New("Unable to calculate capacity. Please check your inputs.")

// Validation messages
const (
	MsgMissingDiameter        = "Please enter pile diameter to get capacity"
	MsgMissingDepth           = "Please enter pile depth to get capacity"
	MsgMissingReductionFactor = "Please enter strength reduction factor to get capacity"
	MsgNoLayers               = "Please enter at least one soil layer to get capacity"
)

// ValidationError lists every missing or invalid input
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "\n")
}

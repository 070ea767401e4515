package soil

import (
	"fmt"
	"math"
	"strings"
)

// DeepLayerMargin is how far the deepest layer extends beyond its own top (m).
// It stands in for an unbounded bottom.
const DeepLayerMargin = 1000.0

// Convention is the depth reference used for layer tops
type Convention string

const (
	// BGL measures depth below ground level: 0 is the ground surface, larger is deeper
	BGL Convention = "bgl"
	// RL measures reduced level (elevation): larger is higher, smaller is deeper
	RL Convention = "rl"
)

// ParseConvention accepts bgl/mbgl and rl/mrl in any case
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bgl", "mbgl":
		return BGL, nil
	case "rl", "mrl":
		return RL, nil
	}
	return "", fmt.Errorf("unknown depth convention %q (use bgl or rl)", s)
}

// Label returns the unit label shown next to levels
func (c Convention) Label() string {
	if c == RL {
		return "mRL"
	}
	return "mbgl"
}

// Layer is one soil layer as entered by the user.
// A nil field means the value was left blank.
type Layer struct {
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	Top          *float64 `json:"top" yaml:"top"`                                       // m (mbgl or mRL)
	SkinFriction *float64 `json:"skin_friction,omitempty" yaml:"skin_friction,omitempty"` // kPa
	EndBearing   *float64 `json:"end_bearing,omitempty" yaml:"end_bearing,omitempty"`     // kPa
}

// Valid reports whether the layer has a usable top level
func (l Layer) Valid() bool {
	return l.Top != nil && !math.IsNaN(*l.Top)
}

// TopLevel returns the top level of a valid layer
func (l Layer) TopLevel() float64 {
	return *l.Top
}

// DisplayName returns the layer name, or a numbered fallback
func (l Layer) DisplayName(index int) string {
	if l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("Layer %d", index+1)
}

// PileInput holds the pile fields of a profile file
type PileInput struct {
	Diameter        *float64 `json:"diameter,omitempty" yaml:"diameter,omitempty"`                 // m
	Depth           *float64 `json:"depth,omitempty" yaml:"depth,omitempty"`                       // m
	ReductionFactor *float64 `json:"reduction_factor,omitempty" yaml:"reduction_factor,omitempty"` // φ
	ZoneMultiplier  *float64 `json:"zone_multiplier,omitempty" yaml:"zone_multiplier,omitempty"`   // × diameter above base
}

// Profile is a complete problem definition read from a file
type Profile struct {
	Name        string     `json:"name,omitempty" yaml:"name,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Convention  Convention `json:"convention,omitempty" yaml:"convention,omitempty"` // blank when the file gives none
	Pile        PileInput  `json:"pile" yaml:"pile"`
	Layers      []Layer    `json:"layers" yaml:"layers"`
}

// Float returns a pointer to v, for building layers in code
func Float(v float64) *float64 {
	return &v
}

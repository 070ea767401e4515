package cmd

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gopile/internal/config"
	"github.com/alexiusacademia/gopile/internal/pile"
	"github.com/alexiusacademia/gopile/internal/soil"
)

// capacityOptions holds the raw flag values of the capacity command
type capacityOptions struct {
	file            string
	diameter        float64
	depth           float64
	reductionFactor float64
	zoneMultiplier  float64
	convention      string
	layers          []string

	from float64
	to   float64
	step float64
}

// resolveInput merges the profile file, flags and config into one calculation input.
// A flag overrides the file, the file overrides config. Layers given as flags
// replace the layers of the file.
func resolveInput(o capacityOptions, changed func(string) bool, c *config.Config) (pile.Input, *soil.Profile, error) {
	profile := &soil.Profile{}
	if o.file != "" {
		p, err := soil.LoadFromFile(o.file)
		if err != nil {
			return pile.Input{}, nil, fmt.Errorf("failed to load soil profile: %w", err)
		}
		profile = p
	}

	in := pile.Input{
		Diameter:        profile.Pile.Diameter,
		Depth:           profile.Pile.Depth,
		ReductionFactor: profile.Pile.ReductionFactor,
		Convention:      profile.Convention,
		Layers:          profile.Layers,
	}

	if changed("diameter") {
		in.Diameter = soil.Float(o.diameter)
	}
	if changed("depth") {
		in.Depth = soil.Float(o.depth)
	}

	switch {
	case changed("reduction-factor"):
		in.ReductionFactor = soil.Float(o.reductionFactor)
	case in.ReductionFactor == nil && c.Pile.ReductionFactor > 0:
		// A zero config value leaves the factor blank so it must be given
		in.ReductionFactor = soil.Float(c.Pile.ReductionFactor)
	}

	switch {
	case changed("zone-multiplier"):
		in.ZoneMultiplier = o.zoneMultiplier
	case profile.Pile.ZoneMultiplier != nil:
		in.ZoneMultiplier = *profile.Pile.ZoneMultiplier
	default:
		in.ZoneMultiplier = c.Pile.ZoneMultiplier
	}
	if in.ZoneMultiplier < 0 || math.IsNaN(in.ZoneMultiplier) {
		return pile.Input{}, nil, fmt.Errorf("zone multiplier must not be negative, got %v", in.ZoneMultiplier)
	}

	convention := ""
	switch {
	case changed("convention"):
		convention = o.convention
	case profile.Convention != "":
		convention = string(profile.Convention)
	default:
		convention = c.Pile.Convention
	}
	conv, err := soil.ParseConvention(convention)
	if err != nil {
		return pile.Input{}, nil, err
	}
	in.Convention = conv

	if len(o.layers) > 0 {
		in.Layers = make([]soil.Layer, 0, len(o.layers))
		for _, spec := range o.layers {
			l, err := soil.ParseLayer(spec)
			if err != nil {
				return pile.Input{}, nil, err
			}
			in.Layers = append(in.Layers, l)
		}
	}

	return in, profile, nil
}

// depthRange returns the capacity versus depth range. Without --to the sweep
// runs to one and a half times the pile depth, or 10 m for a zero depth.
func depthRange(o capacityOptions, changed func(string) bool, in pile.Input, c *config.Config) (from, to, step float64) {
	from, to, step = o.from, o.to, o.step
	if !changed("step") {
		step = c.Profile.Step
	}
	if !changed("to") {
		to = 10
		if in.Depth != nil && *in.Depth > 0 {
			to = math.Max(*in.Depth*1.5, from+step)
		}
	}
	return from, to, step
}

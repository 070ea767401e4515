package soil

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber converts a raw field to an optional number.
// Blank or non-numeric input yields nil, the same as an empty form field.
func ParseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseLayer parses a layer written as "name:top:skin_friction:end_bearing".
// Trailing fields may be omitted and any field may be left empty, e.g. "Clay:0:50" or ":12::4500".
func ParseLayer(spec string) (Layer, error) {
	parts := strings.Split(spec, ":")
	if len(parts) > 4 {
		return Layer{}, fmt.Errorf("invalid layer %q: expected name:top:skin_friction:end_bearing", spec)
	}
	for len(parts) < 4 {
		parts = append(parts, "")
	}

	return Layer{
		Name:         strings.TrimSpace(parts[0]),
		Top:          ParseNumber(parts[1]),
		SkinFriction: ParseNumber(parts[2]),
		EndBearing:   ParseNumber(parts[3]),
	}, nil
}

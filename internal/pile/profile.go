package pile

import (
	"errors"
	"fmt"
	"math"
)

// DepthPoint is the capacity of the same pile installed to one depth
type DepthPoint struct {
	Depth        float64 // m
	SkinFriction float64 // kN
	EndBearing   float64 // kN
	Total        float64 // kN
	OK           bool    // false when no end bearing value applies at this depth
}

// maxProfilePoints bounds the number of depths evaluated by Profile
const maxProfilePoints = 10000

// Profile evaluates the pile at depths from, from+step, ... up to and including to.
// The Depth field of in is ignored. Depths where no end bearing value applies
// are returned with OK set to false.
func Profile(in Input, from, to, step float64) ([]DepthPoint, error) {
	for _, v := range []float64{from, to, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("depth range values must be finite, got %v to %v step %v", from, to, step)
		}
	}
	if step <= 0 {
		return nil, fmt.Errorf("depth step must be positive, got %.3f", step)
	}
	if from < 0 || to < from {
		return nil, fmt.Errorf("invalid depth range %.3f to %.3f", from, to)
	}

	// The count is checked as a float, it can exceed the int range
	count := math.Floor((to-from)/step+1e-9) + 1
	if math.IsInf(count, 0) || count > maxProfilePoints {
		return nil, fmt.Errorf("depth range gives %.0f points, limit is %d", count, maxProfilePoints)
	}
	n := int(count)

	points := make([]DepthPoint, 0, n)
	for k := 0; k < n; k++ {
		depth := from + float64(k)*step
		at := in
		at.Depth = &depth

		point := DepthPoint{Depth: depth}
		result, err := Calculate(at)
		switch {
		case err == nil:
			point.SkinFriction = result.SkinFriction
			point.EndBearing = result.EndBearing
			point.Total = result.Total
			point.OK = true
		case errors.Is(err, ErrNoApplicableData):
			if skin, ok := SkinFriction(at); ok {
				point.SkinFriction = skin
			}
		default:
			return nil, err
		}
		points = append(points, point)
	}

	return points, nil
}

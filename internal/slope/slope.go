// Package slope converts between slope angles and V:H ratios and solves the
// right triangle formed by a slope's rise and run.
package slope

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Ratio is a slope written as Vertical V : Horizontal H
type Ratio struct {
	Vertical   float64
	Horizontal float64
}

var ratioPattern = regexp.MustCompile(`^(\d+\.?\d*)\s*[Vv]\s*:\s*(\d+\.?\d*)\s*[Hh]$`)

// ParseRatio reads ratios such as "1V:2H", "2v : 3h" or "1.5V:4H"
func ParseRatio(s string) (Ratio, error) {
	m := ratioPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Ratio{}, errors.New("invalid ratio format. Please use format like 1V:1H or 2V:3H")
	}

	v, _ := strconv.ParseFloat(m[1], 64)
	h, _ := strconv.ParseFloat(m[2], 64)
	if v <= 0 || h <= 0 {
		return Ratio{}, errors.New("both vertical and horizontal values must be positive numbers")
	}

	return Ratio{Vertical: v, Horizontal: h}, nil
}

// Normalize scales the ratio so the vertical part is 1
func (r Ratio) Normalize() Ratio {
	return Ratio{Vertical: 1, Horizontal: r.Horizontal / r.Vertical}
}

// String formats the normalized ratio as 1V:xH with one decimal
func (r Ratio) String() string {
	return fmt.Sprintf("1V:%.1fH", r.Normalize().Horizontal)
}

// AngleToRatio converts an angle from horizontal (degrees, 0 ≤ angle < 90) to a ratio
func AngleToRatio(angle float64) (Ratio, error) {
	if math.IsNaN(angle) || angle < 0 || angle >= 90 {
		return Ratio{}, errors.New("angle must be a number between 0 and 90 degrees")
	}
	return Ratio{Vertical: 1, Horizontal: 1 / math.Tan(toRadians(angle))}, nil
}

// RatioToAngle returns the angle from horizontal in degrees
func RatioToAngle(r Ratio) float64 {
	n := r.Normalize()
	return toDegrees(math.Atan(1 / n.Horizontal))
}

// Triangle holds the rise, run and angle of a slope
type Triangle struct {
	Vertical   float64
	Horizontal float64
	Angle      float64 // degrees from horizontal
}

// SolveTriangle computes the missing side or angle. Exactly two of the three
// values must be given; nil marks the unknown.
func SolveTriangle(vertical, horizontal, angle *float64) (Triangle, error) {
	given := 0
	for _, v := range []*float64{vertical, horizontal, angle} {
		if v != nil {
			given++
		}
	}
	switch given {
	case 0:
		return Triangle{}, errors.New("please enter at least two values")
	case 1:
		return Triangle{}, errors.New("please enter two values to calculate the third")
	case 3:
		return Triangle{}, errors.New("please leave one field empty to calculate it")
	}

	if vertical != nil && (math.IsNaN(*vertical) || *vertical < 0) {
		return Triangle{}, errors.New("vertical must be a positive number")
	}
	if horizontal != nil && (math.IsNaN(*horizontal) || *horizontal < 0) {
		return Triangle{}, errors.New("horizontal must be a positive number")
	}
	if angle != nil && (math.IsNaN(*angle) || *angle < 0 || *angle >= 90) {
		return Triangle{}, errors.New("angle must be a number between 0 and 90 degrees")
	}

	switch {
	case vertical == nil:
		return Triangle{
			Vertical:   *horizontal * math.Tan(toRadians(*angle)),
			Horizontal: *horizontal,
			Angle:      *angle,
		}, nil
	case horizontal == nil:
		return Triangle{
			Vertical:   *vertical,
			Horizontal: *vertical / math.Tan(toRadians(*angle)),
			Angle:      *angle,
		}, nil
	default:
		return Triangle{
			Vertical:   *vertical,
			Horizontal: *horizontal,
			Angle:      toDegrees(math.Atan(*vertical / *horizontal)),
		}, nil
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

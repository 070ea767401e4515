package pile

import (
	"errors"
	"math"
	"testing"
)

func TestProfile(t *testing.T) {
	in := bglInput(0,
		layer("Clay", 0, f(50), f(100)),
		layer("Sand", 10, f(80), nil),
	)

	points, err := Profile(in, 0, 20, 0.5)
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if len(points) != 41 {
		t.Fatalf("len(points) = %d, want 41", len(points))
	}
	if points[40].Depth != 20 {
		t.Errorf("last depth = %v, want 20", points[40].Depth)
	}

	for i := 1; i < len(points); i++ {
		if points[i].SkinFriction < points[i-1].SkinFriction {
			t.Errorf("skin friction drops from %v to %v at %v m",
				points[i-1].SkinFriction, points[i].SkinFriction, points[i].Depth)
		}
	}

	// Sand has no end bearing, so only shallow tips have a total
	if !points[0].OK {
		t.Error("expected a result at 0 m")
	}
	if points[40].OK {
		t.Error("expected no end bearing at 20 m")
	}
	if points[40].SkinFriction != 1225 {
		t.Errorf("skin friction at 20 m = %v, want 1225", points[40].SkinFriction)
	}
}

func TestProfile_InvalidRange(t *testing.T) {
	in := bglInput(0, layer("Clay", 0, f(50), f(100)))

	tests := []struct {
		name           string
		from, to, step float64
	}{
		{"zero step", 0, 10, 0},
		{"reversed", 10, 5, 1},
		{"negative start", -1, 5, 1},
		{"too many points", 0, 1000, 0.001},
		{"nan end", 0, math.NaN(), 0.5},
		{"infinite end", 0, math.Inf(1), 0.5},
		{"nan start", math.NaN(), 10, 0.5},
		{"nan step", 0, 10, math.NaN()},
		{"huge end", 0, 1e300, 0.5},
		{"tiny step", 0, 10, 1e-300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Profile(in, tt.from, tt.to, tt.step); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestProfile_MissingInputs(t *testing.T) {
	in := bglInput(0, layer("Clay", 0, f(50), f(100)))
	in.Diameter = nil

	_, err := Profile(in, 0, 5, 1)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Profile() error = %v, want *ValidationError", err)
	}
}

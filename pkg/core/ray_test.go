package core

import "testing"

func TestRayPosition(t *testing.T) {
	r := NewRay(NewPoint(2, 3, 4), NewVector(1, 0, 0))
	tests := []struct {
		t    float64
		want Point
	}{
		{0, NewPoint(2, 3, 4)},
		{1, NewPoint(3, 3, 4)},
		{-1, NewPoint(1, 3, 4)},
		{2.5, NewPoint(4.5, 3, 4)},
	}
	for _, tt := range tests {
		if got := r.Position(tt.t); !got.Equals(tt.want) {
			t.Errorf("Position(%v): expected %v, got %v", tt.t, tt.want, got)
		}
	}
}

func TestRayTransformTranslate(t *testing.T) {
	r := NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))
	out := r.Transform(Translation(3, 4, 5))
	if !out.Origin.Equals(NewPoint(4, 6, 8)) {
		t.Errorf("Expected origin (4, 6, 8), got %v", out.Origin)
	}
	if !out.Direction.Equals(NewVector(0, 1, 0)) {
		t.Errorf("Expected direction (0, 1, 0), got %v", out.Direction)
	}
	// source ray is untouched
	if !r.Origin.Equals(NewPoint(1, 2, 3)) {
		t.Errorf("Source ray mutated: %v", r.Origin)
	}
}

func TestRayTransformScale(t *testing.T) {
	r := NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))
	out := r.Transform(Scaling(2, 3, 4))
	if !out.Origin.Equals(NewPoint(2, 6, 12)) {
		t.Errorf("Expected origin (2, 6, 12), got %v", out.Origin)
	}
	if !out.Direction.Equals(NewVector(0, 3, 0)) {
		t.Errorf("Expected direction (0, 3, 0), got %v", out.Direction)
	}
}

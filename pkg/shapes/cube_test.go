package shapes

import (
	"testing"

	"github.com/thommay/ray-trace-challenge/pkg/core"
)

func TestCubeIntersect(t *testing.T) {
	c := NewCube()
	tests := []struct {
		name      string
		origin    core.Point
		direction core.Vector
		t1, t2    float64
	}{
		{"+x", core.NewPoint(5, 0.5, 0), core.NewVector(-1, 0, 0), 4, 6},
		{"-x", core.NewPoint(-5, 0.5, 0), core.NewVector(1, 0, 0), 4, 6},
		{"+y", core.NewPoint(0.5, 5, 0), core.NewVector(0, -1, 0), 4, 6},
		{"-y", core.NewPoint(0.5, -5, 0), core.NewVector(0, 1, 0), 4, 6},
		{"+z", core.NewPoint(0.5, 0, 5), core.NewVector(0, 0, -1), 4, 6},
		{"-z", core.NewPoint(0.5, 0, -5), core.NewVector(0, 0, 1), 4, 6},
		{"inside", core.NewPoint(0, 0.5, 0), core.NewVector(0, 0, 1), -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := c.LocalIntersect(core.NewRay(tt.origin, tt.direction))
			if len(xs) != 2 {
				t.Fatalf("Expected 2 intersections, got %d", len(xs))
			}
			if xs[0].T != tt.t1 || xs[1].T != tt.t2 {
				t.Errorf("Expected t={%v, %v}, got {%v, %v}", tt.t1, tt.t2, xs[0].T, xs[1].T)
			}
		})
	}
}

func TestCubeIntersectMiss(t *testing.T) {
	c := NewCube()
	tests := []struct {
		origin    core.Point
		direction core.Vector
	}{
		{core.NewPoint(-2, 0, 0), core.NewVector(0.2673, 0.5345, 0.8018)},
		{core.NewPoint(0, -2, 0), core.NewVector(0.8018, 0.2673, 0.5345)},
		{core.NewPoint(0, 0, -2), core.NewVector(0.5345, 0.8018, 0.2673)},
		{core.NewPoint(2, 0, 2), core.NewVector(0, 0, -1)},
		{core.NewPoint(0, 2, 2), core.NewVector(0, -1, 0)},
		{core.NewPoint(2, 2, 0), core.NewVector(1, 0, 0)},
	}
	for _, tt := range tests {
		if xs := c.LocalIntersect(core.NewRay(tt.origin, tt.direction)); len(xs) != 0 {
			t.Errorf("Ray from %v: expected miss, got %d intersections", tt.origin, len(xs))
		}
	}
}

func TestCubeNormal(t *testing.T) {
	c := NewCube()
	tests := []struct {
		point core.Point
		want  core.Vector
	}{
		{core.NewPoint(1, 0.5, -0.8), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -0.2, 0.9), core.NewVector(-1, 0, 0)},
		{core.NewPoint(-0.4, 1, -0.1), core.NewVector(0, 1, 0)},
		{core.NewPoint(0.3, -1, -0.7), core.NewVector(0, -1, 0)},
		{core.NewPoint(-0.6, 0.3, 1), core.NewVector(0, 0, 1)},
		{core.NewPoint(0.4, 0.4, -1), core.NewVector(0, 0, -1)},
		{core.NewPoint(1, 1, 1), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -1, -1), core.NewVector(-1, 0, 0)},
	}
	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point); !got.Equals(tt.want) {
			t.Errorf("Normal at %v: expected %v, got %v", tt.point, tt.want, got)
		}
	}
}

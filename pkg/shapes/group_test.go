package shapes

import (
	"math"
	"testing"

	"github.com/thommay/ray-trace-challenge/pkg/core"
)

func TestGroupAddChild(t *testing.T) {
	g := NewGroup()
	s := NewSphere()
	g.AddChild(s)
	if len(g.Children()) != 1 || g.Children()[0] != s {
		t.Errorf("Expected group to contain the sphere")
	}
	if s.Parent() != g {
		t.Errorf("Expected sphere's parent to be the group")
	}
}

func TestGroupIntersectEmpty(t *testing.T) {
	g := NewGroup()
	r := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	if xs := g.LocalIntersect(r); len(xs) != 0 {
		t.Errorf("Expected no intersections, got %d", len(xs))
	}
}

func TestGroupIntersectChildren(t *testing.T) {
	g := NewGroup()
	s1 := NewSphere()
	s2 := NewSphere()
	if err := s2.SetTransform(core.Translation(0, 0, -3)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s3 := NewSphere()
	if err := s3.SetTransform(core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g.AddChild(s1)
	g.AddChild(s2)
	g.AddChild(s3)

	r := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := g.LocalIntersect(r)
	if len(xs) != 4 {
		t.Fatalf("Expected 4 intersections, got %d", len(xs))
	}
	// sorted by t: s2 first (it sits closer), then s1
	if xs[0].Object != s2 || xs[1].Object != s2 || xs[2].Object != s1 || xs[3].Object != s1 {
		t.Errorf("Intersections out of order: %v", xs)
	}
}

func TestGroupIntersectTransformed(t *testing.T) {
	g := NewGroup()
	if err := g.SetTransform(core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s := NewSphere()
	if err := s.SetTransform(core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g.AddChild(s)

	r := core.NewRay(core.NewPoint(10, 0, -10), core.NewVector(0, 0, 1))
	if xs := Intersect(g, r); len(xs) != 2 {
		t.Errorf("Expected 2 intersections, got %d", len(xs))
	}
}

func TestWorldToObjectNested(t *testing.T) {
	g1 := NewGroup()
	if err := g1.SetTransform(core.RotationY(math.Pi / 2)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g2 := NewGroup()
	if err := g2.SetTransform(core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g1.AddChild(g2)
	s := NewSphere()
	if err := s.SetTransform(core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g2.AddChild(s)

	got := s.WorldToObject(core.NewPoint(-2, 0, -10))
	if !got.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("Expected (0, 0, -1), got %v", got)
	}
}

func TestNormalToWorldNested(t *testing.T) {
	g1 := NewGroup()
	if err := g1.SetTransform(core.RotationY(math.Pi / 2)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g2 := NewGroup()
	if err := g2.SetTransform(core.Scaling(1, 2, 3)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g1.AddChild(g2)
	s := NewSphere()
	if err := s.SetTransform(core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g2.AddChild(s)

	n := math.Sqrt(3) / 3
	got := s.NormalToWorld(core.NewVector(n, n, n))
	if !got.Round(10000).Equals(core.NewVector(0.2857, 0.4286, -0.8571)) {
		t.Errorf("Expected (0.2857, 0.4286, -0.8571), got %v", got.Round(10000))
	}
}

func TestNormalAtOnGroupedChild(t *testing.T) {
	g1 := NewGroup()
	if err := g1.SetTransform(core.RotationY(math.Pi / 2)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g2 := NewGroup()
	if err := g2.SetTransform(core.Scaling(1, 2, 3)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g1.AddChild(g2)
	s := NewSphere()
	if err := s.SetTransform(core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g2.AddChild(s)

	got := NormalAt(s, core.NewPoint(1.7321, 1.1547, -5.5774))
	if !got.Round(10000).Equals(core.NewVector(0.2857, 0.4286, -0.8571)) {
		t.Errorf("Expected (0.2857, 0.4286, -0.8571), got %v", got.Round(10000))
	}
}

package shapes

import "github.com/thommay/ray-trace-challenge/pkg/core"

// Group is a container shape: it has no surface of its own, existing to
// attach a shared transform to its children and chain their coordinate
// spaces. Parent references are non-owning; the tree structure is
// acyclic by construction.
type Group struct {
	common
	children []Shape
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{common: newCommon()}
}

// AddChild appends a child shape and records this group as its parent
func (g *Group) AddChild(child Shape) {
	child.SetParent(g)
	g.children = append(g.children, child)
}

// Children returns the group's child shapes
func (g *Group) Children() []Shape {
	return g.children
}

// LocalIntersect aggregates the intersections of every child against
// the group-local ray, sorted by t
func (g *Group) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	xs.Sort()
	return xs
}

// LocalNormalAt panics: normals always come from leaf shapes, so asking
// a group for one is a programming error, not a scene condition.
func (g *Group) LocalNormalAt(core.Point) core.Vector {
	panic("shapes: group has no local normal")
}

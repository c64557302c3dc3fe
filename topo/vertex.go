package topo

import "github.com/alxpettit/truck/geom"

// Vertex is a 3-D point with a unique topological identity. Immutable;
// shared by every edge that references it.
type Vertex struct {
	id ID
	pt geom.Point3
}

// NewVertex allocates a vertex at p with a fresh identity.
func NewVertex(p geom.Point3) *Vertex {
	return &Vertex{id: NewID(), pt: p}
}

// ID returns the identity token.
func (v *Vertex) ID() ID {
	return v.id
}

// Point returns the vertex location.
func (v *Vertex) Point() geom.Point3 {
	return v.pt
}

// SameVertex reports whether a and b are the same topological vertex.
// Coordinates play no part; two vertices at the same location are still
// distinct unless explicitly merged at construction time.
func SameVertex(a, b *Vertex) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.id == b.id
}

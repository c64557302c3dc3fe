package topo

import "github.com/alxpettit/truck/geom"

// edgeCore is the shared, orientation-free part of an edge: two vertex
// references bound to a curve whose domain runs front → back.
type edgeCore struct {
	id         ID
	front      *Vertex
	back       *Vertex
	curve      geom.Curve
	degenerate bool
}

// Edge is an oriented view of a shared edge core. The zero Edge is
// invalid; build edges with NewEdge (or builder.Edge, which also
// validates the geometry).
type Edge struct {
	core    *edgeCore
	forward bool
}

// NewEdge wires front and back to curve and returns the forward view.
// No geometric validation happens here — that is the builder's job; topo
// only records structure.
func NewEdge(front, back *Vertex, curve geom.Curve) Edge {
	return Edge{
		core:    &edgeCore{id: NewID(), front: front, back: back, curve: curve},
		forward: true,
	}
}

// NewDegenerateEdge builds an edge whose both ends are the same vertex
// and which is flagged degenerate. Revolution builders emit these as apex
// seams where a profile touches the axis; the validator treats their
// single reference as legal closure.
func NewDegenerateEdge(v *Vertex, curve geom.Curve) Edge {
	return Edge{
		core:    &edgeCore{id: NewID(), front: v, back: v, curve: curve, degenerate: true},
		forward: true,
	}
}

// ID returns the identity of the shared core; both orientations of an
// edge report the same ID.
func (e Edge) ID() ID {
	return e.core.id
}

// Forward reports the view's direction relative to the core.
func (e Edge) Forward() bool {
	return e.forward
}

// Inverse returns the opposite view of the same core. Inverse of inverse
// is the original view.
func (e Edge) Inverse() Edge {
	e.forward = !e.forward

	return e
}

// Front returns the vertex the oriented edge starts at.
func (e Edge) Front() *Vertex {
	if e.forward {
		return e.core.front
	}

	return e.core.back
}

// Back returns the vertex the oriented edge ends at.
func (e Edge) Back() *Vertex {
	if e.forward {
		return e.core.back
	}

	return e.core.front
}

// Ends returns (Front, Back) in one call.
func (e Edge) Ends() (*Vertex, *Vertex) {
	return e.Front(), e.Back()
}

// AbsFront returns the core's front vertex regardless of orientation.
func (e Edge) AbsFront() *Vertex {
	return e.core.front
}

// AbsBack returns the core's back vertex regardless of orientation.
func (e Edge) AbsBack() *Vertex {
	return e.core.back
}

// Curve returns the bound geometry handle in the core's own direction
// (domain start at AbsFront).
func (e Edge) Curve() geom.Curve {
	return e.core.curve
}

// OrientedCurve returns the curve as traversed by this view: the shared
// handle itself when forward, or a Reversed wrapper when not. The
// underlying geometry is never copied.
func (e Edge) OrientedCurve() geom.Curve {
	if e.forward {
		return e.core.curve
	}

	return geom.Reversed{C: e.core.curve}
}

// IsDegenerate reports the apex-seam flag.
func (e Edge) IsDegenerate() bool {
	return e.core.degenerate
}

// IsLoop reports whether both ends are the same vertex (closed curve or
// degenerate seam).
func (e Edge) IsLoop() bool {
	return SameVertex(e.core.front, e.core.back)
}

// Same reports whether a and b are views of the same edge core,
// regardless of orientation.
func Same(a, b Edge) bool {
	if a.core == nil || b.core == nil {
		return a.core == b.core
	}

	return a.core.id == b.core.id
}

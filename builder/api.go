// SPDX-License-Identifier: MIT
// Package: truck/builder
//
// api.go — the Kernel and the package-level convenience surface.

package builder

import (
	"github.com/alxpettit/truck/geom"
	"github.com/alxpettit/truck/tolerance"
	"github.com/alxpettit/truck/topo"
)

// Kernel is a construction context: one tolerance policy, one apex policy,
// applied uniformly to every shape built through it. A Kernel is immutable
// after New and safe for concurrent use.
type Kernel struct {
	pol  tolerance.Policy
	apex ApexPolicy
}

// New builds a Kernel with tolerance.Default() and AllowApex, then applies
// the options in order.
func New(opts ...Option) *Kernel {
	k := &Kernel{pol: tolerance.Default(), apex: AllowApex}
	for _, opt := range opts {
		opt(k)
	}

	return k
}

// Policy reports the tolerance policy the kernel decides with.
func (k *Kernel) Policy() tolerance.Policy {
	return k.pol
}

// std backs the package-level functions. Callers with their own policy
// should build a Kernel instead.
var std = New()

// Vertex builds a vertex at p through the default kernel.
func Vertex(p geom.Point3) *topo.Vertex { return std.Vertex(p) }

// Edge builds an edge over c from v0 to v1 through the default kernel.
func Edge(v0, v1 *topo.Vertex, c geom.Curve) (topo.Edge, error) {
	return std.Edge(v0, v1, c)
}

// Line builds a straight edge from v0 to v1 through the default kernel.
func Line(v0, v1 *topo.Vertex) (topo.Edge, error) { return std.Line(v0, v1) }

// Wire chains edges through the default kernel.
func Wire(edges ...topo.Edge) (topo.Wire, error) { return std.Wire(edges...) }

// Polyline builds a straight-edged wire over vertices through the default
// kernel.
func Polyline(closed bool, verts ...*topo.Vertex) (topo.Wire, error) {
	return std.Polyline(closed, verts...)
}

// Face builds a face on s bounded by the given wires through the default
// kernel.
func Face(s geom.Surface, outer topo.Wire, inners ...topo.Wire) (topo.Face, error) {
	return std.Face(s, outer, inners...)
}

// PlanarFace fits a plane to outer and builds a face on it through the
// default kernel.
func PlanarFace(outer topo.Wire, inners ...topo.Wire) (topo.Face, error) {
	return std.PlanarFace(outer, inners...)
}

// MergeVertices resolves two vertices into one through the default kernel.
func MergeVertices(a, b *topo.Vertex) (*topo.Vertex, error) {
	return std.MergeVertices(a, b)
}

// Extrude sweeps a profile linearly through the default kernel.
func Extrude(profile topo.Wire, dir geom.Vector3, length float64) (topo.Shell, error) {
	return std.Extrude(profile, dir, length)
}

// ExtrudeSolid sweeps a closed planar profile linearly and caps it,
// through the default kernel.
func ExtrudeSolid(profile topo.Wire, dir geom.Vector3, length float64) (topo.Solid, error) {
	return std.ExtrudeSolid(profile, dir, length)
}

// ExtrudeFace sweeps a face (holes included) linearly through the default
// kernel.
func ExtrudeFace(f topo.Face, dir geom.Vector3, length float64) (topo.Solid, error) {
	return std.ExtrudeFace(f, dir, length)
}

// Revolve sweeps a profile rotationally through the default kernel.
func Revolve(profile topo.Wire, axis geom.Axis, angle float64) (topo.Shell, error) {
	return std.Revolve(profile, axis, angle)
}

// RevolveSolid sweeps a closed profile rotationally into a solid through
// the default kernel.
func RevolveSolid(profile topo.Wire, axis geom.Axis, angle float64) (topo.Solid, error) {
	return std.RevolveSolid(profile, axis, angle)
}

// Loft skins ruled faces across sections through the default kernel.
func Loft(path geom.Curve, sections ...topo.Wire) (topo.Shell, error) {
	return std.Loft(path, sections...)
}

// LoftSolid skins closed sections and caps the ends through the default
// kernel.
func LoftSolid(path geom.Curve, sections ...topo.Wire) (topo.Solid, error) {
	return std.LoftSolid(path, sections...)
}

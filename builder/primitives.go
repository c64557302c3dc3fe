// SPDX-License-Identifier: MIT
// Package: truck/builder
//
// primitives.go — vertex, edge, wire, and face constructors.

package builder

import (
	"fmt"

	"github.com/alxpettit/truck/geom"
	"github.com/alxpettit/truck/tolerance"
	"github.com/alxpettit/truck/topo"
)

// edgeLengthSamples is the chord resolution of the edge degeneracy check.
const edgeLengthSamples = 16

// faceCheckSamples is the per-edge resolution of the on-surface audit and
// of sampled profile loops.
const faceCheckSamples = 8

// Vertex builds a vertex at p. Points are plain data; a vertex is always
// admissible.
func (k *Kernel) Vertex(p geom.Point3) *topo.Vertex {
	return topo.NewVertex(p)
}

// Edge builds an edge over c running from v0 to v1. The curve must span
// more than the point tolerance end to end, and its endpoints must land
// on the given vertices. A closed curve may use the same vertex twice.
//
// Complexity: O(edgeLengthSamples) curve evaluations.
func (k *Kernel) Edge(v0, v1 *topo.Vertex, c geom.Curve) (topo.Edge, error) {
	const op = "Edge"
	if v0 == nil || v1 == nil {
		return topo.Edge{}, opErrorf(op, ErrTopologicalInconsistency, "nil endpoint vertex")
	}
	if c == nil {
		return topo.Edge{}, opErrorf(op, ErrDegenerateGeometry, "nil curve")
	}

	length := geom.ApproxLength(c, edgeLengthSamples)
	switch k.pol.ClassifyDistance(length) {
	case tolerance.Coincident:
		return topo.Edge{}, opErrorf(op, ErrDegenerateGeometry,
			"curve length %.6g below point tolerance %.6g", length, k.pol.Point)
	case tolerance.Ambiguous:
		return topo.Edge{}, opErrorf(op, ErrToleranceAmbiguity,
			"curve length %.6g inside the ambiguity band around %.6g", length, k.pol.Point)
	}

	d := c.Domain()
	for _, end := range []struct {
		v  *topo.Vertex
		t  float64
		at string
	}{
		{v0, d.Min, "start"},
		{v1, d.Max, "end"},
	} {
		gap := end.v.Point().DistanceTo(c.PointAt(end.t))
		switch k.pol.ClassifyDistance(gap) {
		case tolerance.Coincident:
			// Vertex sits on the curve endpoint.
		case tolerance.Ambiguous:
			return topo.Edge{}, opErrorf(op, ErrToleranceAmbiguity,
				"vertex %s is %.6g off the curve %s, inside the ambiguity band around %.6g",
				end.v.ID(), gap, end.at, k.pol.Point)
		default:
			return topo.Edge{}, opErrorf(op, ErrDegenerateGeometry,
				"vertex %s is %.6g off the curve %s, tolerance %.6g",
				end.v.ID(), gap, end.at, k.pol.Point)
		}
	}

	return topo.NewEdge(v0, v1, c), nil
}

// Line builds a straight edge from v0 to v1. Coincident endpoints make a
// degenerate line; endpoints inside the ambiguity band are surfaced, not
// guessed at.
func (k *Kernel) Line(v0, v1 *topo.Vertex) (topo.Edge, error) {
	const op = "Line"
	if v0 == nil || v1 == nil {
		return topo.Edge{}, opErrorf(op, ErrTopologicalInconsistency, "nil endpoint vertex")
	}

	d := v0.Point().DistanceTo(v1.Point())
	switch k.pol.ClassifyDistance(d) {
	case tolerance.Coincident:
		return topo.Edge{}, opErrorf(op, ErrDegenerateGeometry,
			"endpoints %.6g apart, below point tolerance %.6g", d, k.pol.Point)
	case tolerance.Ambiguous:
		return topo.Edge{}, opErrorf(op, ErrToleranceAmbiguity,
			"endpoints %.6g apart, inside the ambiguity band around %.6g", d, k.pol.Point)
	}

	return topo.NewEdge(v0, v1, geom.Line{A: v0.Point(), B: v1.Point()}), nil
}

// Wire chains edges into a path. Consecutive edges must share their
// meeting vertex by identity; coordinates merely agreeing within
// tolerance is an unmerged coincidence and is rejected (merge with
// MergeVertices before building edges).
func (k *Kernel) Wire(edges ...topo.Edge) (topo.Wire, error) {
	const op = "Wire"
	if len(edges) == 0 {
		return topo.Wire{}, opErrorf(op, ErrTopologicalInconsistency, "no edges")
	}

	for i := 1; i < len(edges); i++ {
		prev, next := edges[i-1], edges[i]
		if topo.SameVertex(prev.Back(), next.Front()) {
			continue
		}
		d := prev.Back().Point().DistanceTo(next.Front().Point())
		switch k.pol.ClassifyDistance(d) {
		case tolerance.Coincident:
			return topo.Wire{}, opErrorf(op, ErrTopologicalInconsistency,
				"edges %d and %d meet within tolerance (%.6g) but with distinct vertex identities",
				i-1, i, d)
		case tolerance.Ambiguous:
			return topo.Wire{}, opErrorf(op, ErrToleranceAmbiguity,
				"edges %d and %d meet %.6g apart, inside the ambiguity band around %.6g",
				i-1, i, d, k.pol.Point)
		default:
			return topo.Wire{}, opErrorf(op, ErrTopologicalInconsistency,
				"edges %d and %d do not connect, gap %.6g", i-1, i, d)
		}
	}

	return topo.NewWire(edges...), nil
}

// Polyline builds a straight-edged wire visiting the vertices in order,
// appending a closing segment back to the first vertex when closed.
func (k *Kernel) Polyline(closed bool, verts ...*topo.Vertex) (topo.Wire, error) {
	const op = "Polyline"
	minVerts := 2
	if closed {
		minVerts = 3
	}
	if len(verts) < minVerts {
		return topo.Wire{}, opErrorf(op, ErrTopologicalInconsistency,
			"need at least %d vertices, got %d", minVerts, len(verts))
	}

	edges := make([]topo.Edge, 0, len(verts))
	for i := 1; i < len(verts); i++ {
		e, err := k.Line(verts[i-1], verts[i])
		if err != nil {
			return topo.Wire{}, fmt.Errorf("%s: segment %d: %w", op, i-1, err)
		}
		edges = append(edges, e)
	}
	if closed {
		e, err := k.Line(verts[len(verts)-1], verts[0])
		if err != nil {
			return topo.Wire{}, fmt.Errorf("%s: closing segment: %w", op, err)
		}
		edges = append(edges, e)
	}

	return topo.NewWire(edges...), nil
}

// Face builds a face on s bounded by outer and any hole wires. Every
// boundary must be a closed loop lying on the surface within the point
// tolerance.
//
// Complexity: O(edges · faceCheckSamples) surface projections.
func (k *Kernel) Face(s geom.Surface, outer topo.Wire, inners ...topo.Wire) (topo.Face, error) {
	const op = "Face"
	if s == nil {
		return topo.Face{}, opErrorf(op, ErrDegenerateGeometry, "nil surface")
	}

	for bi, w := range append([]topo.Wire{outer}, inners...) {
		if !w.IsClosed() {
			return topo.Face{}, opErrorf(op, ErrTopologicalInconsistency,
				"boundary %d is not a closed loop", bi)
		}
		if err := k.wireOnSurface(op, s, w); err != nil {
			return topo.Face{}, err
		}
	}

	return topo.NewFace(s, outer, inners...), nil
}

// PlanarFace fits a plane to the outer wire and builds a face on it. The
// profile must enclose area and be planar within the point tolerance.
func (k *Kernel) PlanarFace(outer topo.Wire, inners ...topo.Wire) (topo.Face, error) {
	const op = "PlanarFace"
	if !outer.IsClosed() {
		return topo.Face{}, opErrorf(op, ErrTopologicalInconsistency,
			"outer boundary is not a closed loop")
	}
	pl, err := k.fitPlane(op, outer)
	if err != nil {
		return topo.Face{}, err
	}

	return k.Face(pl, outer, inners...)
}

// MergeVertices resolves two vertices into one shared identity before any
// edges reference them. Coincident locations yield the first vertex (its
// coordinates win); anything farther apart than the tolerance is a
// violation, and the band in between is surfaced as ambiguity.
func (k *Kernel) MergeVertices(a, b *topo.Vertex) (*topo.Vertex, error) {
	const op = "MergeVertices"
	if a == nil || b == nil {
		return nil, opErrorf(op, ErrTopologicalInconsistency, "nil vertex")
	}
	if topo.SameVertex(a, b) {
		return a, nil
	}

	d := a.Point().DistanceTo(b.Point())
	switch k.pol.ClassifyDistance(d) {
	case tolerance.Coincident:
		return a, nil
	case tolerance.Ambiguous:
		return nil, opErrorf(op, ErrToleranceAmbiguity,
			"vertices %s and %s are %.6g apart, inside the ambiguity band around %.6g",
			a.ID(), b.ID(), d, k.pol.Point)
	default:
		return nil, opErrorf(op, ErrGeometricViolation,
			"vertices %s and %s are %.6g apart, beyond point tolerance %.6g",
			a.ID(), b.ID(), d, k.pol.Point)
	}
}

// wireOnSurface samples every edge of w and audits the distance to s.
func (k *Kernel) wireOnSurface(op string, s geom.Surface, w topo.Wire) error {
	for _, e := range w.Edges() {
		c := e.OrientedCurve()
		d := c.Domain()
		for j := 0; j <= faceCheckSamples; j++ {
			p := c.PointAt(d.At(float64(j) / faceCheckSamples))
			_, _, dist := geom.ProjectPoint(s, p)
			switch k.pol.ClassifyDistance(dist) {
			case tolerance.Coincident:
				// On the surface.
			case tolerance.Ambiguous:
				return opErrorf(op, ErrToleranceAmbiguity,
					"edge %s lies %.6g off the surface, inside the ambiguity band around %.6g",
					e.ID(), dist, k.pol.Point)
			default:
				return opErrorf(op, ErrGeometricViolation,
					"edge %s lies %.6g off the surface, tolerance %.6g",
					e.ID(), dist, k.pol.Point)
			}
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: truck/builder
//
// impl_revolve.go — rotational sweep.
//
// Orientation convention mirrors the linear sweep: side face boundaries
// run [bottom edge, arc at its back, top edge inverted, arc at its front
// inverted], with two collapses:
//
//   - full turn: the swept copy IS the profile (shared identity, no seam
//     duplicates), top edges are the bottom edges, and each arc closes
//     onto its own vertex;
//   - apex: a vertex on the axis is pinned, not copied, its arc vanishes,
//     and the adjacent side faces become three-sided (or two-sided when
//     both ends sit on the axis).

package builder

import (
	"math"

	"github.com/alxpettit/truck/geom"
	"github.com/alxpettit/truck/tolerance"
	"github.com/alxpettit/truck/topo"
	"github.com/alxpettit/truck/validate"
)

// interiorAxisSamples is the per-edge resolution of the interior
// axis-crossing audit. Endpoints are exempt (they may be apexes).
const interiorAxisSamples = 16

// Revolve sweeps a profile wire around axis by angle radians and returns
// the resulting shell. A negative angle revolves the other way. A full
// turn (within angular tolerance) closes onto the profile itself; a
// partial turn over a closed planar profile is capped at both ends. Open
// results are validated as open shells.
func (k *Kernel) Revolve(profile topo.Wire, axis geom.Axis, angle float64) (topo.Shell, error) {
	return k.revolveShell("Revolve", profile, axis, angle)
}

// RevolveSolid sweeps a profile into a solid. The swept shell must come
// out closed: a closed profile for a partial turn, or any profile whose
// full-turn sweep seals itself (endpoints on the axis count).
func (k *Kernel) RevolveSolid(profile topo.Wire, axis geom.Axis, angle float64) (topo.Solid, error) {
	const op = "RevolveSolid"
	shell, err := k.revolveShell(op, profile, axis, angle)
	if err != nil {
		return topo.Solid{}, err
	}
	if !shell.IsClosed() {
		return topo.Solid{}, opErrorf(op, ErrTopologicalInconsistency,
			"swept shell is open, profile does not seal the revolution")
	}

	solid := topo.NewSolid(shell)
	if err := validate.Solid(solid, k.pol); err != nil {
		return topo.Solid{}, opValidationError(op, err)
	}

	return solid, nil
}

// revolveShell assembles side faces, caps a partial turn over a closed
// profile, orients, and validates.
func (k *Kernel) revolveShell(op string, profile topo.Wire, axis geom.Axis, angle float64) (topo.Shell, error) {
	top, sides, full, err := k.revolveParts(op, profile, axis, angle)
	if err != nil {
		return topo.Shell{}, err
	}

	faces := sides
	if !full && profile.IsClosed() {
		startPlane, err := k.fitPlane(op, profile)
		if err != nil {
			return topo.Shell{}, err
		}
		endPlane, err := k.fitPlane(op, top)
		if err != nil {
			return topo.Shell{}, err
		}
		faces = append(faces,
			topo.NewFace(startPlane, profile).Inverse(),
			topo.NewFace(endPlane, top),
		)
	}

	shell := topo.NewShell(faces...)
	if shell.IsClosed() {
		shell = orientOutward(shell)
		if err := validate.Shell(shell, k.pol); err != nil {
			return topo.Shell{}, opValidationError(op, err)
		}

		return shell, nil
	}
	if err := validate.Shell(shell, k.pol, validate.Open()); err != nil {
		return topo.Shell{}, opValidationError(op, err)
	}

	return shell, nil
}

// revolveParts runs the sweep audits and builds the swept profile copy
// plus one side face per profile edge.
func (k *Kernel) revolveParts(op string, profile topo.Wire, axis geom.Axis, angle float64) (topo.Wire, []topo.Face, bool, error) {
	if err := checkProfile(op, profile); err != nil {
		return topo.Wire{}, nil, false, err
	}
	if k.pol.NearZero(axis.Dir.Norm()) {
		return topo.Wire{}, nil, false, opErrorf(op, ErrDegenerateGeometry,
			"axis direction has zero magnitude")
	}
	if angle < 0 {
		axis.Dir = axis.Dir.Neg()
		angle = -angle
	}
	if angle < k.pol.Angle {
		return topo.Wire{}, nil, false, opErrorf(op, ErrDegenerateGeometry,
			"revolution angle %.6g below angular tolerance %.6g", angle, k.pol.Angle)
	}
	if angle > 2*math.Pi+k.pol.Angle {
		return topo.Wire{}, nil, false, opErrorf(op, ErrGeometricViolation,
			"revolution angle %.6g exceeds a full turn", angle)
	}
	full := k.pol.FullTurn(angle)
	if full {
		// Snap so the seam closes numerically, not just within tolerance.
		angle = 2 * math.Pi
	}

	// Interior axis crossings self-intersect the sweep; endpoints are
	// legitimate apexes and are classified separately below.
	for _, e := range profile.Edges() {
		c := e.OrientedCurve()
		d := c.Domain()
		for j := 1; j < interiorAxisSamples; j++ {
			p := c.PointAt(d.At(float64(j) / interiorAxisSamples))
			switch k.pol.ClassifyDistance(axis.DistanceTo(p)) {
			case tolerance.Coincident:
				return topo.Wire{}, nil, false, opErrorf(op, ErrGeometricViolation,
					"edge %s touches the axis away from its endpoints", e.ID())
			case tolerance.Ambiguous:
				return topo.Wire{}, nil, false, opErrorf(op, ErrToleranceAmbiguity,
					"edge %s passes the axis inside the ambiguity band around %.6g",
					e.ID(), k.pol.Point)
			case tolerance.Distinct:
				// Clear of the axis.
			}
		}
	}

	apex := make(map[topo.ID]bool)
	for _, v := range profile.Vertices() {
		d := axis.DistanceTo(v.Point())
		switch k.pol.ClassifyDistance(d) {
		case tolerance.Coincident:
			if k.apex == RejectApex {
				return topo.Wire{}, nil, false, opErrorf(op, ErrGeometricViolation,
					"vertex %s lies on the revolution axis", v.ID())
			}
			apex[v.ID()] = true
		case tolerance.Ambiguous:
			return topo.Wire{}, nil, false, opErrorf(op, ErrToleranceAmbiguity,
				"vertex %s is %.6g from the axis, inside the ambiguity band around %.6g",
				v.ID(), d, k.pol.Point)
		case tolerance.Distinct:
			// Off-axis rim vertex.
		}
	}

	var m *topo.Mapper
	top := profile
	if !full {
		m = topo.NewTransformMapper(geom.RotationAbout(axis.Origin, axis.Dir, angle))
		for _, v := range profile.Vertices() {
			if apex[v.ID()] {
				m.Pin(v)
			}
		}
		top = m.Wire(profile)
	}

	arcs := make(map[topo.ID]topo.Edge)
	arc := func(v *topo.Vertex) topo.Edge {
		if e, ok := arcs[v.ID()]; ok {
			return e
		}
		c := geom.Arc{Center: axis.Project(v.Point()), Axis: axis.Dir, Start: v.Point(), Angle: angle}
		end := v
		if !full {
			end = m.Vertex(v)
		}
		e := topo.NewEdge(v, end, c)
		arcs[v.ID()] = e

		return e
	}

	sides := make([]topo.Face, 0, profile.Len())
	for _, e := range profile.Edges() {
		topEdge := e
		if !full {
			topEdge = m.Edge(e)
		}
		surf := geom.Revolution{C: e.OrientedCurve(), Ax: axis, Angle: angle}

		bnd := []topo.Edge{e}
		if !apex[e.Back().ID()] {
			bnd = append(bnd, arc(e.Back()))
		}
		bnd = append(bnd, topEdge.Inverse())
		if !apex[e.Front().ID()] {
			bnd = append(bnd, arc(e.Front()).Inverse())
		}
		sides = append(sides, topo.NewFace(surf, topo.NewWire(bnd...)))
	}

	return top, sides, full, nil
}

// SPDX-License-Identifier: MIT
// Package: truck/builder
//
// impl_extrude.go — linear sweep.
//
// Orientation convention: every side face carries the surface
// Extrusion{profile edge curve, sweep vector} and the boundary
//
//	[bottom edge, riser at its back, top edge inverted, riser at its
//	front inverted],
//
// so adjacent side faces share risers in opposite directions, the bottom
// cap (profile inverted) opposes the bottom edges, and the top cap
// (swept copy, forward) opposes the top edges. Manifoldness is by
// construction; orientOutward fixes the global sign afterwards.

package builder

import (
	"math"

	"github.com/alxpettit/truck/geom"
	"github.com/alxpettit/truck/tolerance"
	"github.com/alxpettit/truck/topo"
	"github.com/alxpettit/truck/validate"
)

// Extrude sweeps a profile wire linearly along dir by length and returns
// the open shell of side faces (no caps; a closed profile yields a tube
// open at both rims). The profile may be open or closed.
func (k *Kernel) Extrude(profile topo.Wire, dir geom.Vector3, length float64) (topo.Shell, error) {
	const op = "Extrude"
	_, sides, err := k.extrudeParts(op, profile, dir, length)
	if err != nil {
		return topo.Shell{}, err
	}

	shell := topo.NewShell(sides...)
	if err := validate.Shell(shell, k.pol, validate.Open()); err != nil {
		return topo.Shell{}, opValidationError(op, err)
	}

	return shell, nil
}

// ExtrudeSolid sweeps a closed planar profile linearly and caps both
// ends: n profile edges yield n side faces plus two caps.
func (k *Kernel) ExtrudeSolid(profile topo.Wire, dir geom.Vector3, length float64) (topo.Solid, error) {
	const op = "ExtrudeSolid"
	if !profile.IsClosed() {
		return topo.Solid{}, opErrorf(op, ErrTopologicalInconsistency,
			"profile must be a closed loop")
	}
	bottomPlane, err := k.fitPlane(op, profile)
	if err != nil {
		return topo.Solid{}, err
	}

	top, sides, err := k.extrudeParts(op, profile, dir, length)
	if err != nil {
		return topo.Solid{}, err
	}
	topPlane, err := k.fitPlane(op, top)
	if err != nil {
		return topo.Solid{}, err
	}

	faces := append(sides,
		topo.NewFace(bottomPlane, profile).Inverse(),
		topo.NewFace(topPlane, top),
	)
	shell := orientOutward(topo.NewShell(faces...))

	solid := topo.NewSolid(shell)
	if err := validate.Solid(solid, k.pol); err != nil {
		return topo.Solid{}, opValidationError(op, err)
	}

	return solid, nil
}

// ExtrudeFace sweeps a face linearly, holes included: the face itself
// becomes the bottom cap (inverted), its swept copy the top cap, and
// every boundary loop (outer and holes) grows a ring of side faces. The
// caps keep the face's own surface, so curved faces extrude too.
func (k *Kernel) ExtrudeFace(f topo.Face, dir geom.Vector3, length float64) (topo.Solid, error) {
	const op = "ExtrudeFace"
	bounds := f.Boundaries()
	if len(bounds) == 0 {
		return topo.Solid{}, opErrorf(op, ErrTopologicalInconsistency, "face has no boundary")
	}
	if err := k.checkSweepVector(op, bounds[0], dir, length); err != nil {
		return topo.Solid{}, err
	}

	shift := dir.Normalize().Scale(length)
	m := topo.NewTransformMapper(geom.Translation(shift))
	risers := make(map[topo.ID]topo.Edge)

	var sides []topo.Face
	for _, w := range bounds {
		sides = append(sides, k.sweepSides(m, w, shift, risers)...)
	}

	faces := append(sides, f.Inverse(), m.Face(f))
	shell := orientOutward(topo.NewShell(faces...))

	solid := topo.NewSolid(shell)
	if err := validate.Solid(solid, k.pol); err != nil {
		return topo.Solid{}, opValidationError(op, err)
	}

	return solid, nil
}

// extrudeParts runs the degeneracy checks and builds the swept copy of
// the profile plus one side face per profile edge.
func (k *Kernel) extrudeParts(op string, profile topo.Wire, dir geom.Vector3, length float64) (topo.Wire, []topo.Face, error) {
	if err := checkProfile(op, profile); err != nil {
		return topo.Wire{}, nil, err
	}
	if err := k.checkSweepVector(op, profile, dir, length); err != nil {
		return topo.Wire{}, nil, err
	}

	shift := dir.Normalize().Scale(length)
	m := topo.NewTransformMapper(geom.Translation(shift))
	sides := k.sweepSides(m, profile, shift, make(map[topo.ID]topo.Edge))

	return m.Wire(profile), sides, nil
}

// sweepSides builds the side faces of one boundary loop under a shared
// mapper, reusing risers across loops through the given cache.
func (k *Kernel) sweepSides(m *topo.Mapper, w topo.Wire, shift geom.Vector3, risers map[topo.ID]topo.Edge) []topo.Face {
	riser := func(v *topo.Vertex) topo.Edge {
		if e, ok := risers[v.ID()]; ok {
			return e
		}
		moved := m.Vertex(v)
		e := topo.NewEdge(v, moved, geom.Line{A: v.Point(), B: moved.Point()})
		risers[v.ID()] = e

		return e
	}

	sides := make([]topo.Face, 0, w.Len())
	for _, e := range w.Edges() {
		topEdge := m.Edge(e)
		surf := geom.Extrusion{C: e.OrientedCurve(), Dir: shift}
		bnd := topo.NewWire(e, riser(e.Back()), topEdge.Inverse(), riser(e.Front()).Inverse())
		sides = append(sides, topo.NewFace(surf, bnd))
	}

	return sides
}

// checkSweepVector rejects sweeps that collapse: non-positive or
// sub-tolerance length, a vanishing direction, or a direction the profile
// cannot escape along (in the profile plane, or parallel to a flat
// profile).
func (k *Kernel) checkSweepVector(op string, profile topo.Wire, dir geom.Vector3, length float64) error {
	if k.pol.NearZero(dir.Norm()) {
		return opErrorf(op, ErrDegenerateGeometry, "sweep direction has zero magnitude")
	}
	if length <= 0 {
		return opErrorf(op, ErrDegenerateGeometry, "sweep length %.6g, want > 0", length)
	}
	switch k.pol.ClassifyDistance(length) {
	case tolerance.Coincident:
		return opErrorf(op, ErrDegenerateGeometry,
			"sweep length %.6g below point tolerance %.6g", length, k.pol.Point)
	case tolerance.Ambiguous:
		return opErrorf(op, ErrToleranceAmbiguity,
			"sweep length %.6g inside the ambiguity band around %.6g", length, k.pol.Point)
	case tolerance.Distinct:
		// Fine.
	}

	loop := profileLoop(profile)
	n := newellNormal(loop)
	u := dir.Normalize()
	if !k.pol.NearZero(n.Norm()) {
		// Area-enclosing profile: the sweep must leave the profile plane.
		if math.Abs(u.Dot(n.Normalize())) < math.Sin(k.pol.Angle) {
			return opErrorf(op, ErrDegenerateGeometry,
				"sweep direction lies in the profile plane")
		}

		return nil
	}

	// Flat profile (open wire or zero area): degenerate only when every
	// chord runs along the sweep direction.
	for i := 1; i < len(loop); i++ {
		chord := loop[i].Sub(loop[i-1])
		if k.pol.NearZero(chord.Norm()) {
			continue
		}
		if !k.pol.Parallel(chord, dir) {
			return nil
		}
	}

	return opErrorf(op, ErrDegenerateGeometry,
		"profile runs parallel to the sweep direction")
}

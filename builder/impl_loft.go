// SPDX-License-Identifier: MIT
// Package: truck/builder
//
// impl_loft.go — lofting (skinning) across ordered sections.
//
// Sections correspond edge-for-edge in traversal order: edge j of section
// i is skinned to edge j of section i+1 with a ruled patch, and
// corresponding vertices are joined by straight risers shared between
// adjacent patches of the same band. The optional guide path does not
// bend the skin; it fixes the intended ordering of the sections and
// rejects inputs that walk against it.

package builder

import (
	"fmt"

	"github.com/alxpettit/truck/geom"
	"github.com/alxpettit/truck/tolerance"
	"github.com/alxpettit/truck/topo"
	"github.com/alxpettit/truck/validate"
)

// Loft skins ruled faces across two or more sections and returns the open
// shell (closed sections make a tube open at both rims). All sections
// must agree in edge count and closedness. path may be nil.
func (k *Kernel) Loft(path geom.Curve, sections ...topo.Wire) (topo.Shell, error) {
	const op = "Loft"
	sides, err := k.loftParts(op, path, sections)
	if err != nil {
		return topo.Shell{}, err
	}

	shell := topo.NewShell(sides...)
	if err := validate.Shell(shell, k.pol, validate.Open()); err != nil {
		return topo.Shell{}, opValidationError(op, err)
	}

	return shell, nil
}

// LoftSolid skins closed planar sections and caps the first and last,
// yielding a solid. path may be nil.
func (k *Kernel) LoftSolid(path geom.Curve, sections ...topo.Wire) (topo.Solid, error) {
	const op = "LoftSolid"
	sides, err := k.loftParts(op, path, sections)
	if err != nil {
		return topo.Solid{}, err
	}

	first, last := sections[0], sections[len(sections)-1]
	if !first.IsClosed() {
		return topo.Solid{}, opErrorf(op, ErrTopologicalInconsistency,
			"sections must be closed loops to bound a solid")
	}
	startPlane, err := k.fitPlane(op, first)
	if err != nil {
		return topo.Solid{}, err
	}
	endPlane, err := k.fitPlane(op, last)
	if err != nil {
		return topo.Solid{}, err
	}

	faces := append(sides,
		topo.NewFace(startPlane, first).Inverse(),
		topo.NewFace(endPlane, last),
	)
	shell := orientOutward(topo.NewShell(faces...))

	solid := topo.NewSolid(shell)
	if err := validate.Solid(solid, k.pol); err != nil {
		return topo.Solid{}, opValidationError(op, err)
	}

	return solid, nil
}

// loftParts audits the sections (and guide path) and builds the ruled
// side faces of every band.
func (k *Kernel) loftParts(op string, path geom.Curve, sections []topo.Wire) ([]topo.Face, error) {
	if len(sections) < 2 {
		return nil, opErrorf(op, ErrTopologicalInconsistency,
			"need at least 2 sections, got %d", len(sections))
	}
	base := sections[0]
	closed := base.IsClosed()
	for i, s := range sections {
		if err := checkProfile(op, s); err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		if s.Len() != base.Len() {
			return nil, opErrorf(op, ErrTopologicalInconsistency,
				"section %d has %d edges, want %d to match section 0", i, s.Len(), base.Len())
		}
		if s.IsClosed() != closed {
			return nil, opErrorf(op, ErrTopologicalInconsistency,
				"sections mix open and closed profiles")
		}
	}

	// Consecutive sections must be apart: a coincident pair collapses its
	// band to zero height.
	for i := 1; i < len(sections); i++ {
		va, vb := sections[i-1].Vertices(), sections[i].Vertices()
		var maxd float64
		for j := range va {
			if d := va[j].Point().DistanceTo(vb[j].Point()); d > maxd {
				maxd = d
			}
		}
		switch k.pol.ClassifyDistance(maxd) {
		case tolerance.Coincident:
			return nil, opErrorf(op, ErrDegenerateGeometry,
				"sections %d and %d coincide within point tolerance %.6g", i-1, i, k.pol.Point)
		case tolerance.Ambiguous:
			return nil, opErrorf(op, ErrToleranceAmbiguity,
				"sections %d and %d are %.6g apart, inside the ambiguity band around %.6g",
				i-1, i, maxd, k.pol.Point)
		case tolerance.Distinct:
			// A real band.
		}
	}

	if path != nil {
		if err := k.checkGuidePath(op, path, sections); err != nil {
			return nil, err
		}
	}

	var sides []topo.Face
	for i := 1; i < len(sections); i++ {
		a, b := sections[i-1], sections[i]
		va, vb := a.Vertices(), b.Vertices()

		risers := make(map[int]topo.Edge)
		riser := func(j int) topo.Edge {
			if e, ok := risers[j]; ok {
				return e
			}
			e := topo.NewEdge(va[j], vb[j],
				geom.Line{A: va[j].Point(), B: vb[j].Point()})
			risers[j] = e

			return e
		}

		for j := 0; j < a.Len(); j++ {
			jb := j + 1
			if closed && jb == a.Len() {
				jb = 0
			}
			e0, e1 := a.Edge(j), b.Edge(j)
			surf := geom.Ruled{C0: e0.OrientedCurve(), C1: e1.OrientedCurve()}
			bnd := topo.NewWire(e0, riser(jb), e1.Inverse(), riser(j).Inverse())
			sides = append(sides, topo.NewFace(surf, bnd))
		}
	}

	return sides, nil
}

// checkGuidePath verifies the sections march along the path: each
// centroid-to-centroid chord must agree in direction with the path
// tangent at the matching parameter.
func (k *Kernel) checkGuidePath(op string, path geom.Curve, sections []topo.Wire) error {
	plen := geom.ApproxLength(path, edgeLengthSamples)
	switch k.pol.ClassifyDistance(plen) {
	case tolerance.Coincident:
		return opErrorf(op, ErrDegenerateGeometry,
			"guide path length %.6g below point tolerance %.6g", plen, k.pol.Point)
	case tolerance.Ambiguous:
		return opErrorf(op, ErrToleranceAmbiguity,
			"guide path length %.6g inside the ambiguity band around %.6g", plen, k.pol.Point)
	case tolerance.Distinct:
		// Usable.
	}

	d := path.Domain()
	cents := make([]geom.Point3, len(sections))
	for i, s := range sections {
		cents[i] = loopCentroid(profileLoop(s))
	}
	for i := 1; i < len(sections); i++ {
		chord := cents[i].Sub(cents[i-1])
		t := d.At((float64(i) - 0.5) / float64(len(sections)-1))
		if chord.Dot(path.TangentAt(t)) <= 0 {
			return opErrorf(op, ErrGeometricViolation,
				"sections %d and %d walk against the guide path", i-1, i)
		}
	}

	return nil
}

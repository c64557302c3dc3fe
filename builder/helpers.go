// SPDX-License-Identifier: MIT
// Package: truck/builder
//
// helpers.go — sampled loops, plane fitting, and shell orientation shared
// by the sweep implementations.

package builder

import (
	"math"

	"github.com/alxpettit/truck/geom"
	"github.com/alxpettit/truck/tolerance"
	"github.com/alxpettit/truck/topo"
	"github.com/alxpettit/truck/validate"
)

// profileLoop samples w at faceCheckSamples points per edge, dropping
// each edge's terminal point (the next edge re-supplies it). An open wire
// gets its final vertex appended so the loop spans the whole path.
func profileLoop(w topo.Wire) []geom.Point3 {
	var loop []geom.Point3
	for _, e := range w.Edges() {
		c := e.OrientedCurve()
		d := c.Domain()
		for j := 0; j < faceCheckSamples; j++ {
			loop = append(loop, c.PointAt(d.At(float64(j)/faceCheckSamples)))
		}
	}
	if !w.IsClosed() && w.Len() > 0 {
		loop = append(loop, w.BackVertex().Point())
	}

	return loop
}

// newellNormal computes the area-weighted normal of a point loop (the
// Newell formula). Its magnitude is twice the enclosed area; near-zero
// means the loop is collapsed or not a loop at all.
func newellNormal(loop []geom.Point3) geom.Vector3 {
	var n geom.Vector3
	for i := range loop {
		p := loop[i]
		q := loop[(i+1)%len(loop)]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}

	return n.Scale(0.5)
}

// loopCentroid averages a sampled loop.
func loopCentroid(loop []geom.Point3) geom.Point3 {
	var acc geom.Vector3
	for _, p := range loop {
		acc = acc.Add(p.Vec())
	}

	return geom.Point3{}.Add(acc.Scale(1 / float64(len(loop))))
}

// fitPlane fits an orthonormal plane to a closed wire and audits that the
// wire actually lies in it. The plane's normal U×V follows the wire's
// winding.
func (k *Kernel) fitPlane(op string, w topo.Wire) (geom.Plane, error) {
	loop := profileLoop(w)
	if len(loop) < 3 {
		return geom.Plane{}, opErrorf(op, ErrTopologicalInconsistency,
			"profile has no loop to fit a plane to")
	}

	n := newellNormal(loop)
	if k.pol.NearZero(n.Norm()) {
		return geom.Plane{}, opErrorf(op, ErrDegenerateGeometry,
			"profile encloses area %.6g, below point tolerance %.6g", n.Norm(), k.pol.Point)
	}
	nHat := n.Normalize()

	// In-plane frame: first chord, with any normal component removed.
	origin := loop[0]
	u := loop[1].Sub(origin)
	u = u.Sub(nHat.Scale(u.Dot(nHat)))
	if k.pol.NearZero(u.Norm()) {
		// First chord was normal-aligned; fall back to a later one.
		for i := 2; i < len(loop) && k.pol.NearZero(u.Norm()); i++ {
			u = loop[i].Sub(origin)
			u = u.Sub(nHat.Scale(u.Dot(nHat)))
		}
	}
	uHat := u.Normalize()
	pl := geom.Plane{Origin: origin, U: uHat, V: nHat.Cross(uHat)}

	for _, p := range loop {
		dev := math.Abs(p.Sub(origin).Dot(nHat))
		switch k.pol.ClassifyDistance(dev) {
		case tolerance.Coincident:
			// In plane.
		case tolerance.Ambiguous:
			return geom.Plane{}, opErrorf(op, ErrToleranceAmbiguity,
				"profile deviates %.6g from its plane, inside the ambiguity band around %.6g",
				dev, k.pol.Point)
		default:
			return geom.Plane{}, opErrorf(op, ErrGeometricViolation,
				"profile deviates %.6g from its plane, tolerance %.6g", dev, k.pol.Point)
		}
	}

	return pl, nil
}

// checkProfile rejects empty or identity-discontinuous sweep profiles.
func checkProfile(op string, profile topo.Wire) error {
	if profile.Len() == 0 {
		return opErrorf(op, ErrTopologicalInconsistency, "empty profile")
	}
	if !profile.IsContinuous() {
		return opErrorf(op, ErrTopologicalInconsistency,
			"profile edges do not chain by vertex identity")
	}

	return nil
}

// orientOutward flips a closed shell whose sampled signed volume came out
// negative, so assembled sweeps always present outward normals before
// validation.
func orientOutward(s topo.Shell) topo.Shell {
	if validate.SignedVolume(s) < 0 {
		return s.Inverse()
	}

	return s
}

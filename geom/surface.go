// Package geom: the Surface contract and the reference surface family.
//
// The reference surfaces are exactly the ones the sweep builders emit:
// Plane (caps), Extrusion (linear sweep sides), Revolution (rotational
// sweep sides), Ruled (loft sides). Each evaluates lazily through the
// curves it wraps; nothing is sampled or cached at construction.

package geom

import "math"

// Surface is the parametric-surface contract consumed by the kernel.
// NormalAt may return the zero vector at degenerate points (e.g. the apex
// of a revolution); callers sample around such points.
type Surface interface {
	PointAt(u, v float64) Point3
	NormalAt(u, v float64) Vector3
	Domain() (Interval, Interval)
}

// Projector is an optional Surface refinement for types that can invert
// themselves analytically. ProjectPoint prefers it over sampling.
type Projector interface {
	Project(p Point3) (u, v float64, ok bool)
}

// Plane is the infinite plane through Origin spanned by U and V.
// Its parameter domain is unbounded.
type Plane struct {
	Origin Point3
	U, V   Vector3
}

// PointAt returns Origin + u·U + v·V.
func (pl Plane) PointAt(u, v float64) Point3 {
	return pl.Origin.Add(pl.U.Scale(u)).Add(pl.V.Scale(v))
}

// NormalAt returns the constant unit normal U×V.
func (pl Plane) NormalAt(_, _ float64) Vector3 {
	return pl.U.Cross(pl.V).Normalize()
}

// Domain returns the unbounded parameter plane.
func (pl Plane) Domain() (Interval, Interval) {
	inf := Interval{Min: math.Inf(-1), Max: math.Inf(1)}

	return inf, inf
}

// Project solves the 2×2 least-squares system for the parameters of the
// closest plane point. ok is false when U and V are (nearly) parallel.
func (pl Plane) Project(p Point3) (u, v float64, ok bool) {
	w := p.Sub(pl.Origin)
	uu, vv, uv := pl.U.Dot(pl.U), pl.V.Dot(pl.V), pl.U.Dot(pl.V)
	det := uu*vv - uv*uv
	if det == 0 {
		return 0, 0, false
	}
	wu, wv := w.Dot(pl.U), w.Dot(pl.V)

	return (vv*wu - uv*wv) / det, (uu*wv - uv*wu) / det, true
}

// Extrusion is the surface swept by translating curve C along Dir:
// P(u,v) = C(u) + v·Dir, with u over the curve's domain and v in [0,1].
// Dir carries the full sweep length.
type Extrusion struct {
	C   Curve
	Dir Vector3
}

// PointAt evaluates the sweep.
func (e Extrusion) PointAt(u, v float64) Point3 {
	return e.C.PointAt(u).Add(e.Dir.Scale(v))
}

// NormalAt returns the unit normal tangent×Dir (zero where the curve
// tangent is parallel to the sweep direction).
func (e Extrusion) NormalAt(u, _ float64) Vector3 {
	return e.C.TangentAt(u).Cross(e.Dir).Normalize()
}

// Domain returns (curve domain, [0,1]).
func (e Extrusion) Domain() (Interval, Interval) {
	return e.C.Domain(), UnitInterval
}

// Revolution is the surface swept by rotating curve C around Ax by Angle
// radians: u runs over the curve's domain, v in [0,1] maps onto the swept
// angle. Angle 2π closes the surface onto its seam.
type Revolution struct {
	C     Curve
	Ax    Axis
	Angle float64
}

// PointAt evaluates the sweep.
func (r Revolution) PointAt(u, v float64) Point3 {
	return RotationAbout(r.Ax.Origin, r.Ax.Dir, r.Angle*v).Apply(r.C.PointAt(u))
}

// NormalAt returns the unit normal du×dv. At points on the axis the
// circumferential derivative vanishes and the zero vector is returned.
func (r Revolution) NormalAt(u, v float64) Vector3 {
	rot := RotationAbout(r.Ax.Origin, r.Ax.Dir, r.Angle*v)
	du := rot.ApplyVector(r.C.TangentAt(u))
	p := rot.Apply(r.C.PointAt(u))
	n := r.Ax.Dir.Normalize()
	rad := p.Sub(r.Ax.Project(p))
	dv := n.Cross(rad).Scale(r.Angle)

	return du.Cross(dv).Normalize()
}

// Domain returns (curve domain, [0,1]).
func (r Revolution) Domain() (Interval, Interval) {
	return r.C.Domain(), UnitInterval
}

// Ruled linearly blends two curves: P(u,v) = (1-v)·C0(u) + v·C1(u'),
// where u runs over C0's domain and u' is the matching normalized
// parameter on C1. v runs over [0,1].
type Ruled struct {
	C0, C1 Curve
}

// PointAt evaluates the blend.
func (rl Ruled) PointAt(u, v float64) Point3 {
	d0 := rl.C0.Domain()
	s := 0.0
	if d0.Length() != 0 {
		s = (u - d0.Min) / d0.Length()
	}

	return Lerp(rl.C0.PointAt(u), rl.C1.PointAt(rl.C1.Domain().At(s)), v)
}

// NormalAt returns the unit normal du×dv of the blend.
func (rl Ruled) NormalAt(u, v float64) Vector3 {
	d0 := rl.C0.Domain()
	s := 0.0
	if d0.Length() != 0 {
		s = (u - d0.Min) / d0.Length()
	}
	u1 := rl.C1.Domain().At(s)
	t0 := rl.C0.TangentAt(u)
	t1 := rl.C1.TangentAt(u1)
	du := t0.Scale(1 - v).Add(t1.Scale(v))
	dv := rl.C1.PointAt(u1).Sub(rl.C0.PointAt(u))

	return du.Cross(dv).Normalize()
}

// Domain returns (C0 domain, [0,1]).
func (rl Ruled) Domain() (Interval, Interval) {
	return rl.C0.Domain(), UnitInterval
}

// TransformedSurface is a surface seen through a rigid transform; the
// wrapped surface is shared, never copied.
type TransformedSurface struct {
	S   Surface
	Trf Transform
}

// PointAt evaluates the wrapped surface and maps the result.
func (ts TransformedSurface) PointAt(u, v float64) Point3 {
	return ts.Trf.Apply(ts.S.PointAt(u, v))
}

// NormalAt rotates the wrapped normal.
func (ts TransformedSurface) NormalAt(u, v float64) Vector3 {
	return ts.Trf.ApplyVector(ts.S.NormalAt(u, v))
}

// Domain returns the wrapped surface's domain.
func (ts TransformedSurface) Domain() (Interval, Interval) {
	return ts.S.Domain()
}

// projectGrid is the sampling resolution of the generic projection.
const projectGrid = 24

// projectRounds is the number of local refinement passes.
const projectRounds = 4

// ProjectPoint finds surface parameters approximating the closest point
// to p, and the distance to it. Surfaces implementing Projector are
// inverted analytically; everything else is grid-sampled over its domain
// and locally refined. Intended for on-surface containment checks, where
// the true distance is near zero and the sampled answer converges fast.
func ProjectPoint(s Surface, p Point3) (u, v, dist float64) {
	if pr, ok := s.(Projector); ok {
		if pu, pv, ok2 := pr.Project(p); ok2 {
			return pu, pv, p.DistanceTo(s.PointAt(pu, pv))
		}
	}

	ud, vd := s.Domain()
	// Unbounded domains cannot be sampled; fall back to the origin cell.
	if math.IsInf(ud.Min, 0) || math.IsInf(ud.Max, 0) {
		ud = UnitInterval
	}
	if math.IsInf(vd.Min, 0) || math.IsInf(vd.Max, 0) {
		vd = UnitInterval
	}

	best := math.Inf(1)
	bu, bv := ud.Min, vd.Min
	scan := func(uiv, viv Interval) {
		for i := 0; i <= projectGrid; i++ {
			uu := uiv.At(float64(i) / projectGrid)
			for j := 0; j <= projectGrid; j++ {
				vv := viv.At(float64(j) / projectGrid)
				if d := p.DistanceTo(s.PointAt(uu, vv)); d < best {
					best, bu, bv = d, uu, vv
				}
			}
		}
	}
	scan(ud, vd)
	// Shrink the window around the best cell and rescan.
	uw, vw := ud.Length()/projectGrid, vd.Length()/projectGrid
	for r := 0; r < projectRounds; r++ {
		uiv := Interval{Min: ud.Clamp(bu - uw), Max: ud.Clamp(bu + uw)}
		viv := Interval{Min: vd.Clamp(bv - vw), Max: vd.Clamp(bv + vw)}
		scan(uiv, viv)
		uw /= projectGrid
		vw /= projectGrid
	}

	return bu, bv, best
}

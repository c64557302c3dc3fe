// Package geom: the Curve contract and the reference curve family.

package geom

// Curve is the parametric-curve contract consumed by the kernel. A curve
// maps parameters from Domain() to points; TangentAt returns the (not
// necessarily unit) first derivative.
//
// Implementations must be immutable: evaluation never changes the curve.
type Curve interface {
	PointAt(t float64) Point3
	TangentAt(t float64) Vector3
	Domain() Interval
}

// Axis is an infinite oriented line, used as a revolution axis.
type Axis struct {
	Origin Point3
	Dir    Vector3
}

// Project returns the point on the axis closest to p.
func (a Axis) Project(p Point3) Point3 {
	u := a.Dir.Normalize()

	return a.Origin.Add(u.Scale(p.Sub(a.Origin).Dot(u)))
}

// DistanceTo returns the distance from p to the axis line.
func (a Axis) DistanceTo(p Point3) float64 {
	return p.DistanceTo(a.Project(p))
}

// Line is the straight segment from A (t=0) to B (t=1).
type Line struct {
	A, B Point3
}

// PointAt evaluates the segment at t ∈ [0,1].
func (l Line) PointAt(t float64) Point3 {
	return Lerp(l.A, l.B, t)
}

// TangentAt returns the constant derivative B-A.
func (l Line) TangentAt(float64) Vector3 {
	return l.B.Sub(l.A)
}

// Domain returns [0,1].
func (l Line) Domain() Interval {
	return UnitInterval
}

// Arc is a circular arc swept from Start by Angle radians (right-handed)
// around the axis through Center with direction Axis. Angle 2π yields a
// full circle whose endpoints coincide. Domain is [0,1]; t maps linearly
// onto the swept angle.
type Arc struct {
	Center Point3
	Axis   Vector3
	Start  Point3
	Angle  float64
}

// PointAt evaluates the arc at t ∈ [0,1].
func (a Arc) PointAt(t float64) Point3 {
	return RotationAbout(a.Center, a.Axis, a.Angle*t).Apply(a.Start)
}

// TangentAt returns the derivative with respect to t, i.e. the circular
// velocity scaled by the swept angle. Zero for a zero-radius arc.
func (a Arc) TangentAt(t float64) Vector3 {
	u := a.Axis.Normalize()
	r := a.PointAt(t).Sub(a.Center)
	// Drop the axial component so only the radial part rotates.
	rad := r.Sub(u.Scale(r.Dot(u)))

	return u.Cross(rad).Scale(a.Angle)
}

// Domain returns [0,1].
func (a Arc) Domain() Interval {
	return UnitInterval
}

// Radius returns the distance from Start to the axis line.
func (a Arc) Radius() float64 {
	return Axis{Origin: a.Center, Dir: a.Axis}.DistanceTo(a.Start)
}

// Reversed presents a curve traversed in the opposite direction over the
// same domain: t=Min of the wrapper is t=Max of the wrapped curve.
type Reversed struct {
	C Curve
}

// PointAt evaluates the wrapped curve at the mirrored parameter.
func (r Reversed) PointAt(t float64) Point3 {
	d := r.C.Domain()

	return r.C.PointAt(d.Min + d.Max - t)
}

// TangentAt returns the negated tangent at the mirrored parameter.
func (r Reversed) TangentAt(t float64) Vector3 {
	d := r.C.Domain()

	return r.C.TangentAt(d.Min + d.Max - t).Neg()
}

// Domain returns the wrapped curve's domain.
func (r Reversed) Domain() Interval {
	return r.C.Domain()
}

// TransformedCurve is a curve seen through a rigid transform. The wrapped
// curve is shared, never copied.
type TransformedCurve struct {
	C   Curve
	Trf Transform
}

// PointAt evaluates the wrapped curve and maps the result.
func (tc TransformedCurve) PointAt(t float64) Point3 {
	return tc.Trf.Apply(tc.C.PointAt(t))
}

// TangentAt rotates the wrapped tangent.
func (tc TransformedCurve) TangentAt(t float64) Vector3 {
	return tc.Trf.ApplyVector(tc.C.TangentAt(t))
}

// Domain returns the wrapped curve's domain.
func (tc TransformedCurve) Domain() Interval {
	return tc.C.Domain()
}

// ApproxLength estimates the arc length of c by summing n chords.
// n < 1 is treated as 1. The estimate is a lower bound; it is used for
// degeneracy checks, where an under-estimate errs on the safe side.
func ApproxLength(c Curve, n int) float64 {
	if n < 1 {
		n = 1
	}
	d := c.Domain()
	var sum float64
	prev := c.PointAt(d.Min)
	for i := 1; i <= n; i++ {
		p := c.PointAt(d.At(float64(i) / float64(n)))
		sum += prev.DistanceTo(p)
		prev = p
	}

	return sum
}

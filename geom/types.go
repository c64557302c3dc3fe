// Package geom: fundamental value types (Point3, Vector3, Interval).
//
// Conventions:
//   - Point3 is a location, Vector3 a displacement; Sub(points) yields a
//     vector, Add(point, vector) yields a point. Keeping the two apart makes
//     transform application unambiguous (points translate, vectors do not).
//   - All methods are value receivers and allocation-free.

package geom

import "math"

// Point3 is a location in 3-D Cartesian space.
type Point3 struct {
	X, Y, Z float64
}

// Vector3 is a displacement or direction in 3-D Cartesian space.
type Vector3 struct {
	X, Y, Z float64
}

// Add translates p by v.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement from q to p (p - q).
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point3) DistanceTo(q Point3) float64 {
	return p.Sub(q).Norm()
}

// Vec returns p as a displacement from the origin.
func (p Point3) Vec() Vector3 {
	return Vector3{p.X, p.Y, p.Z}
}

// Lerp linearly interpolates from p (t=0) to q (t=1).
func Lerp(p, q Point3, t float64) Point3 {
	return Point3{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point3) Point3 {
	return Lerp(p, q, 0.5)
}

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Dot returns the scalar product v·w.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector product v×w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged; callers that care must test Norm() first.
func (v Vector3) Normalize() Vector3 {
	n := v.Norm()
	if n == 0 {
		return v
	}

	return v.Scale(1 / n)
}

// AngleTo returns the unsigned angle between v and w in radians, in [0, π].
// Either argument having zero length yields 0.
func (v Vector3) AngleTo(w Vector3) float64 {
	nv, nw := v.Norm(), w.Norm()
	if nv == 0 || nw == 0 {
		return 0
	}
	c := v.Dot(w) / (nv * nw)
	// Clamp against rounding before acos.
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}

	return math.Acos(c)
}

// Interval is a closed parameter range [Min, Max].
type Interval struct {
	Min, Max float64
}

// UnitInterval is the canonical [0,1] parameter domain used by the
// reference curves.
var UnitInterval = Interval{Min: 0, Max: 1}

// Length returns Max - Min.
func (i Interval) Length() float64 {
	return i.Max - i.Min
}

// At maps a normalized position s in [0,1] onto the interval.
func (i Interval) At(s float64) float64 {
	return i.Min + (i.Max-i.Min)*s
}

// Contains reports whether t lies inside the interval, widened by eps on
// both ends.
func (i Interval) Contains(t, eps float64) bool {
	return t >= i.Min-eps && t <= i.Max+eps
}

// Clamp returns t limited to the interval.
func (i Interval) Clamp(t float64) float64 {
	if t < i.Min {
		return i.Min
	}
	if t > i.Max {
		return i.Max
	}

	return t
}

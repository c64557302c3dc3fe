// Package geom: rigid transforms (rotation + translation).
//
// Transform is the only mutation-free way the builders move geometry: a
// swept copy of a profile is the original geometry seen through a
// Transform, never an edited clone.

package geom

import "math"

// Transform is a rigid motion: a 3×3 rotation matrix followed by a
// translation. Points are rotated and translated; vectors are only rotated.
type Transform struct {
	m [3][3]float64
	t Vector3
}

// Identity returns the do-nothing transform.
func Identity() Transform {
	return Transform{m: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Translation returns the transform that shifts every point by v.
func Translation(v Vector3) Transform {
	tr := Identity()
	tr.t = v

	return tr
}

// RotationAbout returns the rotation by angle (radians, right-handed)
// around the axis through origin with direction dir. A zero direction
// yields the identity.
func RotationAbout(origin Point3, dir Vector3, angle float64) Transform {
	n := dir.Norm()
	if n == 0 {
		return Identity()
	}
	u := dir.Scale(1 / n)

	// Rodrigues rotation matrix.
	c, s := math.Cos(angle), math.Sin(angle)
	ic := 1 - c
	var tr Transform
	tr.m = [3][3]float64{
		{c + u.X*u.X*ic, u.X*u.Y*ic - u.Z*s, u.X*u.Z*ic + u.Y*s},
		{u.Y*u.X*ic + u.Z*s, c + u.Y*u.Y*ic, u.Y*u.Z*ic - u.X*s},
		{u.Z*u.X*ic - u.Y*s, u.Z*u.Y*ic + u.X*s, c + u.Z*u.Z*ic},
	}
	// Conjugate by the origin offset so the axis passes through origin.
	o := origin.Vec()
	tr.t = o.Sub(tr.rotate(o))

	return tr
}

// rotate applies only the rotation part.
func (tr Transform) rotate(v Vector3) Vector3 {
	return Vector3{
		X: tr.m[0][0]*v.X + tr.m[0][1]*v.Y + tr.m[0][2]*v.Z,
		Y: tr.m[1][0]*v.X + tr.m[1][1]*v.Y + tr.m[1][2]*v.Z,
		Z: tr.m[2][0]*v.X + tr.m[2][1]*v.Y + tr.m[2][2]*v.Z,
	}
}

// Apply maps a point through the transform.
func (tr Transform) Apply(p Point3) Point3 {
	r := tr.rotate(p.Vec())

	return Point3{r.X + tr.t.X, r.Y + tr.t.Y, r.Z + tr.t.Z}
}

// ApplyVector maps a direction through the transform (rotation only).
func (tr Transform) ApplyVector(v Vector3) Vector3 {
	return tr.rotate(v)
}

// Then returns the composition "tr first, then next".
func (tr Transform) Then(next Transform) Transform {
	var out Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.m[i][j] = next.m[i][0]*tr.m[0][j] + next.m[i][1]*tr.m[1][j] + next.m[i][2]*tr.m[2][j]
		}
	}
	out.t = next.rotate(tr.t).Add(next.t)

	return out
}

// Matrix returns the rotation matrix and translation as plain values,
// in row-major order. Used by the exchange codec; the kernel itself never
// inspects the components.
func (tr Transform) Matrix() (m [3][3]float64, t Vector3) {
	return tr.m, tr.t
}

// FromMatrix rebuilds a Transform from its components. Inverse of Matrix.
func FromMatrix(m [3][3]float64, t Vector3) Transform {
	return Transform{m: m, t: t}
}

package geom_test

import (
	"math"
	"testing"

	"github.com/alxpettit/truck/geom"
	"github.com/stretchr/testify/assert"
)

// TestVector3_Basics verifies the elementary vector algebra the rest of
// the kernel leans on.
func TestVector3_Basics(t *testing.T) {
	v := geom.Vector3{X: 1, Y: 2, Z: 2}
	w := geom.Vector3{X: 0, Y: 0, Z: 1}

	assert.Equal(t, 3.0, v.Norm(), "|(1,2,2)| = 3")
	assert.Equal(t, 2.0, v.Dot(w), "dot picks the Z component")
	assert.Equal(t, geom.Vector3{X: 2, Y: -1, Z: 0}, v.Cross(w), "right-handed cross product")
	assert.InDelta(t, 1.0, v.Normalize().Norm(), 1e-12, "normalized length")
	assert.Equal(t, geom.Vector3{}, geom.Vector3{}.Normalize(), "zero vector normalizes to itself")
}

// TestVector3_AngleTo checks the clamped angle computation at the
// parallel, orthogonal and antiparallel extremes.
func TestVector3_AngleTo(t *testing.T) {
	x := geom.Vector3{X: 1}
	assert.InDelta(t, 0, x.AngleTo(geom.Vector3{X: 5}), 1e-12, "parallel")
	assert.InDelta(t, math.Pi/2, x.AngleTo(geom.Vector3{Y: 1}), 1e-12, "orthogonal")
	assert.InDelta(t, math.Pi, x.AngleTo(geom.Vector3{X: -1}), 1e-12, "antiparallel")
	assert.Equal(t, 0.0, x.AngleTo(geom.Vector3{}), "zero argument yields zero angle")
}

// TestPoint3_Lerp verifies interpolation endpoints and midpoint.
func TestPoint3_Lerp(t *testing.T) {
	p := geom.Point3{X: 1, Y: 1, Z: 1}
	q := geom.Point3{X: 3, Y: 5, Z: -1}

	assert.Equal(t, p, geom.Lerp(p, q, 0))
	assert.Equal(t, q, geom.Lerp(p, q, 1))
	assert.Equal(t, geom.Point3{X: 2, Y: 3, Z: 0}, geom.Midpoint(p, q))
}

// TestInterval_Mapping verifies At/Clamp/Contains round-tripping.
func TestInterval_Mapping(t *testing.T) {
	iv := geom.Interval{Min: 2, Max: 6}

	assert.Equal(t, 4.0, iv.Length())
	assert.Equal(t, 2.0, iv.At(0))
	assert.Equal(t, 6.0, iv.At(1))
	assert.Equal(t, 4.0, iv.At(0.5))
	assert.Equal(t, 2.0, iv.Clamp(-10))
	assert.Equal(t, 6.0, iv.Clamp(10))
	assert.True(t, iv.Contains(6.0000001, 1e-6), "eps widens the interval")
	assert.False(t, iv.Contains(6.1, 1e-6))
}

// TestTransform_RotationAbout verifies a quarter turn about the Z axis
// through a non-origin point, and that vectors ignore translation.
func TestTransform_RotationAbout(t *testing.T) {
	origin := geom.Point3{X: 1, Y: 0, Z: 0}
	rot := geom.RotationAbout(origin, geom.Vector3{Z: 1}, math.Pi/2)

	got := rot.Apply(geom.Point3{X: 2, Y: 0, Z: 0})
	assert.InDelta(t, 1, got.X, 1e-12)
	assert.InDelta(t, 1, got.Y, 1e-12)
	assert.InDelta(t, 0, got.Z, 1e-12)

	v := rot.ApplyVector(geom.Vector3{X: 1})
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 1, v.Y, 1e-12)
}

// TestTransform_Then verifies composition order: "tr first, then next".
func TestTransform_Then(t *testing.T) {
	rot := geom.RotationAbout(geom.Point3{}, geom.Vector3{Z: 1}, math.Pi/2)
	shift := geom.Translation(geom.Vector3{X: 1})

	// Rotate (1,0,0)->(0,1,0), then shift -> (1,1,0).
	got := rot.Then(shift).Apply(geom.Point3{X: 1})
	assert.InDelta(t, 1, got.X, 1e-12)
	assert.InDelta(t, 1, got.Y, 1e-12)

	// Shift (1,0,0)->(2,0,0), then rotate -> (0,2,0).
	got = shift.Then(rot).Apply(geom.Point3{X: 1})
	assert.InDelta(t, 0, got.X, 1e-12)
	assert.InDelta(t, 2, got.Y, 1e-12)
}

// TestTransform_MatrixRoundTrip verifies the exchange accessors.
func TestTransform_MatrixRoundTrip(t *testing.T) {
	tr := geom.RotationAbout(geom.Point3{X: 1, Y: 2, Z: 3}, geom.Vector3{X: 1, Y: 1}, 0.7)
	m, tv := tr.Matrix()
	back := geom.FromMatrix(m, tv)

	p := geom.Point3{X: -2, Y: 0.5, Z: 4}
	assert.InDelta(t, 0, tr.Apply(p).DistanceTo(back.Apply(p)), 1e-12)
}

package geom_test

import (
	"math"
	"testing"

	"github.com/alxpettit/truck/geom"
	"github.com/stretchr/testify/assert"
)

// TestLine_Evaluation verifies endpoints, tangent, and domain.
func TestLine_Evaluation(t *testing.T) {
	l := geom.Line{A: geom.Point3{X: 1}, B: geom.Point3{X: 1, Y: 2}}

	assert.Equal(t, l.A, l.PointAt(0))
	assert.Equal(t, l.B, l.PointAt(1))
	assert.Equal(t, geom.Vector3{Y: 2}, l.TangentAt(0.3), "constant derivative")
	assert.Equal(t, geom.UnitInterval, l.Domain())
}

// TestArc_QuarterTurn verifies point evaluation, tangent direction, and
// radius for a quarter circle around the Z axis.
func TestArc_QuarterTurn(t *testing.T) {
	a := geom.Arc{
		Center: geom.Point3{},
		Axis:   geom.Vector3{Z: 1},
		Start:  geom.Point3{X: 2},
		Angle:  math.Pi / 2,
	}

	assert.InDelta(t, 2.0, a.Radius(), 1e-12)

	end := a.PointAt(1)
	assert.InDelta(t, 0, end.X, 1e-12)
	assert.InDelta(t, 2, end.Y, 1e-12)

	// Tangent at start points along +Y with magnitude radius*angle.
	tan := a.TangentAt(0)
	assert.InDelta(t, 0, tan.X, 1e-12)
	assert.InDelta(t, 2*math.Pi/2, tan.Y, 1e-12)
}

// TestArc_FullCircleCloses verifies a 2π arc returns to its start and
// that a zero-radius arc degenerates to its start point.
func TestArc_FullCircleCloses(t *testing.T) {
	a := geom.Arc{Axis: geom.Vector3{Z: 1}, Start: geom.Point3{X: 1, Y: 1}, Angle: 2 * math.Pi}
	assert.InDelta(t, 0, a.PointAt(0).DistanceTo(a.PointAt(1)), 1e-9, "full turn closes")

	apex := geom.Arc{Axis: geom.Vector3{Z: 1}, Start: geom.Point3{}, Angle: 2 * math.Pi}
	assert.Equal(t, 0.0, apex.Radius())
	assert.InDelta(t, 0, apex.PointAt(0.37).DistanceTo(geom.Point3{}), 1e-12, "apex arc stays put")
}

// TestReversed_MirrorsParameter verifies the orientation wrapper evaluates
// the base curve backwards and negates tangents.
func TestReversed_MirrorsParameter(t *testing.T) {
	l := geom.Line{A: geom.Point3{}, B: geom.Point3{X: 4}}
	r := geom.Reversed{C: l}

	assert.Equal(t, l.B, r.PointAt(0))
	assert.Equal(t, l.A, r.PointAt(1))
	assert.Equal(t, geom.Vector3{X: -4}, r.TangentAt(0.5))
	assert.Equal(t, l.Domain(), r.Domain())
}

// TestTransformedCurve_SharesBase verifies evaluation goes through the
// transform while the base curve stays untouched.
func TestTransformedCurve_SharesBase(t *testing.T) {
	l := geom.Line{A: geom.Point3{}, B: geom.Point3{X: 1}}
	tc := geom.TransformedCurve{C: l, Trf: geom.Translation(geom.Vector3{Z: 5})}

	assert.Equal(t, geom.Point3{Z: 5}, tc.PointAt(0))
	assert.Equal(t, geom.Point3{X: 1, Z: 5}, tc.PointAt(1))
	assert.Equal(t, geom.Vector3{X: 1}, tc.TangentAt(0), "translation leaves tangents alone")
	assert.Equal(t, geom.Point3{}, l.PointAt(0), "base curve unchanged")
}

// TestApproxLength verifies exactness on lines and convergence on arcs.
func TestApproxLength(t *testing.T) {
	l := geom.Line{A: geom.Point3{}, B: geom.Point3{X: 3, Y: 4}}
	assert.InDelta(t, 5, geom.ApproxLength(l, 1), 1e-12, "chord of a line is exact")

	a := geom.Arc{Axis: geom.Vector3{Z: 1}, Start: geom.Point3{X: 1}, Angle: 2 * math.Pi}
	got := geom.ApproxLength(a, 256)
	assert.InDelta(t, 2*math.Pi, got, 1e-3, "chord sum converges to circumference")
	assert.Less(t, got, 2*math.Pi, "chord sum is a lower bound")
}

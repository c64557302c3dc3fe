package geom_test

import (
	"math"
	"testing"

	"github.com/alxpettit/truck/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlane_ProjectAnalytic verifies the analytic plane inversion,
// including a skewed (non-orthogonal) basis.
func TestPlane_ProjectAnalytic(t *testing.T) {
	pl := geom.Plane{
		Origin: geom.Point3{Z: 1},
		U:      geom.Vector3{X: 2},
		V:      geom.Vector3{X: 1, Y: 1},
	}

	u, v, ok := pl.Project(pl.PointAt(0.25, -1.5))
	require.True(t, ok)
	assert.InDelta(t, 0.25, u, 1e-12)
	assert.InDelta(t, -1.5, v, 1e-12)

	// Off-plane points project onto the closest plane point.
	u, v, ok = pl.Project(geom.Point3{Z: 9})
	require.True(t, ok)
	assert.InDelta(t, 0, u, 1e-12)
	assert.InDelta(t, 0, v, 1e-12)

	// Degenerate basis is rejected.
	_, _, ok = geom.Plane{U: geom.Vector3{X: 1}, V: geom.Vector3{X: 2}}.Project(geom.Point3{})
	assert.False(t, ok)
}

// TestExtrusion_Evaluation verifies the linear sweep surface and its
// normal orientation.
func TestExtrusion_Evaluation(t *testing.T) {
	e := geom.Extrusion{
		C:   geom.Line{A: geom.Point3{}, B: geom.Point3{X: 1}},
		Dir: geom.Vector3{Z: 2},
	}

	assert.Equal(t, geom.Point3{X: 0.5, Z: 1}, e.PointAt(0.5, 0.5))
	n := e.NormalAt(0.5, 0.5)
	assert.InDelta(t, -1, n.Y, 1e-12, "x-tangent × z-dir = -y")
}

// TestRevolution_Evaluation verifies the rotational sweep surface: a
// vertical segment at radius 1 revolved a full turn forms a cylinder.
func TestRevolution_Evaluation(t *testing.T) {
	r := geom.Revolution{
		C:     geom.Line{A: geom.Point3{X: 1}, B: geom.Point3{X: 1, Z: 1}},
		Ax:    geom.Axis{Dir: geom.Vector3{Z: 1}},
		Angle: 2 * math.Pi,
	}

	p := r.PointAt(0.5, 0.25)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)
	assert.InDelta(t, 0.5, p.Z, 1e-12)

	// Normal at any sample is radial (unit, horizontal).
	n := r.NormalAt(0.5, 0)
	assert.InDelta(t, 0, n.Z, 1e-12)
	assert.InDelta(t, 1, math.Hypot(n.X, n.Y), 1e-12)
}

// TestRevolution_ApexNormalIsZero verifies the documented degeneracy: on
// the axis the circumferential derivative vanishes.
func TestRevolution_ApexNormalIsZero(t *testing.T) {
	r := geom.Revolution{
		C:     geom.Line{A: geom.Point3{}, B: geom.Point3{X: 1, Z: 1}},
		Ax:    geom.Axis{Dir: geom.Vector3{Z: 1}},
		Angle: 2 * math.Pi,
	}

	assert.Equal(t, geom.Vector3{}, r.NormalAt(0, 0.5), "apex normal degenerates to zero")
}

// TestRuled_Blend verifies the loft surface interpolates its rails.
func TestRuled_Blend(t *testing.T) {
	rl := geom.Ruled{
		C0: geom.Line{A: geom.Point3{}, B: geom.Point3{X: 2}},
		C1: geom.Line{A: geom.Point3{Z: 1}, B: geom.Point3{X: 2, Z: 1}},
	}

	assert.Equal(t, geom.Point3{X: 1}, rl.PointAt(0.5, 0))
	assert.Equal(t, geom.Point3{X: 1, Z: 1}, rl.PointAt(0.5, 1))
	assert.Equal(t, geom.Point3{X: 1, Z: 0.5}, rl.PointAt(0.5, 0.5))
}

// TestProjectPoint_SampledSurfaces verifies the generic projection finds
// near-zero distances for on-surface points of every reference surface.
func TestProjectPoint_SampledSurfaces(t *testing.T) {
	surfaces := map[string]geom.Surface{
		"extrusion": geom.Extrusion{
			C:   geom.Line{A: geom.Point3{}, B: geom.Point3{X: 1}},
			Dir: geom.Vector3{Z: 1},
		},
		"revolution": geom.Revolution{
			C:     geom.Line{A: geom.Point3{X: 1}, B: geom.Point3{X: 1, Z: 1}},
			Ax:    geom.Axis{Dir: geom.Vector3{Z: 1}},
			Angle: math.Pi,
		},
		"ruled": geom.Ruled{
			C0: geom.Line{A: geom.Point3{}, B: geom.Point3{X: 1}},
			C1: geom.Line{A: geom.Point3{Y: 1}, B: geom.Point3{X: 1, Y: 1}},
		},
	}
	for name, s := range surfaces {
		on := s.PointAt(0.37, 0.61)
		_, _, dist := geom.ProjectPoint(s, on)
		assert.InDelta(t, 0, dist, 1e-4, "on-surface point should project to ~0 distance (%s)", name)
	}
}

// TestProjectPoint_PrefersProjector verifies planes bypass sampling.
func TestProjectPoint_PrefersProjector(t *testing.T) {
	pl := geom.Plane{U: geom.Vector3{X: 1}, V: geom.Vector3{Y: 1}}
	u, v, dist := geom.ProjectPoint(pl, geom.Point3{X: 100, Y: -250})
	assert.Equal(t, 100.0, u)
	assert.Equal(t, -250.0, v)
	assert.Equal(t, 0.0, dist)
}

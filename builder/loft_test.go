package builder_test

import (
	"testing"

	"github.com/alxpettit/truck/builder"
	"github.com/alxpettit/truck/geom"
	"github.com/alxpettit/truck/topo"
	"github.com/alxpettit/truck/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// centeredSquare builds a closed square of half-width h at height z,
// wound counterclockwise seen from +z.
func centeredSquare(t *testing.T, h, z float64) topo.Wire {
	t.Helper()
	w, err := builder.Polyline(true,
		builder.Vertex(geom.Point3{X: -h, Y: -h, Z: z}),
		builder.Vertex(geom.Point3{X: h, Y: -h, Z: z}),
		builder.Vertex(geom.Point3{X: h, Y: h, Z: z}),
		builder.Vertex(geom.Point3{X: -h, Y: h, Z: z}),
	)
	require.NoError(t, err)

	return w
}

// TestLoftSolid_Frustum verifies a two-section loft caps into a solid
// with the pyramidal frustum volume.
func TestLoftSolid_Frustum(t *testing.T) {
	bottom := centeredSquare(t, 1, 0)
	top := centeredSquare(t, 0.5, 1)

	sol, err := builder.LoftSolid(nil, bottom, top)
	require.NoError(t, err)

	shell := sol.OuterShell()
	assert.Equal(t, 6, shell.Len())
	assert.True(t, shell.IsClosed())

	// h/3 · (A0 + A1 + √(A0·A1)) = 1/3 · (4 + 1 + 2).
	assert.InDelta(t, 7.0/3, validate.SignedVolume(shell), 0.05)
}

// TestLoft_MultiSectionTube verifies a three-section loft of closed
// profiles is an open tube with one band of faces per gap.
func TestLoft_MultiSectionTube(t *testing.T) {
	shell, err := builder.Loft(nil,
		centeredSquare(t, 1, 0),
		centeredSquare(t, 1.2, 1),
		centeredSquare(t, 1, 2),
	)
	require.NoError(t, err)

	assert.Equal(t, 8, shell.Len(), "two bands of four faces")
	assert.False(t, shell.IsClosed())
	assert.Len(t, shell.BoundaryEdges(), 8, "bottom and top rims only")
}

// TestLoft_SectionMismatch verifies the structural preconditions.
func TestLoft_SectionMismatch(t *testing.T) {
	sq := centeredSquare(t, 1, 0)

	// Too few sections.
	_, err := builder.Loft(nil, sq)
	assert.ErrorIs(t, err, builder.ErrTopologicalInconsistency)

	// Edge-count mismatch.
	tri, err := builder.Polyline(true,
		builder.Vertex(geom.Point3{X: -1, Y: -1, Z: 1}),
		builder.Vertex(geom.Point3{X: 1, Y: -1, Z: 1}),
		builder.Vertex(geom.Point3{Y: 1, Z: 1}),
	)
	require.NoError(t, err)
	_, err = builder.Loft(nil, sq, tri)
	assert.ErrorIs(t, err, builder.ErrTopologicalInconsistency)

	// Open against closed.
	open, err := builder.Polyline(false,
		builder.Vertex(geom.Point3{X: -1, Z: 1}),
		builder.Vertex(geom.Point3{Z: 1}),
		builder.Vertex(geom.Point3{X: 1, Z: 1}),
		builder.Vertex(geom.Point3{X: 2, Z: 1}),
		builder.Vertex(geom.Point3{X: 3, Z: 1}),
	)
	require.NoError(t, err)
	_, err = builder.Loft(nil, sq, open)
	assert.ErrorIs(t, err, builder.ErrTopologicalInconsistency)

	// Coincident sections collapse the band.
	_, err = builder.Loft(nil, sq, centeredSquare(t, 1, 0))
	assert.ErrorIs(t, err, builder.ErrDegenerateGeometry)
}

// TestLoft_GuidePathOrdering verifies the path fixes the intended section
// order.
func TestLoft_GuidePathOrdering(t *testing.T) {
	bottom := centeredSquare(t, 1, 0)
	top := centeredSquare(t, 0.5, 1)
	up := geom.Line{A: geom.Point3{}, B: geom.Point3{Z: 1}}

	_, err := builder.Loft(up, bottom, top)
	assert.NoError(t, err)

	_, err = builder.Loft(up, top, bottom)
	assert.ErrorIs(t, err, builder.ErrGeometricViolation)
}

// TestLoft_OpenSections verifies open profiles skin into an open sheet.
func TestLoft_OpenSections(t *testing.T) {
	mk := func(z float64) topo.Wire {
		w, err := builder.Polyline(false,
			builder.Vertex(geom.Point3{Z: z}),
			builder.Vertex(geom.Point3{X: 1, Z: z}),
			builder.Vertex(geom.Point3{X: 2, Y: 0.5, Z: z}),
		)
		require.NoError(t, err)

		return w
	}

	shell, err := builder.Loft(nil, mk(0), mk(1))
	require.NoError(t, err)
	assert.Equal(t, 2, shell.Len())
	assert.False(t, shell.IsClosed())
}

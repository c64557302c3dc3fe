package validate_test

import (
	"testing"

	"github.com/alxpettit/truck/geom"
	"github.com/alxpettit/truck/tolerance"
	"github.com/alxpettit/truck/topo"
	"github.com/alxpettit/truck/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// line builds a straight edge between two existing vertices.
func line(v0, v1 *topo.Vertex) topo.Edge {
	return topo.NewEdge(v0, v1, geom.Line{A: v0.Point(), B: v1.Point()})
}

// planeFor builds a plane through three points.
func planeFor(a, b, c geom.Point3) geom.Plane {
	return geom.Plane{Origin: a, U: b.Sub(a), V: c.Sub(a)}
}

// tetrahedron hand-builds a closed, outward-oriented unit tetrahedron
// with properly shared edge cores.
func tetrahedron() topo.Shell {
	a := topo.NewVertex(geom.Point3{})
	b := topo.NewVertex(geom.Point3{X: 1})
	c := topo.NewVertex(geom.Point3{Y: 1})
	d := topo.NewVertex(geom.Point3{Z: 1})

	ab, ac, ad := line(a, b), line(a, c), line(a, d)
	bc, bd, cd := line(b, c), line(b, d), line(c, d)

	f1 := topo.NewFace(planeFor(a.Point(), c.Point(), b.Point()),
		topo.NewWire(ac, bc.Inverse(), ab.Inverse())) // bottom, -Z
	f2 := topo.NewFace(planeFor(a.Point(), b.Point(), d.Point()),
		topo.NewWire(ab, bd, ad.Inverse())) // -Y side
	f3 := topo.NewFace(planeFor(a.Point(), d.Point(), c.Point()),
		topo.NewWire(ad, cd.Inverse(), ac.Inverse())) // -X side
	f4 := topo.NewFace(planeFor(b.Point(), c.Point(), d.Point()),
		topo.NewWire(bc, cd, bd.Inverse())) // slanted

	return topo.NewShell(f1, f2, f3, f4)
}

// openTent builds two triangles sharing one edge — manifold but open.
func openTent() topo.Shell {
	a := topo.NewVertex(geom.Point3{})
	b := topo.NewVertex(geom.Point3{X: 1})
	c := topo.NewVertex(geom.Point3{X: 0.5, Y: 1})
	d := topo.NewVertex(geom.Point3{X: 0.5, Y: -1})

	ab := line(a, b)
	f1 := topo.NewFace(planeFor(a.Point(), b.Point(), c.Point()),
		topo.NewWire(ab, line(b, c), line(c, a)))
	f2 := topo.NewFace(planeFor(b.Point(), a.Point(), d.Point()),
		topo.NewWire(ab.Inverse(), line(a, d), line(d, b)))

	return topo.NewShell(f1, f2)
}

// TestShell_ClosedTetrahedronPasses verifies a well-formed closed shell
// clears every check.
func TestShell_ClosedTetrahedronPasses(t *testing.T) {
	assert.NoError(t, validate.Shell(tetrahedron(), tolerance.Default()))
}

// TestShell_OpenNeedsDeclaration verifies boundary edges fail a default
// run and pass an Open() run.
func TestShell_OpenNeedsDeclaration(t *testing.T) {
	tent := openTent()
	pol := tolerance.Default()

	err := validate.Shell(tent, pol)
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrNonManifold)

	var v *validate.Violation
	require.ErrorAs(t, err, &v)
	assert.NotEqual(t, topo.NilID, v.Entity, "violation names the offending edge")

	assert.NoError(t, validate.Shell(tent, pol, validate.Open()))
}

// TestShell_SameDirectionReferenceFails verifies two same-direction
// references of one edge are non-manifold even with Open().
func TestShell_SameDirectionReferenceFails(t *testing.T) {
	a := topo.NewVertex(geom.Point3{})
	b := topo.NewVertex(geom.Point3{X: 1})
	c := topo.NewVertex(geom.Point3{Y: 1})
	d := topo.NewVertex(geom.Point3{Y: -1})
	ab := line(a, b)

	f1 := topo.NewFace(planeFor(a.Point(), b.Point(), c.Point()),
		topo.NewWire(ab, line(b, c), line(c, a)))
	f2 := topo.NewFace(planeFor(a.Point(), b.Point(), d.Point()),
		topo.NewWire(ab, line(b, d), line(d, a)))

	err := validate.Shell(topo.NewShell(f1, f2), tolerance.Default(), validate.Open())
	assert.ErrorIs(t, err, validate.ErrNonManifold)
}

// TestShell_InwardOrientationFails verifies the signed-volume heuristic
// rejects an inside-out shell.
func TestShell_InwardOrientationFails(t *testing.T) {
	err := validate.Shell(tetrahedron().Inverse(), tolerance.Default())
	assert.ErrorIs(t, err, validate.ErrOrientation)
}

// TestShell_ProximityAudit verifies unmerged coincidences and in-band
// near-misses both surface, with the right sentinel each.
func TestShell_ProximityAudit(t *testing.T) {
	build := func(gap float64) topo.Shell {
		a := topo.NewVertex(geom.Point3{})
		b := topo.NewVertex(geom.Point3{X: 1})
		c := topo.NewVertex(geom.Point3{X: 0.5, Y: 1})
		d := topo.NewVertex(geom.Point3{X: 0.5, Y: 1 + gap}) // near c
		ab := line(a, b)
		f1 := topo.NewFace(planeFor(a.Point(), b.Point(), c.Point()),
			topo.NewWire(ab, line(b, c), line(c, a)))
		f2 := topo.NewFace(planeFor(b.Point(), a.Point(), d.Point()),
			topo.NewWire(ab.Inverse(), line(a, d), line(d, b)))

		return topo.NewShell(f1, f2)
	}
	pol := tolerance.Default(tolerance.WithPoint(1e-4), tolerance.WithAmbiguityFactor(2))

	err := validate.Shell(build(1e-5), pol, validate.Open())
	assert.ErrorIs(t, err, validate.ErrProximity, "below tolerance: unmerged coincidence")

	err = validate.Shell(build(1.5e-4), pol, validate.Open())
	assert.ErrorIs(t, err, validate.ErrAmbiguous, "inside the band: surfaced, not resolved")

	assert.NoError(t, validate.Shell(build(1e-2), pol, validate.Open()), "clearly distinct")
}

// TestShell_DisconnectedFails verifies two edge-disjoint faces are not
// one shell.
func TestShell_DisconnectedFails(t *testing.T) {
	f1 := topo.NewFace(planeFor(geom.Point3{}, geom.Point3{X: 1}, geom.Point3{Y: 1}),
		topo.NewWire(
			line(topo.NewVertex(geom.Point3{}), topo.NewVertex(geom.Point3{X: 1})),
		))
	f2 := topo.NewFace(planeFor(geom.Point3{X: 5}, geom.Point3{X: 6}, geom.Point3{X: 5, Y: 1}),
		topo.NewWire(
			line(topo.NewVertex(geom.Point3{X: 5}), topo.NewVertex(geom.Point3{X: 6})),
		))

	err := validate.Shell(topo.NewShell(f1, f2), tolerance.Default(), validate.Open())
	assert.ErrorIs(t, err, validate.ErrDisconnected)
}

// TestSignedVolume verifies the heuristic is exact on the tetrahedron
// (1/6) and negates under shell inversion.
func TestSignedVolume(t *testing.T) {
	tetra := tetrahedron()

	assert.InDelta(t, 1.0/6, validate.SignedVolume(tetra), 1e-9)
	assert.InDelta(t, -1.0/6, validate.SignedVolume(tetra.Inverse()), 1e-9)
}

// TestSolid_VoidOrientation verifies a solid demands closed shells,
// positive outer volume, and negative void volume.
func TestSolid_VoidOrientation(t *testing.T) {
	pol := tolerance.Default()

	outer := tetrahedron()
	assert.NoError(t, validate.Solid(topo.NewSolid(outer), pol))

	// Inside-out outer shell.
	err := validate.Solid(topo.NewSolid(outer.Inverse()), pol)
	assert.ErrorIs(t, err, validate.ErrOrientation)

	// A void must face inward (negative volume): a same-orientation copy
	// shrunk inside would be positive, hence rejected; its inverse passes.
	void := topo.TransformedShell(outer, geom.Translation(geom.Vector3{X: 0.1, Y: 0.1, Z: 0.1}))
	err = validate.Solid(topo.NewSolid(outer, void), pol)
	assert.ErrorIs(t, err, validate.ErrOrientation)

	assert.NoError(t, validate.Solid(topo.NewSolid(outer, void.Inverse()), pol))

	// Open shells never form a solid.
	err = validate.Solid(topo.NewSolid(openTent()), pol)
	assert.ErrorIs(t, err, validate.ErrNonManifold)
}

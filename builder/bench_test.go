package builder_test

import (
	"math"
	"testing"

	"github.com/alxpettit/truck/builder"
	"github.com/alxpettit/truck/geom"
	"github.com/alxpettit/truck/topo"
)

// benchProfile builds a closed regular n-gon in the z=0 plane. Profile
// construction is excluded from the timed loop by the callers.
func benchProfile(b *testing.B, n int) topo.Wire {
	b.Helper()
	verts := make([]*topo.Vertex, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		verts = append(verts, builder.Vertex(geom.Point3{X: math.Cos(a), Y: math.Sin(a)}))
	}
	w, err := builder.Polyline(true, verts...)
	if err != nil {
		b.Fatalf("Polyline failed: %v", err)
	}

	return w
}

func benchmarkExtrudeSolid(b *testing.B, n int) {
	profile := benchProfile(b, n)
	dir := geom.Vector3{Z: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.ExtrudeSolid(profile, dir, 1); err != nil {
			b.Fatalf("ExtrudeSolid failed: %v", err)
		}
	}
}

// BenchmarkExtrudeSolid_Square sweeps a 4-gon; the cost is dominated by
// plane fitting and validation, not face assembly.
func BenchmarkExtrudeSolid_Square(b *testing.B) { benchmarkExtrudeSolid(b, 4) }

// BenchmarkExtrudeSolid_64gon sweeps a 64-gon to expose the quadratic
// vertex-proximity audit.
func BenchmarkExtrudeSolid_64gon(b *testing.B) { benchmarkExtrudeSolid(b, 64) }

// BenchmarkRevolveSolid_FullTurn revolves a square ring profile a full
// turn: seam sharing, arc caching, and solid validation per iteration.
func BenchmarkRevolveSolid_FullTurn(b *testing.B) {
	profile, err := builder.Polyline(true,
		builder.Vertex(geom.Point3{X: 1}),
		builder.Vertex(geom.Point3{X: 2}),
		builder.Vertex(geom.Point3{X: 2, Z: 1}),
		builder.Vertex(geom.Point3{X: 1, Z: 1}),
	)
	if err != nil {
		b.Fatalf("Polyline failed: %v", err)
	}
	axis := geom.Axis{Origin: geom.Point3{}, Dir: geom.Vector3{Z: 1}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.RevolveSolid(profile, axis, 2*math.Pi); err != nil {
			b.Fatalf("RevolveSolid failed: %v", err)
		}
	}
}

package builder_test

import (
	"fmt"
	"math"

	"github.com/alxpettit/truck/builder"
	"github.com/alxpettit/truck/geom"
	"github.com/alxpettit/truck/validate"
)

// ExampleExtrudeSolid builds a unit cube from a square profile.
func ExampleExtrudeSolid() {
	profile, _ := builder.Polyline(true,
		builder.Vertex(geom.Point3{}),
		builder.Vertex(geom.Point3{X: 1}),
		builder.Vertex(geom.Point3{X: 1, Y: 1}),
		builder.Vertex(geom.Point3{Y: 1}),
	)

	sol, err := builder.ExtrudeSolid(profile, geom.Vector3{Z: 1}, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	shell := sol.OuterShell()
	fmt.Printf("faces: %d\n", shell.Len())
	fmt.Printf("volume: %.2f\n", validate.SignedVolume(shell))
	// Output:
	// faces: 6
	// volume: 1.00
}

// ExampleKernel_Revolve contrasts a full turn, which closes onto the
// profile, with a half turn, which grows two caps.
func ExampleKernel_Revolve() {
	k := builder.New()
	axis := geom.Axis{Origin: geom.Point3{}, Dir: geom.Vector3{Z: 1}}
	profile, _ := k.Polyline(true,
		k.Vertex(geom.Point3{X: 1}),
		k.Vertex(geom.Point3{X: 2}),
		k.Vertex(geom.Point3{X: 2, Z: 1}),
		k.Vertex(geom.Point3{X: 1, Z: 1}),
	)

	full, _ := k.Revolve(profile, axis, 2*math.Pi)
	half, _ := k.Revolve(profile, axis, math.Pi)

	fmt.Printf("full turn: %d faces\n", full.Len())
	fmt.Printf("half turn: %d faces\n", half.Len())
	// Output:
	// full turn: 4 faces
	// half turn: 6 faces
}

package validate

import (
	"math"

	"github.com/alxpettit/truck/geom"
	"github.com/alxpettit/truck/tolerance"
	"github.com/alxpettit/truck/topo"
)

// edgeSamples is the per-edge sampling resolution of the signed-volume
// heuristic. Boundary loops of adjacent faces sample the shared curve at
// the same parameters, so the sampled mesh is watertight wherever the
// topology is.
const edgeSamples = 8

// config collects the validation switches.
type config struct {
	open bool
}

// Option adjusts a validation run.
type Option func(*config)

// Open declares the shell intentionally open: edges referenced exactly
// once are boundary edges, not violations. Solids never accept open
// shells.
func Open() Option {
	return func(c *config) { c.open = true }
}

// Shell checks a shell against the policy and returns the first
// violation, or nil. The checks and their order are documented on the
// package.
func Shell(s topo.Shell, pol tolerance.Policy, opts ...Option) error {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if v := checkManifold(s, cfg.open); v != nil {
		return v
	}
	if !cfg.open {
		if v := checkOrientation(s, pol); v != nil {
			return v
		}
	}
	if v := checkProximity(s.UniqueVertices(), pol); v != nil {
		return v
	}
	if v := checkConnected(s); v != nil {
		return v
	}

	return nil
}

// Solid checks every boundary shell of a solid: all must be closed and
// connected, the outer shell must enclose positive volume and each void
// negative volume, and the vertex-proximity audit runs across the whole
// solid so coincidences between shells are caught too.
func Solid(s topo.Solid, pol tolerance.Policy) error {
	for i, sh := range s.Shells() {
		if v := checkManifold(sh, false); v != nil {
			return v
		}
		if v := checkConnected(sh); v != nil {
			return v
		}
		vol := SignedVolume(sh)
		if i == 0 && vol <= 0 {
			return violationf(ErrOrientation, sh.Face(0).ID(),
				"outer shell volume %.6g, want > 0", vol)
		}
		if i > 0 && vol >= 0 {
			return violationf(ErrOrientation, sh.Face(0).ID(),
				"void shell volume %.6g, want < 0", vol)
		}
	}

	var verts []*topo.Vertex
	seen := make(map[topo.ID]struct{})
	for _, sh := range s.Shells() {
		for _, v := range sh.UniqueVertices() {
			if _, ok := seen[v.ID()]; !ok {
				seen[v.ID()] = struct{}{}
				verts = append(verts, v)
			}
		}
	}

	return errOrNil(checkProximity(verts, pol))
}

// errOrNil flattens a typed-nil *Violation into a plain nil error.
func errOrNil(v *Violation) error {
	if v == nil {
		return nil
	}

	return v
}

// checkManifold tallies edge uses across all face boundaries.
func checkManifold(s topo.Shell, open bool) *Violation {
	for _, use := range s.EdgeUses() {
		total := use.Forward + use.Reversed
		if use.Edge.IsDegenerate() {
			// Apex seams close onto themselves; one or two references are
			// both legal, more means the topology reuses a seam illegally.
			if total > 2 {
				return violationf(ErrNonManifold, use.Edge.ID(),
					"degenerate seam referenced %d times, want at most 2", total)
			}
			continue
		}
		switch {
		case total == 2 && use.Forward == 1:
			// Interior edge, opposite orientations: manifold.
		case total == 2:
			return violationf(ErrNonManifold, use.Edge.ID(),
				"edge referenced twice in the same direction")
		case total == 1 && open:
			// Boundary edge of a declared-open shell.
		case total == 1:
			return violationf(ErrNonManifold, use.Edge.ID(),
				"boundary edge in a shell expected to be closed")
		default:
			return violationf(ErrNonManifold, use.Edge.ID(),
				"edge referenced %d times, want 1 or 2", total)
		}
	}

	return nil
}

// checkOrientation applies the signed-volume heuristic to a closed shell.
func checkOrientation(s topo.Shell, pol tolerance.Policy) *Violation {
	vol := SignedVolume(s)
	if vol < 0 {
		return violationf(ErrOrientation, s.Face(0).ID(),
			"sampled signed volume %.6g, want > 0 (outward normals)", vol)
	}
	if pol.NearZero(vol) && s.Len() > 0 {
		return violationf(ErrOrientation, s.Face(0).ID(),
			"sampled signed volume %.6g within point tolerance of zero", vol)
	}

	return nil
}

// checkProximity audits all distinct vertex pairs against the point
// tolerance. Quadratic in the vertex count; shells are small relative to
// the cost of getting this wrong.
func checkProximity(verts []*topo.Vertex, pol tolerance.Policy) *Violation {
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			d := verts[i].Point().DistanceTo(verts[j].Point())
			switch pol.ClassifyDistance(d) {
			case tolerance.Coincident:
				return violationf(ErrProximity, verts[i].ID(),
					"distinct vertex %s at distance %.6g, below point tolerance %.6g",
					verts[j].ID(), d, pol.Point)
			case tolerance.Ambiguous:
				return violationf(ErrAmbiguous, verts[i].ID(),
					"distinct vertex %s at distance %.6g inside the ambiguity band around %.6g",
					verts[j].ID(), d, pol.Point)
			case tolerance.Distinct:
				// Fine.
			}
		}
	}

	return nil
}

// checkConnected walks faces breadth-first over shared edges.
func checkConnected(s topo.Shell) *Violation {
	if s.Len() <= 1 {
		return nil
	}

	// Edge core -> indices of faces referencing it.
	incident := make(map[topo.ID][]int)
	for i, f := range s.Faces() {
		for _, e := range f.Edges() {
			incident[e.ID()] = append(incident[e.ID()], i)
		}
	}

	visited := make(map[int]bool, s.Len())
	queue := []int{0}
	visited[0] = true
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, e := range s.Face(i).Edges() {
			for _, j := range incident[e.ID()] {
				if !visited[j] {
					visited[j] = true
					queue = append(queue, j)
				}
			}
		}
	}
	for i := 0; i < s.Len(); i++ {
		if !visited[i] {
			return violationf(ErrDisconnected, s.Face(i).ID(),
				"face unreachable from face 0 over shared edges")
		}
	}

	return nil
}

// SignedVolume estimates the volume enclosed by a shell via the
// divergence theorem. Positive means the face orientations agree on an
// outside; the magnitude converges on the true volume as sampling gets
// finer. Builders use the sign to orient assembled shells before
// validation.
//
// Faces on bounded-domain surfaces (sweeps, ruled patches) integrate
// P·(Pu×Pv) over a grid on the surface itself, so faces whose boundary
// collapses onto a seam (a full-turn revolution, a sphere) still weigh
// in. Faces on unbounded surfaces (planes) fall back to sampling the
// outer boundary loop and fan-triangulating it about its centroid; hole
// wires are ignored there — the heuristic classifies orientation, it is
// not a measure.
func SignedVolume(s topo.Shell) float64 {
	var vol float64
	for _, f := range s.Faces() {
		ud, vd := f.Surface().Domain()
		if bounded(ud) && bounded(vd) {
			vol += surfaceVolume(f, ud, vd)
		} else {
			vol += loopVolume(f)
		}
	}

	return vol
}

// bounded reports whether an interval can be gridded.
func bounded(i geom.Interval) bool {
	return !math.IsInf(i.Min, 0) && !math.IsInf(i.Max, 0)
}

// surfaceVolume integrates P·(Pu×Pv)/3 over the surface domain with a
// midpoint rule, central differences for the partials, and the face
// orientation as the sign.
func surfaceVolume(f topo.Face, ud, vd geom.Interval) float64 {
	s := f.Surface()
	du := ud.Length() / edgeSamples
	dv := vd.Length() / edgeSamples

	var vol float64
	for i := 0; i < edgeSamples; i++ {
		for j := 0; j < edgeSamples; j++ {
			u := ud.At((float64(i) + 0.5) / edgeSamples)
			v := vd.At((float64(j) + 0.5) / edgeSamples)
			p := s.PointAt(u, v)
			pu := s.PointAt(u+du/2, v).Sub(s.PointAt(u-du/2, v)).Scale(1 / du)
			pv := s.PointAt(u, v+dv/2).Sub(s.PointAt(u, v-dv/2)).Scale(1 / dv)
			n := pu.Cross(pv).Scale(du * dv)
			if !f.Forward() {
				n = n.Neg()
			}
			vol += p.Vec().Dot(n) / 3
		}
	}

	return vol
}

// loopVolume fan-triangulates the sampled outer loop about its centroid
// and sums signed tetrahedra against the origin.
func loopVolume(f topo.Face) float64 {
	loop := sampleLoop(f)
	if len(loop) < 3 {
		return 0
	}

	var acc geom.Vector3
	for _, p := range loop {
		acc = acc.Add(p.Vec())
	}
	centroid := acc.Scale(1 / float64(len(loop)))

	var vol float64
	for i := 0; i < len(loop); i++ {
		a := loop[i].Vec()
		b := loop[(i+1)%len(loop)].Vec()
		// Signed tetrahedron (origin, centroid, a, b).
		vol += centroid.Dot(a.Cross(b)) / 6
	}

	return vol
}

// sampleLoop samples the outer wire of a face at edgeSamples points per
// edge, dropping each edge's terminal point (the next edge re-supplies
// it).
func sampleLoop(f topo.Face) []geom.Point3 {
	var loop []geom.Point3
	for _, e := range f.Outer().Edges() {
		c := e.OrientedCurve()
		d := c.Domain()
		for k := 0; k < edgeSamples; k++ {
			loop = append(loop, c.PointAt(d.At(float64(k)/edgeSamples)))
		}
	}

	return loop
}

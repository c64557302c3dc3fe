package topo

import "github.com/alxpettit/truck/geom"

// Mapper copies topology with fresh identities while preserving sharing:
// a vertex or edge referenced by several parents is copied once and the
// copy is reused everywhere. Geometry handles are shared as-is, or — for
// a transform mapper — wrapped in geom.Transformed* views; the underlying
// provider objects are never duplicated.
//
// A Mapper is single-use scratch state for one copy operation; it is not
// safe for concurrent use.
type Mapper struct {
	trf   *geom.Transform
	verts map[ID]*Vertex
	edges map[ID]*edgeCore
	faces map[ID]*faceCore
}

// NewMapper returns an identity-duplicating mapper (a clone: same
// geometry handles, fresh topology).
func NewMapper() *Mapper {
	return &Mapper{
		verts: make(map[ID]*Vertex),
		edges: make(map[ID]*edgeCore),
		faces: make(map[ID]*faceCore),
	}
}

// NewTransformMapper returns a mapper whose copies see their geometry
// through the rigid transform trf.
func NewTransformMapper(trf geom.Transform) *Mapper {
	m := NewMapper()
	m.trf = &trf

	return m
}

// Pin forces v to map to itself. Sweep builders pin apex vertices lying
// on a revolution axis so the rotated profile shares them instead of
// duplicating a coincident copy.
func (m *Mapper) Pin(v *Vertex) {
	m.verts[v.ID()] = v
}

// Vertex maps v, copying it on first encounter.
func (m *Mapper) Vertex(v *Vertex) *Vertex {
	if v == nil {
		return nil
	}
	if mapped, ok := m.verts[v.ID()]; ok {
		return mapped
	}
	pt := v.pt
	if m.trf != nil {
		pt = m.trf.Apply(pt)
	}
	nv := &Vertex{id: NewID(), pt: pt}
	m.verts[v.ID()] = nv

	return nv
}

// curve maps a geometry handle per the mapper mode.
func (m *Mapper) curve(c geom.Curve) geom.Curve {
	if m.trf == nil {
		return c
	}

	return geom.TransformedCurve{C: c, Trf: *m.trf}
}

// surface maps a geometry handle per the mapper mode.
func (m *Mapper) surface(s geom.Surface) geom.Surface {
	if m.trf == nil {
		return s
	}

	return geom.TransformedSurface{S: s, Trf: *m.trf}
}

// Edge maps e, copying its core on first encounter and preserving the
// view's orientation and degeneracy flag.
func (m *Mapper) Edge(e Edge) Edge {
	core, ok := m.edges[e.core.id]
	if !ok {
		core = &edgeCore{
			id:         NewID(),
			front:      m.Vertex(e.core.front),
			back:       m.Vertex(e.core.back),
			curve:      m.curve(e.core.curve),
			degenerate: e.core.degenerate,
		}
		m.edges[e.core.id] = core
	}

	return Edge{core: core, forward: e.forward}
}

// Wire maps every edge of w, preserving order and orientation.
func (m *Mapper) Wire(w Wire) Wire {
	out := make([]Edge, len(w.edges))
	for i, e := range w.edges {
		out[i] = m.Edge(e)
	}

	return Wire{edges: out}
}

// Face maps f, copying its core on first encounter and preserving the
// view's orientation.
func (m *Mapper) Face(f Face) Face {
	core, ok := m.faces[f.core.id]
	if !ok {
		bs := make([]Wire, len(f.core.boundaries))
		for i, w := range f.core.boundaries {
			bs[i] = m.Wire(w)
		}
		core = &faceCore{id: NewID(), surface: m.surface(f.core.surface), boundaries: bs}
		m.faces[f.core.id] = core
	}

	return Face{core: core, forward: f.forward}
}

// Shell maps every face of s, preserving order and orientation.
func (m *Mapper) Shell(s Shell) Shell {
	out := make([]Face, len(s.faces))
	for i, f := range s.faces {
		out[i] = m.Face(f)
	}

	return Shell{faces: out}
}

// Solid maps every shell of s.
func (m *Mapper) Solid(s Solid) Solid {
	out := make([]Shell, len(s.shells))
	for i, sh := range s.shells {
		out[i] = m.Shell(sh)
	}

	return Solid{shells: out}
}

// Clone duplicates the wire's topology, sharing geometry handles.
func (w Wire) Clone() Wire {
	return NewMapper().Wire(w)
}

// Clone duplicates the face's topology, sharing geometry handles.
func (f Face) Clone() Face {
	return NewMapper().Face(f)
}

// Clone duplicates the shell's topology, sharing geometry handles.
func (s Shell) Clone() Shell {
	return NewMapper().Shell(s)
}

// Clone duplicates the solid's topology, sharing geometry handles.
func (s Solid) Clone() Solid {
	return NewMapper().Solid(s)
}

// TransformedWire copies w with fresh identities, its geometry seen
// through trf.
func TransformedWire(w Wire, trf geom.Transform) Wire {
	return NewTransformMapper(trf).Wire(w)
}

// TransformedFace copies f with fresh identities, its geometry seen
// through trf.
func TransformedFace(f Face, trf geom.Transform) Face {
	return NewTransformMapper(trf).Face(f)
}

// TransformedShell copies s with fresh identities, its geometry seen
// through trf.
func TransformedShell(s Shell, trf geom.Transform) Shell {
	return NewTransformMapper(trf).Shell(s)
}

// TransformedSolid copies s with fresh identities, its geometry seen
// through trf.
func TransformedSolid(s Solid, trf geom.Transform) Solid {
	return NewTransformMapper(trf).Solid(s)
}

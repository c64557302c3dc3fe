package topo

// Shell is a set of faces intended to form a connected surface. Shells
// are values without identity tokens; the faces carry the identity.
type Shell struct {
	faces []Face
}

// NewShell builds a shell over the given oriented faces, in construction
// order.
func NewShell(faces ...Face) Shell {
	own := make([]Face, len(faces))
	copy(own, faces)

	return Shell{faces: own}
}

// Len returns the number of faces.
func (s Shell) Len() int {
	return len(s.faces)
}

// Face returns the i-th oriented face.
func (s Shell) Face(i int) Face {
	return s.faces[i]
}

// Faces returns a copy of the face sequence in construction order.
func (s Shell) Faces() []Face {
	out := make([]Face, len(s.faces))
	copy(out, s.faces)

	return out
}

// Inverse returns the shell with every face flipped (inside becomes
// outside). Face order is preserved; cores are shared.
func (s Shell) Inverse() Shell {
	out := make([]Face, len(s.faces))
	for i, f := range s.faces {
		out[i] = f.Inverse()
	}

	return Shell{faces: out}
}

// EdgeUse tallies how often a shell's faces traverse an edge core in
// each direction.
type EdgeUse struct {
	Edge     Edge // forward view of the core
	Forward  int
	Reversed int
}

// EdgeUses walks every face boundary and tallies per-core edge
// references, in first-encounter order. This is the raw material for the
// manifold check: an interior edge of a manifold shell shows (1,1).
func (s Shell) EdgeUses() []EdgeUse {
	index := make(map[ID]int)
	var out []EdgeUse
	for _, f := range s.faces {
		for _, e := range f.Edges() {
			i, seen := index[e.ID()]
			if !seen {
				i = len(out)
				index[e.ID()] = i
				fwd := e
				if !fwd.Forward() {
					fwd = fwd.Inverse()
				}
				out = append(out, EdgeUse{Edge: fwd})
			}
			if e.Forward() {
				out[i].Forward++
			} else {
				out[i].Reversed++
			}
		}
	}

	return out
}

// BoundaryEdges returns the edges referenced exactly once by the shell's
// faces — the open rim. Degenerate apex seams are never boundaries.
// A closed shell returns nil.
func (s Shell) BoundaryEdges() []Edge {
	var out []Edge
	for _, use := range s.EdgeUses() {
		if use.Edge.IsDegenerate() {
			continue
		}
		if use.Forward+use.Reversed == 1 {
			out = append(out, use.Edge)
		}
	}

	return out
}

// IsClosed reports whether the shell has no boundary edges.
func (s Shell) IsClosed() bool {
	return len(s.BoundaryEdges()) == 0
}

// UniqueEdges returns one forward view per edge core, in first-encounter
// order across the face boundaries.
func (s Shell) UniqueEdges() []Edge {
	uses := s.EdgeUses()
	out := make([]Edge, len(uses))
	for i, u := range uses {
		out[i] = u.Edge
	}

	return out
}

// UniqueVertices returns each referenced vertex once, in first-encounter
// order across the face boundaries.
func (s Shell) UniqueVertices() []*Vertex {
	seen := make(map[ID]struct{})
	var out []*Vertex
	for _, f := range s.faces {
		for _, e := range f.Edges() {
			for _, v := range []*Vertex{e.Front(), e.Back()} {
				if _, ok := seen[v.ID()]; !ok {
					seen[v.ID()] = struct{}{}
					out = append(out, v)
				}
			}
		}
	}

	return out
}

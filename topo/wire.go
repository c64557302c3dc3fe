package topo

// Wire is an ordered sequence of oriented edges. Wires are values without
// their own identity token: two wires over the same edges in the same
// order are interchangeable. Continuity and closure are identity
// questions — consecutive edges must share the same vertex, not merely
// coincident coordinates (the builder refuses un-merged coincidences).
type Wire struct {
	edges []Edge
}

// NewWire builds a wire over the given oriented edges. Structural only;
// continuity validation lives in the builder.
func NewWire(edges ...Edge) Wire {
	own := make([]Edge, len(edges))
	copy(own, edges)

	return Wire{edges: own}
}

// Len returns the number of edges.
func (w Wire) Len() int {
	return len(w.edges)
}

// Edge returns the i-th oriented edge.
func (w Wire) Edge(i int) Edge {
	return w.edges[i]
}

// Edges returns a copy of the oriented edge sequence in construction
// order.
func (w Wire) Edges() []Edge {
	out := make([]Edge, len(w.edges))
	copy(out, w.edges)

	return out
}

// FrontVertex returns the first edge's starting vertex, or nil for an
// empty wire.
func (w Wire) FrontVertex() *Vertex {
	if len(w.edges) == 0 {
		return nil
	}

	return w.edges[0].Front()
}

// BackVertex returns the last edge's ending vertex, or nil for an empty
// wire.
func (w Wire) BackVertex() *Vertex {
	if len(w.edges) == 0 {
		return nil
	}

	return w.edges[len(w.edges)-1].Back()
}

// IsContinuous reports whether every consecutive pair shares its meeting
// vertex by identity.
func (w Wire) IsContinuous() bool {
	for i := 1; i < len(w.edges); i++ {
		if !SameVertex(w.edges[i-1].Back(), w.edges[i].Front()) {
			return false
		}
	}

	return true
}

// IsClosed reports whether the wire is a continuous loop: non-empty,
// continuous, and ending at its own starting vertex.
func (w Wire) IsClosed() bool {
	if len(w.edges) == 0 {
		return false
	}

	return w.IsContinuous() && SameVertex(w.BackVertex(), w.FrontVertex())
}

// Inverse returns the wire traversed backwards: edge order reversed and
// every edge inverted. The underlying cores are shared.
func (w Wire) Inverse() Wire {
	out := make([]Edge, len(w.edges))
	for i, e := range w.edges {
		out[len(w.edges)-1-i] = e.Inverse()
	}

	return Wire{edges: out}
}

// Vertices returns the traversal-order vertex sequence: the front of
// every edge, plus the final back vertex when the wire is open. For a
// closed wire the length equals Len().
func (w Wire) Vertices() []*Vertex {
	if len(w.edges) == 0 {
		return nil
	}
	out := make([]*Vertex, 0, len(w.edges)+1)
	for _, e := range w.edges {
		out = append(out, e.Front())
	}
	if !SameVertex(w.BackVertex(), w.FrontVertex()) {
		out = append(out, w.BackVertex())
	}

	return out
}

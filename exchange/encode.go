// SPDX-License-Identifier: MIT
// Package: truck/exchange
//
// encode.go — topology to Document. Entities are interned by identity:
// however many oriented references point at a core, it is recorded once,
// so the document mirrors the sharing structure exactly.

package exchange

import (
	"github.com/alxpettit/truck/topo"
)

// EncodeShell serializes one shell into a fresh document.
func EncodeShell(s topo.Shell, codec Codec) (*Document, error) {
	enc := newEncoder(codec)
	if _, err := enc.shell(s); err != nil {
		return nil, err
	}

	return enc.doc, nil
}

// EncodeSolid serializes one solid (outer shell plus voids) into a fresh
// document.
func EncodeSolid(s topo.Solid, codec Codec) (*Document, error) {
	enc := newEncoder(codec)
	outer, err := enc.shell(s.OuterShell())
	if err != nil {
		return nil, err
	}
	var voids []int
	for _, v := range s.Voids() {
		i, err := enc.shell(v)
		if err != nil {
			return nil, err
		}
		voids = append(voids, i)
	}
	enc.doc.Solids = append(enc.doc.Solids, SolidRec{Outer: outer, Voids: voids})

	return enc.doc, nil
}

type encoder struct {
	codec Codec
	doc   *Document
	verts map[topo.ID]int
	edges map[topo.ID]int
	faces map[topo.ID]int
}

func newEncoder(codec Codec) *encoder {
	if codec == nil {
		codec = StdCodec{}
	}

	return &encoder{
		codec: codec,
		doc:   NewDocument(),
		verts: make(map[topo.ID]int),
		edges: make(map[topo.ID]int),
		faces: make(map[topo.ID]int),
	}
}

func (e *encoder) vertex(v *topo.Vertex) int {
	if i, ok := e.verts[v.ID()]; ok {
		return i
	}
	p := v.Point()
	i := len(e.doc.Vertices)
	e.doc.Vertices = append(e.doc.Vertices, VertexRec{
		ID:    v.ID().String(),
		Point: [3]float64{p.X, p.Y, p.Z},
	})
	e.verts[v.ID()] = i

	return i
}

// edge interns the core in its forward orientation; the returned
// reference carries the view's direction.
func (e *encoder) edge(ed topo.Edge) (EdgeRef, error) {
	if i, ok := e.edges[ed.ID()]; ok {
		return EdgeRef{Edge: i, Forward: ed.Forward()}, nil
	}

	spec, err := e.codec.EncodeCurve(ed.Curve())
	if err != nil {
		return EdgeRef{}, err
	}
	i := len(e.doc.Edges)
	e.doc.Edges = append(e.doc.Edges, EdgeRec{
		ID:         ed.ID().String(),
		Front:      e.vertex(ed.AbsFront()),
		Back:       e.vertex(ed.AbsBack()),
		Degenerate: ed.IsDegenerate(),
		Curve:      spec,
	})
	e.edges[ed.ID()] = i

	return EdgeRef{Edge: i, Forward: ed.Forward()}, nil
}

func (e *encoder) wire(w topo.Wire) (WireRec, error) {
	refs := make([]EdgeRef, 0, w.Len())
	for _, ed := range w.Edges() {
		ref, err := e.edge(ed)
		if err != nil {
			return WireRec{}, err
		}
		refs = append(refs, ref)
	}

	return WireRec{Edges: refs}, nil
}

// face interns the core in its forward orientation (boundaries as
// constructed); the reference carries the view's direction.
func (e *encoder) face(f topo.Face) (FaceRef, error) {
	if i, ok := e.faces[f.ID()]; ok {
		return FaceRef{Face: i, Forward: f.Forward()}, nil
	}

	fwd := f
	if !fwd.Forward() {
		fwd = fwd.Inverse()
	}
	spec, err := e.codec.EncodeSurface(fwd.Surface())
	if err != nil {
		return FaceRef{}, err
	}
	outer, err := e.wire(fwd.Outer())
	if err != nil {
		return FaceRef{}, err
	}
	var inners []WireRec
	for _, w := range fwd.Inners() {
		rec, err := e.wire(w)
		if err != nil {
			return FaceRef{}, err
		}
		inners = append(inners, rec)
	}

	i := len(e.doc.Faces)
	e.doc.Faces = append(e.doc.Faces, FaceRec{
		ID:      fwd.ID().String(),
		Surface: spec,
		Outer:   outer,
		Inners:  inners,
	})
	e.faces[f.ID()] = i

	return FaceRef{Face: i, Forward: f.Forward()}, nil
}

func (e *encoder) shell(s topo.Shell) (int, error) {
	refs := make([]FaceRef, 0, s.Len())
	for _, f := range s.Faces() {
		ref, err := e.face(f)
		if err != nil {
			return 0, err
		}
		refs = append(refs, ref)
	}
	i := len(e.doc.Shells)
	e.doc.Shells = append(e.doc.Shells, ShellRec{Faces: refs})

	return i, nil
}

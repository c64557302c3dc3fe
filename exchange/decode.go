// SPDX-License-Identifier: MIT
// Package: truck/exchange
//
// decode.go — Document to topology. Decoding mints fresh identities but
// rebuilds the exact sharing structure: one record, one core, however
// many oriented references point at it.

package exchange

import (
	"fmt"

	"github.com/alxpettit/truck/topo"
)

// DecodeShell rebuilds shell i of the document.
func DecodeShell(doc *Document, i int, codec Codec) (topo.Shell, error) {
	dec, err := newDecoder(doc, codec)
	if err != nil {
		return topo.Shell{}, err
	}

	return dec.shell(i)
}

// DecodeSolid rebuilds solid i of the document.
func DecodeSolid(doc *Document, i int, codec Codec) (topo.Solid, error) {
	dec, err := newDecoder(doc, codec)
	if err != nil {
		return topo.Solid{}, err
	}
	if i < 0 || i >= len(doc.Solids) {
		return topo.Solid{}, fmt.Errorf("solid %d of %d: %w", i, len(doc.Solids), ErrMalformed)
	}

	rec := doc.Solids[i]
	outer, err := dec.shell(rec.Outer)
	if err != nil {
		return topo.Solid{}, err
	}
	voids := make([]topo.Shell, 0, len(rec.Voids))
	for _, vi := range rec.Voids {
		sh, err := dec.shell(vi)
		if err != nil {
			return topo.Solid{}, err
		}
		voids = append(voids, sh)
	}

	return topo.NewSolid(outer, voids...), nil
}

type decoder struct {
	doc   *Document
	verts []*topo.Vertex
	edges []topo.Edge
	faces []topo.Face
}

// newDecoder materializes the shared vertex, edge, and face tables.
func newDecoder(doc *Document, codec Codec) (*decoder, error) {
	if codec == nil {
		codec = StdCodec{}
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("document version %d, want %d: %w", doc.Version, Version, ErrVersion)
	}
	d := &decoder{doc: doc}

	d.verts = make([]*topo.Vertex, 0, len(doc.Vertices))
	for _, r := range doc.Vertices {
		d.verts = append(d.verts, topo.NewVertex(pt(r.Point)))
	}

	d.edges = make([]topo.Edge, 0, len(doc.Edges))
	for i, r := range doc.Edges {
		if r.Front < 0 || r.Front >= len(d.verts) || r.Back < 0 || r.Back >= len(d.verts) {
			return nil, fmt.Errorf("edge %d: vertex index out of range: %w", i, ErrMalformed)
		}
		c, err := codec.DecodeCurve(r.Curve)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if r.Degenerate {
			if r.Front != r.Back {
				return nil, fmt.Errorf("edge %d: degenerate edge spans two vertices: %w", i, ErrMalformed)
			}
			d.edges = append(d.edges, topo.NewDegenerateEdge(d.verts[r.Front], c))
			continue
		}
		d.edges = append(d.edges, topo.NewEdge(d.verts[r.Front], d.verts[r.Back], c))
	}

	d.faces = make([]topo.Face, 0, len(doc.Faces))
	for i, r := range doc.Faces {
		s, err := codec.DecodeSurface(r.Surface)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		outer, err := d.wire(r.Outer)
		if err != nil {
			return nil, fmt.Errorf("face %d: outer: %w", i, err)
		}
		if outer.Len() == 0 {
			return nil, fmt.Errorf("face %d: empty outer boundary: %w", i, ErrMalformed)
		}
		inners := make([]topo.Wire, 0, len(r.Inners))
		for bi, br := range r.Inners {
			w, err := d.wire(br)
			if err != nil {
				return nil, fmt.Errorf("face %d: inner %d: %w", i, bi, err)
			}
			inners = append(inners, w)
		}
		d.faces = append(d.faces, topo.NewFace(s, outer, inners...))
	}

	return d, nil
}

func (d *decoder) wire(r WireRec) (topo.Wire, error) {
	edges := make([]topo.Edge, 0, len(r.Edges))
	for _, ref := range r.Edges {
		if ref.Edge < 0 || ref.Edge >= len(d.edges) {
			return topo.Wire{}, fmt.Errorf("edge index %d of %d: %w", ref.Edge, len(d.edges), ErrMalformed)
		}
		e := d.edges[ref.Edge]
		if !ref.Forward {
			e = e.Inverse()
		}
		edges = append(edges, e)
	}

	return topo.NewWire(edges...), nil
}

func (d *decoder) shell(i int) (topo.Shell, error) {
	if i < 0 || i >= len(d.doc.Shells) {
		return topo.Shell{}, fmt.Errorf("shell %d of %d: %w", i, len(d.doc.Shells), ErrMalformed)
	}
	rec := d.doc.Shells[i]
	faces := make([]topo.Face, 0, len(rec.Faces))
	for _, ref := range rec.Faces {
		if ref.Face < 0 || ref.Face >= len(d.faces) {
			return topo.Shell{}, fmt.Errorf("face index %d of %d: %w", ref.Face, len(d.faces), ErrMalformed)
		}
		f := d.faces[ref.Face]
		if !ref.Forward {
			f = f.Inverse()
		}
		faces = append(faces, f)
	}

	return topo.NewShell(faces...), nil
}

package topo

import "github.com/alxpettit/truck/geom"

// faceCore is the shared, orientation-free part of a face: a surface
// handle plus its boundary wires, outer wire first.
type faceCore struct {
	id         ID
	surface    geom.Surface
	boundaries []Wire
}

// Face is an oriented view of a shared face core. The forward flag is
// independent of the surface's natural orientation; traversal accessors
// resolve through it, so a reversed face yields reversed boundary wires.
type Face struct {
	core    *faceCore
	forward bool
}

// NewFace binds the outer wire and optional inner (hole) wires to a
// surface and returns the forward view. Structural only; closure and
// on-surface validation live in the builder.
func NewFace(surface geom.Surface, outer Wire, inners ...Wire) Face {
	bs := make([]Wire, 0, 1+len(inners))
	bs = append(bs, outer)
	bs = append(bs, inners...)

	return Face{
		core:    &faceCore{id: NewID(), surface: surface, boundaries: bs},
		forward: true,
	}
}

// ID returns the identity of the shared core; both orientations report
// the same ID.
func (f Face) ID() ID {
	return f.core.id
}

// Forward reports the view's direction relative to the core.
func (f Face) Forward() bool {
	return f.forward
}

// Inverse returns the opposite view of the same core.
func (f Face) Inverse() Face {
	f.forward = !f.forward

	return f
}

// Surface returns the bound geometry handle.
func (f Face) Surface() geom.Surface {
	return f.core.surface
}

// Outer returns the outer boundary wire as traversed by this view
// (inverted when the face is reversed).
func (f Face) Outer() Wire {
	if f.forward {
		return f.core.boundaries[0]
	}

	return f.core.boundaries[0].Inverse()
}

// Inners returns the hole wires as traversed by this view.
func (f Face) Inners() []Wire {
	out := make([]Wire, 0, len(f.core.boundaries)-1)
	for _, w := range f.core.boundaries[1:] {
		if f.forward {
			out = append(out, w)
		} else {
			out = append(out, w.Inverse())
		}
	}

	return out
}

// Boundaries returns all boundary wires (outer first) as traversed by
// this view.
func (f Face) Boundaries() []Wire {
	out := make([]Wire, 0, len(f.core.boundaries))
	for _, w := range f.core.boundaries {
		if f.forward {
			out = append(out, w)
		} else {
			out = append(out, w.Inverse())
		}
	}

	return out
}

// Edges returns every oriented boundary edge of this view in traversal
// order (outer wire first, then holes).
func (f Face) Edges() []Edge {
	var out []Edge
	for _, w := range f.Boundaries() {
		out = append(out, w.edges...)
	}

	return out
}

// Normal samples the effective outward normal of this view at surface
// parameters (u, v): the surface normal, negated when the face is
// reversed.
func (f Face) Normal(u, v float64) geom.Vector3 {
	n := f.core.surface.NormalAt(u, v)
	if !f.forward {
		n = n.Neg()
	}

	return n
}

// SameFace reports whether a and b are views of the same face core,
// regardless of orientation.
func SameFace(a, b Face) bool {
	if a.core == nil || b.core == nil {
		return a.core == b.core
	}

	return a.core.id == b.core.id
}

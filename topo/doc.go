// Package topo models the topological graph of a boundary representation:
// vertices, edges, wires, faces, shells, and solids, with orientation
// layered on top as lightweight views.
//
// Identity, not value. Every vertex, edge, and face owns a unique ID
// allocated at creation; two entities with identical coordinates are still
// distinct nodes. Same/SameVertex/SameFace compare identity only —
// coordinate coincidence is the tolerance package's business.
//
// Sharing and orientation. Edge and Face are small value wrappers
// {shared core, forward flag}. Inverse() flips the flag on a copy of the
// wrapper; the core (and its geometry handle) is never duplicated, so
// Inverse(Inverse(e)) is trivially e. All traversal accessors (Front,
// Back, Outer, Boundaries, ...) resolve through the flag, so callers
// never special-case direction.
//
// Immutability. Entities are immutable once built; construction with
// geometric validation lives in the builder package, structural checking
// in validate. A fully built shape is therefore safe for concurrent
// read-only traversal from any number of goroutines — which is why,
// unlike a mutable in-memory graph, no locks appear here.
//
// Copying. Mapper duplicates topological identity while sharing geometry
// handles and preserving sharing structure (an edge shared by two faces
// stays one edge in the copy). Clone is a Mapper with no transform;
// TransformedWire/Face/Shell/Solid wrap the shared geometry in a rigid
// transform instead of editing it.
package topo

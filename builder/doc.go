// SPDX-License-Identifier: MIT
// Package: truck/builder
//
// Package builder constructs validated topology. It provides the primitive
// constructors (Vertex, Edge, Line, Wire, Polyline, Face, PlanarFace) and
// the compound sweep operations — linear sweep (Extrude), rotational sweep
// (Revolve), and Loft — that synthesize shells and solids from
// lower-dimensional profiles.
//
// The package offers the following key components:
//
//   - Kernel: captures a tolerance.Policy and an ApexPolicy once; every
//     coincidence, degeneracy, and closure decision inside one kernel is
//     made against that single policy. Package-level functions delegate to
//     a default kernel with tolerance.Default().
//   - Primitive constructors: Vertex, Edge, Line, Wire, Polyline, Face,
//     PlanarFace, MergeVertices.
//   - Sweeps: Extrude/ExtrudeSolid/ExtrudeFace, Revolve/RevolveSolid,
//     Loft/LoftSolid.
//
// Guarantees:
//
//   - Atomicity: every operation either returns a shape that has already
//     passed the validate package's checks, or an error. Construction
//     happens on scratch entities that escape only on success.
//   - Shared cores: sweeps share boundary entities between adjacent faces
//     (a cap and its neighboring side face reference the same edge core,
//     in opposite orientations), so results are manifold by construction
//     and the validator confirms rather than repairs.
//   - Structured errors: only the four sentinels are exposed
//     (ErrDegenerateGeometry, ErrTopologicalInconsistency,
//     ErrGeometricViolation, ErrToleranceAmbiguity); callers branch with
//     errors.Is. Every failure wraps a sentinel with the operation, the
//     offending entity, the measured value, and the violated bound.
//   - No operation panics on runtime input; validation panics are confined
//     to option constructors (WithX...).
//
// See individual function documentation for detailed contracts, error
// conditions, and the orientation conventions of each sweep.
package builder

// Package truck is a boundary-representation (B-rep) solid modeling
// kernel: shared topological cores with lightweight oriented views,
// tolerance-policy-driven coincidence decisions, validated sweep
// builders, and a JSON serialization boundary.
//
// 🚀 What is truck?
//
//	A modeling kernel that brings together:
//		• geom      — points, vectors, rigid transforms, parametric
//		              curves (lines, arcs) and surfaces (planes, sweeps,
//		              ruled patches)
//		• tolerance — the policy deciding coincident / ambiguous /
//		              distinct, loadable from YAML
//		• topo      — vertices, edges, wires, faces, shells, solids:
//		              identity-bearing cores shared between oriented
//		              views, plus mappers for copies and rigid motion
//		• builder   — validated construction: primitives, Extrude,
//		              Revolve, Loft, each atomic (a valid shape or an
//		              error, nothing in between)
//		• validate  — manifold, orientation, proximity, and
//		              connectivity checks with entity-tagged violations
//		• exchange  — flat index-linked documents and a geometry codec
//		              for crossing the serialization boundary
//
// ✨ Design commitments
//
//   - Identity over coordinates – two vertices at the same location are
//     still two vertices; merging is an explicit, tolerance-checked act
//   - Shared cores – inverting an edge or face flips a flag on a view,
//     never copies geometry, so double inversion is exact identity
//   - Structured errors – four builder sentinels and five validator
//     sentinels, matched with errors.Is, each wrapped with the entity
//     and the measured value
//   - No repair – validation reports the first violation and leaves the
//     shape untouched
//
// Start with builder for construction, validate for checking foreign
// topology, and exchange for persistence. See each package's doc.go for
// contracts and conventions.
package truck

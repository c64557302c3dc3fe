// Package geom defines the geometric side of the kernel: 3-D points,
// vectors, rigid transforms, and the Curve/Surface provider contract the
// topology layer is written against.
//
// The topology and builder packages never look inside a curve or surface;
// they only evaluate it through the two interfaces:
//
//	Curve   — PointAt(t), TangentAt(t), Domain()
//	Surface — PointAt(u,v), NormalAt(u,v), Domain()
//
// Alongside the contract, geom ships a reference family of curves (Line,
// Arc, plus Reversed and Transformed wrappers) and surfaces (Plane,
// Extrusion, Revolution, Ruled) — enough for the sweep builders and the
// exchange codec to work end to end. External providers can substitute
// their own implementations; nothing in the kernel depends on the concrete
// types.
//
// All value types (Point3, Vector3, Interval, Transform) are plain structs
// with value semantics; methods never mutate their receiver.
package geom

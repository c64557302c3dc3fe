// Package tolerance holds the numeric thresholds that decide when two
// geometric quantities count as equal for topological purposes.
//
// A Policy is a small immutable value with three named epsilons:
//
//	Point — below this distance two points are the same location
//	Param — below this delta two curve/surface parameters coincide
//	Angle — below this angle (radians) two directions are parallel
//
// Coincidence is an explicit, auditable operation — SamePoint,
// ClassifyDistance, Parallel — never an overload of ==. ClassifyDistance
// additionally reports an Ambiguous verdict for measurements inside a
// guard band around the point threshold, so callers can surface the
// ambiguity instead of silently picking a side.
//
// Policies are plain values: capture one per construction context and do
// not swap it mid-build. The zero Policy is not useful; start from
// Default() or FromYAML.
package tolerance

// Package validate checks structural and geometric consistency of
// shells and solids. It never repairs a shape — it reports the first
// violation found, tagged with the offending entity's identity, or nil.
//
// Checks run in a fixed order:
//
//  1. manifold edge use — every non-degenerate edge is referenced exactly
//     twice with opposite orientation, or exactly once when the shell is
//     explicitly Open(); degenerate apex seams are exempt,
//  2. orientation — the closed shell's signed volume, integrated over
//     its faces by the divergence theorem, must be positive (outward
//     normals),
//  3. vertex proximity — no two distinct vertex identities closer than
//     the point tolerance; distances inside the ambiguity band surface
//     as ambiguity, never as a silent verdict,
//  4. connectivity — the faces form one edge-connected component.
//
// The builder package runs these checks before releasing any shape;
// Shell and Solid are exported for ad-hoc verification of externally
// assembled topology.
package validate

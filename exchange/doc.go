// Package exchange moves topology across the serialization boundary. A
// Document is a flat, index-linked record set: vertices, edges, faces,
// shells, and solids reference each other by construction-order index,
// with orientation carried on the reference, so shared cores stay shared
// through a round trip. Entity identities are recorded as UUID strings
// for traceability; decoding mints fresh identities and preserves the
// sharing structure instead.
//
// Geometry crosses the boundary through a Codec, which turns curves and
// surfaces into tagged GeomSpec values and back. StdCodec covers every
// reference type of the geom package, wrappers included. Callers with
// custom geometry implement Codec (or wrap StdCodec) to extend the set.
//
// Documents marshal to JSON with Marshal/Unmarshal. Decoding validates
// structure only — indices in range, kinds known, version supported;
// geometric and topological soundness is the validate package's job, and
// callers are expected to run it on decoded shapes from untrusted
// sources.
package exchange

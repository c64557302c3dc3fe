// SPDX-License-Identifier: MIT
// Package: truck/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w: the operation name, the
//     offending entity identity, the measured value, and the violated
//     bound, so failures are actionable without re-deriving state.
//   • Builders MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"

	"github.com/alxpettit/truck/validate"
)

// ErrDegenerateGeometry indicates an input whose geometric extent collapses
// below the active tolerance policy or fails to form the requested shape: a
// zero-length curve for an edge, a curve whose endpoints miss their
// vertices, a sweep direction of negligible magnitude, a revolution angle
// below the angular tolerance, or an extrusion direction lying in the
// profile plane.
// Usage: if errors.Is(err, ErrDegenerateGeometry) { /* reject the input */ }.
var ErrDegenerateGeometry = errors.New("builder: degenerate geometry")

// ErrTopologicalInconsistency indicates structurally invalid connectivity:
// a wire whose consecutive edges do not share a vertex identity, an open
// profile where a closed one is required, loft sections with mismatched
// edge counts, or an empty input where entities are required.
// Usage: if errors.Is(err, ErrTopologicalInconsistency) { /* fix wiring */ }.
var ErrTopologicalInconsistency = errors.New("builder: topological inconsistency")

// ErrGeometricViolation indicates topology that is well-formed structurally
// but geometrically inadmissible: a boundary wire off its carrier surface,
// a non-planar profile where a plane is required, a revolution profile
// crossing its axis away from endpoints, or a vertex merge beyond tolerance.
// Usage: if errors.Is(err, ErrGeometricViolation) { /* inspect geometry */ }.
var ErrGeometricViolation = errors.New("builder: geometric violation")

// ErrToleranceAmbiguity indicates a measurement inside the ambiguity band
// of the active policy, where coincidence can be neither affirmed nor
// denied reliably. The builder surfaces the condition instead of guessing.
// Usage: if errors.Is(err, ErrToleranceAmbiguity) { /* adjust tolerances */ }.
var ErrToleranceAmbiguity = errors.New("builder: tolerance ambiguity")

// opErrorf wraps a sentinel with operation context:
// "<Op>: <formatted detail>: <sentinel>". The sentinel stays reachable
// through errors.Is.
func opErrorf(op string, sentinel error, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", op, detail, sentinel)
}

// validationKind maps a validator sentinel to the builder sentinel a
// caller branches on: structural failures are topological, placement
// failures geometric, band measurements ambiguous.
func validationKind(err error) error {
	switch {
	case errors.Is(err, validate.ErrOrientation), errors.Is(err, validate.ErrProximity):
		return ErrGeometricViolation
	case errors.Is(err, validate.ErrAmbiguous):
		return ErrToleranceAmbiguity
	default:
		return ErrTopologicalInconsistency
	}
}

// opValidationError wraps a validator failure with operation context and
// the matching builder sentinel; both stay reachable through errors.Is.
func opValidationError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, err, validationKind(err))
}

package validate

import (
	"errors"
	"fmt"

	"github.com/alxpettit/truck/topo"
)

// Sentinel errors for violation classes. Branch with errors.Is; the
// concrete *Violation carries the offending entity and measurement.
var (
	// ErrNonManifold marks an edge referenced with the wrong multiplicity
	// or orientation for a manifold shell.
	ErrNonManifold = errors.New("validate: non-manifold edge use")

	// ErrOrientation marks a shell whose sampled signed volume is not
	// positive, i.e. face orientations do not agree on an outside.
	ErrOrientation = errors.New("validate: inconsistent face orientation")

	// ErrProximity marks two distinct vertex identities within point
	// tolerance of each other (an unmerged coincidence).
	ErrProximity = errors.New("validate: unmerged coincident vertices")

	// ErrAmbiguous marks a measurement inside the tolerance ambiguity
	// band, where coincidence cannot be decided reliably.
	ErrAmbiguous = errors.New("validate: measurement in ambiguity band")

	// ErrDisconnected marks a shell whose faces do not form one
	// edge-connected component.
	ErrDisconnected = errors.New("validate: shell is not connected")
)

// Violation is a single failed check. It implements error and unwraps to
// the matching sentinel, so callers can branch with errors.Is and still
// read the entity and detail.
type Violation struct {
	// Sentinel is one of the Err* values above.
	Sentinel error
	// Entity identifies the offending edge, face, or vertex.
	Entity topo.ID
	// Detail spells out the measured value and the expected bound.
	Detail string
}

// Error renders the violation with its entity and detail.
func (v *Violation) Error() string {
	return fmt.Sprintf("%v: entity %s: %s", v.Sentinel, v.Entity, v.Detail)
}

// Unwrap exposes the sentinel for errors.Is.
func (v *Violation) Unwrap() error {
	return v.Sentinel
}

// violationf builds a Violation with a formatted detail.
func violationf(sentinel error, entity topo.ID, format string, args ...any) *Violation {
	return &Violation{Sentinel: sentinel, Entity: entity, Detail: fmt.Sprintf(format, args...)}
}

// SPDX-License-Identifier: MIT
// Package: truck/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*Kernel)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves MUST NOT panic.
//   • No hidden globals; everything flows through the Kernel.

package builder

import (
	"github.com/alxpettit/truck/tolerance"
)

// ApexPolicy decides how Revolve treats profile vertices lying on the
// rotation axis.
type ApexPolicy int

const (
	// AllowApex (default) collapses on-axis vertices into shared apex
	// points, pinned across the sweep instead of copied.
	AllowApex ApexPolicy = iota

	// RejectApex turns on-axis profile vertices into an error, for callers
	// that require every swept face to be a full four-sided patch.
	RejectApex
)

// Option customizes a Kernel before any construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*Kernel)

// WithPolicy sets the tolerance policy driving every coincidence,
// degeneracy, and closure decision of the kernel.
// Complexity: O(1) time, O(1) space.
func WithPolicy(p tolerance.Policy) Option {
	return func(k *Kernel) {
		k.pol = p
	}
}

// WithApexPolicy sets how rotational sweeps treat on-axis profile
// vertices. Panics on an unknown value to surface programmer error early.
// Complexity: O(1) time, O(1) space.
func WithApexPolicy(ap ApexPolicy) Option {
	if ap != AllowApex && ap != RejectApex {
		panic("builder: WithApexPolicy(unknown policy)")
	}
	return func(k *Kernel) {
		k.apex = ap
	}
}

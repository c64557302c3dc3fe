package topo

// Solid is a bounded volume: one outer shell plus zero or more inner
// (void) shells. All boundary shells of a valid solid are closed; the
// validate package enforces that, topo only records structure.
type Solid struct {
	shells []Shell
}

// NewSolid builds a solid from its outer shell and optional voids.
func NewSolid(outer Shell, voids ...Shell) Solid {
	own := make([]Shell, 0, 1+len(voids))
	own = append(own, outer)
	own = append(own, voids...)

	return Solid{shells: own}
}

// OuterShell returns the bounding shell.
func (s Solid) OuterShell() Shell {
	return s.shells[0]
}

// Voids returns the inner cavity shells.
func (s Solid) Voids() []Shell {
	out := make([]Shell, len(s.shells)-1)
	copy(out, s.shells[1:])

	return out
}

// Shells returns all boundary shells, outer first.
func (s Solid) Shells() []Shell {
	out := make([]Shell, len(s.shells))
	copy(out, s.shells)

	return out
}

package topo

import "github.com/google/uuid"

// ID is the topological identity token of a vertex, edge, or face core.
// IDs are unique per created core, comparable with ==, and stable for the
// lifetime of the entity — the exchange boundary uses them as round-trip
// keys.
type ID [16]byte

// NilID is the zero identity; no live entity carries it.
var NilID ID

// NewID allocates a fresh identity token.
func NewID() ID {
	return ID(uuid.New())
}

// String renders the token in canonical UUID form.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// ParseID parses a canonical UUID string back into an ID.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilID, err
	}

	return ID(u), nil
}

package stack

import "github.com/plus3/ziggurat/sim"

// Structure is the ordered collection of currently placed, non-removed
// pieces. Insertion order is drop order. Membership is the single source
// of truth for "does this piece still exist for rule purposes": every
// delayed decision (validation, collapse checks) re-checks membership
// before acting, because an earlier rule path may have removed the piece
// in the meantime.
type Structure struct {
	order []sim.PieceID
}

// NewStructure creates an empty structure.
func NewStructure() *Structure {
	return &Structure{}
}

// Add appends a piece in drop order. Adding an existing member is a no-op.
func (s *Structure) Add(id sim.PieceID) {
	if s.Contains(id) {
		return
	}
	s.order = append(s.order, id)
}

// Remove deletes a piece, preserving the order of the rest.
func (s *Structure) Remove(id sim.PieceID) bool {
	for i, member := range s.order {
		if member == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports membership.
func (s *Structure) Contains(id sim.PieceID) bool {
	for _, member := range s.order {
		if member == id {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (s *Structure) Len() int {
	return len(s.order)
}

// IDs returns the members in drop order. The returned slice is a copy.
func (s *Structure) IDs() []sim.PieceID {
	out := make([]sim.PieceID, len(s.order))
	copy(out, s.order)
	return out
}

// Clear removes all members.
func (s *Structure) Clear() {
	s.order = s.order[:0]
}

package sim

// PieceID encodes both the slot generation (upper 32 bits) and the arena
// slot index (lower 32 bits). The generation guards against stale handles:
// once a slot is recycled its generation is bumped, so an ID held across a
// removal no longer resolves.
type PieceID uint64

// NoPiece is the zero PieceID. Generations start at 1, so NoPiece never
// names a live piece.
const NoPiece PieceID = 0

// NewPieceID creates a PieceID from a slot generation and slot index.
func NewPieceID(generation uint32, index uint32) PieceID {
	return PieceID(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the piece ID.
func (id PieceID) Generation() uint32 {
	return uint32(id >> 32)
}

// Index extracts the slot index from the piece ID.
func (id PieceID) Index() uint32 {
	return uint32(id & 0xFFFFFFFF)
}

package sim

import "iter"

const arenaBlockSize = 64

// Arena is a generational slot arena. Values are stored in fixed-size
// blocks with a free list, so slot indices stay stable for the lifetime of
// a value and memory is reused without shifting survivors around. Each
// slot carries a generation counter; a PieceID only resolves while its
// generation matches, which makes "is this handle still alive" a cheap
// check rather than a bookkeeping discipline.
type Arena[T any] struct {
	blocks      [][arenaBlockSize]T
	filled      [][arenaBlockSize]bool
	generations [][arenaBlockSize]uint32
	freeSlots   []uint32
	nextIndex   uint32
	count       int
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores a value and returns its ID.
func (a *Arena[T]) Insert(value T) PieceID {
	var index uint32
	if n := len(a.freeSlots); n > 0 {
		index = a.freeSlots[n-1]
		a.freeSlots = a.freeSlots[:n-1]
	} else {
		index = a.nextIndex
		a.nextIndex++
		if int(index)/arenaBlockSize >= len(a.blocks) {
			a.blocks = append(a.blocks, [arenaBlockSize]T{})
			a.filled = append(a.filled, [arenaBlockSize]bool{})
			a.generations = append(a.generations, [arenaBlockSize]uint32{})
		}
	}

	blockIdx := int(index) / arenaBlockSize
	slotIdx := int(index) % arenaBlockSize

	// Generations start at 1 so a live ID is never NoPiece.
	if a.generations[blockIdx][slotIdx] == 0 {
		a.generations[blockIdx][slotIdx] = 1
	}

	a.blocks[blockIdx][slotIdx] = value
	a.filled[blockIdx][slotIdx] = true
	a.count++

	return NewPieceID(a.generations[blockIdx][slotIdx], index)
}

// Get returns a pointer to the value for the given ID, or nil if the ID is
// stale or was never issued.
func (a *Arena[T]) Get(id PieceID) *T {
	blockIdx, slotIdx, ok := a.locate(id)
	if !ok {
		return nil
	}
	return &a.blocks[blockIdx][slotIdx]
}

// Contains reports whether the ID resolves to a live value.
func (a *Arena[T]) Contains(id PieceID) bool {
	_, _, ok := a.locate(id)
	return ok
}

// Remove deletes the value for the given ID and recycles its slot.
// Removing a stale or unknown ID is a no-op.
func (a *Arena[T]) Remove(id PieceID) bool {
	blockIdx, slotIdx, ok := a.locate(id)
	if !ok {
		return false
	}

	var zero T
	a.blocks[blockIdx][slotIdx] = zero
	a.filled[blockIdx][slotIdx] = false
	a.generations[blockIdx][slotIdx]++
	a.freeSlots = append(a.freeSlots, id.Index())
	a.count--
	return true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.count
}

// Iter iterates over all live values in slot order.
func (a *Arena[T]) Iter() iter.Seq2[PieceID, *T] {
	return func(yield func(PieceID, *T) bool) {
		for index := uint32(0); index < a.nextIndex; index++ {
			blockIdx := int(index) / arenaBlockSize
			slotIdx := int(index) % arenaBlockSize
			if !a.filled[blockIdx][slotIdx] {
				continue
			}
			id := NewPieceID(a.generations[blockIdx][slotIdx], index)
			if !yield(id, &a.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}

// Clear removes every live value. Slot generations are preserved so IDs
// issued before the clear stay invalid.
func (a *Arena[T]) Clear() {
	for index := uint32(0); index < a.nextIndex; index++ {
		blockIdx := int(index) / arenaBlockSize
		slotIdx := int(index) % arenaBlockSize
		if a.filled[blockIdx][slotIdx] {
			a.Remove(NewPieceID(a.generations[blockIdx][slotIdx], index))
		}
	}
}

func (a *Arena[T]) locate(id PieceID) (blockIdx, slotIdx int, ok bool) {
	index := id.Index()
	if index >= a.nextIndex {
		return 0, 0, false
	}
	blockIdx = int(index) / arenaBlockSize
	slotIdx = int(index) % arenaBlockSize
	if !a.filled[blockIdx][slotIdx] {
		return 0, 0, false
	}
	if a.generations[blockIdx][slotIdx] != id.Generation() {
		return 0, 0, false
	}
	return blockIdx, slotIdx, true
}

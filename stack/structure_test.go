package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/ziggurat/sim"
	"github.com/plus3/ziggurat/stack"
)

func TestStructureOrderPreserved(t *testing.T) {
	s := stack.NewStructure()

	a := sim.NewPieceID(1, 1)
	b := sim.NewPieceID(1, 2)
	c := sim.NewPieceID(1, 3)

	s.Add(a)
	s.Add(b)
	s.Add(c)
	assert.Equal(t, []sim.PieceID{a, b, c}, s.IDs())

	s.Remove(b)
	assert.Equal(t, []sim.PieceID{a, c}, s.IDs())
	assert.Equal(t, 2, s.Len())
}

func TestStructureAddIsIdempotent(t *testing.T) {
	s := stack.NewStructure()
	a := sim.NewPieceID(1, 1)

	s.Add(a)
	s.Add(a)
	assert.Equal(t, 1, s.Len())
}

func TestStructureRemoveUnknown(t *testing.T) {
	s := stack.NewStructure()
	s.Add(sim.NewPieceID(1, 1))

	assert.False(t, s.Remove(sim.NewPieceID(1, 99)))
	assert.Equal(t, 1, s.Len())
}

func TestStructureClear(t *testing.T) {
	s := stack.NewStructure()
	a := sim.NewPieceID(1, 1)
	s.Add(a)
	s.Add(sim.NewPieceID(1, 2))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(a))
}

package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/ziggurat/sim"
	"github.com/plus3/ziggurat/stack"
)

func TestViolationLogAppend(t *testing.T) {
	log := stack.NewViolationLog()
	id := sim.NewPieceID(1, 7)

	assert.False(t, log.Recorded(id))
	assert.True(t, log.Append(stack.ViolationRecord{PieceID: id, Penalty: 75, Tick: 10}))
	assert.True(t, log.Recorded(id))
	assert.Equal(t, 1, log.Len())
}

func TestViolationLogIdempotent(t *testing.T) {
	log := stack.NewViolationLog()
	id := sim.NewPieceID(1, 7)

	assert.True(t, log.Append(stack.ViolationRecord{PieceID: id, Penalty: 75, Tick: 10}))

	// A second append for the same piece changes nothing.
	assert.False(t, log.Append(stack.ViolationRecord{PieceID: id, Penalty: 75, Tick: 11}))
	assert.Equal(t, 1, log.Len())
	assert.Equal(t, uint64(10), log.Records()[0].Tick)
}

func TestViolationLogOrderAndReset(t *testing.T) {
	log := stack.NewViolationLog()

	a := sim.NewPieceID(1, 1)
	b := sim.NewPieceID(1, 2)
	log.Append(stack.ViolationRecord{PieceID: a, Penalty: 75, Tick: 5})
	log.Append(stack.ViolationRecord{PieceID: b, Penalty: 75, Tick: 9})

	records := log.Records()
	assert.Equal(t, []stack.ViolationRecord{
		{PieceID: a, Penalty: 75, Tick: 5},
		{PieceID: b, Penalty: 75, Tick: 9},
	}, records)

	log.Reset()
	assert.Equal(t, 0, log.Len())
	assert.False(t, log.Recorded(a))
	assert.True(t, log.Append(stack.ViolationRecord{PieceID: a, Penalty: 75, Tick: 20}))
}

func TestViolationLogRecordsIsACopy(t *testing.T) {
	log := stack.NewViolationLog()
	log.Append(stack.ViolationRecord{PieceID: sim.NewPieceID(1, 1), Penalty: 75, Tick: 5})

	records := log.Records()
	records[0].Penalty = 9999

	assert.Equal(t, 75, log.Records()[0].Penalty)
}

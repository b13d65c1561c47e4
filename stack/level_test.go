package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/ziggurat/stack"
)

func TestLevelForCatalog(t *testing.T) {
	first := stack.LevelFor(0)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 3, first.TargetPieces)
	assert.Equal(t, stack.Tier(2), first.MaxTier)
	assert.Equal(t, 6, first.MaxAttempts)

	fifth := stack.LevelFor(4)
	assert.Equal(t, 5, fifth.ID)
	assert.Equal(t, 9, fifth.TargetPieces)
}

func TestLevelForNegativeIndexClamps(t *testing.T) {
	assert.Equal(t, stack.LevelFor(0), stack.LevelFor(-3))
}

func TestLevelForDeterministic(t *testing.T) {
	for _, index := range []int{0, 4, 5, 17, 100} {
		assert.Equal(t, stack.LevelFor(index), stack.LevelFor(index), "index %d", index)
	}
}

func TestLevelForGeneratedProgression(t *testing.T) {
	prev := stack.LevelFor(4)
	for index := 5; index < 30; index++ {
		level := stack.LevelFor(index)

		assert.Equal(t, index+1, level.ID)
		assert.Greater(t, level.TargetPieces, prev.TargetPieces)
		assert.GreaterOrEqual(t, level.MaxTier, prev.MaxTier)
		assert.Greater(t, level.MaxAttempts, level.TargetPieces)

		prev = level
	}
}

func TestLevelForTierCapped(t *testing.T) {
	// Far past the catalog the tier stops growing; footprints would
	// otherwise shrink to nothing.
	deep := stack.LevelFor(500)
	assert.LessOrEqual(t, deep.MaxTier, stack.Tier(6))
}

func TestTierFootprintNarrowsWithTier(t *testing.T) {
	prev := stack.TierFootprint(1)
	assert.Equal(t, 3.2, prev.W)
	assert.Equal(t, 1.0, prev.H)

	for tier := stack.Tier(2); tier <= 10; tier++ {
		fp := stack.TierFootprint(tier)
		assert.LessOrEqual(t, fp.W, prev.W)
		assert.GreaterOrEqual(t, fp.W, 0.8)
		prev = fp
	}
}

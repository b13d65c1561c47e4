package stack

// Level describes one level's goal. Immutable once generated.
type Level struct {
	ID           int
	TargetPieces int
	// MaxTier is the highest tier available in this level; a piece of
	// MaxTier is the level's capstone.
	MaxTier Tier
	// MaxAttempts bounds the wrong placements allowed before the level
	// is failed (costing a life, like a collapse).
	MaxAttempts int
}

// levelCatalog holds the authored levels. Indices beyond the catalog are
// generated deterministically from the last authored entry.
var levelCatalog = []Level{
	{ID: 1, TargetPieces: 3, MaxTier: 2, MaxAttempts: 6},
	{ID: 2, TargetPieces: 4, MaxTier: 3, MaxAttempts: 8},
	{ID: 3, TargetPieces: 6, MaxTier: 3, MaxAttempts: 10},
	{ID: 4, TargetPieces: 7, MaxTier: 4, MaxAttempts: 12},
	{ID: 5, TargetPieces: 9, MaxTier: 4, MaxAttempts: 14},
}

// maxGeneratedTier caps tier growth for generated levels; footprints
// narrow with tier and very high tiers would be unplayably thin.
const maxGeneratedTier Tier = 6

// LevelFor returns the level for a zero-based index. The same index always
// produces the same level.
func LevelFor(index int) Level {
	if index < 0 {
		index = 0
	}
	if index < len(levelCatalog) {
		return levelCatalog[index]
	}

	last := levelCatalog[len(levelCatalog)-1]
	steps := index - len(levelCatalog) + 1

	tier := last.MaxTier + Tier(steps/2)
	if tier > maxGeneratedTier {
		tier = maxGeneratedTier
	}

	target := last.TargetPieces + 2*steps
	return Level{
		ID:           index + 1,
		TargetPieces: target,
		MaxTier:      tier,
		MaxAttempts:  2 * target,
	}
}

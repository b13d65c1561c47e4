package stack

import "time"

// Config carries the tuning constants of the rules core. The stability
// thresholds, settle windows and collapse fraction are empirical: they are
// not derivable from the other invariants, and the defaults below are the
// documented reference tuning.
type Config struct {
	// Gravity is the downward acceleration magnitude, world-units/s².
	Gravity float64

	// Tau1 and Tau2 are the stability classifier thresholds,
	// world-units/s.
	Tau1 float64
	Tau2 float64

	// SettleTicks is the number of consecutive Stable ticks a piece must
	// accumulate before it is validated.
	SettleTicks int

	// CollapseGraceTicks is the quiet period, in ticks since the last
	// structural change, before collapse checks and level completion are
	// considered.
	CollapseGraceTicks int

	// CollapseFraction is the fraction of settled pieces that must
	// simultaneously classify Unstable (minimum two pieces) to declare
	// global collapse.
	CollapseFraction float64

	Lives    int
	BaseTier Tier

	// PlacementBonus is awarded per accepted placement, scaled by tier.
	PlacementBonus int
	// ClearPieceBonus is awarded per piece removed by a capstone clear.
	ClearPieceBonus int
	// LevelBonus is awarded per completed level, scaled by level ID.
	LevelBonus int

	GroundPenalty   int
	MismatchPenalty int

	// SpawnHeight is the Y coordinate at which new pieces oscillate.
	SpawnHeight float64
	// BoundsHalfWidth limits the oscillation sweep and the ground width.
	BoundsHalfWidth float64
	// MoveSpeed is the initial oscillation speed, world-units/s.
	MoveSpeed float64

	// SupportTolerance is the vertical slack for "resting on" checks.
	SupportTolerance float64

	// SnapshotMaxAge is the freshness window beyond which a snapshot is
	// rejected on restore.
	SnapshotMaxAge time.Duration

	// Seed drives the tier-selection RNG; equal seeds give equal runs
	// for equal inputs.
	Seed uint64
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		Gravity:            20,
		Tau1:               0.35,
		Tau2:               1.60,
		SettleTicks:        12,
		CollapseGraceTicks: 18,
		CollapseFraction:   0.5,
		Lives:              3,
		BaseTier:           1,
		PlacementBonus:     50,
		ClearPieceBonus:    150,
		LevelBonus:         100,
		GroundPenalty:      75,
		MismatchPenalty:    50,
		SpawnHeight:        12,
		BoundsHalfWidth:    6,
		MoveSpeed:          4,
		SupportTolerance:   0.15,
		SnapshotMaxAge:     24 * time.Hour,
		Seed:               1,
	}
}

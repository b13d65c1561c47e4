package stack

import "github.com/plus3/ziggurat/sim"

// Tick-queue events. Systems emit these during a tick; the queue is
// drained after the last system ran and the game forwards the interesting
// ones to the Hooks consumers (audio, UI, persistence, all outside this
// package).

// PieceDroppedEvent fires when the player commits a drop.
type PieceDroppedEvent struct {
	ID   sim.PieceID
	Tier Tier
}

// StabilityShiftEvent fires once per stability-level transition of a
// piece, never repeatedly while a piece stays at a level.
type StabilityShiftEvent struct {
	ID   sim.PieceID
	From Stability
	To   Stability
}

// GroundViolationEvent fires when a non-base piece touches the ground and
// is penalized. It is distinct from PlacementRejectedEvent so consumers
// can distinguish the two failure kinds.
type GroundViolationEvent struct {
	ID      sim.PieceID
	Tier    Tier
	Penalty int
	State   RunState
}

// PlacementAcceptedEvent fires when a settled piece validates as legal.
type PlacementAcceptedEvent struct {
	ID    sim.PieceID
	Tier  Tier
	Bonus int
	State RunState
}

// PlacementRejectedEvent fires when a settled piece fails validation.
type PlacementRejectedEvent struct {
	ID      sim.PieceID
	Tier    Tier
	Reason  Reason
	Penalty int
	State   RunState
}

// StructureClearedEvent fires after a legal capstone placement banks the
// stack beneath it.
type StructureClearedEvent struct {
	Capstone sim.PieceID
	Cleared  int
	Bonus    int
	State    RunState
}

// LevelCompleteEvent fires when the level target is reached and the last
// piece has survived the collapse check.
type LevelCompleteEvent struct {
	Level Level
	Bonus int
	State RunState
}

// CollapseEvent fires when the structure as a whole fails.
type CollapseEvent struct {
	Unstable int
	Total    int
	State    RunState
}

// GameOverEvent fires when a collapse or level failure spends the last
// life. The run is terminal afterwards.
type GameOverEvent struct {
	State RunState
}

// Hooks are the notification callbacks consumed by the layers outside the
// core. Nil hooks are skipped. Hooks run synchronously while the tick
// queue drains, so they observe a consistent post-tick state.
type Hooks struct {
	PieceDropped  func(PieceDroppedEvent)
	LevelComplete func(LevelCompleteEvent)
	Collapse      func(CollapseEvent)
	GameOver      func(GameOverEvent)
}

// Package stack implements the simulation and rules core of a
// stacking-construction game: pieces released by the player fall under
// gravity, collide with the pile and the ground, and must settle into a
// structurally valid position. The package turns the continuous output of
// the physics world into discrete outcomes such as settled or collapsed,
// and keeps the score and lives ledger that follows from them.
package stack

import (
	"github.com/plus3/ziggurat/physics"
	"github.com/plus3/ziggurat/sim"
)

// Tier is the ordinal category of a piece. It defines both the piece's
// footprint and where it may legally rest: tier 1 sits on the ground, each
// higher tier must be supported by the tier directly below it. The ground
// itself acts as the privileged "tier 0" surface.
type Tier int

// Phase is a piece's lifecycle state. Transitions only ever move forward:
//
//	Spawned → Moving → Falling → Settling → Valid|Invalid → Removed
type Phase int

const (
	PhaseSpawned Phase = iota
	PhaseMoving
	PhaseFalling
	PhaseSettling
	PhaseValid
	PhaseInvalid
	PhaseRemoved
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawned:
		return "spawned"
	case PhaseMoving:
		return "moving"
	case PhaseFalling:
		return "falling"
	case PhaseSettling:
		return "settling"
	case PhaseValid:
		return "valid"
	case PhaseInvalid:
		return "invalid"
	case PhaseRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Footprint is a piece's axis-aligned extent.
type Footprint struct {
	W, H float64
}

// TierFootprint returns the footprint for a tier. Higher tiers are
// narrower, so a well-built pile tapers toward the capstone.
func TierFootprint(t Tier) Footprint {
	w := 3.2 - 0.4*float64(t-1)
	if w < 0.8 {
		w = 0.8
	}
	return Footprint{W: w, H: 1.0}
}

// Piece is one dropped building piece. Position and velocity are owned by
// the physics world while the piece is falling or settling; the mirrored
// Pos/Vel fields hold the last sampled values and survive the body's
// removal.
type Piece struct {
	ID        sim.PieceID
	Tier      Tier
	Footprint Footprint
	Body      physics.BodyID

	Phase          Phase
	PlacementValid bool

	// GroundExempt marks the very first piece dropped in a run, which is
	// expected to touch the ground.
	GroundExempt bool

	SpawnedTick uint64

	Pos physics.Vec2
	Vel physics.Vec2

	// Stability bookkeeping for the settling state machine: the last
	// classified level (for transition edges) and the count of
	// consecutive ticks classified Stable.
	Stability   Stability
	StableTicks int
}

// Kinematics is an instantaneous position/velocity sample.
type Kinematics struct {
	Pos physics.Vec2
	Vel physics.Vec2
}

// SampleKinematics reads the piece's current kinematic state from the
// world. If the body has already been torn down the piece's last mirrored
// state is returned with zero velocity as an "at rest" sentinel, never an
// error, because callers routinely poll pieces that a rule path destroyed
// earlier in the same tick.
func (p *Piece) SampleKinematics(w *physics.World) Kinematics {
	if body := w.Body(p.Body); body != nil {
		p.Pos = body.Pos
		p.Vel = body.Vel
		return Kinematics{Pos: body.Pos, Vel: body.Vel}
	}
	return Kinematics{Pos: p.Pos, Vel: physics.Vec2{}}
}

// Drop transitions the piece from Moving to Falling and hands ownership of
// its motion to the physics world. It is one-way: a second call is a
// no-op, reported by the return value.
func (p *Piece) Drop(w *physics.World) bool {
	if p.Phase != PhaseMoving {
		return false
	}
	p.Phase = PhaseFalling
	if body := w.Body(p.Body); body != nil {
		body.Kinematic = false
	}
	return true
}

// Freeze clears the piece's velocity. Settled pieces keep a live body so
// the pile can still micro-adjust, but their driven motion stops.
func (p *Piece) Freeze(w *physics.World) {
	if body := w.Body(p.Body); body != nil {
		body.Vel = physics.Vec2{}
	}
	p.Vel = physics.Vec2{}
}

func (p *Piece) min() physics.Vec2 {
	return physics.Vec2{X: p.Pos.X - p.Footprint.W/2, Y: p.Pos.Y - p.Footprint.H/2}
}

func (p *Piece) max() physics.Vec2 {
	return physics.Vec2{X: p.Pos.X + p.Footprint.W/2, Y: p.Pos.Y + p.Footprint.H/2}
}

// overlapX returns the horizontal overlap between two pieces' footprints,
// negative when they are apart.
func overlapX(a, b *Piece) float64 {
	left := a.min().X
	if b.min().X > left {
		left = b.min().X
	}
	right := a.max().X
	if b.max().X < right {
		right = b.max().X
	}
	return right - left
}

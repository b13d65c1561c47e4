package stack

import "github.com/plus3/ziggurat/sim"

// OscillationSystem drives the pre-drop sweep: the active piece moves
// open-loop along X at the run's movement speed and flips direction at the
// play-area bounds. The piece's body is kinematic, so the physics step
// integrates the velocity but gravity and contacts leave it alone.
type OscillationSystem struct {
	game *Game
}

func (s *OscillationSystem) Execute(frame *sim.Frame) {
	g := s.game
	if g.phase != RunAwaitingDrop {
		return
	}
	p := g.arena.Get(g.active)
	if p == nil || p.Phase != PhaseMoving {
		return
	}
	body := g.world.Body(p.Body)
	if body == nil {
		return
	}

	state := g.ledger.State()
	limit := g.cfg.BoundsHalfWidth - p.Footprint.W/2

	if body.Pos.X >= limit && state.MoveDir > 0 {
		body.Pos.X = limit
		state = g.ledger.FlipDirection()
	} else if body.Pos.X <= -limit && state.MoveDir < 0 {
		body.Pos.X = -limit
		state = g.ledger.FlipDirection()
	}

	body.Vel.X = state.MoveDir * state.MoveSpeed
	body.Vel.Y = 0
}

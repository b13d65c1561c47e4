package stack

import (
	"github.com/plus3/ziggurat/physics"
	"github.com/plus3/ziggurat/sim"
)

// GroundRuleSystem penalizes immediate illegal ground contact. It runs off
// collision-start events rather than position math because ground contact
// happens long before a piece would settle and validate; a piece destroyed
// here must never reach the placement validator, which is guaranteed by
// marking the piece invalid immediately and by the validator's own
// membership check. The audit log makes the penalty idempotent per piece.
type GroundRuleSystem struct {
	game *Game
}

func (s *GroundRuleSystem) Execute(frame *sim.Frame) {
	g := s.game

	for _, contact := range g.contacts {
		if !contact.Began {
			continue
		}
		var other physics.BodyID
		switch g.groundID {
		case contact.A:
			other = contact.B
		case contact.B:
			other = contact.A
		default:
			continue
		}

		id, ok := g.bodyIndex.Get(other)
		if !ok {
			continue
		}
		p := g.arena.Get(id)
		if p == nil {
			continue
		}
		if p.Phase != PhaseFalling && p.Phase != PhaseSettling {
			continue
		}
		if p.Tier == g.cfg.BaseTier {
			// Base tier owns the ground.
			continue
		}
		if p.GroundExempt {
			continue
		}
		if g.violations.Recorded(id) {
			continue
		}

		state := g.ledger.Penalize(g.cfg.GroundPenalty, ReasonGroundContact)
		g.ledger.RecordMistake()
		g.violations.Append(ViolationRecord{
			PieceID: id,
			Penalty: g.cfg.GroundPenalty,
			Tick:    frame.Tick,
		})

		// Mark now so the settle and placement systems skip the piece
		// this same tick; the physical teardown waits for the drain.
		p.Phase = PhaseInvalid
		frame.Queue.Emit(GroundViolationEvent{
			ID:      id,
			Tier:    p.Tier,
			Penalty: g.cfg.GroundPenalty,
			State:   state,
		})
		frame.Queue.Defer(func() { g.destroyPiece(id) })
	}
}

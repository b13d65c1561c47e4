package stack

import "github.com/plus3/ziggurat/sim"

// SettleSystem runs the settling state machine. A falling piece joins the
// structure (phase Settling) on its first contact; from then on every
// placed piece is classified each tick, stability transitions are emitted
// exactly once per edge, and settling pieces accumulate consecutive-stable
// ticks until the placement system may judge them. Counting stable ticks
// instead of waiting a wall-clock delay keeps settle detection
// deterministic under any tick rate.
type SettleSystem struct {
	game *Game
}

func (s *SettleSystem) Execute(frame *sim.Frame) {
	g := s.game

	// Falling → Settling on first contact with anything.
	if p := g.arena.Get(g.active); p != nil && p.Phase == PhaseFalling {
		if s.touchedSomething(p) {
			p.Phase = PhaseSettling
			p.StableTicks = 0
			g.structure.Add(p.ID)
			g.quietTicks = 0
		}
	}

	for _, id := range g.structure.IDs() {
		p := g.arena.Get(id)
		if p == nil {
			continue
		}
		if p.Phase != PhaseSettling && p.Phase != PhaseValid {
			continue
		}

		level := g.classifier.Classify(p.Vel)
		if level != p.Stability {
			frame.Queue.Emit(StabilityShiftEvent{ID: id, From: p.Stability, To: level})
			p.Stability = level
		}

		if p.Phase == PhaseSettling {
			if level == StabilityStable {
				p.StableTicks++
			} else {
				p.StableTicks = 0
			}
		}
	}
}

func (s *SettleSystem) touchedSomething(p *Piece) bool {
	for _, contact := range s.game.contacts {
		if !contact.Began {
			continue
		}
		if contact.A == p.Body || contact.B == p.Body {
			return true
		}
	}
	return false
}

package stack

import (
	"math"

	"github.com/plus3/ziggurat/sim"
)

// CollapseSystem declares global structural failure. A single wobbling
// piece is a local problem handled by classification and validation; the
// whole structure has failed only when a large fraction of the placed
// pieces classify Unstable in the same sample. The check waits out a quiet
// window after every structural change so impact transients don't read as
// collapse.
type CollapseSystem struct {
	game *Game
}

func (s *CollapseSystem) Execute(frame *sim.Frame) {
	g := s.game
	if g.phase == RunOver {
		return
	}
	if g.structure.Len() < 2 {
		return
	}
	if g.quietTicks < g.cfg.CollapseGraceTicks {
		return
	}

	total := 0
	unstable := 0
	for _, p := range g.settledPieces() {
		if p.Phase != PhaseSettling && p.Phase != PhaseValid {
			continue
		}
		total++
		if p.Stability == StabilityUnstable {
			unstable++
		}
	}
	if total < 2 {
		return
	}

	threshold := int(math.Ceil(g.cfg.CollapseFraction * float64(total)))
	if threshold < 2 {
		threshold = 2
	}
	if unstable < threshold {
		return
	}

	g.failLevel(frame.Queue, func(state RunState) {
		frame.Queue.Emit(CollapseEvent{
			Unstable: unstable,
			Total:    total,
			State:    state,
		})
	})
}

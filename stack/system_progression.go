package stack

import "github.com/plus3/ziggurat/sim"

// ProgressionSystem closes the loop: it exhausts the level's attempt
// budget, finishes a level once the final piece has survived the quiet
// window, and spawns the next piece whenever the previous one has been
// consumed. It runs last so it observes the tick's settled outcome.
type ProgressionSystem struct {
	game *Game
}

func (s *ProgressionSystem) Execute(frame *sim.Frame) {
	g := s.game
	if g.phase == RunOver {
		return
	}

	defer func() { g.quietTicks++ }()

	if g.level.MaxAttempts > 0 && g.ledger.State().LevelMistakes >= g.level.MaxAttempts {
		g.failLevel(frame.Queue, nil)
		return
	}

	if g.arena.Contains(g.active) {
		// A piece is in play; nothing to progress.
		return
	}

	if g.pendingComplete {
		if g.quietTicks < g.cfg.CollapseGraceTicks {
			// Don't declare victory on an about-to-fail structure; the
			// collapse system gets the full quiet window first.
			return
		}
		s.completeLevel(frame)
		return
	}

	g.spawnNext()
}

func (s *ProgressionSystem) completeLevel(frame *sim.Frame) {
	g := s.game

	bonus := g.cfg.LevelBonus * g.level.ID
	state := g.ledger.CompleteLevel(bonus)
	completed := g.level

	frame.Queue.Emit(LevelCompleteEvent{
		Level: completed,
		Bonus: bonus,
		State: state,
	})

	// Surviving pieces pass out of scope with the cleared level.
	g.clearAllPieces()
	g.pendingComplete = false
	g.quietTicks = 0
	g.level = LevelFor(state.LevelIndex)
	g.spawnNext()
}

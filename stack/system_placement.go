package stack

import "github.com/plus3/ziggurat/sim"

// PlacementSystem judges the active piece once the settling state machine
// has seen it stable long enough. The membership check up front is the
// ordering guarantee against the ground-violation path: a piece destroyed
// earlier, even earlier this very tick, short-circuits with no second
// penalty.
type PlacementSystem struct {
	game *Game
}

func (s *PlacementSystem) Execute(frame *sim.Frame) {
	g := s.game

	p := g.arena.Get(g.active)
	if p == nil || p.Phase != PhaseSettling {
		return
	}
	if !g.structure.Contains(p.ID) {
		return
	}
	if p.StableTicks < g.cfg.SettleTicks {
		return
	}

	verdict := g.validator.Validate(p, g.settledPieces())
	if !verdict.Valid {
		s.reject(frame, p, verdict)
		return
	}
	s.accept(frame, p)
}

func (s *PlacementSystem) accept(frame *sim.Frame, p *Piece) {
	g := s.game

	p.Phase = PhaseValid
	p.PlacementValid = true
	p.Freeze(g.world)

	bonus := g.cfg.PlacementBonus * int(p.Tier)
	g.ledger.Award(bonus, ReasonPlacement)
	state := g.ledger.RecordPlacement()

	frame.Queue.Emit(PlacementAcceptedEvent{
		ID:    p.ID,
		Tier:  p.Tier,
		Bonus: bonus,
		State: state,
	})

	if p.Tier == g.level.MaxTier {
		s.clearUnder(frame, p)
		state = g.ledger.State()
	}

	if state.LevelPlacements >= g.level.TargetPieces {
		// Completion is deferred until the collapse check has had its
		// quiet window; the progression system finishes the level.
		g.pendingComplete = true
	}

	g.active = sim.NoPiece
	g.quietTicks = 0
}

// clearUnder banks the stack: a legal capstone placement removes the
// capstone and everything beneath its horizontal footprint, awards a bonus
// proportional to the cleared count, and bumps the reward counter once.
func (s *PlacementSystem) clearUnder(frame *sim.Frame, capstone *Piece) {
	g := s.game

	targets := clearTargets(capstone, g.settledPieces())
	cleared := len(targets) + 1 // plus the capstone itself

	bonus := g.cfg.ClearPieceBonus * cleared
	g.ledger.Award(bonus, ReasonCapstoneClear)
	state := g.ledger.RecordReward()

	frame.Queue.Emit(StructureClearedEvent{
		Capstone: capstone.ID,
		Cleared:  cleared,
		Bonus:    bonus,
		State:    state,
	})

	capID := capstone.ID
	frame.Queue.Defer(func() { g.destroyPiece(capID) })
	for _, t := range targets {
		id := t.ID
		frame.Queue.Defer(func() { g.destroyPiece(id) })
	}
}

func (s *PlacementSystem) reject(frame *sim.Frame, p *Piece, verdict Verdict) {
	g := s.game

	g.ledger.Penalize(g.cfg.MismatchPenalty, verdict.Reason)
	state := g.ledger.RecordMistake()

	p.Phase = PhaseInvalid
	frame.Queue.Emit(PlacementRejectedEvent{
		ID:      p.ID,
		Tier:    p.Tier,
		Reason:  verdict.Reason,
		Penalty: g.cfg.MismatchPenalty,
		State:   state,
	})

	id := p.ID
	frame.Queue.Defer(func() { g.destroyPiece(id) })
	g.active = sim.NoPiece
	g.quietTicks = 0
}

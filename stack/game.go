package stack

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/plus3/ziggurat/physics"
	"github.com/plus3/ziggurat/sim"
)

// RunPhase is the progression controller's state.
type RunPhase int

const (
	// RunAwaitingDrop: a piece is oscillating, waiting for the player.
	RunAwaitingDrop RunPhase = iota
	// RunSettling: the dropped piece is falling or settling; its outcome
	// and the follow-up collapse check are pending.
	RunSettling
	// RunOver: no lives left, the run is terminal.
	RunOver
)

func (p RunPhase) String() string {
	switch p {
	case RunAwaitingDrop:
		return "awaiting-drop"
	case RunSettling:
		return "settling"
	case RunOver:
		return "over"
	default:
		return "unknown"
	}
}

// Game wires the physics world, the piece arena and the rule systems into
// one single-threaded simulation. All state transitions happen inside
// Tick; the only external inputs are Drop and snapshot restore.
type Game struct {
	cfg   Config
	hooks Hooks

	world    *physics.World
	groundID physics.BodyID

	arena *sim.Arena[Piece]
	// bodyIndex maps physics-body ids back to piece ids, so collision
	// events resolve to pieces without any downcasting of world objects.
	bodyIndex *intmap.Map[physics.BodyID, sim.PieceID]

	structure  *Structure
	ledger     *Ledger
	violations *ViolationLog
	classifier Classifier
	validator  Validator
	scheduler  *sim.Scheduler
	rng        *rand.Rand

	level Level
	phase RunPhase

	// active is the piece currently owned by the player or the settle
	// pipeline; NoPiece between resolution and the next spawn.
	active sim.PieceID

	firstDropDone   bool
	pendingComplete bool

	// quietTicks counts ticks since the last structural change; collapse
	// checks and level completion wait it out.
	quietTicks int

	// contacts holds the collision edges routed by the physics system
	// for the current tick.
	contacts []physics.Contact
}

// New creates a game with a fresh run and the first piece already
// oscillating.
func New(cfg Config, hooks Hooks) *Game {
	g := &Game{
		cfg:        cfg,
		hooks:      hooks,
		world:      physics.NewWorld(physics.Vec2{Y: -cfg.Gravity}),
		arena:      sim.NewArena[Piece](),
		bodyIndex:  intmap.New[physics.BodyID, sim.PieceID](64),
		structure:  NewStructure(),
		ledger:     NewLedger(),
		violations: NewViolationLog(),
		classifier: Classifier{Tau1: cfg.Tau1, Tau2: cfg.Tau2},
		rng:        rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
	g.validator = Validator{
		BaseTier:   cfg.BaseTier,
		GroundY:    0,
		SupportTol: cfg.SupportTolerance,
	}

	// Ground: a static slab whose top face is Y=0.
	g.groundID = g.world.AddBody(physics.Body{
		Pos:    physics.Vec2{X: 0, Y: -1},
		HalfW:  cfg.BoundsHalfWidth * 2,
		HalfH:  1,
		Static: true,
	})

	g.scheduler = sim.NewScheduler(g.handleEvent)
	g.scheduler.Register(&OscillationSystem{game: g})
	g.scheduler.Register(&PhysicsSystem{game: g})
	g.scheduler.Register(&GroundRuleSystem{game: g})
	g.scheduler.Register(&SettleSystem{game: g})
	g.scheduler.Register(&PlacementSystem{game: g})
	g.scheduler.Register(&CollapseSystem{game: g})
	g.scheduler.Register(&ProgressionSystem{game: g})

	g.startRun()
	return g
}

func (g *Game) startRun() {
	g.ledger.StartNewRun(g.cfg.Lives, g.cfg.MoveSpeed)
	g.violations.Reset()
	g.level = LevelFor(0)
	g.firstDropDone = false
	g.pendingComplete = false
	g.quietTicks = 0
	g.phase = RunAwaitingDrop
	g.spawnNext()
}

// Tick advances the simulation by dt seconds.
func (g *Game) Tick(dt float64) {
	g.scheduler.Once(dt)
}

// Run drives Tick off a ticker until ctx is cancelled.
func (g *Game) Run(ctx context.Context, interval time.Duration) {
	g.scheduler.Run(ctx, interval)
}

// Drop commits the oscillating piece. Dropping when no piece is waiting,
// or a second time for the same piece, is a no-op.
func (g *Game) Drop() bool {
	if g.phase != RunAwaitingDrop {
		return false
	}
	p := g.arena.Get(g.active)
	if p == nil {
		return false
	}
	if !p.Drop(g.world) {
		return false
	}
	if !g.firstDropDone {
		// The first piece of a run is expected to reach the ground.
		p.GroundExempt = true
		g.firstDropDone = true
	}
	g.phase = RunSettling
	g.scheduler.Queue().Emit(PieceDroppedEvent{ID: p.ID, Tier: p.Tier})
	return true
}

// State returns the current run counters.
func (g *Game) State() RunState {
	return g.ledger.State()
}

// Phase returns the progression controller's state.
func (g *Game) Phase() RunPhase {
	return g.phase
}

// Level returns the current level.
func (g *Game) Level() Level {
	return g.level
}

// Ledger exposes the scoring journal for feedback consumers.
func (g *Game) Ledger() *Ledger {
	return g.ledger
}

// Violations exposes the ground-violation audit log.
func (g *Game) Violations() *ViolationLog {
	return g.violations
}

// Stats returns scheduler execution statistics.
func (g *Game) Stats() *sim.SchedulerStats {
	return g.scheduler.GetStats()
}

// ActivePiece returns the piece currently in play, or nil.
func (g *Game) ActivePiece() *Piece {
	return g.arena.Get(g.active)
}

// Pieces calls fn for every live piece in slot order.
func (g *Game) Pieces(fn func(*Piece)) {
	for _, p := range g.arena.Iter() {
		fn(p)
	}
}

// StructureSize returns the number of placed, non-removed pieces.
func (g *Game) StructureSize() int {
	return g.structure.Len()
}

// handleEvent fans drained tick events out to the hooks.
func (g *Game) handleEvent(ev sim.Event) {
	switch e := ev.(type) {
	case PieceDroppedEvent:
		if g.hooks.PieceDropped != nil {
			g.hooks.PieceDropped(e)
		}
	case LevelCompleteEvent:
		if g.hooks.LevelComplete != nil {
			g.hooks.LevelComplete(e)
		}
	case CollapseEvent:
		if g.hooks.Collapse != nil {
			g.hooks.Collapse(e)
		}
	case GameOverEvent:
		if g.hooks.GameOver != nil {
			g.hooks.GameOver(e)
		}
	}
}

// spawnNext creates the next piece and starts its oscillation sweep. The
// tier is chosen uniformly among the tiers that currently have a legal
// target on the structure.
func (g *Game) spawnNext() {
	tiers := g.legalNextTiers()
	tier := tiers[g.rng.IntN(len(tiers))]
	fp := TierFootprint(tier)

	body := g.world.AddBody(physics.Body{
		Pos:       physics.Vec2{X: 0, Y: g.cfg.SpawnHeight},
		HalfW:     fp.W / 2,
		HalfH:     fp.H / 2,
		Kinematic: true,
	})

	id := g.arena.Insert(Piece{
		Tier:        tier,
		Footprint:   fp,
		Body:        body,
		Phase:       PhaseSpawned,
		SpawnedTick: g.scheduler.Tick(),
		Pos:         physics.Vec2{X: 0, Y: g.cfg.SpawnHeight},
	})
	p := g.arena.Get(id)
	p.ID = id
	p.Phase = PhaseMoving

	g.bodyIndex.Put(body, id)
	g.active = id
	g.phase = RunAwaitingDrop
}

// legalNextTiers returns the tiers that can legally be placed given the
// structure's current top tier. The base tier always has the ground as a
// target; the top tier's successor is legal while the level allows it.
func (g *Game) legalNextTiers() []Tier {
	tiers := []Tier{g.cfg.BaseTier}
	top := g.topTier()
	if top >= g.cfg.BaseTier && top+1 <= g.level.MaxTier {
		tiers = append(tiers, top+1)
	}
	return tiers
}

// topTier returns the highest tier among validly placed pieces, or 0 when
// nothing is placed.
func (g *Game) topTier() Tier {
	var top Tier
	for _, id := range g.structure.IDs() {
		p := g.arena.Get(id)
		if p == nil || !p.PlacementValid {
			continue
		}
		if p.Tier > top {
			top = p.Tier
		}
	}
	return top
}

// settledPieces returns the structure members in drop order.
func (g *Game) settledPieces() []*Piece {
	out := make([]*Piece, 0, g.structure.Len())
	for _, id := range g.structure.IDs() {
		if p := g.arena.Get(id); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// destroyPiece tears a piece down completely: structure membership,
// physics body, body index, arena slot. Safe to call with a stale ID.
func (g *Game) destroyPiece(id sim.PieceID) {
	p := g.arena.Get(id)
	if p == nil {
		return
	}
	if g.structure.Remove(id) {
		g.quietTicks = 0
	}
	if p.Body != physics.NoBody {
		g.world.RemoveBody(p.Body)
		g.bodyIndex.Del(p.Body)
		p.Body = physics.NoBody
	}
	p.Phase = PhaseRemoved
	g.arena.Remove(id)
	if g.active == id {
		g.active = sim.NoPiece
	}
}

// clearAllPieces removes every piece, placed or in flight.
func (g *Game) clearAllPieces() {
	var ids []sim.PieceID
	for id := range g.arena.Iter() {
		ids = append(ids, id)
	}
	for _, id := range ids {
		g.destroyPiece(id)
	}
	g.structure.Clear()
	g.active = sim.NoPiece
}

// failLevel handles both collapse and attempt exhaustion: the structure is
// cleared, a life is deducted and the level restarts with the same target,
// or the run ends at zero lives.
func (g *Game) failLevel(queue *sim.Queue, emit func(RunState)) {
	state := g.ledger.RestartLevel()
	g.clearAllPieces()
	g.pendingComplete = false
	g.quietTicks = 0

	if emit != nil {
		emit(state)
	}

	if state.Lives <= 0 {
		g.phase = RunOver
		queue.Emit(GameOverEvent{State: state})
		return
	}
	g.spawnNext()
}

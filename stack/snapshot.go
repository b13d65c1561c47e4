package stack

import (
	"errors"
	"time"

	"github.com/plus3/ziggurat/physics"
)

// ErrStaleSnapshot is returned by Restore when the snapshot is older than
// the configured freshness window. The caller discards it and plays on
// with the current run.
var ErrStaleSnapshot = errors.New("stack: snapshot is stale")

// PieceRecord is the serialized form of one piece.
type PieceRecord struct {
	Tier           int     `json:"tier"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	VX             float64 `json:"vx"`
	VY             float64 `json:"vy"`
	W              float64 `json:"w"`
	H              float64 `json:"h"`
	Phase          int     `json:"phase"`
	PlacementValid bool    `json:"placement_valid"`
	GroundExempt   bool    `json:"ground_exempt"`
}

// Snapshot is a persistable record of the whole run: counters, the placed
// structure in drop order, the in-flight piece if any, and the violation
// audit log. It contains no physics handles; Restore re-creates bodies in
// their saved poses.
type Snapshot struct {
	SavedAt       time.Time         `json:"saved_at"`
	Tick          uint64            `json:"tick"`
	Run           RunState          `json:"run"`
	FirstDropDone bool              `json:"first_drop_done"`
	Pieces        []PieceRecord     `json:"pieces"`
	ActiveIndex   int               `json:"active_index"`
	Violations    []ViolationRecord `json:"violations"`
}

// Snapshot captures the current state. Call it at a quiescent point, which
// is any time outside Tick.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		SavedAt:       time.Now(),
		Tick:          g.scheduler.Tick(),
		Run:           g.ledger.State(),
		FirstDropDone: g.firstDropDone,
		ActiveIndex:   -1,
		Violations:    g.violations.Records(),
	}

	for _, id := range g.structure.IDs() {
		p := g.arena.Get(id)
		if p == nil {
			continue
		}
		snap.Pieces = append(snap.Pieces, recordPiece(p))
	}

	if p := g.arena.Get(g.active); p != nil && !g.structure.Contains(p.ID) {
		snap.ActiveIndex = len(snap.Pieces)
		snap.Pieces = append(snap.Pieces, recordPiece(p))
	}

	return snap
}

func recordPiece(p *Piece) PieceRecord {
	return PieceRecord{
		Tier:           int(p.Tier),
		X:              p.Pos.X,
		Y:              p.Pos.Y,
		VX:             p.Vel.X,
		VY:             p.Vel.Y,
		W:              p.Footprint.W,
		H:              p.Footprint.H,
		Phase:          int(p.Phase),
		PlacementValid: p.PlacementValid,
		GroundExempt:   p.GroundExempt,
	}
}

// Restore replaces the game state with the snapshot's: counters, level,
// violation log, and every piece rebuilt with a fresh physics body in its
// saved pose. Snapshots older than the freshness window are rejected with
// ErrStaleSnapshot and leave the game untouched.
func (g *Game) Restore(snap Snapshot) error {
	if g.cfg.SnapshotMaxAge > 0 && time.Since(snap.SavedAt) > g.cfg.SnapshotMaxAge {
		return ErrStaleSnapshot
	}

	g.clearAllPieces()

	g.ledger.SetState(snap.Run)
	g.violations.restore(snap.Violations)
	g.level = LevelFor(snap.Run.LevelIndex)
	g.firstDropDone = snap.FirstDropDone
	g.quietTicks = 0

	for i, rec := range snap.Pieces {
		phase := Phase(rec.Phase)
		kinematic := phase == PhaseSpawned || phase == PhaseMoving

		body := g.world.AddBody(physics.Body{
			Pos:       physics.Vec2{X: rec.X, Y: rec.Y},
			Vel:       physics.Vec2{X: rec.VX, Y: rec.VY},
			HalfW:     rec.W / 2,
			HalfH:     rec.H / 2,
			Kinematic: kinematic,
		})

		id := g.arena.Insert(Piece{
			Tier:           Tier(rec.Tier),
			Footprint:      Footprint{W: rec.W, H: rec.H},
			Body:           body,
			Phase:          phase,
			PlacementValid: rec.PlacementValid,
			GroundExempt:   rec.GroundExempt,
			Pos:            physics.Vec2{X: rec.X, Y: rec.Y},
			Vel:            physics.Vec2{X: rec.VX, Y: rec.VY},
		})
		p := g.arena.Get(id)
		p.ID = id
		g.bodyIndex.Put(body, id)

		if i == snap.ActiveIndex {
			g.active = id
		} else {
			g.structure.Add(id)
			if phase == PhaseSettling {
				// A piece saved mid-settle resumes as the piece whose
				// outcome is pending.
				g.active = id
			}
		}
	}

	// Pending completion is derivable from the restored counters, so it
	// is recomputed rather than serialized. The quiet window restarts
	// from zero, which only delays the completion check.
	g.pendingComplete = snap.Run.LevelPlacements >= g.level.TargetPieces

	switch {
	case snap.Run.Lives <= 0:
		g.phase = RunOver
	case g.arena.Contains(g.active):
		if p := g.arena.Get(g.active); p.Phase == PhaseMoving {
			g.phase = RunAwaitingDrop
		} else {
			g.phase = RunSettling
		}
	case g.pendingComplete:
		// The progression system finishes the level once the quiet
		// window has passed; no new piece spawns before that.
		g.phase = RunSettling
	default:
		g.phase = RunAwaitingDrop
		g.spawnNext()
	}

	return nil
}

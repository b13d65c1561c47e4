package stack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/ziggurat/physics"
	"github.com/plus3/ziggurat/sim"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := New(DefaultConfig(), Hooks{})

	g.ledger.Award(150, ReasonPlacement)
	g.ledger.RecordPlacement()
	g.violations.Append(ViolationRecord{PieceID: sim.NewPieceID(9, 9), Penalty: 75, Tick: 3})
	g.firstDropDone = true
	insertPlaced(g, 1, 0.25, 0.5)

	snap := g.Snapshot()
	require.Len(t, snap.Pieces, 2)
	assert.Equal(t, 1, snap.ActiveIndex) // the sweeping piece rides along
	assert.True(t, snap.FirstDropDone)

	restored := New(DefaultConfig(), Hooks{})
	require.NoError(t, restored.Restore(snap))

	assert.Equal(t, g.State(), restored.State())
	assert.Equal(t, g.Violations().Records(), restored.Violations().Records())
	assert.Equal(t, 1, restored.StructureSize())
	assert.Equal(t, g.Level(), restored.Level())
	assert.Equal(t, RunAwaitingDrop, restored.Phase())

	// The placed piece came back in its saved pose.
	placed := restored.arena.Get(restored.structure.IDs()[0])
	require.NotNil(t, placed)
	assert.Equal(t, PhaseValid, placed.Phase)
	assert.True(t, placed.PlacementValid)
	assert.Equal(t, physics.Vec2{X: 0.25, Y: 0.5}, placed.Pos)

	// The active piece is sweeping again on a kinematic body.
	active := restored.ActivePiece()
	require.NotNil(t, active)
	assert.Equal(t, PhaseMoving, active.Phase)
	assert.True(t, restored.world.Body(active.Body).Kinematic)
}

func TestRestoreRejectsStaleSnapshot(t *testing.T) {
	g := New(DefaultConfig(), Hooks{})
	g.ledger.Award(500, ReasonPlacement)
	snap := g.Snapshot()
	snap.SavedAt = time.Now().Add(-25 * time.Hour)

	restored := New(DefaultConfig(), Hooks{})
	before := restored.State()

	err := restored.Restore(snap)
	assert.ErrorIs(t, err, ErrStaleSnapshot)

	// A rejected restore leaves the running game untouched.
	assert.Equal(t, before, restored.State())
	assert.Equal(t, 0, restored.StructureSize())
}

func TestRestoreFreshnessWindowDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SnapshotMaxAge = 0

	g := New(cfg, Hooks{})
	snap := g.Snapshot()
	snap.SavedAt = time.Now().Add(-1000 * time.Hour)

	restored := New(cfg, Hooks{})
	assert.NoError(t, restored.Restore(snap))
}

func TestRestoreResumesMidSettle(t *testing.T) {
	g := New(DefaultConfig(), Hooks{})

	// The active piece was saved mid-settle, already in the structure.
	p := g.ActivePiece()
	require.NotNil(t, p)
	p.Phase = PhaseSettling
	p.Pos = physics.Vec2{X: 0, Y: 0.5}
	g.structure.Add(p.ID)

	snap := g.Snapshot()
	require.Len(t, snap.Pieces, 1)
	assert.Equal(t, -1, snap.ActiveIndex)

	restored := New(DefaultConfig(), Hooks{})
	require.NoError(t, restored.Restore(snap))

	// The settling piece resumes as the piece whose outcome is pending.
	assert.Equal(t, RunSettling, restored.Phase())
	active := restored.ActivePiece()
	require.NotNil(t, active)
	assert.Equal(t, PhaseSettling, active.Phase)
	assert.False(t, restored.world.Body(active.Body).Kinematic)
}

func TestRestoreResumesPendingCompletion(t *testing.T) {
	g := New(DefaultConfig(), Hooks{})
	g.destroyPiece(g.active)

	// The level target was reached right before the snapshot; the run
	// was waiting out the quiet window with no piece in flight.
	for i := 0; i < g.level.TargetPieces; i++ {
		g.ledger.RecordPlacement()
	}
	insertPlaced(g, 1, -4, 0.5)
	insertPlaced(g, 1, 0, 0.5)
	insertPlaced(g, 1, 4, 0.5)

	restored := New(DefaultConfig(), Hooks{})
	require.NoError(t, restored.Restore(g.Snapshot()))

	assert.True(t, restored.pendingComplete)
	assert.Equal(t, RunSettling, restored.Phase())
	assert.Nil(t, restored.ActivePiece())

	// The completion finishes on its own, without another placement.
	for i := 0; i <= restored.cfg.CollapseGraceTicks+1; i++ {
		restored.Tick(1.0 / 60.0)
	}
	assert.Equal(t, 1, restored.State().LevelIndex)
	assert.Equal(t, 2, restored.Level().ID)
}

func TestRestoreGameOver(t *testing.T) {
	g := New(DefaultConfig(), Hooks{})
	state := g.ledger.State()
	state.Lives = 0
	g.ledger.SetState(state)
	g.clearAllPieces()

	snap := g.Snapshot()

	restored := New(DefaultConfig(), Hooks{})
	require.NoError(t, restored.Restore(snap))

	assert.Equal(t, RunOver, restored.Phase())
	assert.False(t, restored.Drop())
}

func TestRestoreWithEmptyBoardSpawns(t *testing.T) {
	g := New(DefaultConfig(), Hooks{})
	g.clearAllPieces()

	snap := g.Snapshot()
	require.Empty(t, snap.Pieces)

	restored := New(DefaultConfig(), Hooks{})
	require.NoError(t, restored.Restore(snap))

	assert.Equal(t, RunAwaitingDrop, restored.Phase())
	require.NotNil(t, restored.ActivePiece())
}

func TestRestoredRunKeepsPlaying(t *testing.T) {
	g := New(DefaultConfig(), Hooks{})
	g.firstDropDone = true
	g.ledger.RecordPlacement()
	insertPlaced(g, 1, 0, 0.5)

	restored := New(DefaultConfig(), Hooks{})
	require.NoError(t, restored.Restore(g.Snapshot()))

	// The restored run accepts input and advances like any other.
	require.True(t, restored.Drop())
	for i := 0; i < 200; i++ {
		restored.Tick(1.0 / 60.0)
	}
	assert.NotEqual(t, RunOver, restored.Phase())
}

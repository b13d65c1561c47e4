// Command ziggurat-sim runs the stacking core headless: a scripted bot
// drops pieces at fixed cadence while the fixed-step loop advances, then a
// run report is printed. Useful for tuning the rule constants and for
// soak-testing the pipeline without a front-end.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/plus3/ziggurat/stack"
	"github.com/plus3/ziggurat/store"
)

// envConfig holds the environment overrides. Flags win over environment,
// environment wins over defaults.
type envConfig struct {
	TickRate     int     `env:"ZIGGURAT_TICK_RATE" envDefault:"60"`
	Seed         uint64  `env:"ZIGGURAT_SEED" envDefault:"1"`
	SnapshotPath string  `env:"ZIGGURAT_SNAPSHOT_DB"`
	DropEvery    float64 `env:"ZIGGURAT_DROP_EVERY" envDefault:"2.5"`
}

func main() {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		log.Fatalf("parse environment: %v", err)
	}

	duration := flag.Duration("duration", 60*time.Second, "Simulated run duration.")
	tickRate := flag.Int("tick-rate", ec.TickRate, "Simulation ticks per second.")
	seed := flag.Uint64("seed", ec.Seed, "Tier-selection seed.")
	dropEvery := flag.Float64("drop-every", ec.DropEvery, "Seconds between scripted drops.")
	snapshotPath := flag.String("snapshot-db", ec.SnapshotPath, "SQLite snapshot database (empty disables persistence).")
	flag.Parse()

	cfg := stack.DefaultConfig()
	cfg.Seed = *seed

	report := &Report{
		Duration: *duration,
		TickRate: *tickRate,
		Seed:     *seed,
	}

	game := stack.New(cfg, stack.Hooks{
		PieceDropped:  func(stack.PieceDroppedEvent) { report.Drops++ },
		LevelComplete: func(ev stack.LevelCompleteEvent) { report.LevelsCompleted++ },
		Collapse:      func(ev stack.CollapseEvent) { report.Collapses++ },
		GameOver: func(ev stack.GameOverEvent) {
			report.RunsEnded++
			log.Printf("run over: score=%d placements=%d", ev.State.Score, ev.State.TotalPlacements)
		},
	})

	var snapshots *store.Store
	if *snapshotPath != "" {
		var err error
		snapshots, err = store.Open(*snapshotPath)
		if err != nil {
			log.Fatalf("open snapshot store: %v", err)
		}
		defer snapshots.Close()

		restoreLatest(game, snapshots, cfg)
	}

	log.Printf("running for %s of simulated time at %d Hz...", *duration, *tickRate)

	dt := 1.0 / float64(*tickRate)
	totalTicks := int(duration.Seconds() * float64(*tickRate))
	nextDrop := *dropEvery

	wallStart := time.Now()
	for i := 0; i < totalTicks; i++ {
		elapsed := float64(i) * dt
		if elapsed >= nextDrop {
			if game.Drop() {
				nextDrop = elapsed + *dropEvery
			}
		}
		game.Tick(dt)
	}
	report.WallTime = time.Since(wallStart)
	report.TotalTicks = totalTicks
	report.Final = game.State()
	report.SchedulerStats = game.Stats()

	if snapshots != nil {
		saveSnapshot(game, snapshots, cfg)
	}

	fmt.Println("\n--- Run Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func restoreLatest(game *stack.Game, snapshots *store.Store, cfg stack.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snap, err := snapshots.Latest(ctx)
	if errors.Is(err, store.ErrNoSnapshot) {
		return
	}
	if err != nil {
		log.Printf("load snapshot: %v (starting fresh)", err)
		return
	}
	if err := game.Restore(snap); err != nil {
		// Stale or unusable: discard rather than propagate.
		log.Printf("restore snapshot: %v (starting fresh)", err)
		if _, err := snapshots.Prune(ctx, time.Now().Add(-cfg.SnapshotMaxAge)); err != nil {
			log.Printf("prune snapshots: %v", err)
		}
		return
	}
	log.Printf("resumed run: score=%d level=%d", snap.Run.Score, snap.Run.LevelIndex+1)
}

func saveSnapshot(game *stack.Game, snapshots *store.Store, cfg stack.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := snapshots.Save(ctx, game.Snapshot()); err != nil {
		log.Printf("save snapshot: %v", err)
		return
	}
	if _, err := snapshots.Prune(ctx, time.Now().Add(-cfg.SnapshotMaxAge)); err != nil {
		log.Printf("prune snapshots: %v", err)
	}
}

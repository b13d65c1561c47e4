package sim

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// EventHandler receives every event drained from the tick queue.
type EventHandler func(Event)

// Scheduler executes systems in registration order, once per tick. After
// the last system has run, the tick's event queue is drained into the
// scheduler's event handler and deferred mutations are applied. All state
// transitions for a tick therefore complete before the next tick starts.
type Scheduler struct {
	systems     []System
	systemStats []*systemStatsInternal
	queue       *Queue
	handler     EventHandler
	tick        uint64
}

// NewScheduler creates a scheduler whose drained events are delivered to
// handler. A nil handler discards events but still applies deferred
// mutations.
func NewScheduler(handler EventHandler) *Scheduler {
	return &Scheduler{
		systems: make([]System, 0),
		queue:   NewQueue(),
		handler: handler,
	}
}

// Register adds a system to the end of the pipeline.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Tick returns the number of completed ticks.
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// Queue returns the scheduler's event queue. Events emitted outside a
// tick (player input, restores) are delivered at the end of the next one.
func (s *Scheduler) Queue() *Queue {
	return s.queue
}

// Once executes all registered systems once with the given delta time,
// then drains the event queue.
func (s *Scheduler) Once(dt float64) {
	frame := newFrame(dt, s.tick, s.queue)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.queue.Drain(s.handler)
	s.tick++
}

// Run executes the pipeline repeatedly at the given interval until the
// context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

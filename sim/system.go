package sim

// System represents one stage of the per-tick pipeline. Systems receive
// their collaborators through their constructors and must not retain the
// frame past the call.
type System interface {
	Execute(frame *Frame)
}

// Frame carries the per-tick context handed to every system.
type Frame struct {
	// DeltaTime is the elapsed simulated time for this tick, in seconds.
	DeltaTime float64
	// Tick is the monotonically increasing tick counter.
	Tick uint64
	// Queue collects events and deferred mutations; it is drained once
	// after the last system has run.
	Queue *Queue
}

func newFrame(dt float64, tick uint64, queue *Queue) *Frame {
	return &Frame{
		DeltaTime: dt,
		Tick:      tick,
		Queue:     queue,
	}
}

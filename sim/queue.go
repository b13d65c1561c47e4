package sim

// Event is a value describing something that happened during a tick.
// Concrete event types are defined by the package that owns the systems.
type Event any

// Queue buffers events and deferred mutations emitted by systems during a
// tick. It is drained exactly once per tick, after every system has run,
// which gives deterministic ordering: events are observed in emission
// order, and structural mutations (deletes, spawns) never happen while a
// system is still iterating.
type Queue struct {
	events []Event
	defers []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Emit appends an event to the queue.
func (q *Queue) Emit(ev Event) {
	q.events = append(q.events, ev)
}

// Defer queues a function to run at the end of the tick, after all events
// have been delivered. Use this for structural mutations that must not
// interleave with system iteration.
func (q *Queue) Defer(fn func()) {
	q.defers = append(q.defers, fn)
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain delivers all buffered events to handler in emission order, then
// runs the deferred functions, then resets the buffer. Events emitted and
// functions deferred while draining are processed in the same pass.
func (q *Queue) Drain(handler func(Event)) {
	for i := 0; i < len(q.events); i++ {
		if handler != nil {
			handler(q.events[i])
		}
	}

	for i := 0; i < len(q.defers); i++ {
		q.defers[i]()
	}

	q.events = q.events[:0]
	q.defers = q.defers[:0]
}

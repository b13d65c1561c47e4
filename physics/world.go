package physics

import "math"

// Contact records a collision edge between two bodies. Began is true for
// the step in which the pair started overlapping and false for the step in
// which it stopped.
type Contact struct {
	A, B  BodyID
	Began bool
}

type pairKey struct {
	a, b BodyID
}

func makePairKey(a, b BodyID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// World is a minimal 2D rigid-body simulator for axis-aligned boxes:
// explicit Euler integration, positional separation on the shallow axis,
// and inelastic contact response with tangential damping. It is not a
// general physics engine; it produces exactly the signals the game core
// consumes through its adapter contract: body kinematics and collision
// start/end events.
type World struct {
	gravity Vec2
	damping float64

	bodies map[BodyID]*Body
	// order preserves insertion order so a step is deterministic
	// regardless of map iteration.
	order []BodyID

	touching map[pairKey]bool
	contacts []Contact
	nextID   BodyID
}

// NewWorld creates a world with the given gravity acceleration.
func NewWorld(gravity Vec2) *World {
	return &World{
		gravity:  gravity,
		damping:  0.985,
		bodies:   make(map[BodyID]*Body),
		touching: make(map[pairKey]bool),
		nextID:   1,
	}
}

// AddBody inserts a body and returns its ID.
func (w *World) AddBody(b Body) BodyID {
	id := w.nextID
	w.nextID++
	b.id = id
	stored := b
	w.bodies[id] = &stored
	w.order = append(w.order, id)
	return id
}

// RemoveBody deletes a body. Contact-end events for pairs involving the
// body are emitted on the next step. Removing an unknown ID is a no-op.
func (w *World) RemoveBody(id BodyID) {
	if _, ok := w.bodies[id]; !ok {
		return
	}
	delete(w.bodies, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Body returns the body for the given ID, or nil if it has been removed.
// Callers must treat nil as "at rest / absent", never as an error.
func (w *World) Body(id BodyID) *Body {
	return w.bodies[id]
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Step advances the simulation by dt seconds and records contact edges.
func (w *World) Step(dt float64) {
	for _, id := range w.order {
		b := w.bodies[id]
		if b.Static {
			continue
		}
		if !b.Kinematic {
			b.Vel = b.Vel.Add(w.gravity.Scale(dt))
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}

	w.resolveOverlaps()
	w.recordContactEdges()
}

// DrainContacts returns the contact edges recorded since the last drain
// and resets the buffer.
func (w *World) DrainContacts() []Contact {
	out := w.contacts
	w.contacts = nil
	return out
}

func (w *World) resolveOverlaps() {
	// A couple of relaxation passes keeps shallow stacks separated
	// without a full constraint solver.
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < len(w.order); i++ {
			for j := i + 1; j < len(w.order); j++ {
				a := w.bodies[w.order[i]]
				b := w.bodies[w.order[j]]
				if a.Static && b.Static {
					continue
				}
				if a.Kinematic || b.Kinematic {
					continue
				}
				if !a.overlaps(b) {
					continue
				}
				w.separate(a, b)
			}
		}
	}
}

// separate pushes the pair apart along the shallow axis and removes the
// approaching component of velocity on that axis.
func (w *World) separate(a, b *Body) {
	dx := b.Pos.X - a.Pos.X
	px := (a.HalfW + b.HalfW) - math.Abs(dx)
	dy := b.Pos.Y - a.Pos.Y
	py := (a.HalfH + b.HalfH) - math.Abs(dy)
	if px <= 0 || py <= 0 {
		return
	}

	if py < px {
		// Vertical separation: the common case for a stack.
		sign := 1.0
		if dy < 0 {
			sign = -1.0
		}
		w.push(a, b, Vec2{Y: sign * py}, Vec2{X: 0, Y: sign})
	} else {
		sign := 1.0
		if dx < 0 {
			sign = -1.0
		}
		w.push(a, b, Vec2{X: sign * px}, Vec2{X: sign, Y: 0})
	}
}

func (w *World) push(a, b *Body, correction, normal Vec2) {
	switch {
	case a.Static:
		b.Pos = b.Pos.Add(correction)
	case b.Static:
		a.Pos = a.Pos.Sub(correction)
	default:
		half := correction.Scale(0.5)
		a.Pos = a.Pos.Sub(half)
		b.Pos = b.Pos.Add(half)
	}

	// Inelastic response: cancel the approaching velocity along the
	// normal and damp the tangential remainder so stacks come to rest.
	rel := b.Vel.Sub(a.Vel)
	approach := rel.Dot(normal)
	if approach < 0 {
		impulse := normal.Scale(approach)
		switch {
		case a.Static:
			b.Vel = b.Vel.Sub(impulse)
		case b.Static:
			a.Vel = a.Vel.Add(impulse)
		default:
			a.Vel = a.Vel.Add(impulse.Scale(0.5))
			b.Vel = b.Vel.Sub(impulse.Scale(0.5))
		}
	}

	if !a.Static {
		a.Vel = a.Vel.Scale(w.damping)
	}
	if !b.Static {
		b.Vel = b.Vel.Scale(w.damping)
	}
}

func (w *World) recordContactEdges() {
	current := make(map[pairKey]bool, len(w.touching))

	for i := 0; i < len(w.order); i++ {
		for j := i + 1; j < len(w.order); j++ {
			a := w.bodies[w.order[i]]
			b := w.bodies[w.order[j]]
			if a.Static && b.Static {
				continue
			}
			// Contact uses a slightly inflated box so resting pairs,
			// which the solver keeps just separated, still count as
			// touching.
			if !touching(a, b) {
				continue
			}
			key := makePairKey(a.id, b.id)
			current[key] = true
			if !w.touching[key] {
				w.contacts = append(w.contacts, Contact{A: key.a, B: key.b, Began: true})
			}
		}
	}

	for key := range w.touching {
		if !current[key] {
			w.contacts = append(w.contacts, Contact{A: key.a, B: key.b, Began: false})
		}
	}

	w.touching = current
}

const contactSlop = 0.02

func touching(a, b *Body) bool {
	return a.Pos.X-a.HalfW-contactSlop < b.Pos.X+b.HalfW && a.Pos.X+a.HalfW+contactSlop > b.Pos.X-b.HalfW &&
		a.Pos.Y-a.HalfH-contactSlop < b.Pos.Y+b.HalfH && a.Pos.Y+a.HalfH+contactSlop > b.Pos.Y-b.HalfH
}

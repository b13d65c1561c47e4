package stack

import "github.com/plus3/ziggurat/sim"

// PhysicsSystem steps the world and mirrors the resulting kinematics back
// onto the piece records. It also drains the world's collision edges into
// the game's per-tick contact buffer for the rule systems that follow.
type PhysicsSystem struct {
	game *Game
}

func (s *PhysicsSystem) Execute(frame *sim.Frame) {
	g := s.game

	g.world.Step(frame.DeltaTime)
	g.contacts = g.world.DrainContacts()

	for _, p := range g.arena.Iter() {
		p.SampleKinematics(g.world)
	}
}

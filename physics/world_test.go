package physics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/ziggurat/physics"
)

const dt = 1.0 / 60.0

func TestVec2(t *testing.T) {
	a := physics.Vec2{X: 3, Y: 4}
	b := physics.Vec2{X: 1, Y: 2}

	assert.Equal(t, physics.Vec2{X: 4, Y: 6}, a.Add(b))
	assert.Equal(t, physics.Vec2{X: 2, Y: 2}, a.Sub(b))
	assert.Equal(t, physics.Vec2{X: 6, Y: 8}, a.Scale(2))
	assert.Equal(t, 11.0, a.Dot(b))
	assert.Equal(t, 5.0, a.Len())
	assert.Equal(t, 25.0, a.LenSq())
	assert.False(t, a.IsZero())
	assert.True(t, physics.Vec2{}.IsZero())
}

func TestGravityIntegration(t *testing.T) {
	world := physics.NewWorld(physics.Vec2{Y: -10})

	id := world.AddBody(physics.Body{
		Pos:   physics.Vec2{X: 0, Y: 100},
		HalfW: 0.5, HalfH: 0.5,
	})

	world.Step(1.0)

	body := world.Body(id)
	require.NotNil(t, body)
	assert.Equal(t, -10.0, body.Vel.Y)
	assert.Equal(t, 90.0, body.Pos.Y)
}

func TestKinematicIgnoresGravity(t *testing.T) {
	world := physics.NewWorld(physics.Vec2{Y: -10})

	id := world.AddBody(physics.Body{
		Pos:       physics.Vec2{X: 0, Y: 5},
		Vel:       physics.Vec2{X: 2},
		HalfW:     0.5,
		HalfH:     0.5,
		Kinematic: true,
	})

	world.Step(1.0)

	body := world.Body(id)
	require.NotNil(t, body)
	assert.Equal(t, 0.0, body.Vel.Y)
	assert.Equal(t, 5.0, body.Pos.Y)
	assert.Equal(t, 2.0, body.Pos.X)
}

func TestStaticNeverMoves(t *testing.T) {
	world := physics.NewWorld(physics.Vec2{Y: -10})

	id := world.AddBody(physics.Body{
		Pos:    physics.Vec2{X: 0, Y: -1},
		HalfW:  10,
		HalfH:  1,
		Static: true,
	})

	for i := 0; i < 100; i++ {
		world.Step(dt)
	}

	body := world.Body(id)
	require.NotNil(t, body)
	assert.Equal(t, physics.Vec2{X: 0, Y: -1}, body.Pos)
	assert.True(t, body.Vel.IsZero())
}

func TestBodyLandsOnStaticGround(t *testing.T) {
	world := physics.NewWorld(physics.Vec2{Y: -20})

	ground := world.AddBody(physics.Body{
		Pos:    physics.Vec2{X: 0, Y: -1},
		HalfW:  10,
		HalfH:  1,
		Static: true,
	})
	box := world.AddBody(physics.Body{
		Pos:   physics.Vec2{X: 0, Y: 3},
		HalfW: 0.5, HalfH: 0.5,
	})

	var began []physics.Contact
	for i := 0; i < 300; i++ {
		world.Step(dt)
		for _, c := range world.DrainContacts() {
			if c.Began {
				began = append(began, c)
			}
		}
	}

	require.Len(t, began, 1)
	assert.Equal(t, ground, began[0].A)
	assert.Equal(t, box, began[0].B)

	// The box rests on the ground plane with its bottom face near Y=0.
	body := world.Body(box)
	require.NotNil(t, body)
	assert.InDelta(t, 0.0, body.Min().Y, 0.05)
	assert.Less(t, body.Vel.Len(), 0.1)
}

func TestContactEndOnRemoval(t *testing.T) {
	world := physics.NewWorld(physics.Vec2{Y: -20})

	world.AddBody(physics.Body{
		Pos:    physics.Vec2{X: 0, Y: -1},
		HalfW:  10,
		HalfH:  1,
		Static: true,
	})
	box := world.AddBody(physics.Body{
		Pos:   physics.Vec2{X: 0, Y: 1},
		HalfW: 0.5, HalfH: 0.5,
	})

	for i := 0; i < 120; i++ {
		world.Step(dt)
	}
	world.DrainContacts()

	world.RemoveBody(box)
	world.Step(dt)

	contacts := world.DrainContacts()
	require.Len(t, contacts, 1)
	assert.False(t, contacts[0].Began)
}

func TestRemoveUnknownBodyIsNoop(t *testing.T) {
	world := physics.NewWorld(physics.Vec2{})

	id := world.AddBody(physics.Body{HalfW: 1, HalfH: 1})
	assert.Equal(t, 1, world.Len())

	world.RemoveBody(physics.BodyID(9999))
	assert.Equal(t, 1, world.Len())
	assert.Nil(t, world.Body(physics.NoBody))

	world.RemoveBody(id)
	assert.Equal(t, 0, world.Len())
	assert.Nil(t, world.Body(id))
}

func TestStackedBoxesSeparate(t *testing.T) {
	world := physics.NewWorld(physics.Vec2{Y: -20})

	world.AddBody(physics.Body{
		Pos:    physics.Vec2{X: 0, Y: -1},
		HalfW:  10,
		HalfH:  1,
		Static: true,
	})
	lower := world.AddBody(physics.Body{
		Pos:   physics.Vec2{X: 0, Y: 0.5},
		HalfW: 1, HalfH: 0.5,
	})
	upper := world.AddBody(physics.Body{
		Pos:   physics.Vec2{X: 0, Y: 4},
		HalfW: 0.5, HalfH: 0.5,
	})

	for i := 0; i < 600; i++ {
		world.Step(dt)
	}

	lo := world.Body(lower)
	hi := world.Body(upper)
	require.NotNil(t, lo)
	require.NotNil(t, hi)

	// The upper box comes to rest on top of the lower one, not inside it.
	gap := hi.Min().Y - lo.Max().Y
	assert.Less(t, math.Abs(gap), 0.1)
	assert.Greater(t, hi.Pos.Y, lo.Pos.Y)
	assert.Less(t, hi.Vel.Len(), 0.2)
	assert.Less(t, lo.Vel.Len(), 0.2)
}

func TestKinematicBodiesSkipCollisionResponse(t *testing.T) {
	world := physics.NewWorld(physics.Vec2{Y: -20})

	world.AddBody(physics.Body{
		Pos:    physics.Vec2{X: 0, Y: -1},
		HalfW:  10,
		HalfH:  1,
		Static: true,
	})
	sweep := world.AddBody(physics.Body{
		Pos:       physics.Vec2{X: 0, Y: 0.4},
		Vel:       physics.Vec2{X: 3},
		HalfW:     0.5,
		HalfH:     0.5,
		Kinematic: true,
	})

	world.Step(dt)

	// Overlapping the ground does not deflect a kinematic sweep.
	body := world.Body(sweep)
	require.NotNil(t, body)
	assert.Equal(t, physics.Vec2{X: 3}, body.Vel)
	assert.Equal(t, 0.4, body.Pos.Y)
}

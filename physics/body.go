package physics

// BodyID identifies a body within a World. IDs are never reused.
type BodyID uint32

// NoBody is the zero BodyID; lookups of NoBody always return nil.
const NoBody BodyID = 0

// Body is an axis-aligned rigid body. Position is the center of the box.
type Body struct {
	id BodyID

	Pos Vec2
	Vel Vec2

	// HalfW and HalfH are the box half-extents.
	HalfW float64
	HalfH float64

	// Static bodies never move and never collide with each other.
	Static bool

	// Kinematic bodies integrate velocity but ignore gravity and
	// collision response. Used for the pre-drop oscillation sweep.
	Kinematic bool
}

// ID returns the body's identifier within its world.
func (b *Body) ID() BodyID {
	return b.id
}

// AABB bounds of the body.
func (b *Body) Min() Vec2 {
	return Vec2{X: b.Pos.X - b.HalfW, Y: b.Pos.Y - b.HalfH}
}

func (b *Body) Max() Vec2 {
	return Vec2{X: b.Pos.X + b.HalfW, Y: b.Pos.Y + b.HalfH}
}

func (b *Body) overlaps(o *Body) bool {
	return b.Pos.X-b.HalfW < o.Pos.X+o.HalfW && b.Pos.X+b.HalfW > o.Pos.X-o.HalfW &&
		b.Pos.Y-b.HalfH < o.Pos.Y+o.HalfH && b.Pos.Y+b.HalfH > o.Pos.Y-o.HalfH
}

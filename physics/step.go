package physics

import (
	"math"

	"github.com/go-mcbot/client/world"
)

// Entity holds the simulated physics state for one tracked entity: its
// position, velocity, and ground contact flag.
type Entity struct {
	X, Y, Z             float64
	VX, VY, VZ          float64
	OnGround            bool
	HorizontalCollision bool
}

// Step advances one physics tick: applies the horizontal impulse at the
// current speed, integrates gravity, clips the resulting movement against
// the world, and updates ground contact.
func Step(e *Entity, s *State, yaw float32, storage *world.ChunkStorage, solid SolidPredicate) {
	speed := s.Speed()
	fx, fz := horizontalImpulse(s.ForwardImpulse, s.LeftImpulse, yaw, speed)

	e.VX += fx
	e.VZ += fz

	if !e.OnGround {
		e.VY -= Gravity
	}

	box := PlayerBox(e.X, e.Y, e.Z)
	dx, dy, dz := ClipMovement(box, e.VX, e.VY, e.VZ, storage, solid)

	const epsilon = 1e-7
	e.HorizontalCollision = math.Abs(dx-e.VX) > epsilon || math.Abs(dz-e.VZ) > epsilon

	e.X += dx
	e.Y += dy
	e.Z += dz

	landed := e.VY < 0 && dy > e.VY
	e.OnGround = landed || OnGround(PlayerBox(e.X, e.Y, e.Z), storage, solid)
	if landed {
		e.VY = 0
	}

	friction := AirDrag
	if e.OnGround {
		friction = GroundFriction
	}
	e.VX *= friction
	e.VZ *= friction
	e.VY *= AirDrag
}

// Jump sets vertical velocity for a jump if the entity is on the ground.
func Jump(e *Entity) {
	if e.OnGround {
		e.VY = JumpVelocity
		e.OnGround = false
	}
}

// horizontalImpulse rotates the forward/left impulse by yaw into world-space
// X/Z velocity deltas, scaled by the current movement speed.
func horizontalImpulse(forward, left float32, yaw float32, speed float64) (dx, dz float64) {
	rad := float64(yaw) * (math.Pi / 180)
	sin, cos := math.Sin(rad), math.Cos(rad)
	fx := float64(left)*cos - float64(forward)*sin
	fz := float64(forward)*cos + float64(left)*sin
	return fx * speed, fz * speed
}

// Package physics implements the client-side movement simulation: AABB
// collision against the loaded world, gravity/drag integration, and the
// outbound movement-packet truth table a headless client must reproduce to
// look like a real player to the server.
package physics

const (
	// Gravity is the per-tick downward velocity added while airborne.
	Gravity = 0.08
	// AirDrag is the velocity multiplier applied to vertical velocity every
	// tick, and to horizontal velocity while airborne.
	AirDrag = 0.98
	// GroundFriction is the horizontal velocity multiplier applied instead
	// of AirDrag while standing on a block.
	GroundFriction = 0.6
	// JumpVelocity is the vertical velocity a jump sets when on ground.
	JumpVelocity = 0.42
	// WalkSpeed is the base horizontal attribute speed (blocks/tick) at
	// the default movement speed attribute, before sprint/sneak modifiers.
	WalkSpeed = 0.1
	// SprintSpeedMultiplier scales WalkSpeed while sprinting.
	SprintSpeedMultiplier = 1.3
	// SneakSpeedMultiplier scales the forward/left impulse while sneaking,
	// per tick_controls' is_moving_slowly branch.
	SneakSpeedMultiplier = 0.3
	// SprintImpulseThreshold is the minimum forward impulse required
	// before the client will start sprinting on its own.
	SprintImpulseThreshold = 0.8

	// PositionSendIntervalTicks forces a movement packet at least this
	// often even with no motion, per send_position's position_remainder.
	PositionSendIntervalTicks = 20
	// positionSendThreshold is the squared distance moved since the last
	// sent position above which a position is sent early; squared value of
	// Minecraft's 2.0E-4.
	positionSendThreshold = 2.0e-4 * 2.0e-4

	// StepHeight is vanilla's step-up height. Step does not read it and
	// performs no step-up: a solid block in the way stops horizontal
	// movement, and climbing it takes a jump.
	StepHeight = 0.6

	// PlayerWidth and PlayerHeight size the standing player hitbox used to
	// build collision AABBs.
	PlayerWidth  = 0.6
	PlayerHeight = 1.8
)

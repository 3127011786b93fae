package physics

// WalkDirection is the horizontal movement intent a caller sets, combining
// forward/backward and left/right strafing.
type WalkDirection int

const (
	WalkNone WalkDirection = iota
	WalkForward
	WalkBackward
	WalkLeft
	WalkRight
	WalkForwardRight
	WalkForwardLeft
	WalkBackwardRight
	WalkBackwardLeft
)

// SprintDirection is the subset of WalkDirection sprinting supports
// (you can't sprint backward or directly sideways).
type SprintDirection int

const (
	SprintForward SprintDirection = iota
	SprintForwardRight
	SprintForwardLeft
)

// AsWalkDirection converts a sprint direction to its WalkDirection
// equivalent.
func (d SprintDirection) AsWalkDirection() WalkDirection {
	switch d {
	case SprintForwardRight:
		return WalkForwardRight
	case SprintForwardLeft:
		return WalkForwardLeft
	default:
		return WalkForward
	}
}

// State is the per-tick movement bookkeeping for one entity: its current
// impulse, sprint/sneak flags, and the counters the outbound-packet truth
// table needs.
type State struct {
	MoveDirection  WalkDirection
	TryingToSprint bool
	Sprinting      bool
	Sneaking       bool

	// Yaw/Pitch is the entity's current look direction, the body-yaw input
	// Step rotates horizontal impulse by and the pose NextOutbound compares
	// against LastSentYaw/LastSentPitch.
	Yaw, Pitch float32

	ForwardImpulse float32
	LeftImpulse    float32

	// PositionRemainder counts ticks since the last position packet,
	// forcing one at PositionSendIntervalTicks even with no motion.
	PositionRemainder int

	LastSentX, LastSentY, LastSentZ float64
	LastSentYaw, LastSentPitch      float32
	LastOnGround                    bool
}

// TickControls recomputes ForwardImpulse/LeftImpulse from MoveDirection,
// applying the sneak speed penalty when sneaking.
func (s *State) TickControls() {
	var forward, left float32
	switch s.MoveDirection {
	case WalkForward, WalkForwardRight, WalkForwardLeft:
		forward += 1
	case WalkBackward, WalkBackwardRight, WalkBackwardLeft:
		forward -= 1
	}
	switch s.MoveDirection {
	case WalkRight, WalkForwardRight, WalkBackwardRight:
		left -= 1
	case WalkLeft, WalkForwardLeft, WalkBackwardLeft:
		left += 1
	}

	if s.Sneaking {
		forward *= SneakSpeedMultiplier
		left *= SneakSpeedMultiplier
	}

	s.ForwardImpulse = forward
	s.LeftImpulse = left
}

// MaybeStartSprinting begins sprinting if the player is trying to and has
// enough forward impulse, per azalea's has_enough_impulse_to_start_sprinting.
func (s *State) MaybeStartSprinting() {
	if !s.Sprinting && s.TryingToSprint && s.ForwardImpulse > SprintImpulseThreshold {
		s.Sprinting = true
	}
}

// Speed returns the current horizontal attribute speed given sprint state.
func (s *State) Speed() float64 {
	speed := WalkSpeed
	if s.Sprinting {
		speed *= SprintSpeedMultiplier
	}
	return speed
}

// OutboundKind identifies which movement packet (if any) a tick should emit.
type OutboundKind int

const (
	OutboundNone OutboundKind = iota
	OutboundPos
	OutboundRot
	OutboundPosRot
	OutboundStatusOnly
)

// Outbound describes the movement packet a tick should send, mirroring
// send_position's priority order: a combined Pos+Rot packet when both
// position and look changed enough, a lone Pos or Rot packet when only one
// did, a StatusOnly packet on a pure on-ground transition, or nothing.
type Outbound struct {
	Kind       OutboundKind
	X, Y, Z    float64
	Yaw, Pitch float32
	OnGround   bool
}

// NextOutbound advances PositionRemainder and decides what movement packet
// (if any) should be sent this tick for a move from the last-sent pose to
// the current one.
func (s *State) NextOutbound(x, y, z float64, yaw, pitch float32, onGround bool) Outbound {
	dx := x - s.LastSentX
	dy := y - s.LastSentY
	dz := z - s.LastSentZ
	yawDelta := float64(yaw - s.LastSentYaw)
	pitchDelta := float64(pitch - s.LastSentPitch)

	s.PositionRemainder++

	sendingPosition := dx*dx+dy*dy+dz*dz > positionSendThreshold || s.PositionRemainder >= PositionSendIntervalTicks
	sendingDirection := yawDelta != 0 || pitchDelta != 0

	var out Outbound
	switch {
	case sendingPosition && sendingDirection:
		out = Outbound{Kind: OutboundPosRot, X: x, Y: y, Z: z, Yaw: yaw, Pitch: pitch, OnGround: onGround}
	case sendingPosition:
		out = Outbound{Kind: OutboundPos, X: x, Y: y, Z: z, OnGround: onGround}
	case sendingDirection:
		out = Outbound{Kind: OutboundRot, Yaw: yaw, Pitch: pitch, OnGround: onGround}
	case s.LastOnGround != onGround:
		out = Outbound{Kind: OutboundStatusOnly, OnGround: onGround}
	default:
		out = Outbound{Kind: OutboundNone, OnGround: onGround}
	}

	if sendingPosition {
		s.LastSentX, s.LastSentY, s.LastSentZ = x, y, z
		s.PositionRemainder = 0
	}
	if sendingDirection {
		s.LastSentYaw, s.LastSentPitch = yaw, pitch
	}
	s.LastOnGround = onGround

	return out
}

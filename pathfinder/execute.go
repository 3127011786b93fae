package pathfinder

import (
	"math"

	"github.com/go-mcbot/client/physics"
	"github.com/go-mcbot/client/world"
)

// skipAheadMinIndex/skipAheadMaxIndex bound which queued movements a tick is
// allowed to try skipping ahead to, matching the "index i in [2..min(len,10)]
// reverse" rule: close movements are always walked in order, and only a
// short lookahead window is worth the cost of simulating toward it.
const (
	skipAheadMinIndex = 2
	skipAheadMaxIndex = 10
	simulationTicks   = 20
)

// Events is the set of callbacks Tick uses to drive the entity: look toward
// a point, jump once, and walk or sprint in a direction. The caller wires
// these to its own outbound-packet/physics-state plumbing.
type Events struct {
	LookAt func(target world.Vec3)
	Jump   func()
	Walk   func(physics.WalkDirection)
	Sprint func(physics.SprintDirection)
}

// Pathfinder holds the in-progress path an entity is walking and the
// bookkeeping Tick needs across calls.
type Pathfinder struct {
	Path              []Movement
	CurrentTargetNode *world.BlockPos
	// QueuedPath, if non-nil, replaces Path the next time its current front
	// movement is reached — set by the caller when a path recompute
	// finishes while the entity is still walking the old one.
	QueuedPath []Movement
}

// Snapshot is the physics state Tick needs to decide whether the current
// movement target has been reached and to run skip-ahead simulations.
type Snapshot struct {
	Pos      world.Vec3
	OnGround bool
	Physics  physics.Entity
}

// Tick advances path execution by zero or more movements (it may pop
// several queued movements in one call if they're all already reached),
// emitting look-at/jump/sprint-or-walk events for whatever the front
// movement now is. storage and solid are passed through to the skip-ahead
// simulation so it sees the same world the entity does.
func Tick(pf *Pathfinder, snap Snapshot, eyeHeight float64, storage *world.ChunkStorage, solid physics.SolidPredicate, events Events) {
	for {
		if len(pf.Path) == 0 {
			return
		}

		trySkipAhead(pf, snap, storage, solid)

		movement := pf.Path[0]

		if pf.CurrentTargetNode == nil || *pf.CurrentTargetNode != movement.Target {
			if movement.Data.Jump && events.Jump != nil {
				events.Jump()
			}
			target := movement.Target
			pf.CurrentTargetNode = &target
		}

		if events.LookAt != nil {
			center := blockCenter(movement.Target)
			center.Y = snap.Pos.Y + eyeHeight
			events.LookAt(center)
		}

		if movement.Data.Sprint {
			if events.Sprint != nil {
				events.Sprint(physics.SprintForward)
			}
		} else if events.Walk != nil {
			events.Walk(physics.WalkForward)
		}

		if !isReached(movement.Target, snap.Pos, snap.OnGround) {
			return
		}

		if pf.QueuedPath != nil {
			pf.Path = pf.QueuedPath
			pf.QueuedPath = nil
		} else {
			pf.Path = pf.Path[1:]
		}

		if len(pf.Path) == 0 {
			if events.Walk != nil {
				events.Walk(physics.WalkNone)
			}
			return
		}
		// loop again: we may already have reached the next node too.
	}
}

// isReached matches the execution rule: the entity's current block equals
// the movement's target and it is standing on the ground.
func isReached(target world.BlockPos, pos world.Vec3, onGround bool) bool {
	return onGround && blockPosFromVec3(pos) == target
}

// trySkipAhead looks for the farthest queued movement (within the lookahead
// window) the entity could walk straight to from its current physics
// state, and if one is found, drops every movement before it.
func trySkipAhead(pf *Pathfinder, snap Snapshot, storage *world.ChunkStorage, solid physics.SolidPredicate) {
	limit := skipAheadMaxIndex
	if limit > len(pf.Path) {
		limit = len(pf.Path)
	}
	for i := limit - 1; i >= skipAheadMinIndex; i-- {
		if canWalkToTarget(snap.Physics, storage, solid, pf.Path[i].Target) {
			pf.Path = pf.Path[i:]
			return
		}
	}
}

// canWalkToTarget forward-simulates simulationTicks of physics from start,
// sprinting toward target, and reports whether the entity reaches target's
// (x, z) block with its Y unchanged and no horizontal collision along the
// way — the same criteria azalea's can_walk_to_position checks.
func canWalkToTarget(start physics.Entity, storage *world.ChunkStorage, solid physics.SolidPredicate, target world.BlockPos) bool {
	sim := start
	startY := sim.Y
	state := &physics.State{MoveDirection: physics.WalkForward, TryingToSprint: true, Sprinting: true}

	for i := 0; i < simulationTicks; i++ {
		yaw := yawTowards(sim.X, sim.Z, float64(target.X)+0.5, float64(target.Z)+0.5)
		state.TickControls()
		physics.Step(&sim, state, yaw, storage, solid)

		if sim.Y != startY || sim.HorizontalCollision {
			return false
		}
		if int32(math.Floor(sim.X)) == target.X && int32(math.Floor(sim.Z)) == target.Z {
			return true
		}
	}
	return false
}

func yawTowards(x, z, targetX, targetZ float64) float32 {
	dx := targetX - x
	dz := targetZ - z
	rad := math.Atan2(-dx, dz)
	return float32(rad * 180 / math.Pi)
}

func blockPosFromVec3(v world.Vec3) world.BlockPos {
	return world.BlockPos{
		X: int32(math.Floor(v.X)),
		Y: int32(math.Floor(v.Y)),
		Z: int32(math.Floor(v.Z)),
	}
}

func blockCenter(pos world.BlockPos) world.Vec3 {
	return world.Vec3{X: float64(pos.X) + 0.5, Y: float64(pos.Y), Z: float64(pos.Z) + 0.5}
}

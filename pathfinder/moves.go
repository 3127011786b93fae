// Package pathfinder searches for and executes a path of block-to-block
// moves across the loaded world, using A* over a small fixed set of
// parameterised movement primitives (walk, climb, drop, diagonal, parkour).
package pathfinder

import (
	"github.com/go-mcbot/client/world"
)

// CardinalDirection is one of the four horizontal compass directions a Move
// can be parameterised by.
type CardinalDirection int

const (
	North CardinalDirection = iota
	East
	South
	West
)

// X returns the unit block offset along the world X axis for this direction.
func (d CardinalDirection) X() int32 {
	switch d {
	case East:
		return 1
	case West:
		return -1
	default:
		return 0
	}
}

// Z returns the unit block offset along the world Z axis for this direction.
func (d CardinalDirection) Z() int32 {
	switch d {
	case North:
		return -1
	case South:
		return 1
	default:
		return 0
	}
}

// Right returns the direction 90 degrees clockwise from d, used by
// DiagonalMove to find its second candidate corner.
func (d CardinalDirection) Right() CardinalDirection {
	return (d + 1) % 4
}

// Solid reports whether a block state has a full, stand-on-able hitbox.
// Passable reports whether an entity can occupy the same space as it (air,
// or anything with no collision hitbox). This package has no block-shape
// registry (see physics/collision.go's SolidPredicate doc for why), so both
// predicates are supplied by the caller — a simple "is this the zero/air
// state" check is enough for a bot that only ever stands on and walks
// through ordinary terrain.
type Solid func(world.BlockState) bool
type Passable func(world.BlockState) bool

// World is the read-only view of the world a Move needs: block lookups
// plus the min Y bound fall_distance needs to know when to give up.
type World struct {
	Storage  *world.ChunkStorage
	Solid    Solid
	Passable Passable
}

func (w World) isBlockPassable(pos world.BlockPos) bool {
	state, ok := w.Storage.GetBlockState(pos)
	if !ok {
		return false
	}
	return w.Passable(state)
}

func (w World) isBlockSolid(pos world.BlockPos) bool {
	state, ok := w.Storage.GetBlockState(pos)
	if !ok {
		return false
	}
	return w.Solid(state)
}

func (w World) isPassable(pos world.BlockPos) bool {
	return w.isBlockPassable(pos) && w.isBlockPassable(up(pos, 1))
}

// isStandable reports whether an entity could stand at pos: the block below
// must be solid, and pos and the block above it must both be passable.
func (w World) isStandable(pos world.BlockPos) bool {
	return w.isBlockSolid(down(pos, 1)) && w.isPassable(pos)
}

// fallDistanceUnbounded is returned by fallDistance when the column falls
// out of the loaded world without ever hitting a solid block.
const fallDistanceUnbounded = -1

// fallDistance counts the air blocks below pos until the next solid block,
// returning fallDistanceUnbounded if the storage's loaded range runs out
// first.
func (w World) fallDistance(pos world.BlockPos) int {
	distance := 0
	current := down(pos, 1)
	for w.isBlockPassable(current) {
		distance++
		current = down(current, 1)
		if current.Y < w.Storage.MinY() {
			return fallDistanceUnbounded
		}
	}
	return distance
}

func up(pos world.BlockPos, n int32) world.BlockPos   { return world.BlockPos{X: pos.X, Y: pos.Y + n, Z: pos.Z} }
func down(pos world.BlockPos, n int32) world.BlockPos  { return world.BlockPos{X: pos.X, Y: pos.Y - n, Z: pos.Z} }
func offset(pos world.BlockPos, dx, dy, dz int32) world.BlockPos {
	return world.BlockPos{X: pos.X + dx, Y: pos.Y + dy, Z: pos.Z + dz}
}

const (
	jumpCost          = 0.5
	walkOneBlockCost  = 1.0
	fallOneBlockCost  = 0.5
	diagonalMultiplier = 1.4
)

// MoveData carries the physical intent a movement needs to execute:
// whether the entity must jump to perform it, and whether it should be run
// while sprinting.
type MoveData struct {
	Jump    bool
	Sprint  bool
}

// Edge is one candidate step out of a node: where it leads, at what cost,
// with what execution data.
type Edge struct {
	Target world.BlockPos
	Data   MoveData
	Cost   float64
}

// Move is one parameterised movement primitive. Get returns the edge out of
// node this move produces, or ok=false if its preconditions aren't met.
type Move interface {
	Get(w World, node world.BlockPos) (Edge, bool)
}

// ForwardMove steps one block horizontally in a cardinal direction.
type ForwardMove struct{ Dir CardinalDirection }

func (m ForwardMove) Get(w World, node world.BlockPos) (Edge, bool) {
	target := offset(node, m.Dir.X(), 0, m.Dir.Z())
	if !w.isStandable(target) {
		return Edge{}, false
	}
	return Edge{Target: target, Data: MoveData{Sprint: true}, Cost: walkOneBlockCost}, true
}

// AscendMove steps one block horizontally and one block up, jumping.
type AscendMove struct{ Dir CardinalDirection }

func (m AscendMove) Get(w World, node world.BlockPos) (Edge, bool) {
	if !w.isBlockPassable(up(node, 2)) {
		return Edge{}, false
	}
	target := offset(node, m.Dir.X(), 1, m.Dir.Z())
	if !w.isStandable(target) {
		return Edge{}, false
	}
	return Edge{Target: target, Data: MoveData{Jump: true}, Cost: walkOneBlockCost + jumpCost}, true
}

// DescendMove steps one block horizontally and falls up to 3 blocks to the
// next solid surface.
type DescendMove struct{ Dir CardinalDirection }

func (m DescendMove) Get(w World, node world.BlockPos) (Edge, bool) {
	horizontal := offset(node, m.Dir.X(), 0, m.Dir.Z())
	fall := w.fallDistance(horizontal)
	if fall <= 0 || fall > 3 {
		return Edge{}, false
	}
	if !w.isPassable(horizontal) {
		return Edge{}, false
	}
	target := down(horizontal, int32(fall))
	cost := walkOneBlockCost + fallOneBlockCost*float64(fall)
	return Edge{Target: target, Data: MoveData{Sprint: true}, Cost: cost}, true
}

// DiagonalMove steps diagonally across a corner, requiring at least one of
// the two adjacent cardinal cells to be passable so the entity doesn't clip
// through a solid corner block.
type DiagonalMove struct{ Dir CardinalDirection }

func (m DiagonalMove) Get(w World, node world.BlockPos) (Edge, bool) {
	right := m.Dir.Right()
	cornerA := offset(node, m.Dir.X(), 0, m.Dir.Z())
	cornerB := offset(node, right.X(), 0, right.Z())
	if !w.isPassable(cornerA) && !w.isPassable(cornerB) {
		return Edge{}, false
	}
	target := offset(node, m.Dir.X()+right.X(), 0, m.Dir.Z()+right.Z())
	if !w.isStandable(target) {
		return Edge{}, false
	}
	return Edge{Target: target, Data: MoveData{}, Cost: walkOneBlockCost * diagonalMultiplier}, true
}

// ParkourForwardMove jumps a 1-block gap.
type ParkourForwardMove struct{ Dir CardinalDirection }

func (m ParkourForwardMove) Get(w World, node world.BlockPos) (Edge, bool) {
	near := offset(node, m.Dir.X(), 0, m.Dir.Z())
	if !w.isPassable(near) {
		return Edge{}, false
	}
	if w.isBlockSolid(down(near, 1)) {
		return Edge{}, false // no gap to jump, ForwardMove already covers this
	}
	target := offset(node, m.Dir.X()*2, 0, m.Dir.Z()*2)
	if !w.isStandable(target) {
		return Edge{}, false
	}
	cost := jumpCost + walkOneBlockCost*2 + fallOneBlockCost
	return Edge{Target: target, Data: MoveData{Jump: true, Sprint: true}, Cost: cost}, true
}

// ParkourForward2Move jumps a 2-block gap.
type ParkourForward2Move struct{ Dir CardinalDirection }

func (m ParkourForward2Move) Get(w World, node world.BlockPos) (Edge, bool) {
	near := offset(node, m.Dir.X(), 0, m.Dir.Z())
	far := offset(node, m.Dir.X()*2, 0, m.Dir.Z()*2)
	if !w.isPassable(near) || !w.isPassable(far) {
		return Edge{}, false
	}
	if w.isBlockSolid(down(near, 1)) || w.isBlockSolid(down(far, 1)) {
		return Edge{}, false
	}
	target := offset(node, m.Dir.X()*3, 0, m.Dir.Z()*3)
	if !w.isStandable(target) {
		return Edge{}, false
	}
	cost := jumpCost + walkOneBlockCost*3 + fallOneBlockCost
	return Edge{Target: target, Data: MoveData{Jump: true, Sprint: true}, Cost: cost}, true
}

// AllMoves returns every move variant for every cardinal direction, the
// successor set bot's ClientHandle.Goto passes to Search.
func AllMoves() []Move {
	dirs := []CardinalDirection{North, East, South, West}
	var moves []Move
	for _, d := range dirs {
		moves = append(moves,
			ForwardMove{d},
			AscendMove{d},
			DescendMove{d},
			DiagonalMove{d},
			ParkourForwardMove{d},
			ParkourForward2Move{d},
		)
	}
	return moves
}

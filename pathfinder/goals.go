package pathfinder

import "github.com/go-mcbot/client/world"

// Goal defines the A* search target: a heuristic estimate of remaining
// distance from a node, and whether a node counts as "arrived".
type Goal interface {
	Heuristic(n world.BlockPos) float64
	Success(n world.BlockPos) bool
}

// BlockPosGoal is satisfied only by reaching one exact block position.
type BlockPosGoal struct {
	Pos world.BlockPos
}

func (g BlockPosGoal) Heuristic(n world.BlockPos) float64 {
	return squaredDistance(g.Pos, n)
}

func (g BlockPosGoal) Success(n world.BlockPos) bool {
	return n == g.Pos
}

// RadiusGoal is satisfied by reaching any block within Radius of Pos.
type RadiusGoal struct {
	Pos    world.BlockPos
	Radius float64
}

func (g RadiusGoal) Heuristic(n world.BlockPos) float64 {
	return squaredDistance(g.Pos, n)
}

func (g RadiusGoal) Success(n world.BlockPos) bool {
	return squaredDistance(g.Pos, n) <= g.Radius*g.Radius
}

// inverseGoal negates both the heuristic and the success test of an inner
// goal — "go anywhere except where this goal is satisfied".
type inverseGoal struct{ inner Goal }

func (g inverseGoal) Heuristic(n world.BlockPos) float64 { return -g.inner.Heuristic(n) }
func (g inverseGoal) Success(n world.BlockPos) bool      { return !g.inner.Success(n) }

// Inverse wraps a goal so success/heuristic are both negated.
func Inverse(g Goal) Goal { return inverseGoal{inner: g} }

// orGoal is satisfied by either of two goals; its heuristic is the closer
// (smaller) of the two, since reaching either counts as done.
type orGoal struct{ a, b Goal }

func (g orGoal) Heuristic(n world.BlockPos) float64 {
	return minFloat(g.a.Heuristic(n), g.b.Heuristic(n))
}
func (g orGoal) Success(n world.BlockPos) bool { return g.a.Success(n) || g.b.Success(n) }

// Or combines two goals: satisfied when either is.
func Or(a, b Goal) Goal { return orGoal{a: a, b: b} }

// andGoal is satisfied only when both goals are; its heuristic is the
// farther (larger) of the two, since the search must clear whichever is
// harder to reach.
type andGoal struct{ a, b Goal }

func (g andGoal) Heuristic(n world.BlockPos) float64 {
	return maxFloat(g.a.Heuristic(n), g.b.Heuristic(n))
}
func (g andGoal) Success(n world.BlockPos) bool { return g.a.Success(n) && g.b.Success(n) }

// And combines two goals: satisfied only when both are.
func And(a, b Goal) Goal { return andGoal{a: a, b: b} }

func squaredDistance(a, b world.BlockPos) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	dz := float64(a.Z - b.Z)
	return dx*dx + dy*dy + dz*dz
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

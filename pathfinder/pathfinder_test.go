package pathfinder

import (
	"testing"

	"github.com/go-mcbot/client/physics"
	ns "github.com/go-mcbot/client/protocol/net_structures"
	"github.com/go-mcbot/client/world"
)

func encodeSingleValuedSection(blockID int32) []byte {
	w := ns.NewWriter()
	w.WriteInt16(0)
	w.WriteUint8(0)
	w.WriteVarInt(ns.VarInt(blockID))
	w.WriteVarInt(0)
	w.WriteUint8(0)
	w.WriteVarInt(0)
	w.WriteVarInt(0)
	return w.Bytes()
}

// flatWorld builds a two-section-tall ChunkStorage: solid ground at y in
// [0,16) and open air at y in [16,32), for testing moves that need both a
// surface to stand on and headroom above it.
func flatWorld(t *testing.T) *world.ChunkStorage {
	t.Helper()
	cs := world.NewChunkStorage(0, 32, 8)
	data := append(encodeSingleValuedSection(1), encodeSingleValuedSection(0)...)
	if err := cs.ReplaceWithPacketData(world.ChunkPos{X: 0, Z: 0}, ns.ChunkData{
		Heightmaps: map[int32][]int64{},
		Data:       data,
	}); err != nil {
		t.Fatalf("ReplaceWithPacketData: %v", err)
	}
	return cs
}

func solid(s world.BlockState) bool   { return s == 1 }
func passable(s world.BlockState) bool { return s == 0 }

func testQuery(t *testing.T) World {
	return World{Storage: flatWorld(t), Solid: solid, Passable: passable}
}

func TestForwardMoveOnFlatGround(t *testing.T) {
	w := testQuery(t)
	node := world.BlockPos{X: 0, Y: 16, Z: 0}
	edge, ok := ForwardMove{East}.Get(w, node)
	if !ok {
		t.Fatal("expected ForwardMove to succeed on flat standable ground")
	}
	if edge.Target != (world.BlockPos{X: 1, Y: 16, Z: 0}) {
		t.Fatalf("target = %+v, want {1 16 0}", edge.Target)
	}
	if edge.Cost != walkOneBlockCost {
		t.Fatalf("cost = %v, want %v", edge.Cost, walkOneBlockCost)
	}
}

func TestAscendMoveFailsWithoutElevatedLanding(t *testing.T) {
	w := testQuery(t)
	node := world.BlockPos{X: 0, Y: 16, Z: 0}
	if _, ok := (AscendMove{East}).Get(w, node); ok {
		t.Fatal("expected AscendMove to fail on uniformly flat ground (nothing to step up onto)")
	}
}

func TestAscendMoveSucceedsOntoElevatedBlock(t *testing.T) {
	cs := flatWorld(t)
	// Raise the ground one block at (1,16,0), giving the node at (0,16,0) a
	// one-block step to ascend onto at (1,17,0).
	if _, ok := cs.SetBlockState(world.BlockPos{X: 1, Y: 16, Z: 0}, 1); !ok {
		t.Fatal("SetBlockState should succeed inside the loaded chunk")
	}
	w := World{Storage: cs, Solid: solid, Passable: passable}

	node := world.BlockPos{X: 0, Y: 16, Z: 0}
	edge, ok := (AscendMove{East}).Get(w, node)
	if !ok {
		t.Fatal("expected AscendMove to succeed onto the raised block")
	}
	if edge.Target != (world.BlockPos{X: 1, Y: 17, Z: 0}) {
		t.Fatalf("target = %+v, want {1 17 0}", edge.Target)
	}
	if !edge.Data.Jump {
		t.Fatal("expected AscendMove's edge to require a jump")
	}
}

func TestAscendMoveFailsReadingOutsideLoadedWorld(t *testing.T) {
	w := testQuery(t)
	high := world.BlockPos{X: 0, Y: 30, Z: 0}
	if _, ok := (AscendMove{North}).Get(w, high); ok {
		t.Fatal("expected AscendMove to fail when the headroom check reads outside the loaded world")
	}
}

func TestDiagonalMoveRequiresOneOpenCorner(t *testing.T) {
	w := testQuery(t)
	node := world.BlockPos{X: 5, Y: 16, Z: 5}
	edge, ok := DiagonalMove{East}.Get(w, node)
	if !ok {
		t.Fatal("expected DiagonalMove to succeed with both adjacent cells open")
	}
	if edge.Target != (world.BlockPos{X: 6, Y: 16, Z: 6}) {
		t.Fatalf("target = %+v, want {6 16 6}", edge.Target)
	}
	if edge.Cost != walkOneBlockCost*diagonalMultiplier {
		t.Fatalf("cost = %v, want %v", edge.Cost, walkOneBlockCost*diagonalMultiplier)
	}
}

func TestDescendMoveFindsShortDrop(t *testing.T) {
	cs := flatWorld(t)
	// Raise a one-block pillar so the node can stand above the default
	// floor, with nothing but air in the adjacent column down to it.
	if _, ok := cs.SetBlockState(world.BlockPos{X: 0, Y: 17, Z: 0}, 1); !ok {
		t.Fatal("SetBlockState should succeed inside the loaded chunk")
	}
	w := World{Storage: cs, Solid: solid, Passable: passable}

	node := world.BlockPos{X: 0, Y: 18, Z: 0}
	edge, ok := (DescendMove{East}).Get(w, node)
	if !ok {
		t.Fatal("expected DescendMove to find the 2-block drop back to the default floor")
	}
	if edge.Target != (world.BlockPos{X: 1, Y: 16, Z: 0}) {
		t.Fatalf("target = %+v, want {1 16 0}", edge.Target)
	}
	wantCost := walkOneBlockCost + fallOneBlockCost*2
	if edge.Cost != wantCost {
		t.Fatalf("cost = %v, want %v", edge.Cost, wantCost)
	}
}

func TestCardinalDirectionRight(t *testing.T) {
	cases := []struct {
		d    CardinalDirection
		want CardinalDirection
	}{
		{North, East}, {East, South}, {South, West}, {West, North},
	}
	for _, c := range cases {
		if got := c.d.Right(); got != c.want {
			t.Fatalf("%v.Right() = %v, want %v", c.d, got, c.want)
		}
	}
}

func TestBlockPosGoal(t *testing.T) {
	g := BlockPosGoal{Pos: world.BlockPos{X: 5, Y: 0, Z: 0}}
	if !g.Success(world.BlockPos{X: 5, Y: 0, Z: 0}) {
		t.Fatal("expected exact match to succeed")
	}
	if g.Success(world.BlockPos{X: 4, Y: 0, Z: 0}) {
		t.Fatal("expected a near miss to fail BlockPosGoal")
	}
	if g.Heuristic(world.BlockPos{X: 0, Y: 0, Z: 0}) != 25 {
		t.Fatalf("heuristic = %v, want 25", g.Heuristic(world.BlockPos{X: 0, Y: 0, Z: 0}))
	}
}

func TestRadiusGoal(t *testing.T) {
	g := RadiusGoal{Pos: world.BlockPos{X: 0, Y: 0, Z: 0}, Radius: 3}
	if !g.Success(world.BlockPos{X: 2, Y: 0, Z: 0}) {
		t.Fatal("expected a point within radius to succeed")
	}
	if g.Success(world.BlockPos{X: 4, Y: 0, Z: 0}) {
		t.Fatal("expected a point outside radius to fail")
	}
}

func TestGoalCombinators(t *testing.T) {
	a := BlockPosGoal{Pos: world.BlockPos{X: 0, Y: 0, Z: 0}}
	b := BlockPosGoal{Pos: world.BlockPos{X: 10, Y: 0, Z: 0}}

	or := Or(a, b)
	if !or.Success(world.BlockPos{X: 10, Y: 0, Z: 0}) {
		t.Fatal("Or should succeed when either inner goal does")
	}

	and := And(a, b)
	if and.Success(world.BlockPos{X: 10, Y: 0, Z: 0}) {
		t.Fatal("And should require both inner goals to succeed")
	}

	inv := Inverse(a)
	if inv.Success(world.BlockPos{X: 0, Y: 0, Z: 0}) {
		t.Fatal("Inverse should flip success")
	}
	if !inv.Success(world.BlockPos{X: 1, Y: 0, Z: 0}) {
		t.Fatal("Inverse should succeed wherever the inner goal doesn't")
	}
}

func TestSearchFindsShortPathOnFlatGround(t *testing.T) {
	w := testQuery(t)
	start := world.BlockPos{X: 0, Y: 16, Z: 0}
	goal := BlockPosGoal{Pos: world.BlockPos{X: 3, Y: 16, Z: 0}}

	path, reached := Search(start, goal, w, AllMoves())
	if !reached {
		t.Fatal("expected Search to reach the goal on open flat ground")
	}
	if len(path) == 0 || path[len(path)-1].Target != goal.Pos {
		t.Fatalf("path = %+v, want it to end at %+v", path, goal.Pos)
	}
}

func TestSearchUnreachableGoalReturnsPartialPath(t *testing.T) {
	w := testQuery(t)
	start := world.BlockPos{X: 0, Y: 16, Z: 0}
	// Way outside the one loaded chunk: every move will fail to find solid
	// footing there, so the goal can never be reached.
	goal := BlockPosGoal{Pos: world.BlockPos{X: 0, Y: 16, Z: 5000}}

	_, reached := Search(start, goal, w, AllMoves())
	if reached {
		t.Fatal("expected an unreachable goal to report reached=false")
	}
}

func TestTickPopsReachedMovementAndAdvances(t *testing.T) {
	pf := &Pathfinder{
		Path: []Movement{
			{Target: world.BlockPos{X: 1, Y: 16, Z: 0}, Data: MoveData{Sprint: true}},
			{Target: world.BlockPos{X: 2, Y: 16, Z: 0}, Data: MoveData{Sprint: true}},
		},
	}
	w := flatWorld(t)

	var lookedAt []world.Vec3
	var walked []physics.WalkDirection
	events := Events{
		LookAt: func(v world.Vec3) { lookedAt = append(lookedAt, v) },
		Walk:   func(d physics.WalkDirection) { walked = append(walked, d) },
		Sprint: func(physics.SprintDirection) {},
	}

	snap := Snapshot{Pos: world.Vec3{X: 1.5, Y: 16, Z: 0.5}, OnGround: true}
	Tick(pf, snap, 1.6, w, solid, events)

	if len(pf.Path) != 1 || pf.Path[0].Target != (world.BlockPos{X: 2, Y: 16, Z: 0}) {
		t.Fatalf("expected the first movement to be popped, path = %+v", pf.Path)
	}
	if len(lookedAt) == 0 {
		t.Fatal("expected at least one LookAt event")
	}
}

func TestTickEmitsWalkNoneWhenPathCompletes(t *testing.T) {
	pf := &Pathfinder{
		Path: []Movement{
			{Target: world.BlockPos{X: 1, Y: 16, Z: 0}, Data: MoveData{}},
		},
	}
	w := flatWorld(t)

	var walked []physics.WalkDirection
	events := Events{
		LookAt: func(world.Vec3) {},
		Walk:   func(d physics.WalkDirection) { walked = append(walked, d) },
	}

	snap := Snapshot{Pos: world.Vec3{X: 1.5, Y: 16, Z: 0.5}, OnGround: true}
	Tick(pf, snap, 1.6, w, solid, events)

	if len(pf.Path) != 0 {
		t.Fatalf("expected the path to be empty, got %+v", pf.Path)
	}
	if len(walked) == 0 || walked[len(walked)-1] != physics.WalkNone {
		t.Fatalf("expected a final WalkNone event, got %v", walked)
	}
}

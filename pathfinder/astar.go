package pathfinder

import (
	"container/heap"
	"time"

	"github.com/go-mcbot/client/world"
)

// searchBudget bounds how long Search runs before giving up and returning
// its best partial path instead of no path at all.
const searchBudget = 250 * time.Millisecond

// Movement is one resolved step of a found path: the block to move to, and
// the execution hints (jump, sprint) the move that produced it needs.
type Movement struct {
	Target world.BlockPos
	Data   MoveData
}

type nodeRecord struct {
	position   world.BlockPos
	cameFrom   world.BlockPos
	hasCameFrom bool
	moveData   MoveData
	gScore     float64
	fScore     float64
}

type heapItem struct {
	pos world.BlockPos
	f   float64
	seq int64
}

// openHeap is a min-heap on (f, insertion order): f breaks ties on
// shortest estimated total cost, seq breaks ties on whichever of two equal
// candidates was discovered first, matching the spec's tie-break rule.
type openHeap []heapItem

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h openHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x any)        { *h = append(*h, x.(heapItem)) }
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Search runs A* from start toward goal using every move in moves to
// generate successors, bounded by searchBudget. It returns the path found
// (or, on timeout, the path to the closest node reached by heuristic
// distance) and whether the goal itself was actually reached.
func Search(start world.BlockPos, goal Goal, w World, moves []Move) ([]Movement, bool) {
	open := &openHeap{}
	heap.Init(open)

	var seq int64
	push := func(pos world.BlockPos, f float64) {
		heap.Push(open, heapItem{pos: pos, f: f, seq: seq})
		seq++
	}

	nodes := map[world.BlockPos]*nodeRecord{
		start: {position: start, gScore: 0, fScore: goal.Heuristic(start)},
	}
	push(start, nodes[start].fScore)

	best := start
	bestHeuristic := goal.Heuristic(start)

	deadline := time.Now().Add(searchBudget)

	for open.Len() > 0 {
		if time.Now().After(deadline) {
			return reconstructPath(nodes, best), false
		}

		current := heap.Pop(open).(heapItem)
		currentNode := nodes[current.pos]
		if currentNode == nil {
			continue
		}

		if goal.Success(current.pos) {
			return reconstructPath(nodes, current.pos), true
		}

		if h := goal.Heuristic(current.pos); h < bestHeuristic {
			bestHeuristic = h
			best = current.pos
		}

		currentG := currentNode.gScore

		for _, m := range moves {
			edge, ok := m.Get(w, current.pos)
			if !ok {
				continue
			}
			tentativeG := currentG + edge.Cost
			existing, known := nodes[edge.Target]
			if known && tentativeG >= existing.gScore {
				continue
			}
			f := tentativeG + goal.Heuristic(edge.Target)
			nodes[edge.Target] = &nodeRecord{
				position:    edge.Target,
				cameFrom:    current.pos,
				hasCameFrom: true,
				moveData:    edge.Data,
				gScore:      tentativeG,
				fScore:      f,
			}
			push(edge.Target, f)
		}
	}

	return reconstructPath(nodes, best), goal.Success(best)
}

func reconstructPath(nodes map[world.BlockPos]*nodeRecord, goal world.BlockPos) []Movement {
	var path []Movement
	current := goal
	for {
		node, ok := nodes[current]
		if !ok || !node.hasCameFrom {
			break
		}
		path = append(path, Movement{Target: node.position, Data: node.moveData})
		current = node.cameFrom
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

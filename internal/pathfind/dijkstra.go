package pathfind

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/robotics/internal/world"
)

// Unreachable marks nodes with no known path from the source.
const Unreachable = -1

// ErrNotAdjacent means two consecutive path nodes are not grid neighbors.
var ErrNotAdjacent = errors.New("path nodes are not adjacent")

type queueItem struct {
	node int
	dist int
}

// newQueue returns a min-heap on distance seeded with start.
func newQueue(start int) *heap.Heap[queueItem] {
	return heap.From[queueItem](func(a, b queueItem) bool { return a.dist < b.dist }, queueItem{node: start})
}

// ShortestPaths runs Dijkstra from start. dist[n] is the cheapest cost to
// reach n and prev[n] its predecessor on that path; both are Unreachable for
// nodes that cannot be reached.
func (g *Graph) ShortestPaths(start int) (dist, prev []int) {
	dist = make([]int, g.Len())
	prev = make([]int, g.Len())
	for i := range dist {
		dist[i] = Unreachable
		prev[i] = Unreachable
	}
	if start < 0 || start >= g.Len() {
		return dist, prev
	}

	visited := mapset.New[int]()
	dist[start] = 0
	q := newQueue(start)

	for q.Size() > 0 {
		cur, _ := q.Pop()
		if visited.Has(cur.node) {
			continue
		}
		visited.Put(cur.node)

		for _, e := range g.edges[cur.node] {
			nd := cur.dist + e.Cost
			if dist[e.To] == Unreachable || nd < dist[e.To] {
				dist[e.To] = nd
				prev[e.To] = cur.node
				q.Push(queueItem{node: e.To, dist: nd})
			}
		}
	}
	return dist, prev
}

// ReconstructPath walks predecessors back from target and returns the node
// sequence source to target. It returns nil when the walk never leaves the
// target, i.e. target is unreachable (or is the source itself).
func ReconstructPath(prev []int, target int) []int {
	var path []int
	for n := target; n != Unreachable; n = prev[n] {
		path = append(path, n)
	}
	if len(path) <= 1 {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathToDirections converts a node path into the moves that walk it.
func (g *Graph) PathToDirections(path []int) ([]world.Direction, error) {
	dirs := make([]world.Direction, 0, max(len(path)-1, 0))
	for i := 1; i < len(path); i++ {
		from, to := g.Coordinate(path[i-1]), g.Coordinate(path[i])
		d, ok := directionBetween(from, to)
		if !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrNotAdjacent, from, to)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

func directionBetween(from, to world.Coordinate) (world.Direction, bool) {
	for _, d := range world.Directions {
		if from.Step(d) == to {
			return d, true
		}
	}
	return world.Up, false
}

// Connected returns the targets reachable from start, in the order the
// traversal finds them.
func (g *Graph) Connected(start int, targets []int) []int {
	wanted := mapset.New[int]()
	for _, t := range targets {
		wanted.Put(t)
	}

	var found []int
	if start < 0 || start >= g.Len() {
		return found
	}
	visited := mapset.New[int]()
	q := newQueue(start)
	for q.Size() > 0 {
		cur, _ := q.Pop()
		if visited.Has(cur.node) {
			continue
		}
		visited.Put(cur.node)
		if wanted.Has(cur.node) {
			found = append(found, cur.node)
		}
		for _, e := range g.edges[cur.node] {
			if !visited.Has(e.To) {
				q.Push(queueItem{node: e.To, dist: cur.dist + e.Cost})
			}
		}
	}
	return found
}

package pathing

import (
	"container/heap"
	"slices"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

// FindPath plans an 8-connected route from start towards goal and stops on the
// first cell that touches the goal, since the goal is a unit to be attacked and
// cannot be entered. The returned path excludes start. blocker, when non-nil, is
// an enemy-held cell that must be routed around. ok is false when no cell next
// to the goal can be reached.
func FindPath(grid *core.ObstacleGrid, start, goal core.Coordinate, blocker *core.Coordinate) (path []core.Coordinate, ok bool) {
	if !grid.InBounds(start) || !grid.InBounds(goal) || start == goal {
		return nil, false
	}

	passable := func(c core.Coordinate) bool {
		if !grid.Passable(c) || c == goal {
			return false
		}
		return blocker == nil || c != *blocker
	}

	cameFrom := make(map[core.Coordinate]core.Coordinate)
	cost := map[core.Coordinate]int{start: 0}
	open := &openSet{}
	heap.Push(open, &planNode{pos: start, g: 0, h: heuristic(start, goal)})

	for open.Len() > 0 {
		current := heap.Pop(open).(*planNode)
		if current.g > cost[current.pos] {
			continue // stale entry
		}
		if current.pos.ChebyshevTo(goal) == 1 {
			return reconstruct(cameFrom, start, current.pos), true
		}

		for _, d := range core.AllDirections {
			next := current.pos.Move(d)
			if !passable(next) {
				continue
			}
			g := current.g + 1
			if known, seen := cost[next]; seen && known <= g {
				continue
			}
			cost[next] = g
			cameFrom[next] = current.pos
			open.seq++
			heap.Push(open, &planNode{pos: next, g: g, h: heuristic(next, goal), seq: open.seq})
		}
	}
	return nil, false
}

// heuristic is the exact step count to a goal-adjacent cell on an open grid,
// so it never overestimates.
func heuristic(c, goal core.Coordinate) int {
	return max(c.ChebyshevTo(goal)-1, 0)
}

func reconstruct(cameFrom map[core.Coordinate]core.Coordinate, start, end core.Coordinate) []core.Coordinate {
	path := []core.Coordinate{}
	for at := end; at != start; at = cameFrom[at] {
		path = append(path, at)
	}
	slices.Reverse(path)
	return path
}

type planNode struct {
	pos  core.Coordinate
	g, h int
	seq  int
}

// openSet orders nodes by f = g + h, then by h, then by discovery order
type openSet struct {
	nodes []*planNode
	seq   int
}

func (o *openSet) Len() int { return len(o.nodes) }

func (o *openSet) Less(i, j int) bool {
	a, b := o.nodes[i], o.nodes[j]
	if fa, fb := a.g+a.h, b.g+b.h; fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (o *openSet) Swap(i, j int) { o.nodes[i], o.nodes[j] = o.nodes[j], o.nodes[i] }

func (o *openSet) Push(x any) { o.nodes = append(o.nodes, x.(*planNode)) }

func (o *openSet) Pop() any {
	n := len(o.nodes)
	node := o.nodes[n-1]
	o.nodes = o.nodes[:n-1]
	return node
}

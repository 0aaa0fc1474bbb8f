// Package pathing holds the grid distance oracle used by the utility function
// and the A* planner used by the single-agent path follower.
package pathing

import "github.com/mitchelldurbincs/tactical-minimax/internal/game/core"

// Unreachable is returned by ShortestPath when no 4-connected route exists,
// when either endpoint is off the grid, or when start and end coincide.
const Unreachable = -1

type bfsNode struct {
	pos  core.Coordinate
	dist int
}

// ShortestPath returns the minimum number of orthogonal steps from start to end
// over passable cells. The end cell itself only has to be in bounds, so the
// distance to a cell occupied by a unit standing on open ground is well defined.
func ShortestPath(grid *core.ObstacleGrid, start, end core.Coordinate) int {
	if start == end || !grid.InBounds(start) || !grid.InBounds(end) {
		return Unreachable
	}

	visited := make([]bool, grid.Cells())
	visited[start.ToIndex(grid.W)] = true
	queue := []bfsNode{{pos: start}}

	for head := 0; head < len(queue); head++ {
		node := queue[head]
		for _, next := range node.pos.Neighbors() {
			if next == end {
				return node.dist + 1
			}
			if !grid.Passable(next) {
				continue
			}
			idx := next.ToIndex(grid.W)
			if visited[idx] {
				continue
			}
			visited[idx] = true
			queue = append(queue, bfsNode{pos: next, dist: node.dist + 1})
		}
	}
	return Unreachable
}

package pathing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

func TestFindPathAroundWall(t *testing.T) {
	path, ok := FindPath(walledGrid(), core.Coordinate{X: 0, Y: 0}, core.Coordinate{X: 0, Y: 2}, nil)
	require.True(t, ok)
	assert.Equal(t, []core.Coordinate{
		{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2},
	}, path)
}

func TestFindPathAlreadyAdjacent(t *testing.T) {
	grid := core.NewObstacleGrid(4, 4, nil)
	path, ok := FindPath(grid, core.Coordinate{X: 1, Y: 1}, core.Coordinate{X: 2, Y: 2}, nil)
	require.True(t, ok)
	assert.Empty(t, path)
}

func TestFindPathDiagonalShortcut(t *testing.T) {
	grid := core.NewObstacleGrid(6, 6, nil)
	path, ok := FindPath(grid, core.Coordinate{X: 0, Y: 0}, core.Coordinate{X: 4, Y: 4}, nil)
	require.True(t, ok)
	assert.Equal(t, []core.Coordinate{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}, path)
}

func TestFindPathAvoidsBlocker(t *testing.T) {
	grid := walledGrid()
	blocker := core.Coordinate{X: 3, Y: 1}

	// The only gap in the wall is held by the enemy.
	path, ok := FindPath(grid, core.Coordinate{X: 0, Y: 0}, core.Coordinate{X: 0, Y: 2}, &blocker)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestFindPathRoutesAroundBlocker(t *testing.T) {
	grid := core.NewObstacleGrid(5, 1, nil)
	blocker := core.Coordinate{X: 2, Y: 0}

	_, ok := FindPath(grid, core.Coordinate{X: 0, Y: 0}, core.Coordinate{X: 4, Y: 0}, &blocker)
	assert.False(t, ok, "single corridor is cut by the blocker")

	wide := core.NewObstacleGrid(5, 2, nil)
	path, ok := FindPath(wide, core.Coordinate{X: 0, Y: 0}, core.Coordinate{X: 4, Y: 0}, &blocker)
	require.True(t, ok)
	assert.NotContains(t, path, blocker)
	assert.Len(t, path, 3)
	assert.Equal(t, 1, path[len(path)-1].ChebyshevTo(core.Coordinate{X: 4, Y: 0}))
}

func TestFindPathInvalidInput(t *testing.T) {
	grid := core.NewObstacleGrid(3, 3, nil)

	_, ok := FindPath(grid, core.Coordinate{X: 1, Y: 1}, core.Coordinate{X: 1, Y: 1}, nil)
	assert.False(t, ok)

	_, ok = FindPath(grid, core.Coordinate{X: 0, Y: 0}, core.Coordinate{X: 5, Y: 5}, nil)
	assert.False(t, ok)
}

func TestFindPathStepsAreAdjacentAndPassable(t *testing.T) {
	grid := core.NewObstacleGrid(8, 8, []core.Coordinate{
		{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4}, {X: 3, Y: 5},
	})
	start := core.Coordinate{X: 0, Y: 0}
	goal := core.Coordinate{X: 6, Y: 0}

	path, ok := FindPath(grid, start, goal, nil)
	require.True(t, ok)

	prev := start
	for _, step := range path {
		assert.True(t, grid.Passable(step), "step %v must be passable", step)
		assert.Equal(t, 1, prev.ChebyshevTo(step), "step %v must touch %v", step, prev)
		prev = step
	}
	assert.Equal(t, 1, prev.ChebyshevTo(goal))
}

package pathing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/mitchelldurbincs/tactical-minimax/internal/common"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

func walledGrid() *core.ObstacleGrid {
	return core.NewObstacleGrid(5, 3, []core.Coordinate{
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 4, Y: 1},
	})
}

func TestShortestPath(t *testing.T) {
	grid := walledGrid()

	tests := []struct {
		name     string
		from, to core.Coordinate
		want     int
	}{
		{"same cell", core.Coordinate{X: 0, Y: 0}, core.Coordinate{X: 0, Y: 0}, Unreachable},
		{"adjacent", core.Coordinate{X: 0, Y: 0}, core.Coordinate{X: 1, Y: 0}, 1},
		{"around the wall", core.Coordinate{X: 0, Y: 0}, core.Coordinate{X: 0, Y: 2}, 8},
		{"through the gap", core.Coordinate{X: 3, Y: 0}, core.Coordinate{X: 3, Y: 2}, 2},
		{"to the cell behind the wall", core.Coordinate{X: 0, Y: 0}, core.Coordinate{X: 1, Y: 2}, 7},
		{"target off grid", core.Coordinate{X: 0, Y: 0}, core.Coordinate{X: 9, Y: 9}, Unreachable},
		{"start off grid", core.Coordinate{X: -1, Y: 0}, core.Coordinate{X: 1, Y: 0}, Unreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortestPath(grid, tt.from, tt.to))
		})
	}
}

func TestShortestPathEnclosedTarget(t *testing.T) {
	// (2,2) is boxed in on every orthogonal side
	grid := core.NewObstacleGrid(5, 5, []core.Coordinate{
		{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3},
	})
	assert.Equal(t, Unreachable, ShortestPath(grid, core.Coordinate{X: 0, Y: 0}, core.Coordinate{X: 2, Y: 2}))
	assert.Equal(t, Unreachable, ShortestPath(grid, core.Coordinate{X: 2, Y: 2}, core.Coordinate{X: 0, Y: 0}))
}

func TestShortestPathMatchesManhattanOnOpenGrid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(1, 12).Draw(t, "w")
		h := rapid.IntRange(1, 12).Draw(t, "h")
		grid := core.NewObstacleGrid(w, h, nil)
		from := core.Coordinate{X: rapid.IntRange(0, w-1).Draw(t, "fx"), Y: rapid.IntRange(0, h-1).Draw(t, "fy")}
		to := core.Coordinate{X: rapid.IntRange(0, w-1).Draw(t, "tx"), Y: rapid.IntRange(0, h-1).Draw(t, "ty")}

		got := ShortestPath(grid, from, to)
		if from == to {
			if got != Unreachable {
				t.Fatalf("expected unreachable for identical endpoints, got %d", got)
			}
			return
		}
		if want := common.ManhattanDistance(from, to); got != want {
			t.Fatalf("ShortestPath(%v, %v) = %d, want %d", from, to, got, want)
		}
	})
}

func TestShortestPathSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(2, 10).Draw(t, "w")
		h := rapid.IntRange(2, 10).Draw(t, "h")
		from := core.FromIndex(rapid.IntRange(0, w*h-1).Draw(t, "from"), w)
		to := core.FromIndex(rapid.IntRange(0, w*h-1).Draw(t, "to"), w)

		var obstacles []core.Coordinate
		for i := range w * h {
			c := core.FromIndex(i, w)
			if c == from || c == to {
				continue
			}
			if rapid.IntRange(0, 3).Draw(t, "blocked") == 0 {
				obstacles = append(obstacles, c)
			}
		}
		grid := core.NewObstacleGrid(w, h, obstacles)

		if a, b := ShortestPath(grid, from, to), ShortestPath(grid, to, from); a != b {
			t.Fatalf("asymmetric distance %v->%v = %d, reverse = %d", from, to, a, b)
		}
	})
}

package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

var (
	FootmanTemplate = core.UnitTemplate{Range: 1, Damage: 10, BaseHP: 160}
	ArcherTemplate  = core.UnitTemplate{Range: 8, Damage: 6, BaseHP: 50}
)

// Footman returns a full-health footman
func Footman(id, x, y int) core.Unit {
	return core.Unit{ID: id, Team: core.TeamFootmen, Pos: core.Coordinate{X: x, Y: y}, HP: FootmanTemplate.BaseHP}
}

// Archer returns a full-health archer
func Archer(id, x, y int) core.Unit {
	return core.Unit{ID: id, Team: core.TeamArchers, Pos: core.Coordinate{X: x, Y: y}, HP: ArcherTemplate.BaseHP}
}

// WithHP returns u with its hit points replaced
func WithHP(u core.Unit, hp int) core.Unit {
	u.HP = hp
	return u
}

// CreateTestBoard builds a board with the default templates and places units on it
func CreateTestBoard(t testing.TB, width, height int, obstacles []core.Coordinate, units ...core.Unit) *core.Board {
	t.Helper()
	board := core.NewBoard(core.NewObstacleGrid(width, height, obstacles))
	board.SetTemplate(core.TeamFootmen, FootmanTemplate)
	board.SetTemplate(core.TeamArchers, ArcherTemplate)
	for _, u := range units {
		require.NoError(t, board.AddUnit(u), "placing %s", u)
	}
	return board
}

// WallObstacles is a 5x3 map whose middle row is blocked except for column 3
var WallObstacles = []core.Coordinate{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 4, Y: 1}}

// CreateWalledBoard places footman 1 at (0,0) and archer 2 at (0,2) on the
// 5x3 wall map, so the footman has to go round through the gap.
func CreateWalledBoard(t testing.TB) *core.Board {
	return CreateTestBoard(t, 5, 3, WallObstacles, Footman(1, 0, 0), Archer(2, 0, 2))
}

// DrawBoard generates a small random board for property tests. Units stand on
// distinct open cells with anywhere from 1 hp to full health. The first two
// cells are never blocked.
func DrawBoard(t *rapid.T, maxFootmen, maxArchers int) *core.Board {
	w := rapid.IntRange(2, 6).Draw(t, "width")
	h := rapid.IntRange(2, 6).Draw(t, "height")

	var obstacles []core.Coordinate
	var open []core.Coordinate
	for i := range w * h {
		c := core.FromIndex(i, w)
		if i > 1 && rapid.IntRange(0, 4).Draw(t, "obstacle") == 0 {
			obstacles = append(obstacles, c)
		} else {
			open = append(open, c)
		}
	}
	board := core.NewBoard(core.NewObstacleGrid(w, h, obstacles))
	board.SetTemplate(core.TeamFootmen, FootmanTemplate)
	board.SetTemplate(core.TeamArchers, ArcherTemplate)

	footmen := rapid.IntRange(1, maxFootmen).Draw(t, "footmen")
	archers := rapid.IntRange(0, maxArchers).Draw(t, "archers")
	cells := rapid.Permutation(open).Draw(t, "cells")

	id := 1
	place := func(team core.Team, tmpl core.UnitTemplate) {
		if len(cells) == 0 {
			return
		}
		u := core.Unit{ID: id, Team: team, Pos: cells[0], HP: rapid.IntRange(1, tmpl.BaseHP).Draw(t, "hp")}
		cells = cells[1:]
		id++
		if err := board.AddUnit(u); err != nil {
			t.Fatalf("placing %s: %v", u, err)
		}
	}
	for range footmen {
		place(core.TeamFootmen, FootmanTemplate)
	}
	for range archers {
		place(core.TeamArchers, ArcherTemplate)
	}
	return board
}

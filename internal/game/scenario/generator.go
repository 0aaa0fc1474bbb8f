package scenario

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/pathing"
)

// ErrNoLayout is returned when no connected layout could be found
var ErrNoLayout = errors.New("unable to generate a connected layout")

const maxLayoutAttempts = 50

// MapConfig holds configuration for map generation
type MapConfig struct {
	Width           int
	Height          int
	ObstacleRatio   float64 // fraction of cells blocked
	Footmen         int
	Archers         int
	FootmanTemplate core.UnitTemplate
	ArcherTemplate  core.UnitTemplate
}

// DefaultMapConfig returns the classic two footmen against two archers setup
func DefaultMapConfig(w, h int) MapConfig {
	return MapConfig{
		Width:           w,
		Height:          h,
		ObstacleRatio:   0.1,
		Footmen:         2,
		Archers:         2,
		FootmanTemplate: core.UnitTemplate{Range: 1, Damage: 10, BaseHP: 160},
		ArcherTemplate:  core.UnitTemplate{Range: 8, Damage: 6, BaseHP: 50},
	}
}

// Generator handles map generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// Generate is shorthand for NewGenerator(config, rng).GenerateMap()
func Generate(config MapConfig, rng *rand.Rand) (*core.Board, error) {
	return NewGenerator(config, rng).GenerateMap()
}

// GenerateMap lays out obstacles, then places the footmen along the west edge
// and the archers along the east edge. Layouts where a footman cannot reach
// every archer are thrown away.
func (g *Generator) GenerateMap() (*core.Board, error) {
	c := g.config
	if c.Width < 2 || c.Height < 1 {
		return nil, fmt.Errorf("map must be at least 2x1, got %dx%d", c.Width, c.Height)
	}
	if c.Footmen > c.Height || c.Archers > c.Height {
		return nil, fmt.Errorf("%d footmen and %d archers do not fit in %d rows", c.Footmen, c.Archers, c.Height)
	}

	for range maxLayoutAttempts {
		board := core.NewBoard(core.NewObstacleGrid(c.Width, c.Height, g.placeObstacles()))
		board.SetTemplate(core.TeamFootmen, c.FootmanTemplate)
		board.SetTemplate(core.TeamArchers, c.ArcherTemplate)

		id := 1
		for _, pos := range g.placeColumn(board, 0, c.Footmen) {
			_ = board.AddUnit(core.Unit{ID: id, Team: core.TeamFootmen, Pos: pos, HP: c.FootmanTemplate.BaseHP})
			id++
		}
		for _, pos := range g.placeColumn(board, c.Width-1, c.Archers) {
			_ = board.AddUnit(core.Unit{ID: id, Team: core.TeamArchers, Pos: pos, HP: c.ArcherTemplate.BaseHP})
			id++
		}

		if connected(board) {
			return board, nil
		}
	}
	return nil, ErrNoLayout
}

// placeObstacles blocks random cells, never touching the two edge columns
// where units start
func (g *Generator) placeObstacles() []core.Coordinate {
	c := g.config
	inner := (c.Width - 2) * c.Height
	want := int(float64(inner) * c.ObstacleRatio)
	if inner <= 0 || want <= 0 {
		return nil
	}

	seen := make(map[core.Coordinate]bool, want)
	obstacles := make([]core.Coordinate, 0, want)
	maxAttempts := want * 10
	for attempts := 0; len(obstacles) < want && attempts < maxAttempts; attempts++ {
		pos := core.NewCoordinate(1+g.rng.Intn(c.Width-2), g.rng.Intn(c.Height))
		if seen[pos] {
			continue
		}
		seen[pos] = true
		obstacles = append(obstacles, pos)
	}
	return obstacles
}

// placeColumn picks n distinct rows in column x
func (g *Generator) placeColumn(b *core.Board, x, n int) []core.Coordinate {
	rows := g.rng.Perm(b.Height())[:n]
	out := make([]core.Coordinate, 0, n)
	for _, y := range rows {
		out = append(out, core.NewCoordinate(x, y))
	}
	return out
}

// connected reports whether every footman has a route to every archer
func connected(b *core.Board) bool {
	for _, f := range b.UnitIDs(core.TeamFootmen) {
		from, _ := b.Unit(f)
		for _, a := range b.UnitIDs(core.TeamArchers) {
			to, _ := b.Unit(a)
			if pathing.ShortestPath(b.Grid, from.Pos, to.Pos) == pathing.Unreachable {
				return false
			}
		}
	}
	return true
}

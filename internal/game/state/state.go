// Package state models one ply of the footmen-versus-archers game for the
// search: unit positions and hit points, the shared obstacle grid, and whose
// turn it is. States are never modified once handed out; every ply is a fresh
// copy with one joint action applied.
package state

import (
	"fmt"
	"maps"
	"slices"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

// GameState is an immutable snapshot of the world at one ply
type GameState struct {
	grid      *core.ObstacleGrid
	templates map[core.Team]core.UnitTemplate // read-only, shared across plies
	teams     map[int]core.Team               // read-only, shared across plies

	positions map[int]core.Coordinate
	hp        map[int]int
	footmen   []int
	archers   []int

	turn core.Team
	mode ChildMode
}

// Option configures root construction
type Option func(*GameState)

// WithChildMode selects how children are generated for the whole tree
func WithChildMode(mode ChildMode) Option {
	return func(s *GameState) { s.mode = mode }
}

// New builds the root state from a host snapshot. The footmen move first.
func New(snap Snapshot, opts ...Option) (*GameState, error) {
	s := &GameState{
		grid:      core.NewObstacleGrid(snap.Width(), snap.Height(), snap.Obstacles()),
		templates: make(map[core.Team]core.UnitTemplate, len(core.Teams)),
		teams:     make(map[int]core.Team),
		positions: make(map[int]core.Coordinate),
		hp:        make(map[int]int),
		turn:      core.TeamFootmen,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, team := range core.Teams {
		tmpl, ok := snap.Template(team)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingUnitType, team)
		}
		s.templates[team] = tmpl

		ids := snap.UnitIDs(team)
		roster := make([]int, 0, len(ids))
		for _, id := range ids {
			u, ok := snap.Unit(id)
			if !ok {
				return nil, fmt.Errorf("%w: %s roster lists unknown unit %d", ErrInconsistentSnapshot, team, id)
			}
			if u.Team != team {
				return nil, fmt.Errorf("%w: unit %d is on %s but rostered with %s", ErrInconsistentSnapshot, id, u.Team, team)
			}
			if u.HP <= 0 {
				return nil, fmt.Errorf("%w: unit %d has %d hp", ErrInconsistentSnapshot, id, u.HP)
			}
			if !s.grid.Passable(u.Pos) {
				return nil, fmt.Errorf("%w: unit %d stands on blocked cell %s", ErrInconsistentSnapshot, id, u.Pos)
			}
			s.teams[id] = team
			s.positions[id] = u.Pos
			s.hp[id] = u.HP
			roster = append(roster, id)
		}
		*s.roster(team) = roster
	}
	return s, nil
}

// next starts the following ply: a deep copy of the mutable unit data with
// the turn flipped. The caller applies one joint action to the result.
func (s *GameState) next() *GameState {
	return &GameState{
		grid:      s.grid,
		templates: s.templates,
		teams:     s.teams,
		positions: maps.Clone(s.positions),
		hp:        maps.Clone(s.hp),
		footmen:   slices.Clone(s.footmen),
		archers:   slices.Clone(s.archers),
		turn:      s.turn.Opponent(),
		mode:      s.mode,
	}
}

func (s *GameState) roster(team core.Team) *[]int {
	switch team {
	case core.TeamFootmen:
		return &s.footmen
	case core.TeamArchers:
		return &s.archers
	default:
		panic(fmt.Sprintf("state: no roster for %s", team))
	}
}

// remove deletes a unit from the position map, the hp map and its roster
func (s *GameState) remove(id int) {
	delete(s.positions, id)
	delete(s.hp, id)
	r := s.roster(s.teams[id])
	*r = slices.DeleteFunc(*r, func(other int) bool { return other == id })
}

// Turn returns the side to move
func (s *GameState) Turn() core.Team { return s.turn }

// Mode returns the child generation mode inherited from the root
func (s *GameState) Mode() ChildMode { return s.mode }

// Grid returns the shared obstacle grid
func (s *GameState) Grid() *core.ObstacleGrid { return s.grid }

// Footmen returns a copy of the footman roster in order
func (s *GameState) Footmen() []int { return slices.Clone(s.footmen) }

// Archers returns a copy of the archer roster in order
func (s *GameState) Archers() []int { return slices.Clone(s.archers) }

// Roster returns a copy of a team's roster in order
func (s *GameState) Roster(team core.Team) []int { return slices.Clone(*s.roster(team)) }

// Position returns where a live unit stands
func (s *GameState) Position(id int) (core.Coordinate, bool) {
	pos, ok := s.positions[id]
	return pos, ok
}

// HP returns a live unit's hit points
func (s *GameState) HP(id int) (int, bool) {
	hp, ok := s.hp[id]
	return hp, ok
}

// IsTerminal reports whether either side has been wiped out
func (s *GameState) IsTerminal() bool {
	return len(s.footmen) == 0 || len(s.archers) == 0
}

func (s *GameState) mustPosition(id int) core.Coordinate {
	pos, ok := s.positions[id]
	if !ok {
		panic(fmt.Sprintf("state: rostered unit %d has no position", id))
	}
	return pos
}

func (s *GameState) mustHP(id int) int {
	hp, ok := s.hp[id]
	if !ok {
		panic(fmt.Sprintf("state: rostered unit %d has no hit points", id))
	}
	return hp
}

func (s *GameState) String() string {
	return fmt.Sprintf("turn=%s footmen=%v archers=%v", s.turn, s.footmen, s.archers)
}

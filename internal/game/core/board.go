package core

import "slices"

// Board is the mutable world the host simulation runs on: the static grid plus
// every live unit and the per-team combat templates.
type Board struct {
	Grid      *ObstacleGrid
	Units     map[int]*Unit
	Templates map[Team]UnitTemplate
	rosters   map[Team][]int // ids in insertion order per team
}

// NewBoard creates an empty board over the given grid
func NewBoard(grid *ObstacleGrid) *Board {
	return &Board{
		Grid:      grid,
		Units:     make(map[int]*Unit),
		Templates: make(map[Team]UnitTemplate),
		rosters:   make(map[Team][]int),
	}
}

// SetTemplate registers the combat parameters for a team
func (b *Board) SetTemplate(team Team, tmpl UnitTemplate) {
	b.Templates[team] = tmpl
}

// AddUnit places a unit on the board
func (b *Board) AddUnit(u Unit) error {
	if _, exists := b.Units[u.ID]; exists {
		return ErrDuplicateUnit
	}
	if u.Team != TeamFootmen && u.Team != TeamArchers {
		return ErrUnknownTeam
	}
	if !b.Grid.Passable(u.Pos) {
		return ErrInvalidCoordinates
	}
	if u.HP <= 0 {
		return ErrUnitDead
	}
	unit := u
	b.Units[u.ID] = &unit
	b.rosters[u.Team] = append(b.rosters[u.Team], u.ID)
	return nil
}

// RemoveUnit deletes a unit from the board and its roster
func (b *Board) RemoveUnit(id int) {
	u, ok := b.Units[id]
	if !ok {
		return
	}
	delete(b.Units, id)
	b.rosters[u.Team] = slices.DeleteFunc(b.rosters[u.Team], func(other int) bool { return other == id })
}

// UnitAt returns the unit standing on c, if any
func (b *Board) UnitAt(c Coordinate) (*Unit, bool) {
	for _, team := range Teams {
		for _, id := range b.rosters[team] {
			if u := b.Units[id]; u.Pos == c {
				return u, true
			}
		}
	}
	return nil, false
}

// Alive returns the number of live units on a team
func (b *Board) Alive(team Team) int { return len(b.rosters[team]) }

// Clone returns a deep copy sharing only the immutable grid
func (b *Board) Clone() *Board {
	out := NewBoard(b.Grid)
	for team, tmpl := range b.Templates {
		out.Templates[team] = tmpl
	}
	for team, ids := range b.rosters {
		out.rosters[team] = slices.Clone(ids)
	}
	for id, u := range b.Units {
		unit := *u
		out.Units[id] = &unit
	}
	return out
}

// Width implements the world-snapshot query interface
func (b *Board) Width() int { return b.Grid.W }

// Height implements the world-snapshot query interface
func (b *Board) Height() int { return b.Grid.H }

// Obstacles implements the world-snapshot query interface
func (b *Board) Obstacles() []Coordinate { return b.Grid.Obstacles() }

// UnitIDs returns a copy of the team's roster in order
func (b *Board) UnitIDs(team Team) []int { return slices.Clone(b.rosters[team]) }

// Unit returns a copy of the unit record
func (b *Board) Unit(id int) (Unit, bool) {
	u, ok := b.Units[id]
	if !ok {
		return Unit{}, false
	}
	return *u, true
}

// Template returns the combat parameters registered for a team
func (b *Board) Template(team Team) (UnitTemplate, bool) {
	tmpl, ok := b.Templates[team]
	return tmpl, ok
}

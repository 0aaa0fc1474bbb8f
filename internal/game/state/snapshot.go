package state

import (
	"errors"
	"fmt"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

var (
	// ErrMissingUnitType is returned when a team has no combat template
	ErrMissingUnitType = errors.New("unit type missing from snapshot")
	// ErrInconsistentSnapshot is returned when rosters and unit records disagree
	ErrInconsistentSnapshot = errors.New("inconsistent snapshot")
	// ErrUnknownChildMode is returned when a child mode name is not recognised
	ErrUnknownChildMode = errors.New("unknown child generation mode")
)

// Snapshot is the read-only view of the host world a root state is built from.
// *core.Board implements it.
type Snapshot interface {
	Width() int
	Height() int
	Obstacles() []core.Coordinate
	UnitIDs(team core.Team) []int
	Unit(id int) (core.Unit, bool)
	Template(team core.Team) (core.UnitTemplate, bool)
}

// ChildMode selects which side's joint actions a state expands into children
type ChildMode int

const (
	// SideToMove expands only the team whose turn it is
	SideToMove ChildMode = iota
	// BothSides expands every footman joint action followed by every archer
	// joint action, regardless of whose turn it is
	BothSides
)

func (m ChildMode) String() string {
	switch m {
	case SideToMove:
		return "side_to_move"
	case BothSides:
		return "both_sides"
	default:
		return fmt.Sprintf("child_mode(%d)", int(m))
	}
}

// ParseChildMode maps a configuration value onto a ChildMode
func ParseChildMode(s string) (ChildMode, error) {
	switch s {
	case "", "side_to_move":
		return SideToMove, nil
	case "both_sides":
		return BothSides, nil
	default:
		return SideToMove, fmt.Errorf("%w: %q", ErrUnknownChildMode, s)
	}
}

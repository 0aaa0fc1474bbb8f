package core

import "fmt"

// Team identifies which side a unit fights for
type Team int

const (
	// TeamNone marks "no team", e.g. the winner of an unfinished match
	TeamNone Team = iota - 1
	// TeamFootmen is the melee side and the maximizing player
	TeamFootmen
	// TeamArchers is the ranged side and the minimizing player
	TeamArchers
)

// Teams lists the two playing sides in turn order
var Teams = []Team{TeamFootmen, TeamArchers}

func (t Team) String() string {
	switch t {
	case TeamFootmen:
		return "footmen"
	case TeamArchers:
		return "archers"
	case TeamNone:
		return "none"
	default:
		return fmt.Sprintf("team(%d)", int(t))
	}
}

// Opponent returns the opposing side
func (t Team) Opponent() Team {
	switch t {
	case TeamFootmen:
		return TeamArchers
	case TeamArchers:
		return TeamFootmen
	default:
		return TeamNone
	}
}

// IsMaximizing reports whether t is the side the search maximizes for
func (t Team) IsMaximizing() bool { return t == TeamFootmen }

// ParseTeam maps a scenario or config name onto a Team
func ParseTeam(name string) (Team, error) {
	switch name {
	case "footmen", "footman":
		return TeamFootmen, nil
	case "archers", "archer":
		return TeamArchers, nil
	default:
		return TeamNone, fmt.Errorf("%w: %q", ErrUnknownTeam, name)
	}
}

// UnitTemplate holds the per-type combat parameters shared by every unit of a team
type UnitTemplate struct {
	Range  float64 // straight-line attack reach
	Damage int
	BaseHP int
}

// Unit is a live combatant
type Unit struct {
	ID   int
	Team Team
	Pos  Coordinate
	HP   int // <= 0 never appears on a board; dead units are removed
}

func (u Unit) String() string {
	return fmt.Sprintf("%s#%d@%s hp=%d", u.Team, u.ID, u.Pos, u.HP)
}

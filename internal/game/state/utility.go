package state

import "github.com/mitchelldurbincs/tactical-minimax/internal/game/pathing"

// WinUtility is the value of any state with no archers left
const WinUtility = 1e6

const utilityBase = -100

// Utility scores s from the footmen's point of view. Every footman is pulled
// toward the first archer in roster order so the team focuses one target at a
// time. Footman hit points count for the footmen and archer hit points count
// against them. A footman with no route to the target, or standing on it,
// is charged the grid area as its distance.
func (s *GameState) Utility() float64 {
	if len(s.archers) == 0 {
		return WinUtility
	}

	unreachable := s.grid.Cells()
	target := s.mustPosition(s.archers[0])

	total := utilityBase
	for _, id := range s.archers {
		total += s.mustHP(id)
	}
	for _, id := range s.footmen {
		d := pathing.ShortestPath(s.grid, s.mustPosition(id), target)
		if d == pathing.Unreachable {
			d = unreachable
		}
		total += d - s.mustHP(id)
	}
	return -float64(total)
}

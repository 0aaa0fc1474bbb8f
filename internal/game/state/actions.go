package state

import (
	"github.com/mitchelldurbincs/tactical-minimax/internal/common"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

// LegalActions lists what a unit may do this ply: a step in each cardinal
// direction that stays on the grid and off obstacles, then an attack on every
// opposing unit within straight-line range, in the opponent roster's order.
// Other units never block a step; moves in one ply may pass through each other.
func (s *GameState) LegalActions(id int) []core.Action {
	pos := s.mustPosition(id)
	team := s.teams[id]

	var actions []core.Action
	for _, dir := range core.CardinalDirections {
		if s.grid.Passable(pos.Move(dir)) {
			actions = append(actions, core.NewMoveAction(id, dir))
		}
	}

	attackRange := s.templates[team].Range
	for _, target := range *s.roster(team.Opponent()) {
		if common.WithinRange(pos, s.mustPosition(target), attackRange) {
			actions = append(actions, core.NewAttackAction(id, target))
		}
	}
	return actions
}

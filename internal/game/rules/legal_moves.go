// Package rules answers host-side questions about a board: which orders a unit
// may legally issue and whether the match is over.
package rules

import "github.com/mitchelldurbincs/tactical-minimax/internal/game/core"

// LegalMoveCalculator computes legal actions against the host board. Unlike
// the search model the host allows diagonal steps and refuses to stack units.
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// LegalActions lists every order unitID could issue right now: steps in
// compass order followed by attacks in the opponent roster's order.
func (lmc *LegalMoveCalculator) LegalActions(board *core.Board, unitID int) []core.Action {
	unit, ok := board.Units[unitID]
	if !ok {
		return nil
	}

	var actions []core.Action
	for _, dir := range core.AllDirections {
		move := core.NewMoveAction(unitID, dir)
		if move.Validate(board) == nil {
			actions = append(actions, move)
		}
	}
	for _, target := range board.UnitIDs(unit.Team.Opponent()) {
		attack := core.NewAttackAction(unitID, target)
		if attack.Validate(board) == nil {
			actions = append(actions, attack)
		}
	}
	return actions
}

// Targets returns the enemies unitID can hit from where it stands, in roster order
func (lmc *LegalMoveCalculator) Targets(board *core.Board, unitID int) []int {
	var targets []int
	for _, a := range lmc.LegalActions(board, unitID) {
		if attack, ok := a.(*core.AttackAction); ok {
			targets = append(targets, attack.TargetID)
		}
	}
	return targets
}

// GetLegalActionMask returns one flag per compass direction, in
// core.AllDirections order, telling whether unitID may step that way.
func (lmc *LegalMoveCalculator) GetLegalActionMask(board *core.Board, unitID int) []bool {
	mask := make([]bool, len(core.AllDirections))
	if _, ok := board.Units[unitID]; !ok {
		return mask
	}
	for i, dir := range core.AllDirections {
		mask[i] = core.NewMoveAction(unitID, dir).Validate(board) == nil
	}
	return mask
}

package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrTargetIsObstacle   = errors.New("target cell is an obstacle")
	ErrCellOccupied       = errors.New("target cell is occupied")
	ErrInvalidDirection   = errors.New("invalid direction")
	ErrUnknownUnit        = errors.New("unknown unit")
	ErrUnknownTeam        = errors.New("unknown team")
	ErrDuplicateUnit      = errors.New("duplicate unit id")
	ErrUnitDead           = errors.New("unit has no hit points")
	ErrFriendlyTarget     = errors.New("target is on the same team")
	ErrOutOfRange         = errors.New("target out of range")
	ErrMissingTemplate    = errors.New("no unit template for team")
	ErrGameOver           = errors.New("game is over")
	ErrNotYourTurn        = errors.New("unit does not belong to the side to move")
)

// WrapActionError adds the acting unit and the order to err so that logs and
// callers can tell which action failed. errors.Is still sees err.
func WrapActionError(action Action, err error) error {
	if err == nil {
		return nil
	}
	switch a := action.(type) {
	case *MoveAction:
		return fmt.Errorf("unit %d: move %s: %w", a.UnitID, a.Direction, err)
	case *AttackAction:
		return fmt.Errorf("unit %d: attack unit %d: %w", a.UnitID, a.TargetID, err)
	default:
		return fmt.Errorf("unit action: %w", err)
	}
}

// WrapGameStateError adds the turn number and the failing phase to err
func WrapGameStateError(turn int, op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("turn %d: %s: %w", turn, op, err)
}

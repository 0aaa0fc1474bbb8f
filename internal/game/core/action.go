package core

import "fmt"

// ActionType represents the type of action
type ActionType int

const (
	ActionMove ActionType = iota
	ActionAttack
)

func (t ActionType) String() string {
	switch t {
	case ActionMove:
		return "move"
	case ActionAttack:
		return "attack"
	default:
		return fmt.Sprintf("action(%d)", int(t))
	}
}

// Action is an order for a single unit
type Action interface {
	GetUnitID() int
	GetType() ActionType
	Validate(b *Board) error
	String() string
}

// MoveAction steps a unit one cell in a compass direction
type MoveAction struct {
	UnitID    int
	Direction Direction
}

// NewMoveAction creates a move order
func NewMoveAction(unitID int, dir Direction) *MoveAction {
	return &MoveAction{UnitID: unitID, Direction: dir}
}

func (m *MoveAction) GetUnitID() int      { return m.UnitID }
func (m *MoveAction) GetType() ActionType { return ActionMove }
func (m *MoveAction) String() string      { return fmt.Sprintf("unit %d move %s", m.UnitID, m.Direction) }

// Validate checks the move against the host board. Unlike the search model the
// host refuses to stack two units on one cell.
func (m *MoveAction) Validate(b *Board) error {
	unit, ok := b.Units[m.UnitID]
	if !ok {
		return ErrUnknownUnit
	}
	if _, ok := DirectionVectors[m.Direction]; !ok {
		return ErrInvalidDirection
	}
	dest := unit.Pos.Move(m.Direction)
	if !b.Grid.InBounds(dest) {
		return ErrInvalidCoordinates
	}
	if b.Grid.IsObstacle(dest) {
		return ErrTargetIsObstacle
	}
	if _, occupied := b.UnitAt(dest); occupied {
		return ErrCellOccupied
	}
	return nil
}

// AttackAction strikes an enemy unit within range
type AttackAction struct {
	UnitID   int
	TargetID int
}

// NewAttackAction creates an attack order
func NewAttackAction(unitID, targetID int) *AttackAction {
	return &AttackAction{UnitID: unitID, TargetID: targetID}
}

func (a *AttackAction) GetUnitID() int      { return a.UnitID }
func (a *AttackAction) GetType() ActionType { return ActionAttack }
func (a *AttackAction) String() string {
	return fmt.Sprintf("unit %d attack unit %d", a.UnitID, a.TargetID)
}

// Validate checks the attack against the host board
func (a *AttackAction) Validate(b *Board) error {
	attacker, ok := b.Units[a.UnitID]
	if !ok {
		return ErrUnknownUnit
	}
	target, ok := b.Units[a.TargetID]
	if !ok {
		return ErrUnknownUnit
	}
	if attacker.Team == target.Team {
		return ErrFriendlyTarget
	}
	tmpl, ok := b.Templates[attacker.Team]
	if !ok {
		return ErrMissingTemplate
	}
	if attacker.Pos.EuclideanTo(target.Pos) > tmpl.Range {
		return ErrOutOfRange
	}
	return nil
}

package core

// ApplyMoveAction applies a move action to the board
func ApplyMoveAction(b *Board, action *MoveAction) error {
	if err := action.Validate(b); err != nil {
		return err
	}
	unit := b.Units[action.UnitID]
	unit.Pos = unit.Pos.Move(action.Direction)
	return nil
}

// ApplyAttackAction applies an attack action to the board.
// Returns kill details when the target dies; the dead unit is removed.
func ApplyAttackAction(b *Board, action *AttackAction) (*KillDetails, error) {
	if err := action.Validate(b); err != nil {
		return nil, err
	}
	attacker := b.Units[action.UnitID]
	target := b.Units[action.TargetID]
	target.HP -= b.Templates[attacker.Team].Damage
	if target.HP > 0 {
		return nil, nil
	}

	details := &KillDetails{
		UnitID:   target.ID,
		Team:     target.Team,
		Pos:      target.Pos,
		KilledBy: attacker.ID,
	}
	b.RemoveUnit(target.ID)
	return details, nil
}

// KillDetails describes a unit removed by an attack
type KillDetails struct {
	UnitID   int
	Team     Team
	Pos      Coordinate
	KilledBy int
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMoveAction(t *testing.T) {
	b := newTestBoard(t)

	require.NoError(t, ApplyMoveAction(b, NewMoveAction(2, East)))
	assert.Equal(t, Coordinate{2, 0}, b.Units[2].Pos)

	err := ApplyMoveAction(b, NewMoveAction(1, South))
	assert.ErrorIs(t, err, ErrTargetIsObstacle)
	assert.Equal(t, Coordinate{0, 0}, b.Units[1].Pos, "rejected moves leave the unit in place")
}

func TestApplyAttackAction(t *testing.T) {
	tests := []struct {
		name         string
		targetHP     int
		attacks      int
		expectKill   bool
		expectTarget int
	}{
		{"wounds", 160, 1, false, 154},
		{"exact lethal", 6, 1, true, 0},
		{"overkill", 4, 1, true, 0},
		{"two hits", 12, 2, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t)
			b.Units[1].HP = tt.targetHP

			var kill *KillDetails
			for i := 0; i < tt.attacks; i++ {
				var err error
				kill, err = ApplyAttackAction(b, NewAttackAction(3, 1))
				require.NoError(t, err)
			}

			if !tt.expectKill {
				assert.Nil(t, kill)
				assert.Equal(t, tt.expectTarget, b.Units[1].HP)
				return
			}
			require.NotNil(t, kill)
			assert.Equal(t, 1, kill.UnitID)
			assert.Equal(t, 3, kill.KilledBy)
			assert.Equal(t, TeamFootmen, kill.Team)
			_, ok := b.Unit(1)
			assert.False(t, ok, "dead units are removed from the board")
			assert.NotContains(t, b.UnitIDs(TeamFootmen), 1)
		})
	}
}

func TestApplyAttackAction_Invalid(t *testing.T) {
	b := newTestBoard(t)

	kill, err := ApplyAttackAction(b, NewAttackAction(1, 3))
	assert.Nil(t, kill)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 50, b.Units[3].HP)
}

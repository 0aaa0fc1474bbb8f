package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapActionError(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		err      error
		expected string
		isNil    bool
	}{
		{
			name:   "nil error returns nil",
			action: NewMoveAction(1, North),
			err:    nil,
			isNil:  true,
		},
		{
			name:     "move action with direction",
			action:   NewMoveAction(5, South),
			err:      ErrTargetIsObstacle,
			expected: "unit 5: move south: target cell is an obstacle",
		},
		{
			name:     "attack action with target",
			action:   NewAttackAction(2, 10),
			err:      ErrOutOfRange,
			expected: "unit 2: attack unit 10: target out of range",
		},
		{
			name:     "generic action fallback",
			action:   nil,
			err:      ErrGameOver,
			expected: "unit action: game is over",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapActionError(tt.action, tt.err)
			if tt.isNil {
				assert.Nil(t, wrapped)
				return
			}
			require.NotNil(t, wrapped)
			assert.Equal(t, tt.expected, wrapped.Error())
			assert.True(t, errors.Is(wrapped, tt.err))
		})
	}
}

func TestWrapGameStateError(t *testing.T) {
	assert.Nil(t, WrapGameStateError(3, "step", nil))

	wrapped := WrapGameStateError(7, "action processing", ErrGameOver)
	require.NotNil(t, wrapped)
	assert.Equal(t, "turn 7: action processing: game is over", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrGameOver)
}

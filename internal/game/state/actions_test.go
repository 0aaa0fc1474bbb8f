package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/testutil"
)

func TestLegalActions(t *testing.T) {
	board := testutil.CreateTestBoard(t, 5, 3, testutil.WallObstacles,
		testutil.Footman(1, 0, 0), testutil.Footman(3, 3, 1), testutil.Archer(2, 0, 2), testutil.Archer(4, 3, 2))
	s, err := New(board)
	require.NoError(t, err)

	tests := []struct {
		name string
		id   int
		want []core.Action
	}{
		{
			name: "corner footman only steps east",
			id:   1,
			want: []core.Action{core.NewMoveAction(1, core.East)},
		},
		{
			name: "footman in the gap reaches the archer below",
			id:   3,
			want: []core.Action{
				core.NewMoveAction(3, core.North),
				core.NewMoveAction(3, core.South),
				core.NewAttackAction(3, 4),
			},
		},
		{
			name: "archer attacks every footman in range in roster order",
			id:   2,
			want: []core.Action{
				core.NewMoveAction(2, core.East),
				core.NewAttackAction(2, 1),
				core.NewAttackAction(2, 3),
			},
		},
		{
			name: "occupied cells do not block a step",
			id:   4,
			want: []core.Action{
				core.NewMoveAction(4, core.North),
				core.NewMoveAction(4, core.East),
				core.NewMoveAction(4, core.West),
				core.NewAttackAction(4, 1),
				core.NewAttackAction(4, 3),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.LegalActions(tt.id))
		})
	}
}

func TestLegalActionsRangeIsEuclidean(t *testing.T) {
	// A diagonal neighbour is sqrt(2) away, out of reach for range 1.
	board := testutil.CreateTestBoard(t, 3, 3, nil, testutil.Footman(1, 0, 0), testutil.Archer(2, 1, 1))
	s, err := New(board)
	require.NoError(t, err)

	for _, a := range s.LegalActions(1) {
		assert.Equal(t, core.ActionMove, a.GetType())
	}
}

func TestLegalActionsUnknownUnitPanics(t *testing.T) {
	s, err := New(testutil.CreateWalledBoard(t))
	require.NoError(t, err)

	testutil.AssertPanic(t, func() { s.LegalActions(42) })
}

package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/testutil"
)

func TestAstarAgentWalksAroundWall(t *testing.T) {
	board := testutil.CreateWalledBoard(t)
	a := NewAstarAgent(2, testutil.NopLogger())

	want := []core.Coordinate{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	for _, cell := range want {
		orders, err := a.Decide(board)
		require.NoError(t, err)
		move, ok := orders[1].(*core.MoveAction)
		require.True(t, ok, "expected a move towards %s, got %v", cell, orders[1])
		require.NoError(t, core.ApplyMoveAction(board, move))
		require.Equal(t, cell, board.Units[1].Pos)
	}

	orders, err := a.Decide(board)
	require.NoError(t, err)
	assert.Equal(t, core.NewAttackAction(1, 2), orders[1])
	assert.Equal(t, 1, a.Replans(), "a lone archer never forces a replan")
}

func TestAstarAgentClosesInFromDiagonal(t *testing.T) {
	board := testutil.CreateTestBoard(t, 3, 3, nil, testutil.Footman(1, 0, 0), testutil.Archer(2, 1, 1))

	orders, err := NewAstarAgent(2, testutil.NopLogger()).Decide(board)
	require.NoError(t, err)
	assert.Equal(t, core.NewMoveAction(1, core.East), orders[1])
}

func TestAstarAgentReplansAfterBlockerMoves(t *testing.T) {
	board := testutil.CreateTestBoard(t, 5, 3, nil,
		testutil.Footman(1, 0, 0), testutil.Archer(2, 4, 0), testutil.Archer(3, 2, 2))
	a := NewAstarAgent(2, testutil.NopLogger())

	_, err := a.Decide(board)
	require.NoError(t, err)
	require.Equal(t, 1, a.Replans())

	board.Units[3].Pos = core.Coordinate{X: 2, Y: 1}
	for _, want := range []int{2, 3, 4, 4} {
		_, err := a.Decide(board)
		require.NoError(t, err)
		assert.Equal(t, want, a.Replans())
	}
}

func TestAstarAgentReplansWhenBlockerStepsOnPath(t *testing.T) {
	board := testutil.CreateTestBoard(t, 5, 3, nil,
		testutil.Footman(1, 0, 0), testutil.Archer(2, 4, 0), testutil.Archer(3, 2, 2))
	a := NewAstarAgent(0, testutil.NopLogger())

	_, err := a.Decide(board)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(a.plans[1].path), 2)

	onPath := a.plans[1].path[1]
	board.Units[3].Pos = onPath
	_, err = a.Decide(board)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Replans())
	assert.NotContains(t, a.plans[1].path, onPath)

	_, err = a.Decide(board)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Replans(), "no delay configured and the path is clear")
}

func TestAstarAgentRoutesAroundFriend(t *testing.T) {
	board := testutil.CreateTestBoard(t, 5, 2, nil,
		testutil.Footman(1, 0, 0), testutil.Footman(4, 1, 0), testutil.Archer(2, 4, 0))

	orders, err := NewAstarAgent(2, testutil.NopLogger()).Decide(board)
	require.NoError(t, err)

	move, ok := orders[1].(*core.MoveAction)
	require.True(t, ok)
	assert.NotEqual(t, core.Coordinate{X: 1, Y: 0}, core.Coordinate{X: 0, Y: 0}.Move(move.Direction))
	assert.NoError(t, move.Validate(board))
}

func TestAstarAgentWithoutArchers(t *testing.T) {
	board := testutil.CreateTestBoard(t, 3, 3, nil, testutil.Footman(1, 0, 0))
	orders, err := NewAstarAgent(2, testutil.NopLogger()).Decide(board)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

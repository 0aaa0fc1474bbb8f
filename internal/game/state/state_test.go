package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/testutil"
)

// brokenSnapshot lets tests hand New rosters that do not match the unit records
type brokenSnapshot struct {
	*core.Board
	extra map[core.Team][]int
	units map[int]core.Unit
}

func (b brokenSnapshot) UnitIDs(team core.Team) []int {
	return append(b.Board.UnitIDs(team), b.extra[team]...)
}

func (b brokenSnapshot) Unit(id int) (core.Unit, bool) {
	if u, ok := b.units[id]; ok {
		return u, true
	}
	return b.Board.Unit(id)
}

func TestNew(t *testing.T) {
	board := testutil.CreateTestBoard(t, 5, 3, testutil.WallObstacles,
		testutil.Footman(1, 0, 0), testutil.Footman(4, 3, 0), testutil.Archer(2, 0, 2))

	s, err := New(board)
	require.NoError(t, err)

	assert.Equal(t, core.TeamFootmen, s.Turn())
	assert.Equal(t, SideToMove, s.Mode())
	assert.Equal(t, []int{1, 4}, s.Footmen())
	assert.Equal(t, []int{2}, s.Archers())
	assert.Equal(t, testutil.WallObstacles, s.Grid().Obstacles())

	pos, ok := s.Position(4)
	require.True(t, ok)
	assert.Equal(t, core.Coordinate{X: 3, Y: 0}, pos)

	hp, ok := s.HP(2)
	require.True(t, ok)
	assert.Equal(t, testutil.ArcherTemplate.BaseHP, hp)

	assert.False(t, s.IsTerminal())
}

func TestNewWithChildMode(t *testing.T) {
	s, err := New(testutil.CreateWalledBoard(t), WithChildMode(BothSides))
	require.NoError(t, err)
	assert.Equal(t, BothSides, s.Mode())

	for _, c := range s.Children() {
		assert.Equal(t, BothSides, c.State.Mode(), "mode is inherited")
	}
}

func TestNewMissingUnitType(t *testing.T) {
	board := core.NewBoard(core.NewObstacleGrid(3, 3, nil))
	board.SetTemplate(core.TeamFootmen, testutil.FootmanTemplate)
	require.NoError(t, board.AddUnit(testutil.Footman(1, 0, 0)))

	_, err := New(board)
	assert.ErrorIs(t, err, ErrMissingUnitType)
}

func TestNewEmptyRosterIsAllowed(t *testing.T) {
	board := testutil.CreateTestBoard(t, 3, 3, nil, testutil.Footman(1, 0, 0))

	s, err := New(board)
	require.NoError(t, err)
	assert.Empty(t, s.Archers())
	assert.True(t, s.IsTerminal())
}

func TestNewInconsistentSnapshot(t *testing.T) {
	board := testutil.CreateWalledBoard(t)

	tests := []struct {
		name  string
		extra map[core.Team][]int
		units map[int]core.Unit
	}{
		{
			name:  "rostered id without a record",
			extra: map[core.Team][]int{core.TeamArchers: {99}},
		},
		{
			name:  "unit on the wrong roster",
			extra: map[core.Team][]int{core.TeamFootmen: {7}},
			units: map[int]core.Unit{7: testutil.Archer(7, 4, 0)},
		},
		{
			name:  "dead unit",
			extra: map[core.Team][]int{core.TeamFootmen: {7}},
			units: map[int]core.Unit{7: testutil.WithHP(testutil.Footman(7, 4, 0), 0)},
		},
		{
			name:  "unit inside a wall",
			extra: map[core.Team][]int{core.TeamFootmen: {7}},
			units: map[int]core.Unit{7: testutil.Footman(7, 1, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(brokenSnapshot{Board: board, extra: tt.extra, units: tt.units})
			assert.ErrorIs(t, err, ErrInconsistentSnapshot)
		})
	}
}

func TestNextIsIndependentOfParent(t *testing.T) {
	s, err := New(testutil.CreateWalledBoard(t))
	require.NoError(t, err)

	child := s.next()
	assert.Equal(t, core.TeamArchers, child.Turn())
	assert.Same(t, s.Grid(), child.Grid(), "grid is shared")

	child.positions[1] = core.Coordinate{X: 4, Y: 0}
	child.hp[2] = 1
	child.remove(1)

	pos, _ := s.Position(1)
	hp, _ := s.HP(2)
	assert.Equal(t, core.Coordinate{X: 0, Y: 0}, pos)
	assert.Equal(t, testutil.ArcherTemplate.BaseHP, hp)
	assert.Equal(t, []int{1}, s.Footmen())
	assert.Empty(t, child.Footmen())
}

func TestTurnAlternates(t *testing.T) {
	s, err := New(testutil.CreateWalledBoard(t))
	require.NoError(t, err)

	turn := s.Turn()
	for range 4 {
		children := s.Children()
		require.NotEmpty(t, children)
		s = children[0].State
		assert.Equal(t, turn.Opponent(), s.Turn())
		turn = s.Turn()
	}
}

func TestParseChildMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ChildMode
		wantErr bool
	}{
		{"", SideToMove, false},
		{"side_to_move", SideToMove, false},
		{"both_sides", BothSides, false},
		{"everyone", SideToMove, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChildMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownChildMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/testutil"
)

func TestLoad(t *testing.T) {
	board, err := Load("testdata/walled.yaml")
	require.NoError(t, err)

	assert.Equal(t, 5, board.Width())
	assert.Equal(t, 3, board.Height())
	assert.Equal(t, testutil.WallObstacles, board.Obstacles())
	assert.Equal(t, []int{1}, board.UnitIDs(core.TeamFootmen))
	assert.Equal(t, []int{2}, board.UnitIDs(core.TeamArchers))

	footman, ok := board.Unit(1)
	require.True(t, ok)
	assert.Equal(t, 160, footman.HP, "missing hp means full health")

	archer, ok := board.Unit(2)
	require.True(t, ok)
	assert.Equal(t, 30, archer.HP)
	assert.Equal(t, core.NewCoordinate(0, 2), archer.Pos)

	tmpl, ok := board.Template(core.TeamArchers)
	require.True(t, ok)
	assert.Equal(t, core.UnitTemplate{Range: 8, Damage: 6, BaseHP: 50}, tmpl)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestParseInvalid(t *testing.T) {
	const templates = `
templates:
  footman: {hp: 160, damage: 10, range: 1}
  archer: {hp: 50, damage: 6, range: 8}
`
	tests := []struct {
		name string
		yaml string
	}{
		{"empty map", "width: 0\nheight: 3\n" + templates},
		{"obstacle off the map", "width: 2\nheight: 2\nobstacles: [{x: 5, y: 0}]\n" + templates},
		{"missing template", "width: 2\nheight: 2\ntemplates:\n  footmen: {hp: 1, damage: 1, range: 1}\n"},
		{"unknown template team", "width: 2\nheight: 2\ntemplates:\n  knights: {hp: 1, damage: 1, range: 1}\n"},
		{"unknown unit team", "width: 2\nheight: 2\nunits: [{id: 1, team: knights, x: 0, y: 0}]\n" + templates},
		{"unit inside obstacle", "width: 2\nheight: 2\nobstacles: [{x: 0, y: 0}]\nunits: [{id: 1, team: footmen, x: 0, y: 0}]\n" + templates},
		{"duplicate unit", "width: 2\nheight: 2\nunits: [{id: 1, team: footmen, x: 0, y: 0}, {id: 1, team: archers, x: 1, y: 1}]\n" + templates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}

	_, err := Parse([]byte("width: [oops"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	original := testutil.CreateTestBoard(t, 6, 4, []core.Coordinate{{X: 2, Y: 1}, {X: 3, Y: 2}},
		testutil.Footman(1, 0, 0), testutil.WithHP(testutil.Footman(2, 0, 3), 42), testutil.Archer(5, 5, 1))

	data, err := Marshal(original)
	require.NoError(t, err)

	loaded, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, original.Obstacles(), loaded.Obstacles())
	assert.Equal(t, original.UnitIDs(core.TeamFootmen), loaded.UnitIDs(core.TeamFootmen))
	assert.Equal(t, original.UnitIDs(core.TeamArchers), loaded.UnitIDs(core.TeamArchers))
	for id, u := range original.Units {
		got, ok := loaded.Unit(id)
		require.True(t, ok)
		assert.Equal(t, *u, got)
	}
	assert.Equal(t, original.Templates, loaded.Templates)
}

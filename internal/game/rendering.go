package game

import (
	"strings"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

// ANSI color codes for board rendering
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorBlue  = "\033[34m"
	ColorGray  = "\033[90m"
)

const (
	EmptySymbol    = "·"
	ObstacleSymbol = "▲"
)

var teamColors = map[core.Team]string{
	core.TeamFootmen: ColorBlue,
	core.TeamArchers: ColorRed,
}

var teamSymbols = map[core.Team]byte{
	core.TeamFootmen: 'F',
	core.TeamArchers: 'A',
}

// Board returns a colored text rendering of the board followed by a roster
// of every live unit.
func (e *Engine) Board() string {
	return RenderBoard(e.ms.Board, true)
}

// RenderBoard draws board as a grid. Each cell is three columns wide: a unit
// shows its team letter and id, an obstacle a triangle.
func RenderBoard(board *core.Board, color bool) string {
	width := board.Width()
	height := board.Height()

	occupant := make(map[core.Coordinate]*core.Unit, len(board.Units))
	for _, u := range board.Units {
		occupant[u.Pos] = u
	}

	var sb strings.Builder
	sb.Grow((width*12+10)*(height+3) + 100)

	// Header row
	sb.WriteString("   ")
	for x := range width {
		sb.WriteString(core.IntToStringFixedWidth(x, 3))
	}
	sb.WriteString("\n")

	for y := range height {
		sb.WriteString(core.IntToStringFixedWidth(y, 2))
		sb.WriteString(" ")
		for x := range width {
			c := core.NewCoordinate(x, y)
			writeCell(&sb, board, occupant[c], c, color)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	for _, team := range core.Teams {
		for _, id := range board.UnitIDs(team) {
			sb.WriteString(board.Units[id].String())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// writeCell writes one cell directly to the builder to avoid allocations
func writeCell(sb *strings.Builder, board *core.Board, u *core.Unit, c core.Coordinate, color bool) {
	paint := func(code string) {
		if color {
			sb.WriteString(code)
		}
	}

	switch {
	case board.Grid.IsObstacle(c):
		paint(ColorGray)
		sb.WriteString("  ")
		sb.WriteString(ObstacleSymbol)
	case u != nil:
		paint(teamColors[u.Team])
		sb.WriteByte(teamSymbols[u.Team])
		sb.WriteString(core.IntToStringFixedWidth(u.ID%100, 2))
	default:
		paint(ColorGray)
		sb.WriteString("  ")
		sb.WriteString(EmptySymbol)
	}
	paint(ColorReset)
}

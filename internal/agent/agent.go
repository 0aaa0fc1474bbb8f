// Package agent holds the policies that issue orders for each side of a match.
package agent

import (
	"maps"
	"slices"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

// Agent decides the orders of one side given the current board. The board
// is a private copy; agents may keep it but must not expect it to change.
type Agent interface {
	Name() string
	Team() core.Team
	Decide(board *core.Board) (map[int]core.Action, error)
}

// Orders flattens decided orders into a slice sorted by unit id
func Orders(decided map[int]core.Action) []core.Action {
	ids := slices.Sorted(maps.Keys(decided))
	actions := make([]core.Action, 0, len(ids))
	for _, id := range ids {
		actions = append(actions, decided[id])
	}
	return actions
}

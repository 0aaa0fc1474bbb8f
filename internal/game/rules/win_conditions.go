package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

// WinConditionChecker handles game over detection and winner determination
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// CheckGameOver reports whether a side has been wiped out and which side won.
// The winner is core.TeamNone while the match goes on or when both sides fell
// in the same turn.
func (wc *WinConditionChecker) CheckGameOver(board *core.Board) (bool, core.Team) {
	footmen := board.Alive(core.TeamFootmen)
	archers := board.Alive(core.TeamArchers)

	gameOver := footmen == 0 || archers == 0
	winner := core.TeamNone
	switch {
	case gameOver && archers == 0 && footmen > 0:
		winner = core.TeamFootmen
	case gameOver && footmen == 0 && archers > 0:
		winner = core.TeamArchers
	}

	if gameOver {
		wc.logger.Info().Stringer("winner", winner).Msg("Winner determined")
	}
	wc.logger.Debug().
		Bool("is_game_over", gameOver).
		Int("footmen_alive", footmen).
		Int("archers_alive", archers).
		Msg("Game over check complete")

	return gameOver, winner
}

// Package game hosts a footmen-versus-archers match: it owns the board,
// applies each side's committed orders, and decides when the match is over.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/events"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/processor"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/rules"
)

// End reasons reported in MatchEnded events
const (
	ReasonElimination = "elimination"
	ReasonTurnLimit   = "turn_limit"
)

// MatchState is the host's view of a running match
type MatchState struct {
	Turn   int // number of completed turns; each side's move is one turn
	ToMove core.Team
	Board  *core.Board
}

type Engine struct {
	ms        *MatchState
	rng       *rand.Rand
	phase     Phase
	winner    core.Team
	endReason string
	maxTurns  int
	startTime time.Time
	stats     map[core.Team]*TeamStats

	logger          zerolog.Logger
	actionProcessor *processor.ActionProcessor
	winCondition    *rules.WinConditionChecker
	legalMoves      *rules.LegalMoveCalculator
	eventBus        *events.EventBus
	matchID         string
	turnProcessor   *TurnProcessor
}

// Step applies the side to move's orders and hands the turn to the other side.
// Orders the host refuses are logged and published but do not fail the step.
func (e *Engine) Step(ctx context.Context, actions []core.Action) error {
	return e.turnProcessor.ProcessTurn(ctx, actions)
}

// transition moves the engine to the next lifecycle phase
func (e *Engine) transition(to Phase, reason string) error {
	if !e.phase.CanTransitionTo(to) {
		return fmt.Errorf("invalid phase transition %s -> %s", e.phase, to)
	}
	e.logger.Debug().
		Stringer("from", e.phase).
		Stringer("to", to).
		Str("reason", reason).
		Msg("Phase transition")
	e.phase = to
	return nil
}

// checkGameOver ends the match on elimination or when the turn limit is reached
func (e *Engine) checkGameOver(logger zerolog.Logger) {
	over, winner := e.winCondition.CheckGameOver(e.ms.Board)
	reason := ReasonElimination
	if !over && e.maxTurns > 0 && e.ms.Turn >= e.maxTurns {
		over, winner, reason = true, core.TeamNone, ReasonTurnLimit
	}
	if !over {
		return
	}

	e.winner = winner
	e.endReason = reason
	if err := e.transition(PhaseEnded, reason); err != nil {
		logger.Error().Err(err).Msg("Failed to end match")
		return
	}

	logger.Info().
		Stringer("winner", winner).
		Str("reason", reason).
		Int("turn", e.ms.Turn).
		Msg("Match over")
	e.eventBus.Publish(events.NewMatchEndedEvent(e.matchID, winner, time.Since(e.startTime), e.ms.Turn, reason))
}

// Public accessors
func (e *Engine) MatchState() MatchState { return *e.ms }
func (e *Engine) IsGameOver() bool { return e.phase == PhaseEnded }
func (e *Engine) Phase() Phase { return e.phase }
func (e *Engine) Turn() int { return e.ms.Turn }
func (e *Engine) ToMove() core.Team { return e.ms.ToMove }
func (e *Engine) MatchID() string { return e.matchID }
func (e *Engine) EndReason() string { return e.endReason }
func (e *Engine) EventBus() *events.EventBus { return e.eventBus }
func (e *Engine) Logger() zerolog.Logger { return e.logger }
func (e *Engine) Rand() *rand.Rand { return e.rng }
func (e *Engine) LegalMoves() *rules.LegalMoveCalculator { return e.legalMoves }

// Snapshot returns a copy of the board for agents to plan against
func (e *Engine) Snapshot() *core.Board { return e.ms.Board.Clone() }

// Winner returns the winning side, or core.TeamNone if the match is running or drawn
func (e *Engine) Winner() core.Team {
	if !e.IsGameOver() {
		return core.TeamNone
	}
	return e.winner
}

package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/events"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/processor"
)

// TurnProcessor handles the orchestration of a single turn
type TurnProcessor struct {
	engine *Engine
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(engine *Engine) *TurnProcessor {
	return &TurnProcessor{
		engine: engine,
		logger: engine.logger,
	}
}

// ProcessTurn runs one side's turn: apply its orders, record the outcome,
// pass the move to the opponent and check for the end of the match.
func (tp *TurnProcessor) ProcessTurn(ctx context.Context, actions []core.Action) error {
	if err := tp.checkContext(ctx, "before starting"); err != nil {
		return err
	}
	if err := tp.validateGameState(); err != nil {
		return err
	}

	ms := tp.engine.ms
	team := ms.ToMove
	turnLogger := tp.logger.With().Int("turn", ms.Turn).Stringer("team", team).Logger()
	turnLogger.Debug().Msg("Starting game step")

	turnStartTime := time.Now()
	outcome, err := tp.processActionsPhase(ctx, team, actions, turnLogger)
	if err != nil {
		return err
	}

	tp.engine.recordOutcome(team, outcome)
	tp.engine.eventBus.Publish(events.NewTurnEndedEvent(
		tp.engine.matchID, ms.Turn, team, outcome.Applied, len(outcome.Rejected), time.Since(turnStartTime)))
	tp.endTurn(team)

	tp.engine.checkGameOver(turnLogger)

	turnLogger.Debug().Msg("Game step finished")
	return nil
}

// checkContext checks if the context is cancelled
func (tp *TurnProcessor) checkContext(ctx context.Context, phase string) error {
	select {
	case <-ctx.Done():
		tp.logger.Warn().
			Err(ctx.Err()).
			Int("turn", tp.engine.ms.Turn).
			Str("phase", phase).
			Msg("Game step cancelled or timed out")
		return ctx.Err()
	default:
		return nil
	}
}

// validateGameState ensures the match can receive orders
func (tp *TurnProcessor) validateGameState() error {
	if tp.engine.IsGameOver() {
		tp.logger.Warn().
			Int("turn", tp.engine.ms.Turn).
			Msg("Attempted to step match that is already over")
		return core.WrapGameStateError(tp.engine.ms.Turn, "step", core.ErrGameOver)
	}

	phase := tp.engine.phase
	if !phase.CanReceiveActions() {
		tp.logger.Warn().
			Stringer("current_phase", phase).
			Int("turn", tp.engine.ms.Turn).
			Msg("Attempted to step match in phase that cannot receive actions")
		return fmt.Errorf("match is in %s phase and cannot receive actions", phase)
	}
	return nil
}

// processActionsPhase applies the orders. Rejected orders are reported as
// events and do not fail the turn; only cancellation does.
func (tp *TurnProcessor) processActionsPhase(ctx context.Context, team core.Team, actions []core.Action, turnLogger zerolog.Logger) (processor.Outcome, error) {
	turnLogger.Debug().Int("num_actions_submitted", len(actions)).Msg("Processing actions")

	outcome, err := tp.engine.actionProcessor.ProcessActions(ctx, tp.engine.ms.Board, team, actions)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return outcome, core.WrapGameStateError(tp.engine.ms.Turn, "action processing", fmt.Errorf("context cancelled: %w", err))
	}
	if err != nil {
		turnLogger.Debug().Err(err).Int("rejected", len(outcome.Rejected)).Msg("Some actions were rejected")
	}

	for _, r := range outcome.Rejected {
		tp.engine.eventBus.Publish(events.NewActionRejectedEvent(tp.engine.matchID, tp.engine.ms.Turn, r.Action, r.Err))
	}
	for i := range outcome.Kills {
		tp.engine.eventBus.Publish(events.NewUnitKilledEvent(tp.engine.matchID, tp.engine.ms.Turn, &outcome.Kills[i]))
	}

	turnLogger.Debug().Msg("Finished processing actions")
	return outcome, nil
}

// endTurn hands the move to the other side
func (tp *TurnProcessor) endTurn(team core.Team) {
	tp.engine.ms.Turn++
	tp.engine.ms.ToMove = team.Opponent()
}

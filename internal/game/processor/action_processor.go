// Package processor applies committed orders to the host board
package processor

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

// Rejection records an order the host refused
type Rejection struct {
	Action core.Action
	Err    error
}

// Outcome is what one side's orders did to the board
type Outcome struct {
	Applied  int
	Kills    []core.KillDetails
	Rejected []Rejection
}

// ActionProcessor handles the processing of one side's orders during a turn
type ActionProcessor struct {
	logger zerolog.Logger
}

// NewActionProcessor creates a new action processor
func NewActionProcessor(logger zerolog.Logger) *ActionProcessor {
	return &ActionProcessor{
		logger: logger.With().Str("component", "ActionProcessor").Logger(),
	}
}

// ProcessActions applies team's orders in unit id order. Orders from units
// that died earlier in the turn are skipped. Invalid orders are rejected and
// the rest still run; the first rejection is returned as the error.
func (ap *ActionProcessor) ProcessActions(ctx context.Context, board *core.Board, team core.Team, actions []core.Action) (Outcome, error) {
	ap.logger.Debug().Int("count", len(actions)).Msg("Sorting actions for deterministic processing")
	actions = slices.Clone(actions)
	slices.SortStableFunc(actions, func(a, b core.Action) int {
		return a.GetUnitID() - b.GetUnitID()
	})

	var outcome Outcome
	var encounteredError error
	reject := func(action core.Action, err error) {
		wrappedErr := core.WrapActionError(action, err)
		ap.logger.Error().Err(wrappedErr).
			Str("team", team.String()).
			Str("action", action.String()).
			Msg("Failed to apply action")
		outcome.Rejected = append(outcome.Rejected, Rejection{Action: action, Err: wrappedErr})
		if encounteredError == nil {
			encounteredError = wrappedErr
		}
	}

	for _, action := range actions {
		select {
		case <-ctx.Done():
			ap.logger.Warn().Err(ctx.Err()).Msg("Action processing interrupted by context cancellation")
			return outcome, ctx.Err()
		default:
		}

		unitID := action.GetUnitID()
		unit, alive := board.Units[unitID]
		if !alive {
			ap.logger.Debug().Int("unit_id", unitID).Msg("Ignoring action from dead or unknown unit")
			continue
		}
		if unit.Team != team {
			reject(action, core.ErrNotYourTurn)
			continue
		}

		ap.logger.Debug().Int("unit_id", unitID).Str("action", action.String()).Msg("Applying action")
		switch act := action.(type) {
		case *core.MoveAction:
			if err := core.ApplyMoveAction(board, act); err != nil {
				reject(act, err)
				continue
			}
		case *core.AttackAction:
			kill, err := core.ApplyAttackAction(board, act)
			if err != nil {
				reject(act, err)
				continue
			}
			if kill != nil {
				ap.logger.Debug().
					Int("unit_id", kill.UnitID).
					Int("killed_by", kill.KilledBy).
					Msg("Attack killed target")
				outcome.Kills = append(outcome.Kills, *kill)
			}
		default:
			ap.logger.Warn().Int("unit_id", unitID).Str("action_type", core.GetActionType(action)).Msg("Unhandled action type in ProcessActions")
			continue
		}
		outcome.Applied++
	}

	return outcome, encounteredError
}

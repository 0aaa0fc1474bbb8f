package agent

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/rules"
)

// ArcherAgent is the scripted archer policy: every archer shoots the first
// footman in range and otherwise holds its ground.
type ArcherAgent struct {
	logger     zerolog.Logger
	legalMoves *rules.LegalMoveCalculator
}

// NewArcherAgent creates the scripted archer policy
func NewArcherAgent(logger zerolog.Logger) *ArcherAgent {
	return &ArcherAgent{
		logger:     logger.With().Str("component", "ArcherAgent").Logger(),
		legalMoves: rules.NewLegalMoveCalculator(),
	}
}

func (a *ArcherAgent) Name() string    { return "archer" }
func (a *ArcherAgent) Team() core.Team { return core.TeamArchers }

// Decide never fails; archers with nobody in range get no order
func (a *ArcherAgent) Decide(board *core.Board) (map[int]core.Action, error) {
	orders := make(map[int]core.Action)
	for _, id := range board.UnitIDs(core.TeamArchers) {
		targets := a.legalMoves.Targets(board, id)
		if len(targets) == 0 {
			continue
		}
		orders[id] = core.NewAttackAction(id, targets[0])
		a.logger.Debug().Int("unit_id", id).Int("target_id", targets[0]).Msg("Shooting")
	}
	return orders, nil
}

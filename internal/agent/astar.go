package agent

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/tactical-minimax/internal/common"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/pathing"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/rules"
)

// plan is what the A* agent remembers about one footman between turns
type plan struct {
	goal    int
	path    []core.Coordinate
	blocker *core.Coordinate // where the blocking archer stood when last seen
	delay   int              // turns left to keep replanning after the blocker moved
}

// AstarAgent walks every footman along an A* path to the first archer and
// attacks it once in range. Any other archer is treated as a moving
// obstacle: the path is replanned when it steps onto the path, and for a few
// turns after it moves.
type AstarAgent struct {
	replanDelay int
	logger      zerolog.Logger
	legalMoves  *rules.LegalMoveCalculator
	plans       map[int]*plan
	replans     int
}

// NewAstarAgent creates a path-following footman agent
func NewAstarAgent(replanDelay int, logger zerolog.Logger) *AstarAgent {
	return &AstarAgent{
		replanDelay: replanDelay,
		logger:      logger.With().Str("component", "AstarAgent").Logger(),
		legalMoves:  rules.NewLegalMoveCalculator(),
		plans:       make(map[int]*plan),
	}
}

func (a *AstarAgent) Name() string    { return "astar" }
func (a *AstarAgent) Team() core.Team { return core.TeamFootmen }

// Replans returns how many paths were computed so far
func (a *AstarAgent) Replans() int { return a.replans }

// Decide issues one order per footman that can make progress
func (a *AstarAgent) Decide(board *core.Board) (map[int]core.Action, error) {
	orders := make(map[int]core.Action)
	archers := board.UnitIDs(core.TeamArchers)
	if len(archers) == 0 {
		return orders, nil
	}
	goal := board.Units[archers[0]]
	var blocker *core.Coordinate
	if len(archers) > 1 {
		pos := board.Units[archers[1]].Pos
		blocker = &pos
	}

	for _, id := range board.UnitIDs(core.TeamFootmen) {
		if action := a.decideUnit(board, board.Units[id], goal, blocker); action != nil {
			orders[id] = action
		}
	}
	return orders, nil
}

func (a *AstarAgent) decideUnit(board *core.Board, unit, goal *core.Unit, blocker *core.Coordinate) core.Action {
	logger := a.logger.With().Int("unit_id", unit.ID).Logger()

	if slices.Contains(a.legalMoves.Targets(board, unit.ID), goal.ID) {
		logger.Debug().Int("target_id", goal.ID).Msg("Attacking goal")
		return core.NewAttackAction(unit.ID, goal.ID)
	}

	p := a.plans[unit.ID]
	if p == nil || p.goal != goal.ID || a.shouldReplan(p, blocker) {
		p = a.replan(board, unit, goal, blocker, p)
	}

	// Drop the step the unit just completed
	if len(p.path) > 0 && p.path[0] == unit.Pos {
		p.path = p.path[1:]
	}
	// The plan no longer starts next to the unit
	if len(p.path) > 0 && !common.IsAdjacent(unit.Pos, p.path[0]) {
		p = a.replan(board, unit, goal, blocker, p)
	}

	if len(p.path) > 0 {
		next := p.path[0]
		if friend, occupied := board.UnitAt(next); occupied && friend.ID != unit.ID {
			// A friendly footman stands in the way; route around it this turn
			p = a.replan(board, unit, goal, &friend.Pos, p)
			if len(p.path) == 0 {
				return nil
			}
			next = p.path[0]
		}
		logger.Debug().Stringer("next", next).Msg("Following path")
		return core.NewMoveAction(unit.ID, unit.Pos.DirectionTo(next))
	}

	// Path exhausted next to the goal but out of reach, e.g. diagonal to it
	if common.IsAdjacent(unit.Pos, goal.Pos) {
		return a.closeIn(board, unit, goal)
	}
	logger.Debug().Msg("No path to goal, holding")
	return nil
}

// shouldReplan reports whether the blocker stands on the path or has moved.
// A move also forces a replan on each of the next replanDelay turns.
func (a *AstarAgent) shouldReplan(p *plan, blocker *core.Coordinate) bool {
	moved := false
	switch {
	case blocker == nil:
		moved = p.blocker != nil
	case p.blocker == nil || *p.blocker != *blocker:
		moved = true
	}
	if moved {
		p.delay = a.replanDelay
		return true
	}
	if p.delay > 0 {
		p.delay--
		return true
	}
	return blocker != nil && slices.Contains(p.path, *blocker)
}

func (a *AstarAgent) replan(board *core.Board, unit, goal *core.Unit, blocker *core.Coordinate, prev *plan) *plan {
	a.replans++
	path, ok := pathing.FindPath(board.Grid, unit.Pos, goal.Pos, blocker)
	if !ok {
		a.logger.Debug().Int("unit_id", unit.ID).Stringer("goal", goal.Pos).Msg("Goal unreachable")
	}

	p := &plan{goal: goal.ID, path: path, blocker: a.archerBlocker(board, goal.ID)}
	if prev != nil && prev.goal == goal.ID {
		p.delay = prev.delay
	}
	a.plans[unit.ID] = p
	return p
}

// archerBlocker returns where the first archer other than the goal stands
func (a *AstarAgent) archerBlocker(board *core.Board, goalID int) *core.Coordinate {
	for _, id := range board.UnitIDs(core.TeamArchers) {
		if id != goalID {
			pos := board.Units[id].Pos
			return &pos
		}
	}
	return nil
}

// closeIn steps from a diagonal neighbour of goal onto a cell that shares a
// row or column with it.
func (a *AstarAgent) closeIn(board *core.Board, unit, goal *core.Unit) core.Action {
	delta := goal.Pos.Sub(unit.Pos)
	for _, step := range []core.Coordinate{{X: delta.X}, {Y: delta.Y}} {
		if step == (core.Coordinate{}) {
			continue
		}
		move := core.NewMoveAction(unit.ID, unit.Pos.DirectionTo(unit.Pos.Add(step)))
		if move.Validate(board) == nil {
			return move
		}
	}
	return nil
}

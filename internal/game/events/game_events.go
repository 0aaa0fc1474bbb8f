package events

import (
	"time"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

// Event type constants
const (
	TypeMatchStarted    = "match.started"
	TypeMatchEnded      = "match.ended"
	TypeTurnEnded       = "turn.ended"
	TypeActionRejected  = "action.rejected"
	TypeUnitKilled      = "unit.killed"
	TypeSearchCompleted = "search.completed"
)

// MatchStartedEvent is published when a match begins
type MatchStartedEvent struct {
	BaseEvent
	MapWidth     int
	MapHeight    int
	Footmen      int
	Archers      int
	FootmanAgent string
}

// NewMatchStartedEvent creates a new MatchStartedEvent
func NewMatchStartedEvent(matchID string, width, height, footmen, archers int, footmanAgent string) *MatchStartedEvent {
	return &MatchStartedEvent{
		BaseEvent:    newBase(TypeMatchStarted, matchID),
		MapWidth:     width,
		MapHeight:    height,
		Footmen:      footmen,
		Archers:      archers,
		FootmanAgent: footmanAgent,
	}
}

// MatchEndedEvent is published when a match ends, by elimination or by the turn limit
type MatchEndedEvent struct {
	BaseEvent
	Winner    core.Team
	Duration  time.Duration
	FinalTurn int
	Reason    string
}

// NewMatchEndedEvent creates a new MatchEndedEvent
func NewMatchEndedEvent(matchID string, winner core.Team, duration time.Duration, finalTurn int, reason string) *MatchEndedEvent {
	return &MatchEndedEvent{
		BaseEvent: newBase(TypeMatchEnded, matchID),
		Winner:    winner,
		Duration:  duration,
		FinalTurn: finalTurn,
		Reason:    reason,
	}
}

// TurnEndedEvent is published after one side's actions have been applied
type TurnEndedEvent struct {
	BaseEvent
	TurnNumber    int
	Team          core.Team
	ActionsCount  int
	Rejected      int
	ProcessedTime time.Duration
}

// NewTurnEndedEvent creates a new TurnEndedEvent
func NewTurnEndedEvent(matchID string, turn int, team core.Team, actionsCount, rejected int, processedTime time.Duration) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:     newBase(TypeTurnEnded, matchID),
		TurnNumber:    turn,
		Team:          team,
		ActionsCount:  actionsCount,
		Rejected:      rejected,
		ProcessedTime: processedTime,
	}
}

// ActionRejectedEvent is published when the host refuses a committed action
type ActionRejectedEvent struct {
	BaseEvent
	TurnNumber int
	UnitID     int
	Action     string
	Reason     string
}

// NewActionRejectedEvent creates a new ActionRejectedEvent
func NewActionRejectedEvent(matchID string, turn int, action core.Action, reason error) *ActionRejectedEvent {
	return &ActionRejectedEvent{
		BaseEvent:  newBase(TypeActionRejected, matchID),
		TurnNumber: turn,
		UnitID:     action.GetUnitID(),
		Action:     action.String(),
		Reason:     reason.Error(),
	}
}

// UnitKilledEvent is published when a unit's hit points reach zero
type UnitKilledEvent struct {
	BaseEvent
	TurnNumber int
	UnitID     int
	Team       core.Team
	Position   core.Coordinate
	KilledBy   int
}

// NewUnitKilledEvent creates a new UnitKilledEvent
func NewUnitKilledEvent(matchID string, turn int, kill *core.KillDetails) *UnitKilledEvent {
	return &UnitKilledEvent{
		BaseEvent:  newBase(TypeUnitKilled, matchID),
		TurnNumber: turn,
		UnitID:     kill.UnitID,
		Team:       kill.Team,
		Position:   kill.Pos,
		KilledBy:   kill.KilledBy,
	}
}

// SearchCompletedEvent is published by the minimax agent after every decision
type SearchCompletedEvent struct {
	BaseEvent
	Team    core.Team
	Depth   int
	Value   float64
	Nodes   int
	Leaves  int
	Cutoffs int
	Elapsed time.Duration
}

// NewSearchCompletedEvent creates a new SearchCompletedEvent
func NewSearchCompletedEvent(matchID string, team core.Team, depth int, value float64, nodes, leaves, cutoffs int, elapsed time.Duration) *SearchCompletedEvent {
	return &SearchCompletedEvent{
		BaseEvent: newBase(TypeSearchCompleted, matchID),
		Team:      team,
		Depth:     depth,
		Value:     value,
		Nodes:     nodes,
		Leaves:    leaves,
		Cutoffs:   cutoffs,
		Elapsed:   elapsed,
	}
}

// Package subscribers holds event bus subscribers
package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables logging of the full event payload
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("match_id", event.MatchID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.MatchStartedEvent:
		logEvent.
			Int("map_width", e.MapWidth).
			Int("map_height", e.MapHeight).
			Int("footmen", e.Footmen).
			Int("archers", e.Archers).
			Str("footman_agent", e.FootmanAgent)

	case *events.MatchEndedEvent:
		logEvent.
			Stringer("winner", e.Winner).
			Dur("duration", e.Duration).
			Int("final_turn", e.FinalTurn).
			Str("reason", e.Reason)

	case *events.TurnEndedEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Stringer("team", e.Team).
			Int("actions_count", e.ActionsCount).
			Int("rejected", e.Rejected).
			Dur("process_time", e.ProcessedTime)

	case *events.ActionRejectedEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Int("unit_id", e.UnitID).
			Str("action", e.Action).
			Str("reason", e.Reason)

	case *events.UnitKilledEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Int("unit_id", e.UnitID).
			Stringer("team", e.Team).
			Int("x", e.Position.X).
			Int("y", e.Position.Y).
			Int("killed_by", e.KilledBy)

	case *events.SearchCompletedEvent:
		logEvent.
			Stringer("team", e.Team).
			Int("depth", e.Depth).
			Float64("value", e.Value).
			Int("nodes", e.Nodes).
			Int("leaves", e.Leaves).
			Int("cutoffs", e.Cutoffs).
			Dur("elapsed", e.Elapsed)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Match event")
}

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/state"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate validates the configuration values
func Validate(c *Config) error {
	// Search; depth <= 0 is allowed and degrades to a one-ply comparison
	if _, err := state.ParseChildMode(c.Search.ChildMode); err != nil {
		return invalid("search.child_mode: %v", err)
	}

	// Match
	if c.Match.MaxTurns < 0 {
		return invalid("match.max_turns must be non-negative")
	}
	if c.Match.FootmanAgent != AgentMinimax && c.Match.FootmanAgent != AgentAstar {
		return invalid("match.footman_agent must be %q or %q", AgentMinimax, AgentAstar)
	}

	// Map generation only matters without a scenario file
	if c.Match.ScenarioFile == "" {
		if c.Map.Width < 2 || c.Map.Height < 1 {
			return invalid("map must be at least 2x1")
		}
		if c.Map.ObstacleRatio < 0 || c.Map.ObstacleRatio >= 1 {
			return invalid("map.obstacle_ratio must be in [0, 1)")
		}
		if c.Map.Footmen < 1 || c.Map.Footmen > c.Map.Height {
			return invalid("map.footmen must be between 1 and map.height")
		}
		if c.Map.Archers < 0 || c.Map.Archers > c.Map.Height {
			return invalid("map.archers must be between 0 and map.height")
		}
	}

	// Units
	if err := validateUnit(c.Units.Footman, "units.footman"); err != nil {
		return err
	}
	if err := validateUnit(c.Units.Archer, "units.archer"); err != nil {
		return err
	}

	if c.Astar.ReplanDelay < 0 {
		return invalid("astar.replan_delay must be non-negative")
	}

	// Logging
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return invalid("logging.level %q: %v", c.Logging.Level, err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return invalid("logging.format must be console or json")
	}

	return nil
}

// validateUnit checks that a unit template can fight
func validateUnit(u UnitConfig, field string) error {
	if u.HP <= 0 {
		return invalid("%s.hp must be positive", field)
	}
	if u.Damage <= 0 {
		return invalid("%s.damage must be positive", field)
	}
	if u.Range < 1 {
		return invalid("%s.range must be at least 1", field)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

package config

import (
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/scenario"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/state"
)

// Template converts the settings to a combat template
func (u UnitConfig) Template() core.UnitTemplate {
	return core.UnitTemplate{Range: u.Range, Damage: u.Damage, BaseHP: u.HP}
}

// ScenarioMap returns the random map settings in the generator's terms
func (c *Config) ScenarioMap() scenario.MapConfig {
	return scenario.MapConfig{
		Width:           c.Map.Width,
		Height:          c.Map.Height,
		ObstacleRatio:   c.Map.ObstacleRatio,
		Footmen:         c.Map.Footmen,
		Archers:         c.Map.Archers,
		FootmanTemplate: c.Units.Footman.Template(),
		ArcherTemplate:  c.Units.Archer.Template(),
	}
}

// ChildMode returns the parsed search.child_mode
func (c *Config) ChildMode() state.ChildMode {
	// Validate already rejected unknown names
	mode, _ := state.ParseChildMode(c.Search.ChildMode)
	return mode
}

// Package config loads match, search and logging settings through viper.
// Values come from defaults, then an optional YAML file, then TMM_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Match   MatchConfig   `mapstructure:"match"`
	Map     MapConfig     `mapstructure:"map"`
	Units   UnitsConfig   `mapstructure:"units"`
	Astar   AstarConfig   `mapstructure:"astar"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SearchConfig holds the minimax agent settings
type SearchConfig struct {
	Depth        int    `mapstructure:"depth"`
	ChildMode    string `mapstructure:"child_mode"`
	MoveOrdering bool   `mapstructure:"move_ordering"`
}

// MatchConfig holds settings for a single match
type MatchConfig struct {
	MaxTurns     int    `mapstructure:"max_turns"`
	ScenarioFile string `mapstructure:"scenario_file"`
	Seed         int64  `mapstructure:"seed"` // 0 seeds from the clock
	FootmanAgent string `mapstructure:"footman_agent"`
}

// MapConfig holds random map generation settings, used when no scenario file is given
type MapConfig struct {
	Width         int     `mapstructure:"width"`
	Height        int     `mapstructure:"height"`
	ObstacleRatio float64 `mapstructure:"obstacle_ratio"`
	Footmen       int     `mapstructure:"footmen"`
	Archers       int     `mapstructure:"archers"`
}

// UnitsConfig holds the combat templates of both sides
type UnitsConfig struct {
	Footman UnitConfig `mapstructure:"footman"`
	Archer  UnitConfig `mapstructure:"archer"`
}

// UnitConfig holds one unit template
type UnitConfig struct {
	HP     int     `mapstructure:"hp"`
	Damage int     `mapstructure:"damage"`
	Range  float64 `mapstructure:"range"`
}

// AstarConfig holds the path-following agent settings
type AstarConfig struct {
	ReplanDelay int `mapstructure:"replan_delay"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// Footman agent names
const (
	AgentMinimax = "minimax"
	AgentAstar   = "astar"
)

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Search defaults
	v.SetDefault("search.depth", 2)
	v.SetDefault("search.child_mode", "side_to_move")
	v.SetDefault("search.move_ordering", true)

	// Match defaults
	v.SetDefault("match.max_turns", 100)
	v.SetDefault("match.scenario_file", "")
	v.SetDefault("match.seed", 0)
	v.SetDefault("match.footman_agent", AgentMinimax)

	// Map defaults
	v.SetDefault("map.width", 8)
	v.SetDefault("map.height", 6)
	v.SetDefault("map.obstacle_ratio", 0.1)
	v.SetDefault("map.footmen", 2)
	v.SetDefault("map.archers", 2)

	// Unit templates
	v.SetDefault("units.footman.hp", 160)
	v.SetDefault("units.footman.damage", 10)
	v.SetDefault("units.footman.range", 1.0)
	v.SetDefault("units.archer.hp", 50)
	v.SetDefault("units.archer.damage", 6)
	v.SetDefault("units.archer.range", 8.0)

	v.SetDefault("astar.replan_delay", 2)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/tactical-minimax")
	}

	// TMM_SEARCH_DEPTH overrides search.depth
	v.SetEnvPrefix("TMM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// No config in the default locations; use defaults
		case configPath != "" && errors.Is(err, fs.ErrNotExist):
			// Specific file requested but not found; use defaults
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	cfg = c
	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates, e.g. from command line flags
func Set(key string, value any) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	_ = v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. An edit that fails
// validation is reported to onChange and the previous values stay in effect.
func WatchConfig(onChange func(*Config, error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		err := v.Unmarshal(next)
		if err == nil {
			err = Validate(next)
		}
		if err == nil {
			*cfg = *next
		}
		if onChange != nil {
			onChange(cfg, err)
		}
	})
	v.WatchConfig()
}

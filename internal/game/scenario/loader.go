// Package scenario loads battle maps from YAML and generates random ones
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/tactical-minimax/internal/common"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

// ErrInvalidScenario is returned for scenario files that parse but make no sense
var ErrInvalidScenario = errors.New("invalid scenario")

// yamlScenario is the top-level YAML structure for scenario files.
type yamlScenario struct {
	Width     int                     `yaml:"width"`
	Height    int                     `yaml:"height"`
	Obstacles []yamlCell              `yaml:"obstacles,omitempty"`
	Templates map[string]yamlTemplate `yaml:"templates"`
	Units     []yamlUnit              `yaml:"units"`
}

// yamlCell is one grid cell.
type yamlCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// yamlTemplate holds a team's combat parameters.
type yamlTemplate struct {
	HP     int     `yaml:"hp"`
	Damage int     `yaml:"damage"`
	Range  float64 `yaml:"range"`
}

// yamlUnit is one unit placement. A zero hp means full health.
type yamlUnit struct {
	ID   int    `yaml:"id"`
	Team string `yaml:"team"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	HP   int    `yaml:"hp,omitempty"`
}

// Load reads and validates a scenario file.
func Load(path string) (*core.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a board from scenario YAML.
func Parse(data []byte) (*core.Board, error) {
	var file yamlScenario
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	return convertYAMLScenario(file)
}

func convertYAMLScenario(ys yamlScenario) (*core.Board, error) {
	if ys.Width <= 0 || ys.Height <= 0 {
		return nil, fmt.Errorf("%w: map is %dx%d", ErrInvalidScenario, ys.Width, ys.Height)
	}

	obstacles := make([]core.Coordinate, 0, len(ys.Obstacles))
	for _, c := range ys.Obstacles {
		pos := core.NewCoordinate(c.X, c.Y)
		if !common.IsValidCoordinate(c.X, c.Y, ys.Width, ys.Height) {
			return nil, fmt.Errorf("%w: obstacle %s is off the map", ErrInvalidScenario, pos)
		}
		obstacles = append(obstacles, pos)
	}
	board := core.NewBoard(core.NewObstacleGrid(ys.Width, ys.Height, obstacles))

	for name, yt := range ys.Templates {
		team, err := core.ParseTeam(name)
		if err != nil {
			return nil, fmt.Errorf("%w: template: %w", ErrInvalidScenario, err)
		}
		if yt.HP <= 0 || yt.Damage < 0 || yt.Range < 0 {
			return nil, fmt.Errorf("%w: template %s has hp=%d damage=%d range=%g", ErrInvalidScenario, name, yt.HP, yt.Damage, yt.Range)
		}
		board.SetTemplate(team, core.UnitTemplate{Range: yt.Range, Damage: yt.Damage, BaseHP: yt.HP})
	}
	for _, team := range core.Teams {
		if _, ok := board.Template(team); !ok {
			return nil, fmt.Errorf("%w: no template for %s", ErrInvalidScenario, team)
		}
	}

	for _, yu := range ys.Units {
		team, err := core.ParseTeam(yu.Team)
		if err != nil {
			return nil, fmt.Errorf("%w: unit %d: %w", ErrInvalidScenario, yu.ID, err)
		}
		hp := yu.HP
		if hp == 0 {
			hp = board.Templates[team].BaseHP
		}
		u := core.Unit{ID: yu.ID, Team: team, Pos: core.NewCoordinate(yu.X, yu.Y), HP: hp}
		if err := board.AddUnit(u); err != nil {
			return nil, fmt.Errorf("%w: unit %d at %s: %w", ErrInvalidScenario, yu.ID, u.Pos, err)
		}
	}
	return board, nil
}

// Marshal renders a board as scenario YAML that Parse accepts.
func Marshal(board *core.Board) ([]byte, error) {
	ys := yamlScenario{
		Width:     board.Width(),
		Height:    board.Height(),
		Templates: make(map[string]yamlTemplate, len(core.Teams)),
	}
	for _, c := range board.Obstacles() {
		ys.Obstacles = append(ys.Obstacles, yamlCell{X: c.X, Y: c.Y})
	}
	for _, team := range core.Teams {
		if tmpl, ok := board.Template(team); ok {
			ys.Templates[team.String()] = yamlTemplate{HP: tmpl.BaseHP, Damage: tmpl.Damage, Range: tmpl.Range}
		}
		for _, id := range board.UnitIDs(team) {
			u, _ := board.Unit(id)
			ys.Units = append(ys.Units, yamlUnit{ID: u.ID, Team: team.String(), X: u.Pos.X, Y: u.Pos.Y, HP: u.HP})
		}
	}

	data, err := yaml.Marshal(&ys)
	if err != nil {
		return nil, fmt.Errorf("encoding scenario YAML: %w", err)
	}
	return data, nil
}

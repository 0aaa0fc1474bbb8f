package game

import (
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/processor"
)

// TeamStats is the per-side scoreboard of a match
type TeamStats struct {
	Alive    int
	TotalHP  int
	Kills    int
	Losses   int
	Applied  int // orders carried out
	Rejected int // orders the host refused
}

func newTeamStats(board *core.Board) map[core.Team]*TeamStats {
	stats := make(map[core.Team]*TeamStats, len(core.Teams))
	for _, team := range core.Teams {
		stats[team] = &TeamStats{}
	}
	refreshTeamStats(board, stats)
	return stats
}

// refreshTeamStats recounts the live units and hit points of each side
func refreshTeamStats(board *core.Board, stats map[core.Team]*TeamStats) {
	for _, team := range core.Teams {
		s := stats[team]
		s.Alive = board.Alive(team)
		s.TotalHP = 0
		for _, id := range board.UnitIDs(team) {
			s.TotalHP += board.Units[id].HP
		}
	}
}

// recordOutcome folds one turn's results into the scoreboard
func (e *Engine) recordOutcome(team core.Team, outcome processor.Outcome) {
	s := e.stats[team]
	s.Applied += outcome.Applied
	s.Rejected += len(outcome.Rejected)
	for _, kill := range outcome.Kills {
		s.Kills++
		e.stats[kill.Team].Losses++
	}
	refreshTeamStats(e.ms.Board, e.stats)
	e.logger.Debug().
		Stringer("team", team).
		Int("applied", outcome.Applied).
		Int("kills", len(outcome.Kills)).
		Int("footmen_hp", e.stats[core.TeamFootmen].TotalHP).
		Int("archers_hp", e.stats[core.TeamArchers].TotalHP).
		Msg("Team stats updated")
}

// Stats returns a copy of the scoreboard for team
func (e *Engine) Stats(team core.Team) TeamStats {
	s, ok := e.stats[team]
	if !ok {
		return TeamStats{}
	}
	return *s
}

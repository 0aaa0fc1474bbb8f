package agent

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/events"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/search"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/state"
)

// MinimaxAgent plays the footmen by searching a fixed number of plies ahead
type MinimaxAgent struct {
	depth     int
	mode      state.ChildMode
	ordering  bool
	logger    zerolog.Logger
	publisher events.Publisher
	matchID   string
	searcher  *search.Searcher
	last      search.Result
}

// MinimaxOption configures a MinimaxAgent
type MinimaxOption func(*MinimaxAgent)

// WithChildMode selects which side's units move in each generated child
func WithChildMode(mode state.ChildMode) MinimaxOption {
	return func(a *MinimaxAgent) { a.mode = mode }
}

// WithMoveOrdering toggles ordering children by immediate utility
func WithMoveOrdering(enabled bool) MinimaxOption {
	return func(a *MinimaxAgent) { a.ordering = enabled }
}

// WithLogger sets the logger for search summaries and chosen orders
func WithLogger(logger zerolog.Logger) MinimaxOption {
	return func(a *MinimaxAgent) { a.logger = logger }
}

// WithPublisher reports every search as a SearchCompleted event for matchID
func WithPublisher(pub events.Publisher, matchID string) MinimaxOption {
	return func(a *MinimaxAgent) {
		a.publisher = pub
		a.matchID = matchID
	}
}

// NewMinimaxAgent creates an agent that searches depth plies per decision
func NewMinimaxAgent(depth int, opts ...MinimaxOption) *MinimaxAgent {
	a := &MinimaxAgent{
		depth:     depth,
		mode:      state.SideToMove,
		ordering:  true,
		logger:    zerolog.Nop(),
		publisher: events.NopPublisher{},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With().Str("component", "MinimaxAgent").Logger()
	a.searcher = search.NewSearcher(a.logger, search.WithMoveOrdering(a.ordering))
	return a
}

func (a *MinimaxAgent) Name() string    { return "minimax" }
func (a *MinimaxAgent) Team() core.Team { return core.TeamFootmen }

// Depth returns the configured search depth
func (a *MinimaxAgent) Depth() int { return a.depth }

// LastResult returns the result of the most recent search
func (a *MinimaxAgent) LastResult() search.Result { return a.last }

// Decide searches from board with the footmen to move and returns one order
// per acting footman. A board that is already decided yields no orders.
// search.ErrNoLegalMove is returned when no footman can act, including when
// the best both-sides child is an archer reply.
func (a *MinimaxAgent) Decide(board *core.Board) (map[int]core.Action, error) {
	root, err := state.New(board, state.WithChildMode(a.mode))
	if err != nil {
		return nil, fmt.Errorf("building search root: %w", err)
	}

	res, err := a.searcher.Search(root, a.depth)
	if err != nil {
		return nil, err
	}
	a.last = res

	a.publisher.Publish(events.NewSearchCompletedEvent(
		a.matchID, a.Team(), max(a.depth, 1), res.Value,
		res.Stats.NodesVisited, res.Stats.LeavesEvaluated, res.Stats.Cutoffs, res.Stats.Elapsed))

	orders := make(map[int]core.Action)
	if res.Terminal {
		return orders, nil
	}

	// A both-sides child holds the actions of a single team
	for _, id := range root.Footmen() {
		if action, ok := res.Child.Actions[id]; ok {
			orders[id] = action
			a.logger.Debug().Int("unit_id", id).Str("action", action.String()).Msg("Chose action")
		}
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("%w: best child orders no footman", search.ErrNoLegalMove)
	}
	return orders, nil
}

// Package search picks a joint action for the side to move with a
// depth-limited minimax search using alpha-beta pruning.
package search

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/state"
)

// ErrNoLegalMove is returned when the root has no children to choose from.
// Callers skip the ply.
var ErrNoLegalMove = errors.New("no legal move")

// Stats describes the work done by one search call
type Stats struct {
	NodesVisited    int
	LeavesEvaluated int
	Cutoffs         int
	Elapsed         time.Duration
}

// Result is the outcome of a search. Child is nil when the root was already
// terminal.
type Result struct {
	Value    float64
	Child    *state.Child
	Terminal bool
	Stats    Stats
}

// Searcher runs alpha-beta searches. It holds no per-search state and may be
// reused across turns.
type Searcher struct {
	logger   zerolog.Logger
	ordering bool
}

// Option configures a Searcher
type Option func(*Searcher)

// WithMoveOrdering toggles sorting children by immediate utility before
// expanding them. On by default.
func WithMoveOrdering(enabled bool) Option {
	return func(s *Searcher) { s.ordering = enabled }
}

// NewSearcher creates a searcher that logs through logger
func NewSearcher(logger zerolog.Logger, opts ...Option) *Searcher {
	s := &Searcher{
		logger:   logger.With().Str("component", "search").Logger(),
		ordering: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// node caches a child's static utility for ordering
type node struct {
	child   state.Child
	utility float64
}

// run carries the counters of a single search call
type run struct {
	ordering bool
	stats    Stats
}

// Search looks depth plies ahead from root and returns the child the side to
// move should take along with its backed-up value. A depth below one only
// compares the immediate children. Inconsistent states panic.
func (s *Searcher) Search(root *state.GameState, depth int) (Result, error) {
	start := time.Now()
	depth = s.clampDepth(depth)
	r := &run{ordering: s.ordering}

	if root.IsTerminal() {
		r.stats.NodesVisited++
		r.stats.LeavesEvaluated++
		r.stats.Elapsed = time.Since(start)
		return Result{Value: root.Utility(), Terminal: true, Stats: r.stats}, nil
	}

	children := r.expand(root)
	if len(children) == 0 {
		return Result{}, fmt.Errorf("%w for %s", ErrNoLegalMove, root.Turn())
	}

	r.stats.NodesVisited++
	value, best := r.best(root.Turn(), children, depth, math.Inf(-1), math.Inf(1))
	chosen := children[best].child
	r.stats.Elapsed = time.Since(start)

	s.logger.Debug().
		Str("turn", root.Turn().String()).
		Int("depth", depth).
		Int("children", len(children)).
		Float64("value", value).
		Int("nodes", r.stats.NodesVisited).
		Int("leaves", r.stats.LeavesEvaluated).
		Int("cutoffs", r.stats.Cutoffs).
		Dur("elapsed", r.stats.Elapsed).
		Msg("Search completed")

	return Result{Value: value, Child: &chosen, Stats: r.stats}, nil
}

// Minimax computes the unpruned backed-up value of root with the same depth
// and terminal rules as Search. Children are expanded unordered; without
// pruning the order does not change the value.
func (s *Searcher) Minimax(root *state.GameState, depth int) float64 {
	return minimax(root, s.clampDepth(depth))
}

func minimax(gs *state.GameState, depth int) float64 {
	if depth == 0 || gs.IsTerminal() {
		return gs.Utility()
	}
	children := gs.Children()
	if len(children) == 0 {
		return gs.Utility()
	}

	maximizing := gs.Turn().IsMaximizing()
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, c := range children {
		v := minimax(c.State, depth-1)
		if maximizing {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}

func (s *Searcher) clampDepth(depth int) int {
	if depth > 0 {
		return depth
	}
	s.logger.Warn().Int("depth", depth).Msg("Non-positive search depth, comparing immediate children only")
	return 1
}

// value returns the backed-up value of gs. A non-terminal state whose side
// cannot act is scored as a leaf.
func (r *run) value(gs *state.GameState, depth int, alpha, beta float64) float64 {
	r.stats.NodesVisited++
	if depth == 0 || gs.IsTerminal() {
		r.stats.LeavesEvaluated++
		return gs.Utility()
	}

	children := r.expand(gs)
	if len(children) == 0 {
		r.stats.LeavesEvaluated++
		return gs.Utility()
	}
	v, _ := r.best(gs.Turn(), children, depth, alpha, beta)
	return v
}

// best backs up the children's values for the side to move and returns the
// value along with the index of the child that produced it. The first child
// reaching the best value wins ties.
func (r *run) best(turn core.Team, children []node, depth int, alpha, beta float64) (float64, int) {
	maximizing := turn.IsMaximizing()
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	bestIdx := -1

	for i, c := range children {
		v := r.value(c.child.State, depth-1, alpha, beta)
		if maximizing {
			if bestIdx < 0 || v > best {
				best, bestIdx = v, i
			}
			alpha = max(alpha, v)
		} else {
			if bestIdx < 0 || v < best {
				best, bestIdx = v, i
			}
			beta = min(beta, v)
		}
		if beta <= alpha {
			if i < len(children)-1 {
				r.stats.Cutoffs++
			}
			break
		}
	}
	return best, bestIdx
}

func (r *run) expand(gs *state.GameState) []node {
	children := gs.Children()
	nodes := make([]node, len(children))
	for i, c := range children {
		nodes[i].child = c
		if r.ordering {
			nodes[i].utility = c.State.Utility()
		}
	}
	if r.ordering {
		orderChildren(nodes)
	}
	return nodes
}

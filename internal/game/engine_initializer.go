package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/events"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/processor"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/rules"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/scenario"
)

// GameConfig holds what is needed to set up a match. When Board is nil a
// random board is generated from Map.
type GameConfig struct {
	Board        *core.Board
	Map          scenario.MapConfig
	Rng          *rand.Rand
	MatchID      string
	MaxTurns     int // 0 means no limit
	FootmanAgent string
	Logger       zerolog.Logger
	EventBus     *events.EventBus // optional; a fresh bus is created when nil
}

// EngineInitializer handles the initialization of a match engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// NewEngine creates a ready-to-step engine from cfg
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Initialize creates and initializes a new match engine
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled or timed out during initial phase")
		return nil, ctx.Err()
	default:
	}

	ei.setupDefaults()

	board, err := ei.loadBoard()
	if err != nil {
		return nil, fmt.Errorf("board setup failed: %w", err)
	}

	engine := ei.createEngine(board)
	ei.logger = engine.logger

	if err := engine.transition(PhaseRunning, "board ready"); err != nil {
		return nil, err
	}
	engine.startTime = time.Now()

	engine.eventBus.Publish(events.NewMatchStartedEvent(
		engine.matchID,
		board.Width(),
		board.Height(),
		board.Alive(core.TeamFootmen),
		board.Alive(core.TeamArchers),
		ei.config.FootmanAgent,
	))

	// A scenario may already be decided, e.g. one with no archers
	engine.checkGameOver(ei.logger.With().Str("phase", "init").Logger())

	ei.logger.Info().
		Int("width", board.Width()).
		Int("height", board.Height()).
		Int("footmen", board.Alive(core.TeamFootmen)).
		Int("archers", board.Alive(core.TeamArchers)).
		Int("max_turns", ei.config.MaxTurns).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults sets up default values for missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if ei.config.MatchID == "" {
		ei.config.MatchID = uuid.NewString()
	}
	if ei.config.EventBus == nil {
		ei.config.EventBus = events.NewEventBus(ei.config.Logger)
	}
}

// loadBoard clones the supplied board or generates one
func (ei *EngineInitializer) loadBoard() (*core.Board, error) {
	if ei.config.Board != nil {
		ei.logger.Debug().Msg("Using supplied board")
		return ei.config.Board.Clone(), nil
	}
	return scenario.Generate(ei.config.Map, ei.config.Rng)
}

// createEngine creates the engine with all its components
func (ei *EngineInitializer) createEngine(board *core.Board) *Engine {
	logger := ei.logger.With().Str("match_id", ei.config.MatchID).Logger()

	engine := &Engine{
		ms: &MatchState{
			Turn:   0,
			ToMove: core.TeamFootmen,
			Board:  board,
		},
		rng:             ei.config.Rng,
		phase:           PhaseSetup,
		winner:          core.TeamNone,
		maxTurns:        ei.config.MaxTurns,
		stats:           newTeamStats(board),
		logger:          logger,
		actionProcessor: processor.NewActionProcessor(logger),
		winCondition:    rules.NewWinConditionChecker(logger),
		legalMoves:      rules.NewLegalMoveCalculator(),
		eventBus:        ei.config.EventBus,
		matchID:         ei.config.MatchID,
	}
	engine.turnProcessor = NewTurnProcessor(engine)
	return engine
}

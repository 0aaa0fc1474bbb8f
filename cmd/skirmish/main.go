// Command skirmish plays one footmen-versus-archers match: the footmen are
// driven by the minimax or A* agent, the archers by the scripted policy.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/tactical-minimax/internal/agent"
	"github.com/mitchelldurbincs/tactical-minimax/internal/config"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/events"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/scenario"
	"github.com/mitchelldurbincs/tactical-minimax/internal/game/search"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	depth := flag.Int("depth", -1, "Search depth for the minimax agent (-1 to use config default)")
	agentName := flag.String("agent", "", "Footman agent: minimax or astar (empty to use config default)")
	scenarioFile := flag.String("scenario", "", "Scenario YAML file (empty to use config default or a random map)")
	seed := flag.Int64("seed", 0, "Random seed for map generation (0 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	writeScenario := flag.String("write-scenario", "", "Write the starting board to this YAML file")
	render := flag.Bool("render", true, "Print the board after every turn")
	watch := flag.Bool("watch", false, "Reload the log level when the config file changes")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	// Flags override the config file
	if *depth != -1 {
		config.Set("search.depth", *depth)
	}
	if *agentName != "" {
		config.Set("match.footman_agent", *agentName)
	}
	if *scenarioFile != "" {
		config.Set("match.scenario_file", *scenarioFile)
	}
	if *seed != 0 {
		config.Set("match.seed", *seed)
	}
	if *logLevel != "" {
		config.Set("logging.level", *logLevel)
	}
	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid settings")
	}

	setupLogging(cfg.Logging)
	if *watch {
		config.WatchConfig(func(c *config.Config, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("Ignoring invalid config change")
				return
			}
			setupLogging(c.Logging)
			log.Info().Str("file", config.ConfigFilePath()).Str("level", c.Logging.Level).Msg("Config reloaded")
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *writeScenario, *render); err != nil {
		log.Fatal().Err(err).Msg("Match failed")
	}
}

func run(ctx context.Context, cfg *config.Config, writeScenario string, render bool) error {
	seed := cfg.Match.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var board *core.Board
	if cfg.Match.ScenarioFile != "" {
		b, err := scenario.Load(cfg.Match.ScenarioFile)
		if err != nil {
			return err
		}
		board = b
	}

	bus := events.NewEventBus(log.Logger)
	bus.Subscribe(subscribers.NewLoggerSubscriber("match-log", log.Logger, zerolog.InfoLevel))

	engine, err := game.NewEngine(ctx, game.GameConfig{
		Board:        board,
		Map:          cfg.ScenarioMap(),
		Rng:          rng,
		MaxTurns:     cfg.Match.MaxTurns,
		FootmanAgent: cfg.Match.FootmanAgent,
		Logger:       log.Logger,
		EventBus:     bus,
	})
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}
	log.Info().Int64("seed", seed).Str("match_id", engine.MatchID()).Msg("Match created")

	if writeScenario != "" {
		data, err := scenario.Marshal(engine.Snapshot())
		if err != nil {
			return err
		}
		if err := os.WriteFile(writeScenario, data, 0o644); err != nil {
			return fmt.Errorf("writing scenario: %w", err)
		}
		log.Info().Str("file", writeScenario).Msg("Starting board written")
	}

	agents := map[core.Team]agent.Agent{
		core.TeamFootmen: footmanAgent(cfg, bus, engine.MatchID()),
		core.TeamArchers: agent.NewArcherAgent(log.Logger),
	}

	if render {
		fmt.Printf("Initial board:\n%s\n", engine.Board())
	}

	for !engine.IsGameOver() {
		side := agents[engine.ToMove()]
		decided, err := side.Decide(engine.Snapshot())
		switch {
		case errors.Is(err, search.ErrNoLegalMove):
			log.Warn().Str("agent", side.Name()).Int("turn", engine.Turn()).Msg("No legal move, skipping turn")
		case err != nil:
			return fmt.Errorf("%s agent: %w", side.Name(), err)
		}

		if err := engine.Step(ctx, agent.Orders(decided)); err != nil {
			return err
		}
		if render {
			fmt.Printf("Turn %d (%s moved):\n%s\n", engine.Turn(), side.Team(), engine.Board())
		}
	}

	printSummary(engine)
	return nil
}

// footmanAgent builds the configured footman policy
func footmanAgent(cfg *config.Config, pub events.Publisher, matchID string) agent.Agent {
	if cfg.Match.FootmanAgent == config.AgentAstar {
		return agent.NewAstarAgent(cfg.Astar.ReplanDelay, log.Logger)
	}
	return agent.NewMinimaxAgent(cfg.Search.Depth,
		agent.WithChildMode(cfg.ChildMode()),
		agent.WithMoveOrdering(cfg.Search.MoveOrdering),
		agent.WithLogger(log.Logger),
		agent.WithPublisher(pub, matchID),
	)
}

func printSummary(engine *game.Engine) {
	winner := engine.Winner()
	if winner == core.TeamNone {
		fmt.Printf("Match over after %d turns: draw (%s)\n", engine.Turn(), engine.EndReason())
	} else {
		fmt.Printf("Match over after %d turns: %s win (%s)\n", engine.Turn(), winner, engine.EndReason())
	}
	for _, team := range core.Teams {
		s := engine.Stats(team)
		fmt.Printf("  %-8s alive=%d hp=%d kills=%d losses=%d orders=%d rejected=%d\n",
			team, s.Alive, s.TotalHP, s.Kills, s.Losses, s.Applied, s.Rejected)
	}
}

func setupLogging(lc config.LoggingConfig) {
	logLevel, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if lc.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}

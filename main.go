package main

import (
	"flag"
	"os"
	"time"

	"hive/config"
	"hive/engine"
	"hive/experiments"
	"hive/game"
	"hive/searcher"
	"hive/searcher/agent"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	depth := flag.Int("depth", 0, "Search depth, overrides the configuration")
	experiment := flag.String("experiment", "", "Experiment to run instead of a single game: depth or memo")
	seed := flag.Uint64("seed", 0, "Random seed, overrides the configuration")
	logLevel := flag.String("log-level", "", "Log level, overrides the configuration")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if *depth > 0 {
		cfg.Search.Depth = *depth
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	switch *experiment {
	case "":
		playGame(cfg)
	case "depth":
		runExperiment(experiments.RunDepthExperiment, cfg)
	case "memo":
		runExperiment(experiments.RunMemoExperiment, cfg)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
}

func runExperiment(run func(config.Config) (string, error), cfg config.Config) {
	dir, err := run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("results written to %s", dir)
}

// playGame runs one game between two searchers with the configured settings.
func playGame(cfg config.Config) {
	rules, err := cfg.Rules()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid piece set")
	}
	agents := []agent.Agent{
		agent.NewEvaluationAgent(searcher.NewAlphaBeta(cfg.SearchOptions(cfg.Search.Depth)...)),
		agent.NewEvaluationAgent(searcher.NewAlphaBeta(cfg.SearchOptions(cfg.Search.Depth)...)),
	}
	e := engine.NewLocalEngine(rules, agents, cfg.MaxTurns)

	winner, gameMetric, moveMetrics := e.Run()

	var nodes int64
	for _, mm := range moveMetrics {
		nodes += mm.Nodes
	}
	if winner == game.WinnerNone {
		winner = "none"
	}
	log.Info().
		Str("game", gameMetric.GameID).
		Int("moves", gameMetric.TotalMoves).
		Str("nodes", humanize.Comma(nodes)).
		Dur("duration", gameMetric.Duration).
		Msgf("winner: %s", winner)
}

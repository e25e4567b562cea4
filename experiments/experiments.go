package experiments

import (
	"fmt"

	"hive/config"
	"hive/engine"
	"hive/experiments/metrics"
	"hive/game"
	"hive/searcher"
	"hive/searcher/agent"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type matchUp struct {
	agent1, agent2 metrics.AgentConfig
}

type runner struct {
	cfg   config.Config
	rules game.Rules
	seed  uint64
}

// RunDepthExperiment pits a depth-1 baseline against every configured depth.
func RunDepthExperiment(cfg config.Config) (string, error) {
	baseline := agentConfig(cfg, 0, 1)
	configs := []metrics.AgentConfig{baseline}
	matchUps := []matchUp{}
	for i, depth := range cfg.Experiment.Depths {
		c := agentConfig(cfg, i+1, depth)
		configs = append(configs, c)
		matchUps = append(matchUps, matchUp{baseline, c})
	}
	return run(cfg, "depth", configs, matchUps)
}

func agentConfig(cfg config.Config, id, depth int) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:           id,
		Depth:        depth,
		MemoCapacity: cfg.Search.MemoCapacity,
		MemoMinPly:   cfg.Search.MemoMinPly,
		Evaluation:   cfg.Search.Evaluation,
		Epsilon:      cfg.Experiment.Epsilon,
	}
}

type job struct {
	matchUp, game int
	seatA, seatB  metrics.AgentConfig
}

type outcome struct {
	winner      string
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
}

func run(cfg config.Config, name string, configs []metrics.AgentConfig, matchUps []matchUp) (string, error) {
	rules, err := cfg.Rules()
	if err != nil {
		return "", err
	}
	r := &runner{cfg: cfg, rules: rules, seed: cfg.Seed}

	// Seats alternate between games of a matchup.
	jobs := []job{}
	for mi, m := range matchUps {
		for i := 0; i < cfg.Experiment.Games; i++ {
			j := job{matchUp: mi, game: i, seatA: m.agent1, seatB: m.agent2}
			if i%2 == 1 {
				j.seatA, j.seatB = m.agent2, m.agent1
			}
			jobs = append(jobs, j)
		}
	}

	log.Info().Msgf("starting %s experiment: %d matchups, %d games on %d workers...", name, len(matchUps), len(jobs), cfg.Experiment.Workers)

	outcomes := make([]outcome, len(jobs))
	var g errgroup.Group
	g.SetLimit(cfg.Experiment.Workers)
	for ji, j := range jobs {
		ji, j := ji, j
		g.Go(func() error {
			winner, gameMetric, moveMetrics := r.runGame(uint64(ji), j.seatA, j.seatB)
			outcomes[ji] = outcome{winner, gameMetric, moveMetrics}
			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", j.matchUp+1, len(matchUps), j.game+1, winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := make([]metrics.Summary, len(matchUps))
	for mi, m := range matchUps {
		summaries[mi] = metrics.Summary{Agent1: m.agent1.ID, Agent2: m.agent2.ID}
	}
	for ji, j := range jobs {
		o := outcomes[ji]
		id := ji + 1
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Agent1:     j.seatA.ID,
			Agent2:     j.seatB.ID,
			GameMetric: o.gameMetric,
		})
		for _, mm := range o.moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}
		tally(&summaries[j.matchUp], o.winner, j.game%2 == 1)
	}
	for mi, s := range summaries {
		log.Info().Msgf("matchup %d of %d: %+v", mi+1, len(matchUps), s)
	}

	log.Info().Msgf("completed %s experiment, %s moves recorded", name, humanize.Comma(int64(len(moveRecords))))

	writer, err := metrics.NewWriter(cfg.Experiment.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	if err := writer.WriteSummaries(summaries); err != nil {
		return "", fmt.Errorf("failed to write summaries: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return writer.Dir(), nil
}

func tally(s *metrics.Summary, winner string, swapped bool) {
	first, second := game.PlayerA.String(), game.PlayerB.String()
	if swapped {
		first, second = second, first
	}
	switch winner {
	case first:
		s.Wins1++
	case second:
		s.Wins2++
	case game.WinnerDraw:
		s.Draws++
	default:
		s.Open++
	}
}

// runGame plays a single game with seatA as PlayerA. Each game gets its own
// searchers, so games can run concurrently.
func (r *runner) runGame(index uint64, seatA, seatB metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	agents := []agent.Agent{
		r.createAgent(seatA, r.seed+2*index),
		r.createAgent(seatB, r.seed+2*index+1),
	}
	e := engine.NewLocalEngine(r.rules, agents, r.cfg.MaxTurns)
	return e.Run()
}

func (r *runner) createAgent(c metrics.AgentConfig, seed uint64) agent.Agent {
	ab := searcher.NewAlphaBeta(
		searcher.WithDepth(c.Depth),
		searcher.WithMemoCapacity(c.MemoCapacity),
		searcher.WithMemoMinPly(c.MemoMinPly),
		searcher.WithEvaluationFn(r.cfg.Evaluate()),
		searcher.WithMetrics(),
	)
	if c.Epsilon <= 0 {
		return agent.NewEvaluationAgent(ab)
	}
	return agent.NewExploringAgent(ab, c.Epsilon, r.cfg.Experiment.OpenPlies, seed)
}

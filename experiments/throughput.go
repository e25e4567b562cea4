package experiments

import (
	"hive/config"
	"hive/experiments/metrics"
)

// RunMemoExperiment plays equal-depth agents against each other with the
// memo effectively disabled, at the configured size, and storing from the
// first ply. Node counts in the move records show what the memo saves.
func RunMemoExperiment(cfg config.Config) (string, error) {
	depth := cfg.Search.Depth
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: depth, MemoCapacity: 1, MemoMinPly: cfg.Search.MemoMinPly},
		{ID: 2, Depth: depth, MemoCapacity: cfg.Search.MemoCapacity, MemoMinPly: cfg.Search.MemoMinPly},
		{ID: 3, Depth: depth, MemoCapacity: cfg.Search.MemoCapacity, MemoMinPly: 0},
	}
	// Same config for both players in each game
	// for the same playing strength and similar game length
	matchUps := make([]matchUp, len(configs))
	for i := range configs {
		configs[i].Evaluation = cfg.Search.Evaluation
		configs[i].Epsilon = cfg.Experiment.Epsilon
		matchUps[i] = matchUp{configs[i], configs[i]}
	}
	return run(cfg, "memo", configs, matchUps)
}

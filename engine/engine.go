package engine

import "hive/experiments/metrics"

type Engine interface {
	// Run plays a game until there's a winner or the turn limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

package metrics

import (
	"time"

	"hive/game"
	"hive/searcher"
)

// AgentConfig describes one competitor in an experiment.
type AgentConfig struct {
	ID           int
	Depth        int
	MemoCapacity int
	MemoMinPly   int
	Evaluation   string  // name of the evaluation function
	Epsilon      float64 // chance of a random opening move
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	Pass   bool
	Value  int
	searcher.MoveMetrics
}

type GameMetric struct {
	GameID     string
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Passes     int
}

// Collector records one game.
type Collector interface {
	Start(gameID string)
	AddMove(step int, player game.Player, move game.Move, result searcher.Result)
	Complete(winner string) (GameMetric, []MoveMetric)
}

type collector struct {
	game  GameMetric
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(gameID string) {
	c.game = GameMetric{GameID: gameID, StartTime: time.Now()}
	c.moves = nil
}

func (c *collector) AddMove(step int, player game.Player, move game.Move, result searcher.Result) {
	c.game.TotalMoves++
	if result.Pass {
		c.game.Passes++
	}
	c.moves = append(c.moves, MoveMetric{
		Step:        step,
		Player:      player.String(),
		Move:        move.String(),
		Pass:        result.Pass,
		Value:       result.Value,
		MoveMetrics: result.Metrics,
	})
}

func (c *collector) Complete(winner string) (GameMetric, []MoveMetric) {
	c.game.Winner = winner
	c.game.EndTime = time.Now()
	c.game.Duration = c.game.EndTime.Sub(c.game.StartTime)
	return c.game, c.moves
}

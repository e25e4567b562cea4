package engine

import (
	"fmt"

	"hive/experiments/metrics"
	"hive/game"
	"hive/gamemaster"
	"hive/searcher"
	"hive/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LocalEngine plays two agents against each other in process. Every move goes
// through a gamemaster so an agent cannot corrupt the game.
type LocalEngine struct {
	ID        uuid.UUID
	master    *gamemaster.LocalEngine
	agents    []agent.Agent
	maxTurns  int
	collector metrics.Collector
}

// NewLocalEngine seats agents[0] as PlayerA and agents[1] as PlayerB.
func NewLocalEngine(rules game.Rules, agents []agent.Agent, maxTurns int) *LocalEngine {
	if len(agents) != 2 {
		panic(fmt.Sprintf("need exactly two agents, got %d", len(agents)))
	}
	if maxTurns <= 0 {
		panic("turn limit must be positive")
	}
	return &LocalEngine{
		ID:        uuid.New(),
		master:    gamemaster.NewLocalEngine(rules),
		agents:    agents,
		maxTurns:  maxTurns,
		collector: metrics.NewCollector(),
	}
}

// Run executes the entire game loop until a winner is found or the turn limit
// is hit, in which case the winner is game.WinnerNone.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	logger := log.With().Str("game", e.ID.String()).Logger()
	state, getUpdate := e.master.Init()
	e.collector.Start(e.ID.String())

	logger.Info().Msgf("%v is starting", state.Player())

	for turn := 1; state.Winner() == game.WinnerNone && turn <= e.maxTurns; turn++ {
		player := state.Player()
		result := e.agents[player].FindMove(state)
		move := result.Move
		if result.Pass {
			move = game.PassMove
		}

		if err := e.master.Play(move); err != nil {
			logger.Warn().Err(err).Msgf("%v chose an unplayable move, falling back", player)
			result = searcher.Result{Move: fallback(state), Pass: len(state.LegalMoves()) == 0}
			move = result.Move
			if err := e.master.Play(move); err != nil {
				panic(fmt.Sprintf("fallback move %v rejected: %v", move, err))
			}
		}
		e.collector.AddMove(turn, player, move, result)
		logger.Debug().Msgf("turn %d: %v plays %v", turn, player, move)

		_, next, ok := getUpdate()
		if !ok {
			panic("gamemaster accepted a move without publishing it")
		}
		state = next
	}

	winner := state.Winner()
	if winner == game.WinnerNone {
		logger.Info().Msgf("stopped after %d turns without a winner", e.maxTurns)
	} else {
		logger.Info().Msgf("game over after %d plies, winner: %s", state.Ply(), winner)
	}
	logger.Debug().Msgf("final position:\n%v", state)
	gameMetric, moveMetrics := e.collector.Complete(winner)
	return winner, gameMetric, moveMetrics
}

func fallback(state *game.GameState) game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.PassMove
	}
	return moves[0]
}

package agent

import (
	"hive/game"
	"hive/searcher"

	"golang.org/x/exp/rand"
)

type exploringAgent struct {
	searcher *searcher.AlphaBeta
	epsilon  float64
	plies    int
	rng      *rand.Rand
}

// NewExploringAgent returns an agent that, during the first plies of a game,
// plays a random legal move with probability epsilon and otherwise searches.
// Experiments use it to keep repeated games between the same searchers from
// being identical.
func NewExploringAgent(ab *searcher.AlphaBeta, epsilon float64, plies int, seed uint64) Agent {
	return &exploringAgent{
		searcher: ab,
		epsilon:  epsilon,
		plies:    plies,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a *exploringAgent) FindMove(state *game.GameState) searcher.Result {
	if state.Ply() < a.plies && a.rng.Float64() < a.epsilon {
		return sample(state.LegalMoves(), a.rng)
	}
	return a.searcher.FindMove(state)
}

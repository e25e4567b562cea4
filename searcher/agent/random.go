package agent

import (
	"hive/game"
	"hive/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly among the legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) searcher.Result {
	return sample(state.LegalMoves(), a.rng)
}

func sample(moves []game.Move, rng *rand.Rand) searcher.Result {
	if len(moves) == 0 {
		return searcher.Result{Pass: true}
	}
	return searcher.Result{Move: moves[rng.Intn(len(moves))]}
}

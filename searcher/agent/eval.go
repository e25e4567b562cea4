package agent

import (
	"hive/game"
	"hive/searcher"
)

type evaluationAgent struct {
	searcher *searcher.AlphaBeta
}

// NewEvaluationAgent returns an agent that always plays the searcher's choice.
func NewEvaluationAgent(ab *searcher.AlphaBeta) Agent {
	return evaluationAgent{searcher: ab}
}

func (a evaluationAgent) FindMove(state *game.GameState) searcher.Result {
	return a.searcher.FindMove(state)
}

package searcher

import "hive/game"

// Minimax is the plain exhaustive search, without pruning or memo. It is far
// too slow for play and serves as the reference AlphaBeta must agree with.
func Minimax(state *game.GameState, depth int, evaluate game.Evaluate) int {
	value, terminal := leafValue(state, evaluate)
	if terminal || depth == 0 {
		return value
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		state.Pass()
		value = Minimax(state, depth-1, evaluate)
		state.Unpass()
		return value
	}

	maxing := maximizing(state)
	best := Infinity
	if maxing {
		best = -Infinity
	}
	for _, move := range moves {
		state.ApplyMove(move)
		value := Minimax(state, depth-1, evaluate)
		state.UndoMove(move)
		if maxing && value > best || !maxing && value < best {
			best = value
		}
	}
	return best
}

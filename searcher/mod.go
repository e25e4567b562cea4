package searcher

import "hive/game"

// Values at or beyond these bounds mean the game is decided.
const (
	WinScore  = 1_000_000
	LossScore = -WinScore
	DrawScore = 0
	Infinity  = 1 << 30
)

type Searcher interface {
	// FindMove chooses a move for the side to move. The state is mutated
	// during the search and restored before returning.
	FindMove(state *game.GameState) Result
}

// Result of one decision. When Pass is set there were no legal moves and
// Move is meaningless.
type Result struct {
	Move    game.Move
	Pass    bool
	Value   int
	Metrics MoveMetrics
}

// leafValue resolves a position without searching further: decided games map
// to the sentinels, everything else goes through evaluate.
func leafValue(state *game.GameState, evaluate game.Evaluate) (int, bool) {
	_, aWins, bWins := state.Score()
	switch {
	case aWins && bWins:
		return DrawScore, true
	case aWins:
		return WinScore, true
	case bWins:
		return LossScore, true
	}
	return evaluate(state), false
}

func maximizing(state *game.GameState) bool {
	return state.Player() == game.PlayerA
}

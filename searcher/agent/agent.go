package agent

import (
	"hive/game"
	"hive/searcher"
)

type Agent interface {
	// FindMove picks a move for the side to move, or reports that it must pass.
	// The state is left as it was found.
	FindMove(state *game.GameState) searcher.Result
}

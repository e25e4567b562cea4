package searcher

import (
	"fmt"

	"hive/game"
)

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth-bounded minimax search with alpha-beta pruning and a
// position memo that survives between decisions. It is not safe for
// concurrent use.
type AlphaBeta struct {
	depth    int
	minPly   int
	evaluate game.Evaluate
	memo     *Memo
	metrics  MetricsCollector
}

func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		ab.depth = depth
	}
}

func WithMemoCapacity(capacity int) Option {
	return func(ab *AlphaBeta) {
		if capacity > 0 {
			ab.memo = NewMemo(capacity)
		}
	}
}

func WithMemoMinPly(ply int) Option {
	return func(ab *AlphaBeta) {
		if ply >= 0 {
			ab.minPly = ply
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = NewMetricsCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		depth:    DefaultDepth,
		minPly:   DefaultMemoMinPly,
		evaluate: game.EvaluateSurround,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	if ab.depth < 1 || ab.depth > MaxDepth {
		panic(fmt.Sprintf("search depth must be within [1, %d], got %d", MaxDepth, ab.depth))
	}
	if ab.memo == nil {
		ab.memo = NewMemo(DefaultMemoCapacity)
	}
	return ab
}

func (ab *AlphaBeta) Depth() int {
	return ab.depth
}

func (ab *AlphaBeta) Memo() *Memo {
	return ab.memo
}

// Reset forgets every memoised position.
func (ab *AlphaBeta) Reset() {
	ab.memo.Reset()
}

func (ab *AlphaBeta) FindMove(state *game.GameState) Result {
	ab.metrics.Start(ab.depth)
	moves := state.LegalMoves()
	if len(moves) == 0 {
		ab.metrics.AddPass()
		state.Pass()
		value := ab.search(state, ab.depth-1, -Infinity, Infinity)
		state.Unpass()
		return Result{Pass: true, Value: value, Metrics: ab.metrics.Complete()}
	}

	maxing := maximizing(state)
	alpha, beta := -Infinity, Infinity
	best, bestValue := moves[0], Infinity
	if maxing {
		bestValue = -Infinity
	}
	for _, move := range moves {
		// The window is widened by one on the side being improved so a move
		// that only ties the best so far is still searched exactly.
		state.ApplyMove(move)
		var value int
		if maxing {
			value = ab.search(state, ab.depth-1, alpha-1, beta)
		} else {
			value = ab.search(state, ab.depth-1, alpha, beta+1)
		}
		state.UndoMove(move)

		if maxing {
			if value >= bestValue {
				best, bestValue = move, value
			}
			alpha = bestValue
			if bestValue == WinScore {
				break
			}
		} else {
			if value <= bestValue {
				best, bestValue = move, value
			}
			beta = bestValue
			if bestValue == LossScore {
				break
			}
		}
	}
	return Result{Move: best, Value: bestValue, Metrics: ab.metrics.Complete()}
}

func (ab *AlphaBeta) search(state *game.GameState, depth, alpha, beta int) int {
	ab.metrics.AddNode()
	value, terminal := leafValue(state, ab.evaluate)
	if terminal || depth == 0 {
		ab.metrics.AddLeaf()
		return value
	}

	hash := state.Hash()
	stored, bound, hit := ab.memo.Probe(hash, depth)
	ab.metrics.AddProbe(hit)
	if hit {
		switch bound {
		case Exact:
			return stored
		case Lower:
			alpha = max(alpha, stored)
		case Upper:
			beta = min(beta, stored)
		}
		if alpha >= beta {
			return stored
		}
	}
	alphaOrig, betaOrig := alpha, beta

	var best int
	moves := state.LegalMoves()
	switch {
	case len(moves) == 0:
		ab.metrics.AddPass()
		state.Pass()
		best = ab.search(state, depth-1, alpha, beta)
		state.Unpass()
	case maximizing(state):
		best = -Infinity
		for _, move := range moves {
			state.ApplyMove(move)
			value := ab.search(state, depth-1, alpha, beta)
			state.UndoMove(move)
			best = max(best, value)
			alpha = max(alpha, best)
			if best == WinScore || alpha >= beta {
				ab.metrics.AddCutoff()
				break
			}
		}
	default:
		best = Infinity
		for _, move := range moves {
			state.ApplyMove(move)
			value := ab.search(state, depth-1, alpha, beta)
			state.UndoMove(move)
			best = min(best, value)
			beta = min(beta, best)
			if best == LossScore || alpha >= beta {
				ab.metrics.AddCutoff()
				break
			}
		}
	}

	if state.Ply() > ab.minPly {
		bound := Exact
		switch {
		case best <= alphaOrig:
			bound = Upper
		case best >= betaOrig:
			bound = Lower
		}
		ab.memo.Store(hash, depth, best, bound)
	}
	return best
}

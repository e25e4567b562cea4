package agent

import (
	"testing"

	"hive/game"
	"hive/searcher"

	"github.com/stretchr/testify/require"
)

func TestRandomAgent(t *testing.T) {
	gs := game.NewGameState(game.NewStandardRules())
	gs.ApplyMove(game.Place(game.Queen, game.Origin))
	legal := gs.LegalMoves()

	a, b := NewRandomAgent(5), NewRandomAgent(5)
	for i := 0; i < 10; i++ {
		first, second := a.FindMove(gs), b.FindMove(gs)
		require.False(t, first.Pass)
		require.Contains(t, legal, first.Move)
		require.Equal(t, first, second, "same seed, same choices")
	}
}

func TestRandomAgentPasses(t *testing.T) {
	gs, err := game.ParseBoard(game.NewStandardRules(), "Q a A", 3)
	require.NoError(t, err)

	require.True(t, NewRandomAgent(1).FindMove(gs).Pass)
}

func TestEvaluationAgent(t *testing.T) {
	gs := game.NewGameState(game.NewStandardRules())
	ab := searcher.NewAlphaBeta(searcher.WithDepth(2))
	expected := searcher.NewAlphaBeta(searcher.WithDepth(2)).FindMove(gs)

	result := NewEvaluationAgent(ab).FindMove(gs)

	require.Equal(t, expected.Move, result.Move)
	require.Equal(t, expected.Value, result.Value)
}

func TestExploringAgent(t *testing.T) {
	gs := game.NewGameState(game.NewStandardRules())
	ab := searcher.NewAlphaBeta(searcher.WithDepth(2))
	searched := ab.FindMove(gs)

	t.Run("never explores with zero epsilon", func(t *testing.T) {
		result := NewExploringAgent(ab, 0, 10, 1).FindMove(gs)
		require.Equal(t, searched.Move, result.Move)
	})

	t.Run("stops exploring after the opening", func(t *testing.T) {
		gs := game.NewGameState(game.NewStandardRules())
		gs.ApplyMove(game.Place(game.Queen, game.Origin))
		want := ab.FindMove(gs)

		result := NewExploringAgent(ab, 1, 1, 1).FindMove(gs)

		require.Equal(t, want.Move, result.Move)
	})

	t.Run("always explores with epsilon one", func(t *testing.T) {
		result := NewExploringAgent(ab, 1, 10, 9).FindMove(gs)
		require.Contains(t, gs.LegalMoves(), result.Move)
		require.Zero(t, result.Value, "random choices carry no value")
	})
}

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("round trips through String", func(t *testing.T) {
		gs := buildBoard(NewStandardRules(), []pieceOnBoard{
			{Coord{0, 0}, PlayerA, Queen},
			{Coord{1, 0}, PlayerB, Queen},
			{Coord{0, 1}, PlayerA, Ant},
		}, 3)

		parsed, err := ParseBoard(NewStandardRules(), gs.String(), 3)

		require.NoError(t, err)
		require.True(t, gs.Equal(parsed))
		require.Equal(t, gs.Hash(), parsed.Hash())
	})

	t.Run("odd rows shift by one column", func(t *testing.T) {
		parsed, err := ParseBoard(NewStandardRules(), " Q\na\n", 2)

		require.NoError(t, err)
		a, _ := parsed.QueenAt(PlayerA)
		require.Equal(t, Coord{0, 0}, a)
		tile, ok := parsed.Tile(Coord{-1, 1})
		require.True(t, ok)
		require.Equal(t, Tile{Owner: PlayerB, Kind: Ant}, tile)
		require.Equal(t, 5, parsed.Inventory(PlayerB).Count(Ant))
	})

	t.Run("errors", func(t *testing.T) {
		_, err := ParseBoard(NewStandardRules(), "Q x", 0)
		require.ErrorContains(t, err, "unknown piece")

		_, err = ParseBoard(NewStandardRules(), "QQ", 0)
		require.ErrorContains(t, err, "off the hex grid")

		_, err = ParseBoard(NewStandardRules(), "Q Q", 0)
		require.ErrorContains(t, err, "no Queen left")

		_, err = ParseBoard(NewStandardRules(), "Q", -1)
		require.Error(t, err)
	})
}

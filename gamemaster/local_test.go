package gamemaster

import (
	"testing"

	"hive/game"

	"github.com/stretchr/testify/require"
)

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine(game.NewStandardRules())
	state, getUpdate := engine.Init()

	require.NotNil(t, state)
	require.Zero(t, state.Ply())
	require.Zero(t, state.NumOccupied())
	require.Equal(t, 7, state.Inventory(game.PlayerA).Total())

	_, _, ok := getUpdate()
	require.False(t, ok, "no update before the first move")
}

func TestLocalEnginePlayValidMove(t *testing.T) {
	engine := NewLocalEngine(game.NewStandardRules())
	state, getUpdate := engine.Init()
	move := state.LegalMoves()[0]

	require.NoError(t, engine.Play(move))

	played, next, ok := getUpdate()
	require.True(t, ok)
	require.Equal(t, move, played)
	require.Equal(t, 1, next.Ply())
	require.True(t, next.IsOccupied(game.Origin))

	_, _, ok = getUpdate()
	require.False(t, ok, "each update is delivered once")

	next.ApplyMove(next.LegalMoves()[0])
	require.Equal(t, 1, engine.State().Ply(), "updates are copies")
}

func TestLocalEnginePlayIllegalMove(t *testing.T) {
	engine := NewLocalEngine(game.NewStandardRules())
	engine.Init()

	t.Run("placement off the origin", func(t *testing.T) {
		err := engine.Play(game.Place(game.Ant, game.Coord{Q: 3, R: 3}))
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("movement before anything is on the board", func(t *testing.T) {
		err := engine.Play(game.Movement(game.Origin, game.Coord{Q: 1, R: 0}))
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("pass with moves available", func(t *testing.T) {
		err := engine.Play(game.PassMove)
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	require.Zero(t, engine.State().Ply(), "rejected moves leave the state alone")
}

func TestLocalEngineForcedQueen(t *testing.T) {
	engine := NewLocalEngine(game.NewStandardRules())
	state, _ := engine.Init()
	for state.Ply() < 6 {
		var ant game.Move
		for _, m := range state.LegalMoves() {
			if m.Piece == game.Ant {
				ant = m
				break
			}
		}
		require.NoError(t, engine.Play(ant))
		state = engine.State()
	}

	var ant game.Coord
	for _, c := range state.PlaceableLocations() {
		ant = c
		break
	}
	require.ErrorIs(t, engine.Play(game.Place(game.Ant, ant)), ErrIllegalMove, "queen is due")
	require.NoError(t, engine.Play(game.Place(game.Queen, ant)))
}

func TestLocalEngineGameOver(t *testing.T) {
	engine := NewLocalEngine(game.NewStandardRules())
	engine.Init()
	// b's queen has five neighbours and white to move can close the ring.
	state, err := game.ParseBoard(game.NewStandardRules(), " a a\nA q Q\n A   A\n", 10)
	require.NoError(t, err)
	engine.state = state

	var win game.Move
	for _, m := range state.LegalMoves() {
		next := state.Copy()
		next.ApplyMove(m)
		if next.Winner() == game.PlayerA.String() {
			win = m
			break
		}
	}
	require.Equal(t, game.MoveAction, win.Action)

	require.NoError(t, engine.Play(win))
	require.True(t, engine.GameOver())
	require.Equal(t, game.PlayerA.String(), engine.State().Winner())
	require.ErrorIs(t, engine.Play(game.PassMove), ErrGameOver)
}

func TestLocalEnginePlayBeforeInit(t *testing.T) {
	engine := NewLocalEngine(game.NewStandardRules())
	require.Error(t, engine.Play(game.Place(game.Queen, game.Origin)))
}

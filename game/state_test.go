package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type pieceOnBoard struct {
	At    Coord
	Owner Player
	Kind  PieceKind
}

// buildBoard stacks the layout in order, takes the pieces out of the owners'
// hands, records queens, and sets the ply.
func buildBoard(rules Rules, layout []pieceOnBoard, ply int) *GameState {
	gs := NewGameState(rules)
	for _, p := range layout {
		gs.push(p.At, Tile{Owner: p.Owner, Kind: p.Kind})
		gs.hands[p.Owner].use(p.Kind)
		if p.Kind == Queen {
			gs.queens[p.Owner] = p.At
			gs.queenPlaced[p.Owner] = true
		}
	}
	gs.ply = ply
	return gs
}

func isConnected(gs *GameState) bool {
	occupied := gs.Occupied()
	if len(occupied) == 0 {
		return true
	}
	visited := map[Coord]bool{occupied[0]: true}
	stack := []Coord{occupied[0]}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range c.Neighbors() {
			if gs.IsOccupied(n) && !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(visited) == len(occupied)
}

func movesFrom(moves []Move, from Coord) []Coord {
	var to []Coord
	for _, m := range moves {
		if m.Action == MoveAction && m.From == from {
			to = append(to, m.To)
		}
	}
	return to
}

func TestLegalMovesOpening(t *testing.T) {
	t.Run("empty board places every kind at the origin", func(t *testing.T) {
		gs := NewGameState(NewFullRules())

		moves := gs.LegalMoves()

		require.Len(t, moves, NumKinds, "one placement per kind in hand")
		for i, m := range moves {
			require.Equal(t, Place(PieceKind(i), Origin), m)
		}
	})

	t.Run("second ply places next to the only tile", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())
		gs.ApplyMove(Place(Ant, Origin))

		moves := gs.LegalMoves()

		require.ElementsMatch(t, []Move{
			Place(Queen, Coord{1, 0}),
			Place(Ant, Coord{1, 0}),
		}, moves)
	})
}

func TestLegalMovesThirdPly(t *testing.T) {
	gs := NewGameState(NewStandardRules())
	gs.ApplyMove(Place(Queen, Origin))
	gs.ApplyMove(Place(Ant, Coord{1, 0}))

	moves := gs.LegalMoves()

	var placements []Move
	for _, m := range moves {
		if !m.IsPlacement() {
			continue
		}
		placements = append(placements, m)
		require.True(t, m.To.IsAdjacent(Origin), "%v should touch own tile", m)
		for _, n := range m.To.Neighbors() {
			tile, ok := gs.Tile(n)
			require.False(t, ok && tile.Owner == PlayerB, "%v should not touch the opponent", m)
		}
	}
	require.ElementsMatch(t, []Move{
		Place(Ant, Coord{0, -1}),
		Place(Ant, Coord{-1, 0}),
		Place(Ant, Coord{-1, 1}),
	}, placements, "queen is already down, only ants remain")
	require.ElementsMatch(t, []Coord{{1, -1}, {0, 1}}, movesFrom(moves, Origin),
		"queen slides along the ant in either direction")
	require.Len(t, moves, 5)
}

func TestLegalMovesKeepHiveConnected(t *testing.T) {
	t.Run("middle of a chain cannot move", func(t *testing.T) {
		gs := buildBoard(NewStandardRules(), []pieceOnBoard{
			{Coord{-1, 0}, PlayerB, Ant},
			{Coord{0, 0}, PlayerA, Ant},
			{Coord{1, 0}, PlayerA, Queen},
		}, 4)

		moves := gs.LegalMoves()

		require.NotEmpty(t, Ant.Destinations(gs, Origin), "ant has candidate cells before the hive check")
		require.Empty(t, movesFrom(moves, Origin), "moving the connector would split the hive")
		require.NotEmpty(t, movesFrom(moves, Coord{1, 0}), "end of the chain stays mobile")
	})

	t.Run("no movements before the queen is placed", func(t *testing.T) {
		gs := buildBoard(NewStandardRules(), []pieceOnBoard{
			{Coord{0, 0}, PlayerA, Ant},
			{Coord{1, 0}, PlayerB, Ant},
		}, 2)

		for _, m := range gs.LegalMoves() {
			require.True(t, m.IsPlacement(), "unexpected %v", m)
		}
	})
}

func TestQueenDeadline(t *testing.T) {
	rules := NewStandardRules()
	require.Equal(t, 6, rules.QueenDeadline(PlayerA))
	require.Equal(t, 7, rules.QueenDeadline(PlayerB))

	small, err := NewRules(map[PieceKind]int{Queen: 1, Ant: 1})
	require.NoError(t, err)
	require.Equal(t, 2, small.QueenDeadline(PlayerA), "two pieces: queen by the second turn")
	require.Equal(t, 3, small.QueenDeadline(PlayerB))

	gs := NewGameState(rules)
	for gs.Ply() < 6 {
		var ant Move
		for _, m := range gs.LegalMoves() {
			if m.IsPlacement() && m.Piece == Ant {
				ant = m
				break
			}
		}
		require.Equal(t, Ant, ant.Piece)
		gs.ApplyMove(ant)
	}

	moves := gs.LegalMoves()
	require.NotEmpty(t, moves)
	for _, m := range moves {
		require.Equal(t, Place(Queen, m.To), m, "queen placement is forced on ply 6")
	}
}

func TestApplyUndoRestoresState(t *testing.T) {
	for _, rules := range []*StandardRules{NewStandardRules(), NewFullRules()} {
		r := rand.New(rand.NewSource(7))
		for game := 0; game < 20; game++ {
			gs := NewGameState(rules)
			for ply := 0; ply < 40 && gs.Winner() == WinnerNone; ply++ {
				moves := gs.LegalMoves()
				if len(moves) == 0 {
					gs.Pass()
					continue
				}
				for _, m := range moves {
					before := gs.Copy()
					hash := gs.Hash()
					gs.ApplyMove(m)
					if gs.Ply() > 2 {
						require.True(t, isConnected(gs), "%v broke the hive", m)
					}
					gs.UndoMove(m)
					require.True(t, before.Equal(gs), "undo of %v did not restore the position", m)
					require.Equal(t, hash, gs.Hash())
				}
				gs.ApplyMove(moves[r.Intn(len(moves))])
			}
		}
	}
}

func TestPassUnpass(t *testing.T) {
	gs := NewGameState(NewStandardRules())
	gs.ApplyMove(Place(Queen, Origin))
	before := gs.Copy()

	gs.Pass()
	require.Equal(t, PlayerA, gs.Player())
	gs.Unpass()
	require.True(t, before.Equal(gs))
	require.Equal(t, PlayerB, gs.Player())
}

func TestInconsistencyPanics(t *testing.T) {
	t.Run("undo of a missing tile", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())
		gs.ApplyMove(Place(Ant, Origin))
		require.Panics(t, func() { gs.UndoMove(Movement(Coord{5, 5}, Coord{6, 6})) })
	})

	t.Run("inventory underflow", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())
		gs.ApplyMove(Place(Queen, Origin))
		gs.Pass()
		require.Panics(t, func() { gs.ApplyMove(Place(Queen, Coord{0, 1})) })
	})

	t.Run("unpass at ply zero", func(t *testing.T) {
		gs := NewGameState(NewStandardRules())
		require.Panics(t, gs.Unpass)
	})
}

func TestHash(t *testing.T) {
	layout := []pieceOnBoard{
		{Coord{0, 0}, PlayerA, Queen},
		{Coord{1, 0}, PlayerB, Queen},
		{Coord{-1, 0}, PlayerA, Ant},
		{Coord{2, -1}, PlayerB, Ant},
	}
	reversed := make([]pieceOnBoard, len(layout))
	for i, p := range layout {
		reversed[len(layout)-1-i] = p
	}

	t.Run("independent of insertion order", func(t *testing.T) {
		a := buildBoard(NewStandardRules(), layout, 4)
		b := buildBoard(NewStandardRules(), reversed, 4)
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("depends on side to move", func(t *testing.T) {
		a := buildBoard(NewStandardRules(), layout, 4)
		b := buildBoard(NewStandardRules(), layout, 5)
		require.NotEqual(t, a.Hash(), b.Hash())
	})

	t.Run("depends on stack order", func(t *testing.T) {
		a := buildBoard(NewFullRules(), []pieceOnBoard{
			{Coord{0, 0}, PlayerA, Beetle},
			{Coord{0, 0}, PlayerB, Beetle},
		}, 2)
		b := buildBoard(NewFullRules(), []pieceOnBoard{
			{Coord{0, 0}, PlayerB, Beetle},
			{Coord{0, 0}, PlayerA, Beetle},
		}, 2)
		require.NotEqual(t, a.Hash(), b.Hash())
	})
}

func TestStacking(t *testing.T) {
	gs := buildBoard(NewFullRules(), []pieceOnBoard{
		{Coord{0, 0}, PlayerA, Queen},
		{Coord{1, 0}, PlayerB, Queen},
		{Coord{-1, 0}, PlayerA, Beetle},
		{Coord{2, 0}, PlayerB, Ant},
	}, 4)
	before := gs.Copy()

	climb := Movement(Coord{-1, 0}, Origin)
	require.Contains(t, gs.LegalMoves(), climb)
	gs.ApplyMove(climb)

	top, ok := gs.Tile(Origin)
	require.True(t, ok)
	require.Equal(t, Tile{Owner: PlayerA, Kind: Beetle}, top)
	require.Equal(t, 2, gs.Height(Origin))
	require.Equal(t, []Tile{{PlayerA, Queen}, {PlayerA, Beetle}}, gs.Stack(Origin))
	queen, _ := gs.QueenAt(PlayerA)
	require.Equal(t, Origin, queen, "covered queen keeps its location")

	gs.UndoMove(climb)
	require.True(t, before.Equal(gs))
}

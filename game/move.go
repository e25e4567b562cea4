package game

import "fmt"

// Move is either a placement of Piece at To, or a movement of the top tile
// at From to To.
type Move struct {
	Action ActionType
	Piece  PieceKind
	From   Coord
	To     Coord
}

func Place(kind PieceKind, to Coord) Move {
	return Move{Action: PlaceAction, Piece: kind, To: to}
}

func Movement(from, to Coord) Move {
	return Move{Action: MoveAction, From: from, To: to}
}

// PassMove is the value submitted at the gamemaster boundary for a forced pass.
var PassMove = Move{Action: PassAction}

func (m Move) IsPlacement() bool {
	return m.Action == PlaceAction
}

func (m Move) String() string {
	switch m.Action {
	case PlaceAction:
		return fmt.Sprintf("place %c at %v", m.Piece.Letter(), m.To)
	case MoveAction:
		return fmt.Sprintf("move %v -> %v", m.From, m.To)
	}
	return "pass"
}

package game

// ActionType distinguishes the kinds of move a player can make.
type ActionType int

const (
	PlaceAction ActionType = iota
	MoveAction
	// PassAction is only used at the gamemaster boundary; the core models a
	// forced pass with GameState.Pass rather than a Move.
	PassAction
)

func (a ActionType) String() string {
	switch a {
	case PlaceAction:
		return "place"
	case MoveAction:
		return "move"
	case PassAction:
		return "pass"
	}
	return "unknown"
}

package game

type StateHash uint64

// Player identifies one of the two sides. PlayerA moves on even plies.
type Player int

const (
	PlayerA Player = iota
	PlayerB
)

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	if p == PlayerA {
		return "PlayerA"
	}
	return "PlayerB"
}

// Evaluates a non-terminal position to a signed score; positive favours PlayerA.
type Evaluate func(*GameState) int

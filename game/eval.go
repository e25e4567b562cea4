package game

// Neighbour count assumed for a queen still in hand, so it can never be
// surrounded.
const unplacedQueenBaseline = 1

const surroundedAt = 6

// Score returns the surround differential and the two win flags. The
// differential is (cells around PlayerB's queen) - (cells around PlayerA's
// queen), so positive favours PlayerA regardless of who is to move. Both flags
// set means the last move surrounded both queens: a draw.
func (gs *GameState) Score() (diff int, aWins, bWins bool) {
	aSurround := gs.queenSurround(PlayerA)
	bSurround := gs.queenSurround(PlayerB)
	return bSurround - aSurround, bSurround == surroundedAt, aSurround == surroundedAt
}

func (gs *GameState) queenSurround(p Player) int {
	if !gs.queenPlaced[p] {
		return unplacedQueenBaseline
	}
	n := 0
	for _, c := range gs.queens[p].Neighbors() {
		if gs.IsOccupied(c) {
			n++
		}
	}
	return n
}

const (
	WinnerNone = ""
	WinnerDraw = "draw"
)

// Winner returns "PlayerA", "PlayerB", WinnerDraw, or WinnerNone while the game
// is still open.
func (gs *GameState) Winner() string {
	_, aWins, bWins := gs.Score()
	switch {
	case aWins && bWins:
		return WinnerDraw
	case aWins:
		return PlayerA.String()
	case bWins:
		return PlayerB.String()
	}
	return WinnerNone
}

// EvaluateSurround is the plain surround differential.
func EvaluateSurround(gs *GameState) int {
	diff, _, _ := gs.Score()
	return diff
}

// EvaluatePressure weighs the surround differential and adds the number of
// enemy tiles touching each queen, which the queen's owner cannot move away.
func EvaluatePressure(gs *GameState) int {
	diff, _, _ := gs.Score()
	return 4*diff + gs.enemyContacts(PlayerB) - gs.enemyContacts(PlayerA)
}

func (gs *GameState) enemyContacts(p Player) int {
	if !gs.queenPlaced[p] {
		return 0
	}
	n := 0
	for _, c := range gs.queens[p].Neighbors() {
		if t, ok := gs.Tile(c); ok && t.Owner != p {
			n++
		}
	}
	return n
}

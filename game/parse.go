package game

import (
	"fmt"
	"strings"
)

// ParseBoard reads a board drawn the way String draws it: one row per line,
// PlayerA upper case, PlayerB lower case, each tile on a doubled-offset cell.
// Only top tiles can be expressed, so every parsed stack has height one. Both
// hands are reduced by the pieces on the board.
func ParseBoard(rules Rules, board string, ply int) (*GameState, error) {
	if ply < 0 {
		return nil, fmt.Errorf("negative ply %d", ply)
	}
	gs := NewGameState(rules)
	gs.ply = ply
	parity := -1
	for y, line := range strings.Split(strings.TrimRight(board, "\n"), "\n") {
		for x := 0; x < len(line); x++ {
			ch := line[x]
			if ch == ' ' {
				continue
			}
			kind, ok := KindFromLetter(ch)
			if !ok {
				return nil, fmt.Errorf("row %d column %d: unknown piece %q", y, x, ch)
			}
			owner := PlayerA
			if ch >= 'a' && ch <= 'z' {
				owner = PlayerB
			}

			p := ((x-y)%2 + 2) % 2
			if parity < 0 {
				parity = p
			} else if p != parity {
				return nil, fmt.Errorf("row %d column %d: %q is off the hex grid", y, x, ch)
			}
			c, _ := FromSquare(x-parity, y)

			if gs.hands[owner].Count(kind) == 0 {
				return nil, fmt.Errorf("%v has no %v left to put at %v", owner, kind, c)
			}
			gs.hands[owner].use(kind)
			gs.push(c, Tile{Owner: owner, Kind: kind})
			if kind == Queen {
				gs.queens[owner] = c
				gs.queenPlaced[owner] = true
			}
		}
	}
	return gs, nil
}

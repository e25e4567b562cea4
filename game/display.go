package game

import "strings"

// Square is one occupied cell on the doubled-offset display grid.
type Square struct {
	X, Y int
	Tile Tile
}

// Squares projects the occupied cells onto the display grid, shifted so the
// minimum x and y are zero. It carries no gameplay meaning.
func (gs *GameState) Squares() (squares []Square, width, height int) {
	if len(gs.tiles) == 0 {
		return nil, 0, 0
	}
	minX, minY := int(^uint(0)>>1), int(^uint(0)>>1)
	maxX, maxY := -minX-1, -minY-1
	for c := range gs.tiles {
		x, y := c.ToSquare()
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	for _, c := range gs.Occupied() {
		x, y := c.ToSquare()
		squares = append(squares, Square{X: x - minX, Y: y - minY, Tile: gs.tiles[c].Top()})
	}
	return squares, maxX - minX + 1, maxY - minY + 1
}

// String draws the board: PlayerA's pieces upper case, PlayerB's lower case.
func (gs *GameState) String() string {
	squares, width, height := gs.Squares()
	grid := make([][]byte, height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", width))
	}
	for _, sq := range squares {
		letter := sq.Tile.Kind.Letter()
		if sq.Tile.Owner == PlayerB {
			letter += 'a' - 'A'
		}
		grid[sq.Y][sq.X] = letter
	}
	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

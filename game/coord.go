package game

import "fmt"

// Coord is an axial hex coordinate (q, r) on the unbounded grid.
type Coord struct {
	Q, R int
}

// Origin is where the first piece of every game is placed.
var Origin = Coord{0, 0}

// Directions lists the six neighbor offsets counter-clockwise, starting east.
// Consecutive entries (mod 6) are adjacent to each other, so the two cells
// flanking the edge towards Directions[i] are Directions[i-1] and Directions[i+1].
var Directions = [6]Coord{
	{1, 0},  // E
	{1, -1}, // NE
	{0, -1}, // NW
	{-1, 0}, // W
	{-1, 1}, // SW
	{0, 1},  // SE
}

func (c Coord) Add(d Coord) Coord {
	return Coord{c.Q + d.Q, c.R + d.R}
}

func (c Coord) Neighbor(dir int) Coord {
	return c.Add(Directions[dir%6])
}

// Neighbors returns the six surrounding coordinates in Directions order.
func (c Coord) Neighbors() [6]Coord {
	var n [6]Coord
	for i, d := range Directions {
		n[i] = c.Add(d)
	}
	return n
}

func (c Coord) IsAdjacent(o Coord) bool {
	for _, d := range Directions {
		if c.Add(d) == o {
			return true
		}
	}
	return false
}

// flanks returns the indices of the two directions beside dir.
func flanks(dir int) (int, int) {
	return (dir + 5) % 6, (dir + 1) % 6
}

// ToSquare projects onto a doubled-offset grid, for display only.
func (c Coord) ToSquare() (x, y int) {
	return c.Q*2 + c.R, c.R
}

// FromSquare inverts ToSquare. Cells with odd x-y do not exist on the grid.
func FromSquare(x, y int) (Coord, bool) {
	if (x-y)%2 != 0 {
		return Coord{}, false
	}
	return Coord{Q: (x - y) / 2, R: y}, true
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

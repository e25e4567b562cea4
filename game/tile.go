package game

// Tile is a single piece on the board.
type Tile struct {
	Owner Player
	Kind  PieceKind
}

// TileStack holds the pieces at one coordinate, bottom to top.
// Only the top tile is visible to movement rules and ownership checks.
type TileStack struct {
	tiles []Tile
}

func newStack(t Tile) *TileStack {
	return &TileStack{tiles: []Tile{t}}
}

func (s *TileStack) Top() Tile {
	return s.tiles[len(s.tiles)-1]
}

func (s *TileStack) Height() int {
	return len(s.tiles)
}

// Tiles returns a copy of the stack, bottom to top.
func (s *TileStack) Tiles() []Tile {
	out := make([]Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}

func (s *TileStack) push(t Tile) {
	s.tiles = append(s.tiles, t)
}

func (s *TileStack) pop() Tile {
	if len(s.tiles) == 0 {
		panic("pop from empty tile stack")
	}
	t := s.tiles[len(s.tiles)-1]
	s.tiles = s.tiles[:len(s.tiles)-1]
	return t
}

func (s *TileStack) clone() *TileStack {
	return &TileStack{tiles: s.Tiles()}
}

func (s *TileStack) equal(o *TileStack) bool {
	if len(s.tiles) != len(o.tiles) {
		return false
	}
	for i := range s.tiles {
		if s.tiles[i] != o.tiles[i] {
			return false
		}
	}
	return true
}

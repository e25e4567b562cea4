package game

import (
	"fmt"
	"sort"
)

// GameState is the full position: the tile stacks, both hands, both queen
// locations and the ply counter. It is mutated in place by ApplyMove/UndoMove
// and Pass/Unpass, which must be used in strict last-in-first-out order.
type GameState struct {
	Rules Rules

	tiles       map[Coord]*TileStack
	hands       [2]PieceInventory
	queens      [2]Coord
	queenPlaced [2]bool
	ply         int
}

// NewGameState returns an empty board with full hands.
func NewGameState(rules Rules) *GameState {
	start := rules.StartingInventory()
	return &GameState{
		Rules: rules,
		tiles: make(map[Coord]*TileStack, 2*start.Total()),
		hands: [2]PieceInventory{start, start},
	}
}

// Player returns the side to move.
func (gs *GameState) Player() Player {
	return Player(gs.ply % 2)
}

func (gs *GameState) Ply() int {
	return gs.ply
}

func (gs *GameState) Inventory(p Player) PieceInventory {
	return gs.hands[p]
}

// QueenAt reports where the player's queen is, if it has been placed.
func (gs *GameState) QueenAt(p Player) (Coord, bool) {
	return gs.queens[p], gs.queenPlaced[p]
}

// Tile returns the top tile at c.
func (gs *GameState) Tile(c Coord) (Tile, bool) {
	s, ok := gs.tiles[c]
	if !ok {
		return Tile{}, false
	}
	return s.Top(), true
}

// Stack returns the tiles at c, bottom to top, or nil if c is empty.
func (gs *GameState) Stack(c Coord) []Tile {
	s, ok := gs.tiles[c]
	if !ok {
		return nil
	}
	return s.Tiles()
}

func (gs *GameState) Height(c Coord) int {
	if s, ok := gs.tiles[c]; ok {
		return s.Height()
	}
	return 0
}

func (gs *GameState) IsOccupied(c Coord) bool {
	_, ok := gs.tiles[c]
	return ok
}

func (gs *GameState) NumOccupied() int {
	return len(gs.tiles)
}

// Occupied returns every occupied coordinate in a stable (row-major) order.
func (gs *GameState) Occupied() []Coord {
	coords := make([]Coord, 0, len(gs.tiles))
	for c := range gs.tiles {
		coords = append(coords, c)
	}
	sortCoords(coords)
	return coords
}

func sortCoords(coords []Coord) {
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].R != coords[j].R {
			return coords[i].R < coords[j].R
		}
		return coords[i].Q < coords[j].Q
	})
}

func (gs *GameState) queenForced() bool {
	p := gs.Player()
	return !gs.queenPlaced[p] && gs.ply == gs.Rules.QueenDeadline(p)
}

// PlaceableLocations returns the empty cells touching the active player's
// tiles and not touching any tile topped by the opponent.
func (gs *GameState) PlaceableLocations() []Coord {
	turn := gs.Player()
	seen := make(map[Coord]bool)
	var locations []Coord

	for c, stack := range gs.tiles {
		if stack.Top().Owner != turn {
			continue
		}
	candidates:
		for _, n := range c.Neighbors() {
			if seen[n] || gs.IsOccupied(n) {
				continue
			}
			seen[n] = true
			for _, nn := range n.Neighbors() {
				if t, ok := gs.Tile(nn); ok && t.Owner != turn {
					continue candidates
				}
			}
			locations = append(locations, n)
		}
	}
	sortCoords(locations)
	return locations
}

// LegalMoves enumerates every move for the active player. An empty result
// means the player must Pass.
func (gs *GameState) LegalMoves() []Move {
	p := gs.Player()
	kinds := gs.hands[p].Placeable(gs.queenForced())

	switch gs.ply {
	case 0:
		return placeAll(kinds, Origin)
	case 1:
		for c := range gs.tiles {
			return placeAll(kinds, c.Neighbor(0))
		}
	}

	locations := gs.PlaceableLocations()
	moves := make([]Move, 0, len(kinds)*len(locations))
	for _, loc := range locations {
		for _, k := range kinds {
			moves = append(moves, Place(k, loc))
		}
	}

	if !gs.queenPlaced[p] {
		return moves
	}
	for _, from := range gs.Occupied() {
		top := gs.tiles[from].Top()
		if top.Owner != p {
			continue
		}
		for _, to := range top.Kind.Destinations(gs, from) {
			if gs.keepsHiveConnected(from, to) {
				moves = append(moves, Movement(from, to))
			}
		}
	}
	return moves
}

func placeAll(kinds []PieceKind, at Coord) []Move {
	moves := make([]Move, len(kinds))
	for i, k := range kinds {
		moves[i] = Place(k, at)
	}
	return moves
}

// keepsHiveConnected walks the hive as it would look after moving the top
// tile at from onto to, and reports whether it is still one piece.
func (gs *GameState) keepsHiveConnected(from, to Coord) bool {
	if len(gs.tiles) <= 2 {
		return true
	}
	lifted := liftedView{gs: gs, from: from}
	occupiedAfter := func(c Coord) bool {
		return c == to || lifted.occupied(c)
	}

	total := len(gs.tiles)
	if gs.Height(from) == 1 {
		total--
	}
	if !lifted.occupied(to) {
		total++
	}

	visited := map[Coord]bool{to: true}
	queue := []Coord{to}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range current.Neighbors() {
			if !visited[n] && occupiedAfter(n) {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == total
}

// ApplyMove plays m for the active player. m must come from LegalMoves.
func (gs *GameState) ApplyMove(m Move) {
	p := gs.Player()
	switch m.Action {
	case PlaceAction:
		if m.Piece == Queen {
			gs.queens[p] = m.To
			gs.queenPlaced[p] = true
		}
		gs.hands[p].use(m.Piece)
		gs.push(m.To, Tile{Owner: p, Kind: m.Piece})
	case MoveAction:
		t := gs.lift(m.From)
		if t.Kind == Queen {
			gs.queens[t.Owner] = m.To
		}
		gs.push(m.To, t)
	default:
		panic(fmt.Sprintf("cannot apply %v", m))
	}
	gs.ply++
}

// UndoMove reverts m, which must be the most recently applied move.
func (gs *GameState) UndoMove(m Move) {
	gs.Unpass()
	p := gs.Player()
	switch m.Action {
	case PlaceAction:
		t := gs.lift(m.To)
		if t.Kind != m.Piece || t.Owner != p {
			panic(fmt.Sprintf("undo %v: found %v of %v", m, t.Kind, t.Owner))
		}
		gs.hands[p].restore(m.Piece)
		if m.Piece == Queen {
			gs.queenPlaced[p] = false
			gs.queens[p] = Coord{}
		}
	case MoveAction:
		t := gs.lift(m.To)
		if t.Kind == Queen {
			gs.queens[t.Owner] = m.From
		}
		gs.push(m.From, t)
	default:
		panic(fmt.Sprintf("cannot undo %v", m))
	}
}

// Pass consumes a ply without touching the board.
func (gs *GameState) Pass() {
	gs.ply++
}

func (gs *GameState) Unpass() {
	if gs.ply == 0 {
		panic("ply counter underflow")
	}
	gs.ply--
}

func (gs *GameState) push(c Coord, t Tile) {
	if s, ok := gs.tiles[c]; ok {
		s.push(t)
		return
	}
	gs.tiles[c] = newStack(t)
}

func (gs *GameState) lift(c Coord) Tile {
	s, ok := gs.tiles[c]
	if !ok {
		panic(fmt.Sprintf("no tile at %v", c))
	}
	t := s.pop()
	if s.Height() == 0 {
		delete(gs.tiles, c)
	}
	return t
}

// Copy returns a deep copy, used to keep a pre-search snapshot.
func (gs *GameState) Copy() *GameState {
	tiles := make(map[Coord]*TileStack, len(gs.tiles))
	for c, s := range gs.tiles {
		tiles[c] = s.clone()
	}
	return &GameState{
		Rules:       gs.Rules,
		tiles:       tiles,
		hands:       gs.hands,
		queens:      gs.queens,
		queenPlaced: gs.queenPlaced,
		ply:         gs.ply,
	}
}

// Equal compares tiles, hands, queen locations and ply.
func (gs *GameState) Equal(o *GameState) bool {
	if gs.ply != o.ply || gs.hands != o.hands ||
		gs.queens != o.queens || gs.queenPlaced != o.queenPlaced {
		return false
	}
	if len(gs.tiles) != len(o.tiles) {
		return false
	}
	for c, s := range gs.tiles {
		os, ok := o.tiles[c]
		if !ok || !s.equal(os) {
			return false
		}
	}
	return true
}

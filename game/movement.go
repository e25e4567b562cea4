package game

// liftedView sees the board with the top tile at from picked up.
type liftedView struct {
	gs   *GameState
	from Coord
}

func (v liftedView) height(c Coord) int {
	h := v.gs.Height(c)
	if c == v.from {
		h--
	}
	return h
}

func (v liftedView) occupied(c Coord) bool {
	return v.height(c) > 0
}

// slides returns the cells a ground-level piece at `at` can slide into with one
// step: the cell must be empty, must not be gated by both flanking cells, and
// must keep contact with the hive through at least one of them.
func (v liftedView) slides(at Coord) []Coord {
	steps := make([]Coord, 0, 6)
	for dir := range Directions {
		to := at.Neighbor(dir)
		if v.occupied(to) {
			continue
		}
		l, r := flanks(dir)
		left, right := v.occupied(at.Neighbor(l)), v.occupied(at.Neighbor(r))
		if left == right {
			continue
		}
		steps = append(steps, to)
	}
	return steps
}

type moveRule func(v liftedView, from Coord) []Coord

var moveRules = [NumKinds]moveRule{
	Queen:       queenMoves,
	Ant:         antMoves,
	Beetle:      beetleMoves,
	Grasshopper: grasshopperMoves,
	Spider:      spiderMoves,
}

// Destinations returns where a piece of kind k sitting on top of from could go,
// before the one-hive check.
func (k PieceKind) Destinations(gs *GameState, from Coord) []Coord {
	return moveRules[k](liftedView{gs: gs, from: from}, from)
}

func queenMoves(v liftedView, from Coord) []Coord {
	return v.slides(from)
}

// antMoves is every cell reachable by repeated single slides.
func antMoves(v liftedView, from Coord) []Coord {
	visited := map[Coord]bool{from: true}
	queue := []Coord{from}
	var reach []Coord
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range v.slides(current) {
			if visited[next] {
				continue
			}
			visited[next] = true
			reach = append(reach, next)
			queue = append(queue, next)
		}
	}
	return reach
}

const spiderSteps = 3

// spiderMoves is every cell at the end of exactly three slides without
// revisiting a cell.
func spiderMoves(v liftedView, from Coord) []Coord {
	ends := make(map[Coord]bool)
	var reach []Coord
	path := map[Coord]bool{from: true}

	var walk func(at Coord, depth int)
	walk = func(at Coord, depth int) {
		if depth == spiderSteps {
			if !ends[at] {
				ends[at] = true
				reach = append(reach, at)
			}
			return
		}
		for _, next := range v.slides(at) {
			if path[next] {
				continue
			}
			path[next] = true
			walk(next, depth+1)
			delete(path, next)
		}
	}
	walk(from, 0)
	return reach
}

// grasshopperMoves jumps in a straight line over at least one tile to the
// first empty cell.
func grasshopperMoves(v liftedView, from Coord) []Coord {
	var reach []Coord
	for dir := range Directions {
		next := from.Neighbor(dir)
		if !v.occupied(next) {
			continue
		}
		for v.occupied(next) {
			next = next.Neighbor(dir)
		}
		reach = append(reach, next)
	}
	return reach
}

// beetleMoves steps one cell in any direction, climbing on or off stacks. A
// step is gated when both flanking stacks rise above both the level the
// beetle leaves and the level it arrives at.
func beetleMoves(v liftedView, from Coord) []Coord {
	src := v.height(from)
	reach := make([]Coord, 0, 6)
	for dir := range Directions {
		to := from.Neighbor(dir)
		dst := v.height(to)
		l, r := flanks(dir)
		left, right := v.height(from.Neighbor(l)), v.height(from.Neighbor(r))
		if min(left, right) > max(src, dst) {
			continue
		}
		if src == 0 && dst == 0 && left == 0 && right == 0 {
			continue
		}
		reach = append(reach, to)
	}
	return reach
}

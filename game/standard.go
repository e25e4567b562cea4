package game

import (
	"errors"
	"fmt"
)

// Latest turn (0-based, per player) by which the queen must be down.
const queenTurnLimit = 3

const defaultAnts = 6

type StandardRules struct {
	Pieces PieceInventory
}

// NewStandardRules returns the classic reduced set: one queen and six ants.
func NewStandardRules() *StandardRules {
	var inv PieceInventory
	inv[Queen] = 1
	inv[Ant] = defaultAnts
	return &StandardRules{Pieces: inv}
}

// NewFullRules returns the full base-game set.
func NewFullRules() *StandardRules {
	var inv PieceInventory
	inv[Queen] = 1
	inv[Ant] = 3
	inv[Beetle] = 2
	inv[Grasshopper] = 3
	inv[Spider] = 2
	return &StandardRules{Pieces: inv}
}

// NewRules builds rules from explicit per-kind counts.
func NewRules(counts map[PieceKind]int) (*StandardRules, error) {
	var inv PieceInventory
	for k, n := range counts {
		if k < 0 || int(k) >= NumKinds {
			return nil, fmt.Errorf("unknown piece kind %d", int(k))
		}
		if n < 0 {
			return nil, fmt.Errorf("negative count %d for %v", n, k)
		}
		inv[k] = n
	}
	if inv[Queen] != 1 {
		return nil, errors.New("exactly one queen is required")
	}
	return &StandardRules{Pieces: inv}, nil
}

func (sr *StandardRules) StartingInventory() PieceInventory {
	return sr.Pieces
}

// QueenDeadline derives the forced-queen ply from the piece count: the queen
// must be down by the player's fourth turn, or by their last placement when
// they hold fewer than four pieces.
func (sr *StandardRules) QueenDeadline(p Player) int {
	turn := min(queenTurnLimit, sr.Pieces.Total()-1)
	return 2*turn + int(p)
}

package game

import (
	"fmt"
	"strings"
)

// PieceInventory counts the pieces a player has yet to place, per kind.
type PieceInventory [NumKinds]int

func (inv PieceInventory) Count(k PieceKind) int {
	return inv[k]
}

func (inv PieceInventory) Total() int {
	total := 0
	for _, n := range inv {
		total += n
	}
	return total
}

// Placeable lists the kinds with pieces remaining. When queenForced is set and
// the queen is still in hand, only the queen is offered.
func (inv PieceInventory) Placeable(queenForced bool) []PieceKind {
	if queenForced && inv[Queen] > 0 {
		return []PieceKind{Queen}
	}
	kinds := make([]PieceKind, 0, NumKinds)
	for k, n := range inv {
		if n > 0 {
			kinds = append(kinds, PieceKind(k))
		}
	}
	return kinds
}

func (inv *PieceInventory) use(k PieceKind) {
	if inv[k] <= 0 {
		panic(fmt.Sprintf("inventory underflow: no %v left", k))
	}
	inv[k]--
}

func (inv *PieceInventory) restore(k PieceKind) {
	inv[k]++
}

// String renders the inventory as e.g. "Q:1 A:6".
func (inv PieceInventory) String() string {
	var sb strings.Builder
	for k, n := range inv {
		if n == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%c:%d", kindLetters[k], n)
	}
	return sb.String()
}

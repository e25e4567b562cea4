package game

import "fmt"

// PieceKind is the closed set of piece types.
type PieceKind int

const (
	Queen PieceKind = iota
	Ant
	Beetle
	Grasshopper
	Spider
)

// NumKinds is the number of piece kinds; kinds are 0..NumKinds-1.
const NumKinds = 5

var kindLetters = [NumKinds]byte{'Q', 'A', 'B', 'G', 'S'}

var kindNames = [NumKinds]string{"Queen", "Ant", "Beetle", "Grasshopper", "Spider"}

// AllKinds returns every kind in enumeration order.
func AllKinds() []PieceKind {
	kinds := make([]PieceKind, NumKinds)
	for i := range kinds {
		kinds[i] = PieceKind(i)
	}
	return kinds
}

func (k PieceKind) Letter() byte {
	return kindLetters[k]
}

func (k PieceKind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return fmt.Sprintf("PieceKind(%d)", int(k))
	}
	return kindNames[k]
}

// KindFromLetter parses a single-letter designation, case-insensitive.
func KindFromLetter(c byte) (PieceKind, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for i, l := range kindLetters {
		if l == c {
			return PieceKind(i), true
		}
	}
	return 0, false
}

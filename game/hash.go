package game

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Added when PlayerB is to move.
const sideToMoveKey StateHash = 0x9e3779b97f4a7c15

// Hash fingerprints the position for the search memo. Each stack is digested
// on its own and the digests are summed, so the result does not depend on map
// iteration order. Collisions are possible.
func (gs *GameState) Hash() StateHash {
	var h StateHash
	var buf [32]byte
	for c, s := range gs.tiles {
		h += stackHash(buf[:0], c, s)
	}
	if gs.Player() == PlayerB {
		h += sideToMoveKey
	}
	return h
}

func stackHash(buf []byte, c Coord, s *TileStack) StateHash {
	buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(c.Q)))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(c.R)))
	for _, t := range s.tiles {
		buf = append(buf, byte(t.Owner), byte(t.Kind))
	}
	return StateHash(xxhash.Sum64(buf))
}

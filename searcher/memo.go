package searcher

import "hive/game"

// Bound says how a stored value relates to the true value of the position.
type Bound uint8

const (
	Exact Bound = iota
	// Lower: the search failed high, the true value is at least the stored one.
	Lower
	// Upper: the search failed low, the true value is at most the stored one.
	Upper
)

type memoEntry struct {
	key   game.StateHash
	value int
	depth int
	bound Bound
	used  bool
}

// Memo is a fixed-size table of searched positions indexed by the low bits of
// their hash.
type Memo struct {
	entries []memoEntry
	mask    uint64
	stored  int
}

// NewMemo allocates a table with capacity rounded up to a power of two.
func NewMemo(capacity int) *Memo {
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &Memo{
		entries: make([]memoEntry, size),
		mask:    uint64(size - 1),
	}
}

func (m *Memo) Capacity() int {
	return len(m.entries)
}

// Len returns the number of occupied slots.
func (m *Memo) Len() int {
	return m.stored
}

// Probe returns the stored value for key if it was searched at least depth
// plies deep.
func (m *Memo) Probe(key game.StateHash, depth int) (int, Bound, bool) {
	e := &m.entries[uint64(key)&m.mask]
	if !e.used || e.key != key || e.depth < depth {
		return 0, Exact, false
	}
	return e.value, e.bound, true
}

// Store writes into an empty slot, over the same position, or over a shallower
// search of another position. Otherwise the existing entry is kept.
func (m *Memo) Store(key game.StateHash, depth, value int, bound Bound) bool {
	e := &m.entries[uint64(key)&m.mask]
	if e.used && e.key != key && depth < e.depth {
		return false
	}
	if !e.used {
		m.stored++
	}
	*e = memoEntry{key: key, value: value, depth: depth, bound: bound, used: true}
	return true
}

func (m *Memo) Reset() {
	clear(m.entries)
	m.stored = 0
}

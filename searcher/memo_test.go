package searcher

import (
	"testing"

	"hive/game"

	"github.com/stretchr/testify/require"
)

func TestMemoCapacity(t *testing.T) {
	require.Equal(t, 8, NewMemo(5).Capacity())
	require.Equal(t, 8, NewMemo(8).Capacity())
	require.Equal(t, 1, NewMemo(0).Capacity())
}

func TestMemoProbe(t *testing.T) {
	memo := NewMemo(8)
	key := game.StateHash(0xabc1)

	_, _, ok := memo.Probe(key, 1)
	require.False(t, ok, "empty memo")

	require.True(t, memo.Store(key, 3, 42, Lower))
	value, bound, ok := memo.Probe(key, 3)
	require.True(t, ok)
	require.Equal(t, 42, value)
	require.Equal(t, Lower, bound)

	_, _, ok = memo.Probe(key, 2)
	require.True(t, ok, "deeper results answer shallower probes")
	_, _, ok = memo.Probe(key, 4)
	require.False(t, ok, "shallower results do not answer deeper probes")
	_, _, ok = memo.Probe(key+8, 1)
	require.False(t, ok, "same slot, different position")
}

func TestMemoReplacement(t *testing.T) {
	memo := NewMemo(8)
	deep := game.StateHash(1)
	other := deep + 8 // same slot

	require.True(t, memo.Store(deep, 4, 10, Exact))

	t.Run("shallower entry for another position is dropped", func(t *testing.T) {
		require.False(t, memo.Store(other, 3, 20, Exact))
		value, _, ok := memo.Probe(deep, 4)
		require.True(t, ok)
		require.Equal(t, 10, value)
	})

	t.Run("same position is overwritten", func(t *testing.T) {
		require.True(t, memo.Store(deep, 2, 11, Upper))
		value, bound, ok := memo.Probe(deep, 2)
		require.True(t, ok)
		require.Equal(t, 11, value)
		require.Equal(t, Upper, bound)
	})

	t.Run("equal or deeper entry evicts", func(t *testing.T) {
		require.True(t, memo.Store(other, 2, 30, Exact))
		_, _, ok := memo.Probe(deep, 1)
		require.False(t, ok)
		value, _, ok := memo.Probe(other, 2)
		require.True(t, ok)
		require.Equal(t, 30, value)
	})

	require.Equal(t, 1, memo.Len())
	memo.Reset()
	require.Equal(t, 0, memo.Len())
	_, _, ok := memo.Probe(other, 0)
	require.False(t, ok)
}

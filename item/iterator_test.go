package item

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayIteratorSerialized(t *testing.T) {
	buf := []byte{0x83, 0x01, 0x02, 0x03}
	it, err := NewArrayIterator(NewSerialized(buf))
	require.NoError(t, err)

	var got []uint64
	for {
		v, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		_, arg, err := Int64Parts(v)
		require.NoError(t, err)
		got = append(got, arg)
	}
	require.Equal(t, []uint64{1, 2, 3}, got)
}

func TestArrayIteratorConstructed(t *testing.T) {
	v := NewArray([]Value{NewUint(1), NewUint(2)})
	it, err := NewArrayIterator(v)
	require.NoError(t, err)

	_, ok, err := it.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = it.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = it.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllSeq(t *testing.T) {
	buf := []byte{0x82, 0x01, 0x02}
	count := 0
	for range All(NewSerialized(buf)) {
		count++
	}
	require.Equal(t, 2, count)
}

func TestMapIteratorSerialized(t *testing.T) {
	buf := []byte{0xA2, 0x61, 'a', 0x01, 0x61, 'b', 0x02}
	it, err := NewMapIterator(NewSerialized(buf))
	require.NoError(t, err)

	var keys []string
	for {
		k, _, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		_, _, payload, err := StringParts(k)
		require.NoError(t, err)
		keys = append(keys, string(payload))
	}
	require.Equal(t, []string{"a", "b"}, keys)
}

func TestAllPairsSeq(t *testing.T) {
	buf := []byte{0xA1, 0x01, 0x02}
	count := 0
	for range AllPairs(NewSerialized(buf)) {
		count++
	}
	require.Equal(t, 1, count)
}

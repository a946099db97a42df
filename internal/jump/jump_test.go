package jump

import (
	"testing"

	"github.com/dcbor/dcbor/errs"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	n, err := Header([]byte{0x19, 0x01, 0x00, 0xFF})
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestLeafString(t *testing.T) {
	// text string "hi": major 3, len 2, then 'h','i'
	buf := []byte{0x62, 'h', 'i', 0xAA}
	n, err := Leaf(buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestLeafStringNotEnoughData(t *testing.T) {
	buf := []byte{0x65, 'h', 'i'} // claims 5 bytes, only 2 present
	_, err := Leaf(buf)
	require.ErrorIs(t, err, errs.ErrNotEnoughData)
}

func TestLeafNonString(t *testing.T) {
	n, err := Leaf([]byte{0x05, 0xFF})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestDataItemScalar(t *testing.T) {
	n, err := DataItem([]byte{0x05})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestDataItemArray(t *testing.T) {
	// array of 2 unsigned ints: [1, 2]
	buf := []byte{0x82, 0x01, 0x02}
	n, err := DataItem(buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestDataItemNestedArray(t *testing.T) {
	// [1, [2, 3]]
	buf := []byte{0x82, 0x01, 0x82, 0x02, 0x03}
	n, err := DataItem(buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestDataItemMap(t *testing.T) {
	// {1: 2} -> major 5, arg 1, then key 1, value 2
	buf := []byte{0xA1, 0x01, 0x02}
	n, err := DataItem(buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestDataItemTag(t *testing.T) {
	// tag(1)(5): major 6 arg 1 (direct), then 0x05
	buf := []byte{0xC1, 0x05}
	n, err := DataItem(buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestDataItemTrailingBytesIgnored(t *testing.T) {
	buf := []byte{0x01, 0xFF, 0xFF}
	n, err := DataItem(buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestDataItemTruncatedArray(t *testing.T) {
	// array claims 2 elements but only 1 present
	buf := []byte{0x82, 0x01}
	_, err := DataItem(buf)
	require.ErrorIs(t, err, errs.ErrNotEnoughData)
}

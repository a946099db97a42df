package item

import (
	"testing"

	"github.com/dcbor/dcbor/errs"
	"github.com/stretchr/testify/require"
)

func TestSizeOfAndMarshalUint(t *testing.T) {
	v := NewUint(1000)
	n, err := SizeOf(v)
	require.NoError(t, err)
	require.Equal(t, 3, n) // AI=25, 2 argument bytes

	buf, err := Marshal(v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x19, 0x03, 0xE8}, buf)
	require.Len(t, buf, n)
}

func TestMarshalArray(t *testing.T) {
	v := NewArray([]Value{NewUint(1), NewUint(2), NewUint(3)})
	buf, err := Marshal(v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x83, 0x01, 0x02, 0x03}, buf)
}

func TestMarshalMap(t *testing.T) {
	v := NewMap([]Pair{
		{Key: NewText("a"), Value: NewUint(1)},
		{Key: NewText("b"), Value: NewUint(2)},
	})
	buf, err := Marshal(v)
	require.NoError(t, err)
	require.Equal(t, []byte{0xA2, 0x61, 'a', 0x01, 0x61, 'b', 0x02}, buf)
}

func TestMarshalTag(t *testing.T) {
	v := NewTag(1, NewUint(1363896240))
	buf, err := Marshal(v)
	require.NoError(t, err)
	require.Equal(t, []byte{0xC1, 0x1A, 0x51, 0x4B, 0x67, 0xB0}, buf)
}

func TestMarshalText(t *testing.T) {
	v := NewText("hi")
	buf, err := Marshal(v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x62, 'h', 'i'}, buf)
}

func TestMarshalSimple(t *testing.T) {
	buf, err := Marshal(NewBool(true))
	require.NoError(t, err)
	require.Equal(t, []byte{0xF5}, buf)

	buf, err = Marshal(NewNull())
	require.NoError(t, err)
	require.Equal(t, []byte{0xF6}, buf)
}

func TestMarshalSerializedPassThrough(t *testing.T) {
	raw := []byte{0x82, 0x01, 0x02}
	buf, err := Marshal(NewSerialized(raw))
	require.NoError(t, err)
	require.Equal(t, raw, buf)
}

func TestWriteIntoBufferTooSmall(t *testing.T) {
	v := NewUint(1000)
	dst := make([]byte, 2)
	_, err := WriteInto(v, dst)
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
}

func TestWriteIntoExactSize(t *testing.T) {
	v := NewUint(1000)
	n, err := SizeOf(v)
	require.NoError(t, err)

	dst := make([]byte, n)
	written, err := Write(v, dst)
	require.NoError(t, err)
	require.Equal(t, n, written)
}

func TestRoundTripThroughValidateAndMarshal(t *testing.T) {
	original := []byte{0xA2, 0x61, 'a', 0x01, 0x61, 'b', 0x02}
	n, err := Validate(original)
	require.NoError(t, err)

	v := NewSerialized(original[:n])
	out, err := Marshal(v)
	require.NoError(t, err)
	require.Equal(t, original, out)
}

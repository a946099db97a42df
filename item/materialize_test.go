package item

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaterializeEquivalence(t *testing.T) {
	original := []byte{0x82, 0x01, 0xA1, 0x61, 'a', 0x02}
	n, err := Validate(original)
	require.NoError(t, err)

	v := NewSerialized(original[:n])
	m, err := Materialize(v)
	require.NoError(t, err)

	require.False(t, m.IsSerialized())

	out, err := Marshal(m)
	require.NoError(t, err)
	require.Equal(t, original, out)
}

func TestMaterializeScalarKinds(t *testing.T) {
	cases := [][]byte{
		{0x05},             // small uint
		{0x18, 0xFF},       // one-byte uint
		{0x20},             // small negative int (-1)
		{0x62, 'h', 'i'},   // text
		{0x42, 0x01, 0x02}, // bytes
		{0xF5},             // true
		{0xF6},             // null
		{0xF7},             // undefined
	}

	for _, c := range cases {
		v, err := Materialize(NewSerialized(c))
		require.NoError(t, err)
		out, err := Marshal(v)
		require.NoError(t, err)
		require.Equal(t, c, out)
	}
}

func TestMaterializeLeavesFloatFamilyOpaque(t *testing.T) {
	cases := [][]byte{
		{0xF9, 0x3C, 0x00}, // half 1.0
		{0xFA, 0x3F, 0x80, 0x00, 0x00}, // single 1.0
		{0xFB, 0x3F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // double 1.0
	}
	for _, c := range cases {
		v, err := Materialize(NewSerialized(c))
		require.NoError(t, err)

		// Materialize must not attempt to decode a float payload into some
		// constructed representation; it returns the original Serialized
		// byte range untouched.
		require.True(t, v.IsSerialized())
		require.Equal(t, c, v.SerializedBytes())

		out, err := Marshal(v)
		require.NoError(t, err)
		require.Equal(t, c, out)
	}
}

func TestMaterializeNestedFloatFamilyStaysOpaque(t *testing.T) {
	// array [1.0f32] — the float nested under an array must round-trip
	// byte-for-byte through materialize even though the array itself is
	// fully expanded.
	original := []byte{0x81, 0xFA, 0x3F, 0x80, 0x00, 0x00}
	v, err := Materialize(NewSerialized(original))
	require.NoError(t, err)

	out, err := Marshal(v)
	require.NoError(t, err)
	require.Equal(t, original, out)
}

func TestMaterializeConstructedPassesThrough(t *testing.T) {
	v := NewArray([]Value{NewUint(1), NewTag(5, NewSerialized([]byte{0x01}))})
	m, err := Materialize(v)
	require.NoError(t, err)

	out, err := Marshal(m)
	require.NoError(t, err)

	orig, err := Marshal(v)
	require.NoError(t, err)
	require.Equal(t, orig, out)
}

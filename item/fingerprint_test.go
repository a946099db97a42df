package item

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprintStability(t *testing.T) {
	a := NewArray([]Value{NewUint(1), NewUint(2)})
	b := NewSerialized([]byte{0x82, 0x01, 0x02})

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := Fingerprint(b)
	require.NoError(t, err)
	require.Equal(t, fa, fb)
}

func TestFingerprintDiffers(t *testing.T) {
	a := NewUint(1)
	b := NewUint(2)

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := Fingerprint(b)
	require.NoError(t, err)
	require.NotEqual(t, fa, fb)
}

package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Equal(t, binary.BigEndian, engine)
}

func TestGetBigEndianEngineRoundTrip(t *testing.T) {
	engine := GetBigEndianEngine()

	buf := make([]byte, 8)
	engine.PutUint64(buf, 0x0102030405060708)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, buf)
	require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))

	appended := engine.AppendUint32(nil, 0xAABBCCDD)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, appended)
}

func TestGetBigEndianEngineStable(t *testing.T) {
	require.Equal(t, GetBigEndianEngine(), GetBigEndianEngine())
}

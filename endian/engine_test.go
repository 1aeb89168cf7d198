package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEngines(t *testing.T) {
	require.Equal(t, binary.ByteOrder(binary.LittleEndian), binary.ByteOrder(GetLittleEndianEngine()))
	require.Equal(t, binary.ByteOrder(binary.BigEndian), binary.ByteOrder(GetBigEndianEngine()))
}

func TestEngineRoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint32(nil, 0xDEADBEEF)
		require.Len(t, buf, 4)
		require.Equal(t, uint32(0xDEADBEEF), engine.Uint32(buf))

		buf = engine.AppendUint64(nil, 0x0123456789ABCDEF)
		require.Len(t, buf, 8)
		require.Equal(t, uint64(0x0123456789ABCDEF), engine.Uint64(buf))
	}
}

func TestEnginesDisagreeOnMultiByteOrder(t *testing.T) {
	le := GetLittleEndianEngine().AppendUint32(nil, 0x01020304)
	be := GetBigEndianEngine().AppendUint32(nil, 0x01020304)

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, le)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, be)
}

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.NotNil(t, order)

	// Exactly one of the predicates holds, and it agrees with CheckEndianness.
	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())
	if IsNativeLittleEndian() {
		require.Equal(t, binary.ByteOrder(binary.LittleEndian), order)
	} else {
		require.Equal(t, binary.ByteOrder(binary.BigEndian), order)
	}
}

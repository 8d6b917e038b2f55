package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/arloliu/olsim/format"
	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result)
		require.Equal(format.BigEndian, NativeOrder())
	case 0x02:
		require.Equal(binary.LittleEndian, result)
		require.Equal(format.LittleEndian, NativeOrder())
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestForOrder(t *testing.T) {
	require.Equal(t, binary.LittleEndian, ForOrder(format.LittleEndian))
	require.Equal(t, binary.BigEndian, ForOrder(format.BigEndian))
	require.Equal(t, binary.LittleEndian, ForOrder(format.ByteOrder(9)))

	buf := ForOrder(format.BigEndian).AppendUint32(nil, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
}

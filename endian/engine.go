// Package endian provides the byte order engines used by the result frame.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so the
// frame encoder can append fixed-width values without scratch buffers:
//
//	engine := endian.ForOrder(format.LittleEndian)
//	buf = engine.AppendUint64(buf, math.Float64bits(v))
//
// The returned engines are the stateless standard library values and are safe
// for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"

	"github.com/arloliu/olsim/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 stores 0x00 first on little-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// NativeOrder returns the host byte order as a frame ByteOrder.
func NativeOrder() format.ByteOrder {
	if CheckEndianness() == binary.BigEndian {
		return format.BigEndian
	}

	return format.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForOrder returns the engine for the given frame byte order.
// Unknown values fall back to little-endian.
func ForOrder(order format.ByteOrder) EndianEngine {
	if order == format.BigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

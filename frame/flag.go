package frame

import (
	"fmt"

	"github.com/arloliu/olsim/endian"
	"github.com/arloliu/olsim/errs"
	"github.com/arloliu/olsim/format"
	"github.com/arloliu/olsim/simulation"
)

// Flag holds the first four header bytes.
type Flag struct {
	// Options is a packed field.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved and must be 0.
	// Bits 4-15 hold the magic number MagicResultV1Opt.
	Options uint16

	// Policy is the simulation.Policy the run used.
	Policy uint8
	// CompressionType is the format.CompressionType of the payload.
	CompressionType uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewFlag creates a little-endian, uncompressed flag.
func NewFlag() Flag {
	return Flag{
		Options:         MagicResultV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the frame is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the frame is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithByteOrder sets the byte order bit.
func (f *Flag) WithByteOrder(order format.ByteOrder) {
	if order == format.BigEndian {
		f.Options |= EndiannessMask
	} else {
		f.Options &^= EndiannessMask
	}
}

// ByteOrder returns the byte order recorded in the flag.
func (f Flag) ByteOrder() format.ByteOrder {
	if f.IsBigEndian() {
		return format.BigEndian
	}

	return format.LittleEndian
}

// GetEndianEngine returns the engine for the recorded byte order.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	return endian.ForOrder(f.ByteOrder())
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload compression.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// DegeneratePolicy returns the policy of the encoded run.
func (f Flag) DegeneratePolicy() simulation.Policy {
	return simulation.Policy(f.Policy)
}

// Validate checks the magic number, reserved bits and enum values.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicResultV1Opt {
		return fmt.Errorf("%w: magic 0x%04x", errs.ErrInvalidHeaderFlags, f.GetMagicNumber())
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set in 0x%04x", errs.ErrInvalidHeaderFlags, f.Options)
	}
	if _, ok := validCompressions[f.CompressionType]; !ok {
		return fmt.Errorf("%w: compression %d", errs.ErrInvalidHeaderFlags, f.CompressionType)
	}
	if !f.DegeneratePolicy().Valid() {
		return fmt.Errorf("%w: policy %d", errs.ErrInvalidHeaderFlags, f.Policy)
	}

	return nil
}

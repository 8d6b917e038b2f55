package frame

import (
	"fmt"

	"github.com/arloliu/olsim/errs"
)

// Header is the fixed-size section at the start of a frame.
type Header struct {
	// Flag carries the magic number, byte order, policy and compression.
	Flag Flag // byte offset 0-3
	// Seed is the seed the run used.
	Seed uint64 // byte offset 4-11
	// Trials is the number of trials requested.
	Trials uint32 // byte offset 12-15
	// SampleSize is the number of observations per trial.
	SampleSize uint32 // byte offset 16-19
	// StoredCount is the length of each estimate column.
	StoredCount uint32 // byte offset 20-23
	// FailedCount is the number of skipped trials.
	FailedCount uint32 // byte offset 24-27
	// PayloadSize is the size of the payload section after compression.
	PayloadSize uint32 // byte offset 28-31
}

// Parse parses the header from a byte slice.
//
// Returns ErrInvalidHeaderSize if data is not HeaderSize bytes, or a flag
// validation error.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	// Options is always little-endian; it tells the order of the rest.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Policy = data[2]
	h.Flag.CompressionType = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.Seed = engine.Uint64(data[4:12])
	h.Trials = engine.Uint32(data[12:16])
	h.SampleSize = engine.Uint32(data[16:20])
	h.StoredCount = engine.Uint32(data[20:24])
	h.FailedCount = engine.Uint32(data[24:28])
	h.PayloadSize = engine.Uint32(data[28:32])

	return nil
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.Policy, h.Flag.CompressionType)
	dst = engine.AppendUint64(dst, h.Seed)
	dst = engine.AppendUint32(dst, h.Trials)
	dst = engine.AppendUint32(dst, h.SampleSize)
	dst = engine.AppendUint32(dst, h.StoredCount)
	dst = engine.AppendUint32(dst, h.FailedCount)
	dst = engine.AppendUint32(dst, h.PayloadSize)

	return dst
}

// Bytes serializes the header into a new HeaderSize slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// ColumnSize returns the uncompressed size of one estimate column.
func (h *Header) ColumnSize() int {
	return int(h.StoredCount) * 8
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}

package frame

import (
	"fmt"
	"math"

	"github.com/arloliu/olsim/compress"
	"github.com/arloliu/olsim/errs"
	"github.com/arloliu/olsim/internal/hash"
	"github.com/arloliu/olsim/model"
)

// Decode parses and verifies a frame produced by Encode.
//
// Returns:
//   - ErrInvalidHeaderSize if data is shorter than the header
//   - ErrInvalidHeaderFlags for a bad magic number or unknown flag values
//   - ErrChecksumMismatch if the trailer does not match the content
//   - ErrInvalidPayload if the sections do not match the header counts
func Decode(data []byte) (*Frame, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if len(data) < MinFrameSize {
		return nil, fmt.Errorf("%w: frame of %d bytes is shorter than %d", errs.ErrInvalidPayload, len(data), MinFrameSize)
	}

	engine := header.Flag.GetEndianEngine()
	body := data[:len(data)-ChecksumSize]
	checksum := engine.Uint64(data[len(data)-ChecksumSize:])
	if got := hash.Sum64(body); got != checksum {
		return nil, fmt.Errorf("%w: stored 0x%016x, computed 0x%016x", errs.ErrChecksumMismatch, checksum, got)
	}

	payloadOffset := FailedOffset + int(header.FailedCount)*4
	if want := payloadOffset + int(header.PayloadSize); want != len(body) {
		return nil, fmt.Errorf("%w: header describes %d bytes, frame holds %d", errs.ErrInvalidPayload, want, len(body))
	}

	f := &Frame{
		Header:   header,
		Checksum: checksum,
		Params: model.Params{
			Intercept:   math.Float64frombits(engine.Uint64(body[ParamsOffset:])),
			Slope:       math.Float64frombits(engine.Uint64(body[ParamsOffset+8:])),
			NoiseStdDev: math.Float64frombits(engine.Uint64(body[ParamsOffset+16:])),
		},
	}

	if header.FailedCount > 0 {
		f.FailedTrials = make([]int, header.FailedCount)
		for i := range f.FailedTrials {
			f.FailedTrials[i] = int(engine.Uint32(body[FailedOffset+i*4:]))
		}
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidHeaderFlags, err)
	}
	columns, err := codec.Decompress(body[payloadOffset:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	colSize := header.ColumnSize()
	if len(columns) != 2*colSize {
		return nil, fmt.Errorf("%w: payload holds %d bytes, want %d", errs.ErrInvalidPayload, len(columns), 2*colSize)
	}
	count := int(header.StoredCount)
	if f.InterceptEstimates, err = readFloat64s(columns[:colSize], engine, count); err != nil {
		return nil, err
	}
	if f.SlopeEstimates, err = readFloat64s(columns[colSize:], engine, count); err != nil {
		return nil, err
	}

	return f, nil
}

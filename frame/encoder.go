package frame

import (
	"fmt"
	"math"

	"github.com/arloliu/olsim/compress"
	"github.com/arloliu/olsim/errs"
	"github.com/arloliu/olsim/format"
	"github.com/arloliu/olsim/internal/hash"
	"github.com/arloliu/olsim/internal/options"
	"github.com/arloliu/olsim/internal/pool"
	"github.com/arloliu/olsim/simulation"
)

// Encoder serializes results with a fixed compression and byte order.
// It holds no per-call state and is safe for concurrent use.
type Encoder struct {
	compression format.CompressionType
	order       format.ByteOrder
	codec       compress.Codec
}

// Option configures an Encoder.
type Option = options.Option[*Encoder]

// WithCompression sets the payload compression. The default is
// format.CompressionNone.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(e *Encoder) error {
		codec, err := compress.CreateCodec(c, "frame payload")
		if err != nil {
			return fmt.Errorf("%w: %w", errs.ErrInvalidInput, err)
		}
		e.compression = c
		e.codec = codec

		return nil
	})
}

// WithByteOrder sets the byte order of every field after the first two
// header bytes. The default is format.LittleEndian.
func WithByteOrder(order format.ByteOrder) Option {
	return options.New(func(e *Encoder) error {
		if order != format.LittleEndian && order != format.BigEndian {
			return fmt.Errorf("%w: unknown byte order %d", errs.ErrInvalidInput, order)
		}
		e.order = order

		return nil
	})
}

// NewEncoder creates an Encoder.
func NewEncoder(opts ...Option) (*Encoder, error) {
	e := &Encoder{
		compression: format.CompressionNone,
		order:       format.LittleEndian,
		codec:       compress.NewNoOpCompressor(),
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Encode serializes res into a new frame.
//
// Returns ErrInvalidInput for a nil result or counts that do not fit the
// header, and ErrLengthMismatch when the estimate columns differ in length.
func (e *Encoder) Encode(res *simulation.Result) ([]byte, error) {
	if err := checkResult(res); err != nil {
		return nil, err
	}

	flag := NewFlag()
	flag.WithByteOrder(e.order)
	flag.Policy = uint8(res.Policy)
	flag.CompressionType = uint8(e.compression)
	engine := flag.GetEndianEngine()

	columns := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(columns)

	appendFloat64s(columns, engine, res.InterceptEstimates)
	appendFloat64s(columns, engine, res.SlopeEstimates)

	payload, err := e.codec.Compress(columns.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress %s payload: %w", e.compression, err)
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds frame limit", errs.ErrInvalidInput, len(payload))
	}

	header := Header{
		Flag:        flag,
		Seed:        res.Seed,
		Trials:      uint32(res.Trials),
		SampleSize:  uint32(res.SampleSize),
		StoredCount: uint32(res.Len()),
		FailedCount: uint32(len(res.Failures)),
		PayloadSize: uint32(len(payload)),
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	buf.Grow(FailedOffset + len(res.Failures)*4 + len(payload) + ChecksumSize)
	buf.B = header.AppendTo(buf.B)
	buf.B = engine.AppendUint64(buf.B, math.Float64bits(res.Params.Intercept))
	buf.B = engine.AppendUint64(buf.B, math.Float64bits(res.Params.Slope))
	buf.B = engine.AppendUint64(buf.B, math.Float64bits(res.Params.NoiseStdDev))
	for _, f := range res.Failures {
		buf.B = engine.AppendUint32(buf.B, uint32(f.Trial))
	}
	_, _ = buf.Write(payload)
	buf.B = engine.AppendUint64(buf.B, hash.Sum64(buf.B))

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Encode serializes res with a one-off Encoder.
func Encode(res *simulation.Result, opts ...Option) ([]byte, error) {
	e, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return e.Encode(res)
}

func checkResult(res *simulation.Result) error {
	if res == nil {
		return fmt.Errorf("%w: result is nil", errs.ErrInvalidInput)
	}
	if len(res.InterceptEstimates) != len(res.SlopeEstimates) {
		return fmt.Errorf("%w: %d intercept and %d slope estimates",
			errs.ErrLengthMismatch, len(res.InterceptEstimates), len(res.SlopeEstimates))
	}

	for name, v := range map[string]int{
		"trials":      res.Trials,
		"sample size": res.SampleSize,
		"estimates":   res.Len(),
		"failures":    len(res.Failures),
	} {
		if v < 0 || uint64(v) > math.MaxUint32 {
			return fmt.Errorf("%w: %s %d out of frame range", errs.ErrInvalidInput, name, v)
		}
	}
	for _, f := range res.Failures {
		if f.Trial < 0 || uint64(f.Trial) > math.MaxUint32 {
			return fmt.Errorf("%w: failed trial index %d out of frame range", errs.ErrInvalidInput, f.Trial)
		}
	}

	return nil
}

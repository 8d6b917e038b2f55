// Package compress provides the payload codecs used by result frames.
//
// A frame stores the intercept and slope estimate columns as raw float64
// words. Those words are highly redundant in their sign and exponent bits, so
// a general-purpose codec applied after encoding saves a useful amount of
// space when frames are archived.
//
// Supported algorithms:
//   - None: payload stored as is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// Codecs are stateless values and safe for concurrent use. Encoders and
// decoders that benefit from warm-up are pooled internally.
//
// The Zstd codec uses the pure Go klauspost/compress implementation by
// default. Building with cgo enabled and the gozstd tag switches it to the
// libzstd binding from valyala/gozstd; both produce standard Zstandard frames
// and are interchangeable on the wire.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(payload)
package compress

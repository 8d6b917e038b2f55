// Package frame encodes a simulation.Result into a self-describing binary
// frame and decodes it back.
//
// A frame hands a finished run to another process, for example a plotting
// front end, without re-running it. The layout is:
//
//	+--------------------+ 0
//	| Header (32 bytes)  |  flags, compression, seed, counts
//	+--------------------+ 32
//	| Params (24 bytes)  |  intercept, slope, noise std dev
//	+--------------------+ 56
//	| Failed trials      |  FailedCount x uint32
//	+--------------------+
//	| Payload            |  intercept column then slope column,
//	|                    |  raw float64 words, optionally compressed
//	+--------------------+
//	| Checksum (8 bytes) |  xxHash64 of everything above
//	+--------------------+
//
// The first two header bytes are always little-endian; they carry the magic
// number and the byte order of every other field.
//
// Example:
//
//	data, err := frame.Encode(res, frame.WithCompression(format.CompressionZstd))
//	...
//	f, err := frame.Decode(data)
//	res = f.Result()
package frame

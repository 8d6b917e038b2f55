package compress

// zstdLevel is the compression level used by both Zstd back ends.
const zstdLevel = 3

// ZstdCompressor is a Zstandard codec. Its back end is chosen at build time.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

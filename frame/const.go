package frame

const (
	// Bit masks of Flag.Options
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2, 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicResultV1Opt identifies version 1 of the result frame.
	MagicResultV1Opt = 0x0C50
)

// offset and section sizes in the frame
const (
	HeaderSize   = 32                      // fixed header size in bytes
	ParamsSize   = 24                      // three float64 model parameters
	ParamsOffset = HeaderSize              // byte offset where the params block starts
	FailedOffset = HeaderSize + ParamsSize // byte offset where failed trial indices start
	ChecksumSize = 8                       // xxHash64 trailer
	MinFrameSize = FailedOffset + ChecksumSize
)

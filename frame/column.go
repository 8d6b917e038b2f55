package frame

import (
	"fmt"
	"math"

	"github.com/arloliu/olsim/endian"
	"github.com/arloliu/olsim/errs"
	"github.com/arloliu/olsim/internal/pool"
)

// appendFloat64s writes values as raw IEEE 754 words in engine order.
// The buffer is grown once for the whole column.
func appendFloat64s(buf *pool.ByteBuffer, engine endian.EndianEngine, values []float64) {
	if len(values) == 0 {
		return
	}

	buf.Grow(len(values) * 8)
	for _, v := range values {
		buf.B = engine.AppendUint64(buf.B, math.Float64bits(v))
	}
}

// readFloat64s decodes count raw float64 words from data.
func readFloat64s(data []byte, engine endian.EndianEngine, count int) ([]float64, error) {
	if len(data) != count*8 {
		return nil, fmt.Errorf("%w: column holds %d bytes, want %d", errs.ErrInvalidPayload, len(data), count*8)
	}

	values := make([]float64, count)
	for i := range values {
		values[i] = math.Float64frombits(engine.Uint64(data[i*8:]))
	}

	return values, nil
}

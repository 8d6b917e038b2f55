package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Float64s computes the xxHash64 of the IEEE 754 bit patterns of each column,
// in order. Columns are separated by their length so that moving a value from
// one column to the next changes the result. NaN payloads and signed zeros are
// hashed as-is, which makes the fingerprint a bit-identity check.
func Float64s(columns ...[]float64) uint64 {
	d := xxhash.New()
	var scratch [8]byte
	for _, col := range columns {
		binary.LittleEndian.PutUint64(scratch[:], uint64(len(col)))
		_, _ = d.Write(scratch[:])
		for _, v := range col {
			binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v))
			_, _ = d.Write(scratch[:])
		}
	}

	return d.Sum64()
}

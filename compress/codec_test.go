package compress

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/arloliu/olsim/format"
	"github.com/stretchr/testify/require"
)

var errRoundTrip = errors.New("round trip mismatch")

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// estimateColumn builds a little-endian float64 column shaped like slope
// estimates scattered around a true value.
func estimateColumn(n int, seed uint64) []byte {
	rng := rand.New(rand.NewPCG(seed, 0))
	buf := make([]byte, 0, n*8)
	for range n {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(3+0.03*rng.NormFloat64()))
	}

	return buf
}

func TestGetCodec(t *testing.T) {
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}

	_, err := GetCodec(format.CompressionType(99))
	require.Error(t, err)
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := CreateCodec(ct, "slope")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0), "slope")
	require.ErrorContains(t, err, "invalid slope compression")
}

func TestCodecRoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"single":     estimateColumn(1, 1),
		"reference":  estimateColumn(1000, 2),
		"large":      estimateColumn(100_000, 3),
		"repetitive": bytes.Repeat([]byte{0x40, 0x08, 0, 0, 0, 0, 0, 0}, 4096),
	}

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, payload := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				packed, err := codec.Compress(payload)
				require.NoError(t, err)

				unpacked, err := codec.Decompress(packed)
				require.NoError(t, err)
				require.Equal(t, payload, unpacked)
			})
		}
	}
}

func TestCodecShrinksRepetitiveData(t *testing.T) {
	payload := bytes.Repeat([]byte{0x40, 0x08, 0, 0, 0, 0, 0, 0}, 4096)

	for _, ct := range allTypes[1:] {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(packed), len(payload)/4, ct.String())
	}
}

func TestCodecEmptyData(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, packed)

		unpacked, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, unpacked)
	}
}

func TestCodecInvalidData(t *testing.T) {
	garbage := []byte{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0xf9, 0xf8, 0x01, 0x02}

	for _, ct := range allTypes[1:] {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, ct.String())
	}
}

func TestNoOpSharesMemory(t *testing.T) {
	data := []byte{1, 2, 3}
	codec := NewNoOpCompressor()

	packed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &packed[0])
}

func TestCodecConcurrentUse(t *testing.T) {
	payload := estimateColumn(2048, 7)

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		t.Run(ct.String(), func(t *testing.T) {
			var wg sync.WaitGroup
			errCh := make(chan error, 8)
			for range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range 20 {
						packed, err := codec.Compress(payload)
						if err != nil {
							errCh <- err
							return
						}
						unpacked, err := codec.Decompress(packed)
						if err != nil {
							errCh <- err
							return
						}
						if !bytes.Equal(payload, unpacked) {
							errCh <- errRoundTrip
							return
						}
					}
				}()
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}

package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxDecompressedSize bounds the buffer doubling in Decompress.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

// LZ4Compressor compresses payloads with the LZ4 block format.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data with a pooled lz4.Compressor. An empty input yields nil.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block.
//
// The block format does not record the original size, so the output buffer
// starts at 4x the input and doubles on ErrInvalidSourceShortBuffer up to
// lz4MaxDecompressedSize.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; size <= lz4MaxDecompressedSize; size *= 2 {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// Compress compresses data with libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decompresses a Zstd frame with libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

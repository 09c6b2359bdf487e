package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor compresses payloads with the S2 block format.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data. An empty input yields nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses an S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}

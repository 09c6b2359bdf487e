package compress

import (
	"fmt"

	"github.com/arloliu/sigkit/format"
)

// Compressor compresses a snapshot payload.
//
// The returned slice is owned by the caller; the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error when the input is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes the effect of compressing one payload.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int
	CompressedSize int
}

// Ratio returns compressed size / original size, or 0 for an empty payload.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// CompressWithStats compresses data with the codec registered for compressionType
// and reports the resulting sizes.
func CompressWithStats(compressionType format.CompressionType, data []byte) ([]byte, Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, Stats{}, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return out, Stats{
		Algorithm:      compressionType,
		OriginalSize:   len(data),
		CompressedSize: len(out),
	}, nil
}

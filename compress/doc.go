// Package compress provides the payload codecs used by sigkit snapshots.
//
// A snapshot payload is a run of IEEE-754 float64 values: sampled signals,
// filtered outputs and loss traces. Smooth signals compress well with any
// general-purpose codec; noisy ones barely compress at all, which is why
// CompressionNone stays the default.
//
// Supported codecs:
//   - None (format.CompressionNone): payload stored as is.
//   - Zstd (format.CompressionZstd): best ratio. Pure Go (klauspost/compress)
//     by default; built with the "gozstd" tag and cgo enabled it uses
//     valyala/gozstd instead. Both produce standard zstd frames.
//   - S2 (format.CompressionS2): Snappy-compatible, fast.
//   - LZ4 (format.CompressionLZ4): LZ4 block format, fastest decompression.
//
// Usage:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed)
//
// All codecs are stateless values and safe for concurrent use; zstd and lz4
// keep pooled encoder state internally.
package compress

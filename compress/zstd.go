package compress

// ZstdCompressor compresses payloads into standard Zstandard frames.
//
// The implementation is chosen at build time: klauspost/compress by default,
// valyala/gozstd when built with cgo and the "gozstd" tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

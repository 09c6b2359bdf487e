package compress

// NoOpCompressor passes payloads through untouched.
//
// Both directions return the input slice itself; callers must not modify the
// input while still using the result.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

package pool

import "sync"

const (
	// SnapshotBufferDefaultSize is the initial capacity of pooled snapshot buffers.
	SnapshotBufferDefaultSize = 1024 * 16 // 16KiB
	// SnapshotBufferMaxThreshold is the largest buffer the pool keeps.
	SnapshotBufferMaxThreshold = 1024 * 1024 // 1MiB
)

// ByteBuffer is an append-only byte buffer used while assembling snapshot payloads.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the buffered bytes.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of buffered bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer and keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Grow ensures room for at least n more bytes.
//
// Small buffers grow by SnapshotBufferDefaultSize, larger ones by 25% of
// their capacity, and never by less than n.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := SnapshotBufferDefaultSize
	if cap(bb.B) > 4*SnapshotBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data and implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool recycles ByteBuffers, dropping ones larger than maxThreshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize bytes.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty buffer.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var snapshotPool = NewByteBufferPool(SnapshotBufferDefaultSize, SnapshotBufferMaxThreshold)

// GetSnapshotBuffer retrieves a buffer from the shared snapshot pool.
func GetSnapshotBuffer() *ByteBuffer {
	return snapshotPool.Get()
}

// PutSnapshotBuffer returns a buffer to the shared snapshot pool.
func PutSnapshotBuffer(bb *ByteBuffer) {
	snapshotPool.Put(bb)
}

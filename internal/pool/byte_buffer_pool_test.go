package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer(t *testing.T) {
	t.Run("write appends", func(t *testing.T) {
		bb := NewByteBuffer(4)
		n, err := bb.Write([]byte("abc"))
		require.NoError(t, err)
		require.Equal(t, 3, n)
		_, _ = bb.Write([]byte("de"))
		require.Equal(t, "abcde", string(bb.Bytes()))
		require.Equal(t, 5, bb.Len())
	})

	t.Run("grow keeps content", func(t *testing.T) {
		bb := NewByteBuffer(2)
		_, _ = bb.Write([]byte{1, 2})
		bb.Grow(100)
		require.GreaterOrEqual(t, cap(bb.B)-len(bb.B), 100)
		require.Equal(t, []byte{1, 2}, bb.Bytes())
	})

	t.Run("grow is a no-op with spare capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		before := cap(bb.B)
		bb.Grow(10)
		require.Equal(t, before, cap(bb.B))
	})

	t.Run("large buffers grow by a quarter", func(t *testing.T) {
		bb := NewByteBuffer(8 * SnapshotBufferDefaultSize)
		bb.B = bb.B[:cap(bb.B)]
		before := cap(bb.B)
		bb.Grow(1)
		require.Equal(t, before+before/4, cap(bb.B))
	})

	t.Run("reset keeps capacity", func(t *testing.T) {
		bb := NewByteBuffer(32)
		_, _ = bb.Write([]byte("hello"))
		bb.Reset()
		require.Zero(t, bb.Len())
		require.Equal(t, 32, cap(bb.B))
	})
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns empty buffer", func(t *testing.T) {
		bb := GetSnapshotBuffer()
		require.NotNil(t, bb)
		require.Zero(t, bb.Len())
		_, _ = bb.Write([]byte("payload"))
		PutSnapshotBuffer(bb)

		again := GetSnapshotBuffer()
		defer PutSnapshotBuffer(again)
		require.Zero(t, again.Len())
	})

	t.Run("put nil is safe", func(t *testing.T) {
		require.NotPanics(t, func() { PutSnapshotBuffer(nil) })
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(8, 16)
		big := NewByteBuffer(64)
		require.NotPanics(t, func() { p.Put(big) })
	})
}

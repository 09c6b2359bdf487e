package pool

import "sync"

// float64SlicePool holds scratch buffers for padded signals and filter state.
var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice returns a zeroed float64 slice of length size from the pool.
//
// The caller must call the returned release function (typically with defer)
// once the slice is no longer referenced. The slice must not escape the caller.
//
// Example:
//
//	padded, release := pool.GetFloat64Slice(len(x) + 2*padLen)
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
